// Package tui is the interactive host shell: it owns mode selection,
// runs one generation request at a time on its own goroutine, and shows the
// rendered result. The pipeline itself stays synchronous and stateless; all
// host-side concurrency policy (busy gating, stale-result discard) lives
// here.
package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/csheth/mindreel/internal/export"
	"github.com/csheth/mindreel/internal/generate"
)

// Config wires runtime options into the TUI program.
type Config struct {
	Generator      *generate.Generator
	ClientName     string
	TranscriptName string
	Transcript     string
	ExportDir      string
}

// New returns a tea.Model ready to be mounted into a Program.
func New(config Config) tea.Model {
	spin := spinner.New()
	spin.Spinner = spinner.Dot

	vp := viewport.New(80, 20)

	return &model{
		config:      config,
		stage:       stagePick,
		spinner:     spin,
		viewport:    vp,
		width:       80,
		height:      24,
		infoMessage: fmt.Sprintf("Loaded %s (%d characters). Pick a mode and press enter.", config.TranscriptName, len(config.Transcript)),
	}
}

type stage int

const (
	stagePick stage = iota
	stageLoading
	stageDisplay
)

var modeLabels = map[generate.Mode]string{
	generate.ModeMindMap:    "Mind map",
	generate.ModeSummary:    "Summary",
	generate.ModeConceptMap: "Concept map",
	generate.ModeHighlights: "Highlight reel",
}

type model struct {
	config Config
	stage  stage

	spinner  spinner.Model
	viewport viewport.Model

	width  int
	height int

	cursor int

	// requestSeq increments per generation; completions carrying an older
	// sequence are discarded as superseded.
	requestSeq int
	inFlight   bool

	activeMode generate.Mode
	result     generate.Result
	rendered   string

	infoMessage  string
	errorMessage string
}

func (m *model) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = msg.Width - 2
		m.viewport.Height = viewportHeight(msg.Height)
		if m.rendered != "" {
			m.viewport.SetContent(m.rendered)
		}
		return m, nil

	case tea.KeyMsg:
		return m.updateKeys(msg)

	case generatedMsg:
		if msg.seq != m.requestSeq {
			// Superseded request; its result is discarded.
			return m, nil
		}
		m.inFlight = false
		if msg.err != nil {
			m.stage = stagePick
			m.errorMessage = msg.err.Error()
			m.infoMessage = ""
			return m, nil
		}
		m.stage = stageDisplay
		m.activeMode = msg.mode
		m.result = msg.result
		m.rendered = renderResult(msg.result, m.viewport.Width)
		m.viewport.SetContent(m.rendered)
		m.viewport.GotoTop()
		m.errorMessage = ""
		m.infoMessage = fmt.Sprintf("%s ready. Press e to export, esc for modes.", modeLabels[msg.mode])
		return m, nil

	case exportedMsg:
		if msg.err != nil {
			m.errorMessage = "export failed: " + msg.err.Error()
		} else {
			m.errorMessage = ""
			m.infoMessage = "Exported to " + msg.path
		}
		return m, nil

	case spinner.TickMsg:
		if !m.inFlight {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	if m.stage == stageDisplay {
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "up", "k":
		if !m.inFlight && m.stage != stageDisplay && m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case "down", "j":
		if !m.inFlight && m.stage != stageDisplay && m.cursor < len(generate.Modes())-1 {
			m.cursor++
		}
		return m, nil

	case "enter", "g":
		// The trigger is disabled while a request is outstanding; a second
		// generation cannot start until the first completes.
		if m.inFlight {
			return m, nil
		}
		mode := generate.Modes()[m.cursor]
		m.inFlight = true
		m.stage = stageLoading
		m.requestSeq++
		m.errorMessage = ""
		m.infoMessage = "Generating " + modeLabels[mode] + "…"
		return m, tea.Batch(
			m.spinner.Tick,
			generateCmd(m.config.Generator, mode, m.config.Transcript, m.requestSeq),
		)

	case "e":
		if m.result == nil {
			return m, nil
		}
		path := exportPath(m.config.ExportDir, m.activeMode)
		return m, exportCmd(path, m.result)

	case "esc":
		if m.stage == stageDisplay {
			m.stage = stagePick
			m.infoMessage = "Pick a mode and press enter."
		}
		return m, nil
	}

	if m.stage == stageDisplay {
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}
	return m, nil
}

func viewportHeight(total int) int {
	// Header, status and key legend take up the rest of the frame.
	h := total - 8
	if h < 5 {
		h = 5
	}
	return h
}

func exportPath(dir string, mode generate.Mode) string {
	name := export.DefaultName(mode)
	if dir == "" {
		return name
	}
	return dir + "/" + name
}
