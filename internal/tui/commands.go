package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/csheth/mindreel/internal/export"
	"github.com/csheth/mindreel/internal/generate"
)

type generatedMsg struct {
	seq    int
	mode   generate.Mode
	result generate.Result
	err    error
}

type exportedMsg struct {
	path string
	err  error
}

// generateCmd runs one pipeline invocation on its own goroutine. There is
// no cancellation once issued; a superseded result is dropped by sequence
// number in Update.
func generateCmd(gen *generate.Generator, mode generate.Mode, transcript string, seq int) tea.Cmd {
	return func() tea.Msg {
		result, err := gen.Generate(context.Background(), mode, transcript)
		return generatedMsg{seq: seq, mode: mode, result: result, err: err}
	}
}

func exportCmd(path string, result generate.Result) tea.Cmd {
	return func() tea.Msg {
		return exportedMsg{path: path, err: export.Write(path, result)}
	}
}
