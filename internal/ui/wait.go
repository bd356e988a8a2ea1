package ui

import (
	"context"
	"errors"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/fakeyudi/aura/internal/advice"
)

// ErrInterrupted is returned when the user cancels the advice wait.
var ErrInterrupted = errors.New("interrupted while waiting for advice")

// WaitForAdvice runs the advice request while showing an indeterminate
// spinner. The request runs concurrently with the spinner loop; when it
// settles (result, timeout, or failure) the spinner is torn down and the
// result returned. A keyboard interrupt cancels the outstanding request
// via cancel and returns ErrInterrupted, leaving no partial panel output.
//
// When interactive is false (stdout is not a terminal) no spinner is
// shown and the request simply runs to completion under its ceiling.
func WaitForAdvice(run func() advice.Result, cancel context.CancelFunc, interactive bool) (advice.Result, error) {
	if !interactive {
		return run(), nil
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("178"))

	m := waitModel{sp: sp, run: run, cancel: cancel}
	out, err := tea.NewProgram(m).Run()
	if err != nil {
		return advice.Result{}, err
	}

	final := out.(waitModel)
	if final.interrupted {
		return advice.Result{}, ErrInterrupted
	}
	return final.result, nil
}

// settledMsg carries the advice result into the Bubble Tea loop.
type settledMsg advice.Result

type waitModel struct {
	sp          spinner.Model
	run         func() advice.Result
	cancel      context.CancelFunc
	result      advice.Result
	settled     bool
	interrupted bool
}

func (m waitModel) Init() tea.Cmd {
	return tea.Batch(
		m.sp.Tick,
		func() tea.Msg { return settledMsg(m.run()) },
	)
}

func (m waitModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case settledMsg:
		m.result = advice.Result(msg)
		m.settled = true
		return m, tea.Quit

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.interrupted = true
			m.cancel() // abandon the outstanding call
			return m, tea.Quit
		}
		return m, nil

	default:
		var cmd tea.Cmd
		m.sp, cmd = m.sp.Update(msg)
		return m, cmd
	}
}

func (m waitModel) View() string {
	if m.settled || m.interrupted {
		// Quitting: leave the line blank so panels render cleanly after.
		return ""
	}
	return m.sp.View() + " consulting the advice service… " +
		dimStyle.Render("(ctrl+c to skip)") + "\n"
}
