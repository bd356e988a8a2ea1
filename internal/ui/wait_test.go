package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/fakeyudi/aura/internal/advice"
)

func TestWaitForAdviceNonInteractive(t *testing.T) {
	called := false
	res, err := WaitForAdvice(func() advice.Result {
		called = true
		return advice.Result{Outcome: advice.OutcomeOK, Text: "hi"}
	}, func() {}, false)
	if err != nil {
		t.Fatal(err)
	}
	if !called {
		t.Fatal("run was not invoked")
	}
	if res.Outcome != advice.OutcomeOK || res.Text != "hi" {
		t.Errorf("res = %+v", res)
	}
}

func TestWaitModelSettles(t *testing.T) {
	m := waitModel{}

	next, cmd := m.Update(settledMsg(advice.Result{Outcome: advice.OutcomeTimedOut}))
	got := next.(waitModel)

	if !got.settled {
		t.Error("model should be settled")
	}
	if got.result.Outcome != advice.OutcomeTimedOut {
		t.Errorf("result = %+v", got.result)
	}
	if cmd == nil {
		t.Error("settling should quit the program")
	}
	if got.View() != "" {
		t.Error("settled view should be blank")
	}
}

func TestWaitModelInterrupt(t *testing.T) {
	cancelled := false
	m := waitModel{cancel: func() { cancelled = true }}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	got := next.(waitModel)

	if !got.interrupted {
		t.Error("ctrl+c should mark the model interrupted")
	}
	if !cancelled {
		t.Error("ctrl+c should cancel the outstanding request")
	}
}
