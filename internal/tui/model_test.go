package tui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/bikeshare/internal/model"
	"github.com/verte-zerg/bikeshare/internal/trips"
)

func typeLine(m *Model, s string) tea.Cmd {
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	return cmd
}

func TestModelCollectsNormalizedAnswers(t *testing.T) {
	filter := model.Filter{}
	questions, targets := FilterQuestions(trips.DefaultVocabulary(), &filter)
	if len(questions) != 3 || len(targets) != 3 {
		t.Fatalf("expected 3 questions, got %d", len(questions))
	}
	m := NewModel(greeting, questions)
	if !strings.Contains(m.View(), "Please select a city") {
		t.Fatalf("expected city question in view: %s", m.View())
	}

	typeLine(m, "Chicago")
	typeLine(m, "june")
	cmd := typeLine(m, "all")
	if cmd == nil {
		t.Fatalf("expected quit command after last answer")
	}
	answers, err := m.Answers()
	if err != nil {
		t.Fatalf("answers: %v", err)
	}
	want := []string{"chicago", "June", "All"}
	for i := range want {
		if answers[i] != want[i] {
			t.Fatalf("answer %d: got %q, want %q", i, answers[i], want[i])
		}
	}
}

func TestModelRejectsUnknownValues(t *testing.T) {
	filter := model.Filter{Month: "All", Day: "All"}
	questions, _ := FilterQuestions(trips.DefaultVocabulary(), &filter)
	if len(questions) != 1 {
		t.Fatalf("expected only the city question, got %d", len(questions))
	}
	m := NewModel("", questions)

	typeLine(m, "boston")
	if !strings.Contains(m.View(), "doesn't match") {
		t.Fatalf("expected mismatch message, got: %s", m.View())
	}
	if _, err := m.Answers(); !errors.Is(err, ErrCanceled) {
		t.Fatalf("expected incomplete prompt, got %v", err)
	}

	typeLine(m, "new york city")
	answers, err := m.Answers()
	if err != nil || answers[0] != "new york city" {
		t.Fatalf("unexpected answers %v (%v)", answers, err)
	}
}

func TestModelCancel(t *testing.T) {
	m := NewModel("", []Question{{Prompt: "Restart?"}})
	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if _, err := m.Answers(); !errors.Is(err, ErrCanceled) {
		t.Fatalf("expected ErrCanceled, got %v", err)
	}
	if m.View() != "" {
		t.Fatalf("expected empty view after cancel")
	}
}

func TestAskFilterSkipsPromptWhenComplete(t *testing.T) {
	preset := model.Filter{City: "washington", Month: "May", Day: "Monday"}
	got, err := AskFilter(trips.DefaultVocabulary(), preset)
	if err != nil {
		t.Fatalf("ask filter: %v", err)
	}
	if got != preset {
		t.Fatalf("expected preset to pass through, got %+v", got)
	}
}
