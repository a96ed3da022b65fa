// Package tui provides the Bubble Tea prompt that collects report filters.
package tui

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ErrCanceled is returned when the user aborts the prompt.
var ErrCanceled = errors.New("prompt canceled")

var (
	greetingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true)
	questionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	footerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
)

// Question is one prompt step. Allowed restricts the normalized answer; an
// empty Allowed accepts anything.
type Question struct {
	Prompt    string
	Mismatch  string
	Allowed   []string
	Normalize func(string) string
}

func (q Question) accept(raw string) (string, bool) {
	answer := raw
	if q.Normalize != nil {
		answer = q.Normalize(raw)
	}
	if len(q.Allowed) == 0 {
		return answer, true
	}
	for _, allowed := range q.Allowed {
		if answer == allowed {
			return answer, true
		}
	}
	return answer, false
}

// Model implements a sequential question prompt.
type Model struct {
	greeting  string
	questions []Question
	answers   []string
	index     int
	input     textinput.Model
	errMsg    string
	canceled  bool
}

// NewModel constructs a prompt asking each question in order.
func NewModel(greeting string, questions []Question) *Model {
	input := textinput.New()
	input.Prompt = "> "
	input.CharLimit = 64
	input.Focus()
	return &Model{
		greeting:  greeting,
		questions: questions,
		answers:   make([]string, 0, len(questions)),
		input:     input,
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	if m.done() {
		return tea.Quit
	}
	return textinput.Blink
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	switch keyMsg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		m.canceled = true
		return m, tea.Quit
	case tea.KeyEnter:
		return m.submit()
	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
}

func (m *Model) submit() (tea.Model, tea.Cmd) {
	if m.done() {
		return m, tea.Quit
	}
	q := m.questions[m.index]
	answer, ok := q.accept(m.input.Value())
	m.input.Reset()
	if !ok {
		m.errMsg = q.Mismatch
		return m, nil
	}
	m.errMsg = ""
	m.answers = append(m.answers, answer)
	m.index++
	if m.done() {
		return m, tea.Quit
	}
	return m, nil
}

func (m *Model) done() bool {
	return m.index >= len(m.questions)
}

// Answers returns the accepted answers, or ErrCanceled if the user quit
// before answering every question.
func (m *Model) Answers() ([]string, error) {
	if m.canceled || !m.done() {
		return nil, ErrCanceled
	}
	return append([]string(nil), m.answers...), nil
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.canceled || m.done() {
		return ""
	}
	var b strings.Builder
	if m.greeting != "" {
		b.WriteString(greetingStyle.Render(m.greeting))
		b.WriteString("\n\n")
	}
	b.WriteString(questionStyle.Render(m.questions[m.index].Prompt))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	if m.errMsg != "" {
		b.WriteString(errorStyle.Render(m.errMsg))
		b.WriteString("\n")
	}
	b.WriteString(footerStyle.Render("enter to confirm, esc to quit"))
	return b.String()
}
