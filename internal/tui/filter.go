package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/bikeshare/internal/model"
	"github.com/verte-zerg/bikeshare/internal/trips"
)

const greeting = "Hello! Let's explore some US bikeshare data!"

// FilterQuestions builds the questions for every filter field left empty in
// preset, and returns pointers into the filter the answers belong to.
func FilterQuestions(vocab trips.Vocabulary, preset *model.Filter) ([]Question, []*string) {
	var questions []Question
	var targets []*string
	if preset.City == "" {
		cities := vocab.CityNames()
		questions = append(questions, Question{
			Prompt:    fmt.Sprintf("Please select a city to explore (%s)", strings.Join(cities, ", ")),
			Mismatch:  "The name of the city you entered doesn't match!!",
			Allowed:   cities,
			Normalize: trips.NormalizeCity,
		})
		targets = append(targets, &preset.City)
	}
	if preset.Month == "" {
		months := vocab.Months()
		questions = append(questions, Question{
			Prompt:    fmt.Sprintf("Please select a month filter (%s)", strings.Join(months, ", ")),
			Mismatch:  "The name of the month you entered doesn't match!!",
			Allowed:   months,
			Normalize: trips.NormalizeTitle,
		})
		targets = append(targets, &preset.Month)
	}
	if preset.Day == "" {
		days := vocab.Days()
		questions = append(questions, Question{
			Prompt:    fmt.Sprintf("Please select a day filter (%s)", strings.Join(days, ", ")),
			Mismatch:  "The name of the day you entered doesn't match!!",
			Allowed:   days,
			Normalize: trips.NormalizeTitle,
		})
		targets = append(targets, &preset.Day)
	}
	return questions, targets
}

// AskFilter prompts for the filter fields preset leaves empty.
func AskFilter(vocab trips.Vocabulary, preset model.Filter, opts ...tea.ProgramOption) (model.Filter, error) {
	filter := preset
	questions, targets := FilterQuestions(vocab, &filter)
	if len(questions) == 0 {
		return filter, nil
	}
	answers, err := run(NewModel(greeting, questions), opts...)
	if err != nil {
		return model.Filter{}, err
	}
	for i, answer := range answers {
		*targets[i] = answer
	}
	return filter, nil
}

// AskRestart asks whether to run another report. Only "yes" restarts.
func AskRestart(opts ...tea.ProgramOption) (bool, error) {
	answers, err := run(NewModel("", []Question{{
		Prompt:    "Would you like to restart? Enter yes or no.",
		Normalize: func(s string) string { return strings.ToLower(strings.TrimSpace(s)) },
	}}), opts...)
	if err != nil {
		return false, err
	}
	return answers[0] == "yes", nil
}

func run(m *Model, opts ...tea.ProgramOption) ([]string, error) {
	final, err := tea.NewProgram(m, opts...).Run()
	if err != nil {
		return nil, fmt.Errorf("failed to run prompt: %w", err)
	}
	done, ok := final.(*Model)
	if !ok {
		return nil, fmt.Errorf("unexpected prompt model %T", final)
	}
	return done.Answers()
}
