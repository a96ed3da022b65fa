package stats

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

const defaultRuleWidth = 40

var (
	sectionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true)
	valueStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
)

// RenderReport writes all four sections of the report. ruleWidth sets the
// width of the separator line; zero uses the default.
func RenderReport(w io.Writer, r Report, ruleWidth int) error {
	if ruleWidth <= 0 {
		ruleWidth = defaultRuleWidth
	}
	rule := strings.Repeat("-", ruleWidth)

	var lines []string
	lines = append(lines, fmt.Sprintf("Filters => City: %s, Month: %s, Day: %s", r.Filter.City, r.Filter.Month, r.Filter.Day))
	lines = append(lines, mutedStyle.Render(fmt.Sprintf("%d trips match", r.Trips)), rule)
	lines = appendSection(lines, "Calculating The Most Frequent Times of Travel...", timeLines(r.Time), r.Elapsed.Time, rule)
	lines = appendSection(lines, "Calculating The Most Popular Stations and Trip...", stationLines(r.Stations), r.Elapsed.Stations, rule)
	lines = appendSection(lines, "Calculating Trip Duration...", durationLines(r.Durations), r.Elapsed.Durations, rule)
	lines = appendSection(lines, "Calculating User Stats...", userLines(r.Users), r.Elapsed.Users, rule)

	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func appendSection(lines []string, title string, body []string, elapsed time.Duration, rule string) []string {
	lines = append(lines, "", sectionStyle.Render(title), "")
	lines = append(lines, body...)
	lines = append(lines, "", mutedStyle.Render(fmt.Sprintf("This took %.6f seconds.", elapsed.Seconds())), rule)
	return lines
}

func timeLines(s TimeStats) []string {
	var lines []string
	switch s.Month.Status {
	case StatusOK:
		lines = append(lines, "The most common month is: "+valueStyle.Render(s.Month.Value))
	case StatusFilterSpecific:
		lines = append(lines, "No common month. You selected a specific month filter!!")
	default:
		lines = append(lines, "No common month found!")
	}
	switch s.Day.Status {
	case StatusOK:
		lines = append(lines, "The most common day is: "+valueStyle.Render(s.Day.Value))
	case StatusFilterSpecific:
		lines = append(lines, "No common day. You selected a specific day filter!!")
	default:
		lines = append(lines, "No common day found!")
	}
	if s.Hour.OK() {
		lines = append(lines, "The most common hour is: "+valueStyle.Render(strconv.Itoa(s.Hour.Value)))
	} else {
		lines = append(lines, "No common hour found!")
	}
	return lines
}

func stationLines(s StationStats) []string {
	var lines []string
	if s.Start.OK() {
		lines = append(lines, "The most common start station is: "+valueStyle.Render(s.Start.Value))
	} else {
		lines = append(lines, "No common start station found!")
	}
	if s.End.OK() {
		lines = append(lines, "The most common end station is: "+valueStyle.Render(s.End.Value))
	} else {
		lines = append(lines, "No common end station found!")
	}
	if s.Pair.OK() {
		p := s.Pair.Value
		lines = append(lines, fmt.Sprintf("The most common trip is from %s to %s with %s trips.",
			valueStyle.Render(p.Start), valueStyle.Render(p.End), valueStyle.Render(strconv.Itoa(p.Count))))
	} else {
		lines = append(lines, "No common station pair found!")
	}
	return lines
}

func durationLines(s DurationStats) []string {
	if s.Status != StatusOK {
		return []string{"No data found! Please choose another filter!!"}
	}
	return []string{
		fmt.Sprintf("Total travel time %s seconds or %d hours", formatSeconds(s.TotalSeconds), s.TotalHours),
		fmt.Sprintf("Average travel time %s seconds or %d hours", formatSeconds(s.MeanSeconds), s.MeanHours),
	}
}

func userLines(s UserStats) []string {
	var lines []string
	if s.UserTypes.OK() {
		lines = append(lines, "User type info:")
		lines = append(lines, countTable("User Type", s.UserTypes.Value)...)
	} else {
		lines = append(lines, "No user type data found! Please choose another filter!!")
	}

	lines = append(lines, "")
	switch s.Gender.Status {
	case StatusOK:
		lines = append(lines, "User gender info:")
		lines = append(lines, countTable("Gender", s.Gender.Value)...)
	case StatusNotAvailable:
		lines = append(lines, "No gender information in this city!!")
	default:
		lines = append(lines, "No gender data found! Please choose another filter!!")
	}

	lines = append(lines, "")
	switch s.BirthYear.Status {
	case StatusOK:
		b := s.BirthYear.Value
		lines = append(lines,
			"The earliest birth year is: "+valueStyle.Render(strconv.Itoa(b.Earliest)),
			"The most recent birth year is: "+valueStyle.Render(strconv.Itoa(b.MostRecent)),
			"The common birth year is: "+valueStyle.Render(strconv.Itoa(b.Common)),
		)
	case StatusNotAvailable:
		lines = append(lines, "No birth year information in this city!!")
	default:
		lines = append(lines, "No birth year data found! Please choose another filter!!")
	}
	return lines
}

func countTable(label string, counts []Count) []string {
	rows := make([][]string, 0, len(counts))
	for _, c := range counts {
		rows = append(rows, []string{c.Value, strconv.Itoa(c.Count)})
	}
	return formatTable([]string{label, "Count"}, rows, map[int]bool{1: true})
}

func formatSeconds(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
