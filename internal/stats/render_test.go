package stats

import (
	"bytes"
	"strings"
	"testing"

	"github.com/verte-zerg/bikeshare/internal/model"
)

func TestRenderReport(t *testing.T) {
	a := trip("2017-06-23 15:09:32", "Wood St", "Damen Ave")
	a.Duration = f64(125)
	set := model.TripSet{Trips: []model.Trip{a}}
	r := BuildReport(set, model.Filter{City: "washington", Month: "June", Day: "All"})

	var buf bytes.Buffer
	if err := RenderReport(&buf, r, 0); err != nil {
		t.Fatalf("render: %v", err)
	}
	out := buf.String()
	for _, want := range []string{
		"Filters => City: washington, Month: June, Day: All",
		"You selected a specific month filter",
		"The most common day is: ",
		"Friday",
		"Damen Ave",
		"Total travel time 125 seconds or 2 hours",
		"No gender information in this city!!",
		"No birth year information in this city!!",
		"This took ",
		strings.Repeat("-", defaultRuleWidth),
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestRenderReportEmpty(t *testing.T) {
	r := BuildReport(model.TripSet{}, model.Filter{City: "chicago", Month: "All", Day: "All"})
	var buf bytes.Buffer
	if err := RenderReport(&buf, r, 20); err != nil {
		t.Fatalf("render: %v", err)
	}
	out := buf.String()
	for _, want := range []string{
		"No common month found!",
		"No common hour found!",
		"No common station pair found!",
		"No data found! Please choose another filter!!",
		"No user type data found!",
		strings.Repeat("-", 20),
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
}
