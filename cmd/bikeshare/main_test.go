package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/BurntSushi/toml"

	"github.com/verte-zerg/bikeshare/internal/config"
	"github.com/verte-zerg/bikeshare/internal/model"
	"github.com/verte-zerg/bikeshare/internal/trips"
)

const sampleCSV = `Start Time,End Time,Trip Duration,Start Station,End Station,User Type
2017-06-23 15:09:32,2017-06-23 15:14:53,321,Wood St,Damen Ave,Subscriber
2017-05-25 18:19:03,2017-05-25 18:45:53,1610,Theater on the Lake,Sheffield Ave,Customer
`

func testLoader() *trips.Loader {
	return trips.NewLoader(fstest.MapFS{
		"washington.csv": {Data: []byte(sampleCSV)},
	}, trips.DefaultVocabulary())
}

func TestNormalizeFilter(t *testing.T) {
	got := normalizeFilter(model.Filter{City: " Washington", Month: "june", Day: ""})
	want := model.Filter{City: "washington", Month: "June", Day: ""}
	if got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestResolveFilterNonInteractive(t *testing.T) {
	full := model.Filter{City: "chicago", Month: "All", Day: "Monday"}
	got, err := resolveFilter(trips.DefaultVocabulary(), full, false)
	if err != nil || got != full {
		t.Fatalf("unexpected result %+v (%v)", got, err)
	}
	if _, err := resolveFilter(trips.DefaultVocabulary(), model.Filter{City: "chicago"}, false); err == nil {
		t.Fatalf("expected error for incomplete filter without a terminal")
	}
}

func TestRunCycleWritesReport(t *testing.T) {
	var buf bytes.Buffer
	filter := model.Filter{City: "washington", Month: "June", Day: "All"}
	if err := runCycle(context.Background(), &buf, testLoader(), filter); err != nil {
		t.Fatalf("run cycle: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "Wood St") || !strings.Contains(out, "No gender information in this city!!") {
		t.Fatalf("unexpected report:\n%s", out)
	}
}

func TestRunCycleFailsOnMissingDataset(t *testing.T) {
	var buf bytes.Buffer
	err := runCycle(context.Background(), &buf, testLoader(), model.Filter{City: "chicago", Month: "All", Day: "All"})
	if !errors.Is(err, trips.ErrDataSource) {
		t.Fatalf("expected ErrDataSource, got %v", err)
	}
	if buf.Len() != 0 {
		t.Fatalf("expected no partial output, got %q", buf.String())
	}
}

func TestWriteCities(t *testing.T) {
	var buf bytes.Buffer
	if err := writeCities(&buf, testLoader()); err != nil {
		t.Fatalf("write cities: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 cities, got %d", len(lines))
	}
	if !strings.HasPrefix(lines[2], "washington") || !strings.HasSuffix(lines[2], "found") {
		t.Fatalf("unexpected washington line: %q", lines[2])
	}
	if !strings.HasSuffix(lines[0], "missing") {
		t.Fatalf("unexpected chicago line: %q", lines[0])
	}
}

func TestDefaultConfigTemplateDecodes(t *testing.T) {
	var cfg config.FileConfig
	if _, err := toml.Decode(defaultConfigTemplate(), &cfg); err != nil {
		t.Fatalf("template should be valid TOML: %v", err)
	}
	if cfg.Report.City != nil {
		t.Fatalf("expected template values to be commented out")
	}
}

func TestEnsureConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := ensureConfigFile(path); err != nil {
		t.Fatalf("ensure config: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read config: %v", err)
	}
	if !strings.Contains(string(data), "[report]") {
		t.Fatalf("unexpected template: %s", data)
	}
	if _, err := config.LoadConfig(path); err != nil {
		t.Fatalf("template should load: %v", err)
	}
}
