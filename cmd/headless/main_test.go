package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"penguin-patrol/internal/sim"
)

func TestRunPrintsReport(t *testing.T) {
	var out, errOut bytes.Buffer
	if err := run([]string{"-ticks", "300", "-seed", "2", "-level", "glacier"}, &out, &errOut); err != nil {
		t.Fatalf("run: %v\nstderr: %s", err, errOut.String())
	}
	if !strings.HasPrefix(out.String(), "level glacier  seed 2\n") {
		t.Errorf("report = %q", out.String())
	}
	if !strings.Contains(out.String(), "ticks 300") {
		t.Errorf("report does not count ticks: %q", out.String())
	}
}

func TestRunJSONIsDeterministic(t *testing.T) {
	play := func() sim.Stats {
		var out, errOut bytes.Buffer
		if err := run([]string{"-ticks", "600", "-seed", "11", "-json"}, &out, &errOut); err != nil {
			t.Fatalf("run: %v", err)
		}
		var s sim.Stats
		if err := json.Unmarshal(out.Bytes(), &s); err != nil {
			t.Fatalf("decode %q: %v", out.String(), err)
		}
		return s
	}
	a, b := play(), play()
	if a != b {
		t.Errorf("same seed gave %+v and %+v", a, b)
	}
	if a.Ticks != 600 || a.EnemiesSpawned == 0 {
		t.Errorf("stats = %+v; want 600 ticks and some spawns", a)
	}
}

func TestRunSavesRunLog(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_DATA_HOME", dir)
	var out, errOut bytes.Buffer
	if err := run([]string{"-ticks", "10", "-save"}, &out, &errOut); err != nil {
		t.Fatalf("run: %v", err)
	}
	data, err := os.ReadFile(filepath.Join(dir, "penguin-patrol", "runs.jsonl"))
	if err != nil {
		t.Fatalf("run log: %v", err)
	}
	if !strings.Contains(string(data), `"host":"headless"`) {
		t.Errorf("run log = %q", data)
	}
}

func TestRunErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown flag", []string{"-bogus"}},
		{"missing level", []string{"-level", "nowhere"}},
		{"missing config", []string{"-config", filepath.Join(t.TempDir(), "none.json")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out, errOut bytes.Buffer
			if err := run(tt.args, &out, &errOut); err == nil {
				t.Error("expected an error")
			}
		})
	}
}
