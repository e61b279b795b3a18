package main

import (
	"bytes"
	"strings"
	"testing"

	"gonum.org/v1/gonum/spatial/r2"
)

func TestParseArgsMinimal(t *testing.T) {
	cfg, err := parseArgs([]string{"--width=1", "--height=2", "--finger_width=3"})
	if err != nil {
		t.Fatal(err)
	}
	k := cfg.params
	if k.Size != (r2.Vec{X: 1, Y: 2}) {
		t.Errorf("size = %v, want {1 2}", k.Size)
	}
	if k.FingerWidth != 3 {
		t.Errorf("finger width = %g, want 3", k.FingerWidth)
	}
	if k.Suppressed != [4]int{} {
		t.Errorf("suppressed = %v, want all zero", k.Suppressed)
	}
	if k.Kerf != 0 || k.SafetyMargin != 0 {
		t.Errorf("kerf = %g, safety margin = %g, want both zero", k.Kerf, k.SafetyMargin)
	}
	if cfg.format != "svg" || cfg.output != "" {
		t.Errorf("format = %q output = %q, want svg to standard output", cfg.format, cfg.output)
	}
}

func TestParseArgsFull(t *testing.T) {
	cfg, err := parseArgs([]string{
		"--width=300", "--height=150", "--finger_width=20",
		"--suppressed_fingers=4,5,6,7", "--kerf=8.1", "--finger_width_safety_margin=9.1",
		"-o=panel.html", "-format=html",
	})
	if err != nil {
		t.Fatal(err)
	}
	k := cfg.params
	if k.Suppressed != [4]int{4, 5, 6, 7} {
		t.Errorf("suppressed = %v, want [4 5 6 7]", k.Suppressed)
	}
	if k.Kerf != 8.1 {
		t.Errorf("kerf = %g, want 8.1", k.Kerf)
	}
	if k.SafetyMargin != 9.1 {
		t.Errorf("safety margin = %g, want 9.1", k.SafetyMargin)
	}
	if cfg.output != "panel.html" || cfg.format != "html" {
		t.Errorf("output = %q format = %q", cfg.output, cfg.format)
	}
}

func TestParseArgsErrors(t *testing.T) {
	for _, tc := range []struct {
		name string
		args []string
	}{
		{"missing required", []string{"--width=100"}},
		{"short suppressed list", []string{"--width=1", "--height=2", "--finger_width=3", "--suppressed_fingers=1,2,3"}},
		{"non-numeric suppressed", []string{"--width=1", "--height=2", "--finger_width=3", "--suppressed_fingers=a,b,c,d"}},
	} {
		if _, err := parseArgs(tc.args); err == nil {
			t.Errorf("%s: parseArgs accepted %v", tc.name, tc.args)
		}
	}
}

func TestParseSuppressedWhitespace(t *testing.T) {
	got, err := parseSuppressed(" 1, 2 ,3,4 ")
	if err != nil {
		t.Fatal(err)
	}
	if got != [4]int{1, 2, 3, 4} {
		t.Errorf("parseSuppressed = %v, want [1 2 3 4]", got)
	}
}

func TestRunSVGToStdout(t *testing.T) {
	cfg, err := parseArgs([]string{"--width=100", "--height=60", "--finger_width=8", "--kerf=0.2"})
	if err != nil {
		t.Fatal(err)
	}
	var out bytes.Buffer
	if err := run(cfg, &out); err != nil {
		t.Fatal(err)
	}
	got := out.String()
	if !strings.Contains(got, "<svg") || !strings.Contains(got, "</svg>") {
		t.Errorf("run produced no svg document:\n%.200s", got)
	}
}

func TestRunRejectsBadFormat(t *testing.T) {
	cfg, err := parseArgs([]string{"--width=100", "--height=60", "--finger_width=8", "-format=pdf"})
	if err != nil {
		t.Fatal(err)
	}
	if err := run(cfg, &bytes.Buffer{}); err == nil {
		t.Error("run accepted unknown format")
	}
}

func TestRunFileFormatsRequireOutput(t *testing.T) {
	for _, format := range []string{"dxf", "png"} {
		cfg, err := parseArgs([]string{"--width=100", "--height=60", "--finger_width=8", "-format=" + format})
		if err != nil {
			t.Fatal(err)
		}
		if err := run(cfg, &bytes.Buffer{}); err == nil {
			t.Errorf("%s output without -o accepted", format)
		}
	}
}
