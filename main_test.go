package main

import (
	"strings"
	"testing"
	"time"

	"github.com/atomicstack/study-input/internal/app"
	"github.com/atomicstack/study-input/internal/config"
)

func TestCollectTTYDetailsIncludesStandardDescriptors(t *testing.T) {
	info := collectTTYDetails()
	if len(info.Probes) != 3 {
		t.Fatalf("expected 3 probe entries, got %d", len(info.Probes))
	}
	expected := []string{"stdin", "stdout", "stderr"}
	for i, name := range expected {
		if info.Probes[i].Name != name {
			t.Fatalf("expected probe %d name %q, got %q", i, name, info.Probes[i].Name)
		}
	}
}

func TestStartupTracePayloadIncludesFlags(t *testing.T) {
	cfg := config.Config{
		App: app.Config{
			Generator:  "plan-cmd",
			Timeout:    time.Minute,
			StartDir:   "/tmp",
			Width:      80,
			Height:     24,
			ShowFooter: true,
		},
		Logging: config.Logging{
			FilePath: "trace.log",
			Trace:    true,
		},
		File: "study-input.toml",
		Flags: map[string]string{
			"generator": "plan-cmd",
			"width":     "80",
			"height":    "24",
			"footer":    "true",
		},
		Args: []string{"--generator", "plan-cmd"},
	}

	payload := startupTracePayload(cfg)

	flagsValue, ok := payload["flags"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected flags map in payload")
	}
	if flagsValue["generator"] != "plan-cmd" {
		t.Fatalf("expected generator flag %q, got %v", "plan-cmd", flagsValue["generator"])
	}
	if flagsValue["width"] != "80" {
		t.Fatalf("expected width 80, got %v", flagsValue["width"])
	}
	if flagsValue["height"] != "24" {
		t.Fatalf("expected height 24, got %v", flagsValue["height"])
	}
	if flagsValue["footer"] != "true" {
		t.Fatalf("expected footer flag true, got %v", flagsValue["footer"])
	}
	if flagsValue["trace"] != true {
		t.Fatalf("expected trace flag true, got %v", flagsValue["trace"])
	}
	if flagsValue["logFile"] != "trace.log" {
		t.Fatalf("expected log file trace.log, got %v", flagsValue["logFile"])
	}
	if payload["configFile"] != "study-input.toml" {
		t.Fatalf("expected config file in payload, got %v", payload["configFile"])
	}

	if _, ok := payload["tty"].(ttyDetails); !ok {
		t.Fatalf("expected tty details in payload")
	}
	if cfgValue, ok := payload["config"].(config.Config); !ok {
		t.Fatalf("expected config in payload")
	} else if cfgValue.App != cfg.App {
		t.Fatalf("expected app config %#v, got %#v", cfg.App, cfgValue.App)
	}
}

func TestWriteOutcome(t *testing.T) {
	cases := []struct {
		outcome app.Outcome
		want    string
	}{
		{app.Outcome{Submitted: true, Goal: "  learn go  "}, "  learn go  \n"},
		{app.Outcome{Plan: "Day 1"}, "Day 1\n"},
		{app.Outcome{}, ""},
	}
	for _, tc := range cases {
		var b strings.Builder
		if err := writeOutcome(&b, tc.outcome); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if b.String() != tc.want {
			t.Fatalf("expected %q, got %q", tc.want, b.String())
		}
	}
}
