package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/jtarchie/thumb2dis/config"
)

func TestRunDecodesMovImmediate(t *testing.T) {
	var buf bytes.Buffer
	// MOV r0, #1: 0x2001 little-endian bytes.
	data := []byte{0x01, 0x20}

	if err := run(&buf, data, config.Default()); err != nil {
		t.Fatalf("run() error: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "MOV R0, #1") {
		t.Errorf("output = %q, want it to contain %q", out, "MOV R0, #1")
	}
	if !strings.HasPrefix(out, "0000: ") {
		t.Errorf("output = %q, want it to start with an address", out)
	}
}

func TestRunStopsOnErrorWhenConfigured(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.Default()
	cfg.Decode.StopOnError = true
	// A lone 32-bit leader half-word with nothing following is incomplete.
	data := []byte{0x4f, 0xf0}

	if err := run(&buf, data, cfg); err == nil {
		t.Fatal("expected an error to be returned")
	}
}

func TestRunContinuesPastErrorByDefault(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.Default()
	// One bad half-word followed by a valid MOV r0, #1.
	data := []byte{0xff, 0xff, 0x01, 0x20}

	if err := run(&buf, data, cfg); err != nil {
		t.Fatalf("run() error: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "<error:") {
		t.Errorf("output = %q, want an error line for the bad half-word", out)
	}
	if !strings.Contains(out, "MOV R0, #1") {
		t.Errorf("output = %q, want decoding to continue after the error", out)
	}
}
