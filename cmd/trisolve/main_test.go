package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"trisolve/internal/config"
	"trisolve/internal/logging"
)

// resetGlobals puts every flag variable back to its default and points the
// config at an empty temp dir.
func resetGlobals(t *testing.T) {
	t.Helper()
	for _, k := range []string{"TRISOLVE_FORMAT", "TRISOLVE_PRECISION", "TRISOLVE_CONCURRENCY", "TRISOLVE_LOG_LEVEL"} {
		t.Setenv(k, "")
	}

	logger = zap.NewNop()
	logging.Reset()
	cfg = config.DefaultConfig()
	verbose = false
	configPath = filepath.Join(t.TempDir(), "config.yaml")

	solveSpec.reset()
	solveFormat, solvePrecision, solveAlternate = "", -1, false

	drawSpec.reset()
	drawOutput, drawTitle, drawPrecision, drawAlternate = "-", "", -1, false
	drawViewport.Width, drawViewport.Height, drawViewport.Padding = 0, 0, -1

	batchConcurrency, batchFormat, batchPrecision, batchWatch = 0, "", -1, false
	configForce = false

	t.Cleanup(func() {
		cfg = nil
		logging.Reset()
	})
}

// newTestCmd returns a bare command writing to a buffer.
func newTestCmd() (*cobra.Command, *bytes.Buffer) {
	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)
	return cmd, &buf
}

func TestCurrentConfigDefaults(t *testing.T) {
	cfg = nil
	c := currentConfig()
	if c.Output.Format != "text" {
		t.Fatalf("expected default format text, got %s", c.Output.Format)
	}
}

func TestNewRenderer(t *testing.T) {
	resetGlobals(t)
	cfg.Output.Format = "yaml"
	cfg.Output.Precision = 3

	r, err := newRenderer("", -1)
	if err != nil {
		t.Fatalf("newRenderer failed: %v", err)
	}
	if r.Format != "yaml" || r.Precision != 3 {
		t.Fatalf("expected config values, got %s/%d", r.Format, r.Precision)
	}

	r, err = newRenderer("json", 0)
	if err != nil {
		t.Fatalf("newRenderer failed: %v", err)
	}
	if r.Format != "json" || r.Precision != 0 {
		t.Fatalf("expected flag values, got %s/%d", r.Format, r.Precision)
	}

	if _, err := newRenderer("xml", 2); err == nil {
		t.Fatal("expected error for unknown format")
	}
	if _, err := newRenderer("text", 99); err == nil {
		t.Fatal("expected error for huge precision")
	}
}

func TestIsInteractive(t *testing.T) {
	if !isInteractive(formCmd) || !isInteractive(rootCmd) {
		t.Fatal("form and bare root should be interactive")
	}
	for _, cmd := range []*cobra.Command{solveCmd, batchCmd, drawCmd, configCmd, configShowCmd} {
		if isInteractive(cmd) {
			t.Fatalf("%s is not interactive", cmd.Name())
		}
	}
}

func captureOutput(t *testing.T, fn func()) string {
	t.Helper()

	origOut := os.Stdout
	origErr := os.Stderr
	rOut, wOut, _ := os.Pipe()
	rErr, wErr, _ := os.Pipe()
	os.Stdout = wOut
	os.Stderr = wErr

	done := make(chan string)
	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, rOut)
		_, _ = io.Copy(&buf, rErr)
		done <- buf.String()
	}()

	fn()

	_ = wOut.Close()
	_ = wErr.Close()
	os.Stdout = origOut
	os.Stderr = origErr
	return <-done
}

func TestDrawToStdout(t *testing.T) {
	resetGlobals(t)
	drawSpec = specFlags{schema: "SSS", a: 3, b: 4, c: 5}

	output := captureOutput(t, func() {
		if err := runDraw(&cobra.Command{}, nil); err != nil {
			t.Errorf("runDraw returned error: %v", err)
		}
	})

	if !strings.HasPrefix(output, "<svg") {
		t.Fatalf("expected SVG on stdout, got: %.80s", output)
	}
	if !strings.Contains(output, "SSS triangle") {
		t.Fatalf("expected default title, got: %s", output)
	}
}
