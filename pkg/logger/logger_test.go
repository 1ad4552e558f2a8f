package logger

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

// captureLogs redirects the package logger to an in-memory buffer for the
// duration of fn and returns the captured output.
func captureLogs(t *testing.T, fn func()) string {
	t.Helper()
	var buf bytes.Buffer
	handler := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug, AddSource: true})
	prev := defaultLogger
	SetLogger(slog.New(handler))
	t.Cleanup(func() { SetLogger(prev) })
	fn()
	return buf.String()
}

func TestLevels(t *testing.T) {
	tests := []struct {
		name     string
		log      func()
		expected []string
	}{
		{"Info", func() { Info("resolved", "variable", "room") }, []string{"level=INFO", "resolved", "variable=room"}},
		{"Warn", func() { Warn("unsorted") }, []string{"level=WARN", "unsorted"}},
		{"Error", func() { Error("no strength", "err", "oops") }, []string{"level=ERROR", "no strength", "err=oops"}},
		{"Debug", func() { Debug("dbg") }, []string{"level=DEBUG", "dbg"}},
		{"Infof", func() { Infof("sorted %s by %d", "room", 3) }, []string{"level=INFO", "sorted room by 3"}},
		{"Warnf", func() { Warnf("warnf-%d", 7) }, []string{"level=WARN", "warnf-7"}},
		{"Errorf", func() { Errorf("errorf-%s", "x") }, []string{"level=ERROR", "errorf-x"}},
		{"Debugf", func() { Debugf("debugf-%s", "y") }, []string{"level=DEBUG", "debugf-y"}},
		{"Printf", func() { Printf("printf-%s", "z") }, []string{"level=INFO", "printf-z"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			out := captureLogs(t, tc.log)
			for _, want := range tc.expected {
				if !strings.Contains(out, want) {
					t.Errorf("expected %q in output: %s", want, out)
				}
			}
		})
	}
}

func TestSourceIsCaller(t *testing.T) {
	out := captureLogs(t, func() { Info("where") })
	if !strings.Contains(out, "logger_test.go") {
		t.Errorf("expected caller file in source attribute: %s", out)
	}
}

func TestSetLevel(t *testing.T) {
	var buf bytes.Buffer
	prev := defaultLogger
	prevLevel := level.Level()
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: level})))
	t.Cleanup(func() {
		SetLogger(prev)
		level.Set(prevLevel)
	})

	if err := SetLevel("warn"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	Info("hidden-info")
	Warn("visible-warn")
	if strings.Contains(buf.String(), "hidden-info") {
		t.Errorf("info should be filtered at warn level: %s", buf.String())
	}
	if !strings.Contains(buf.String(), "visible-warn") {
		t.Errorf("expected visible-warn in output: %s", buf.String())
	}

	if err := SetLevel("DEBUG"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	Debug("visible-debug")
	if !strings.Contains(buf.String(), "visible-debug") {
		t.Errorf("expected visible-debug in output: %s", buf.String())
	}
}

func TestSetLevel_Unknown(t *testing.T) {
	if err := SetLevel("verbose"); err == nil {
		t.Error("expected error for unknown level")
	}
}
