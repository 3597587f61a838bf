package log

import (
	"testing"

	"go.uber.org/zap"
)

func TestLoggerWithoutInit(t *testing.T) {
	log = nil
	if Logger() == nil {
		t.Fatal("expected a fallback logger")
	}
	// Must not panic before Init.
	Debugw("sizing", "section", 2.5)
	Sync()
}

func TestInit(t *testing.T) {
	for _, debug := range []bool{true, false} {
		if err := Init(debug); err != nil {
			t.Fatalf("Init(%v): %v", debug, err)
		}
		Infow("initialized", "debug", debug)
	}
	log = nil
}

func TestInitLevels(t *testing.T) {
	defer func() { log = nil }()

	if err := Init(false); err != nil {
		t.Fatal(err)
	}
	core := Logger().Desugar().Core()
	if core.Enabled(zap.WarnLevel) || !core.Enabled(zap.ErrorLevel) {
		t.Error("production logger should only pass errors")
	}

	if err := Init(true); err != nil {
		t.Fatal(err)
	}
	if !Logger().Desugar().Core().Enabled(zap.DebugLevel) {
		t.Error("debug logger should pass debug entries")
	}
}
