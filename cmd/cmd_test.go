package cmd

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alexiusacademia/gocable/internal/convert"
	"github.com/alexiusacademia/gocable/internal/formula"
	"github.com/alexiusacademia/gocable/internal/nbr"
	"github.com/alexiusacademia/gocable/internal/sizing"
)

// execute runs the root command once. Flag values persist between runs in
// the same process, so tests either drive a different subcommand or reset
// what they set.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestSizeCommand(t *testing.T) {
	out, err := execute(t, "size", "--current", "20", "--length", "30", "--diagram")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"RECOMMENDED SECTION", "S = 4 mm²", "high drop", "overload", "RECOMMENDED", "VOLTAGE DROP CURVE"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestPrintSizingResultNoCompliantSection(t *testing.T) {
	res, err := sizing.SizeStandard(formula.CircuitSpec{
		LengthM:           50,
		CurrentA:          500,
		NominalVoltageV:   380,
		Phases:            formula.ThreePhase,
		PowerFactor:       0.92,
		ReactanceOhmPerKm: 0.1,
		OperatingTempC:    70,
		Material:          nbr.Copper,
	})
	if err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	printSizingResult(&out, res)
	for _, want := range []string{"NO STANDARD SECTION COMPLIES", "Best available:  240 mm²", "Worst candidate: 1.5 mm²"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output missing %q:\n%s", want, out.String())
		}
	}
}

func TestSizeCommandReportsWrittenChart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chart.jpg")
	defer func() { sizeExportFile = "" }()

	out, err := execute(t, "size", "-i", "20", "-l", "30", "-o", path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "Chart exported to: "+path+".png") {
		t.Errorf("unexpected export line:\n%s", out)
	}
	if _, err := os.Stat(path + ".png"); err != nil {
		t.Error(err)
	}
}

func TestDropCommandRejectsBadPowerFactor(t *testing.T) {
	_, err := execute(t, "drop", "-i", "20", "-l", "30", "-s", "2.5", "--pf", "1.3")
	if !errors.Is(err, formula.ErrInvalidInput) {
		t.Errorf("error = %v, want ErrInvalidInput", err)
	}
}

func TestOhmCommandPartialInput(t *testing.T) {
	out, err := execute(t, "ohm", "--voltage", "220")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "220.00 V") || !strings.Contains(out, "- A") {
		t.Errorf("unexpected output:\n%s", out)
	}
}

func TestConduitCommand(t *testing.T) {
	out, err := execute(t, "conduit", "-c", "2.5x3")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "40 %") || !strings.Contains(out, "9.86 mm") {
		t.Errorf("unexpected output:\n%s", out)
	}
}

func TestParseCableEntry(t *testing.T) {
	tests := []struct {
		in      string
		section float64
		count   int
		wantErr bool
	}{
		{"2.5x3", 2.5, 3, false},
		{" 16X2 ", 16, 2, false},
		{"10", 10, 1, false},
		{"abcx2", 0, 0, true},
		{"4xabc", 0, 0, true},
	}
	for _, tt := range tests {
		e, err := parseCableEntry(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseCableEntry(%q) error = %v", tt.in, err)
			continue
		}
		if !tt.wantErr && (e.SectionMM2 != tt.section || e.Count != tt.count) {
			t.Errorf("parseCableEntry(%q) = %+v", tt.in, e)
		}
	}
}

func TestConvertCommand(t *testing.T) {
	out, err := execute(t, "convert", "temp", "100")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "212.0000 °F") {
		t.Errorf("unexpected output:\n%s", out)
	}

	if _, err := execute(t, "convert", "awg-mm2", "0"); !errors.Is(err, convert.ErrInvalidValue) {
		t.Errorf("awg-mm2 0: error = %v, want ErrInvalidValue", err)
	}
	if _, err := execute(t, "convert", "watts", "1"); !errors.Is(err, convert.ErrUnknownKind) {
		t.Errorf("unknown kind: error = %v", err)
	}
}

func TestStandardsCommand(t *testing.T) {
	out, err := execute(t, "standards", "nbr5410")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "ABNT NBR 5410") || !strings.Contains(out, "TOPICS") {
		t.Errorf("unexpected output:\n%s", out)
	}
}

func TestBatchCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "project.yaml")
	doc := `
name: test
circuits:
  - name: lights
    current: 20
    length: 30
  - name: furnace
    current: 600
    length: 10
conduits:
  - name: main
    cables:
      - {section: 2.5, count: 1}
`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := execute(t, "batch", "--file", path)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"lights", "4 mm²", "no compliant section", "53 %"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}
