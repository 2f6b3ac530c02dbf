package plotdata

import (
	"bytes"
	"strings"
	"testing"

	"github.com/tshimizu/CoilDisorderAnalyzer/src/report"
	"github.com/tshimizu/CoilDisorderAnalyzer/src/series"
)

func buildFrame(t *testing.T) *series.AlignedFrame {
	t.Helper()
	dense := []report.DisorderRow{
		{Position: 1, Residue: "M", Score: 20},
		{Position: 2, Residue: "A", Score: 80},
		{Position: 3, Residue: "L", Score: 40},
	}
	sparse := []report.ResidueProb{{Position: 2, Residue: 'A', Prob: 91.5, Heptad: 'e'}}
	frame, err := series.Align("rt", dense, sparse)
	if err != nil {
		t.Fatalf("align: %v", err)
	}
	if err := frame.Smooth(3); err != nil {
		t.Fatalf("smooth: %v", err)
	}
	return frame
}

func TestWriteFormat(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, buildFrame(t)); err != nil {
		t.Fatalf("write: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if lines[0] != strings.Join(Columns, ",") {
		t.Fatalf("header = %q", lines[0])
	}
	if lines[2] != "2,A,80.0000,46.6667,91.5000,30.5000,e" {
		t.Fatalf("row 2 = %q", lines[2])
	}
	if !strings.HasSuffix(lines[1], ",-") {
		t.Fatalf("filled row should carry the heptad sentinel: %q", lines[1])
	}
}

func TestRoundTrip(t *testing.T) {
	frame := buildFrame(t)
	var buf bytes.Buffer
	if err := Write(&buf, frame); err != nil {
		t.Fatalf("write: %v", err)
	}
	got, err := Read(&buf, "rt")
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if got.Len() != frame.Len() {
		t.Fatalf("len = %d, want %d", got.Len(), frame.Len())
	}
	for i := range frame.Points {
		a, b := frame.Points[i], got.Points[i]
		if a.Position != b.Position || a.Residue != b.Residue || a.Heptad != b.Heptad {
			t.Fatalf("row %d: %+v != %+v", i, a, b)
		}
		if diff(a.DisorderOriginal, b.DisorderOriginal) > 1e-4 || diff(a.CCMA, b.CCMA) > 1e-4 {
			t.Fatalf("row %d values drifted: %+v != %+v", i, a, b)
		}
	}
	if got.Points[1].Source != series.SourceObserved {
		t.Fatalf("observed position lost its source: %+v", got.Points[1])
	}
	if got.Points[0].Source != series.SourceFilled {
		t.Fatalf("filled position lost its source: %+v", got.Points[0])
	}
}

func TestReadRescalesFractionScores(t *testing.T) {
	csv := strings.Join(Columns, ",") + "\n1,M,0.2500,0.3000,0.0000,0.1000,-\n"
	frame, err := Read(strings.NewReader(csv), "frac")
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	p := frame.Points[0]
	if p.DisorderOriginal != 25 || p.DisorderMA != 30 || p.CCMA != 10 {
		t.Fatalf("fraction scores not rescaled: %+v", p)
	}
}

func TestReadMissingColumn(t *testing.T) {
	if _, err := Read(strings.NewReader("Position,Residue\n1,M\n"), "bad"); err == nil {
		t.Fatal("expected error for missing columns")
	}
}

func diff(a, b float64) float64 {
	if a > b {
		return a - b
	}
	return b - a
}
