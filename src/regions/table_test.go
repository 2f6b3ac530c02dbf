package regions

import (
	"bytes"
	"strings"
	"testing"

	"github.com/tshimizu/CoilDisorderAnalyzer/src/report"
	"github.com/tshimizu/CoilDisorderAnalyzer/src/series"
)

func testFrame(t *testing.T) *series.AlignedFrame {
	t.Helper()
	dense := []report.DisorderRow{
		{Position: 1, Residue: "M", Score: 20},
		{Position: 2, Residue: "A", Score: 80},
		{Position: 3, Residue: "L", Score: 80},
		{Position: 4, Residue: "K", Score: 20},
		{Position: 5, Residue: "E", Score: 20},
	}
	sparse := []report.ResidueProb{
		{Position: 4, Residue: 'K', Prob: 95, Heptad: 'a'},
		{Position: 5, Residue: 'E', Prob: 95, Heptad: 'b'},
	}
	frame, err := series.Align("test", dense, sparse)
	if err != nil {
		t.Fatalf("align: %v", err)
	}
	if err := frame.Smooth(3); err != nil {
		t.Fatalf("smooth: %v", err)
	}
	return frame
}

func TestBuildFlagsAndIntervals(t *testing.T) {
	frame := testFrame(t)
	table := Build(frame, []report.Span{{Start: 2, End: 3}}, 50)

	wantIDR := []bool{false, true, true, false, false}
	wantCC := []bool{false, false, false, true, true}
	wantTM := []bool{false, true, true, false, false}
	for i := range wantIDR {
		if table.IDRFlags[i] != wantIDR[i] || table.CCFlags[i] != wantCC[i] || table.TMFlags[i] != wantTM[i] {
			t.Fatalf("flags at %d = idr:%v cc:%v tm:%v", i, table.IDRFlags[i], table.CCFlags[i], table.TMFlags[i])
		}
	}

	want := []Interval{
		{Kind: KindIDR, Start: 2, End: 3},
		{Kind: KindCC, Start: 4, End: 5},
		{Kind: KindTM, Start: 2, End: 3},
	}
	if len(table.Intervals) != len(want) {
		t.Fatalf("got %d intervals, want %d: %+v", len(table.Intervals), len(want), table.Intervals)
	}
	for i, iv := range want {
		if table.Intervals[i] != iv {
			t.Fatalf("interval %d = %+v, want %+v", i, table.Intervals[i], iv)
		}
	}
}

func TestWriteIntervalsFormat(t *testing.T) {
	frame := testFrame(t)
	table := Build(frame, nil, 50)

	var buf bytes.Buffer
	if err := WriteIntervals(&buf, table); err != nil {
		t.Fatalf("write intervals: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if lines[0] != "Type,Start,End,Length" {
		t.Fatalf("bad header: %q", lines[0])
	}
	if lines[1] != "IDR,2,3,2" || lines[2] != "CC,4,5,2" {
		t.Fatalf("bad rows: %v", lines[1:])
	}
}

func TestWritePositionsFormat(t *testing.T) {
	frame := testFrame(t)
	table := Build(frame, []report.Span{{Start: 1, End: 1}}, 50)

	var buf bytes.Buffer
	if err := WritePositions(&buf, frame, table); err != nil {
		t.Fatalf("write positions: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1+frame.Len() {
		t.Fatalf("got %d lines, want %d", len(lines), 1+frame.Len())
	}
	wantHeader := "Position,Residue,Disorder_Score_Original,Disorder_Score_3res_MA,In_IDR_>=50,CC_Probability_Original,CC_Probability_3res_MA,In_CC_>=50,Heptad_Phase,In_TM"
	if lines[0] != wantHeader {
		t.Fatalf("bad header: %q", lines[0])
	}
	// Position 4 is observed CC with heptad 'a' and above threshold.
	if !strings.HasPrefix(lines[4], "4,K,20.00,") || !strings.Contains(lines[4], ",Yes,a,No") {
		t.Fatalf("bad row 4: %q", lines[4])
	}
	// Position 1 is inside the TM span.
	if !strings.HasSuffix(lines[1], ",Yes") {
		t.Fatalf("bad row 1: %q", lines[1])
	}
}
