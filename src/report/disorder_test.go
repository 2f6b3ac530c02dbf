package report

import (
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestParseDisorderCSVScaling(t *testing.T) {
	csv := "Position,Residue,Disorder_Score\n1,M,0.25\n2,A,0.9999\n3,L,1.0\n4,K,55.5\n"
	rows, err := ParseDisorderCSV(strings.NewReader(csv), zerolog.Nop())
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	want := []float64{25, 99.99, 100, 55.5}
	if len(rows) != len(want) {
		t.Fatalf("got %d rows, want %d", len(rows), len(want))
	}
	for i, w := range want {
		if rows[i].Score != w {
			t.Fatalf("row %d score = %v, want %v", i, rows[i].Score, w)
		}
	}
	if rows[0].Residue != "M" || rows[0].Position != 1 {
		t.Fatalf("row 0 = %+v", rows[0])
	}
}

func TestParseDisorderCSVSkipsMalformedRows(t *testing.T) {
	csv := "Position,Residue,Disorder_Score\n1,M,0.5\nnot_a_number,A,0.5\n2,L,banana\n3,K,0.7\n"
	rows, err := ParseDisorderCSV(strings.NewReader(csv), zerolog.Nop())
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(rows) != 2 || rows[0].Position != 1 || rows[1].Position != 3 {
		t.Fatalf("rows = %+v", rows)
	}
}

func TestParseDisorderCSVExtraColumnsAndSpaces(t *testing.T) {
	csv := "Position, Residue, Disorder_Score, In_IDR\n1, M, 0.5, Yes\n"
	rows, err := ParseDisorderCSV(strings.NewReader(csv), zerolog.Nop())
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(rows) != 1 || rows[0].Score != 50 {
		t.Fatalf("rows = %+v", rows)
	}
}

func TestParseDisorderCSVEmpty(t *testing.T) {
	if _, err := ParseDisorderCSV(strings.NewReader(""), zerolog.Nop()); !errors.Is(err, ErrEmptySeries) {
		t.Fatalf("empty input: %v", err)
	}
	onlyBad := "Position,Residue,Disorder_Score\nx,y,z\n"
	if _, err := ParseDisorderCSV(strings.NewReader(onlyBad), zerolog.Nop()); !errors.Is(err, ErrEmptySeries) {
		t.Fatalf("all-malformed input: %v", err)
	}
}

func TestParseDisorderCSVMissingColumns(t *testing.T) {
	if _, err := ParseDisorderCSV(strings.NewReader("Foo,Bar\n1,2\n"), zerolog.Nop()); err == nil {
		t.Fatal("expected error for missing columns")
	}
}
