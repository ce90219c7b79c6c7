package gridcalc

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNewGrid(t *testing.T) {
	rows := [][]string{{"1", "2"}, {"3", "4"}, {"5", "6"}}
	g, err := NewGrid(rows)
	if err != nil {
		t.Fatal(err)
	}
	if g.Rows() != 3 || g.Columns() != 2 {
		t.Fatalf("got %dx%d, want 3x2", g.Rows(), g.Columns())
	}

	// the grid keeps its own copy
	rows[0][0] = "changed"
	if text, _ := g.GetCell(CellAddress{Row: 0, Column: 0}); text != "1" {
		t.Errorf("grid observed caller edit, got %q", text)
	}

	if _, ok := g.GetCell(CellAddress{Row: 3, Column: 0}); ok {
		t.Errorf("expected out of bounds row to miss")
	}
	if _, ok := g.GetCell(CellAddress{Row: 0, Column: -1}); ok {
		t.Errorf("expected negative column to miss")
	}
}

func TestNewGridRagged(t *testing.T) {
	_, err := NewGrid([][]string{{"1", "2"}, {"3", "4"}, {"5"}})
	var shapeErr *ShapeError
	if !errors.As(err, &shapeErr) {
		t.Fatalf("expected *ShapeError, got %v", err)
	}
	if shapeErr.Row != 2 || shapeErr.Want != 2 || shapeErr.Got != 1 {
		t.Errorf("unexpected error fields %+v", shapeErr)
	}
}

func TestGridIterate(t *testing.T) {
	g, err := NewGrid([][]string{{"a", "b"}, {"c", "d"}})
	if err != nil {
		t.Fatal(err)
	}

	var got []string
	for addr, text := range g.Iterate() {
		got = append(got, addr.String()+"="+text)
	}
	want := []string{"$A1=a", "$B1=b", "$A2=c", "$B2=d"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("row-major order mismatch (-want +got):\n%s", diff)
	}

	// stopping early must not panic
	for range g.Iterate() {
		break
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		text string
		want CellKind
	}{
		{"12", CellKindLiteral},
		{"-0.5", CellKindLiteral},
		{"$A1", CellKindReference},
		{"=ADD(1,2)", CellKindFormula},
		{"=ADD($A1,2)", CellKindFormula},
	}
	for _, test := range tests {
		if got := Classify(test.text); got != test.want {
			t.Errorf("Classify(%q) = %v, want %v", test.text, got, test.want)
		}
	}
}

func TestTextCacheKeepsFirstValue(t *testing.T) {
	tc := NewTextCache()
	tc.Put("$A1", 1)
	tc.Put("$A1", 2)
	if v, ok := tc.Get("$A1"); !ok || v != 1 {
		t.Errorf("Get = %v, %v; want 1, true", v, ok)
	}
	if tc.Count() != 1 || tc.Hits() != 1 {
		t.Errorf("Count = %d, Hits = %d", tc.Count(), tc.Hits())
	}

	pc := NewPositionCache()
	addr := CellAddress{Row: 2, Column: 1}
	pc.Put(addr, 3)
	pc.Put(addr, 4)
	if v, ok := pc.Get(addr); !ok || v != 3 {
		t.Errorf("Get = %v, %v; want 3, true", v, ok)
	}
	if _, ok := pc.Get(CellAddress{}); ok {
		t.Errorf("expected miss for empty position")
	}
}
