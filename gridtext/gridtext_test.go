package gridtext

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSplitRow(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{
			input: "",
			want:  []string{""},
		},
		{
			input: "1",
			want:  []string{"1"},
		},
		{
			input: "1,2,3",
			want:  []string{"1", "2", "3"},
		},
		{
			input: "3,=ADD($A1,4)",
			want:  []string{"3", "=ADD($A1,4)"},
		},
		{
			input: "=SUB($C1,$A2),=DIV($B2,2),=MOD(-7,3)",
			want:  []string{"=SUB($C1,$A2)", "=DIV($B2,2)", "=MOD(-7,3)"},
		},
		{
			input: "1,,2,",
			want:  []string{"1", "", "2", ""},
		},
		{
			// the first ")" closes the span, nesting is not tracked
			input: "=ADD(MUL(1,2),3),4",
			want:  []string{"=ADD(MUL(1,2)", "3)", "4"},
		},
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			got := SplitRow(test.input)
			if diff := cmp.Diff(test.want, got); diff != "" {
				t.Errorf("SplitRow(%q) mismatch (-want +got):\n%s", test.input, diff)
			}
		})
	}
}

func TestReadWrite(t *testing.T) {
	input := "10,$A1\r\n=DIV($A1,$B1),5\n"
	rows, err := Read(strings.NewReader(input))
	if err != nil {
		t.Fatal(err)
	}
	want := [][]string{{"10", "$A1"}, {"=DIV($A1,$B1)", "5"}}
	if diff := cmp.Diff(want, rows); diff != "" {
		t.Fatalf("Read mismatch (-want +got):\n%s", diff)
	}

	var buf bytes.Buffer
	if err := Write(&buf, rows); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != "10,$A1\n=DIV($A1,$B1),5\n" {
		t.Errorf("Write = %q", got)
	}
}

func TestReadWithoutTrailingNewline(t *testing.T) {
	rows, err := Read(strings.NewReader("1,2\n3,4"))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([][]string{{"1", "2"}, {"3", "4"}}, rows); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestReadEmpty(t *testing.T) {
	rows, err := Read(strings.NewReader(""))
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 0 {
		t.Errorf("expected no rows, got %v", rows)
	}
}

func TestNewReader(t *testing.T) {
	// "\xe9" is é in both latin1 and windows-1252, "\x80" is € only in windows-1252
	tests := []struct {
		name     string
		encoding string
		input    string
		want     string
	}{
		{"utf-8 passthrough", "utf-8", "café", "café"},
		{"latin1", "latin1", "caf\xe9", "café"},
		{"latin1 upper case", "ISO-8859-1", "caf\xe9", "café"},
		{"windows-1252", "windows-1252", "\x80", "€"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			r, err := NewReader(strings.NewReader(test.input), test.encoding)
			if err != nil {
				t.Fatal(err)
			}
			b, err := io.ReadAll(r)
			if err != nil {
				t.Fatal(err)
			}
			if got := string(b); got != test.want {
				t.Errorf("got %q, want %q", got, test.want)
			}
		})
	}
}

func TestNewReaderUnsupported(t *testing.T) {
	if _, err := NewReader(strings.NewReader(""), "ebcdic"); err == nil {
		t.Errorf("expected error for unsupported encoding")
	}
}
