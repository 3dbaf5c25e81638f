package services

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/enunezf/sqlprompt/internal/core/domain"
)

func TestWidths(t *testing.T) {
	tests := []struct {
		name string
		rs   *domain.ResultSet
		want domain.ColumnWidths
	}{
		{
			name: "HeaderWins",
			rs:   domain.NewResultSet([]string{"id", "name"}, []any{1, "Al"}, []any{2, "Bob"}),
			want: domain.ColumnWidths{2, 4},
		},
		{
			name: "CellWins",
			rs:   domain.NewResultSet([]string{"a"}, []any{"hello"}, []any{[]byte("xy")}),
			want: domain.ColumnWidths{5},
		},
		{
			name: "NullCountsAsFour",
			rs:   domain.NewResultSet([]string{"c"}, []any{"x"}, []any{nil}),
			want: domain.ColumnWidths{4},
		},
		{
			name: "NoRows",
			rs:   domain.NewResultSet([]string{"abc", ""}),
			want: domain.ColumnWidths{3, 0},
		},
		{
			name: "DuplicateColumns",
			rs:   domain.NewResultSet([]string{"x", "x"}, []any{"long", 1}),
			want: domain.ColumnWidths{4, 1},
		},
		{
			name: "WideRunes",
			rs:   domain.NewResultSet([]string{"v"}, []any{"日本"}),
			want: domain.ColumnWidths{4},
		},
	}

	f := NewTableFormatter()
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := f.Widths(test.rs)
			if diff := cmp.Diff(test.want, got); diff != "" {
				t.Errorf("Widths (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSeparator(t *testing.T) {
	f := NewTableFormatter()
	if got, want := f.Separator(domain.ColumnWidths{2, 4}), "+----+------+"; got != want {
		t.Errorf("Separator = %q; want %q", got, want)
	}
	if got, want := f.Separator(domain.ColumnWidths{0}), "+--+"; got != want {
		t.Errorf("Separator = %q; want %q", got, want)
	}
}

func TestRenderRow(t *testing.T) {
	f := NewTableFormatter()
	got := f.RenderRow([]string{"1", "Al"}, domain.ColumnWidths{2, 4})
	if want := "| 1  | Al   |"; got != want {
		t.Errorf("RenderRow = %q; want %q", got, want)
	}
}

func TestRender(t *testing.T) {
	rs := domain.NewResultSet([]string{"id", "name"}, []any{1, "Al"}, []any{2, "Bob"})

	var buf bytes.Buffer
	if err := NewTableFormatter().Render(&buf, rs); err != nil {
		t.Fatal(err)
	}

	want := "" +
		"+----+------+\n" +
		"| id | name |\n" +
		"+----+------+\n" +
		"| 1  | Al   |\n" +
		"| 2  | Bob  |\n" +
		"+----+------+\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("Render (-want +got):\n%s", diff)
	}
}

func TestRenderNull(t *testing.T) {
	rs := domain.NewResultSet([]string{"c"}, []any{"x"}, []any{nil})

	lines := NewTableFormatter().Lines(rs)
	want := []string{
		"+------+",
		"| c    |",
		"+------+",
		"| x    |",
		"| NULL |",
		"+------+",
	}
	if diff := cmp.Diff(want, lines); diff != "" {
		t.Errorf("Lines (-want +got):\n%s", diff)
	}
}

func TestLinesAligned(t *testing.T) {
	sets := []*domain.ResultSet{
		domain.NewResultSet([]string{"id", "name"}, []any{1, "Al"}, []any{2, "Bob"}),
		domain.NewResultSet([]string{"a", "b", "c"}, []any{nil, 3.5, []byte("payload")}, []any{"", nil, 42}),
		domain.NewResultSet([]string{"only"}, []any{strings.Repeat("z", 30)}),
		domain.NewResultSet([]string{"x", "x"}, []any{"dup", "dup"}),
		domain.NewResultSet([]string{"note"}, []any{"a\tb\tc"}, []any{"line1\nline2"}, []any{"carriage\rx"}),
	}

	f := NewTableFormatter()
	for _, rs := range sets {
		widths := f.Widths(rs)
		for i, col := range rs.Columns {
			if widths[i] < len(col) {
				t.Errorf("width[%d] = %d; less than header %q", i, widths[i], col)
			}
		}

		lines := f.Lines(rs)
		for _, line := range lines[1:] {
			if len(line) != len(lines[0]) {
				t.Errorf("line %q has length %d; separator has %d", line, len(line), len(lines[0]))
			}
		}

		if diff := cmp.Diff(lines, f.Lines(rs)); diff != "" {
			t.Errorf("second render differs (-first +second):\n%s", diff)
		}
	}
}

func TestDisplayLengthControlCharacters(t *testing.T) {
	for _, s := range []string{"a\tb\tc", "line1\nline2", "carriage\rx", "nul\x00", "del\x7f"} {
		if got := displayLength(s); got != len(s) {
			t.Errorf("displayLength(%q) = %d; want %d", s, got, len(s))
		}
	}
}

func TestDisplayText(t *testing.T) {
	tests := []struct {
		in   any
		want string
	}{
		{nil, "NULL"},
		{[]byte("abc"), "abc"},
		{"NULL", "NULL"},
		{int64(-7), "-7"},
		{1.5, "1.5"},
		{1e6, "1000000"},
		{float32(0.25), "0.25"},
		{true, "true"},
		{time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC), "2024-03-01 12:30:00"},
	}

	for _, test := range tests {
		if got := DisplayText(test.in); got != test.want {
			t.Errorf("DisplayText(%#v) = %q; want %q", test.in, got, test.want)
		}
	}
}
