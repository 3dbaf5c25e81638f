// Package services contains the business logic services.
package services

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/mattn/go-runewidth"

	"github.com/enunezf/sqlprompt/internal/core/domain"
)

// NullText is how SQL NULL is shown in a table cell
const NullText = "NULL"

const timeLayout = "2006-01-02 15:04:05"

// TableFormatter renders result sets as fixed-width ASCII tables
type TableFormatter struct{}

// NewTableFormatter creates a new table formatter
func NewTableFormatter() *TableFormatter {
	return &TableFormatter{}
}

// DisplayText returns the text shown for a single cell value
func DisplayText(v any) string {
	switch val := v.(type) {
	case nil:
		return NullText
	case []byte:
		return string(val)
	case string:
		return val
	case time.Time:
		return val.Format(timeLayout)
	case float32:
		return strconv.FormatFloat(float64(val), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", val)
	}
}

// displayLength is the number of terminal cells the text occupies.
// Control characters such as tab and newline count as one cell each.
func displayLength(s string) int {
	n := runewidth.StringWidth(s)
	for _, r := range s {
		if unicode.IsControl(r) {
			n++
		}
	}
	return n
}

// Widths computes each column's width over the header and every row
func (f *TableFormatter) Widths(rs *domain.ResultSet) domain.ColumnWidths {
	widths := make(domain.ColumnWidths, len(rs.Columns))
	for i, col := range rs.Columns {
		widths[i] = displayLength(col)
	}

	for _, row := range rs.Rows {
		for i, field := range row {
			if i >= len(widths) {
				break
			}
			if w := displayLength(DisplayText(field.Value)); w > widths[i] {
				widths[i] = w
			}
		}
	}

	return widths
}

// Separator returns the horizontal rule, e.g. "+----+------+"
func (f *TableFormatter) Separator(widths domain.ColumnWidths) string {
	dashes := make([]string, len(widths))
	for i, w := range widths {
		dashes[i] = strings.Repeat("-", w)
	}
	return "+-" + strings.Join(dashes, "-+-") + "-+"
}

// RenderRow returns one table line with every value left-aligned and
// right-padded to its column width
func (f *TableFormatter) RenderRow(values []string, widths domain.ColumnWidths) string {
	padded := make([]string, len(values))
	for i, v := range values {
		padded[i] = v
		if i < len(widths) {
			if gap := widths[i] - displayLength(v); gap > 0 {
				padded[i] = v + strings.Repeat(" ", gap)
			}
		}
	}
	return "| " + strings.Join(padded, " | ") + " |"
}

// Lines returns the complete table: rule, header, rule, rows, rule
func (f *TableFormatter) Lines(rs *domain.ResultSet) []string {
	widths := f.Widths(rs)
	separator := f.Separator(widths)

	lines := make([]string, 0, len(rs.Rows)+4)
	lines = append(lines, separator, f.RenderRow(rs.Columns, widths), separator)

	for _, row := range rs.Rows {
		values := row.Values()
		cells := make([]string, len(values))
		for i, v := range values {
			cells[i] = DisplayText(v)
		}
		lines = append(lines, f.RenderRow(cells, widths))
	}

	return append(lines, separator)
}

// Render writes the table to w, one line per row
func (f *TableFormatter) Render(w io.Writer, rs *domain.ResultSet) error {
	var sb strings.Builder
	for _, line := range f.Lines(rs) {
		sb.WriteString(line)
		sb.WriteString("\n")
	}
	_, err := io.WriteString(w, sb.String())
	return err
}
