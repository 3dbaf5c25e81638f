package domain

// Field is one named cell of a fetched row. A nil Value is SQL NULL.
type Field struct {
	Column string
	Value  any
}

// Row is an ordered list of name/value pairs, aligned with ResultSet.Columns
type Row []Field

// Values returns the row's cell values in column order
func (r Row) Values() []any {
	values := make([]any, len(r))
	for i, f := range r {
		values[i] = f.Value
	}
	return values
}

// ResultSet is the fully materialized output of one statement.
// Column names may repeat; they are kept exactly as the server reported them.
type ResultSet struct {
	Columns []string
	Rows    []Row
}

// NewResultSet builds a ResultSet from column names and positional values
func NewResultSet(columns []string, values ...[]any) *ResultSet {
	rs := &ResultSet{Columns: columns}
	for _, v := range values {
		rs.Append(v)
	}
	return rs
}

// Append adds a row built from positional values
func (rs *ResultSet) Append(values []any) {
	row := make(Row, len(rs.Columns))
	for i, col := range rs.Columns {
		row[i] = Field{Column: col}
		if i < len(values) {
			row[i].Value = values[i]
		}
	}
	rs.Rows = append(rs.Rows, row)
}

// Len returns the number of rows
func (rs *ResultSet) Len() int {
	if rs == nil {
		return 0
	}
	return len(rs.Rows)
}

// IsEmpty reports whether the statement returned no rows
func (rs *ResultSet) IsEmpty() bool {
	return rs.Len() == 0
}

// ColumnWidths holds the display width of each column by position
type ColumnWidths []int
