package visitor

import "github.com/jackc/pgx/v5"

// Column names a writable column of the visitors table.
type Column string

const (
	ColumnName      Column = "name"
	ColumnAge       Column = "age"
	ColumnDate      Column = "date"
	ColumnTime      Column = "time"
	ColumnAssistant Column = "assistant"
	ColumnComments  Column = "comments"
)

// Columns lists every column an update may target, in table order.
var Columns = []Column{
	ColumnName,
	ColumnAge,
	ColumnDate,
	ColumnTime,
	ColumnAssistant,
	ColumnComments,
}

// ParseColumn maps caller-supplied text onto the closed set of columns.
func ParseColumn(s string) (Column, error) {
	for _, c := range Columns {
		if string(c) == s {
			return c, nil
		}
	}
	return "", &ValidationError{
		Kind:    KindFormat,
		Field:   "column",
		Value:   s,
		Message: InvalidColumnMessage(s),
	}
}

// Identifier returns the column quoted for direct use in SQL text.
func (c Column) Identifier() string {
	return pgx.Identifier{string(c)}.Sanitize()
}

func (c Column) String() string {
	return string(c)
}
