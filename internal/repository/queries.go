package repository

import "strings"

// ColumnPlaceholder marks where QueryUpdateVisitor takes the column identifier.
const ColumnPlaceholder = "{column}"

// visitorColumns is the select list shared by every read. date and time are
// rendered as text so rows decode the same way they were written.
const visitorColumns = `id, name, age, to_char("date", 'YYYY-MM-DD') AS "date", to_char("time", 'HH24:MI') AS "time", assistant, comments`

// Query catalog for the visitors table. Each operation issues exactly one of these.
const (
	QueryCreateVisitorsTable = `CREATE TABLE IF NOT EXISTS visitors (
	id SERIAL PRIMARY KEY,
	name VARCHAR(255) NOT NULL,
	age INTEGER NOT NULL CHECK (age >= 0),
	"date" DATE NOT NULL,
	"time" TIME NOT NULL,
	assistant VARCHAR(255) NOT NULL,
	comments TEXT NOT NULL DEFAULT ''
)`

	QueryAddNewVisitor = `INSERT INTO visitors (name, age, "date", "time", assistant, comments) VALUES ($1, $2, $3, $4, $5, $6)`

	QueryListAllVisitors = `SELECT ` + visitorColumns + ` FROM visitors`

	QueryViewOneVisitor = `SELECT ` + visitorColumns + ` FROM visitors WHERE id = $1`

	QueryViewLastVisitor = `SELECT ` + visitorColumns + ` FROM visitors ORDER BY id DESC LIMIT 1`

	QueryUpdateVisitor = `UPDATE visitors SET ` + ColumnPlaceholder + ` = $1 WHERE id = $2`

	QueryDeleteVisitor = `DELETE FROM visitors WHERE id = $1`

	QueryDeleteAllVisitors = `DELETE FROM visitors`
)

// UpdateVisitorQuery substitutes an already quoted column identifier into
// QueryUpdateVisitor. Callers pass visitor.Column.Identifier(), never raw input.
func UpdateVisitorQuery(identifier string) string {
	return strings.Replace(QueryUpdateVisitor, ColumnPlaceholder, identifier, 1)
}
