package repository

import (
	"context"

	"github.com/deppfellow/visitor-log/internal/model/visitor"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DBTX is the store boundary used by repositories.
// It is implemented by *pgxpool.Pool and pgx.Tx, and by fakes in tests.
type DBTX interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// VisitorRepository runs the visitor query catalog against a DBTX.
// Every method issues exactly one statement and returns store errors unchanged.
type VisitorRepository struct {
	db DBTX
}

func NewVisitorRepository(db DBTX) *VisitorRepository {
	return &VisitorRepository{db: db}
}

// CreateTable creates the visitors table if it does not exist yet.
func (r *VisitorRepository) CreateTable(ctx context.Context) error {
	_, err := r.db.Exec(ctx, QueryCreateVisitorsTable)
	return err
}

// Insert adds a visitor. Arguments are bound in table column order.
func (r *VisitorRepository) Insert(ctx context.Context, v visitor.Visitor) error {
	_, err := r.db.Exec(ctx, QueryAddNewVisitor,
		v.Name,
		v.Age,
		v.Date,
		v.Time,
		v.Assistant,
		v.Comments,
	)
	return err
}

// List returns every visitor in the order the store yields them.
func (r *VisitorRepository) List(ctx context.Context) ([]visitor.Visitor, error) {
	rows, err := r.db.Query(ctx, QueryListAllVisitors)
	if err != nil {
		return nil, err
	}

	visitors, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (visitor.Visitor, error) {
		return scanVisitor(row)
	})
	if err != nil {
		return nil, err
	}
	if visitors == nil {
		visitors = []visitor.Visitor{}
	}
	return visitors, nil
}

// GetByID returns the visitor with id, or pgx.ErrNoRows.
func (r *VisitorRepository) GetByID(ctx context.Context, id int64) (visitor.Visitor, error) {
	return scanVisitor(r.db.QueryRow(ctx, QueryViewOneVisitor, id))
}

// GetLast returns the visitor with the highest id, or pgx.ErrNoRows.
func (r *VisitorRepository) GetLast(ctx context.Context) (visitor.Visitor, error) {
	return scanVisitor(r.db.QueryRow(ctx, QueryViewLastVisitor))
}

// Update sets a single column of one visitor and returns the affected row count.
func (r *VisitorRepository) Update(ctx context.Context, id int64, column visitor.Column, value any) (int64, error) {
	tag, err := r.db.Exec(ctx, UpdateVisitorQuery(column.Identifier()), value, id)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// Delete removes one visitor and returns the affected row count.
func (r *VisitorRepository) Delete(ctx context.Context, id int64) (int64, error) {
	tag, err := r.db.Exec(ctx, QueryDeleteVisitor, id)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// DeleteAll removes every visitor and returns the affected row count.
func (r *VisitorRepository) DeleteAll(ctx context.Context) (int64, error) {
	tag, err := r.db.Exec(ctx, QueryDeleteAllVisitors)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// rowScanner is satisfied by both pgx.Row and pgx.CollectableRow.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanVisitor(row rowScanner) (visitor.Visitor, error) {
	var v visitor.Visitor
	err := row.Scan(
		&v.ID,
		&v.Name,
		&v.Age,
		&v.Date,
		&v.Time,
		&v.Assistant,
		&v.Comments,
	)
	return v, err
}
