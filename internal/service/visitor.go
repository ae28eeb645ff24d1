package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"

	"github.com/deppfellow/visitor-log/internal/logger"
	"github.com/deppfellow/visitor-log/internal/model/visitor"
	"github.com/deppfellow/visitor-log/internal/repository"
	"github.com/deppfellow/visitor-log/internal/validation"
)

// VisitorNotifier is told about every visitor that was added.
type VisitorNotifier interface {
	EnqueueVisitorArrived(ctx context.Context, v visitor.Visitor) error
}

// VisitorService validates visitor writes, runs them through the repository
// and turns row counts into the visitor status vocabulary.
type VisitorService struct {
	repo     *repository.VisitorRepository
	notifier VisitorNotifier
	logger   *zerolog.Logger
}

// NewVisitorService builds a VisitorService. notifier may be nil.
func NewVisitorService(logger *zerolog.Logger, repo *repository.VisitorRepository, notifier VisitorNotifier) *VisitorService {
	return &VisitorService{
		repo:     repo,
		notifier: notifier,
		logger:   logger,
	}
}

// CreateTable creates the visitors table. It reports success whether or not
// the table already existed.
func (s *VisitorService) CreateTable(ctx context.Context) (visitor.Status, error) {
	if err := s.repo.CreateTable(ctx); err != nil {
		return "", err
	}
	return visitor.StatusTableCreated, nil
}

// AddVisitor validates n and inserts it. Validation failures are returned as
// *visitor.ValidationError before any statement is issued.
func (s *VisitorService) AddVisitor(ctx context.Context, n visitor.NewVisitor) (visitor.Status, error) {
	if err := validation.ValidateVisitor(n); err != nil {
		return "", err
	}

	v := n.Visitor()
	if err := s.repo.Insert(ctx, v); err != nil {
		return "", err
	}

	if s.notifier != nil {
		if err := s.notifier.EnqueueVisitorArrived(ctx, v); err != nil {
			logger.FromContext(ctx, s.logger).Error().
				Err(err).
				Str("visitor", v.Name).
				Msg("failed to enqueue visitor arrival notification")
		}
	}

	return visitor.StatusVisitorAdded, nil
}

// ListAll returns every visitor as the store yields them.
func (s *VisitorService) ListAll(ctx context.Context) ([]visitor.Visitor, error) {
	return s.repo.List(ctx)
}

// ViewOne returns the visitor with id, or visitor.ErrVisitorNotFound.
func (s *VisitorService) ViewOne(ctx context.Context, id int64) (visitor.Visitor, error) {
	v, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return visitor.Visitor{}, visitor.ErrVisitorNotFound
	}
	return v, err
}

// ViewLast returns the most recently inserted visitor, or
// visitor.ErrVisitorNotFound when the table is empty.
func (s *VisitorService) ViewLast(ctx context.Context) (visitor.Visitor, error) {
	v, err := s.repo.GetLast(ctx)
	if errors.Is(err, pgx.ErrNoRows) {
		return visitor.Visitor{}, visitor.ErrVisitorNotFound
	}
	return v, err
}

// UpdateOne sets one column of the visitor with id. column must name a
// writable column and value must satisfy that column's insert rule.
func (s *VisitorService) UpdateOne(ctx context.Context, id int64, column string, value any) (visitor.Status, error) {
	col, err := visitor.ParseColumn(column)
	if err != nil {
		return "", err
	}
	if err := validation.ValidateColumnValue(col, value); err != nil {
		return "", err
	}
	if col == visitor.ColumnAge {
		value, _ = visitor.WholeNumber(value)
	}

	affected, err := s.repo.Update(ctx, id, col, value)
	if err != nil {
		return "", err
	}
	if affected < 1 {
		return "", visitor.ErrVisitorNotFound
	}
	return visitor.StatusVisitorUpdated, nil
}

// DeleteOne removes the visitor with id, or returns visitor.ErrVisitorNotFound.
func (s *VisitorService) DeleteOne(ctx context.Context, id int64) (visitor.Status, error) {
	affected, err := s.repo.Delete(ctx, id)
	if err != nil {
		return "", err
	}
	if affected < 1 {
		return "", visitor.ErrVisitorNotFound
	}
	return visitor.StatusVisitorDeleted, nil
}

// DeleteAll removes every visitor. An empty table is reported as
// visitor.StatusNoVisitorsFound, not as an error.
func (s *VisitorService) DeleteAll(ctx context.Context) (visitor.Status, error) {
	affected, err := s.repo.DeleteAll(ctx)
	if err != nil {
		return "", err
	}
	if affected < 1 {
		return visitor.StatusNoVisitorsFound, nil
	}
	return visitor.StatusAllVisitorsDeleted, nil
}
