package service

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/deppfellow/visitor-log/internal/model/visitor"
	"github.com/deppfellow/visitor-log/internal/repository"
	"github.com/deppfellow/visitor-log/internal/repository/repotest"
	"github.com/rs/zerolog"
)

type recordingNotifier struct {
	visitors []visitor.Visitor
	err      error
}

func (n *recordingNotifier) EnqueueVisitorArrived(_ context.Context, v visitor.Visitor) error {
	n.visitors = append(n.visitors, v)
	return n.err
}

func newTestService(db *repotest.FakeDB, notifier VisitorNotifier) *VisitorService {
	logger := zerolog.Nop()
	return NewVisitorService(&logger, repository.NewVisitorRepository(db), notifier)
}

func newVisitor() visitor.NewVisitor {
	return visitor.NewVisitor{
		Name:      "Bend Over",
		Age:       float64(25),
		Date:      "2024-05-13",
		Time:      "09:00",
		Assistant: "Jane Smith",
		Comments:  "Interested in programming and designing courses",
	}
}

func TestCreateTable(t *testing.T) {
	db := &repotest.FakeDB{}
	svc := newTestService(db, nil)

	status, err := svc.CreateTable(context.Background())
	if err != nil {
		t.Fatalf("CreateTable: %v", err)
	}
	if status != visitor.StatusTableCreated {
		t.Errorf("status = %q", status)
	}

	calls := db.Calls()
	if len(calls) != 1 || calls[0].SQL != repository.QueryCreateVisitorsTable {
		t.Errorf("unexpected calls %+v", calls)
	}
}

func TestAddVisitor(t *testing.T) {
	db := &repotest.FakeDB{RowsAffected: 1}
	notifier := &recordingNotifier{}
	svc := newTestService(db, notifier)

	status, err := svc.AddVisitor(context.Background(), newVisitor())
	if err != nil {
		t.Fatalf("AddVisitor: %v", err)
	}
	if status != visitor.StatusVisitorAdded {
		t.Errorf("status = %q", status)
	}

	call := db.LastCall()
	if call.SQL != repository.QueryAddNewVisitor {
		t.Errorf("SQL = %q", call.SQL)
	}
	want := []any{"Bend Over", 25, "2024-05-13", "09:00", "Jane Smith", "Interested in programming and designing courses"}
	if !reflect.DeepEqual(call.Args, want) {
		t.Errorf("args = %#v, want %#v", call.Args, want)
	}

	if len(notifier.visitors) != 1 || notifier.visitors[0].Name != "Bend Over" {
		t.Errorf("notifier saw %+v", notifier.visitors)
	}
}

func TestAddVisitorIgnoresNotifierFailure(t *testing.T) {
	db := &repotest.FakeDB{RowsAffected: 1}
	svc := newTestService(db, &recordingNotifier{err: errors.New("redis down")})

	status, err := svc.AddVisitor(context.Background(), newVisitor())
	if err != nil {
		t.Fatalf("AddVisitor: %v", err)
	}
	if status != visitor.StatusVisitorAdded {
		t.Errorf("status = %q", status)
	}
}

func TestAddVisitorValidationFailureIssuesNoStatement(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(v *visitor.NewVisitor)
		want   string
	}{
		{"name not a string", func(v *visitor.NewVisitor) { v.Name = float64(123) }, visitor.NotStringMessage(float64(123))},
		{"negative age", func(v *visitor.NewVisitor) { v.Age = float64(-1) }, visitor.AgeFormatMessage},
		{"date not a string", func(v *visitor.NewVisitor) { v.Date = float64(1985) }, visitor.NotStringMessage(float64(1985))},
		{"bad date", func(v *visitor.NewVisitor) { v.Date = "04-12-2022" }, visitor.DateFormatMessage},
		{"time not a string", func(v *visitor.NewVisitor) { v.Time = float64(7) }, visitor.NotStringMessage(float64(7))},
		{"bad time", func(v *visitor.NewVisitor) { v.Time = "10:1" }, visitor.TimeFormatMessage},
		{"assistant not a string", func(v *visitor.NewVisitor) { v.Assistant = float64(123) }, visitor.NotStringMessage(float64(123))},
		{"comments not a string", func(v *visitor.NewVisitor) { v.Comments = float64(123) }, visitor.NotStringMessage(float64(123))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := &repotest.FakeDB{RowsAffected: 1}
			notifier := &recordingNotifier{}
			svc := newTestService(db, notifier)

			n := newVisitor()
			tt.mutate(&n)

			_, err := svc.AddVisitor(context.Background(), n)

			var vErr *visitor.ValidationError
			if !errors.As(err, &vErr) {
				t.Fatalf("expected validation error, got %v", err)
			}
			if err.Error() != tt.want {
				t.Errorf("message = %q, want %q", err.Error(), tt.want)
			}
			if len(db.Calls()) != 0 {
				t.Errorf("expected no statements, got %+v", db.Calls())
			}
			if len(notifier.visitors) != 0 {
				t.Errorf("notifier should not be called on validation failure")
			}
		})
	}
}

func TestListAll(t *testing.T) {
	rows := [][]any{
		{int64(1), "John Doe", 30, "2024-06-08", "12:00", "Assistant", "No comments"},
	}
	db := &repotest.FakeDB{Rows: rows}
	svc := newTestService(db, nil)

	got, err := svc.ListAll(context.Background())
	if err != nil {
		t.Fatalf("ListAll: %v", err)
	}
	want := []visitor.Visitor{{ID: 1, Name: "John Doe", Age: 30, Date: "2024-06-08", Time: "12:00", Assistant: "Assistant", Comments: "No comments"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ListAll = %+v", got)
	}
	if db.LastCall().SQL != repository.QueryListAllVisitors {
		t.Errorf("SQL = %q", db.LastCall().SQL)
	}
}

func TestViewOne(t *testing.T) {
	john := visitor.Visitor{ID: 1, Name: "John Doe", Age: 30, Date: "2021-12-31", Time: "12:00", Assistant: "Assistant", Comments: "No comments"}
	db := &repotest.FakeDB{Rows: [][]any{repotest.VisitorRow(john)}}
	svc := newTestService(db, nil)

	got, err := svc.ViewOne(context.Background(), 1)
	if err != nil {
		t.Fatalf("ViewOne: %v", err)
	}
	if got != john {
		t.Errorf("ViewOne = %+v", got)
	}

	call := db.LastCall()
	if call.SQL != repository.QueryViewOneVisitor || !reflect.DeepEqual(call.Args, []any{int64(1)}) {
		t.Errorf("unexpected call %+v", call)
	}
}

func TestViewOneNotFound(t *testing.T) {
	svc := newTestService(&repotest.FakeDB{}, nil)

	_, err := svc.ViewOne(context.Background(), 99)
	if !errors.Is(err, visitor.ErrVisitorNotFound) {
		t.Errorf("expected ErrVisitorNotFound, got %v", err)
	}
}

func TestViewLast(t *testing.T) {
	last := visitor.Visitor{ID: 7, Name: "Last One", Age: 41, Date: "2024-06-08", Time: "17:30", Assistant: "Jane Smith"}
	db := &repotest.FakeDB{Rows: [][]any{repotest.VisitorRow(last)}}
	svc := newTestService(db, nil)

	got, err := svc.ViewLast(context.Background())
	if err != nil {
		t.Fatalf("ViewLast: %v", err)
	}
	if got != last {
		t.Errorf("ViewLast = %+v", got)
	}
	if db.LastCall().SQL != repository.QueryViewLastVisitor {
		t.Errorf("SQL = %q", db.LastCall().SQL)
	}

	empty := newTestService(&repotest.FakeDB{}, nil)
	if _, err := empty.ViewLast(context.Background()); !errors.Is(err, visitor.ErrVisitorNotFound) {
		t.Errorf("expected ErrVisitorNotFound on empty table, got %v", err)
	}
}

func TestUpdateOne(t *testing.T) {
	db := &repotest.FakeDB{RowsAffected: 1}
	svc := newTestService(db, nil)

	status, err := svc.UpdateOne(context.Background(), 1, "name", "Teddy Bear")
	if err != nil {
		t.Fatalf("UpdateOne: %v", err)
	}
	if status != visitor.StatusVisitorUpdated {
		t.Errorf("status = %q", status)
	}

	call := db.LastCall()
	if call.SQL != repository.UpdateVisitorQuery(`"name"`) {
		t.Errorf("SQL = %q", call.SQL)
	}
	if !reflect.DeepEqual(call.Args, []any{"Teddy Bear", int64(1)}) {
		t.Errorf("args = %v", call.Args)
	}
}

func TestUpdateOneNormalizesAge(t *testing.T) {
	db := &repotest.FakeDB{RowsAffected: 1}
	svc := newTestService(db, nil)

	if _, err := svc.UpdateOne(context.Background(), 3, "age", float64(44)); err != nil {
		t.Fatalf("UpdateOne: %v", err)
	}
	if !reflect.DeepEqual(db.LastCall().Args, []any{44, int64(3)}) {
		t.Errorf("args = %#v", db.LastCall().Args)
	}
}

func TestUpdateOneNotFound(t *testing.T) {
	svc := newTestService(&repotest.FakeDB{RowsAffected: 0}, nil)

	_, err := svc.UpdateOne(context.Background(), 1, "comments", "late")
	if !errors.Is(err, visitor.ErrVisitorNotFound) {
		t.Errorf("expected ErrVisitorNotFound, got %v", err)
	}
}

func TestUpdateOneRejectsUnknownColumnBeforeQuerying(t *testing.T) {
	db := &repotest.FakeDB{RowsAffected: 1}
	svc := newTestService(db, nil)

	_, err := svc.UpdateOne(context.Background(), 1, "name = 'x'; DROP TABLE visitors; --", "x")

	var vErr *visitor.ValidationError
	if !errors.As(err, &vErr) || vErr.Field != "column" {
		t.Fatalf("expected column validation error, got %v", err)
	}
	if len(db.Calls()) != 0 {
		t.Errorf("expected no statements, got %+v", db.Calls())
	}
}

func TestUpdateOneRejectsInvalidValue(t *testing.T) {
	db := &repotest.FakeDB{RowsAffected: 1}
	svc := newTestService(db, nil)

	_, err := svc.UpdateOne(context.Background(), 1, "time", "25:5")
	if err == nil || err.Error() != visitor.TimeFormatMessage {
		t.Fatalf("expected time format error, got %v", err)
	}
	if len(db.Calls()) != 0 {
		t.Errorf("expected no statements, got %+v", db.Calls())
	}
}

func TestDeleteOne(t *testing.T) {
	db := &repotest.FakeDB{RowsAffected: 1}
	svc := newTestService(db, nil)

	status, err := svc.DeleteOne(context.Background(), 1)
	if err != nil {
		t.Fatalf("DeleteOne: %v", err)
	}
	if status != visitor.StatusVisitorDeleted {
		t.Errorf("status = %q", status)
	}

	calls := db.Calls()
	if len(calls) != 1 || calls[0].SQL != repository.QueryDeleteVisitor || !reflect.DeepEqual(calls[0].Args, []any{int64(1)}) {
		t.Errorf("unexpected calls %+v", calls)
	}
}

func TestDeleteOneNotFound(t *testing.T) {
	db := &repotest.FakeDB{RowsAffected: 0}
	svc := newTestService(db, nil)

	_, err := svc.DeleteOne(context.Background(), 1)
	if !errors.Is(err, visitor.ErrVisitorNotFound) {
		t.Fatalf("expected ErrVisitorNotFound, got %v", err)
	}
	if err.Error() != visitor.NotFoundMessage {
		t.Errorf("message = %q", err.Error())
	}
	if len(db.Calls()) != 1 {
		t.Errorf("expected one statement, got %d", len(db.Calls()))
	}
}

func TestDeleteAll(t *testing.T) {
	tests := []struct {
		affected int64
		want     visitor.Status
	}{
		{affected: 0, want: visitor.StatusNoVisitorsFound},
		{affected: 1, want: visitor.StatusAllVisitorsDeleted},
		{affected: 12, want: visitor.StatusAllVisitorsDeleted},
	}

	for _, tt := range tests {
		db := &repotest.FakeDB{RowsAffected: tt.affected}
		svc := newTestService(db, nil)

		status, err := svc.DeleteAll(context.Background())
		if err != nil {
			t.Fatalf("DeleteAll(%d rows): %v", tt.affected, err)
		}
		if status != tt.want {
			t.Errorf("DeleteAll(%d rows) = %q, want %q", tt.affected, status, tt.want)
		}
		if db.LastCall().SQL != repository.QueryDeleteAllVisitors {
			t.Errorf("SQL = %q", db.LastCall().SQL)
		}
	}
}

func TestStoreErrorsPropagateUnwrapped(t *testing.T) {
	storeErr := errors.New("syntax error at or near")
	svc := newTestService(&repotest.FakeDB{Err: storeErr}, nil)
	ctx := context.Background()

	if _, err := svc.DeleteOne(ctx, 1); err != storeErr {
		t.Errorf("DeleteOne: %v", err)
	}
	if _, err := svc.AddVisitor(ctx, newVisitor()); err != storeErr {
		t.Errorf("AddVisitor: %v", err)
	}
	if _, err := svc.ViewOne(ctx, 1); err != storeErr {
		t.Errorf("ViewOne: %v", err)
	}
}
