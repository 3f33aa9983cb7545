package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"
	"time"

	"silverwork/internal/database"
	"silverwork/internal/domain/application"
	"silverwork/internal/domain/history"
)

type recordedExec struct {
	query string
	args  []any
}

type recordingTx struct {
	execs []recordedExec

	// affected holds the per-call rows-affected results, consumed in order.
	affected []int64

	committed  bool
	rolledBack bool
}

func (t *recordingTx) Exec(_ context.Context, query string, args ...any) (int64, error) {
	t.execs = append(t.execs, recordedExec{query: query, args: args})
	if len(t.affected) == 0 {
		return 1, nil
	}
	n := t.affected[0]
	t.affected = t.affected[1:]
	return n, nil
}

func (t *recordingTx) Query(context.Context, string, ...any) (database.Rows, error) {
	return nil, errors.New("unexpected Query")
}

func (t *recordingTx) QueryRow(context.Context, string, ...any) database.Row {
	return nil
}

func (t *recordingTx) Commit(context.Context) error {
	t.committed = true
	return nil
}

func (t *recordingTx) Rollback(context.Context) error {
	if !t.committed {
		t.rolledBack = true
	}
	return nil
}

type recordingDB struct {
	tx *recordingTx
}

func (d *recordingDB) Ping(context.Context) error { return nil }
func (d *recordingDB) Close() error               { return nil }

func (d *recordingDB) Exec(context.Context, string, ...any) (int64, error) {
	return 0, errors.New("unexpected Exec outside a transaction")
}

func (d *recordingDB) Query(context.Context, string, ...any) (database.Rows, error) {
	return nil, errors.New("unexpected Query")
}

func (d *recordingDB) QueryRow(context.Context, string, ...any) database.Row {
	return nil
}

func (d *recordingDB) Begin(context.Context) (database.Tx, error) {
	return d.tx, nil
}

func (d *recordingDB) SQLDB() *sql.DB { return nil }

func TestUpdateStatusApprovedOpensHistory(t *testing.T) {
	tx := &recordingTx{}
	repo := NewPostgresApplicationRepository(&recordingDB{tx: tx})
	now := time.Date(2025, 11, 20, 9, 0, 0, 0, time.UTC)

	if err := repo.UpdateStatus(context.Background(), 7, application.StatusApproved, now); err != nil {
		t.Fatalf("update status: %v", err)
	}
	if !tx.committed {
		t.Fatal("transaction not committed")
	}
	if len(tx.execs) != 2 {
		t.Fatalf("execs = %d, want status update plus history insert", len(tx.execs))
	}

	if !strings.Contains(tx.execs[0].query, "UPDATE applications") {
		t.Fatalf("first statement = %q, want application status update", tx.execs[0].query)
	}

	ins := tx.execs[1]
	if !strings.Contains(ins.query, "INSERT INTO employment_histories") {
		t.Fatalf("second statement = %q, want history insert", ins.query)
	}
	// The guard keeps a retried approval from opening a second active stint.
	if !strings.Contains(ins.query, "WHERE NOT EXISTS") {
		t.Fatalf("history insert is unguarded: %q", ins.query)
	}
	if len(ins.args) != 4 || ins.args[0] != int64(7) || ins.args[2] != history.StatusActive {
		t.Fatalf("history insert args = %v", ins.args)
	}
	if ins.args[1] != now {
		t.Fatalf("start date = %v, want %v", ins.args[1], now)
	}
}

func TestUpdateStatusCompletedClosesHistory(t *testing.T) {
	tx := &recordingTx{}
	repo := NewPostgresApplicationRepository(&recordingDB{tx: tx})
	now := time.Date(2026, 2, 20, 9, 0, 0, 0, time.UTC)

	if err := repo.UpdateStatus(context.Background(), 7, application.StatusCompleted, now); err != nil {
		t.Fatalf("update status: %v", err)
	}
	if !tx.committed {
		t.Fatal("transaction not committed")
	}
	if len(tx.execs) != 2 {
		t.Fatalf("execs = %d, want status update plus history close", len(tx.execs))
	}

	cl := tx.execs[1]
	if !strings.Contains(cl.query, "UPDATE employment_histories") {
		t.Fatalf("second statement = %q, want history close", cl.query)
	}
	if !strings.Contains(cl.query, "status = $4") {
		t.Fatalf("history close must target the active row only: %q", cl.query)
	}
	want := []any{int64(7), now, history.StatusCompleted, history.StatusActive}
	if len(cl.args) != len(want) {
		t.Fatalf("history close args = %v", cl.args)
	}
	for i := range want {
		if cl.args[i] != want[i] {
			t.Fatalf("history close args = %v, want %v", cl.args, want)
		}
	}
}

func TestUpdateStatusOtherTransitionsLeaveHistoriesAlone(t *testing.T) {
	for _, next := range []application.Status{
		application.StatusRejected,
		application.StatusWithdrawn,
	} {
		tx := &recordingTx{}
		repo := NewPostgresApplicationRepository(&recordingDB{tx: tx})

		if err := repo.UpdateStatus(context.Background(), 7, next, time.Now()); err != nil {
			t.Fatalf("%s: update status: %v", next, err)
		}
		if !tx.committed {
			t.Fatalf("%s: transaction not committed", next)
		}
		if len(tx.execs) != 1 {
			t.Fatalf("%s: execs = %d, want only the status update", next, len(tx.execs))
		}
		for _, e := range tx.execs {
			if strings.Contains(e.query, "employment_histories") {
				t.Fatalf("%s: unexpected history write: %q", next, e.query)
			}
		}
	}
}

func TestUpdateStatusMissingApplication(t *testing.T) {
	tx := &recordingTx{affected: []int64{0}}
	repo := NewPostgresApplicationRepository(&recordingDB{tx: tx})

	err := repo.UpdateStatus(context.Background(), 999, application.StatusApproved, time.Now())
	if !errors.Is(err, application.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if tx.committed {
		t.Fatal("transaction must not commit")
	}
	if !tx.rolledBack {
		t.Fatal("transaction not rolled back")
	}
	if len(tx.execs) != 1 {
		t.Fatalf("execs = %d, want no history write after a missing update", len(tx.execs))
	}
}
