package repositories

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// RunLockRepository guards single-run-at-a-time recomputation. A held lock
// means another run is in flight; callers skip instead of queueing.
type RunLockRepository interface {
	// TryAcquire returns (lock, true) when the advisory lock was taken, or
	// (nil, false) when another session holds it.
	TryAcquire(ctx context.Context) (RunLock, bool, error)
}

type RunLock interface {
	Release(ctx context.Context)
}

type runLockRepo struct {
	db  *pgxpool.Pool
	key int64
}

func NewRunLockRepository(db *pgxpool.Pool, key int64) RunLockRepository {
	return &runLockRepo{db: db, key: key}
}

func (r *runLockRepo) TryAcquire(ctx context.Context) (RunLock, bool, error) {
	// Session-level advisory locks live on a single connection, so pin one
	// for the duration of the run. If the process crashes, the connection
	// dies and Postgres releases the lock on its own.
	conn, err := r.db.Acquire(ctx)
	if err != nil {
		return nil, false, err
	}

	var acquired bool
	if err := conn.QueryRow(ctx, `SELECT pg_try_advisory_lock($1)`, r.key).Scan(&acquired); err != nil {
		conn.Release()
		return nil, false, err
	}
	if !acquired {
		conn.Release()
		return nil, false, nil
	}

	return &advisoryLock{conn: conn, key: r.key}, true, nil
}

type advisoryLock struct {
	conn *pgxpool.Conn
	key  int64
}

func (l *advisoryLock) Release(ctx context.Context) {
	// Unlock errors are not actionable: the connection release below returns
	// the session to the pool either way, which drops the lock.
	_, _ = l.conn.Exec(ctx, `SELECT pg_advisory_unlock($1)`, l.key)
	l.conn.Release()
}
