package repository

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/limbo/codetrack/internal/error_values"
	"github.com/limbo/codetrack/pkg/entity"
)

const (
	logColumns = `id, user_id, platform, title, difficulty, topic, notes, solved_at, created_at`

	insertLogQuery = `INSERT INTO problem_logs (user_id, platform, title, difficulty, topic, notes, solved_at) VALUES ($1, $2, $3, $4, $5, $6, $7);`
	setWatermark   = `UPDATE users SET last_synced_sha = $1 WHERE id = $2;`
)

type ProblemLogsRepository struct {
	conn PgConnection
}

func NewProblemLogsRepo(cfg DBConfig) *ProblemLogsRepository {
	return &ProblemLogsRepository{
		conn: NewPool(cfg),
	}
}

func NewProblemLogsRepoWithConn(conn PgConnection) *ProblemLogsRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for problemLogsRepo: " + err.Error())
	}
	return &ProblemLogsRepository{
		conn: conn,
	}
}

func (lr *ProblemLogsRepository) GetSolvedTimes(ctx context.Context, uid uuid.UUID) ([]time.Time, error) {
	rows, err := lr.conn.Query(ctx, `SELECT solved_at FROM problem_logs WHERE user_id = $1;`, uid)
	if err != nil {
		return nil, errors.New("getting solved times error: " + err.Error())
	}
	defer rows.Close()
	times := make([]time.Time, 0)
	for rows.Next() {
		var t time.Time
		if err = rows.Scan(&t); err != nil {
			return nil, errors.New("solved time parsing error: " + err.Error())
		}
		times = append(times, t)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected solved times rows error: " + err.Error())
	}
	return times, nil
}

func (lr *ProblemLogsRepository) GetTitleDatePairs(ctx context.Context, uid uuid.UUID, platform string) ([]entity.TitleDate, error) {
	rows, err := lr.conn.Query(ctx, `SELECT title, solved_at FROM problem_logs WHERE user_id = $1 AND platform = $2;`, uid, platform)
	if err != nil {
		return nil, errors.New("getting title-date pairs error: " + err.Error())
	}
	defer rows.Close()
	pairs := make([]entity.TitleDate, 0)
	for rows.Next() {
		var p entity.TitleDate
		if err = rows.Scan(&p.Title, &p.SolvedAt); err != nil {
			return nil, errors.New("title-date pair parsing error: " + err.Error())
		}
		pairs = append(pairs, p)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected title-date rows error: " + err.Error())
	}
	return pairs, nil
}

func (lr *ProblemLogsRepository) ListByUser(ctx context.Context, uid uuid.UUID) ([]entity.ProblemLog, error) {
	rows, err := lr.conn.Query(ctx, `SELECT `+logColumns+` FROM problem_logs WHERE user_id = $1 ORDER BY solved_at DESC;`, uid)
	if err != nil {
		return nil, errors.New("listing problem logs error: " + err.Error())
	}
	return scanLogs(rows)
}

func (lr *ProblemLogsRepository) ListByUserAndRange(ctx context.Context, uid uuid.UUID, from, to time.Time) ([]entity.ProblemLog, error) {
	rows, err := lr.conn.Query(ctx,
		`SELECT `+logColumns+` FROM problem_logs WHERE user_id = $1 AND solved_at >= $2 AND solved_at < $3 ORDER BY solved_at DESC;`,
		uid, from, to,
	)
	if err != nil {
		return nil, errors.New("listing problem logs for period error: " + err.Error())
	}
	return scanLogs(rows)
}

func (lr *ProblemLogsRepository) SaveSyncResult(ctx context.Context, uid uuid.UUID, logs []entity.ProblemLog, watermark string) error {
	tx, err := lr.conn.Begin(ctx)
	if err != nil {
		return errors.New("starting sync transaction error: " + err.Error())
	}
	rollback := func(cause error) error {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			return errors.Join(cause, errors.New("rollback error: "+rbErr.Error()))
		}
		return cause
	}
	for _, l := range logs {
		_, err = tx.Exec(ctx, insertLogQuery, uid, l.Platform, l.Title, l.Difficulty, l.Topic, l.Notes, l.SolvedAt)
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == "23503" {
				return rollback(errorvalues.ErrUserNotFound)
			}
			return rollback(errors.New("inserting problem log error: " + err.Error()))
		}
	}
	ct, err := tx.Exec(ctx, setWatermark, watermark, uid)
	if err != nil {
		return rollback(errors.New("updating watermark error: " + err.Error()))
	}
	if ct.RowsAffected() == 0 {
		return rollback(errorvalues.ErrUserNotFound)
	}
	if err = tx.Commit(ctx); err != nil {
		return errors.New("committing sync transaction error: " + err.Error())
	}
	return nil
}

func scanLogs(rows pgx.Rows) ([]entity.ProblemLog, error) {
	defer rows.Close()
	logs := make([]entity.ProblemLog, 0)
	for rows.Next() {
		var l entity.ProblemLog
		err := rows.Scan(&l.ID, &l.UserID, &l.Platform, &l.Title, &l.Difficulty, &l.Topic, &l.Notes, &l.SolvedAt, &l.CreatedAt)
		if err != nil {
			return nil, errors.New("problem log row parsing error: " + err.Error())
		}
		logs = append(logs, l)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.New("unexpected problem log rows error: " + err.Error())
	}
	return logs, nil
}
