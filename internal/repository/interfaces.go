package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/limbo/codetrack/pkg/entity"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks . UsersRepositoryI,ProblemLogsRepositoryI

type UsersRepositoryI interface {
	// Creates new user in database
	Create(ctx context.Context, user *entity.User) error
	// Looks up user by name. Can be used for login
	FindByName(ctx context.Context, name string) (*entity.User, error)
	// Looks up user by uid. Can be used for authorization middleware
	FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error)
	// Returns SHA of the last imported commit, empty if user never synced
	GetWatermark(ctx context.Context, uid uuid.UUID) (string, error)
}

type ProblemLogsRepositoryI interface {
	// Returns solved_at of every log owned by uid
	GetSolvedTimes(ctx context.Context, uid uuid.UUID) ([]time.Time, error)
	// Returns stored (title, solved_at) pairs of uid on platform
	GetTitleDatePairs(ctx context.Context, uid uuid.UUID, platform string) ([]entity.TitleDate, error)
	// Lists logs of uid, newest first
	ListByUser(ctx context.Context, uid uuid.UUID) ([]entity.ProblemLog, error)
	// Lists logs of uid solved in [from, to), newest first
	ListByUserAndRange(ctx context.Context, uid uuid.UUID, from, to time.Time) ([]entity.ProblemLog, error)
	// Inserts imported logs and moves the user's watermark in one transaction
	SaveSyncResult(ctx context.Context, uid uuid.UUID, logs []entity.ProblemLog, watermark string) error
}

type DBConfig interface {
	ConnString() string
}

type PgConnection interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PGCfg struct {
	Address  string
	Username string
	Password string
	DB       string
}

func (pgcfg *PGCfg) ConnString() string {
	return fmt.Sprintf("postgresql://%s:%s@%s/%s", pgcfg.Username, pgcfg.Password, pgcfg.Address, pgcfg.DB)
}
