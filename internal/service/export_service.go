package service

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/codetrack/internal/error_values"
	"github.com/limbo/codetrack/internal/export"
	"github.com/limbo/codetrack/internal/repository"
	"github.com/limbo/codetrack/internal/streak"
	"github.com/limbo/codetrack/pkg/entity"
)

const exportFilePrefix = "problem_solving_progress_"

type ExportService struct {
	usersRepo repository.UsersRepositoryI
	logsRepo  repository.ProblemLogsRepositoryI
	loc       *time.Location
	now       func() time.Time
}

func NewExportService(usersRepo repository.UsersRepositoryI, logsRepo repository.ProblemLogsRepositoryI,
	loc *time.Location, now func() time.Time) *ExportService {
	if loc == nil {
		loc = time.Local
	}
	if now == nil {
		now = time.Now
	}
	return &ExportService{
		usersRepo: usersRepo,
		logsRepo:  logsRepo,
		loc:       loc,
		now:       now,
	}
}

func (es *ExportService) FileName(ext string) string {
	return exportFilePrefix + streak.DateOf(es.now(), es.loc).String() + "." + ext
}

func (es *ExportService) WriteCSV(ctx context.Context, uid uuid.UUID, w io.Writer) error {
	logs, err := es.listLogs(ctx, uid)
	if err != nil {
		return err
	}
	return export.WriteCSV(w, logs, es.loc)
}

func (es *ExportService) WriteHTML(ctx context.Context, uid uuid.UUID, w io.Writer) error {
	user, err := es.usersRepo.FindByID(ctx, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return errorvalues.ErrUserNotFound
		}
		return errors.New("repository searching error: " + err.Error())
	}
	logs, err := es.listLogs(ctx, uid)
	if err != nil {
		return err
	}
	return export.WriteHTML(w, export.NewReport(user.Name, logs, summarize(logs), es.now(), es.loc))
}

func (es *ExportService) listLogs(ctx context.Context, uid uuid.UUID) ([]entity.ProblemLog, error) {
	logs, err := es.logsRepo.ListByUser(ctx, uid)
	if err != nil {
		return nil, errors.New("repository listing logs error: " + err.Error())
	}
	if len(logs) == 0 {
		return nil, errorvalues.ErrNoData
	}
	return logs, nil
}
