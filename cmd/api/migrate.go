package main

import (
	"database/sql"
	"errors"

	_ "github.com/lib/pq"
	"github.com/limbo/codetrack/pkg/config"
	"github.com/pressly/goose"
	"github.com/spf13/cobra"
)

func newMigrateCmd() *cobra.Command {
	var dir string
	cmd := &cobra.Command{
		Use:       "migrate [up|down|status]",
		Short:     "Apply database migrations",
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"up", "down", "status"},
		RunE: func(cmd *cobra.Command, args []string) error {
			action := "up"
			if len(args) == 1 {
				action = args[0]
			}
			cfg := config.New()
			if dir == "" {
				dir = cfg.GetStringOr("MIGRATIONS_DIR", "./migrations")
			}
			return migrate(cfg.Postgres().ConnString(), dir, action)
		},
	}
	cmd.Flags().StringVar(&dir, "dir", "", "migrations directory (default $MIGRATIONS_DIR or ./migrations)")
	return cmd
}

func migrate(connString, dir, action string) error {
	db, err := sql.Open("postgres", connString)
	if err != nil {
		return errors.New("opening database error: " + err.Error())
	}
	defer db.Close()
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}
	switch action {
	case "down":
		err = goose.Down(db, dir)
	case "status":
		err = goose.Status(db, dir)
	default:
		err = goose.Up(db, dir)
	}
	if err != nil {
		return errors.New("migration " + action + " error: " + err.Error())
	}
	return nil
}
