package main

import (
	"database/sql"

	"github.com/onepiece-lab/backend/internal/repository"

	"github.com/urfave/cli/v2"
)

func (s *srv) startMigrate(*cli.Context) error {
	s.loadConfig()
	s.loadLogger()

	db, err := sql.Open("mysql", s.configs.Database.ConnectionString())
	if err != nil {
		return err
	}
	defer db.Close()

	if err := repository.Migrate(db, s.configs.Database.Database); err != nil {
		return err
	}

	s.logger.Infof("Migrations applied")
	return nil
}
