package main

import "github.com/urfave/cli/v2"

func (s *srv) loadApp() {
	app := cli.NewApp()
	app.Action = cli.ShowAppHelp
	app.Name = "opiece"
	app.Usage = "One Piece TCG backend"
	app.Commands = []*cli.Command{
		{
			Action:      server.startApi,
			Name:        "api",
			Usage:       "Start the api service",
			Category:    "Api",
			Description: `Serves the character, deck and user apis.`,
		},
		{
			Action:      server.startMigrate,
			Name:        "migrate",
			Usage:       "Apply database migrations",
			Category:    "Database",
			Description: `Applies all pending sql migrations to the configured database.`,
		},
		{
			Action:      server.startSeed,
			Name:        "seed",
			Usage:       "Seed sample data",
			Category:    "Database",
			Description: `Inserts the sample affiliations, characters and the admin user.`,
		},
	}

	s.app = app
}
