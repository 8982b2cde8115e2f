package main

import (
	"context"
	"database/sql"

	"github.com/onepiece-lab/backend/internal/entity"
	"github.com/onepiece-lab/backend/pkg/crypto"
	"github.com/onepiece-lab/backend/pkg/xcontext"

	"github.com/urfave/cli/v2"
)

func (s *srv) startSeed(*cli.Context) error {
	s.loadConfig()
	s.loadLogger()
	s.loadDatabase()
	s.loadRepos()

	ctx := xcontext.WithDB(context.Background(), s.db)
	ctx = xcontext.WithLogger(ctx, s.logger)

	if err := entity.MigrateTable(ctx); err != nil {
		return err
	}

	strawHat := &entity.Affiliation{Name: "Straw Hat Pirates"}
	baggyDelivery := &entity.Affiliation{Name: "Baggy's Delivery"}
	for _, affiliation := range []*entity.Affiliation{strawHat, baggyDelivery} {
		if err := s.affiliationRepo.Create(ctx, affiliation); err != nil {
			return err
		}
	}

	characters := []*entity.Character{
		{
			Name:          "Monkey D. Luffy",
			AffiliationID: sql.NullInt64{Valid: true, Int64: strawHat.ID},
			LifePoints:    1000,
			Size:          1.74,
			Age:           19,
			Weight:        70,
		},
		{
			Name:          "Baggy",
			AffiliationID: sql.NullInt64{Valid: true, Int64: baggyDelivery.ID},
			LifePoints:    500,
			Size:          1.92,
			Age:           39,
			Weight:        50,
		},
	}
	for _, character := range characters {
		if err := s.characterRepo.Create(ctx, character); err != nil {
			return err
		}
	}

	hashed, err := crypto.HashPassword("admin")
	if err != nil {
		return err
	}

	admin := &entity.User{Email: "admin@gmail.com", Password: hashed}
	if err := s.userRepo.Create(ctx, admin); err != nil {
		return err
	}

	s.logger.Infof("Seed data inserted")
	return nil
}
