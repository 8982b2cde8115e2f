package main

import (
	"net/http"

	"github.com/onepiece-lab/backend/config"
	"github.com/onepiece-lab/backend/internal/domain"
	"github.com/onepiece-lab/backend/internal/repository"
	"github.com/onepiece-lab/backend/pkg/logger"
	"github.com/onepiece-lab/backend/pkg/router"

	"github.com/urfave/cli/v2"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

type srv struct {
	app *cli.App

	affiliationRepo repository.AffiliationRepository
	characterRepo   repository.CharacterRepository
	userRepo        repository.UserRepository
	deckRepo        repository.DeckRepository

	characterDomain domain.CharacterDomain
	deckDomain      domain.DeckDomain
	userDomain      domain.UserDomain

	router *router.Router
	db     *gorm.DB
	logger logger.Logger

	configs *config.Configs

	server *http.Server
}

func (s *srv) loadLogger() {
	s.logger = logger.NewLogger(logger.LevelFor(s.configs.Env))
}

func (s *srv) loadDatabase() {
	var err error
	s.db, err = gorm.Open(mysql.New(mysql.Config{
		DSN:                       s.configs.Database.ConnectionString(),
		DefaultStringSize:         256,
		DisableDatetimePrecision:  true,
		DontSupportRenameIndex:    true,
		DontSupportRenameColumn:   true,
		SkipInitializeWithVersion: false,
	}), &gorm.Config{})
	if err != nil {
		panic(err)
	}
}

func (s *srv) loadRepos() {
	s.affiliationRepo = repository.NewAffiliationRepository()
	s.characterRepo = repository.NewCharacterRepository()
	s.userRepo = repository.NewUserRepository()
	s.deckRepo = repository.NewDeckRepository()
}

func (s *srv) loadDomains() {
	s.characterDomain = domain.NewCharacterDomain(s.characterRepo, s.affiliationRepo)
	s.deckDomain = domain.NewDeckDomain(s.deckRepo)
	s.userDomain = domain.NewUserDomain(s.userRepo)
}
