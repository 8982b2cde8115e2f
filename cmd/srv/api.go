package main

import (
	"fmt"
	"net/http"

	"github.com/onepiece-lab/backend/internal/middleware"
	"github.com/onepiece-lab/backend/pkg/router"

	"github.com/rs/cors"
	"github.com/urfave/cli/v2"
)

func (s *srv) startApi(*cli.Context) error {
	s.loadConfig()
	s.loadLogger()
	s.loadDatabase()
	s.loadRepos()
	s.loadDomains()
	s.loadRouter()

	handler := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete,
		},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
	}).Handler(s.router.Handler())

	s.server = &http.Server{
		Addr:    fmt.Sprintf("%s:%s", s.configs.ApiServer.Host, s.configs.ApiServer.Port),
		Handler: handler,
	}

	s.logger.Infof("Starting server on port: %s", s.configs.ApiServer.Port)
	if err := s.server.ListenAndServe(); err != nil {
		return err
	}

	return nil
}

func (s *srv) loadRouter() {
	s.router = router.New(s.db, *s.configs, s.logger)
	s.router.AddCloser(middleware.Logger())

	publicRouter := s.router.Branch()
	{
		router.GET(publicRouter, "/characters", s.characterDomain.GetList)
		router.GET(publicRouter, "/characters/{name}/affiliation", s.characterDomain.GetAffiliation)
		router.GET(publicRouter, "/characters/{id}", s.characterDomain.Get)

		router.GET(publicRouter, "/decks", s.deckDomain.GetList)
		router.GET(publicRouter, "/decks/character/{id}", s.deckDomain.GetByCharacter)
		router.GET(publicRouter, "/decks/{id}", s.deckDomain.Get)

		router.POST(publicRouter, "/users", s.userDomain.Register)
		router.POST(publicRouter, "/users/login", s.userDomain.Login)
	}

	// Mutating routes require a verified access token.
	authRouter := s.router.Branch()
	authVerifier := middleware.NewAuthVerifier().WithAccessToken()
	authRouter.Before(authVerifier.Middleware())
	{
		router.POST(authRouter, "/characters", s.characterDomain.Create)
		router.PATCH(authRouter, "/characters/{id}", s.characterDomain.UpdateByID)
		router.DELETE(authRouter, "/characters/{id}", s.characterDomain.DeleteByID)

		router.POST(authRouter, "/decks", s.deckDomain.Create)
		router.PATCH(authRouter, "/decks/{id}", s.deckDomain.UpdateByID)
		router.DELETE(authRouter, "/decks/{id}", s.deckDomain.DeleteByID)

		router.PATCH(authRouter, "/users/{id}", s.userDomain.UpdateByID)
		router.DELETE(authRouter, "/users/{id}", s.userDomain.DeleteByID)
	}
}
