package testutil

import (
	"context"
	"database/sql"

	"github.com/onepiece-lab/backend/internal/entity"
	"github.com/onepiece-lab/backend/internal/repository"
	"github.com/onepiece-lab/backend/pkg/crypto"
)

const User1Password = "admin"

var (
	Affiliation1 = &entity.Affiliation{
		Base: entity.Base{ID: 1},
		Name: "Straw Hat Pirates",
	}

	Affiliation2 = &entity.Affiliation{
		Base: entity.Base{ID: 2},
		Name: "Baggy's Delivery",
	}

	Character1 = &entity.Character{
		Base:          entity.Base{ID: 1},
		Name:          "Monkey D. Luffy",
		AffiliationID: sql.NullInt64{Valid: true, Int64: 1},
		LifePoints:    1000,
		Size:          1.74,
		Age:           19,
		Weight:        70,
	}

	Character2 = &entity.Character{
		Base:          entity.Base{ID: 2},
		Name:          "Baggy",
		AffiliationID: sql.NullInt64{Valid: true, Int64: 2},
		LifePoints:    500,
		Size:          1.92,
		Age:           39,
		Weight:        50,
	}

	User1 = &entity.User{
		Base:  entity.Base{ID: 1},
		Email: "admin@gmail.com",
	}

	Deck1 = &entity.Deck{
		Base:    entity.Base{ID: 1},
		Name:    "Starter deck",
		OwnerID: 1,
	}
)

// CreateFixtureDb inserts the sample rows into the database carried by ctx.
// Deck1 starts out linked to Character1 only.
func CreateFixtureDb(ctx context.Context) {
	insertAffiliations(ctx)
	insertCharacters(ctx)
	insertUsers(ctx)
	insertDecks(ctx)
}

func insertAffiliations(ctx context.Context) {
	affiliationRepo := repository.NewAffiliationRepository()

	for _, affiliation := range []*entity.Affiliation{Affiliation1, Affiliation2} {
		if err := affiliationRepo.Create(ctx, affiliation); err != nil {
			panic(err)
		}
	}
}

func insertCharacters(ctx context.Context) {
	characterRepo := repository.NewCharacterRepository()

	for _, character := range []*entity.Character{Character1, Character2} {
		if err := characterRepo.Create(ctx, character); err != nil {
			panic(err)
		}
	}
}

func insertUsers(ctx context.Context) {
	userRepo := repository.NewUserRepository()

	hashed, err := crypto.HashPassword(User1Password)
	if err != nil {
		panic(err)
	}

	user := *User1
	user.Password = hashed
	if err := userRepo.Create(ctx, &user); err != nil {
		panic(err)
	}
}

func insertDecks(ctx context.Context) {
	deckRepo := repository.NewDeckRepository()

	deck := *Deck1
	deck.Characters = []entity.Character{{Base: entity.Base{ID: Character1.ID}}}
	if err := deckRepo.Create(ctx, &deck); err != nil {
		panic(err)
	}
}
