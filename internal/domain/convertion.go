package domain

import (
	"github.com/onepiece-lab/backend/internal/entity"
	"github.com/onepiece-lab/backend/internal/model"
)

func convertAffiliation(affiliation *entity.Affiliation) model.Affiliation {
	return model.Affiliation{
		ID:   affiliation.ID,
		Name: affiliation.Name,
	}
}

func convertCharacter(character *entity.Character) model.Character {
	result := model.Character{
		ID:         character.ID,
		Name:       character.Name,
		LifePoints: character.LifePoints,
		Size:       character.Size,
		Age:        character.Age,
		Weight:     character.Weight,
		ImageURL:   character.ImageURL,
	}

	if character.AffiliationID.Valid {
		id := character.AffiliationID.Int64
		result.AffiliationID = &id
	}

	if character.Affiliation != nil {
		affiliation := convertAffiliation(character.Affiliation)
		result.Affiliation = &affiliation
	}

	return result
}

func convertDeck(deck *entity.Deck) model.Deck {
	result := model.Deck{
		ID:         deck.ID,
		Name:       deck.Name,
		OwnerID:    deck.OwnerID,
		Owner:      model.DeckOwner{ID: deck.OwnerID},
		Characters: []model.Character{},
	}

	for i := range deck.Characters {
		result.Characters = append(result.Characters, convertCharacter(&deck.Characters[i]))
	}

	return result
}

func convertUser(user *entity.User) model.User {
	return model.User{
		ID:    user.ID,
		Email: user.Email,
	}
}
