package model

import "net/http"

type DeckOwner struct {
	ID int64 `json:"id"`
}

type Deck struct {
	ID         int64       `json:"id"`
	Name       string      `json:"name"`
	OwnerID    int64       `json:"ownerId"`
	Owner      DeckOwner   `json:"owner"`
	Characters []Character `json:"characters"`
}

type GetDecksRequest struct{}

type GetDecksResponse []Deck

func (r GetDecksResponse) HTTPStatusCode() int {
	if len(r) == 0 {
		return http.StatusNoContent
	}
	return http.StatusOK
}

type GetDeckRequest struct {
	ID string `json:"id"`
}

type GetDeckResponse Deck

type GetDecksByCharacterRequest struct {
	ID string `json:"id"`
}

type GetDecksByCharacterResponse []Deck

func (r GetDecksByCharacterResponse) HTTPStatusCode() int {
	if len(r) == 0 {
		return http.StatusNoContent
	}
	return http.StatusOK
}

type CreateDeckRequest struct {
	Name         string  `json:"name"`
	CharacterIDs []int64 `json:"characterIds"`
}

type CreateDeckResponse Deck

func (CreateDeckResponse) HTTPStatusCode() int {
	return http.StatusCreated
}

type UpdateDeckRequest struct {
	ID   string  `json:"id"`
	Name *string `json:"name"`
	// CharacterIDs, when present, replaces the deck membership with exactly
	// this set.
	CharacterIDs *[]int64 `json:"characterIds"`
}

type UpdateDeckResponse Deck

type DeleteDeckRequest struct {
	ID string `json:"id"`
}

type DeleteDeckResponse Deck
