package model

import "net/http"

type Affiliation struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// AffiliationInput references an affiliation by its natural key.
type AffiliationInput struct {
	Name string `json:"name"`
}

type Character struct {
	ID            int64        `json:"id"`
	Name          string       `json:"name"`
	AffiliationID *int64       `json:"affiliationId"`
	LifePoints    int          `json:"lifePoints"`
	Size          float64      `json:"size"`
	Age           int          `json:"age"`
	Weight        float64      `json:"weight"`
	ImageURL      string       `json:"imageUrl"`
	Affiliation   *Affiliation `json:"affiliation,omitempty"`
}

type GetCharactersRequest struct{}

type GetCharactersResponse []Character

func (r GetCharactersResponse) HTTPStatusCode() int {
	if len(r) == 0 {
		return http.StatusNoContent
	}
	return http.StatusOK
}

type GetCharacterRequest struct {
	ID string `json:"id"`
}

type GetCharacterResponse Character

type GetCharacterAffiliationRequest struct {
	Name string `json:"name"`
}

type GetCharacterAffiliationResponse Affiliation

type CreateCharacterRequest struct {
	Name        string            `json:"name"`
	Affiliation *AffiliationInput `json:"affiliation"`
	LifePoints  int               `json:"lifePoints"`
	Size        *float64          `json:"size"`
	Age         *int              `json:"age"`
	Weight      *float64          `json:"weight"`
	ImageURL    *string           `json:"imageUrl"`
}

type CreateCharacterResponse Character

func (CreateCharacterResponse) HTTPStatusCode() int {
	return http.StatusCreated
}

type UpdateCharacterRequest struct {
	ID          string            `json:"id"`
	Name        *string           `json:"name"`
	Affiliation *AffiliationInput `json:"affiliation"`
	LifePoints  *int              `json:"lifePoints"`
	Size        *float64          `json:"size"`
	Age         *int              `json:"age"`
	Weight      *float64          `json:"weight"`
	ImageURL    *string           `json:"imageUrl"`
}

type UpdateCharacterResponse Character

type DeleteCharacterRequest struct {
	ID string `json:"id"`
}

type DeleteCharacterResponse Character
