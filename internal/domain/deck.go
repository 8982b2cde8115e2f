package domain

import (
	"context"
	"errors"

	"github.com/onepiece-lab/backend/internal/entity"
	"github.com/onepiece-lab/backend/internal/model"
	"github.com/onepiece-lab/backend/internal/repository"
	"github.com/onepiece-lab/backend/pkg/errorx"
	"github.com/onepiece-lab/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type DeckDomain interface {
	GetList(context.Context, *model.GetDecksRequest) (*model.GetDecksResponse, error)
	Get(context.Context, *model.GetDeckRequest) (*model.GetDeckResponse, error)
	GetByCharacter(context.Context, *model.GetDecksByCharacterRequest) (*model.GetDecksByCharacterResponse, error)
	Create(context.Context, *model.CreateDeckRequest) (*model.CreateDeckResponse, error)
	UpdateByID(context.Context, *model.UpdateDeckRequest) (*model.UpdateDeckResponse, error)
	DeleteByID(context.Context, *model.DeleteDeckRequest) (*model.DeleteDeckResponse, error)
}

type deckDomain struct {
	deckRepo repository.DeckRepository
}

func NewDeckDomain(deckRepo repository.DeckRepository) DeckDomain {
	return &deckDomain{deckRepo: deckRepo}
}

func (d *deckDomain) GetList(
	ctx context.Context, req *model.GetDecksRequest,
) (*model.GetDecksResponse, error) {
	decks, err := d.deckRepo.GetList(ctx)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get decks: %v", err)
		return nil, errorx.Unknown
	}

	resp := model.GetDecksResponse{}
	for i := range decks {
		resp = append(resp, convertDeck(&decks[i]))
	}

	return &resp, nil
}

func (d *deckDomain) Get(
	ctx context.Context, req *model.GetDeckRequest,
) (*model.GetDeckResponse, error) {
	id, err := parseID(req.ID)
	if err != nil {
		return nil, err
	}

	deck, err := d.deckRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Deck not found.")
		}

		xcontext.Logger(ctx).Errorf("Cannot get deck: %v", err)
		return nil, errorx.Unknown
	}

	resp := model.GetDeckResponse(convertDeck(deck))
	return &resp, nil
}

func (d *deckDomain) GetByCharacter(
	ctx context.Context, req *model.GetDecksByCharacterRequest,
) (*model.GetDecksByCharacterResponse, error) {
	id, err := parseID(req.ID)
	if err != nil {
		return nil, err
	}

	decks, err := d.deckRepo.GetByCharacterID(ctx, id)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get decks by character: %v", err)
		return nil, errorx.Unknown
	}

	resp := model.GetDecksByCharacterResponse{}
	for i := range decks {
		resp = append(resp, convertDeck(&decks[i]))
	}

	return &resp, nil
}

func (d *deckDomain) Create(
	ctx context.Context, req *model.CreateDeckRequest,
) (*model.CreateDeckResponse, error) {
	// The owner always comes from the verified token, never from the body.
	ownerID := xcontext.RequestUserID(ctx)
	if ownerID == 0 {
		return nil, errorx.New(errorx.Unauthenticated, "You need to authenticate before")
	}

	if req.Name == "" {
		return nil, errorx.New(errorx.BadRequest, "Missing field: name")
	}

	deck := &entity.Deck{Name: req.Name, OwnerID: ownerID}
	for _, characterID := range req.CharacterIDs {
		deck.Characters = append(deck.Characters, entity.Character{
			Base: entity.Base{ID: characterID},
		})
	}

	if err := d.deckRepo.Create(ctx, deck); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create deck: %v", err)
		return nil, errorx.Unknown
	}

	created, err := d.deckRepo.GetByID(ctx, deck.ID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot reload deck: %v", err)
		return nil, errorx.Unknown
	}

	resp := model.CreateDeckResponse(convertDeck(created))
	return &resp, nil
}

func (d *deckDomain) UpdateByID(
	ctx context.Context, req *model.UpdateDeckRequest,
) (*model.UpdateDeckResponse, error) {
	id, err := parseID(req.ID)
	if err != nil {
		return nil, err
	}

	deck, err := d.deckRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Deck not found.")
		}

		xcontext.Logger(ctx).Errorf("Cannot get deck: %v", err)
		return nil, errorx.Unknown
	}

	if req.Name != nil && *req.Name != "" {
		err := d.deckRepo.UpdateByID(ctx, id, map[string]any{"name": *req.Name})
		if err != nil {
			xcontext.Logger(ctx).Errorf("Cannot update deck: %v", err)
			return nil, errorx.Unknown
		}
	}

	if req.CharacterIDs != nil {
		// Full-set replacement: members not in the new list are unlinked.
		characters := []entity.Character{}
		for _, characterID := range *req.CharacterIDs {
			characters = append(characters, entity.Character{
				Base: entity.Base{ID: characterID},
			})
		}

		if err := d.deckRepo.ReplaceCharacters(ctx, deck, characters); err != nil {
			xcontext.Logger(ctx).Errorf("Cannot replace deck characters: %v", err)
			return nil, errorx.Unknown
		}
	}

	updated, err := d.deckRepo.GetByID(ctx, id)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot reload deck: %v", err)
		return nil, errorx.Unknown
	}

	resp := model.UpdateDeckResponse(convertDeck(updated))
	return &resp, nil
}

func (d *deckDomain) DeleteByID(
	ctx context.Context, req *model.DeleteDeckRequest,
) (*model.DeleteDeckResponse, error) {
	id, err := parseID(req.ID)
	if err != nil {
		return nil, err
	}

	deck, err := d.deckRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Deck not found.")
		}

		xcontext.Logger(ctx).Errorf("Cannot get deck: %v", err)
		return nil, errorx.Unknown
	}

	if err := d.deckRepo.DeleteByID(ctx, id); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot delete deck: %v", err)
		return nil, errorx.Unknown
	}

	resp := model.DeleteDeckResponse(convertDeck(deck))
	return &resp, nil
}
