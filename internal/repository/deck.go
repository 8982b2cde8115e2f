package repository

import (
	"context"

	"github.com/onepiece-lab/backend/internal/entity"
	"github.com/onepiece-lab/backend/pkg/xcontext"
)

type DeckRepository interface {
	Create(ctx context.Context, e *entity.Deck) error
	GetList(ctx context.Context) ([]entity.Deck, error)
	GetByID(ctx context.Context, id int64) (*entity.Deck, error)
	GetByCharacterID(ctx context.Context, characterID int64) ([]entity.Deck, error)
	UpdateByID(ctx context.Context, id int64, updates map[string]any) error
	ReplaceCharacters(ctx context.Context, deck *entity.Deck, characters []entity.Character) error
	DeleteByID(ctx context.Context, id int64) error
}

type deckRepository struct{}

func NewDeckRepository() DeckRepository {
	return &deckRepository{}
}

func (r *deckRepository) Create(ctx context.Context, e *entity.Deck) error {
	// Omit stops gorm from upserting the referenced characters; only the
	// join references are written. A dangling character id surfaces as a
	// constraint error from the database.
	if err := xcontext.DB(ctx).Omit("Characters.*").Create(e).Error; err != nil {
		return err
	}
	return nil
}

func (r *deckRepository) GetList(ctx context.Context) ([]entity.Deck, error) {
	var result []entity.Deck
	if err := xcontext.DB(ctx).Preload("Characters").Find(&result).Error; err != nil {
		return nil, err
	}

	return result, nil
}

func (r *deckRepository) GetByID(ctx context.Context, id int64) (*entity.Deck, error) {
	var result entity.Deck
	err := xcontext.DB(ctx).Preload("Characters").Where("id=?", id).Take(&result).Error
	if err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *deckRepository) GetByCharacterID(ctx context.Context, characterID int64) ([]entity.Deck, error) {
	var result []entity.Deck
	err := xcontext.DB(ctx).
		Joins("JOIN deck_characters ON deck_characters.deck_id = decks.id").
		Where("deck_characters.character_id = ?", characterID).
		Preload("Characters").
		Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *deckRepository) UpdateByID(ctx context.Context, id int64, updates map[string]any) error {
	return xcontext.DB(ctx).
		Model(&entity.Deck{}).
		Where("id=?", id).
		Updates(updates).Error
}

func (r *deckRepository) ReplaceCharacters(ctx context.Context, deck *entity.Deck, characters []entity.Character) error {
	return xcontext.DB(ctx).Model(deck).Omit("Characters.*").
		Association("Characters").Replace(characters)
}

func (r *deckRepository) DeleteByID(ctx context.Context, id int64) error {
	deck := &entity.Deck{Base: entity.Base{ID: id}}
	if err := xcontext.DB(ctx).Model(deck).Association("Characters").Clear(); err != nil {
		return err
	}

	return xcontext.DB(ctx).Delete(deck).Error
}
