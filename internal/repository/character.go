package repository

import (
	"context"

	"github.com/onepiece-lab/backend/internal/entity"
	"github.com/onepiece-lab/backend/pkg/xcontext"
)

type CharacterRepository interface {
	Create(ctx context.Context, e *entity.Character) error
	GetList(ctx context.Context) ([]entity.Character, error)
	GetByID(ctx context.Context, id int64) (*entity.Character, error)
	GetByName(ctx context.Context, name string) (*entity.Character, error)
	UpdateByID(ctx context.Context, id int64, updates map[string]any) error
	DeleteByID(ctx context.Context, id int64) error
}

type characterRepository struct{}

func NewCharacterRepository() CharacterRepository {
	return &characterRepository{}
}

func (r *characterRepository) Create(ctx context.Context, e *entity.Character) error {
	if err := xcontext.DB(ctx).Create(e).Error; err != nil {
		return err
	}
	return nil
}

func (r *characterRepository) GetList(ctx context.Context) ([]entity.Character, error) {
	var result []entity.Character
	if err := xcontext.DB(ctx).Find(&result).Error; err != nil {
		return nil, err
	}

	return result, nil
}

func (r *characterRepository) GetByID(ctx context.Context, id int64) (*entity.Character, error) {
	var result entity.Character
	err := xcontext.DB(ctx).Preload("Affiliation").Where("id=?", id).Take(&result).Error
	if err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *characterRepository) GetByName(ctx context.Context, name string) (*entity.Character, error) {
	var result entity.Character
	err := xcontext.DB(ctx).Preload("Affiliation").Where("name=?", name).Take(&result).Error
	if err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *characterRepository) UpdateByID(ctx context.Context, id int64, updates map[string]any) error {
	return xcontext.DB(ctx).
		Model(&entity.Character{}).
		Where("id=?", id).
		Updates(updates).Error
}

func (r *characterRepository) DeleteByID(ctx context.Context, id int64) error {
	// The join rows must go first, the schema has no cascade on them.
	character := &entity.Character{Base: entity.Base{ID: id}}
	if err := xcontext.DB(ctx).Model(character).Association("Decks").Clear(); err != nil {
		return err
	}

	return xcontext.DB(ctx).Delete(character).Error
}
