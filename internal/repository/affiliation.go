package repository

import (
	"context"

	"github.com/onepiece-lab/backend/internal/entity"
	"github.com/onepiece-lab/backend/pkg/xcontext"
)

type AffiliationRepository interface {
	Create(ctx context.Context, e *entity.Affiliation) error
	GetByName(ctx context.Context, name string) (*entity.Affiliation, error)
}

type affiliationRepository struct{}

func NewAffiliationRepository() AffiliationRepository {
	return &affiliationRepository{}
}

func (r *affiliationRepository) Create(ctx context.Context, e *entity.Affiliation) error {
	if err := xcontext.DB(ctx).Create(e).Error; err != nil {
		return err
	}
	return nil
}

func (r *affiliationRepository) GetByName(ctx context.Context, name string) (*entity.Affiliation, error) {
	var result entity.Affiliation
	if err := xcontext.DB(ctx).Where("name=?", name).Take(&result).Error; err != nil {
		return nil, err
	}

	return &result, nil
}
