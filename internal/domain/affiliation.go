package domain

import (
	"context"
	"errors"

	"github.com/onepiece-lab/backend/internal/entity"
	"github.com/onepiece-lab/backend/internal/repository"
	"github.com/onepiece-lab/backend/pkg/errorx"
	"github.com/onepiece-lab/backend/pkg/xcontext"
	"gorm.io/gorm"
)

// affiliationResolver turns an affiliation name into a row, creating the row
// on first use. Names match exactly; case and whitespace are significant.
type affiliationResolver struct {
	affiliationRepo repository.AffiliationRepository
}

func newAffiliationResolver(affiliationRepo repository.AffiliationRepository) *affiliationResolver {
	return &affiliationResolver{affiliationRepo: affiliationRepo}
}

func (r *affiliationResolver) Resolve(ctx context.Context, name string) (*entity.Affiliation, error) {
	if name == "" {
		return nil, errorx.New(errorx.BadRequest, "Invalid affiliation. Name is required.")
	}

	affiliation, err := r.affiliationRepo.GetByName(ctx, name)
	if err == nil {
		return affiliation, nil
	}

	if !errors.Is(err, gorm.ErrRecordNotFound) {
		xcontext.Logger(ctx).Errorf("Cannot get affiliation by name: %v", err)
		return nil, errorx.Unknown
	}

	affiliation = &entity.Affiliation{Name: name}
	if err := r.affiliationRepo.Create(ctx, affiliation); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create affiliation: %v", err)
		return nil, errorx.Unknown
	}

	return affiliation, nil
}
