package domain

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/onepiece-lab/backend/internal/entity"
	"github.com/onepiece-lab/backend/internal/model"
	"github.com/onepiece-lab/backend/internal/repository"
	"github.com/onepiece-lab/backend/pkg/errorx"
	"github.com/onepiece-lab/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type CharacterDomain interface {
	GetList(context.Context, *model.GetCharactersRequest) (*model.GetCharactersResponse, error)
	Get(context.Context, *model.GetCharacterRequest) (*model.GetCharacterResponse, error)
	GetAffiliation(context.Context, *model.GetCharacterAffiliationRequest) (*model.GetCharacterAffiliationResponse, error)
	Create(context.Context, *model.CreateCharacterRequest) (*model.CreateCharacterResponse, error)
	UpdateByID(context.Context, *model.UpdateCharacterRequest) (*model.UpdateCharacterResponse, error)
	DeleteByID(context.Context, *model.DeleteCharacterRequest) (*model.DeleteCharacterResponse, error)
}

type characterDomain struct {
	characterRepo       repository.CharacterRepository
	affiliationResolver *affiliationResolver
}

func NewCharacterDomain(
	characterRepo repository.CharacterRepository,
	affiliationRepo repository.AffiliationRepository,
) CharacterDomain {
	return &characterDomain{
		characterRepo:       characterRepo,
		affiliationResolver: newAffiliationResolver(affiliationRepo),
	}
}

func (d *characterDomain) GetList(
	ctx context.Context, req *model.GetCharactersRequest,
) (*model.GetCharactersResponse, error) {
	characters, err := d.characterRepo.GetList(ctx)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get characters: %v", err)
		return nil, errorx.Unknown
	}

	resp := model.GetCharactersResponse{}
	for i := range characters {
		resp = append(resp, convertCharacter(&characters[i]))
	}

	return &resp, nil
}

func (d *characterDomain) Get(
	ctx context.Context, req *model.GetCharacterRequest,
) (*model.GetCharacterResponse, error) {
	id, err := parseID(req.ID)
	if err != nil {
		return nil, err
	}

	character, err := d.characterRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Character not found.")
		}

		xcontext.Logger(ctx).Errorf("Cannot get character: %v", err)
		return nil, errorx.Unknown
	}

	resp := model.GetCharacterResponse(convertCharacter(character))
	return &resp, nil
}

func (d *characterDomain) GetAffiliation(
	ctx context.Context, req *model.GetCharacterAffiliationRequest,
) (*model.GetCharacterAffiliationResponse, error) {
	character, err := d.characterRepo.GetByName(ctx, req.Name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Character not found.")
		}

		xcontext.Logger(ctx).Errorf("Cannot get character by name: %v", err)
		return nil, errorx.Unknown
	}

	if character.Affiliation == nil {
		return nil, errorx.New(errorx.NotFound, "Affiliation not found.")
	}

	resp := model.GetCharacterAffiliationResponse(convertAffiliation(character.Affiliation))
	return &resp, nil
}

func (d *characterDomain) Create(
	ctx context.Context, req *model.CreateCharacterRequest,
) (*model.CreateCharacterResponse, error) {
	var missing []string
	if req.Name == "" {
		missing = append(missing, "name")
	}
	if req.Affiliation == nil || req.Affiliation.Name == "" {
		missing = append(missing, "affiliation")
	}
	if req.LifePoints == 0 {
		missing = append(missing, "lifePoints")
	}
	if len(missing) > 0 {
		return nil, errorx.New(errorx.BadRequest, "Missing fields: %s", strings.Join(missing, ", "))
	}

	affiliation, err := d.affiliationResolver.Resolve(ctx, req.Affiliation.Name)
	if err != nil {
		return nil, err
	}

	_, err = d.characterRepo.GetByName(ctx, req.Name)
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		if err != nil {
			xcontext.Logger(ctx).Errorf("Cannot get character by name: %v", err)
			return nil, errorx.Unknown
		}

		return nil, errorx.New(errorx.AlreadyExists, "Character already exists")
	}

	character := &entity.Character{
		Name:          req.Name,
		AffiliationID: sql.NullInt64{Valid: true, Int64: affiliation.ID},
		LifePoints:    req.LifePoints,
	}
	if req.Size != nil {
		character.Size = *req.Size
	}
	if req.Age != nil {
		character.Age = *req.Age
	}
	if req.Weight != nil {
		character.Weight = *req.Weight
	}
	if req.ImageURL != nil {
		character.ImageURL = *req.ImageURL
	}

	if err := d.characterRepo.Create(ctx, character); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create character: %v", err)
		return nil, errorx.Unknown
	}

	character.Affiliation = affiliation
	resp := model.CreateCharacterResponse(convertCharacter(character))
	return &resp, nil
}

func (d *characterDomain) UpdateByID(
	ctx context.Context, req *model.UpdateCharacterRequest,
) (*model.UpdateCharacterResponse, error) {
	id, err := parseID(req.ID)
	if err != nil {
		return nil, err
	}

	if _, err := d.characterRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Character not found.")
		}

		xcontext.Logger(ctx).Errorf("Cannot get character: %v", err)
		return nil, errorx.Unknown
	}

	updates := map[string]any{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.LifePoints != nil {
		updates["life_points"] = *req.LifePoints
	}
	if req.Size != nil {
		updates["size"] = *req.Size
	}
	if req.Age != nil {
		updates["age"] = *req.Age
	}
	if req.Weight != nil {
		updates["weight"] = *req.Weight
	}
	if req.ImageURL != nil {
		updates["image_url"] = *req.ImageURL
	}

	if req.Affiliation != nil && req.Affiliation.Name == "" {
		return nil, errorx.New(errorx.BadRequest, "Invalid affiliation. Name is required.")
	}

	if len(updates) == 0 && req.Affiliation == nil {
		return nil, errorx.New(errorx.BadRequest, "No data provided to update or invalid.")
	}

	if req.Affiliation != nil {
		affiliation, err := d.affiliationResolver.Resolve(ctx, req.Affiliation.Name)
		if err != nil {
			return nil, err
		}

		updates["affiliation_id"] = affiliation.ID
	}

	if err := d.characterRepo.UpdateByID(ctx, id, updates); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot update character: %v", err)
		return nil, errorx.Unknown
	}

	character, err := d.characterRepo.GetByID(ctx, id)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot reload character: %v", err)
		return nil, errorx.Unknown
	}

	resp := model.UpdateCharacterResponse(convertCharacter(character))
	return &resp, nil
}

func (d *characterDomain) DeleteByID(
	ctx context.Context, req *model.DeleteCharacterRequest,
) (*model.DeleteCharacterResponse, error) {
	id, err := parseID(req.ID)
	if err != nil {
		return nil, err
	}

	character, err := d.characterRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Character not found.")
		}

		xcontext.Logger(ctx).Errorf("Cannot get character: %v", err)
		return nil, errorx.Unknown
	}

	if err := d.characterRepo.DeleteByID(ctx, id); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot delete character: %v", err)
		return nil, errorx.Unknown
	}

	resp := model.DeleteCharacterResponse(convertCharacter(character))
	return &resp, nil
}
