package domain

import (
	"net/http"
	"testing"

	"github.com/onepiece-lab/backend/internal/model"
	"github.com/onepiece-lab/backend/internal/repository"
	"github.com/onepiece-lab/backend/pkg/errorx"
	"github.com/onepiece-lab/backend/pkg/testutil"
	"github.com/stretchr/testify/require"
)

func newDeckDomain() DeckDomain {
	return NewDeckDomain(repository.NewDeckRepository())
}

func Test_deckDomain_GetList(t *testing.T) {
	ctx := testutil.MockContext()
	domain := newDeckDomain()

	resp, err := domain.GetList(ctx, &model.GetDecksRequest{})
	require.NoError(t, err)
	require.Equal(t, http.StatusNoContent, resp.HTTPStatusCode())

	testutil.CreateFixtureDb(ctx)

	resp, err = domain.GetList(ctx, &model.GetDecksRequest{})
	require.NoError(t, err)
	require.Len(t, *resp, 1)
	require.Equal(t, testutil.Deck1.Name, (*resp)[0].Name)
	require.Equal(t, testutil.User1.ID, (*resp)[0].Owner.ID)
}

func Test_deckDomain_Get(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	domain := newDeckDomain()

	resp, err := domain.Get(ctx, &model.GetDeckRequest{ID: "1"})
	require.NoError(t, err)
	require.Len(t, resp.Characters, 1)
	require.Equal(t, testutil.Character1.Name, resp.Characters[0].Name)

	_, err = domain.Get(ctx, &model.GetDeckRequest{ID: "999"})
	requireErrorCode(t, err, errorx.NotFound)

	_, err = domain.Get(ctx, &model.GetDeckRequest{ID: "abc"})
	requireErrorCode(t, err, errorx.BadRequest)
}

func Test_deckDomain_GetByCharacter(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	domain := newDeckDomain()

	resp, err := domain.GetByCharacter(ctx, &model.GetDecksByCharacterRequest{ID: "1"})
	require.NoError(t, err)
	require.Len(t, *resp, 1)
	require.Equal(t, testutil.Deck1.ID, (*resp)[0].ID)

	// Character2 is in no deck.
	resp, err = domain.GetByCharacter(ctx, &model.GetDecksByCharacterRequest{ID: "2"})
	require.NoError(t, err)
	require.Equal(t, http.StatusNoContent, resp.HTTPStatusCode())
}

func Test_deckDomain_Create(t *testing.T) {
	ctx := testutil.MockContextWithUserID(testutil.User1.ID)
	testutil.CreateFixtureDb(ctx)
	domain := newDeckDomain()

	resp, err := domain.Create(ctx, &model.CreateDeckRequest{
		Name:         "Raid deck",
		CharacterIDs: []int64{testutil.Character1.ID, testutil.Character2.ID},
	})
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.HTTPStatusCode())
	require.Equal(t, testutil.User1.ID, resp.OwnerID)
	require.Len(t, resp.Characters, 2)
}

func Test_deckDomain_Create_ownerFromToken(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	domain := newDeckDomain()

	// No authenticated user on the context.
	_, err := domain.Create(ctx, &model.CreateDeckRequest{Name: "Raid deck"})
	requireErrorCode(t, err, errorx.Unauthenticated)
}

func Test_deckDomain_Create_missingName(t *testing.T) {
	ctx := testutil.MockContextWithUserID(testutil.User1.ID)
	testutil.CreateFixtureDb(ctx)
	domain := newDeckDomain()

	_, err := domain.Create(ctx, &model.CreateDeckRequest{})
	requireErrorCode(t, err, errorx.BadRequest)
}

func Test_deckDomain_UpdateByID_replacesCharacters(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	domain := newDeckDomain()

	characterIDs := []int64{testutil.Character2.ID}
	resp, err := domain.UpdateByID(ctx, &model.UpdateDeckRequest{
		ID:           "1",
		CharacterIDs: &characterIDs,
	})
	require.NoError(t, err)
	require.Len(t, resp.Characters, 1)
	require.Equal(t, testutil.Character2.ID, resp.Characters[0].ID)

	// An empty list empties the deck.
	characterIDs = []int64{}
	resp, err = domain.UpdateByID(ctx, &model.UpdateDeckRequest{
		ID:           "1",
		CharacterIDs: &characterIDs,
	})
	require.NoError(t, err)
	require.Empty(t, resp.Characters)
}

func Test_deckDomain_UpdateByID_name(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	domain := newDeckDomain()

	name := "Renamed deck"
	resp, err := domain.UpdateByID(ctx, &model.UpdateDeckRequest{ID: "1", Name: &name})
	require.NoError(t, err)
	require.Equal(t, "Renamed deck", resp.Name)
	// Membership is untouched when characterIds is absent.
	require.Len(t, resp.Characters, 1)

	_, err = domain.UpdateByID(ctx, &model.UpdateDeckRequest{ID: "999", Name: &name})
	requireErrorCode(t, err, errorx.NotFound)
}

func Test_deckDomain_DeleteByID(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	domain := newDeckDomain()

	resp, err := domain.DeleteByID(ctx, &model.DeleteDeckRequest{ID: "1"})
	require.NoError(t, err)
	require.Equal(t, testutil.Deck1.Name, resp.Name)

	_, err = domain.Get(ctx, &model.GetDeckRequest{ID: "1"})
	requireErrorCode(t, err, errorx.NotFound)
}
