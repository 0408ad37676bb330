package services

import (
	"testing"

	"github.com/InternHub/internhub-backend/internal/domain"
	"github.com/InternHub/internhub-backend/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newListingFixture(requireVerified bool) (ListingService, *fakeListingRepo) {
	repo := newFakeListingRepo()
	return NewListingService(repo, requireVerified), repo
}

func TestListingCreate_DefaultsToOpen(t *testing.T) {
	svc, _ := newListingFixture(true)

	listing, err := svc.Create(11, dto.ListingInput{
		Title:          "Backend Intern",
		Description:    "Go services",
		RequiredSkills: []string{"go", "sql"},
	})

	require.NoError(t, err)
	assert.Equal(t, domain.ListingStatusOpen, listing.Status)
	assert.Equal(t, uint(11), listing.RecruiterID)
}

func TestListingCreate_RequiresTitleAndDescription(t *testing.T) {
	svc, _ := newListingFixture(true)

	_, err := svc.Create(11, dto.ListingInput{Title: "  ", Description: "x"})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.Create(11, dto.ListingInput{Title: "x", Description: ""})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestListingUpdate_AppliesOnlyPresentFields(t *testing.T) {
	svc, repo := newListingFixture(true)
	repo.listings[3] = &domain.Listing{
		ID:          3,
		RecruiterID: 11,
		Title:       "Backend Intern",
		Description: "Go services",
		Location:    "Remote",
		Status:      domain.ListingStatusOpen,
	}

	newTitle := "Platform Intern"
	updated, err := svc.Update(11, 3, dto.ListingPatch{Title: &newTitle})

	require.NoError(t, err)
	assert.Equal(t, "Platform Intern", updated.Title)
	assert.Equal(t, "Go services", updated.Description)
	assert.Equal(t, "Remote", updated.Location)
}

func TestListingUpdate_Close(t *testing.T) {
	svc, repo := newListingFixture(true)
	repo.listings[3] = &domain.Listing{ID: 3, RecruiterID: 11, Title: "t", Description: "d", Status: domain.ListingStatusOpen}

	closed := "closed"
	updated, err := svc.Update(11, 3, dto.ListingPatch{Status: &closed})

	require.NoError(t, err)
	assert.Equal(t, domain.ListingStatusClosed, updated.Status)
}

func TestListingUpdate_RejectsUnknownStatus(t *testing.T) {
	svc, repo := newListingFixture(true)
	repo.listings[3] = &domain.Listing{ID: 3, RecruiterID: 11, Title: "t", Description: "d", Status: domain.ListingStatusOpen}

	archived := "archived"
	_, err := svc.Update(11, 3, dto.ListingPatch{Status: &archived})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestListingUpdate_ForeignListingForbidden(t *testing.T) {
	svc, repo := newListingFixture(true)
	repo.listings[3] = &domain.Listing{ID: 3, RecruiterID: 11, Title: "t", Description: "d", Status: domain.ListingStatusOpen}

	title := "stolen"
	_, err := svc.Update(42, 3, dto.ListingPatch{Title: &title})
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestListingDelete_OwnerOnly(t *testing.T) {
	svc, repo := newListingFixture(true)
	repo.listings[3] = &domain.Listing{ID: 3, RecruiterID: 11, Title: "t", Description: "d", Status: domain.ListingStatusOpen}

	err := svc.Delete(42, 3)
	assert.ErrorIs(t, err, ErrForbidden)

	require.NoError(t, svc.Delete(11, 3))
	_, err = svc.Get(3)
	assert.ErrorIs(t, err, ErrNotFound)
}
