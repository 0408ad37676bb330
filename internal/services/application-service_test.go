package services

import (
	"testing"

	"github.com/InternHub/internhub-backend/internal/domain"
	"github.com/InternHub/internhub-backend/internal/dto"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// ---------- fakes ----------

type appKey struct {
	listingID uint
	studentID uint
}

type fakeApplicationRepo struct {
	nextID uint
	apps   map[uint]*domain.Application
	seen   map[appKey]bool
}

func newFakeApplicationRepo() *fakeApplicationRepo {
	return &fakeApplicationRepo{
		nextID: 1,
		apps:   make(map[uint]*domain.Application),
		seen:   make(map[appKey]bool),
	}
}

func (r *fakeApplicationRepo) Create(app *domain.Application) error {
	key := appKey{listingID: app.ListingID, studentID: app.StudentID}
	if r.seen[key] {
		return &pgconn.PgError{
			Code:           "23505",
			ConstraintName: "uidx_applications_listing_student",
		}
	}
	r.seen[key] = true
	app.ID = r.nextID
	r.nextID++
	stored := *app
	r.apps[app.ID] = &stored
	return nil
}

func (r *fakeApplicationRepo) FindByID(appID uint) (*domain.Application, error) {
	app, ok := r.apps[appID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	found := *app
	return &found, nil
}

func (r *fakeApplicationRepo) ListByStudent(studentID uint) ([]domain.Application, error) {
	var out []domain.Application
	for _, app := range r.apps {
		if app.StudentID == studentID {
			out = append(out, *app)
		}
	}
	return out, nil
}

func (r *fakeApplicationRepo) ListByRecruiter(recruiterID uint, listingID uint) ([]domain.Application, error) {
	var out []domain.Application
	for _, app := range r.apps {
		if listingID != 0 && app.ListingID != listingID {
			continue
		}
		out = append(out, *app)
	}
	return out, nil
}

func (r *fakeApplicationRepo) UpdateStatus(appID uint, status domain.ApplicationStatus) error {
	app, ok := r.apps[appID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	app.Status = status
	return nil
}

type fakeListingRepo struct {
	listings map[uint]*domain.Listing
}

func newFakeListingRepo() *fakeListingRepo {
	return &fakeListingRepo{listings: make(map[uint]*domain.Listing)}
}

func (r *fakeListingRepo) Create(listing *domain.Listing) error {
	r.listings[listing.ID] = listing
	return nil
}

func (r *fakeListingRepo) FindByID(listingID uint) (*domain.Listing, error) {
	listing, ok := r.listings[listingID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return listing, nil
}

func (r *fakeListingRepo) ListOpen(requireVerified bool, limit, offset int) ([]domain.Listing, error) {
	var out []domain.Listing
	for _, l := range r.listings {
		if l.Status == domain.ListingStatusOpen {
			out = append(out, *l)
		}
	}
	return out, nil
}

func (r *fakeListingRepo) ListByRecruiter(recruiterID uint) ([]domain.Listing, error) {
	var out []domain.Listing
	for _, l := range r.listings {
		if l.RecruiterID == recruiterID {
			out = append(out, *l)
		}
	}
	return out, nil
}

func (r *fakeListingRepo) Save(listing *domain.Listing) error {
	r.listings[listing.ID] = listing
	return nil
}

func (r *fakeListingRepo) Delete(listingID uint) error {
	delete(r.listings, listingID)
	return nil
}

type fakeUserRepo struct {
	nextID uint
	users  map[uint]*domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uint]*domain.User)}
}

func (r *fakeUserRepo) CreateUser(user *domain.User) (*domain.User, error) {
	if user.ID == 0 {
		r.nextID++
		user.ID = r.nextID
	}
	r.users[user.ID] = user
	return user, nil
}

func (r *fakeUserRepo) FindUserByEmail(email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) FindUserById(userID uint) (*domain.User, error) {
	u, ok := r.users[userID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) FindUserByResetTokenHash(hash string) (*domain.User, error) {
	for _, u := range r.users {
		if u.ResetTokenHash == hash {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) FindUserByVerificationTokenHash(hash string) (*domain.User, error) {
	for _, u := range r.users {
		if u.VerificationToken == hash {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) SaveUser(user *domain.User) error {
	r.users[user.ID] = user
	return nil
}

type fakeAuditRepo struct {
	entries []domain.AuditLog
}

func (r *fakeAuditRepo) Record(entry *domain.AuditLog) error {
	r.entries = append(r.entries, *entry)
	return nil
}

func (r *fakeAuditRepo) ListByEntity(entity string, entityID uint) ([]domain.AuditLog, error) {
	var out []domain.AuditLog
	for _, e := range r.entries {
		if e.Entity == entity && e.EntityID == entityID {
			out = append(out, e)
		}
	}
	return out, nil
}

type fakeProducer struct {
	keys []string
}

func (p *fakeProducer) PublishMessage(key, value []byte) error {
	p.keys = append(p.keys, string(key))
	return nil
}

// ---------- fixtures ----------

type applicationFixture struct {
	svc      ApplicationService
	apps     *fakeApplicationRepo
	listings *fakeListingRepo
	users    *fakeUserRepo
	audit    *fakeAuditRepo
	producer *fakeProducer
}

func newApplicationFixture() *applicationFixture {
	f := &applicationFixture{
		apps:     newFakeApplicationRepo(),
		listings: newFakeListingRepo(),
		users:    newFakeUserRepo(),
		audit:    &fakeAuditRepo{},
		producer: &fakeProducer{},
	}
	f.svc = NewApplicationService(f.apps, f.listings, f.users, f.audit, f.producer)
	return f
}

func (f *applicationFixture) seedStudent(id uint) {
	f.users.users[id] = &domain.User{ID: id, Email: "student@example.com", Status: domain.UserStatusActive}
}

func (f *applicationFixture) seedListing(id, recruiterID uint, status string) {
	f.listings.listings[id] = &domain.Listing{ID: id, RecruiterID: recruiterID, Title: "Backend Intern", Status: status}
}

// ---------- tests ----------

func TestApply_CreatesApplication(t *testing.T) {
	f := newApplicationFixture()
	f.seedStudent(7)
	f.seedListing(3, 11, domain.ListingStatusOpen)

	app, err := f.svc.Apply(7, dto.ApplyRequest{ListingID: 3, CoverLetter: "I want this internship"})

	require.NoError(t, err)
	assert.Equal(t, domain.ApplicationStatusApplied, app.Status)
	assert.Equal(t, uint(3), app.ListingID)
	assert.Equal(t, uint(7), app.StudentID)
	assert.Equal(t, []string{dto.EventApplicationNew}, f.producer.keys)
}

func TestApply_DuplicateRejected(t *testing.T) {
	f := newApplicationFixture()
	f.seedStudent(7)
	f.seedListing(3, 11, domain.ListingStatusOpen)

	_, err := f.svc.Apply(7, dto.ApplyRequest{ListingID: 3, CoverLetter: "first"})
	require.NoError(t, err)

	_, err = f.svc.Apply(7, dto.ApplyRequest{ListingID: 3, CoverLetter: "second"})
	assert.ErrorIs(t, err, ErrDuplicateApplication)
}

func TestApply_ClosedListingRejected(t *testing.T) {
	f := newApplicationFixture()
	f.seedStudent(7)
	f.seedListing(3, 11, domain.ListingStatusClosed)

	_, err := f.svc.Apply(7, dto.ApplyRequest{ListingID: 3, CoverLetter: "too late"})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestApply_SuspendedStudentRejected(t *testing.T) {
	f := newApplicationFixture()
	f.users.users[7] = &domain.User{ID: 7, Status: domain.UserStatusSuspended}
	f.seedListing(3, 11, domain.ListingStatusOpen)

	_, err := f.svc.Apply(7, dto.ApplyRequest{ListingID: 3, CoverLetter: "hello"})
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestApply_MissingCoverLetterRejected(t *testing.T) {
	f := newApplicationFixture()
	f.seedStudent(7)
	f.seedListing(3, 11, domain.ListingStatusOpen)

	_, err := f.svc.Apply(7, dto.ApplyRequest{ListingID: 3, CoverLetter: "   "})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestApply_UnknownListingNotFound(t *testing.T) {
	f := newApplicationFixture()
	f.seedStudent(7)

	_, err := f.svc.Apply(7, dto.ApplyRequest{ListingID: 99, CoverLetter: "hello"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateStatus_RecordsAuditAndEvent(t *testing.T) {
	f := newApplicationFixture()
	f.seedStudent(7)
	f.seedListing(3, 11, domain.ListingStatusOpen)

	created, err := f.svc.Apply(7, dto.ApplyRequest{ListingID: 3, CoverLetter: "hello"})
	require.NoError(t, err)

	updated, err := f.svc.UpdateStatus(11, created.ID, "shortlisted")
	require.NoError(t, err)
	assert.Equal(t, domain.ApplicationStatusShortlisted, updated.Status)

	entries, err := f.audit.ListByEntity("application", created.ID)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "application.status_changed", entries[0].Action)
	require.NotNil(t, entries[0].Note)
	assert.Equal(t, "applied -> shortlisted", *entries[0].Note)

	assert.Contains(t, f.producer.keys, dto.EventApplicationStatus)
}

func TestUpdateStatus_SkipsIntermediateStates(t *testing.T) {
	f := newApplicationFixture()
	f.seedStudent(7)
	f.seedListing(3, 11, domain.ListingStatusOpen)

	created, err := f.svc.Apply(7, dto.ApplyRequest{ListingID: 3, CoverLetter: "hello"})
	require.NoError(t, err)

	// straight from applied to offered, no shortlist or interview step
	updated, err := f.svc.UpdateStatus(11, created.ID, "offered")
	require.NoError(t, err)
	assert.Equal(t, domain.ApplicationStatusOffered, updated.Status)
}

func TestUpdateStatus_UnknownStatusRejected(t *testing.T) {
	f := newApplicationFixture()
	f.seedStudent(7)
	f.seedListing(3, 11, domain.ListingStatusOpen)

	created, err := f.svc.Apply(7, dto.ApplyRequest{ListingID: 3, CoverLetter: "hello"})
	require.NoError(t, err)

	_, err = f.svc.UpdateStatus(11, created.ID, "hired")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestUpdateStatus_ForeignRecruiterForbidden(t *testing.T) {
	f := newApplicationFixture()
	f.seedStudent(7)
	f.seedListing(3, 11, domain.ListingStatusOpen)

	created, err := f.svc.Apply(7, dto.ApplyRequest{ListingID: 3, CoverLetter: "hello"})
	require.NoError(t, err)

	_, err = f.svc.UpdateStatus(42, created.ID, "rejected")
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestListForRecruiter_ForeignListingForbidden(t *testing.T) {
	f := newApplicationFixture()
	f.seedListing(3, 11, domain.ListingStatusOpen)

	_, err := f.svc.ListForRecruiter(42, 3)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestListForRecruiter_UnknownListingNotFound(t *testing.T) {
	f := newApplicationFixture()

	_, err := f.svc.ListForRecruiter(11, 99)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListOwn_ReturnsOnlyOwnApplications(t *testing.T) {
	f := newApplicationFixture()
	f.seedStudent(7)
	f.seedStudent(8)
	f.seedListing(3, 11, domain.ListingStatusOpen)
	f.seedListing(4, 11, domain.ListingStatusOpen)

	_, err := f.svc.Apply(7, dto.ApplyRequest{ListingID: 3, CoverLetter: "mine"})
	require.NoError(t, err)
	_, err = f.svc.Apply(8, dto.ApplyRequest{ListingID: 4, CoverLetter: "theirs"})
	require.NoError(t, err)

	apps, err := f.svc.ListOwn(7)
	require.NoError(t, err)
	require.Len(t, apps, 1)
	assert.Equal(t, uint(3), apps[0].ListingID)
}
