package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/uptraa/platform/internal/media"
	"github.com/uptraa/platform/internal/models"
	"github.com/uptraa/platform/internal/repository"
	"github.com/uptraa/platform/internal/validation"
	appErr "github.com/uptraa/platform/pkg/errors"
)

type userFixture struct {
	users    *mockUserRepo
	skills   *mockSkillRepo
	uploader *mockUploader
	svc      UserService
}

func newUserFixture() *userFixture {
	f := &userFixture{
		users:    new(mockUserRepo),
		skills:   new(mockSkillRepo),
		uploader: new(mockUploader),
	}
	f.svc = NewUserService(f.users, f.skills, f.uploader)
	return f
}

func jobseeker() *models.Profile {
	return &models.Profile{
		ID:          uuid.New(),
		Name:        "Jo",
		Email:       "jo@x.com",
		PhoneNumber: "9876543210",
		Role:        models.RoleJobseeker,
		Bio:         strPtr("old bio"),
		Skills:      []string{},
	}
}

func float(v float64) *float64 { return &v }

func TestUpdateProfileKeepsOmittedFields(t *testing.T) {
	f := newUserFixture()
	ctx := context.Background()
	me := jobseeker()

	want := repository.ProfileUpdate{Name: "Joanna", PhoneNumber: "9876543210", Bio: strPtr("old bio")}
	f.users.On("UpdateProfile", ctx, me.ID, want).Return(&models.Profile{ID: me.ID, Name: "Joanna"}, nil).Once()

	p, err := f.svc.UpdateProfile(ctx, me, validation.UpdateProfileInput{Name: "Joanna"})
	require.NoError(t, err)
	assert.Equal(t, "Joanna", p.Name)
	f.users.AssertExpectations(t)
}

func TestUpdateProfileReplacesBioAndLocation(t *testing.T) {
	f := newUserFixture()
	ctx := context.Background()
	me := jobseeker()

	want := repository.ProfileUpdate{
		Name:        "Jo",
		PhoneNumber: "9123456789",
		Bio:         strPtr(""),
		Location:    &models.Location{Latitude: 12.9, Longitude: 77.5},
	}
	f.users.On("UpdateProfile", ctx, me.ID, want).Return(me, nil).Once()

	_, err := f.svc.UpdateProfile(ctx, me, validation.UpdateProfileInput{
		PhoneNumber: "9123456789",
		Bio:         strPtr(""),
		Location:    &validation.LocationInput{Latitude: float(12.9), Longitude: float(77.5)},
	})
	require.NoError(t, err)
	f.users.AssertExpectations(t)
}

func TestUpdateProfilePictureReplacesPreviousAsset(t *testing.T) {
	f := newUserFixture()
	ctx := context.Background()
	me := jobseeker()
	me.ProfilePicPublicID = strPtr("old-pic")
	file := media.File{Name: "me.png", Content: []byte{0x89, 'P', 'N', 'G'}}

	f.uploader.On("Upload", ctx, file, "old-pic").Return(&media.Asset{URL: "https://cdn.test/new.png", PublicID: "new-pic"}, nil).Once()
	f.users.On("UpdateProfilePicture", ctx, me.ID, "https://cdn.test/new.png", "new-pic").Return(me, nil).Once()

	_, err := f.svc.UpdateProfilePicture(ctx, me, &file)
	require.NoError(t, err)
	f.uploader.AssertExpectations(t)
	f.users.AssertExpectations(t)
}

func TestUpdateMediaRequiresFile(t *testing.T) {
	f := newUserFixture()
	ctx := context.Background()
	me := jobseeker()

	_, err := f.svc.UpdateProfilePicture(ctx, me, nil)
	ae, ok := appErr.As(err)
	require.True(t, ok)
	assert.Equal(t, appErr.CodeInvalid, ae.Code)
	assert.Equal(t, "Profile picture is required", ae.Message)

	_, err = f.svc.UpdateResume(ctx, me, nil)
	ae, ok = appErr.As(err)
	require.True(t, ok)
	assert.Equal(t, "Resume is required", ae.Message)

	_, err = f.svc.UpdateResume(ctx, me, &media.File{Name: "empty.pdf"})
	ae, ok = appErr.As(err)
	require.True(t, ok)
	assert.Equal(t, "Invalid file", ae.Message)

	f.uploader.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateResumeFirstUpload(t *testing.T) {
	f := newUserFixture()
	ctx := context.Background()
	me := jobseeker()
	file := media.File{Name: "cv.pdf", Content: []byte("%PDF")}

	f.uploader.On("Upload", ctx, file, "").Return(&media.Asset{URL: "u", PublicID: "p"}, nil).Once()
	f.users.On("UpdateResume", ctx, me.ID, "u", "p").Return(me, nil).Once()

	_, err := f.svc.UpdateResume(ctx, me, &file)
	require.NoError(t, err)
	f.users.AssertExpectations(t)
}

func TestAddSkillCreatesOnFirstUse(t *testing.T) {
	f := newUserFixture()
	ctx := context.Background()
	userID := uuid.New()
	skillID := uuid.New()

	f.skills.On("GetByName", ctx, "Go").Return(nil, appErr.NotFound("Skill not found")).Once()
	f.skills.On("Create", ctx, mock.MatchedBy(func(s *models.Skill) bool { return s.Name == "Go" })).
		Run(func(args mock.Arguments) { args.Get(1).(*models.Skill).ID = skillID }).
		Return(nil).Once()
	f.skills.On("HasUserSkill", ctx, userID, skillID).Return(false, nil).Once()
	f.skills.On("AddToUser", ctx, userID, skillID).Return(&models.UserSkill{UserID: userID, SkillID: skillID}, nil).Once()

	link, err := f.svc.AddSkill(ctx, userID, "Go")
	require.NoError(t, err)
	assert.Equal(t, skillID, link.SkillID)
	f.skills.AssertExpectations(t)
}

func TestAddSkillTwiceConflicts(t *testing.T) {
	f := newUserFixture()
	ctx := context.Background()
	userID := uuid.New()
	skill := &models.Skill{ID: uuid.New(), Name: "Go"}

	f.skills.On("GetByName", ctx, "Go").Return(skill, nil)
	f.skills.On("HasUserSkill", ctx, userID, skill.ID).Return(true, nil)

	_, err := f.svc.AddSkill(ctx, userID, "Go")
	ae, ok := appErr.As(err)
	require.True(t, ok)
	assert.Equal(t, appErr.CodeConflict, ae.Code)
	assert.Equal(t, "Skill already added to user", ae.Message)
	f.skills.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	f.skills.AssertNotCalled(t, "AddToUser", mock.Anything, mock.Anything, mock.Anything)
}

func TestRemoveSkill(t *testing.T) {
	f := newUserFixture()
	ctx := context.Background()
	userID := uuid.New()
	skill := &models.Skill{ID: uuid.New(), Name: "Go"}

	f.skills.On("GetByName", ctx, "Rust").Return(nil, appErr.NotFound("Skill not found"))
	f.skills.On("GetByName", ctx, "Go").Return(skill, nil)
	f.skills.On("HasUserSkill", ctx, userID, skill.ID).Return(false, nil).Once()

	_, err := f.svc.RemoveSkill(ctx, userID, "Rust")
	ae, ok := appErr.As(err)
	require.True(t, ok)
	assert.Equal(t, appErr.CodeNotFound, ae.Code)
	assert.Equal(t, "Skill not found", ae.Message)

	_, err = f.svc.RemoveSkill(ctx, userID, "Go")
	ae, ok = appErr.As(err)
	require.True(t, ok)
	assert.Equal(t, appErr.CodeNotFound, ae.Code)
	assert.Equal(t, "Skill not found in user's skills", ae.Message)
	f.skills.AssertNotCalled(t, "RemoveFromUser", mock.Anything, mock.Anything, mock.Anything)

	f.skills.On("HasUserSkill", ctx, userID, skill.ID).Return(true, nil).Once()
	f.skills.On("RemoveFromUser", ctx, userID, skill.ID).Return(&models.UserSkill{UserID: userID, SkillID: skill.ID}, nil).Once()
	link, err := f.svc.RemoveSkill(ctx, userID, "Go")
	require.NoError(t, err)
	assert.Equal(t, skill.ID, link.SkillID)
}
