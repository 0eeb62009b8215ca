package services

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/uptraa/platform/internal/media"
	"github.com/uptraa/platform/internal/models"
	"github.com/uptraa/platform/internal/repository"
	"github.com/uptraa/platform/internal/validation"
	appErr "github.com/uptraa/platform/pkg/errors"
	"github.com/uptraa/platform/pkg/logger"
)

type UserService interface {
	GetProfile(ctx context.Context, id uuid.UUID) (*models.Profile, error)
	UpdateProfile(ctx context.Context, current *models.Profile, in validation.UpdateProfileInput) (*models.Profile, error)
	UpdateProfilePicture(ctx context.Context, current *models.Profile, f *media.File) (*models.Profile, error)
	UpdateResume(ctx context.Context, current *models.Profile, f *media.File) (*models.Profile, error)

	AllSkills(ctx context.Context) ([]models.Skill, error)
	UserSkills(ctx context.Context, userID uuid.UUID) ([]models.SkillName, error)
	AddSkill(ctx context.Context, userID uuid.UUID, name string) (*models.UserSkill, error)
	RemoveSkill(ctx context.Context, userID uuid.UUID, name string) (*models.UserSkill, error)
}

type userService struct {
	users    repository.UserRepository
	skills   repository.SkillRepository
	uploader media.Uploader
}

func NewUserService(users repository.UserRepository, skills repository.SkillRepository, uploader media.Uploader) UserService {
	return &userService{users: users, skills: skills, uploader: uploader}
}

func (s *userService) GetProfile(ctx context.Context, id uuid.UUID) (*models.Profile, error) {
	return s.users.GetProfile(ctx, id)
}

// UpdateProfile keeps stored values for omitted fields. An empty name or
// phone number counts as omitted; a present bio (even empty) replaces it.
func (s *userService) UpdateProfile(ctx context.Context, current *models.Profile, in validation.UpdateProfileInput) (*models.Profile, error) {
	upd := repository.ProfileUpdate{
		Name:        current.Name,
		PhoneNumber: current.PhoneNumber,
		Bio:         current.Bio,
	}
	if in.Name != "" {
		upd.Name = in.Name
	}
	if in.PhoneNumber != "" {
		upd.PhoneNumber = in.PhoneNumber
	}
	if in.Bio != nil {
		upd.Bio = in.Bio
	}
	if in.Location != nil {
		upd.Location = &models.Location{Latitude: *in.Location.Latitude, Longitude: *in.Location.Longitude}
	}
	return s.users.UpdateProfile(ctx, current.ID, upd)
}

func (s *userService) UpdateProfilePicture(ctx context.Context, current *models.Profile, f *media.File) (*models.Profile, error) {
	if f == nil {
		return nil, appErr.Invalid("Profile picture is required")
	}
	asset, err := s.upload(ctx, f, current.ProfilePicPublicID)
	if err != nil {
		return nil, err
	}
	return s.users.UpdateProfilePicture(ctx, current.ID, asset.URL, asset.PublicID)
}

func (s *userService) UpdateResume(ctx context.Context, current *models.Profile, f *media.File) (*models.Profile, error) {
	if f == nil {
		return nil, appErr.Invalid("Resume is required")
	}
	asset, err := s.upload(ctx, f, current.ResumePublicID)
	if err != nil {
		return nil, err
	}
	return s.users.UpdateResume(ctx, current.ID, asset.URL, asset.PublicID)
}

func (s *userService) upload(ctx context.Context, f *media.File, previous *string) (*media.Asset, error) {
	if len(f.Content) == 0 {
		return nil, appErr.Invalid("Invalid file")
	}
	prev := ""
	if previous != nil {
		prev = *previous
	}
	return s.uploader.Upload(ctx, *f, prev)
}

func (s *userService) AllSkills(ctx context.Context) ([]models.Skill, error) {
	return s.skills.List(ctx)
}

func (s *userService) UserSkills(ctx context.Context, userID uuid.UUID) ([]models.SkillName, error) {
	return s.skills.ListForUser(ctx, userID)
}

// AddSkill creates the skill on first use, then links it to the user.
func (s *userService) AddSkill(ctx context.Context, userID uuid.UUID, name string) (*models.UserSkill, error) {
	skill, err := s.skills.GetByName(ctx, name)
	if err != nil {
		if !appErr.IsCode(err, appErr.CodeNotFound) {
			return nil, err
		}
		skill = &models.Skill{Name: name}
		if err := s.skills.Create(ctx, skill); err != nil {
			return nil, err
		}
		logger.L().Info("skill created", zap.String("skill", name))
	}

	has, err := s.skills.HasUserSkill(ctx, userID, skill.ID)
	if err != nil {
		return nil, err
	}
	if has {
		return nil, appErr.Conflict("Skill already added to user")
	}
	return s.skills.AddToUser(ctx, userID, skill.ID)
}

// RemoveSkill unlinks the skill. The skill row itself is kept.
func (s *userService) RemoveSkill(ctx context.Context, userID uuid.UUID, name string) (*models.UserSkill, error) {
	skill, err := s.skills.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}

	has, err := s.skills.HasUserSkill(ctx, userID, skill.ID)
	if err != nil {
		return nil, err
	}
	if !has {
		return nil, appErr.NotFound("Skill not found in user's skills")
	}
	return s.skills.RemoveFromUser(ctx, userID, skill.ID)
}
