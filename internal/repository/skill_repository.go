package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/uptraa/platform/internal/models"
	appErr "github.com/uptraa/platform/pkg/errors"
	"gorm.io/gorm"
)

type SkillRepository interface {
	BaseRepository[models.Skill]
	List(ctx context.Context) ([]models.Skill, error)
	GetByName(ctx context.Context, name string) (*models.Skill, error)
	ListForUser(ctx context.Context, userID uuid.UUID) ([]models.SkillName, error)
	HasUserSkill(ctx context.Context, userID, skillID uuid.UUID) (bool, error)
	AddToUser(ctx context.Context, userID, skillID uuid.UUID) (*models.UserSkill, error)
	RemoveFromUser(ctx context.Context, userID, skillID uuid.UUID) (*models.UserSkill, error)
}

type skillRepository struct {
	BaseRepository[models.Skill]
	userSkills BaseRepository[models.UserSkill]
	db         *gorm.DB
}

func NewSkillRepository(db *gorm.DB) SkillRepository {
	return &skillRepository{
		BaseRepository: NewBaseRepository[models.Skill](db, "Skill"),
		userSkills:     NewBaseRepository[models.UserSkill](db, "User skill"),
		db:             db,
	}
}

func (r *skillRepository) List(ctx context.Context) ([]models.Skill, error) {
	var out []models.Skill
	if err := r.db.WithContext(ctx).Select("id", "name").Order("name").Find(&out).Error; err != nil {
		return nil, appErr.Wrap(err, appErr.CodeInternal, "list skills failed")
	}
	return out, nil
}

func (r *skillRepository) GetByName(ctx context.Context, name string) (*models.Skill, error) {
	var s models.Skill
	if err := r.First(ctx, &s, "name = ?", name); err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *skillRepository) ListForUser(ctx context.Context, userID uuid.UUID) ([]models.SkillName, error) {
	out := []models.SkillName{}
	err := r.db.WithContext(ctx).
		Raw(`SELECT s.name FROM skills s JOIN user_skills us ON s.id = us.skill_id WHERE us.user_id = ? ORDER BY s.name`, userID).
		Scan(&out).Error
	if err != nil {
		return nil, appErr.Wrap(err, appErr.CodeInternal, "list user skills failed")
	}
	return out, nil
}

func (r *skillRepository) HasUserSkill(ctx context.Context, userID, skillID uuid.UUID) (bool, error) {
	return r.userSkills.Exists(ctx, "user_id = ? AND skill_id = ?", userID, skillID)
}

func (r *skillRepository) AddToUser(ctx context.Context, userID, skillID uuid.UUID) (*models.UserSkill, error) {
	us := &models.UserSkill{UserID: userID, SkillID: skillID}
	if err := r.userSkills.Create(ctx, us); err != nil {
		if appErr.IsCode(err, appErr.CodeConflict) {
			return nil, appErr.Conflict("Skill already added to user")
		}
		return nil, err
	}
	return us, nil
}

func (r *skillRepository) RemoveFromUser(ctx context.Context, userID, skillID uuid.UUID) (*models.UserSkill, error) {
	if err := r.userSkills.Delete(ctx, "user_id = ? AND skill_id = ?", userID, skillID); err != nil {
		if appErr.IsCode(err, appErr.CodeNotFound) {
			return nil, appErr.NotFound("Skill not found in user's skills")
		}
		return nil, err
	}
	return &models.UserSkill{UserID: userID, SkillID: skillID}, nil
}
