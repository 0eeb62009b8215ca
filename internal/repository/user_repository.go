package repository

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/uptraa/platform/internal/models"
	appErr "github.com/uptraa/platform/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ProfileUpdate carries the already-merged values for a profile write.
// A nil Location leaves the stored point untouched.
type ProfileUpdate struct {
	Name        string
	PhoneNumber string
	Bio         *string
	Location    *models.Location
}

type UserRepository interface {
	BaseRepository[models.User]
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	FindAccountByEmail(ctx context.Context, email string) (*models.Account, error)
	GetProfile(ctx context.Context, id uuid.UUID) (*models.Profile, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, upd ProfileUpdate) (*models.Profile, error)
	UpdateProfilePicture(ctx context.Context, id uuid.UUID, url, publicID string) (*models.Profile, error)
	UpdateResume(ctx context.Context, id uuid.UUID, url, publicID string) (*models.Profile, error)
	UpdatePassword(ctx context.Context, email, hash string) error
}

type userRepository struct {
	BaseRepository[models.User]
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{BaseRepository: NewBaseRepository[models.User](db, "User"), db: db}
}

// profileQuery joins skills into a JSON array (never null) and decodes the
// PostGIS point. %s is the WHERE predicate.
const profileQuery = `
SELECT
	u.id, u.name, u.email, u.password_hash, u.phone_number, u.role, u.bio,
	u.resume, u.resume_public_id, u.profile_pic, u.profile_pic_public_id,
	u.subscription, u.created_at, u.updated_at,
	CASE WHEN u.location IS NOT NULL THEN ST_Y(u.location)::float END AS latitude,
	CASE WHEN u.location IS NOT NULL THEN ST_X(u.location)::float END AS longitude,
	COALESCE(json_agg(s.name ORDER BY s.name) FILTER (WHERE s.name IS NOT NULL), '[]') AS skills
FROM users u
LEFT JOIN user_skills us ON u.id = us.user_id
LEFT JOIN skills s ON us.skill_id = s.id
WHERE `

const profileGroup = ` GROUP BY u.id`

type profileRow struct {
	ID                 uuid.UUID
	Name               string
	Email              string
	PasswordHash       *string
	PhoneNumber        string
	Role               string
	Bio                *string
	Resume             *string
	ResumePublicID     *string
	ProfilePic         *string
	ProfilePicPublicID *string
	Subscription       *time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
	Latitude           *float64
	Longitude          *float64
	Skills             datatypes.JSON
}

func (row profileRow) account() (*models.Account, error) {
	skills := []string{}
	if len(row.Skills) > 0 {
		if err := json.Unmarshal(row.Skills, &skills); err != nil {
			return nil, appErr.Wrap(err, appErr.CodeInternal, "decode skills failed")
		}
	}
	acc := &models.Account{
		Profile: models.Profile{
			ID:                 row.ID,
			Name:               row.Name,
			Email:              row.Email,
			PhoneNumber:        row.PhoneNumber,
			Role:               models.Role(row.Role),
			Bio:                row.Bio,
			Resume:             row.Resume,
			ResumePublicID:     row.ResumePublicID,
			ProfilePic:         row.ProfilePic,
			ProfilePicPublicID: row.ProfilePicPublicID,
			Subscription:       row.Subscription,
			Skills:             skills,
			CreatedAt:          row.CreatedAt,
			UpdatedAt:          row.UpdatedAt,
		},
		PasswordHash: row.PasswordHash,
	}
	if row.Latitude != nil && row.Longitude != nil {
		acc.Location = &models.Location{Latitude: *row.Latitude, Longitude: *row.Longitude}
	}
	return acc, nil
}

func (r *userRepository) findAccount(ctx context.Context, where string, arg any) (*models.Account, error) {
	var row profileRow
	res := r.db.WithContext(ctx).Raw(profileQuery+where+profileGroup, arg).Scan(&row)
	if res.Error != nil {
		return nil, appErr.Wrap(res.Error, appErr.CodeInternal, "load user failed")
	}
	if res.RowsAffected == 0 {
		return nil, appErr.NotFound("User not found")
	}
	return row.account()
}

func (r *userRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return r.Exists(ctx, "email = ?", email)
}

func (r *userRepository) FindAccountByEmail(ctx context.Context, email string) (*models.Account, error) {
	return r.findAccount(ctx, "u.email = ?", email)
}

func (r *userRepository) GetProfile(ctx context.Context, id uuid.UUID) (*models.Profile, error) {
	acc, err := r.findAccount(ctx, "u.id = ?", id)
	if err != nil {
		return nil, err
	}
	return &acc.Profile, nil
}

func (r *userRepository) UpdateProfile(ctx context.Context, id uuid.UUID, upd ProfileUpdate) (*models.Profile, error) {
	var res *gorm.DB
	if upd.Location != nil {
		res = r.db.WithContext(ctx).Exec(`
			UPDATE users
			SET name = ?, phone_number = ?, bio = ?,
				location = ST_SetSRID(ST_MakePoint(?, ?), 4326),
				updated_at = NOW()
			WHERE id = ?`,
			upd.Name, upd.PhoneNumber, upd.Bio, upd.Location.Longitude, upd.Location.Latitude, id)
	} else {
		res = r.db.WithContext(ctx).Exec(`
			UPDATE users
			SET name = ?, phone_number = ?, bio = ?, updated_at = NOW()
			WHERE id = ?`,
			upd.Name, upd.PhoneNumber, upd.Bio, id)
	}
	if err := rowsOrNotFound(res, "update profile failed"); err != nil {
		return nil, err
	}
	return r.GetProfile(ctx, id)
}

func (r *userRepository) UpdateProfilePicture(ctx context.Context, id uuid.UUID, url, publicID string) (*models.Profile, error) {
	return r.updateMedia(ctx, id, map[string]any{"profile_pic": url, "profile_pic_public_id": publicID})
}

func (r *userRepository) UpdateResume(ctx context.Context, id uuid.UUID, url, publicID string) (*models.Profile, error) {
	return r.updateMedia(ctx, id, map[string]any{"resume": url, "resume_public_id": publicID})
}

func (r *userRepository) updateMedia(ctx context.Context, id uuid.UUID, cols map[string]any) (*models.Profile, error) {
	res := r.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", id).Updates(cols)
	if err := rowsOrNotFound(res, "update media failed"); err != nil {
		return nil, err
	}
	return r.GetProfile(ctx, id)
}

func (r *userRepository) UpdatePassword(ctx context.Context, email, hash string) error {
	res := r.db.WithContext(ctx).Model(&models.User{}).Where("email = ?", email).Update("password_hash", hash)
	return rowsOrNotFound(res, "update password failed")
}

func rowsOrNotFound(res *gorm.DB, msg string) error {
	if res.Error != nil {
		return appErr.Wrap(res.Error, appErr.CodeInternal, msg)
	}
	if res.RowsAffected == 0 {
		return appErr.NotFound("User not found")
	}
	return nil
}
