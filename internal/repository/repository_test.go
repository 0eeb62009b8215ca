package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	gormpg "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/uptraa/platform/internal/models"
	appErr "github.com/uptraa/platform/pkg/errors"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)

	ctx := context.Background()
	ctr, err := postgres.Run(ctx, "postgis/postgis:16-3.4-alpine",
		postgres.WithDatabase("uptraa"),
		postgres.WithUsername("uptraa"),
		postgres.WithPassword("uptraa"),
		postgres.BasicWaitStrategies(),
	)
	testcontainers.CleanupContainer(t, ctr)
	require.NoError(t, err)

	dsn, err := ctr.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := gorm.Open(gormpg.Open(dsn), &gorm.Config{Logger: gormlogger.Discard})
	require.NoError(t, err)
	require.NoError(t, Migrate(db))
	// running twice must be a no-op
	require.NoError(t, Migrate(db))
	return db
}

func strPtr(s string) *string { return &s }

func newRecruiter(email string) *models.User {
	return &models.User{
		Name:         "Rita",
		Email:        email,
		PasswordHash: strPtr("hash"),
		PhoneNumber:  "9876543210",
		Role:         models.RoleRecruiter,
	}
}

func TestRepositories(t *testing.T) {
	db := openTestDB(t)
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	users := NewUserRepository(db)
	skills := NewSkillRepository(db)

	t.Run("create and load profile", func(t *testing.T) {
		u := newRecruiter("rita@x.com")
		require.NoError(t, users.Create(ctx, u))
		require.NotEqual(t, uuid.Nil, u.ID)

		exists, err := users.ExistsByEmail(ctx, "rita@x.com")
		require.NoError(t, err)
		require.True(t, exists)

		p, err := users.GetProfile(ctx, u.ID)
		require.NoError(t, err)
		require.Equal(t, models.RoleRecruiter, p.Role)
		require.NotNil(t, p.Skills)
		require.Empty(t, p.Skills)
		require.Nil(t, p.Location)
		require.Nil(t, p.Resume)

		acc, err := users.FindAccountByEmail(ctx, "rita@x.com")
		require.NoError(t, err)
		require.Equal(t, "hash", *acc.PasswordHash)
	})

	t.Run("duplicate email is a conflict", func(t *testing.T) {
		err := users.Create(ctx, newRecruiter("dup@x.com"))
		require.NoError(t, err)
		err = users.Create(ctx, newRecruiter("dup@x.com"))
		require.True(t, appErr.IsCode(err, appErr.CodeConflict))
	})

	t.Run("missing user", func(t *testing.T) {
		_, err := users.GetProfile(ctx, uuid.New())
		require.True(t, appErr.IsCode(err, appErr.CodeNotFound))

		err = users.UpdatePassword(ctx, "nobody@x.com", "h")
		require.True(t, appErr.IsCode(err, appErr.CodeNotFound))
	})

	t.Run("profile update with location", func(t *testing.T) {
		u := newRecruiter("geo@x.com")
		require.NoError(t, users.Create(ctx, u))

		p, err := users.UpdateProfile(ctx, u.ID, ProfileUpdate{
			Name:        "Geo",
			PhoneNumber: "9123456789",
			Bio:         strPtr("maps"),
			Location:    &models.Location{Latitude: 12.97, Longitude: 77.59},
		})
		require.NoError(t, err)
		require.Equal(t, "Geo", p.Name)
		require.NotNil(t, p.Location)
		require.InDelta(t, 12.97, p.Location.Latitude, 1e-9)
		require.InDelta(t, 77.59, p.Location.Longitude, 1e-9)

		// omitting location keeps the stored point
		p, err = users.UpdateProfile(ctx, u.ID, ProfileUpdate{Name: "Geo", PhoneNumber: "9123456789"})
		require.NoError(t, err)
		require.NotNil(t, p.Location)
		require.Nil(t, p.Bio)

		p, err = users.UpdateResume(ctx, u.ID, "https://cdn/x.pdf", "x")
		require.NoError(t, err)
		require.Equal(t, "https://cdn/x.pdf", *p.Resume)
		require.Equal(t, "x", *p.ResumePublicID)
	})

	t.Run("skills", func(t *testing.T) {
		u := newRecruiter("skills@x.com")
		require.NoError(t, users.Create(ctx, u))

		s := &models.Skill{Name: "Go"}
		require.NoError(t, skills.Create(ctx, s))
		require.True(t, appErr.IsCode(skills.Create(ctx, &models.Skill{Name: "Go"}), appErr.CodeConflict))

		got, err := skills.GetByName(ctx, "Go")
		require.NoError(t, err)
		require.Equal(t, s.ID, got.ID)

		_, err = skills.GetByName(ctx, "Rust")
		require.True(t, appErr.IsCode(err, appErr.CodeNotFound))

		_, err = skills.AddToUser(ctx, u.ID, s.ID)
		require.NoError(t, err)
		_, err = skills.AddToUser(ctx, u.ID, s.ID)
		require.True(t, appErr.IsCode(err, appErr.CodeConflict))

		has, err := skills.HasUserSkill(ctx, u.ID, s.ID)
		require.NoError(t, err)
		require.True(t, has)

		names, err := skills.ListForUser(ctx, u.ID)
		require.NoError(t, err)
		require.Equal(t, []models.SkillName{{Name: "Go"}}, names)

		p, err := users.GetProfile(ctx, u.ID)
		require.NoError(t, err)
		require.Equal(t, []string{"Go"}, p.Skills)

		_, err = skills.RemoveFromUser(ctx, u.ID, s.ID)
		require.NoError(t, err)
		_, err = skills.RemoveFromUser(ctx, u.ID, s.ID)
		require.True(t, appErr.IsCode(err, appErr.CodeNotFound))

		all, err := skills.List(ctx)
		require.NoError(t, err)
		require.Len(t, all, 1)
	})
}
