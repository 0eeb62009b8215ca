package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	appErr "github.com/uptraa/platform/pkg/errors"
	"gorm.io/gorm"
)

const uniqueViolation = "23505"

// BaseRepository defines the row operations shared by every table.
type BaseRepository[T any] interface {
	Create(ctx context.Context, obj *T) error
	First(ctx context.Context, dest *T, query string, args ...any) error
	Exists(ctx context.Context, query string, args ...any) (bool, error)
	Delete(ctx context.Context, query string, args ...any) error
}

type baseRepository[T any] struct {
	db     *gorm.DB
	entity string
}

// NewBaseRepository binds the generic operations to T. entity names the row in
// not-found and conflict messages.
func NewBaseRepository[T any](db *gorm.DB, entity string) BaseRepository[T] {
	return &baseRepository[T]{db: db, entity: entity}
}

func (r *baseRepository[T]) Create(ctx context.Context, obj *T) error {
	if err := r.db.WithContext(ctx).Create(obj).Error; err != nil {
		return translate(err, fmt.Sprintf("%s already exists", r.entity), "create entity failed")
	}
	return nil
}

func (r *baseRepository[T]) First(ctx context.Context, dest *T, query string, args ...any) error {
	if err := r.db.WithContext(ctx).Where(query, args...).First(dest).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return appErr.NotFound(fmt.Sprintf("%s not found", r.entity))
		}
		return appErr.Wrap(err, appErr.CodeInternal, "get entity failed")
	}
	return nil
}

func (r *baseRepository[T]) Exists(ctx context.Context, query string, args ...any) (bool, error) {
	var count int64
	var t T
	if err := r.db.WithContext(ctx).Model(&t).Where(query, args...).Limit(1).Count(&count).Error; err != nil {
		return false, appErr.Wrap(err, appErr.CodeInternal, "exists check failed")
	}
	return count > 0, nil
}

func (r *baseRepository[T]) Delete(ctx context.Context, query string, args ...any) error {
	var t T
	res := r.db.WithContext(ctx).Where(query, args...).Delete(&t)
	if res.Error != nil {
		return appErr.Wrap(res.Error, appErr.CodeInternal, "delete entity failed")
	}
	if res.RowsAffected == 0 {
		return appErr.NotFound(fmt.Sprintf("%s not found", r.entity))
	}
	return nil
}

// translate maps a unique violation to a conflict and anything else to an
// internal error.
func translate(err error, conflict, internal string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return appErr.Wrap(err, appErr.CodeConflict, conflict)
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return appErr.Wrap(err, appErr.CodeConflict, conflict)
	}
	return appErr.Wrap(err, appErr.CodeInternal, internal)
}
