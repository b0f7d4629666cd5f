package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/AquaPirot/pirotskevesti/model"
	"github.com/AquaPirot/pirotskevesti/utils"
)

type UserRepo struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) *UserRepo {
	return &UserRepo{db: db}
}

// ResolveOrCreate finds a user by exact display name, creating one on first
// reference. The lookup is deliberately not case- or whitespace-normalized:
// two visually distinct strings are two users. The unique index on name plus
// the insert-retry below makes concurrent first references converge on a
// single row.
func (r *UserRepo) ResolveOrCreate(ctx context.Context, name string) (*model.User, error) {
	timer := utils.TrackDBOperation("upsert", "users")
	defer timer.ObserveDuration()

	if name == "" {
		utils.TrackError("database", "missing_user_name")
		return nil, errors.New("user name is required")
	}

	var user model.User
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&user).Error
	if err == nil {
		return &user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.TrackError("database", "user_lookup_failed")
		return nil, err
	}

	user = model.User{ID: uuid.New().String(), Name: name}
	if err := r.db.WithContext(ctx).Create(&user).Error; err != nil {
		// A concurrent request may have inserted the same name between the
		// lookup and the insert; the unique index rejects ours, so re-read.
		var existing model.User
		if lookupErr := r.db.WithContext(ctx).Where("name = ?", name).First(&existing).Error; lookupErr == nil {
			return &existing, nil
		}
		utils.TrackError("database", "user_creation_failed")
		return nil, err
	}

	return &user, nil
}

// Count returns the total number of users
func (r *UserRepo) Count(ctx context.Context) (int, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.User{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return int(count), nil
}
