package repository

import (
	"context"
	"errors"
	"time"

	"github.com/amirhossein-jamali/bitport/internal/domain/entity"
	errs "github.com/amirhossein-jamali/bitport/internal/domain/error"
	coreport "github.com/amirhossein-jamali/bitport/internal/domain/port/core"
	"github.com/amirhossein-jamali/bitport/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/bitport/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// UserRepository implements UserRepository interface using GORM
type UserRepository struct {
	base
}

// NewUserRepository creates a new UserRepository instance
func NewUserRepository(
	db *gorm.DB,
	errorMapper *database.ErrorMapper,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	queryTimeout time.Duration,
) *UserRepository {
	return &UserRepository{base: newBase(db, errorMapper, timeProvider, logger, queryTimeout)}
}

func userToEntity(m *model.User) *entity.User {
	return &entity.User{
		ID:           m.ID,
		Name:         m.Name,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		CreatedAt:    m.CreatedAt,
	}
}

// Create stores a new user and writes the generated ID back to the entity
func (r *UserRepository) Create(ctx context.Context, user *entity.User) error {
	db, cancel := r.session(ctx)
	defer cancel()

	userModel := model.User{
		Name:         user.Name,
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		CreatedAt:    user.CreatedAt,
	}

	if err := db.Create(&userModel).Error; err != nil {
		mapped := r.errorMapper.MapError(err, database.EntityTypeUser, "create user")
		if errors.Is(mapped, errs.ErrDuplicateUser) {
			r.logger.Warn("Duplicate user registration", map[string]any{"email": user.Email})
			return mapped
		}
		return r.handleDatabaseError(err, database.EntityTypeUser, "create user", map[string]any{"email": user.Email})
	}

	user.ID = userModel.ID
	user.CreatedAt = userModel.CreatedAt

	r.logger.Info("User created successfully", map[string]any{
		"user_id": user.ID,
		"email":   user.Email,
	})
	return nil
}

// GetByEmail retrieves a user by login email
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.first(ctx, "email = ?", email, map[string]any{"email": email})
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id uint64) (*entity.User, error) {
	return r.first(ctx, "id = ?", id, map[string]any{"user_id": id})
}

func (r *UserRepository) first(ctx context.Context, cond string, arg any, fields map[string]any) (*entity.User, error) {
	db, cancel := r.session(ctx)
	defer cancel()

	var userModel model.User
	if err := db.Where(cond, arg).First(&userModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrUserNotFound
		}
		return nil, r.handleDatabaseError(err, database.EntityTypeUser, "get user", fields)
	}

	return userToEntity(&userModel), nil
}
