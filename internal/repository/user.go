package repository

import (
	"context"
	"errors"

	"bookswap/internal/models"
	"bookswap/internal/observability"

	"gorm.io/gorm"
)

// UserRepository defines persistence operations for users.
type UserRepository interface {
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	List(ctx context.Context, email string) ([]models.User, error)
	Create(ctx context.Context, user *models.User) error
	Update(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id uint) error
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository returns a new UserRepository implementation.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("User", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &user, nil
}

// GetByEmail returns (nil, nil) when no user has the given email.
func (r *userRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &user, nil
}

// GetByUsername returns (nil, nil) when no user has the given username.
func (r *userRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &user, nil
}

// List returns all users, or only those with the given email when email is
// non-empty. The email filter is an exact match.
func (r *userRepository) List(ctx context.Context, email string) ([]models.User, error) {
	defer observability.TrackQuery("list", "users")()

	query := r.db.WithContext(ctx)
	if email != "" {
		query = query.Where("email = ?", email)
	}

	var users []models.User
	if err := query.Find(&users).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return users, nil
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	defer observability.TrackQuery("create", "users")()

	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		if isUniqueConstraintError(err) {
			return models.NewIntegrityError(err)
		}
		return models.NewInternalError(err)
	}
	return nil
}

func (r *userRepository) Update(ctx context.Context, user *models.User) error {
	if err := r.db.WithContext(ctx).Save(user).Error; err != nil {
		if isUniqueConstraintError(err) {
			return models.NewIntegrityError(err)
		}
		return models.NewInternalError(err)
	}
	return nil
}

// Delete removes the user and everything it owns: its books, the exchanges
// and reviews it authored, and the exchanges and reviews attached to its
// books. The whole cascade runs in one transaction so a failure leaves no
// partial state.
func (r *userRepository) Delete(ctx context.Context, id uint) error {
	defer observability.TrackQuery("delete", "users")()

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var bookIDs []uint
		if err := tx.Model(&models.Book{}).Where("owner_id = ?", id).Pluck("id", &bookIDs).Error; err != nil {
			return err
		}

		exchangeCond := "user_id = ?"
		reviewCond := "user_id = ?"
		args := []interface{}{id}
		if len(bookIDs) > 0 {
			exchangeCond = "user_id = ? OR book_id IN ?"
			reviewCond = "user_id = ? OR book_id IN ?"
			args = []interface{}{id, bookIDs}
		}
		if err := tx.Where(exchangeCond, args...).Delete(&models.Exchange{}).Error; err != nil {
			return err
		}
		if err := tx.Where(reviewCond, args...).Delete(&models.Review{}).Error; err != nil {
			return err
		}
		if err := tx.Where("owner_id = ?", id).Delete(&models.Book{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.User{}, id).Error
	})
	if err != nil {
		return models.NewInternalError(err)
	}
	return nil
}
