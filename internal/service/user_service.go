package service

import (
	"context"

	"bookswap/internal/models"
	"bookswap/internal/repository"
	"bookswap/internal/validation"
)

// UserService orchestrates user creation, updates and deletion, including
// the uniqueness checks on username and email.
type UserService struct {
	userRepo repository.UserRepository
}

// CreateUserInput carries the payload for creating a user.
type CreateUserInput struct {
	Username string
	Email    string
}

// NewUserService returns a new UserService.
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// CreateUser validates the payload, checks uniqueness (email first, then
// username) and persists the user.
func (s *UserService) CreateUser(ctx context.Context, in CreateUserInput) (*models.User, error) {
	if validation.IsBlank(in.Username) {
		return nil, models.NewValidationError("username", "username is required")
	}
	if validation.IsBlank(in.Email) {
		return nil, models.NewValidationError("email", "email is required")
	}
	if !validation.IsValidEmail(in.Email) {
		return nil, models.NewValidationError("email", "email is not a valid address")
	}

	// Email is checked first; an email collision is reported without
	// looking at the username.
	if err := s.checkEmailFree(ctx, in.Email, 0); err != nil {
		return nil, err
	}
	if err := s.checkUsernameFree(ctx, in.Username, 0); err != nil {
		return nil, err
	}

	user := &models.User{
		Username: in.Username,
		Email:    in.Email,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// GetUser fetches a single user by id.
func (s *UserService) GetUser(ctx context.Context, id uint) (*models.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

// ListUsers lists all users, optionally filtered by exact email.
func (s *UserService) ListUsers(ctx context.Context, email string) ([]models.User, error) {
	return s.userRepo.List(ctx, email)
}

// UpdateUser applies a partial update. Only supplied fields are validated
// and merged; supplied username/email are re-checked for uniqueness against
// all other users.
func (s *UserService) UpdateUser(ctx context.Context, id uint, patch models.UserPatch) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Email != nil {
		if validation.IsBlank(*patch.Email) {
			return nil, models.NewValidationError("email", "email must not be empty")
		}
		if !validation.IsValidEmail(*patch.Email) {
			return nil, models.NewValidationError("email", "email is not a valid address")
		}
		if err := s.checkEmailFree(ctx, *patch.Email, user.ID); err != nil {
			return nil, err
		}
	}
	if patch.Username != nil {
		if validation.IsBlank(*patch.Username) {
			return nil, models.NewValidationError("username", "username must not be empty")
		}
		if err := s.checkUsernameFree(ctx, *patch.Username, user.ID); err != nil {
			return nil, err
		}
	}

	if patch.Email != nil {
		user.Email = *patch.Email
	}
	if patch.Username != nil {
		user.Username = *patch.Username
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// DeleteUser deletes the user and cascades to everything it owns.
func (s *UserService) DeleteUser(ctx context.Context, id uint) error {
	if _, err := s.userRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.userRepo.Delete(ctx, id)
}

// checkEmailFree reports a conflict when another user (id != selfID)
// already holds the email.
func (s *UserService) checkEmailFree(ctx context.Context, email string, selfID uint) error {
	existing, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return err
	}
	if existing != nil && existing.ID != selfID {
		return models.NewConflictError("email")
	}
	return nil
}

func (s *UserService) checkUsernameFree(ctx context.Context, username string, selfID uint) error {
	existing, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return err
	}
	if existing != nil && existing.ID != selfID {
		return models.NewConflictError("username")
	}
	return nil
}
