package services

import (
	"errors"
	"fmt"

	"github.com/harborview/marina-api/internal/models"
	"github.com/harborview/marina-api/internal/repository"
	"gorm.io/gorm"
)

var ErrUserNotFound = errors.New("User not found")

// UserService handles user lookup and the lazy creation that backs the
// login callback.
type UserService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new UserService
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{
		userRepo: userRepo,
	}
}

// List retrieves all users.
func (s *UserService) List() ([]models.User, error) {
	return s.userRepo.List()
}

// FindOrCreate returns the user holding the subject, creating one on
// first sight. Called from the OAuth callback once the identity token
// has been verified.
func (s *UserService) FindOrCreate(sub, name string) (*models.User, error) {
	user, err := s.userRepo.FindBySub(sub)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	user = &models.User{
		Name: name,
		Sub:  sub,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}
