package services

import (
	"storefront/internal/models"
	"storefront/internal/repositories"
)

// UserService handles business logic for user listing and removal.
// Registration lives in AuthService because it needs the credential pipeline.
type UserService struct {
	repo repositories.UserRepository
}

// NewUserService creates a new UserService.
func NewUserService(repo repositories.UserRepository) *UserService {
	return &UserService{
		repo: repo,
	}
}

// GetAllUsers retrieves all users.
func (s *UserService) GetAllUsers() ([]models.User, error) {
	return s.repo.GetAll()
}

// GetUserByID retrieves a single user by id.
func (s *UserService) GetUserByID(id uint) (*models.User, error) {
	return s.repo.GetByID(id)
}

// DeleteUser removes a user and returns the removed record. The user's
// orders are left in place.
func (s *UserService) DeleteUser(id uint) (*models.User, error) {
	return s.repo.Delete(id)
}
