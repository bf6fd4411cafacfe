package repository

import (
	"github.com/harborview/marina-api/internal/models"
	"github.com/harborview/marina-api/internal/utils"
)

// BoatRepository defines the interface for boat data access
type BoatRepository interface {
	// Create creates a new boat
	Create(boat *models.Boat) error

	// FindByID finds a boat by ID with optional preloading
	FindByID(id uint64, preload ...string) (*models.Boat, error)

	// ListByOwner retrieves a page of boats belonging to the owner and
	// the total count of the owner's boats regardless of the page
	ListByOwner(ownerID uint64, params utils.PaginationParams) ([]models.Boat, int64, error)

	// Update persists changes to a boat
	Update(boat *models.Boat) error

	// Delete detaches all loads from the boat and deletes it atomically
	Delete(id uint64) error

	// AttachLoad sets the load's boat reference, guarded so a load
	// already sitting on any boat is left untouched
	AttachLoad(boatID, loadID uint64) error

	// DetachLoad clears the load's boat reference, guarded so only a
	// load currently on this specific boat is touched
	DetachLoad(boatID, loadID uint64) error

	// DetachAllLoads clears the boat reference of every load on the boat
	DetachAllLoads(boatID uint64) error
}

// LoadRepository defines the interface for load data access
type LoadRepository interface {
	// Create creates a new load
	Create(load *models.Load) error

	// FindByID finds a load by ID with optional preloading
	FindByID(id uint64, preload ...string) (*models.Load, error)

	// List retrieves a page of loads and the total load count
	List(params utils.PaginationParams) ([]models.Load, int64, error)

	// Update persists changes to a load
	Update(load *models.Load) error

	// Delete deletes a load
	Delete(id uint64) error
}

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// FindByID finds a user by ID
	FindByID(id uint64) (*models.User, error)

	// FindBySub finds the user holding the given identity subject
	FindBySub(sub string) (*models.User, error)

	// List retrieves all users
	List() ([]models.User, error)
}
