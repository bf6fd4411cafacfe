package services

import (
	"errors"
	"fmt"

	"github.com/harborview/marina-api/internal/models"
	"github.com/harborview/marina-api/internal/repository"
	"github.com/harborview/marina-api/internal/utils"
	"gorm.io/gorm"
)

var (
	ErrBoatNotFound     = errors.New("Boat not found")
	ErrLoadNotFound     = errors.New("Load not found")
	ErrLoadAlreadyTaken = errors.New("Load is already on a boat")
	ErrLoadNotOnBoat    = errors.New("Load is not on this boat")
)

// BoatService handles boat business logic
type BoatService struct {
	boatRepo repository.BoatRepository
	loadRepo repository.LoadRepository
}

// NewBoatService creates a new BoatService
func NewBoatService(boatRepo repository.BoatRepository, loadRepo repository.LoadRepository) *BoatService {
	return &BoatService{
		boatRepo: boatRepo,
		loadRepo: loadRepo,
	}
}

// BoatInput carries the client-settable boat fields. A zero value means
// the field was not supplied; partial updates skip it, creation and full
// replacement reject it.
type BoatInput struct {
	Name   string
	Type   string
	Length int
}

func (in BoatInput) validateFull() error {
	if !validString(in.Name) || !validString(in.Type) || !validPosInt(in.Length) {
		return ErrInvalidProperty
	}
	return nil
}

// applyPartial copies the supplied subset of fields onto the boat,
// validating each supplied field individually.
func (in BoatInput) applyPartial(boat *models.Boat) error {
	if in.Name != "" {
		if !validString(in.Name) {
			return ErrInvalidProperty
		}
		boat.Name = in.Name
	}
	if in.Type != "" {
		if !validString(in.Type) {
			return ErrInvalidProperty
		}
		boat.Type = in.Type
	}
	if in.Length != 0 {
		if !validPosInt(in.Length) {
			return ErrInvalidProperty
		}
		boat.Length = in.Length
	}
	return nil
}

// Create validates all three fields and creates a boat owned by ownerID
// with no cargo.
func (s *BoatService) Create(ownerID uint64, input BoatInput) (*models.Boat, error) {
	if err := input.validateFull(); err != nil {
		return nil, err
	}

	boat := &models.Boat{
		Name:    input.Name,
		Type:    input.Type,
		Length:  input.Length,
		OwnerID: ownerID,
		Loads:   []models.Load{},
	}

	if err := s.boatRepo.Create(boat); err != nil {
		return nil, fmt.Errorf("failed to create boat: %w", err)
	}

	return boat, nil
}

// List returns one page of the owner's boats and the total count.
func (s *BoatService) List(ownerID uint64, params utils.PaginationParams) ([]models.Boat, int64, error) {
	return s.boatRepo.ListByOwner(ownerID, params)
}

// Update applies a partial edit to the boat.
func (s *BoatService) Update(boat *models.Boat, input BoatInput) (*models.Boat, error) {
	if err := input.applyPartial(boat); err != nil {
		return nil, err
	}

	if err := s.boatRepo.Update(boat); err != nil {
		return nil, fmt.Errorf("failed to update boat: %w", err)
	}

	return boat, nil
}

// Replace overwrites every client-settable field and strips the boat of
// its cargo: every attached load is detached as a side effect.
func (s *BoatService) Replace(boat *models.Boat, input BoatInput) (*models.Boat, error) {
	if err := input.validateFull(); err != nil {
		return nil, err
	}

	boat.Name = input.Name
	boat.Type = input.Type
	boat.Length = input.Length

	if err := s.boatRepo.DetachAllLoads(boat.ID); err != nil {
		return nil, fmt.Errorf("failed to unload boat: %w", err)
	}
	boat.Loads = []models.Load{}

	if err := s.boatRepo.Update(boat); err != nil {
		return nil, fmt.Errorf("failed to replace boat: %w", err)
	}

	return boat, nil
}

// Delete detaches all cargo and removes the boat.
func (s *BoatService) Delete(boatID uint64) error {
	if err := s.boatRepo.Delete(boatID); err != nil {
		return fmt.Errorf("failed to delete boat: %w", err)
	}
	return nil
}

// AttachLoad puts the load on the boat. The load must exist and must not
// currently sit on any boat.
func (s *BoatService) AttachLoad(boatID, loadID uint64) error {
	if _, err := s.loadRepo.FindByID(loadID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrLoadNotFound
		}
		return fmt.Errorf("failed to fetch load: %w", err)
	}

	if err := s.boatRepo.AttachLoad(boatID, loadID); err != nil {
		if errors.Is(err, repository.ErrLoadTaken) {
			return ErrLoadAlreadyTaken
		}
		return fmt.Errorf("failed to attach load: %w", err)
	}

	return nil
}

// DetachLoad removes the load from the boat. The load must exist and
// must currently sit on this specific boat.
func (s *BoatService) DetachLoad(boatID, loadID uint64) error {
	if _, err := s.loadRepo.FindByID(loadID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrLoadNotFound
		}
		return fmt.Errorf("failed to fetch load: %w", err)
	}

	if err := s.boatRepo.DetachLoad(boatID, loadID); err != nil {
		if errors.Is(err, repository.ErrLoadNotAboard) {
			return ErrLoadNotOnBoat
		}
		return fmt.Errorf("failed to detach load: %w", err)
	}

	return nil
}
