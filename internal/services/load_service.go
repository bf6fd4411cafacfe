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
	// ErrLoadAboardEdit blocks edits while the load sits on a boat.
	ErrLoadAboardEdit = errors.New("Load is on a boat. Remove the load from the boat to edit")
	// ErrLoadAboardDelete blocks deletion while the load sits on a boat.
	ErrLoadAboardDelete = errors.New("Load is on a boat. Remove the load from the boat first")
)

// LoadService handles load business logic
type LoadService struct {
	loadRepo repository.LoadRepository
}

// NewLoadService creates a new LoadService
func NewLoadService(loadRepo repository.LoadRepository) *LoadService {
	return &LoadService{
		loadRepo: loadRepo,
	}
}

// LoadInput carries the client-settable load fields; zero means not
// supplied, as with BoatInput.
type LoadInput struct {
	Item   string
	Volume int
	Weight int
}

func (in LoadInput) validateFull() error {
	if !validString(in.Item) || !validPosInt(in.Volume) || !validPosInt(in.Weight) {
		return ErrInvalidProperty
	}
	return nil
}

func (in LoadInput) applyPartial(load *models.Load) error {
	if in.Item != "" {
		if !validString(in.Item) {
			return ErrInvalidProperty
		}
		load.Item = in.Item
	}
	if in.Volume != 0 {
		if !validPosInt(in.Volume) {
			return ErrInvalidProperty
		}
		load.Volume = in.Volume
	}
	if in.Weight != 0 {
		if !validPosInt(in.Weight) {
			return ErrInvalidProperty
		}
		load.Weight = in.Weight
	}
	return nil
}

// Create validates all three fields and creates an unattached load.
func (s *LoadService) Create(input LoadInput) (*models.Load, error) {
	if err := input.validateFull(); err != nil {
		return nil, err
	}

	load := &models.Load{
		Item:   input.Item,
		Volume: input.Volume,
		Weight: input.Weight,
	}

	if err := s.loadRepo.Create(load); err != nil {
		return nil, fmt.Errorf("failed to create load: %w", err)
	}

	return load, nil
}

// List returns one page of loads and the total count.
func (s *LoadService) List(params utils.PaginationParams) ([]models.Load, int64, error) {
	return s.loadRepo.List(params)
}

// Get fetches a load by id.
func (s *LoadService) Get(id uint64) (*models.Load, error) {
	load, err := s.loadRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLoadNotFound
		}
		return nil, fmt.Errorf("failed to fetch load: %w", err)
	}
	return load, nil
}

// Update applies a partial edit. Attached loads are frozen until
// detached from their boat.
func (s *LoadService) Update(load *models.Load, input LoadInput) (*models.Load, error) {
	if load.BoatID != nil {
		return nil, ErrLoadAboardEdit
	}

	if err := input.applyPartial(load); err != nil {
		return nil, err
	}

	if err := s.loadRepo.Update(load); err != nil {
		return nil, fmt.Errorf("failed to update load: %w", err)
	}

	return load, nil
}

// Replace overwrites all client-settable fields. Attached loads are
// frozen until detached from their boat.
func (s *LoadService) Replace(load *models.Load, input LoadInput) (*models.Load, error) {
	if load.BoatID != nil {
		return nil, ErrLoadAboardEdit
	}

	if err := input.validateFull(); err != nil {
		return nil, err
	}

	load.Item = input.Item
	load.Volume = input.Volume
	load.Weight = input.Weight

	if err := s.loadRepo.Update(load); err != nil {
		return nil, fmt.Errorf("failed to replace load: %w", err)
	}

	return load, nil
}

// Delete removes an unattached load.
func (s *LoadService) Delete(load *models.Load) error {
	if load.BoatID != nil {
		return ErrLoadAboardDelete
	}

	if err := s.loadRepo.Delete(load.ID); err != nil {
		return fmt.Errorf("failed to delete load: %w", err)
	}

	return nil
}
