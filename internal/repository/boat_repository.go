package repository

import (
	"errors"

	"github.com/harborview/marina-api/internal/database"
	"github.com/harborview/marina-api/internal/models"
	"github.com/harborview/marina-api/internal/utils"
	"gorm.io/gorm"
)

var (
	// ErrLoadTaken is returned by AttachLoad when the load already sits
	// on a boat (this one or any other).
	ErrLoadTaken = errors.New("boat repository: load is already on a boat")
	// ErrLoadNotAboard is returned by DetachLoad when the load is not
	// currently on the given boat.
	ErrLoadNotAboard = errors.New("boat repository: load is not on this boat")
)

// GormBoatRepository is a GORM implementation of BoatRepository
type GormBoatRepository struct {
	db *gorm.DB
}

// NewBoatRepository creates a new BoatRepository
func NewBoatRepository(db *gorm.DB) BoatRepository {
	return &GormBoatRepository{db: db}
}

// Create creates a new boat
func (r *GormBoatRepository) Create(boat *models.Boat) error {
	return r.db.Create(boat).Error
}

// FindByID finds a boat by ID with optional preloading
func (r *GormBoatRepository) FindByID(id uint64, preload ...string) (*models.Boat, error) {
	var boat models.Boat
	query := r.db

	for _, p := range preload {
		query = query.Preload(p)
	}

	if err := query.First(&boat, id).Error; err != nil {
		return nil, err
	}

	return &boat, nil
}

// ListByOwner retrieves a page of the owner's boats plus the unpaginated total
func (r *GormBoatRepository) ListByOwner(ownerID uint64, params utils.PaginationParams) ([]models.Boat, int64, error) {
	query := r.db.Model(&models.Boat{}).Where("owner_id = ?", ownerID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var boats []models.Boat
	if err := query.
		Order("id ASC").
		Scopes(database.Paginate(params)).
		Preload("Loads").
		Find(&boats).Error; err != nil {
		return nil, 0, err
	}

	return boats, total, nil
}

// Update persists changes to a boat
func (r *GormBoatRepository) Update(boat *models.Boat) error {
	return r.db.Save(boat).Error
}

// Delete detaches every load on the boat and removes the boat record.
// Both writes happen in one transaction so a failure cannot leave a
// load pointing at a deleted boat.
func (r *GormBoatRepository) Delete(id uint64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Load{}).
			Where("boat_id = ?", id).
			Update("boat_id", nil).Error; err != nil {
			return err
		}

		return tx.Delete(&models.Boat{}, id).Error
	})
}

// AttachLoad links the load to the boat. The WHERE clause re-checks that
// the load is still unassigned, so two concurrent attach attempts cannot
// both win.
func (r *GormBoatRepository) AttachLoad(boatID, loadID uint64) error {
	res := r.db.Model(&models.Load{}).
		Where("id = ? AND boat_id IS NULL", loadID).
		Update("boat_id", boatID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrLoadTaken
	}
	return nil
}

// DetachLoad unlinks the load from this specific boat
func (r *GormBoatRepository) DetachLoad(boatID, loadID uint64) error {
	res := r.db.Model(&models.Load{}).
		Where("id = ? AND boat_id = ?", loadID, boatID).
		Update("boat_id", nil)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrLoadNotAboard
	}
	return nil
}

// DetachAllLoads strips the boat of its cargo
func (r *GormBoatRepository) DetachAllLoads(boatID uint64) error {
	return r.db.Model(&models.Load{}).
		Where("boat_id = ?", boatID).
		Update("boat_id", nil).Error
}
