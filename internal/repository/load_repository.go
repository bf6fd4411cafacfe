package repository

import (
	"github.com/harborview/marina-api/internal/database"
	"github.com/harborview/marina-api/internal/models"
	"github.com/harborview/marina-api/internal/utils"
	"gorm.io/gorm"
)

// GormLoadRepository is a GORM implementation of LoadRepository
type GormLoadRepository struct {
	db *gorm.DB
}

// NewLoadRepository creates a new LoadRepository
func NewLoadRepository(db *gorm.DB) LoadRepository {
	return &GormLoadRepository{db: db}
}

// Create creates a new load
func (r *GormLoadRepository) Create(load *models.Load) error {
	return r.db.Create(load).Error
}

// FindByID finds a load by ID with optional preloading
func (r *GormLoadRepository) FindByID(id uint64, preload ...string) (*models.Load, error) {
	var load models.Load
	query := r.db

	for _, p := range preload {
		query = query.Preload(p)
	}

	if err := query.First(&load, id).Error; err != nil {
		return nil, err
	}

	return &load, nil
}

// List retrieves a page of loads plus the unpaginated total
func (r *GormLoadRepository) List(params utils.PaginationParams) ([]models.Load, int64, error) {
	var total int64
	if err := r.db.Model(&models.Load{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var loads []models.Load
	if err := r.db.
		Order("id ASC").
		Scopes(database.Paginate(params)).
		Find(&loads).Error; err != nil {
		return nil, 0, err
	}

	return loads, total, nil
}

// Update persists changes to a load
func (r *GormLoadRepository) Update(load *models.Load) error {
	return r.db.Save(load).Error
}

// Delete deletes a load
func (r *GormLoadRepository) Delete(id uint64) error {
	return r.db.Delete(&models.Load{}, id).Error
}
