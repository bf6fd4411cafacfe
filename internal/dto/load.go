package dto

import (
	"github.com/harborview/marina-api/internal/models"
	"github.com/harborview/marina-api/internal/utils"
)

// BoatRefDTO references the boat carrying a load. Only the link is
// exposed, not the boat id.
type BoatRefDTO struct {
	Self string `json:"self"`
}

// LoadDTO represents a load in API responses. Boat is null while the
// load is unattached.
type LoadDTO struct {
	ID     uint64      `json:"id"`
	Item   string      `json:"item"`
	Volume int         `json:"volume"`
	Weight int         `json:"weight"`
	Boat   *BoatRefDTO `json:"boat"`
	Self   string      `json:"self"`
}

// LoadListDTO is the paginated load list envelope.
type LoadListDTO struct {
	Loads []LoadDTO `json:"loads"`
	Next  string    `json:"next,omitempty"`
	Total int64     `json:"total"`
}

// ToLoadDTO shapes a load for a response
func ToLoadDTO(load models.Load, base string) LoadDTO {
	var boat *BoatRefDTO
	if load.BoatID != nil {
		boat = &BoatRefDTO{Self: boatSelfLink(base, *load.BoatID)}
	}

	return LoadDTO{
		ID:     load.ID,
		Item:   load.Item,
		Volume: load.Volume,
		Weight: load.Weight,
		Boat:   boat,
		Self:   loadSelfLink(base, load.ID),
	}
}

// ToLoadListDTO shapes one page of loads
func ToLoadListDTO(loads []models.Load, base string, params utils.PaginationParams, total int64) LoadListDTO {
	items := make([]LoadDTO, 0, len(loads))
	for _, load := range loads {
		items = append(items, ToLoadDTO(load, base))
	}

	return LoadListDTO{
		Loads: items,
		Next:  utils.NextURL(base+"/loads", params, total),
		Total: total,
	}
}
