package dto

import (
	"github.com/harborview/marina-api/internal/models"
	"github.com/harborview/marina-api/internal/utils"
)

// LoadRefDTO references a load attached to a boat, one self link per
// load.
type LoadRefDTO struct {
	ID   uint64 `json:"id"`
	Self string `json:"self"`
}

// BoatDTO represents a boat in API responses. ID and the self links are
// computed at serialization time and never persisted.
type BoatDTO struct {
	ID     uint64       `json:"id"`
	Name   string       `json:"name"`
	Type   string       `json:"type"`
	Length int          `json:"length"`
	Owner  uint64       `json:"owner"`
	Loads  []LoadRefDTO `json:"loads"`
	Self   string       `json:"self"`
}

// BoatListDTO is the paginated boat list envelope. Total counts every
// boat of the owner regardless of the page window.
type BoatListDTO struct {
	Boats []BoatDTO `json:"boats"`
	Next  string    `json:"next,omitempty"`
	Total int64     `json:"total"`
}

// ToBoatDTO shapes a boat for a response
func ToBoatDTO(boat models.Boat, base string) BoatDTO {
	refs := make([]LoadRefDTO, 0, len(boat.Loads))
	for _, load := range boat.Loads {
		refs = append(refs, LoadRefDTO{
			ID:   load.ID,
			Self: loadSelfLink(base, load.ID),
		})
	}

	return BoatDTO{
		ID:     boat.ID,
		Name:   boat.Name,
		Type:   boat.Type,
		Length: boat.Length,
		Owner:  boat.OwnerID,
		Loads:  refs,
		Self:   boatSelfLink(base, boat.ID),
	}
}

// ToBoatListDTO shapes one page of boats
func ToBoatListDTO(boats []models.Boat, base string, params utils.PaginationParams, total int64) BoatListDTO {
	items := make([]BoatDTO, 0, len(boats))
	for _, boat := range boats {
		items = append(items, ToBoatDTO(boat, base))
	}

	return BoatListDTO{
		Boats: items,
		Next:  utils.NextURL(base+"/boats", params, total),
		Total: total,
	}
}
