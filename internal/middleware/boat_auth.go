package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/harborview/marina-api/internal/constants"
	apierrors "github.com/harborview/marina-api/internal/errors"
	"github.com/harborview/marina-api/internal/models"
	"github.com/harborview/marina-api/internal/repository"
)

// RequireBoatOwner loads the boat from the boat_id path parameter and
// verifies it belongs to the resolved caller. Missing boat is 404;
// someone else's boat is 403. The loaded boat (cargo preloaded) is
// stored in the context for the handler.
func RequireBoatOwner(boatRepo repository.BoatRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		boatID, err := strconv.ParseUint(c.Param("boat_id"), 10, 64)
		if err != nil {
			apierrors.BadRequest(c, "Invalid boat ID")
			c.Abort()
			return
		}

		userID, exists := GetUserID(c)
		if !exists {
			apierrors.Unauthorized(c, "")
			c.Abort()
			return
		}

		boat, err := boatRepo.FindByID(boatID, "Loads")
		if err != nil {
			apierrors.NotFound(c, "Boat not found")
			c.Abort()
			return
		}

		if boat.OwnerID != userID {
			apierrors.Forbidden(c, "You are not authorized to access this resource")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyBoat, boat)
		c.Next()
	}
}

// GetBoat retrieves the owner-checked boat from context
func GetBoat(c *gin.Context) (*models.Boat, bool) {
	value, exists := c.Get(constants.ContextKeyBoat)
	if !exists {
		return nil, false
	}

	boat, ok := value.(*models.Boat)
	return boat, ok
}
