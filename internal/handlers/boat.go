package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/harborview/marina-api/internal/constants"
	"github.com/harborview/marina-api/internal/dto"
	apierrors "github.com/harborview/marina-api/internal/errors"
	"github.com/harborview/marina-api/internal/middleware"
	"github.com/harborview/marina-api/internal/services"
	"github.com/harborview/marina-api/internal/utils"
)

// BoatHandler coordinates the boat HTTP handlers.
type BoatHandler struct {
	boatService *services.BoatService
	baseURL     string
}

// NewBoatHandler creates a new BoatHandler. baseURL may be empty, in
// which case self links derive from each request.
func NewBoatHandler(boatService *services.BoatService, baseURL string) *BoatHandler {
	return &BoatHandler{
		boatService: boatService,
		baseURL:     baseURL,
	}
}

// BoatRequest is the client payload for creating, editing, or replacing
// a boat. Absent fields bind to zero values and count as not supplied.
type BoatRequest struct {
	Name   string `json:"name"`
	Type   string `json:"type"`
	Length int    `json:"length"`
}

func (req BoatRequest) toInput() services.BoatInput {
	return services.BoatInput{
		Name:   req.Name,
		Type:   req.Type,
		Length: req.Length,
	}
}

// Create handles POST /boats
func (h *BoatHandler) Create(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	var req BoatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	boat, err := h.boatService.Create(userID, req.toInput())
	if err != nil {
		respondBoatError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToBoatDTO(*boat, dto.RequestBase(c, h.baseURL)))
}

// List handles GET /boats: the caller's boats only, paginated.
func (h *BoatHandler) List(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	params := utils.GetPaginationParams(c, constants.DefaultBoatPageSize)

	boats, total, err := h.boatService.List(userID, params)
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch boats")
		return
	}

	c.JSON(http.StatusOK, dto.ToBoatListDTO(boats, dto.RequestBase(c, h.baseURL), params, total))
}

// Update handles PATCH /boats/:boat_id: any subset of fields.
func (h *BoatHandler) Update(c *gin.Context) {
	boat, ok := middleware.GetBoat(c)
	if !ok {
		apierrors.InternalError(c, "Boat not found in context")
		return
	}

	var req BoatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	boat, err := h.boatService.Update(boat, req.toInput())
	if err != nil {
		respondBoatError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBoatDTO(*boat, dto.RequestBase(c, h.baseURL)))
}

// Replace handles PUT /boats/:boat_id: all fields required, cargo
// stripped.
func (h *BoatHandler) Replace(c *gin.Context) {
	boat, ok := middleware.GetBoat(c)
	if !ok {
		apierrors.InternalError(c, "Boat not found in context")
		return
	}

	var req BoatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	boat, err := h.boatService.Replace(boat, req.toInput())
	if err != nil {
		respondBoatError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToBoatDTO(*boat, dto.RequestBase(c, h.baseURL)))
}

// Delete handles DELETE /boats/:boat_id
func (h *BoatHandler) Delete(c *gin.Context) {
	boat, ok := middleware.GetBoat(c)
	if !ok {
		apierrors.InternalError(c, "Boat not found in context")
		return
	}

	if err := h.boatService.Delete(boat.ID); err != nil {
		respondBoatError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// AttachLoad handles PATCH /boats/:boat_id/:load_id
func (h *BoatHandler) AttachLoad(c *gin.Context) {
	boat, ok := middleware.GetBoat(c)
	if !ok {
		apierrors.InternalError(c, "Boat not found in context")
		return
	}

	loadID, err := strconv.ParseUint(c.Param("load_id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid load ID")
		return
	}

	if err := h.boatService.AttachLoad(boat.ID, loadID); err != nil {
		respondBoatError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// DetachLoad handles DELETE /boats/:boat_id/:load_id
func (h *BoatHandler) DetachLoad(c *gin.Context) {
	boat, ok := middleware.GetBoat(c)
	if !ok {
		apierrors.InternalError(c, "Boat not found in context")
		return
	}

	loadID, err := strconv.ParseUint(c.Param("load_id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid load ID")
		return
	}

	if err := h.boatService.DetachLoad(boat.ID, loadID); err != nil {
		respondBoatError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func respondBoatError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrInvalidProperty):
		apierrors.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrBoatNotFound), errors.Is(err, services.ErrLoadNotFound),
		errors.Is(err, services.ErrLoadNotOnBoat):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrLoadAlreadyTaken):
		apierrors.Forbidden(c, err.Error())
	default:
		apierrors.InternalError(c, "")
	}
}
