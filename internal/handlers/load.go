package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/harborview/marina-api/internal/constants"
	"github.com/harborview/marina-api/internal/dto"
	apierrors "github.com/harborview/marina-api/internal/errors"
	"github.com/harborview/marina-api/internal/models"
	"github.com/harborview/marina-api/internal/services"
	"github.com/harborview/marina-api/internal/utils"
)

// LoadHandler coordinates the load HTTP handlers. Load endpoints carry
// no bearer authentication; an attached load is simply frozen until
// detached.
type LoadHandler struct {
	loadService *services.LoadService
	baseURL     string
}

// NewLoadHandler creates a new LoadHandler.
func NewLoadHandler(loadService *services.LoadService, baseURL string) *LoadHandler {
	return &LoadHandler{
		loadService: loadService,
		baseURL:     baseURL,
	}
}

// LoadRequest is the client payload for creating, editing, or replacing
// a load.
type LoadRequest struct {
	Item   string `json:"item"`
	Volume int    `json:"volume"`
	Weight int    `json:"weight"`
}

func (req LoadRequest) toInput() services.LoadInput {
	return services.LoadInput{
		Item:   req.Item,
		Volume: req.Volume,
		Weight: req.Weight,
	}
}

// Create handles POST /loads
func (h *LoadHandler) Create(c *gin.Context) {
	var req LoadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	load, err := h.loadService.Create(req.toInput())
	if err != nil {
		respondLoadError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToLoadDTO(*load, dto.RequestBase(c, h.baseURL)))
}

// List handles GET /loads: every load, paginated.
func (h *LoadHandler) List(c *gin.Context) {
	params := utils.GetPaginationParams(c, constants.DefaultLoadPageSize)

	loads, total, err := h.loadService.List(params)
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch loads")
		return
	}

	c.JSON(http.StatusOK, dto.ToLoadListDTO(loads, dto.RequestBase(c, h.baseURL), params, total))
}

// Update handles PATCH /loads/:load_id: any subset of fields, rejected
// while the load sits on a boat.
func (h *LoadHandler) Update(c *gin.Context) {
	load, ok := h.fetchLoad(c)
	if !ok {
		return
	}

	var req LoadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	load, err := h.loadService.Update(load, req.toInput())
	if err != nil {
		respondLoadError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToLoadDTO(*load, dto.RequestBase(c, h.baseURL)))
}

// Replace handles PUT /loads/:load_id: all fields required.
func (h *LoadHandler) Replace(c *gin.Context) {
	load, ok := h.fetchLoad(c)
	if !ok {
		return
	}

	var req LoadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	load, err := h.loadService.Replace(load, req.toInput())
	if err != nil {
		respondLoadError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToLoadDTO(*load, dto.RequestBase(c, h.baseURL)))
}

// Delete handles DELETE /loads/:load_id, rejected while the load sits
// on a boat.
func (h *LoadHandler) Delete(c *gin.Context) {
	load, ok := h.fetchLoad(c)
	if !ok {
		return
	}

	if err := h.loadService.Delete(load); err != nil {
		respondLoadError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *LoadHandler) fetchLoad(c *gin.Context) (*models.Load, bool) {
	loadID, err := strconv.ParseUint(c.Param("load_id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid load ID")
		return nil, false
	}

	load, err := h.loadService.Get(loadID)
	if err != nil {
		respondLoadError(c, err)
		return nil, false
	}

	return load, true
}

func respondLoadError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrInvalidProperty):
		apierrors.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrLoadNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrLoadAboardEdit), errors.Is(err, services.ErrLoadAboardDelete):
		apierrors.Forbidden(c, err.Error())
	default:
		apierrors.InternalError(c, "")
	}
}
