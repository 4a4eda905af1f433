package content

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"xplorium/internal/shared/utils/response"
)

// Controller defines the content controller interface
type Controller interface {
	CreateBlock(c *gin.Context)
	GetBlockBySlug(c *gin.Context)
	ListBlocks(c *gin.Context)
	UpdateBlock(c *gin.Context)
	DeleteBlock(c *gin.Context)
}

type controller struct {
	service Service
}

// NewController creates a new content controller instance
func NewController(service Service) Controller {
	return &controller{service: service}
}

func (ctrl *controller) CreateBlock(c *gin.Context) {
	var req CreateBlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid content request", nil, err.Error())
		return
	}

	createdBy, err := actorID(c)
	if err != nil {
		response.RespondJSON(c, "error", http.StatusUnauthorized, err.Error(), nil, nil)
		return
	}

	block, err := ctrl.service.CreateBlock(c.Request.Context(), &req, createdBy)
	if err != nil {
		switch {
		case errors.Is(err, ErrDuplicateSlug):
			response.RespondJSON(c, "error", http.StatusConflict, err.Error(), nil, nil)
		case errors.Is(err, ErrEmptySlug):
			response.RespondJSON(c, "error", http.StatusBadRequest, err.Error(), nil, nil)
		default:
			response.RespondJSON(c, "error", http.StatusInternalServerError, err.Error(), nil, nil)
		}
		return
	}

	response.RespondJSON(c, "success", http.StatusCreated, "Content block created successfully", block, nil)
}

func (ctrl *controller) GetBlockBySlug(c *gin.Context) {
	slug := c.Param("slug")

	block, err := ctrl.service.GetBlockBySlug(c.Request.Context(), slug)
	if err != nil {
		if errors.Is(err, ErrBlockNotFound) {
			response.RespondJSON(c, "error", http.StatusNotFound, err.Error(), nil, nil)
			return
		}
		response.RespondJSON(c, "error", http.StatusInternalServerError, err.Error(), nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Content block retrieved successfully", block, nil)
}

func (ctrl *controller) ListBlocks(c *gin.Context) {
	blocks, err := ctrl.service.ListBlocks(c.Request.Context())
	if err != nil {
		response.RespondJSON(c, "error", http.StatusInternalServerError, err.Error(), nil, nil)
		return
	}
	response.RespondJSON(c, "success", http.StatusOK, "Content blocks retrieved successfully", blocks, nil)
}

func (ctrl *controller) UpdateBlock(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid content block ID", nil, err.Error())
		return
	}

	var req UpdateBlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid content request", nil, err.Error())
		return
	}

	updatedBy, err := actorID(c)
	if err != nil {
		response.RespondJSON(c, "error", http.StatusUnauthorized, err.Error(), nil, nil)
		return
	}

	block, err := ctrl.service.UpdateBlock(c.Request.Context(), id, &req, updatedBy)
	if err != nil {
		if errors.Is(err, ErrBlockNotFound) {
			response.RespondJSON(c, "error", http.StatusNotFound, err.Error(), nil, nil)
			return
		}
		response.RespondJSON(c, "error", http.StatusInternalServerError, err.Error(), nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Content block updated successfully", block, nil)
}

func (ctrl *controller) DeleteBlock(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid content block ID", nil, err.Error())
		return
	}

	if err := ctrl.service.DeleteBlock(c.Request.Context(), id); err != nil {
		if errors.Is(err, ErrBlockNotFound) {
			response.RespondJSON(c, "error", http.StatusNotFound, err.Error(), nil, nil)
			return
		}
		response.RespondJSON(c, "error", http.StatusInternalServerError, err.Error(), nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Content block deleted successfully", nil, nil)
}

// actorID returns the authenticated user id set by the JWT middleware
func actorID(c *gin.Context) (uuid.UUID, error) {
	raw, exists := c.Get("user_id")
	if !exists {
		return uuid.Nil, errors.New("missing authenticated user")
	}
	str, ok := raw.(string)
	if !ok {
		return uuid.Nil, errors.New("invalid authenticated user id")
	}
	id, err := uuid.Parse(str)
	if err != nil {
		return uuid.Nil, errors.New("invalid authenticated user id")
	}
	return id, nil
}
