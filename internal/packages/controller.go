package packages

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"xplorium/internal/shared/utils/response"
)

// Controller defines the packages controller interface
type Controller interface {
	CreatePackage(c *gin.Context)
	GetPackage(c *gin.Context)
	ListPackages(c *gin.Context)
	ListActivePackages(c *gin.Context)
	UpdatePackage(c *gin.Context)
	DeletePackage(c *gin.Context)
}

type controller struct {
	service Service
}

// NewController creates a new packages controller instance
func NewController(service Service) Controller {
	return &controller{service: service}
}

func (ctrl *controller) CreatePackage(c *gin.Context) {
	var req CreatePackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid package request", nil, err.Error())
		return
	}

	pkg, err := ctrl.service.CreatePackage(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, ErrDuplicateName) {
			response.RespondJSON(c, "error", http.StatusConflict, err.Error(), nil, nil)
			return
		}
		response.RespondJSON(c, "error", http.StatusInternalServerError, err.Error(), nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusCreated, "Package created successfully", pkg, nil)
}

func (ctrl *controller) GetPackage(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid package ID", nil, err.Error())
		return
	}

	pkg, err := ctrl.service.GetPackage(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrPackageNotFound) {
			response.RespondJSON(c, "error", http.StatusNotFound, err.Error(), nil, nil)
			return
		}
		response.RespondJSON(c, "error", http.StatusInternalServerError, err.Error(), nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Package retrieved successfully", pkg, nil)
}

func (ctrl *controller) ListPackages(c *gin.Context) {
	pkgs, err := ctrl.service.ListPackages(c.Request.Context())
	if err != nil {
		response.RespondJSON(c, "error", http.StatusInternalServerError, err.Error(), nil, nil)
		return
	}
	response.RespondJSON(c, "success", http.StatusOK, "Packages retrieved successfully", pkgs, nil)
}

func (ctrl *controller) ListActivePackages(c *gin.Context) {
	pkgs, err := ctrl.service.ListActivePackages(c.Request.Context())
	if err != nil {
		response.RespondJSON(c, "error", http.StatusInternalServerError, err.Error(), nil, nil)
		return
	}
	response.RespondJSON(c, "success", http.StatusOK, "Packages retrieved successfully", pkgs, nil)
}

func (ctrl *controller) UpdatePackage(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid package ID", nil, err.Error())
		return
	}

	var req UpdatePackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid package request", nil, err.Error())
		return
	}

	pkg, err := ctrl.service.UpdatePackage(c.Request.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, ErrPackageNotFound):
			response.RespondJSON(c, "error", http.StatusNotFound, err.Error(), nil, nil)
		case errors.Is(err, ErrDuplicateName):
			response.RespondJSON(c, "error", http.StatusConflict, err.Error(), nil, nil)
		default:
			response.RespondJSON(c, "error", http.StatusInternalServerError, err.Error(), nil, nil)
		}
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Package updated successfully", pkg, nil)
}

func (ctrl *controller) DeletePackage(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid package ID", nil, err.Error())
		return
	}

	if err := ctrl.service.DeletePackage(c.Request.Context(), id); err != nil {
		if errors.Is(err, ErrPackageNotFound) {
			response.RespondJSON(c, "error", http.StatusNotFound, err.Error(), nil, nil)
			return
		}
		response.RespondJSON(c, "error", http.StatusInternalServerError, err.Error(), nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Package deleted successfully", nil, nil)
}
