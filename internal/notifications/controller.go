package notifications

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"xplorium/internal/shared/utils/response"
)

// Controller defines the notifications controller interface
type Controller interface {
	UpdatePreference(c *gin.Context)
	ListPreferences(c *gin.Context)
}

type controller struct {
	service Service
}

// NewController creates a new notifications controller instance
func NewController(service Service) Controller {
	return &controller{service: service}
}

// UpdatePreference toggles an email opt-out for one notification type.
// Public on purpose: unsubscribe links must work without an account.
func (ctrl *controller) UpdatePreference(c *gin.Context) {
	var req UpdatePreferenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid preference request", nil, err.Error())
		return
	}

	if err := ctrl.service.UpdatePreference(c.Request.Context(), &req); err != nil {
		response.RespondJSON(c, "error", http.StatusInternalServerError, err.Error(), nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Notification preference updated successfully", nil, nil)
}

func (ctrl *controller) ListPreferences(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		response.RespondJSON(c, "error", http.StatusBadRequest, "email query parameter is required", nil, nil)
		return
	}

	prefs, err := ctrl.service.ListPreferences(c.Request.Context(), email)
	if err != nil {
		response.RespondJSON(c, "error", http.StatusInternalServerError, err.Error(), nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Notification preferences retrieved successfully", prefs, nil)
}
