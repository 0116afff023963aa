// README: Profile and booking handlers.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"kottage/internal/http/middleware"
	"kottage/internal/modules/profile"
	"kottage/internal/modules/schema"
)

type ProfileHandler struct {
	profiles *profile.Service
}

func NewProfileHandler(svc *profile.Service) *ProfileHandler {
	return &ProfileHandler{profiles: svc}
}

type profileReq struct {
	ProfileData schema.ProfilePayload `json:"profileData"`
}

// Create handles POST /api/profiles.
func (h *ProfileHandler) Create(c *gin.Context) {
	var req profileReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}

	p, err := h.profiles.Create(c.Request.Context(), middleware.CallerUID(c), req.ProfileData)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	writeJSON(c, http.StatusCreated, p)
}

// Get handles GET /api/profiles/:id.
func (h *ProfileHandler) Get(c *gin.Context) {
	p, err := h.profiles.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, p)
}

// Update handles PUT /api/profiles/:id, restricted to the owner.
func (h *ProfileHandler) Update(c *gin.Context) {
	var req profileReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}

	p, err := h.profiles.Update(c.Request.Context(), middleware.CallerUID(c), c.Param("id"), req.ProfileData)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, p)
}

// Delete handles DELETE /api/profiles/:id, restricted to the owner.
func (h *ProfileHandler) Delete(c *gin.Context) {
	if err := h.profiles.Delete(c.Request.Context(), middleware.CallerUID(c), c.Param("id")); err != nil {
		writeServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListBookings handles GET /api/bookings for the authenticated provider.
func (h *ProfileHandler) ListBookings(c *gin.Context) {
	bookings, err := h.profiles.ListBookings(c.Request.Context(), middleware.CallerUID(c))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"bookings": bookings})
}
