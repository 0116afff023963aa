// README: Address list handlers (CRUD, enable toggle, home flag, search).
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"kottage/internal/http/middleware"
	"kottage/internal/maps"
	"kottage/internal/modules/address"
)

type AddressHandler struct {
	addresses *address.Service
	search    *maps.AddressService // nil when no maps API key is configured
}

func NewAddressHandler(svc *address.Service, search *maps.AddressService) *AddressHandler {
	return &AddressHandler{addresses: svc, search: search}
}

func (h *AddressHandler) kindAndID(c *gin.Context) (address.ListKind, int64, bool) {
	kind, err := address.ParseListKind(c.Param("kind"))
	if err != nil {
		writeError(c, http.StatusBadRequest, "unknown address list")
		return "", 0, false
	}
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		writeError(c, http.StatusBadRequest, "invalid address id")
		return "", 0, false
	}
	return kind, id, true
}

// List handles GET /api/addresses/:kind.
func (h *AddressHandler) List(c *gin.Context) {
	kind, err := address.ParseListKind(c.Param("kind"))
	if err != nil {
		writeError(c, http.StatusBadRequest, "unknown address list")
		return
	}
	list, err := h.addresses.List(c.Request.Context(), middleware.CallerUID(c), kind)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"addresses": list})
}

// Add handles POST /api/addresses/:kind.
func (h *AddressHandler) Add(c *gin.Context) {
	kind, err := address.ParseListKind(c.Param("kind"))
	if err != nil {
		writeError(c, http.StatusBadRequest, "unknown address list")
		return
	}
	var data address.NewRecordData
	if err := c.ShouldBindJSON(&data); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	rec, err := h.addresses.Add(c.Request.Context(), middleware.CallerUID(c), kind, data)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	writeJSON(c, http.StatusCreated, rec)
}

// Update handles PUT /api/addresses/:kind/:id.
func (h *AddressHandler) Update(c *gin.Context) {
	kind, id, ok := h.kindAndID(c)
	if !ok {
		return
	}
	var patch address.Patch
	if err := c.ShouldBindJSON(&patch); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	rec, err := h.addresses.Update(c.Request.Context(), middleware.CallerUID(c), kind, id, patch)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, rec)
}

// Remove handles DELETE /api/addresses/:kind/:id.
func (h *AddressHandler) Remove(c *gin.Context) {
	kind, id, ok := h.kindAndID(c)
	if !ok {
		return
	}
	if err := h.addresses.Remove(c.Request.Context(), middleware.CallerUID(c), kind, id); err != nil {
		writeServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ToggleEnabled handles POST /api/addresses/:kind/:id/toggle.
func (h *AddressHandler) ToggleEnabled(c *gin.Context) {
	kind, id, ok := h.kindAndID(c)
	if !ok {
		return
	}
	rec, err := h.addresses.ToggleEnabled(c.Request.Context(), middleware.CallerUID(c), kind, id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, rec)
}

// SetHome handles POST /api/addresses/:kind/:id/home (location list only).
func (h *AddressHandler) SetHome(c *gin.Context) {
	kind, id, ok := h.kindAndID(c)
	if !ok {
		return
	}
	rec, err := h.addresses.SetHome(c.Request.Context(), middleware.CallerUID(c), kind, id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, rec)
}

// Search handles GET /api/geocode?q=.
func (h *AddressHandler) Search(c *gin.Context) {
	if h.search == nil {
		writeError(c, http.StatusServiceUnavailable, "address search not configured")
		return
	}
	q := c.Query("q")
	if q == "" {
		writeError(c, http.StatusBadRequest, "missing query")
		return
	}
	candidates, err := h.search.Search(c.Request.Context(), q, 5)
	if err != nil {
		writeError(c, http.StatusBadGateway, "address search failed")
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"candidates": candidates})
}
