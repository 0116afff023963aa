// README: Wizard answer handlers: load, replace, merge, progress.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"kottage/internal/ai"
	"kottage/internal/http/middleware"
	"kottage/internal/modules/form"
)

type FormHandler struct {
	form *form.Service
}

func NewFormHandler(svc *form.Service) *FormHandler {
	return &FormHandler{form: svc}
}

// Load handles GET /api/form.
func (h *FormHandler) Load(c *gin.Context) {
	answers, err := h.form.Load(c.Request.Context(), middleware.CallerUID(c))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, answers)
}

// Replace handles PUT /api/form (wholesale overwrite).
func (h *FormHandler) Replace(c *gin.Context) {
	var answers form.Answers
	if err := c.ShouldBindJSON(&answers); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	if err := h.form.ReplaceAll(c.Request.Context(), middleware.CallerUID(c), answers); err != nil {
		writeServiceError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, answers)
}

// Merge handles PATCH /api/form (shallow merge, field-by-field saves).
func (h *FormHandler) Merge(c *gin.Context) {
	var partial form.Answers
	if err := c.ShouldBindJSON(&partial); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	answers, err := h.form.Merge(c.Request.Context(), middleware.CallerUID(c), partial)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, answers)
}

// ApplyExtraction handles POST /api/form/extraction. The body is an
// extraction result posted back verbatim; the server owns the mapping from
// extraction keys onto registry keys, so clients never hard-code it.
func (h *FormHandler) ApplyExtraction(c *gin.Context) {
	var res ai.ExtractionResult
	if err := c.ShouldBindJSON(&res); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	answers, err := h.form.MergeExtraction(c.Request.Context(), middleware.CallerUID(c), &res)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, answers)
}

// Progress handles GET /api/form/progress.
func (h *FormHandler) Progress(c *gin.Context) {
	p, err := h.form.Progress(c.Request.Context(), middleware.CallerUID(c))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, p)
}
