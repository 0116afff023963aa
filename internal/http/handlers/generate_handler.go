// README: AI field-extraction handler.
package handlers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"kottage/internal/ai"
)

// extractionTimeout bounds the model call; expiry surfaces as upstream
// unavailable so the user can retry.
const extractionTimeout = 30 * time.Second

type GenerateHandler struct {
	extractor ai.FieldExtractor
}

func NewGenerateHandler(extractor ai.FieldExtractor) *GenerateHandler {
	return &GenerateHandler{extractor: extractor}
}

type generateReq struct {
	Description string `json:"description"`
}

// FormFields handles POST /api/generate/form-fields. It returns the
// extraction result to the caller; merging into stored answers is a
// separate, explicit POST /api/form/extraction so a failed extraction can
// never partially merge.
func (h *GenerateHandler) FormFields(c *gin.Context) {
	var req generateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	if strings.TrimSpace(req.Description) == "" {
		writeError(c, http.StatusBadRequest, "missing or invalid description")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), extractionTimeout)
	defer cancel()

	result, err := h.extractor.ExtractFields(ctx, req.Description)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, result)
}
