// internal/handlers/common.go
package handlers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/doceviva/doceria-backend/internal/i18n"
	"github.com/doceviva/doceria-backend/internal/services"
	"github.com/doceviva/doceria-backend/internal/utils"
)

func parseIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		utils.BadRequestResponse(c, "Invalid ID", nil)
		return 0, false
	}
	return uint(id), true
}

// respondServiceError maps the service error taxonomy onto HTTP responses.
// notFoundKey and conflictKey pick the resource-specific message; ErrInUse
// gets inUseKey when the caller provides one.
func respondServiceError(c *gin.Context, err error, notFoundKey, conflictKey, inUseKey string) {
	lang := utils.GetLangFromContext(c)

	switch {
	case errors.Is(err, services.ErrNotFound):
		utils.NotFoundResponse(c, notFoundKey)
	case errors.Is(err, services.ErrDuplicateName):
		utils.ConflictResponse(c, i18n.T(lang, conflictKey))
	case errors.Is(err, services.ErrInUse):
		utils.ConflictResponse(c, i18n.T(lang, inUseKey))
	case errors.Is(err, services.ErrInvalidInput):
		utils.BadRequestResponse(c, "", nil)
	default:
		utils.InternalErrorResponse(c, "")
	}
}
