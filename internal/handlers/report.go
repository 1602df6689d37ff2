// internal/handlers/report.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/doceviva/doceria-backend/internal/i18n"
	"github.com/doceviva/doceria-backend/internal/services"
	"github.com/doceviva/doceria-backend/internal/utils"
)

type ReportHandler struct {
	reportService *services.ReportService
}

func NewReportHandler(reportService *services.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// GET /reports/dashboard
func (h *ReportHandler) GetDashboard(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	dashboard, err := h.reportService.Dashboard(c.Query("start"), c.Query("end"))
	if err != nil {
		if err == services.ErrInvalidInput {
			utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyInvalidDateRange), nil)
			return
		}
		utils.InternalErrorResponse(c, "")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"dashboard": dashboard,
	})
}
