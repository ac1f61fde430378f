package controllers

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"gearguard/internal/services"
	"gearguard/pkg/utils"
)

type ReportController struct {
	reportService services.ReportServiceInterface
	logger        *zap.Logger
}

func NewReportController(reportService services.ReportServiceInterface, logger *zap.Logger) *ReportController {
	return &ReportController{reportService: reportService, logger: logger}
}

func (c *ReportController) GetAnalytics(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	res, err := c.reportService.GetAnalytics(reqCtx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Analytics fetched", http.StatusOK)
}

// ExportReport streams the analytics workbook as an xlsx download.
func (c *ReportController) ExportReport(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	file, err := c.reportService.ExportXLSX(reqCtx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	defer file.Close()

	response := ctx.Response()
	response.Header().Set(echo.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	response.Header().Set(echo.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, services.ExportFileName()))
	response.WriteHeader(http.StatusOK)

	if err := file.Write(response); err != nil {
		c.logger.Error("failed to stream report", zap.Error(err))
		return err
	}
	return nil
}
