package controllers

import (
	"fmt"
	"net/http"

	"github.com/Kariqs/foodcourt-api/reports"
	"github.com/Kariqs/foodcourt-api/services"
	"github.com/gin-gonic/gin"
)

type DayEndController struct {
	dayEnd *services.DayEndService
}

// RunDayEnd streams the exported workbook back as a download.
func (c *DayEndController) RunDayEnd(ctx *gin.Context) {
	result, err := c.dayEnd.Run(ctx.Request.Context())
	if err != nil {
		respondWithServiceError(ctx, err, "no orders")
		return
	}

	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.Filename))
	ctx.Data(http.StatusOK, reports.ContentType, result.Data)
}

func (c *DayEndController) GetReports(ctx *gin.Context) {
	history, err := c.dayEnd.ListReports(ctx.Request.Context(), queryLimit(ctx))
	if err != nil {
		respondWithServiceError(ctx, err, "report not found")
		return
	}
	sendJSONResponse(ctx, http.StatusOK, history)
}
