package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"multilang-summarizer/cmd/api/dto"
	"multilang-summarizer/cmd/api/services"
)

// HealthHandler godoc
// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  dto.HealthResponseDTO
// @Failure      503  {object}  dto.HealthResponseDTO
// @Router       /health [get]
func HealthHandler(pingMongo func(ctx context.Context) error) gin.HandlerFunc {
	return func(c *gin.Context) {
		resp := dto.HealthResponseDTO{
			Status:  "healthy",
			Message: "MultiLanguage AI Text Summarizer is running!",
		}
		if pingMongo == nil {
			c.JSON(http.StatusOK, resp)
			return
		}

		if err := pingMongo(c.Request.Context()); err != nil {
			resp.Status = "degraded"
			resp.Mongo = "down"
			c.JSON(http.StatusServiceUnavailable, resp)
			return
		}
		resp.Mongo = "up"
		c.JSON(http.StatusOK, resp)
	}
}

// ListSummaryLogsHandler godoc
// @Summary      List summary logs
// @Description  Recent summarize requests (no input text is stored)
// @Tags         system
// @Param        source  query  string  false  "text | url | pdf | youtube"
// @Param        limit   query  int     false  "max items (<=100)"
// @Produce      json
// @Success      200  {object}  dto.SummaryLogListDTO
// @Failure      500  {object}  dto.ErrorResponseDTO
// @Router       /logs [get]
func ListSummaryLogsHandler(svc *services.SummaryLogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
		resp, err := svc.Recent(c.Request.Context(), c.Query("source"), limit)
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}
