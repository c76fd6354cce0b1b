package api

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetSummary godoc
// @Summary Income/expense totals over an optional filter window
// @Security ApiKeyAuth
// @Produce json
// @Param startDate query string false "Inclusive lower date bound (YYYY-MM-DD)"
// @Param endDate query string false "Inclusive upper date bound (YYYY-MM-DD)"
// @Param category query string false "Category filter"
// @Success 200 {object} models.Summary
// @Failure 500 {object} models.ErrorResponse
// @Router /summary [get]
func (h *Handler) GetSummary(c *gin.Context) {
	summary, err := h.storage.GetSummary(
		c.Query("startDate"),
		c.Query("endDate"),
		c.Query("category"),
	)
	if err != nil {
		log.Printf("summary: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute summary"})
		return
	}
	c.JSON(http.StatusOK, summary)
}

// GetMonthlyReport godoc
// @Summary Expense totals grouped by month and category
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {array} models.MonthlyReport
// @Failure 500 {object} models.ErrorResponse
// @Router /reports/monthly [get]
func (h *Handler) GetMonthlyReport(c *gin.Context) {
	report, err := h.storage.GetMonthlyReport()
	if err != nil {
		log.Printf("monthly report: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute monthly report"})
		return
	}
	c.JSON(http.StatusOK, report)
}
