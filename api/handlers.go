package api

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/rooban25/expense-tracker/db"
	"github.com/rooban25/expense-tracker/models"
)

type Handler struct {
	storage   *db.Storage
	jwtSecret string
}

func NewHandler(s *db.Storage, jwtSecret string) *Handler {
	return &Handler{storage: s, jwtSecret: jwtSecret}
}

// Welcome godoc
// @Summary Welcome message
// @Security ApiKeyAuth
// @Produce plain
// @Success 200 {string} string
// @Router / [get]
func (h *Handler) Welcome(c *gin.Context) {
	c.String(http.StatusOK, "Welcome to the Personal Expense Tracker API")
}

// validateTransaction applies the strict presence check: empty strings and
// a zero amount all count as missing. A legitimate amount of 0 is
// therefore rejected, which matches the deployed behavior.
func validateTransaction(req *models.CreateTransaction) string {
	if req.Type == "" || req.Category == "" || req.Amount == 0 || req.Date == "" {
		return "all fields (type, category, amount, date) are required"
	}
	return ""
}

// CreateTransaction godoc
// @Summary Add a transaction
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param transaction body models.CreateTransaction true "Transaction"
// @Success 201 {object} models.CreateTransactionResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /transactions [post]
func (h *Handler) CreateTransaction(c *gin.Context) {
	var req models.CreateTransaction
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "amount must be a number"})
		return
	}

	if msg := validateTransaction(&req); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	transaction := models.Transaction{
		Type:        req.Type,
		Category:    req.Category,
		Amount:      req.Amount,
		Date:        req.Date,
		Description: req.Description,
	}
	if err := h.storage.CreateTransaction(&transaction); err != nil {
		log.Printf("create transaction: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to add transaction"})
		return
	}

	c.JSON(http.StatusCreated, models.CreateTransactionResponse{ID: transaction.ID, Message: "Transaction added successfully"})
}

// GetTransactions godoc
// @Summary List transactions
// @Security ApiKeyAuth
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(10)
// @Success 200 {array} models.Transaction
// @Failure 500 {object} models.ErrorResponse
// @Router /transactions [get]
func (h *Handler) GetTransactions(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil || limit < 1 {
		limit = 10
	}

	transactions, err := h.storage.GetTransactions(page, limit)
	if err != nil {
		log.Printf("list transactions: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list transactions"})
		return
	}
	c.JSON(http.StatusOK, transactions)
}

// GetTransaction godoc
// @Summary Get a transaction by id
// @Security ApiKeyAuth
// @Produce json
// @Param id path int true "Transaction ID"
// @Success 200 {object} models.Transaction
// @Failure 404 {object} models.MessageResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /transactions/{id} [get]
func (h *Handler) GetTransaction(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Transaction not found"})
		return
	}

	transaction, err := h.storage.GetTransaction(id)
	if err != nil {
		log.Printf("get transaction %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get transaction"})
		return
	}
	if transaction == nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Transaction not found"})
		return
	}
	c.JSON(http.StatusOK, transaction)
}

// UpdateTransaction godoc
// @Summary Replace a transaction
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param id path int true "Transaction ID"
// @Param transaction body models.CreateTransaction true "Transaction"
// @Success 200 {object} models.MessageResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.MessageResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /transactions/{id} [put]
func (h *Handler) UpdateTransaction(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Transaction not found"})
		return
	}

	var req models.CreateTransaction
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "amount must be a number"})
		return
	}

	if msg := validateTransaction(&req); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	transaction := models.Transaction{
		ID:          id,
		Type:        req.Type,
		Category:    req.Category,
		Amount:      req.Amount,
		Date:        req.Date,
		Description: req.Description,
	}
	updated, err := h.storage.UpdateTransaction(&transaction)
	if err != nil {
		log.Printf("update transaction %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update transaction"})
		return
	}
	if !updated {
		c.JSON(http.StatusNotFound, gin.H{"message": "Transaction not found"})
		return
	}
	c.JSON(http.StatusOK, models.MessageResponse{Message: "Transaction updated successfully"})
}

// DeleteTransaction godoc
// @Summary Delete a transaction
// @Security ApiKeyAuth
// @Produce json
// @Param id path int true "Transaction ID"
// @Success 200 {object} models.MessageResponse
// @Failure 404 {object} models.MessageResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /transactions/{id} [delete]
func (h *Handler) DeleteTransaction(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Transaction not found"})
		return
	}

	deleted, err := h.storage.DeleteTransaction(id)
	if err != nil {
		log.Printf("delete transaction %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete transaction"})
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"message": "Transaction not found"})
		return
	}
	c.JSON(http.StatusOK, models.MessageResponse{Message: "Transaction deleted successfully"})
}
