package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/openbooks/general_ledger_app/internal/apperrors"
	portssvc "github.com/openbooks/general_ledger_app/internal/core/ports/services"
	"github.com/openbooks/general_ledger_app/internal/dto"
	"github.com/openbooks/general_ledger_app/internal/middleware"
)

// transactionHandler handles HTTP requests related to transactions and lines.
type transactionHandler struct {
	transactionService portssvc.TransactionSvcFacade
}

// newTransactionHandler creates a new transactionHandler.
func newTransactionHandler(ts portssvc.TransactionSvcFacade) *transactionHandler {
	return &transactionHandler{
		transactionService: ts,
	}
}

// RegisterTransactionRoutes registers routes related to transactions and the
// cross-transaction line finder.
func RegisterTransactionRoutes(rg *gin.RouterGroup, transactionService portssvc.TransactionSvcFacade) {
	h := newTransactionHandler(transactionService)

	transactions := rg.Group("/transactions")
	{
		transactions.POST("", h.saveTransaction)
		transactions.GET("", h.listTransactions)
		transactions.GET("/:id", h.getTransactionByID)
		transactions.DELETE("/:id", h.deleteTransaction)
	}

	rg.GET("/lines", h.listTransactionLines)
}

// saveTransaction godoc
// @Summary Create or update a transaction
// @Description Saves the full transaction aggregate atomically. Lines must sum to zero and reference existing accounts and players; a non-zero transactionID replaces the stored line set.
// @Tags transactions
// @Accept  json
// @Produce  json
// @Param   transaction body dto.SaveTransactionRequest true "Transaction with lines"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} map[string]string "Invalid input or integrity violation"
// @Failure 404 {object} map[string]string "Transaction not found for update"
// @Failure 500 {object} map[string]string "Failed to save transaction"
// @Router /transactions [post]
func (h *transactionHandler) saveTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.SaveTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for SaveTransaction", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	txn, err := h.transactionService.SaveTransaction(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Transaction not found"})
		} else {
			logger.Error("Failed to save transaction in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save transaction"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToTransactionResponse(txn))
}

// getTransactionByID godoc
// @Summary Get a transaction by id
// @Description Retrieves a transaction with all of its lines
// @Tags transactions
// @Produce  json
// @Param   id path int true "Transaction ID"
// @Success 200 {object} dto.TransactionResponse
// @Failure 404 {object} map[string]string "Transaction not found"
// @Failure 500 {object} map[string]string "Failed to retrieve transaction"
// @Router /transactions/{id} [get]
func (h *transactionHandler) getTransactionByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Transaction id must be an integer"})
		return
	}

	txn, err := h.transactionService.GetTransactionByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Transaction not found"})
		} else {
			logger.Error("Failed to get transaction from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve transaction"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn))
}

// listTransactions godoc
// @Summary List transactions
// @Description Retrieves a cursor-paginated page of transactions, newest first, matching the optional filters
// @Tags transactions
// @Produce  json
// @Param   dateFrom query string false "Inclusive lower date bound (YYYY-MM-DD)"
// @Param   dateTo query string false "Inclusive upper date bound (YYYY-MM-DD)"
// @Param   memo query string false "Memo ILIKE pattern"
// @Param   includeLines query bool false "Populate lines for each transaction"
// @Param   limit query int false "Page size (default 50)"
// @Param   nextToken query string false "Cursor from a previous page"
// @Success 200 {object} dto.ListTransactionsResponse
// @Failure 400 {object} map[string]string "Invalid query parameters or cursor"
// @Failure 500 {object} map[string]string "Failed to list transactions"
// @Router /transactions [get]
func (h *transactionHandler) listTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	resp, err := h.transactionService.ListTransactions(c.Request.Context(), params)
	if err != nil {
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) && appErr.Code == http.StatusBadRequest {
			c.JSON(http.StatusBadRequest, gin.H{"error": appErr.Message})
		} else {
			logger.Error("Failed to list transactions from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list transactions"})
		}
		return
	}

	c.JSON(http.StatusOK, resp)
}

// listTransactionLines godoc
// @Summary List transaction lines across transactions
// @Description Retrieves all lines matching the optional filters, ordered by parent transaction date descending then line number
// @Tags transactions
// @Produce  json
// @Param   dateFrom query string false "Inclusive lower date bound (YYYY-MM-DD)"
// @Param   dateTo query string false "Inclusive upper date bound (YYYY-MM-DD)"
// @Param   account query string false "Exact account number"
// @Param   player query string false "Exact player name"
// @Param   reconciled query bool false "Reconciliation status"
// @Param   memo query string false "Memo ILIKE pattern"
// @Success 200 {object} dto.ListTransactionLinesResponse
// @Failure 500 {object} map[string]string "Failed to list transaction lines"
// @Router /lines [get]
func (h *transactionHandler) listTransactionLines(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListTransactionLinesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	lines, err := h.transactionService.ListTransactionLines(c.Request.Context(), params)
	if err != nil {
		logger.Error("Failed to list transaction lines from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list transaction lines"})
		return
	}

	c.JSON(http.StatusOK, dto.ListTransactionLinesResponse{Lines: dto.ToTransactionLineResponses(lines)})
}

// deleteTransaction godoc
// @Summary Delete a transaction
// @Description Removes the transaction and all of its lines atomically
// @Tags transactions
// @Produce  json
// @Param   id path int true "Transaction ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Transaction not found"
// @Failure 500 {object} map[string]string "Failed to delete transaction"
// @Router /transactions/{id} [delete]
func (h *transactionHandler) deleteTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Transaction id must be an integer"})
		return
	}

	if err := h.transactionService.DeleteTransaction(c.Request.Context(), id); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Transaction not found"})
		} else {
			logger.Error("Failed to delete transaction in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete transaction"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
