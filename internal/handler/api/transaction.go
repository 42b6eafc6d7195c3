package api

import (
	"errors"
	"net/http"

	reqdto "order-engine/internal/handler/dto/request"
	resdto "order-engine/internal/handler/dto/response"
	"order-engine/internal/handler/middleware"
	"order-engine/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type TransactionHandler struct {
	transactionUseCase usecase.TransactionUseCase
	ledger             usecase.AuthorizationLedger
	confirmUseCase     usecase.ConfirmUseCase
}

func NewTransactionHandler(
	transactionUseCase usecase.TransactionUseCase,
	ledger usecase.AuthorizationLedger,
	confirmUseCase usecase.ConfirmUseCase,
) *TransactionHandler {
	return &TransactionHandler{
		transactionUseCase: transactionUseCase,
		ledger:             ledger,
		confirmUseCase:     confirmUseCase,
	}
}

// @Summary Start transaction
// @Description Open a new purchase transaction with a confirmation deadline
// @Tags transactions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.StartTransactionRequest true "Transaction request"
// @Success 201 {object} resdto.TransactionResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /transactions [post]
func (h *TransactionHandler) Start(c *gin.Context) {
	agentID, ok := middleware.GetAgentID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.StartTransactionRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	txn, err := h.transactionUseCase.Start(c.Request.Context(), req.ToParams(agentID))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromTransaction(txn))
}

// @Summary Get transaction
// @Description Get transaction by ID
// @Tags transactions
// @Produce json
// @Security BearerAuth
// @Param id path string true "Transaction ID"
// @Success 200 {object} resdto.TransactionResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /transactions/{id} [get]
func (h *TransactionHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid transaction ID format",
		})
		return
	}

	txn, err := h.transactionUseCase.Get(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrTransactionNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Transaction not found",
			})
		default:
			respondError(c, err)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromTransaction(txn))
}

// @Summary Confirm transaction
// @Description Confirm an in-progress transaction, producing the order. Safe to retry.
// @Tags transactions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Transaction ID"
// @Param request body reqdto.ConfirmTransactionRequest true "Confirm request"
// @Success 200 {object} resdto.ConfirmResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 501 {object} map[string]string
// @Router /transactions/{id}/confirm [post]
func (h *TransactionHandler) Confirm(c *gin.Context) {
	agentID, ok := middleware.GetAgentID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid transaction ID format",
		})
		return
	}

	var req reqdto.ConfirmTransactionRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	ord, err := h.confirmUseCase.Confirm(c.Request.Context(), req.ToParams(id, &agentID))
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrTransactionExpired):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Transaction has expired",
			})
		case errors.Is(err, usecase.ErrOrderNumberTaken):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Order number already in use",
			})
		default:
			respondError(c, err)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromConfirmedOrder(ord))
}

// @Summary Add authorize action
// @Description Attach a completed authorize action to an in-progress transaction
// @Tags transactions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Transaction ID"
// @Param request body reqdto.AddAuthorizationRequest true "Authorize action"
// @Success 201 {object} resdto.AuthorizationResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /transactions/{id}/authorizations [post]
func (h *TransactionHandler) AddAuthorization(c *gin.Context) {
	agentID, ok := middleware.GetAgentID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid transaction ID format",
		})
		return
	}

	var req reqdto.AddAuthorizationRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	record, err := h.ledger.Add(c.Request.Context(), req.ToParams(id, agentID))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromAuthorization(record))
}

// @Summary Cancel authorize action
// @Description Void an attached authorize action
// @Tags transactions
// @Produce json
// @Security BearerAuth
// @Param id path string true "Transaction ID"
// @Param authorizationId path string true "Authorize action ID"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /transactions/{id}/authorizations/{authorizationId} [delete]
func (h *TransactionHandler) CancelAuthorization(c *gin.Context) {
	agentID, ok := middleware.GetAgentID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid transaction ID format",
		})
		return
	}
	authorizationID, err := uuid.Parse(c.Param("authorizationId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid authorize action ID format",
		})
		return
	}

	if err := h.ledger.Cancel(c.Request.Context(), id, agentID, authorizationID); err != nil {
		switch {
		case errors.Is(err, usecase.ErrAuthorizationNotFound), errors.Is(err, usecase.ErrWrongTransaction):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Authorize action not found",
			})
		default:
			respondError(c, err)
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Replace authorize action
// @Description Atomically swap an attached authorize action for a new one
// @Tags transactions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Transaction ID"
// @Param authorizationId path string true "Authorize action ID"
// @Param request body reqdto.AddAuthorizationRequest true "Replacement authorize action"
// @Success 200 {object} resdto.AuthorizationResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /transactions/{id}/authorizations/{authorizationId} [put]
func (h *TransactionHandler) ReplaceAuthorization(c *gin.Context) {
	agentID, ok := middleware.GetAgentID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid transaction ID format",
		})
		return
	}
	authorizationID, err := uuid.Parse(c.Param("authorizationId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid authorize action ID format",
		})
		return
	}

	var req reqdto.AddAuthorizationRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	record, err := h.ledger.Replace(c.Request.Context(), authorizationID, req.ToParams(id, agentID))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromAuthorization(record))
}
