package handler

import (
	"time"

	"settlement-ledger/internal/adapter/http/dto"
	"settlement-ledger/internal/core/domain"
	"settlement-ledger/internal/core/ports"
	"settlement-ledger/pkg/apperror"
	"settlement-ledger/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SettlementHandler handles settlement endpoints.
type SettlementHandler struct {
	settlementSvc ports.SettlementService
	journal       ports.LedgerJournal
}

// NewSettlementHandler creates a new SettlementHandler.
func NewSettlementHandler(settlementSvc ports.SettlementService, journal ports.LedgerJournal) *SettlementHandler {
	return &SettlementHandler{settlementSvc: settlementSvc, journal: journal}
}

// Settle handles POST /api/v1/settlements.
func (h *SettlementHandler) Settle(c *gin.Context) {
	var req dto.SettleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	svcReq := ports.SettleRequest{
		PaymentID:         uuid.MustParse(req.PaymentID),
		SenderWalletID:    uuid.MustParse(req.SenderWalletID),
		RecipientWalletID: uuid.MustParse(req.RecipientWalletID),
		Amount:            req.Amount,
		Currency:          domain.Currency(req.Currency),
		Memo:              req.Memo,
	}
	if req.Fee != nil {
		svcReq.Fee = &ports.FeeSpec{
			Amount:   req.Fee.Amount,
			Currency: domain.Currency(req.Fee.Currency),
		}
	}

	tx, err := h.settlementSvc.Settle(c.Request.Context(), svcReq)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, toTransactionResponse(tx))
}

// GetTransaction handles GET /api/v1/transactions/:id.
func (h *SettlementHandler) GetTransaction(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.Validation("invalid transaction id"))
		return
	}

	tx, err := h.journal.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, apperror.ErrDatabaseError(err))
		return
	}
	if tx == nil {
		response.Error(c, apperror.ErrNotFound("transaction"))
		return
	}

	response.OK(c, toTransactionResponse(tx))
}

func toTransactionResponse(tx *domain.LedgerTransaction) dto.TransactionResponse {
	resp := dto.TransactionResponse{
		ID:        tx.ID.String(),
		PaymentID: tx.Metadata.PaymentID,
		Memo:      tx.Metadata.Memo,
		QuoteRate: tx.Metadata.QuoteRate,
		CreatedAt: tx.CreatedAt.UTC().Format(time.RFC3339),
		Postings:  make([]dto.PostingResponse, 0, len(tx.Postings)),
	}
	if tx.Metadata.QuoteValidUntil != nil {
		s := tx.Metadata.QuoteValidUntil.UTC().Format(time.RFC3339)
		resp.QuoteValidUntil = &s
	}
	for _, p := range tx.Postings {
		resp.Postings = append(resp.Postings, dto.PostingResponse{
			AccountPath: p.AccountPath,
			Direction:   string(p.Direction),
			Amount: dto.MoneyResponse{
				Amount:   p.Amount.Amount,
				Currency: string(p.Amount.Currency),
			},
		})
	}
	return resp
}
