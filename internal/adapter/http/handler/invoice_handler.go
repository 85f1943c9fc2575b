package handler

import (
	"context"
	"time"

	"settlement-ledger/internal/adapter/http/dto"
	"settlement-ledger/internal/core/domain"
	"settlement-ledger/internal/core/ports"
	"settlement-ledger/pkg/apperror"
	"settlement-ledger/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// InvoiceHandler handles invoice endpoints.
type InvoiceHandler struct {
	invoiceSvc ports.InvoiceService
}

// NewInvoiceHandler creates a new InvoiceHandler.
func NewInvoiceHandler(invoiceSvc ports.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{invoiceSvc: invoiceSvc}
}

// Create handles POST /api/v1/invoices.
func (h *InvoiceHandler) Create(c *gin.Context) {
	h.create(c, h.invoiceSvc.CreateInvoice)
}

// CreateForRecipient handles POST /api/v1/invoices/recipient.
func (h *InvoiceHandler) CreateForRecipient(c *gin.Context) {
	h.create(c, h.invoiceSvc.CreateInvoiceForRecipient)
}

func (h *InvoiceHandler) create(c *gin.Context, op func(ctx context.Context, req ports.InvoiceRequest) (*domain.Invoice, error)) {
	var req dto.InvoiceCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	invoice, err := op(c.Request.Context(), ports.InvoiceRequest{
		WalletID: uuid.MustParse(req.WalletID),
		Amount:   req.Amount,
		Currency: domain.Currency(req.Currency),
		Memo:     req.Memo,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, toInvoiceResponse(invoice))
}

func toInvoiceResponse(inv *domain.Invoice) dto.InvoiceResponse {
	return dto.InvoiceResponse{
		ID:       inv.ID.String(),
		WalletID: inv.WalletID.String(),
		Memo:     inv.Memo,
		FixedAmount: dto.MoneyResponse{
			Amount:   inv.FixedAmount.Amount,
			Currency: string(inv.FixedAmount.Currency),
		},
		SettlementAmount: dto.MoneyResponse{
			Amount:   inv.SettlementAmount.Amount,
			Currency: string(inv.SettlementAmount.Currency),
		},
		QuoteRate: inv.QuoteRate,
		CreatedAt: inv.CreatedAt.UTC().Format(time.RFC3339),
		ExpiresAt: inv.ExpiresAt.UTC().Format(time.RFC3339),
	}
}
