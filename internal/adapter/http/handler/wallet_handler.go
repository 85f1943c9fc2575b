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

// WalletHandler handles account and wallet provisioning endpoints.
type WalletHandler struct {
	walletSvc ports.WalletService
}

// NewWalletHandler creates a new WalletHandler.
func NewWalletHandler(walletSvc ports.WalletService) *WalletHandler {
	return &WalletHandler{walletSvc: walletSvc}
}

// CreateAccount handles POST /api/v1/accounts.
func (h *WalletHandler) CreateAccount(c *gin.Context) {
	var req dto.CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	role := domain.AccountRoleCustomer
	if req.Role != "" {
		role = domain.AccountRole(req.Role)
	}

	account, err := h.walletSvc.CreateAccount(c.Request.Context(), role)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, toAccountResponse(account))
}

// AddWallet handles POST /api/v1/accounts/:id/wallets.
func (h *WalletHandler) AddWallet(c *gin.Context) {
	accountID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.Validation("invalid account id"))
		return
	}

	var req dto.AddWalletRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	wallet, err := h.walletSvc.AddWallet(c.Request.Context(), accountID, domain.Currency(req.Currency))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, toWalletResponse(wallet))
}

func toAccountResponse(a *domain.Account) dto.AccountResponse {
	resp := dto.AccountResponse{
		ID:        a.ID.String(),
		Role:      string(a.Role),
		WalletIDs: make([]string, 0, len(a.WalletIDs)),
		CreatedAt: a.CreatedAt.UTC().Format(time.RFC3339),
	}
	for _, id := range a.WalletIDs {
		resp.WalletIDs = append(resp.WalletIDs, id.String())
	}
	if a.DefaultWalletID != nil {
		s := a.DefaultWalletID.String()
		resp.DefaultWalletID = &s
	}
	return resp
}

func toWalletResponse(w *domain.Wallet) dto.WalletResponse {
	return dto.WalletResponse{
		ID:        w.ID.String(),
		AccountID: w.AccountID.String(),
		Currency:  string(w.Currency),
		CreatedAt: w.CreatedAt.UTC().Format(time.RFC3339),
	}
}
