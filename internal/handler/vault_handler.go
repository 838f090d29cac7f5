package handler

import (
	"net/http"

	"github.com/ara-kahkejian/DonationTracking/internal/logic"
	"github.com/ara-kahkejian/DonationTracking/internal/model"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type VaultHandler struct {
	vaultLogic *logic.VaultLogic
}

func NewVaultHandler(db *gorm.DB) *VaultHandler {
	return &VaultHandler{
		vaultLogic: logic.NewVaultLogic(db),
	}
}

// GetBalance 获取金库余额
func (h *VaultHandler) GetBalance(c *gin.Context) {
	balance, err := h.vaultLogic.GetBalance()
	if err != nil {
		HandleError(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "", gin.H{"balance": balance})
}

// GetTransactions 获取金库流水
func (h *VaultHandler) GetTransactions(c *gin.Context) {
	transactions, err := h.vaultLogic.GetTransactions()
	if err != nil {
		HandleError(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "", transactions)
}

// CreateTransaction 记录金库流水
func (h *VaultHandler) CreateTransaction(c *gin.Context) {
	var req CreateVaultTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	transaction, err := h.vaultLogic.RecordTransaction(
		model.VaultTransactionType(req.Type), req.Amount, req.Description, req.InitiativeId)
	if err != nil {
		HandleError(c, err)
		return
	}

	SuccessResponse(c, http.StatusCreated, "流水记录成功", transaction)
}
