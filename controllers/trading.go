package controllers

import (
	"bourse/ledger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type TradingController struct {
	Ledger *ledger.Ledger
	Logger *zap.SugaredLogger
}

type tradeParams struct {
	Quantity int64 `json:"quantity" binding:"required"`
}

func (tc TradingController) Buy(c *gin.Context) {
	companyID, ok := pathID(c)
	if !ok {
		return
	}

	var payload tradeParams
	if err := c.BindJSON(&payload); err != nil {
		RespondBadRequestErr(c, []error{ErrInvalidRequest})
		return
	}

	if err := tc.Ledger.BuyShares(CurrentUserID(c), companyID, payload.Quantity); err != nil {
		RespondLedgerErr(c, tc.Logger, err)
		return
	}

	RespondOK(c, nil)
}

func (tc TradingController) Sell(c *gin.Context) {
	companyID, ok := pathID(c)
	if !ok {
		return
	}

	var payload tradeParams
	if err := c.BindJSON(&payload); err != nil {
		RespondBadRequestErr(c, []error{ErrInvalidRequest})
		return
	}

	if err := tc.Ledger.SellShares(CurrentUserID(c), companyID, payload.Quantity); err != nil {
		RespondLedgerErr(c, tc.Logger, err)
		return
	}

	RespondOK(c, gin.H{"success": true})
}
