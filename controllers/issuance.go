package controllers

import (
	"bourse/ledger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type IssuanceController struct {
	Ledger *ledger.Ledger
	Logger *zap.SugaredLogger
}

func (ic IssuanceController) Invest(c *gin.Context) {
	companyID, ok := pathID(c)
	if !ok {
		return
	}

	type investParams struct {
		Amount         int64 `json:"amount" binding:"required"`
		RetainedShares int64 `json:"retained_shares"`
	}

	var payload investParams
	if err := c.BindJSON(&payload); err != nil {
		RespondBadRequestErr(c, []error{ErrInvalidRequest})
		return
	}

	result, err := ic.Ledger.InvestInCompany(CurrentUserID(c), companyID, payload.Amount, payload.RetainedShares)
	if err != nil {
		RespondLedgerErr(c, ic.Logger, err)
		return
	}

	RespondOK(c, result)
}
