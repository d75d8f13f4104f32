package controllers

import (
	"bourse/ledger"
	"bourse/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type UsersController struct {
	DB     *gorm.DB
	Ledger *ledger.Ledger
	Logger *zap.SugaredLogger
}

func (u UsersController) GetCurrentUser(c *gin.Context) {
	user, err := models.GetUserByID(u.DB, CurrentUserID(c))
	if err != nil || user == nil {
		RespondInternalErr(c)
		return
	}

	RespondOK(c, user)
}

func (u UsersController) GetHoldings(c *gin.Context) {
	positions, err := u.Ledger.UserHoldings(CurrentUserID(c))
	if err != nil {
		RespondLedgerErr(c, u.Logger, err)
		return
	}

	RespondOK(c, positions)
}

func (u UsersController) GetTransactions(c *gin.Context) {
	records, err := models.GetUserTransactionRecords(u.DB, CurrentUserID(c), 100)
	if err != nil {
		u.Logger.Errorw("error loading transaction records", "error", err)
		RespondInternalErr(c)
		return
	}

	RespondOK(c, records)
}
