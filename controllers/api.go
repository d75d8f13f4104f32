package controllers

import (
	"errors"
	"net/http"

	"bourse/ledger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var (
	ErrInvalidRequest = errors.New("invalid request")
	ErrAccessDenied   = errors.New("access denied")
	ErrInternalError  = errors.New("internal error")
)

type apiResponse struct {
	Errors []string `json:"errors,omitempty"`
	Data   any      `json:"data,omitempty"`
}

func RespondOK(c *gin.Context, obj any) {
	c.JSON(http.StatusOK, apiResponse{Data: obj})
}

func RespondBadRequestErr(c *gin.Context, errs []error) {
	c.AbortWithStatusJSON(http.StatusBadRequest, apiResponse{Errors: errorStrings(errs)})
}

func RespondCustomStatusErr(c *gin.Context, status int, errs []error) {
	c.AbortWithStatusJSON(status, apiResponse{Errors: errorStrings(errs)})
}

func RespondInternalErr(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusInternalServerError, apiResponse{Errors: []string{ErrInternalError.Error()}})
}

func errorStrings(errs []error) []string {
	messages := make([]string, 0, len(errs))
	for _, err := range errs {
		messages = append(messages, err.Error())
	}
	return messages
}

// RespondLedgerErr maps a ledger failure onto the API envelope: typed
// ledger failures surface verbatim, not-found as 404; anything else is
// logged and hidden behind a 500.
func RespondLedgerErr(c *gin.Context, logger *zap.SugaredLogger, err error) {
	switch {
	case errors.Is(err, ledger.ErrCompanyNotFound),
		errors.Is(err, ledger.ErrStockNotFound),
		errors.Is(err, ledger.ErrUserNotFound):
		RespondCustomStatusErr(c, http.StatusNotFound, []error{err})
	case ledger.IsLedgerError(err):
		RespondBadRequestErr(c, []error{err})
	default:
		logger.Errorw("ledger operation failed", "error", err)
		RespondInternalErr(c)
	}
}
