package ledger

import "errors"

// Typed failures returned by ledger operations. Each maps to a distinct
// human-readable message that the API layer surfaces verbatim; dynamic
// detail is added with fmt.Errorf("%w: ...") at the failure site.
var (
	ErrCompanyNotFound = errors.New("company not found")
	ErrStockNotFound   = errors.New("stock not found")
	ErrUserNotFound    = errors.New("user not found")

	ErrInvalidQuantity = errors.New("quantity must be at least 1")
	ErrDuplicateSymbol = errors.New("a company with that ticker already exists")

	ErrInsufficientSupply = errors.New("not enough shares available for purchase")
	ErrInsufficientFunds  = errors.New("insufficient funds")
	ErrInsufficientShares = errors.New("you do not hold that many shares")

	ErrNotAuthorized         = errors.New("only the largest shareholder can invest capital")
	ErrNoShareholders        = errors.New("a company with no shareholders cannot accept investment")
	ErrInvalidPrice          = errors.New("share price must be positive")
	ErrBelowMinimum          = errors.New("investment must cover at least one share")
	ErrRetainedExceedsIssued = errors.New("cannot retain more shares than are being issued")
	ErrNegativeRetained      = errors.New("retained shares cannot be negative")
	ErrNoActiveHolders       = errors.New("no active shareholders to dilute")
	ErrDailyCapExceeded      = errors.New("daily share issuance cap reached")
)

// IsLedgerError reports whether err is one of the typed failures above,
// i.e. safe to show to the caller as-is. Anything else is an internal
// error and must not leak.
func IsLedgerError(err error) bool {
	for _, known := range []error{
		ErrCompanyNotFound, ErrStockNotFound, ErrUserNotFound,
		ErrInvalidQuantity, ErrDuplicateSymbol,
		ErrInsufficientSupply, ErrInsufficientFunds, ErrInsufficientShares,
		ErrNotAuthorized, ErrNoShareholders, ErrInvalidPrice, ErrBelowMinimum,
		ErrRetainedExceedsIssued, ErrNegativeRetained, ErrNoActiveHolders,
		ErrDailyCapExceeded,
	} {
		if errors.Is(err, known) {
			return true
		}
	}

	return false
}
