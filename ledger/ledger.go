// Package ledger implements the share-issuance engine: founding
// companies, trading existing shares against wallet funds, and CEO
// capital investment that mints new shares under a policy-gated daily
// cap. Every mutating operation runs inside a single transaction guarded
// by a per-company lock; balance and holding checks are expressed as
// conditional updates so no read-then-write race can oversell shares or
// overdraw a wallet.
package ledger

import (
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Ledger struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
	policy Policy

	locks companyLocks
}

func New(db *gorm.DB, logger *zap.SugaredLogger, policy Policy) *Ledger {
	return &Ledger{
		db:     db,
		logger: logger,
		policy: policy,
	}
}

// Policy returns the policy the engine was started with.
func (l *Ledger) Policy() Policy {
	return l.policy
}
