// Package quota gates ingestion admission against the account's plan.
package quota

import "github.com/clipforge/clipforge/internal/ingest/models"

// Ledger enforces the monthly upload ceiling. The check is advisory soft
// enforcement: it runs before any external work, but the counter itself is
// only bumped at final commit, so quota is consumed on success only.
type Ledger struct{}

func NewLedger() *Ledger {
	return &Ledger{}
}

// Admit returns models.ErrQuotaExceeded when the account is at or over its
// limit. It never mutates the counter.
func (l *Ledger) Admit(a *models.Account) error {
	if a == nil {
		return models.ErrInvalidArgument
	}
	if a.UploadLimit > 0 && a.UploadsThisPeriod >= a.UploadLimit {
		return models.ErrQuotaExceeded
	}
	return nil
}
