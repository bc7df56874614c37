package core

import (
	"gymcore/internal/ledger"
	"gymcore/pkg/domain"
)

// newBalanceRule requires the client's ledger balance to cover the
// session's unit price. This is the only sufficiency check in the system;
// the ledger itself enforces no floor.
func newBalanceRule(l *ledger.Ledger) domain.Rule {
	return domain.Rule{
		Name: "sufficient_balance",
		Check: func(ctx *domain.RegistrationContext) bool {
			ok, err := l.CanPay(ctx.Client.ID, ctx.Session.Price())
			if err != nil {
				return false
			}
			return ok
		},
		Message: "Client doesn't have enough balance",
	}
}
