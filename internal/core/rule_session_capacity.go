package core

import "gymcore/pkg/domain"

// newCapacityRule requires a free roster slot in the target session.
func newCapacityRule() domain.Rule {
	return domain.Rule{
		Name: "session_capacity",
		Check: func(ctx *domain.RegistrationContext) bool {
			return !ctx.Session.IsFull()
		},
		Message: "No available spots for session",
	}
}
