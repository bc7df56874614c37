package core

import (
	"gymcore/pkg/dates"
	"gymcore/pkg/domain"
)

// newFutureScheduleRule requires the session's scheduled time to be
// strictly after the clock's reference instant. A malformed schedule
// string fails the rule rather than erroring.
func newFutureScheduleRule(clock Clock) domain.Rule {
	return domain.Rule{
		Name: "future_schedule",
		Check: func(ctx *domain.RegistrationContext) bool {
			return dates.IsFuture(ctx.Session.Schedule(), clock.Now())
		},
		Message: "Session is not in the future",
	}
}
