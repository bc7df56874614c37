package core

import (
	"gymcore/pkg/dates"
	"gymcore/pkg/domain"
)

// seniorAge is the minimum age admitted by a Seniors forum.
const seniorAge = 65

// newSeniorForumRule requires clients joining a Seniors session to be 65
// or older. Other forums apply no age restriction.
func newSeniorForumRule(clock Clock) domain.Rule {
	return domain.Rule{
		Name: "senior_forum",
		Check: func(ctx *domain.RegistrationContext) bool {
			if ctx.Session.Forum() != domain.ForumSeniors {
				return true
			}
			age, err := dates.Age(ctx.Client.BirthDate, clock.Now())
			if err != nil {
				return false
			}
			return age >= seniorAge
		},
		Message: "Client doesn't meet the age requirements for this session (Seniors)",
	}
}
