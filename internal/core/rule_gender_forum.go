package core

import "gymcore/pkg/domain"

// newGenderForumRule requires the client's gender to match a single-gender
// forum. Mixed forums always pass.
func newGenderForumRule() domain.Rule {
	return domain.Rule{
		Name: "gender_forum",
		Check: func(ctx *domain.RegistrationContext) bool {
			switch ctx.Session.Forum() {
			case domain.ForumMale:
				return ctx.Client.Gender == domain.Male
			case domain.ForumFemale:
				return ctx.Client.Gender == domain.Female
			default:
				return true
			}
		},
		Message: "Client's gender doesn't match the session's gender requirements",
	}
}
