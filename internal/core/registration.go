package core

import (
	"context"
	"fmt"

	"gymcore/pkg/dates"
	"gymcore/pkg/domain"
)

// registrationRules assembles the standard rule set in its required
// evaluation order. Order affects only message ordering, never the
// pass/fail outcome, since evaluation does not short-circuit.
func (s *Service) registrationRules() *domain.RuleSet {
	rs := domain.NewRuleSet()
	rs.Register(newCapacityRule())
	rs.Register(newFutureScheduleRule(s.clock))
	rs.Register(newSeniorForumRule(s.clock))
	rs.Register(newGenderForumRule())
	rs.Register(newBalanceRule(s.ledger))
	return rs
}

// RegisterClientToSession registers a member to a session. Structural
// violations (unknown client, duplicate roster entry) abort with an error
// and zero side effects. Rule-set failures are a normal outcome: nothing
// is mutated, every collected failure reason is recorded to the history,
// and the call returns nil. On full rule-set success the unit price moves
// from the client's account to the gym's account and the client joins the
// roster, in that exact order.
func (sec *Secretary) RegisterClientToSession(ctx context.Context, client *domain.Client, session *domain.Session) error {
	if err := sec.checkActive(); err != nil {
		return err
	}
	s := sec.svc

	return s.run(ctx, "register_client_to_session", func(context.Context) (AuditStatus, string, error) {
		if !s.hasClient(client) {
			return AuditStatusError, "", ErrClientNotRegistered
		}
		if session.HasClient(client) {
			return AuditStatusError, "", ErrDuplicateRegistration
		}

		rules := s.registrationRules()
		if !rules.EvaluateAll(&domain.RegistrationContext{Client: client, Session: session}) {
			for _, message := range rules.FailureMessages() {
				s.addHistory(fmt.Sprintf("Failed registration: %s", message))
			}
			return AuditStatusRejected, fmt.Sprintf("registration rejected for %s: %d rule(s) failed",
				client.Name, len(rules.FailureMessages())), nil
		}

		price := session.Price()
		if err := s.ledger.Withdraw(client.ID, price); err != nil {
			return AuditStatusError, "", err
		}
		if err := s.ledger.Deposit(s.accountID, price); err != nil {
			return AuditStatusError, "", err
		}
		session.AddClient(client)

		line := fmt.Sprintf("Registered client: %s to session: %s on %s for price: %d",
			client.Name, session.Activity(), dates.MustFormat(session.Schedule()), int(price))
		s.addHistory(line)
		return AuditStatusSuccess, line, nil
	})
}
