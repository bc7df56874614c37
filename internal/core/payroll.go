package core

import (
	"context"

	"gymcore/pkg/domain"
)

// Staff is a payroll entry. The PayStaff type switch recognises
// secretaries (fixed salary) and instructors (hourly rate times
// accumulated session count); any other entry flips the aggregate flag.
type Staff any

// PayStaff moves each staff member's pay from the organization account to
// their personal account. Best-effort, not transactional: transfers applied
// before an unrecognized entry stand, and the session counts feeding
// hourly pay are not reset here.
func (s *Service) PayStaff(orgAccount int, staff []Staff) (bool, error) {
	paid := true
	for _, entry := range staff {
		switch member := entry.(type) {
		case *Secretary:
			if err := s.transfer(orgAccount, member.ID, float64(member.Salary)); err != nil {
				return false, err
			}
		case *domain.Instructor:
			pay := float64(member.HourlyRate * member.SessionCount())
			if err := s.transfer(orgAccount, member.ID, pay); err != nil {
				return false, err
			}
		default:
			paid = false
		}
	}
	return paid, nil
}

func (s *Service) transfer(from, to int, amount float64) error {
	if err := s.ledger.Withdraw(from, amount); err != nil {
		return err
	}
	return s.ledger.Deposit(to, amount)
}

// PaySalaries pays the secretary and every instructor from the gym
// account and records the aggregate outcome in the history.
func (sec *Secretary) PaySalaries(ctx context.Context) error {
	if err := sec.checkActive(); err != nil {
		return err
	}
	s := sec.svc

	return s.run(ctx, "pay_salaries", func(context.Context) (AuditStatus, string, error) {
		staff := make([]Staff, 0, len(s.instructors)+1)
		staff = append(staff, sec)
		for _, instructor := range s.instructors {
			staff = append(staff, instructor)
		}

		paid, err := s.PayStaff(s.accountID, staff)
		if err != nil {
			return AuditStatusError, "", err
		}
		if !paid {
			line := "Failed to pay salaries to all employees"
			s.addHistory(line)
			return AuditStatusRejected, line, nil
		}
		line := "Salaries have been paid to all employees"
		s.addHistory(line)
		return AuditStatusSuccess, line, nil
	})
}
