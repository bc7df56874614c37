package core

import (
	"context"
	"fmt"
	"strings"

	"gymcore/pkg/dates"
	"gymcore/pkg/domain"
)

// Secretary is the staff-orchestration role: every administrative workflow
// runs through the active secretary. Appointing a successor deactivates
// the previous handle, whose operations then fail with
// ErrInactiveSecretary.
type Secretary struct {
	domain.Person
	Salary int

	svc    *Service
	active bool
}

// AppointSecretary appoints a new secretary, deactivating the previous one
// and opening a ledger account for the new appointee.
func (s *Service) AppointSecretary(ctx context.Context, name string, gender domain.Gender, birthDate string, balance float64, salary int) (*Secretary, error) {
	sec := &Secretary{
		Person: domain.Person{
			ID:        s.newPersonID(),
			Name:      name,
			Gender:    gender,
			BirthDate: birthDate,
		},
		Salary: salary,
		svc:    s,
		active: true,
	}
	return sec, s.run(ctx, "appoint_secretary", func(context.Context) (AuditStatus, string, error) {
		if s.secretary != nil {
			s.secretary.active = false
		}
		s.ledger.Open(sec.ID, balance)
		s.secretary = sec
		line := fmt.Sprintf("A new secretary has started working at the gym: %s", name)
		s.addHistory(line)
		return AuditStatusSuccess, line, nil
	})
}

// Active reports whether the secretary may still perform actions.
func (sec *Secretary) Active() bool { return sec.active }

func (sec *Secretary) checkActive() error {
	if !sec.active {
		return ErrInactiveSecretary
	}
	return nil
}

// RegisterClient registers a new member, opens their ledger account, and
// subscribes them to gym-wide broadcasts.
func (sec *Secretary) RegisterClient(ctx context.Context, name string, gender domain.Gender, birthDate string, balance float64) (*domain.Client, error) {
	if err := sec.checkActive(); err != nil {
		return nil, err
	}
	s := sec.svc

	var client *domain.Client
	err := s.run(ctx, "register_client", func(context.Context) (AuditStatus, string, error) {
		age, err := dates.Age(birthDate, s.clock.Now())
		if err != nil {
			return AuditStatusError, "", err
		}
		if age < LegalAge {
			return AuditStatusError, "", ErrUnderage
		}
		for _, member := range s.clients {
			if member.Name == name && member.Gender == gender && member.BirthDate == birthDate {
				return AuditStatusError, "", ErrDuplicateClient
			}
		}

		client = domain.NewClient(domain.Person{
			ID:        s.newPersonID(),
			Name:      name,
			Gender:    gender,
			BirthDate: birthDate,
		})
		s.ledger.Open(client.ID, balance)
		s.clients = append(s.clients, client)
		s.Subscribe(client)
		line := fmt.Sprintf("Registered new client: %s", name)
		s.addHistory(line)
		return AuditStatusSuccess, line, nil
	})
	return client, err
}

// UnregisterClient removes a member from the registry and the broadcast
// list. The ledger account is kept; accounts live for the process
// lifetime.
func (sec *Secretary) UnregisterClient(ctx context.Context, client *domain.Client) error {
	if err := sec.checkActive(); err != nil {
		return err
	}
	s := sec.svc

	return s.run(ctx, "unregister_client", func(context.Context) (AuditStatus, string, error) {
		if !s.hasClient(client) {
			return AuditStatusError, "", ErrClientNotRegistered
		}
		s.removeClient(client)
		s.Unsubscribe(client)
		line := fmt.Sprintf("Unregistered client: %s", client.Name)
		s.addHistory(line)
		return AuditStatusSuccess, line, nil
	})
}

// HireInstructor adds an instructor to the staff registry and opens their
// ledger account.
func (sec *Secretary) HireInstructor(ctx context.Context, name string, gender domain.Gender, birthDate string, balance float64, hourlyRate int, qualifications []domain.ActivityType) (*domain.Instructor, error) {
	if err := sec.checkActive(); err != nil {
		return nil, err
	}
	s := sec.svc

	var instructor *domain.Instructor
	err := s.run(ctx, "hire_instructor", func(context.Context) (AuditStatus, string, error) {
		age, err := dates.Age(birthDate, s.clock.Now())
		if err != nil {
			return AuditStatusError, "", err
		}
		if age < LegalAge {
			return AuditStatusError, "", ErrUnderage
		}
		for _, staff := range s.instructors {
			if staff.Name == name && staff.Gender == gender && staff.BirthDate == birthDate {
				return AuditStatusError, "", ErrDuplicateInstructor
			}
		}

		instructor = domain.NewInstructor(domain.Person{
			ID:        s.newPersonID(),
			Name:      name,
			Gender:    gender,
			BirthDate: birthDate,
		}, hourlyRate, qualifications)
		s.ledger.Open(instructor.ID, balance)
		s.instructors = append(s.instructors, instructor)
		line := fmt.Sprintf("Hired new instructor: %s with salary per hour: %d", name, hourlyRate)
		s.addHistory(line)
		return AuditStatusSuccess, line, nil
	})
	return instructor, err
}

// ScheduleSession creates a session through the factory and appends it to
// the schedule. The instructor's session count increments as soon as
// qualification passes, even when the session is then rejected as a
// duplicate.
func (sec *Secretary) ScheduleSession(ctx context.Context, activity domain.ActivityType, schedule string, forum domain.Forum, instructor *domain.Instructor) (*domain.Session, error) {
	if err := sec.checkActive(); err != nil {
		return nil, err
	}
	s := sec.svc

	var session *domain.Session
	err := s.run(ctx, "schedule_session", func(context.Context) (AuditStatus, string, error) {
		created, err := domain.NewSession(activity, schedule, forum, instructor)
		if err != nil {
			return AuditStatusError, "", err
		}
		for _, existing := range s.sessions {
			if existing.Activity() == activity && existing.Schedule() == schedule &&
				existing.Forum() == forum && existing.Instructor() == instructor {
				return AuditStatusError, "", ErrDuplicateSession
			}
		}
		session = created
		s.sessions = append(s.sessions, session)
		line := fmt.Sprintf("Created new session: %s on %s with instructor: %s",
			activity, dates.MustFormat(schedule), instructor.Name)
		s.addHistory(line)
		return AuditStatusSuccess, line, nil
	})
	return session, err
}

// NotifySession delivers a message to every client in the session roster.
func (sec *Secretary) NotifySession(ctx context.Context, session *domain.Session, message string) error {
	if err := sec.checkActive(); err != nil {
		return err
	}
	s := sec.svc

	return s.run(ctx, "notify_session", func(context.Context) (AuditStatus, string, error) {
		for _, client := range session.Roster() {
			client.Notify(message)
		}
		line := fmt.Sprintf("A message was sent to everyone registered for session %s on %s : %s",
			session.Activity(), dates.MustFormat(session.Schedule()), message)
		s.addHistory(line)
		return AuditStatusSuccess, line, nil
	})
}

// NotifyDate delivers a message to the clients of every session scheduled
// on the given DD-MM-YYYY date. History records the broadcast only when at
// least one session matched.
func (sec *Secretary) NotifyDate(ctx context.Context, date, message string) error {
	if err := sec.checkActive(); err != nil {
		return err
	}
	s := sec.svc

	return s.run(ctx, "notify_date", func(context.Context) (AuditStatus, string, error) {
		sent := false
		for _, session := range s.sessions {
			if strings.HasPrefix(session.Schedule(), date) {
				for _, client := range session.Roster() {
					client.Notify(message)
				}
				sent = true
			}
		}
		if !sent {
			return AuditStatusRejected, fmt.Sprintf("no sessions on %s", date), nil
		}
		line := fmt.Sprintf("A message was sent to everyone registered for a session on %s : %s",
			dates.MustFormat(date), message)
		s.addHistory(line)
		return AuditStatusSuccess, line, nil
	})
}

// NotifyAll broadcasts a message to every subscribed client.
func (sec *Secretary) NotifyAll(ctx context.Context, message string) error {
	if err := sec.checkActive(); err != nil {
		return err
	}
	s := sec.svc

	return s.run(ctx, "notify_all", func(context.Context) (AuditStatus, string, error) {
		for _, client := range s.subscribers {
			client.Notify(message)
		}
		line := fmt.Sprintf("A message was sent to all gym clients: %s", message)
		s.addHistory(line)
		return AuditStatusSuccess, line, nil
	})
}
