// Package core implements the gym orchestration service: membership,
// session scheduling, the registration rule pipeline, payroll, broadcast
// notifications, and the action history.
package core

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"gymcore/internal/ledger"
	"gymcore/pkg/domain"
)

// LegalAge is the minimum age for members and staff.
const LegalAge = 18

// firstPersonID seeds the sequential identifier counter for people.
const firstPersonID = 1111

// Structural errors: malformed preconditions abort the call with zero side
// effects and propagate to the caller.
var (
	ErrUnderage               = errors.New("client must be at least 18 years old to register")
	ErrDuplicateClient        = errors.New("the client is already registered")
	ErrDuplicateInstructor    = errors.New("the instructor is already registered")
	ErrClientNotRegistered    = errors.New("the client is not registered with the gym and cannot enroll in lessons")
	ErrDuplicateRegistration  = errors.New("the client is already registered for this lesson")
	ErrDuplicateSession       = errors.New("cannot add duplicate session")
	ErrInactiveSecretary      = errors.New("former secretaries are not permitted to perform actions")
	ErrNoSecretary            = errors.New("no secretary appointed")
	ErrInstructorNotQualified = domain.ErrInstructorNotQualified
)

// Service is the shared gym context: the ledger, the member and staff
// registries, the scheduled sessions, the broadcast subscriber list, and
// the action history. It is constructed explicitly and passed by
// reference; there are no package-level singletons.
type Service struct {
	name      string
	ledger    *ledger.Ledger
	accountID int

	clients     []*domain.Client
	instructors []*domain.Instructor
	sessions    []*domain.Session
	secretary   *Secretary
	subscribers []*domain.Client

	history      []string
	nextPersonID int

	rng     *rand.Rand
	clock   Clock
	logger  Logger
	audit   AuditRecorder
	metrics MetricsRecorder
	tracer  Tracer
}

// New constructs a gym service, opening the gym's own ledger account under
// a freshly generated identifier with a zero balance.
func New(name string, opts ...Option) *Service {
	s := &Service{
		name:         name,
		nextPersonID: firstPersonID,
		clock:        ClockFunc(func() time.Time { return time.Now().UTC() }),
		logger:       noopLogger{},
		audit:        noopAuditRecorder{},
		metrics:      noopMetricsRecorder{},
		tracer:       noopTracer{},
	}
	for _, opt := range opts {
		opt(s)
	}
	s.ledger = ledger.New(s.rng)
	s.accountID = s.ledger.NewUniqueID()
	s.ledger.Open(s.accountID, 0)
	return s
}

// Name returns the gym's display name.
func (s *Service) Name() string { return s.name }

// AccountID returns the gym's own ledger account identifier.
func (s *Service) AccountID() int { return s.accountID }

// Ledger exposes the balance store.
func (s *Service) Ledger() *ledger.Ledger { return s.ledger }

// Balance returns the gym account balance.
func (s *Service) Balance() (float64, error) {
	return s.ledger.Balance(s.accountID)
}

// newPersonID allocates the next sequential person identifier and reserves
// it against the random account-id range.
func (s *Service) newPersonID() int {
	id := s.nextPersonID
	s.nextPersonID++
	s.ledger.ReserveID(id)
	return id
}

// addHistory appends a line to the ordered action history.
func (s *Service) addHistory(line string) {
	s.history = append(s.history, line)
}

// History returns a copy of the action history in append order.
func (s *Service) History() []string {
	out := make([]string, len(s.history))
	copy(out, s.history)
	return out
}

// Clients returns a snapshot of the member registry.
func (s *Service) Clients() []*domain.Client {
	out := make([]*domain.Client, len(s.clients))
	copy(out, s.clients)
	return out
}

// Instructors returns a snapshot of the instructor registry.
func (s *Service) Instructors() []*domain.Instructor {
	out := make([]*domain.Instructor, len(s.instructors))
	copy(out, s.instructors)
	return out
}

// Sessions returns a snapshot of the scheduled sessions.
func (s *Service) Sessions() []*domain.Session {
	out := make([]*domain.Session, len(s.sessions))
	copy(out, s.sessions)
	return out
}

// Secretary returns the active secretary, or nil before any appointment.
func (s *Service) Secretary() *Secretary { return s.secretary }

func (s *Service) hasClient(c *domain.Client) bool {
	for _, member := range s.clients {
		if member == c {
			return true
		}
	}
	return false
}

func (s *Service) removeClient(c *domain.Client) {
	for i, member := range s.clients {
		if member == c {
			s.clients = append(s.clients[:i], s.clients[i+1:]...)
			return
		}
	}
}

// Subscribe adds a client to the broadcast list.
func (s *Service) Subscribe(c *domain.Client) {
	s.subscribers = append(s.subscribers, c)
}

// Unsubscribe removes a client from the broadcast list. Removal is
// explicit; there is no deactivation flag consulted on delivery.
func (s *Service) Unsubscribe(c *domain.Client) {
	for i, sub := range s.subscribers {
		if sub == c {
			s.subscribers = append(s.subscribers[:i], s.subscribers[i+1:]...)
			return
		}
	}
}

// run wraps an operation with tracing, metrics, audit, and logging. The
// callback reports the audit status and a human-readable detail line.
func (s *Service) run(ctx context.Context, op string, fn func(ctx context.Context) (AuditStatus, string, error)) error {
	ctx, span := s.tracer.Start(ctx, op)
	started := time.Now()

	status, detail, err := fn(ctx)

	elapsed := time.Since(started)
	span.End(err)
	s.metrics.Observe(ctx, op, err == nil, elapsed)
	s.audit.Record(ctx, AuditEntry{
		ID:        uuid.NewString(),
		Operation: op,
		Status:    status,
		Detail:    detail,
		Duration:  elapsed,
		Timestamp: s.clock.Now(),
	})
	if err != nil {
		s.logger.Error(op+" failed", "error", err)
		return err
	}
	if status == AuditStatusRejected {
		s.logger.Info(op+" rejected", "detail", detail)
		return nil
	}
	s.logger.Debug(op, "detail", detail)
	return nil
}
