package domain

import "fmt"

// Session is one scheduled activity instance. Type, schedule, forum, and
// instructor are fixed at construction; only the roster grows.
type Session struct {
	activity   ActivityType
	schedule   string // DD-MM-YYYY HH:MM
	forum      Forum
	instructor *Instructor
	roster     []*Client
}

// UnsupportedActivityError reports a catalog entry without pricing metadata.
// It guards the factory against an inconsistent catalog and should be
// unreachable in a correctly configured build.
type UnsupportedActivityError struct {
	Type ActivityType
}

func (e UnsupportedActivityError) Error() string {
	return fmt.Sprintf("unsupported activity type %s", e.Type)
}

// NewSession constructs a session after verifying the instructor's
// qualification. Construction increments the instructor's session count;
// this is the single side effect on the instructor and happens once
// qualification passes.
func NewSession(activity ActivityType, schedule string, forum Forum, instructor *Instructor) (*Session, error) {
	if !instructor.IsQualified(activity) {
		return nil, ErrInstructorNotQualified
	}
	if _, ok := activity.Info(); !ok {
		return nil, UnsupportedActivityError{Type: activity}
	}
	instructor.AddSession()
	return &Session{
		activity:   activity,
		schedule:   schedule,
		forum:      forum,
		instructor: instructor,
	}, nil
}

// ErrInstructorNotQualified is returned when an instructor lacks the
// qualification for the requested activity type.
var ErrInstructorNotQualified = fmt.Errorf("instructor is not qualified to conduct this session type")

// Activity returns the session's activity type.
func (s *Session) Activity() ActivityType { return s.activity }

// Schedule returns the session's date-time string.
func (s *Session) Schedule() string { return s.schedule }

// Forum returns the audience classifier.
func (s *Session) Forum() Forum { return s.forum }

// Instructor returns the conducting instructor.
func (s *Session) Instructor() *Instructor { return s.instructor }

// Capacity returns the fixed roster bound for the session's activity type.
func (s *Session) Capacity() int {
	info, _ := s.activity.Info()
	return info.Capacity
}

// Price returns the unit price for joining the session.
func (s *Session) Price() float64 {
	info, _ := s.activity.Info()
	return info.Price
}

// IsFull reports whether the roster has reached capacity.
func (s *Session) IsFull() bool {
	return len(s.roster) >= s.Capacity()
}

// HasClient reports roster membership.
func (s *Session) HasClient(c *Client) bool {
	for _, member := range s.roster {
		if member == c {
			return true
		}
	}
	return false
}

// AddClient appends the client to the roster unless the session is full.
// A full session declines silently; the capacity gate proper lives in the
// registration rule set, this is the final safety net.
func (s *Session) AddClient(c *Client) {
	if s.IsFull() {
		return
	}
	s.roster = append(s.roster, c)
}

// Roster returns a copy of the current roster.
func (s *Session) Roster() []*Client {
	out := make([]*Client, len(s.roster))
	copy(out, s.roster)
	return out
}
