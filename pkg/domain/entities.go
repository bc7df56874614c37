// Package domain defines the core entities, the activity catalog, and the
// registration rule evaluation primitives used by gymcore.
package domain

// Gender classifies a person for forum-restriction checks.
type Gender string

// Recognised genders.
const (
	Male   Gender = "Male"
	Female Gender = "Female"
)

// Forum restricts the audience a session admits.
type Forum string

// Supported forum classifiers.
const (
	// ForumAll admits every member.
	ForumAll Forum = "All"
	// ForumSeniors admits members aged 65 and above.
	ForumSeniors Forum = "Seniors"
	// ForumMale and ForumFemale admit a single gender.
	ForumMale   Forum = "Male"
	ForumFemale Forum = "Female"
)

// ActivityType identifies a category of scheduled session.
type ActivityType string

// The closed activity catalog. Not extensible at runtime.
const (
	Pilates        ActivityType = "Pilates"
	MachinePilates ActivityType = "MachinePilates"
	ThaiBoxing     ActivityType = "ThaiBoxing"
	Ninja          ActivityType = "Ninja"
)

// ActivityInfo fixes the unit price and roster capacity for an activity type.
type ActivityInfo struct {
	Price    float64
	Capacity int
}

// Activities maps every supported activity type to its pricing and capacity.
var Activities = map[ActivityType]ActivityInfo{
	Pilates:        {Price: 60, Capacity: 30},
	MachinePilates: {Price: 80, Capacity: 10},
	ThaiBoxing:     {Price: 100, Capacity: 20},
	Ninja:          {Price: 150, Capacity: 5},
}

// Info returns the catalog entry for the activity type.
func (t ActivityType) Info() (ActivityInfo, bool) {
	info, ok := Activities[t]
	return info, ok
}

// Person carries the identity attributes shared by members and staff.
type Person struct {
	ID        int
	Name      string
	Gender    Gender
	BirthDate string // DD-MM-YYYY
}

// Client is a gym member. Notifications delivered to the client are retained
// for inspection.
type Client struct {
	Person
	notifications []string
}

// NewClient wraps a person identity as a member.
func NewClient(p Person) *Client {
	return &Client{Person: p}
}

// Notify appends a message to the client's inbox.
func (c *Client) Notify(message string) {
	c.notifications = append(c.notifications, message)
}

// Notifications returns a copy of the received messages in delivery order.
func (c *Client) Notifications() []string {
	out := make([]string, len(c.notifications))
	copy(out, c.notifications)
	return out
}

// Instructor is a staff member paid per conducted session.
type Instructor struct {
	Person
	HourlyRate     int
	Qualifications []ActivityType

	sessionCount int
}

// NewInstructor wraps a person identity as an instructor.
func NewInstructor(p Person, hourlyRate int, qualifications []ActivityType) *Instructor {
	return &Instructor{
		Person:         p,
		HourlyRate:     hourlyRate,
		Qualifications: append([]ActivityType(nil), qualifications...),
	}
}

// IsQualified reports whether the instructor may conduct the activity type.
func (i *Instructor) IsQualified(t ActivityType) bool {
	for _, q := range i.Qualifications {
		if q == t {
			return true
		}
	}
	return false
}

// AddSession increments the running count of sessions bound to the
// instructor. The count feeds payroll and is never reset by it.
func (i *Instructor) AddSession() {
	i.sessionCount++
}

// SessionCount returns the number of sessions constructed for the instructor.
func (i *Instructor) SessionCount() int {
	return i.sessionCount
}
