package core

import (
	"fmt"
	"strings"

	"gymcore/pkg/dates"
	"gymcore/pkg/domain"
)

// Report renders the gym's current state: name, secretary, balance,
// clients, employees, and sessions with participant counts.
func (s *Service) Report() string {
	var b strings.Builder

	fmt.Fprintf(&b, "Gym Name: %s\n", s.name)
	if s.secretary != nil {
		b.WriteString("Gym Secretary: " + s.secretaryLine(s.secretary))
	}
	gymBalance, _ := s.ledger.Balance(s.accountID)
	fmt.Fprintf(&b, "Gym Balance: %.0f\n\n", gymBalance)

	b.WriteString("Clients Data:\n")
	for _, client := range s.clients {
		fmt.Fprintf(&b, "ID: %d | Name: %s | Gender: %s | Birthday: %s | Age: %d | Balance: %.0f\n",
			client.ID, client.Name, client.Gender, client.BirthDate,
			s.ageOf(client.Person), s.balanceOf(client.ID))
	}
	b.WriteString("\n")

	b.WriteString("Employees Data:\n")
	for _, instructor := range s.instructors {
		quals := make([]string, 0, len(instructor.Qualifications))
		for _, q := range instructor.Qualifications {
			quals = append(quals, string(q))
		}
		fmt.Fprintf(&b, "ID: %d | Name: %s | Gender: %s | Birthday: %s | Age: %d | Balance: %.0f | Role: Instructor | Salary per Hour: %d | Certified Classes: %s\n",
			instructor.ID, instructor.Name, instructor.Gender, instructor.BirthDate,
			s.ageOf(instructor.Person), s.balanceOf(instructor.ID), instructor.HourlyRate,
			strings.Join(quals, ", "))
	}
	if s.secretary != nil {
		b.WriteString(s.secretaryLine(s.secretary))
	}
	b.WriteString("\n")

	b.WriteString("Sessions Data:\n")
	for _, session := range s.sessions {
		fmt.Fprintf(&b, "Session Type: %s | Date: %s | Forum: %s | Instructor: %s | Participants: %d/%d\n",
			session.Activity(), session.Schedule(), session.Forum(), session.Instructor().Name,
			len(session.Roster()), session.Capacity())
	}

	return strings.TrimRight(b.String(), "\n")
}

func (s *Service) secretaryLine(sec *Secretary) string {
	return fmt.Sprintf("ID: %d | Name: %s | Gender: %s | Birthday: %s | Age: %d | Balance: %.0f | Role: Secretary | Salary per Month: %d\n",
		sec.ID, sec.Name, sec.Gender, sec.BirthDate, s.ageOf(sec.Person), s.balanceOf(sec.ID), sec.Salary)
}

func (s *Service) ageOf(p domain.Person) int {
	age, err := dates.Age(p.BirthDate, s.clock.Now())
	if err != nil {
		return 0
	}
	return age
}

func (s *Service) balanceOf(id int) float64 {
	balance, err := s.ledger.Balance(id)
	if err != nil {
		return 0
	}
	return balance
}
