package main

import (
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"gymcore/internal/core"
	"gymcore/internal/logging"
	"gymcore/pkg/domain"
)

// runDemo seeds a gym and drives every workflow once: membership, session
// scheduling, registrations (including a couple of rejections), broadcast
// notifications, and payroll.
func runDemo(ctx context.Context, out io.Writer, log zerolog.Logger, name string) error {
	svc := core.New(name,
		core.WithLogger(logging.NewAdapter(log, "core")),
		core.WithMetricsRecorder(core.NewExpvarMetricsRecorder("gymctl_metrics")),
	)

	secretary, err := svc.AppointSecretary(ctx, "Noa Levi", domain.Female, "10-05-1985", 0, 5000)
	if err != nil {
		return err
	}

	instructor, err := secretary.HireInstructor(ctx, "Dana Ben-David", domain.Female, "02-02-1990", 1000, 50,
		[]domain.ActivityType{domain.Pilates, domain.ThaiBoxing})
	if err != nil {
		return err
	}

	avi, err := secretary.RegisterClient(ctx, "Avi Cohen", domain.Male, "15-04-1990", 100)
	if err != nil {
		return err
	}
	rina, err := secretary.RegisterClient(ctx, "Rina Mizrahi", domain.Female, "01-01-1950", 30)
	if err != nil {
		return err
	}

	pilates, err := secretary.ScheduleSession(ctx, domain.Pilates, "25-12-2030 15:00", domain.ForumAll, instructor)
	if err != nil {
		return err
	}

	// Succeeds: future session, open forum, sufficient balance.
	if err := secretary.RegisterClientToSession(ctx, avi, pilates); err != nil {
		return err
	}
	// Rejected: Rina cannot cover the Pilates price.
	if err := secretary.RegisterClientToSession(ctx, rina, pilates); err != nil {
		return err
	}

	if err := secretary.NotifySession(ctx, pilates, "Bring your own mat"); err != nil {
		return err
	}
	if err := secretary.NotifyAll(ctx, "The gym closes early on Friday"); err != nil {
		return err
	}

	if err := secretary.PaySalaries(ctx); err != nil {
		return err
	}

	fmt.Fprintln(out, svc.Report())
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Action history:")
	for _, line := range svc.History() {
		fmt.Fprintln(out, line)
	}
	return nil
}
