package core

import (
	"bytes"
	"context"
	"errors"
	"expvar"
	"strings"
	"testing"
	"time"

	"gymcore/pkg/domain"
)

type captureAuditRecorder struct {
	entries []AuditEntry
}

func (c *captureAuditRecorder) Record(_ context.Context, entry AuditEntry) {
	c.entries = append(c.entries, entry)
}

func (c *captureAuditRecorder) has(op string, status AuditStatus) bool {
	for _, entry := range c.entries {
		if entry.Operation == op && entry.Status == status {
			return true
		}
	}
	return false
}

type metricsCall struct {
	op      string
	success bool
}

type captureMetricsRecorder struct {
	calls []metricsCall
}

func (c *captureMetricsRecorder) Observe(_ context.Context, op string, success bool, _ time.Duration) {
	c.calls = append(c.calls, metricsCall{op: op, success: success})
}

func (c *captureMetricsRecorder) has(op string, success bool) bool {
	for _, call := range c.calls {
		if call.op == op && call.success == success {
			return true
		}
	}
	return false
}

type captureTracer struct {
	ended []spanRecord
}

type spanRecord struct {
	op  string
	err error
}

func (c *captureTracer) Start(ctx context.Context, op string) (context.Context, TraceSpan) {
	return ctx, &captureSpan{tracer: c, op: op}
}

func (c *captureTracer) has(op string, success bool) bool {
	for _, record := range c.ended {
		if record.op == op && (record.err == nil) == success {
			return true
		}
	}
	return false
}

type captureSpan struct {
	tracer *captureTracer
	op     string
}

func (s *captureSpan) End(err error) {
	s.tracer.ended = append(s.tracer.ended, spanRecord{op: s.op, err: err})
}

type captureLogger struct{ calls []string }

func (c *captureLogger) Debug(msg string, _ ...any) { c.calls = append(c.calls, "d:"+msg) }
func (c *captureLogger) Info(msg string, _ ...any)  { c.calls = append(c.calls, "i:"+msg) }
func (c *captureLogger) Warn(msg string, _ ...any)  { c.calls = append(c.calls, "w:"+msg) }
func (c *captureLogger) Error(msg string, _ ...any) { c.calls = append(c.calls, "e:"+msg) }

func TestServiceObservabilitySignals(t *testing.T) {
	ctx := context.Background()
	audit := &captureAuditRecorder{}
	metrics := &captureMetricsRecorder{}
	tracer := &captureTracer{}
	log := &captureLogger{}

	_, secretary := newTestGym(t,
		WithAuditRecorder(audit),
		WithMetricsRecorder(metrics),
		WithTracer(tracer),
		WithLogger(log),
	)
	instructor := hirePilatesInstructor(t, secretary)
	session := schedulePilates(t, secretary, instructor, "25-12-2025 15:00", domain.ForumAll)

	client, err := secretary.RegisterClient(ctx, "Avi", domain.Male, "15-04-1990", 100)
	if err != nil {
		t.Fatalf("register client: %v", err)
	}
	if err := secretary.RegisterClientToSession(ctx, client, session); err != nil {
		t.Fatalf("register to session: %v", err)
	}

	for _, op := range []string{"appoint_secretary", "hire_instructor", "schedule_session", "register_client", "register_client_to_session"} {
		if !audit.has(op, AuditStatusSuccess) {
			t.Fatalf("expected audit success entry for %s", op)
		}
		if !metrics.has(op, true) {
			t.Fatalf("expected metrics success entry for %s", op)
		}
		if !tracer.has(op, true) {
			t.Fatalf("expected finished span for %s", op)
		}
	}
	if len(log.calls) == 0 {
		t.Fatalf("expected logger to record calls")
	}

	// Audit timestamps come from the injected clock.
	if !audit.entries[0].Timestamp.Equal(testNow) {
		t.Fatalf("expected audit timestamp %v, got %v", testNow, audit.entries[0].Timestamp)
	}
	if audit.entries[0].ID == "" {
		t.Fatalf("expected audit entry id")
	}

	// A broke second client gets a rejected entry, not an error.
	broke, err := secretary.RegisterClient(ctx, "Rina", domain.Female, "01-01-1980", 1)
	if err != nil {
		t.Fatalf("register client: %v", err)
	}
	if err := secretary.RegisterClientToSession(ctx, broke, session); err != nil {
		t.Fatalf("rejection must not be an error: %v", err)
	}
	if !audit.has("register_client_to_session", AuditStatusRejected) {
		t.Fatalf("expected rejected audit entry")
	}
	if !metrics.has("register_client_to_session", true) {
		t.Fatalf("rejection still counts as a non-error observation")
	}

	// A structural failure produces error signals.
	outsider := domain.NewClient(domain.Person{ID: 98765, Name: "Outsider"})
	if err := secretary.RegisterClientToSession(ctx, outsider, session); !errors.Is(err, ErrClientNotRegistered) {
		t.Fatalf("expected ErrClientNotRegistered, got %v", err)
	}
	if !audit.has("register_client_to_session", AuditStatusError) {
		t.Fatalf("expected error audit entry")
	}
	if !metrics.has("register_client_to_session", false) {
		t.Fatalf("expected metrics error entry")
	}
	if !tracer.has("register_client_to_session", false) {
		t.Fatalf("expected failed span")
	}
}

func TestExpvarMetricsRecorderExports(t *testing.T) {
	recorder := NewExpvarMetricsRecorder("")
	if recorder.Name() == "" {
		t.Fatalf("expected recorder to have export name")
	}
	recorder.Observe(context.Background(), "test_op", true, 10*time.Millisecond)
	recorder.Observe(context.Background(), "test_op", false, 5*time.Millisecond)

	snapshot := recorder.Snapshot()
	if snapshot.DurationsMS["test_op"] <= 0 {
		t.Fatalf("expected positive duration, snapshot=%+v", snapshot)
	}
	if snapshot.Results["test_op"]["success"] != 1 || snapshot.Results["test_op"]["error"] != 1 {
		t.Fatalf("unexpected results snapshot=%+v", snapshot)
	}

	if v := expvar.Get(recorder.Name()); v == nil {
		t.Fatalf("expected expvar export to be registered")
	} else if !strings.Contains(v.String(), "test_op") {
		t.Fatalf("expected expvar output to contain operation: %s", v.String())
	}
}

func TestJSONTraceTracerExports(t *testing.T) {
	var buf bytes.Buffer
	tracer := NewJSONTracer(&buf)
	_, span := tracer.Start(context.Background(), "trace_op")
	span.End(nil)

	entries := tracer.Entries()
	if len(entries) != 1 {
		t.Fatalf("expected single span entry, got %d", len(entries))
	}
	if entries[0].Operation != "trace_op" || entries[0].Status != "success" {
		t.Fatalf("unexpected span entry: %+v", entries[0])
	}
	if !strings.Contains(buf.String(), "\"operation\":\"trace_op\"") {
		t.Fatalf("expected JSON output to contain operation: %q", buf.String())
	}
}

func TestNoopLogger(t *testing.T) {
	logger := noopLogger{}
	logger.Debug("test message", "key", "value")
	logger.Info("test message", "key", "value")
	logger.Warn("test message", "key", "value")
	logger.Error("test message", "key", "value")
}
