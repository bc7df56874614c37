package domain

import "testing"

func TestRuleSetEvaluatesEveryRule(t *testing.T) {
	rs := NewRuleSet()
	rs.AddRule("first", func(*RegistrationContext) bool { return false }, "first failed")
	rs.AddRule("second", func(*RegistrationContext) bool { return false }, "second failed")

	if rs.EvaluateAll(&RegistrationContext{}) {
		t.Fatalf("expected evaluation to fail")
	}
	messages := rs.FailureMessages()
	if len(messages) != 2 {
		t.Fatalf("expected both rules to run, got %d messages", len(messages))
	}
	if messages[0] != "first failed" || messages[1] != "second failed" {
		t.Fatalf("expected messages in evaluation order, got %v", messages)
	}
}

func TestRuleSetOverwritesPreviousFailures(t *testing.T) {
	pass := true
	rs := NewRuleSet()
	rs.AddRule("toggle", func(*RegistrationContext) bool { return pass }, "toggle failed")

	pass = false
	if rs.EvaluateAll(&RegistrationContext{}) {
		t.Fatalf("expected failing evaluation")
	}
	if len(rs.FailureMessages()) != 1 {
		t.Fatalf("expected one failure message")
	}

	pass = true
	if !rs.EvaluateAll(&RegistrationContext{}) {
		t.Fatalf("expected passing evaluation")
	}
	if len(rs.FailureMessages()) != 0 {
		t.Fatalf("expected failure list to be cleared, got %v", rs.FailureMessages())
	}
}

func TestRuleSetEmptyPasses(t *testing.T) {
	rs := NewRuleSet()
	if !rs.EvaluateAll(&RegistrationContext{}) {
		t.Fatalf("empty rule set must pass")
	}
}

func TestResultMerge(t *testing.T) {
	var result Result
	result.Merge(Result{})
	if result.Failed() {
		t.Fatalf("merging an empty result must not fail")
	}
	result.Merge(Result{Violations: []Violation{{Rule: "capacity", Message: "full"}}})
	if !result.Failed() {
		t.Fatalf("expected failure after merging a violation")
	}
	if result.Violations[0].Rule != "capacity" {
		t.Fatalf("unexpected violation: %+v", result.Violations[0])
	}
}

func TestRegisterAppendsInOrder(t *testing.T) {
	rs := NewRuleSet()
	rs.Register(Rule{Name: "a", Check: func(*RegistrationContext) bool { return false }, Message: "a"})
	rs.AddRule("b", func(*RegistrationContext) bool { return false }, "b")

	rs.EvaluateAll(&RegistrationContext{})
	res := rs.LastResult()
	if len(res.Violations) != 2 || res.Violations[0].Rule != "a" || res.Violations[1].Rule != "b" {
		t.Fatalf("unexpected violations: %+v", res.Violations)
	}
}
