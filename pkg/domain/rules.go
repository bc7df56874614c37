package domain

// RegistrationContext pairs one client with one session for rule
// evaluation. Contexts are built fresh per registration attempt and never
// stored.
type RegistrationContext struct {
	Client  *Client
	Session *Session
}

// Rule is a named predicate over a registration context with the message
// reported when the predicate fails. Rules are stateless and reusable.
type Rule struct {
	Name    string
	Check   func(*RegistrationContext) bool
	Message string
}

// Violation reports a failed rule evaluation.
type Violation struct {
	Rule    string
	Message string
}

// Result aggregates violations from one rule-set evaluation.
type Result struct {
	Violations []Violation
}

// Merge appends the other result's violations, preserving order.
func (r *Result) Merge(other Result) {
	if len(other.Violations) == 0 {
		return
	}
	r.Violations = append(r.Violations, other.Violations...)
}

// Failed reports whether any rule was violated.
func (r Result) Failed() bool {
	return len(r.Violations) > 0
}

// RuleSet is an ordered collection of rules plus the failure messages
// collected by the most recent evaluation.
type RuleSet struct {
	rules []Rule
	last  Result
}

// NewRuleSet constructs an empty rule set.
func NewRuleSet() *RuleSet {
	return &RuleSet{}
}

// AddRule appends a rule to the set. Evaluation order is insertion order.
func (rs *RuleSet) AddRule(name string, check func(*RegistrationContext) bool, message string) {
	rs.rules = append(rs.rules, Rule{Name: name, Check: check, Message: message})
}

// Register appends an already-built rule.
func (rs *RuleSet) Register(rule Rule) {
	rs.rules = append(rs.rules, rule)
}

// EvaluateAll runs every rule against the context in insertion order,
// without short-circuiting, so the caller can report every reason a
// registration was rejected rather than just the first. The previous
// evaluation's failures are discarded. Returns true iff no rule failed.
func (rs *RuleSet) EvaluateAll(ctx *RegistrationContext) bool {
	rs.last = Result{}
	for _, rule := range rs.rules {
		if !rule.Check(ctx) {
			rs.last.Merge(Result{Violations: []Violation{{Rule: rule.Name, Message: rule.Message}}})
		}
	}
	return !rs.last.Failed()
}

// FailureMessages returns a copy of the messages collected by the last
// EvaluateAll call, in evaluation order.
func (rs *RuleSet) FailureMessages() []string {
	out := make([]string, 0, len(rs.last.Violations))
	for _, v := range rs.last.Violations {
		out = append(out, v.Message)
	}
	return out
}

// LastResult returns the merged result of the last evaluation.
func (rs *RuleSet) LastResult() Result {
	return rs.last
}
