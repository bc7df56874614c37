// Package ledger tracks account balances for members, staff, and the gym
// itself, keyed by integer account identifier. The ledger performs no
// sufficiency checks of its own; callers gate withdrawals through the
// registration rule set.
package ledger

import (
	"fmt"
	"math/rand"
	"sync"
	"time"
)

// Bounds of the random identifier range used for accounts that are not
// tied to a person.
const (
	idRangeLow  = 1000
	idRangeHigh = 9999
)

// UnknownAccountError is returned when an operation references an account
// identifier that was never opened.
type UnknownAccountError struct {
	ID int
}

func (e UnknownAccountError) Error() string {
	return fmt.Sprintf("account %d not found", e.ID)
}

// Ledger is an in-memory balance store. Every identifier used anywhere in
// the system has exactly one entry here before any deposit, withdrawal, or
// query is attempted against it.
type Ledger struct {
	mu       sync.RWMutex
	balances map[int]float64
	issued   map[int]struct{}
	rng      *rand.Rand
}

// New constructs an empty ledger. A nil rng falls back to a time-seeded
// source; tests inject a fixed seed.
func New(rng *rand.Rand) *Ledger {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Ledger{
		balances: make(map[int]float64),
		issued:   make(map[int]struct{}),
		rng:      rng,
	}
}

// Open registers an account with the given starting balance. Opening the
// same identifier twice overwrites the balance; callers treat double-open
// as a usage error rather than relying on it.
func (l *Ledger) Open(id int, balance float64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.balances[id] = balance
	l.issued[id] = struct{}{}
}

// Deposit adds amount to the account balance.
func (l *Ledger) Deposit(id int, amount float64) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	current, ok := l.balances[id]
	if !ok {
		return UnknownAccountError{ID: id}
	}
	l.balances[id] = current + amount
	return nil
}

// Withdraw subtracts amount from the account balance. There is no lower
// bound: sufficiency is the caller's concern, so a caller that bypasses
// the balance rule can drive an account negative.
func (l *Ledger) Withdraw(id int, amount float64) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	current, ok := l.balances[id]
	if !ok {
		return UnknownAccountError{ID: id}
	}
	l.balances[id] = current - amount
	return nil
}

// Balance returns the current balance for the account.
func (l *Ledger) Balance(id int) (float64, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	balance, ok := l.balances[id]
	if !ok {
		return 0, UnknownAccountError{ID: id}
	}
	return balance, nil
}

// CanPay reports whether the account balance covers the amount.
func (l *Ledger) CanPay(id int, amount float64) (bool, error) {
	balance, err := l.Balance(id)
	if err != nil {
		return false, err
	}
	return balance >= amount, nil
}

// ReserveID marks an identifier issued outside the generator (person ids
// come from a sequential counter) so NewUniqueID can never collide with it.
func (l *Ledger) ReserveID(id int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.issued[id] = struct{}{}
}

// NewUniqueID draws an identifier from the bounded random range, retrying
// on collision with previously issued ids. It terminates as long as the
// range is not exhausted.
func (l *Ledger) NewUniqueID() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	for {
		id := idRangeLow + l.rng.Intn(idRangeHigh-idRangeLow+1)
		if _, taken := l.issued[id]; taken {
			continue
		}
		l.issued[id] = struct{}{}
		return id
	}
}
