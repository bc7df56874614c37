package ledger

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLedger() *Ledger {
	return New(rand.New(rand.NewSource(1)))
}

func TestOpenDepositWithdrawBalance(t *testing.T) {
	l := newTestLedger()
	l.Open(1111, 100)

	require.NoError(t, l.Deposit(1111, 50))
	require.NoError(t, l.Withdraw(1111, 30))

	balance, err := l.Balance(1111)
	require.NoError(t, err)
	assert.Equal(t, 120.0, balance)
}

func TestUnknownAccount(t *testing.T) {
	l := newTestLedger()

	err := l.Deposit(42, 10)
	var unknown UnknownAccountError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, 42, unknown.ID)

	require.Error(t, l.Withdraw(42, 10))
	_, err = l.Balance(42)
	require.Error(t, err)
	_, err = l.CanPay(42, 10)
	require.Error(t, err)
}

func TestWithdrawHasNoFloor(t *testing.T) {
	l := newTestLedger()
	l.Open(1111, 10)

	require.NoError(t, l.Withdraw(1111, 60))
	balance, err := l.Balance(1111)
	require.NoError(t, err)
	assert.Equal(t, -50.0, balance, "the ledger itself performs no sufficiency check")
}

func TestCanPay(t *testing.T) {
	l := newTestLedger()
	l.Open(1111, 60)

	ok, err := l.CanPay(1111, 60)
	require.NoError(t, err)
	assert.True(t, ok, "exact balance is sufficient")

	ok, err = l.CanPay(1111, 60.01)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestNewUniqueIDNeverRepeats(t *testing.T) {
	l := newTestLedger()
	seen := make(map[int]struct{})
	for i := 0; i < 500; i++ {
		id := l.NewUniqueID()
		require.GreaterOrEqual(t, id, 1000)
		require.LessOrEqual(t, id, 9999)
		_, dup := seen[id]
		require.False(t, dup, "generator issued %d twice", id)
		seen[id] = struct{}{}
	}
}

func TestNewUniqueIDAvoidsReserved(t *testing.T) {
	l := newTestLedger()
	for id := 1000; id < 9999; id++ {
		l.ReserveID(id)
	}
	// Only one identifier left in the range; the generator must find it.
	assert.Equal(t, 9999, l.NewUniqueID())
}

func TestOpenTwiceOverwrites(t *testing.T) {
	l := newTestLedger()
	l.Open(1111, 100)
	l.Open(1111, 5)

	balance, err := l.Balance(1111)
	require.NoError(t, err)
	assert.Equal(t, 5.0, balance)
}
