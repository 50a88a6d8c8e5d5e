// internal/bank/account_test.go
//
// 帳戶家族的單元測試：基底提款、儲蓄利息、支票帳戶的手續費規則。

package bank

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 基底提款不檢查餘額，允許變成負數；此行為刻意保留並以測試釘住。
func TestAccountWithdrawAllowsNegative(t *testing.T) {
	a := NewAccount(50)
	a.Withdraw(80)
	assert.Equal(t, int64(-30), a.Balance())
}

func TestSavingsComputeInterest(t *testing.T) {
	s := NewSavingsAccount(1000, 0.05)

	assert.InDelta(t, 50.0, s.Interest(), 1e-9)
	assert.InDelta(t, 50.0, s.ComputeInterest(1), 1e-9)
	assert.InDelta(t, 157.625, s.ComputeInterest(3), 1e-9)
	assert.InDelta(t, 0.0, s.ComputeInterest(0), 1e-9)

	// 計算利息不入帳
	assert.Equal(t, int64(1000), s.Balance())
}

func TestCheckingWithdrawWithFee(t *testing.T) {
	tests := []struct {
		name   string
		amount int64
		fee    int64
		want   int64
	}{
		{name: "fee within limit", amount: 100, fee: 5, want: 1000 - 95},
		{name: "fee equals limit", amount: 100, fee: 10, want: 1000 - 90},
		{name: "fee above limit uses limit", amount: 100, fee: 20, want: 1000 - 90},
		{name: "no fee", amount: 100, fee: 0, want: 1000 - 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCheckingAccount(1000, 10)
			c.WithdrawWithFee(tt.amount, tt.fee)
			assert.Equal(t, tt.want, c.Balance())
		})
	}
}

func TestCheckingDepositAndWithdraw(t *testing.T) {
	c := NewCheckingAccount(0, 10)
	c.Deposit(40)
	require.Equal(t, int64(40), c.Balance())

	c.Withdraw(100)
	assert.Equal(t, int64(-60), c.Balance())
	assert.Equal(t, int64(10), c.Limit())
}

func TestWithdrawerPolymorphism(t *testing.T) {
	accts := []Withdrawer{
		NewAccount(100),
		NewSavingsAccount(100, 0.1),
		NewCheckingAccount(100, 10),
	}
	for _, a := range accts {
		a.Withdraw(30)
		assert.Equal(t, int64(70), a.Balance(), "%T", a)
	}
}
