// Package bank 定義示範用的領域模型：客戶、帳戶家族與員工。
// 本檔定義帳戶家族：Account 為共用基底，SavingsAccount 與 CheckingAccount
// 以內嵌 (embedding) 取得基底行為，再各自加上利息或手續費規則。
// 金額以 int64 的最小貨幣單位儲存；提款不檢查餘額是否足夠。
package bank

import "math"

// Withdrawer 為三種帳戶共同的能力集合。
type Withdrawer interface {
	Withdraw(amount int64)
	Balance() int64
}

// Account represents a bank account.
type Account struct {
	balance int64
}

// NewAccount 以初始餘額建立基底帳戶；不限制正負。
func NewAccount(balance int64) *Account {
	return &Account{balance: balance}
}

// Balance 回傳目前餘額。
func (a *Account) Balance() int64 {
	return a.balance
}

// Withdraw 無條件扣款，餘額可能變為負數。
func (a *Account) Withdraw(amount int64) {
	a.balance -= amount
}

// SavingsAccount 為附帶利率的帳戶。
type SavingsAccount struct {
	Account
	rate float64
}

// NewSavingsAccount 以初始餘額與每期利率建立儲蓄帳戶。
func NewSavingsAccount(balance int64, rate float64) *SavingsAccount {
	return &SavingsAccount{Account: Account{balance: balance}, rate: rate}
}

// Rate 回傳每期利率。
func (s *SavingsAccount) Rate() float64 {
	return s.rate
}

// ComputeInterest 回傳 periods 期複利後的利息：balance × ((1+rate)^periods − 1)。
// 不會把利息入帳。
func (s *SavingsAccount) ComputeInterest(periods int) float64 {
	return float64(s.balance) * (math.Pow(1+s.rate, float64(periods)) - 1)
}

// Interest 等同 ComputeInterest(1)。
func (s *SavingsAccount) Interest() float64 {
	return s.ComputeInterest(1)
}

// CheckingAccount 為附帶手續費上限 (limit) 的支票帳戶。
type CheckingAccount struct {
	Account
	limit int64
}

// NewCheckingAccount 以初始餘額與手續費上限建立支票帳戶。
func NewCheckingAccount(balance, limit int64) *CheckingAccount {
	return &CheckingAccount{Account: Account{balance: balance}, limit: limit}
}

// Limit 回傳手續費上限。
func (c *CheckingAccount) Limit() int64 {
	return c.limit
}

// Deposit 無條件存入。
func (c *CheckingAccount) Deposit(amount int64) {
	c.balance += amount
}

// Withdraw 為不帶手續費的提款，讓 CheckingAccount 滿足 Withdrawer。
func (c *CheckingAccount) Withdraw(amount int64) {
	c.WithdrawWithFee(amount, 0)
}

// WithdrawWithFee 扣除 amount-fee；fee 超過 limit 時改以 limit 代替 fee，
// 即扣除 amount-limit。實際扣款交給基底 Account.Withdraw。
func (c *CheckingAccount) WithdrawWithFee(amount, fee int64) {
	if fee <= c.limit {
		c.Account.Withdraw(amount - fee)
		return
	}
	c.Account.Withdraw(amount - c.limit)
}
