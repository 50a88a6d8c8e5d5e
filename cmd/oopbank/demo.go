package main

import (
	"fmt"
	"io"
	"log/slog"

	"oopbank/internal/bank"
)

// runDemo 依序示範各型別；任何錯誤都直接回傳，不做復原。
func runDemo(out io.Writer, recordPath string) error {
	zikri, err := bank.NewCustomer("Zikri", 21, 777, 0)
	if err != nil {
		return fmt.Errorf("create customer: %w", err)
	}
	if err := zikri.Describe(out); err != nil {
		return err
	}

	slog.Debug("loading customer record", "path", recordPath)
	newOne, err := bank.CustomerFromFile(recordPath)
	if err != nil {
		return fmt.Errorf("load customer: %w", err)
	}
	if err := newOne.Describe(out); err != nil {
		return err
	}
	fmt.Fprintln(out, zikri.Equal(newOne))

	savings := bank.NewSavingsAccount(1000, 0.05)
	fmt.Fprintf(out, "savings interest over 2 periods: %.2f\n", savings.ComputeInterest(2))

	checking := bank.NewCheckingAccount(1000, 10)
	checking.Deposit(100)
	checking.WithdrawWithFee(100, 5)
	checking.WithdrawWithFee(100, 20)
	fmt.Fprintf(out, "checking balance: %d\n", checking.Balance())

	for _, a := range []bank.Withdrawer{bank.NewAccount(50), savings, checking} {
		a.Withdraw(60)
		fmt.Fprintf(out, "%T balance after withdraw: %d\n", a, a.Balance())
	}

	emp, err := bank.NewEmployee("Zikri", 100)
	if err != nil {
		return fmt.Errorf("create employee: %w", err)
	}
	if err := emp.SetSalary(200); err != nil {
		return fmt.Errorf("set salary: %w", err)
	}
	fmt.Fprintln(out, emp.Salary())

	// 刻意設定負薪資：錯誤往上傳遞，程式以非零狀態結束。
	if err := emp.SetSalary(-100); err != nil {
		return fmt.Errorf("set salary: %w", err)
	}
	return nil
}
