// internal/bank/errors.go
//
// 本檔集中定義「驗證錯誤（validation errors）」。
// 兩種錯誤皆屬於值域檢查失敗：建立客戶時餘額為負、或設定員工薪資為負。
// 呼叫端以 errors.Is 比對哨兵錯誤，或以 errors.As 取出 *ValidationError 看欄位與值。

package bank

import (
	"errors"
	"fmt"
)

var (
	// ErrNegativeBalance 代表客戶初始餘額為負，建立失敗。
	ErrNegativeBalance = errors.New("balance has to be non-negative")

	// ErrNegativeSalary 代表薪資為負，設定失敗且保留原值。
	ErrNegativeSalary = errors.New("invalid salary")
)

// ValidationError 記錄被拒絕的欄位與數值，並可 Unwrap 回對應的哨兵錯誤。
type ValidationError struct {
	Field string
	Value int64
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s=%d: %v", e.Field, e.Value, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func newValidationError(field string, value int64, err error) error {
	return &ValidationError{Field: field, Value: value, Err: err}
}
