// internal/bank/employee.go

package bank

import "log/slog"

// Employee 的薪資只能透過 Salary / SetSalary 存取，確保永遠不為負。
type Employee struct {
	name   string
	salary int64
}

// NewEmployee 建立員工；初始薪資套用與 SetSalary 相同的檢查。
func NewEmployee(name string, salary int64) (*Employee, error) {
	e := &Employee{name: name}
	if err := e.SetSalary(salary); err != nil {
		return nil, err
	}
	return e, nil
}

func (e *Employee) Name() string { return e.name }

// Salary 回傳目前薪資。
func (e *Employee) Salary() int64 {
	return e.salary
}

// SetSalary 以新值取代薪資；v < 0 時回傳 ErrNegativeSalary 並保留原值。
func (e *Employee) SetSalary(v int64) error {
	if v < 0 {
		slog.Debug("salary rejected", "employee", e.name, "salary", v)
		return newValidationError("salary", v, ErrNegativeSalary)
	}
	e.salary = v
	slog.Debug("salary updated", "employee", e.name, "salary", v)
	return nil
}
