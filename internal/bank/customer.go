// internal/bank/customer.go

package bank

import (
	"fmt"
	"io"
	"log/slog"

	"oopbank/internal/storage"
)

// MinAge 為所有客戶共用的最低年齡；低於此值的年齡會被提升至 MinAge。
const MinAge = 18

// Customer 為不可變的客戶資料；建立後沒有任何修改方法。
type Customer struct {
	name    string
	age     int
	id      int
	balance int64
}

// NewCustomer 建立客戶。
// - balance < 0 → 回傳包裝 ErrNegativeBalance 的 *ValidationError。
// - age < MinAge → 靜默提升為 MinAge，不視為錯誤。
func NewCustomer(name string, age, id int, balance int64) (*Customer, error) {
	if balance < 0 {
		return nil, newValidationError("balance", balance, ErrNegativeBalance)
	}
	if age < MinAge {
		age = MinAge
	}
	c := &Customer{name: name, age: age, id: id, balance: balance}
	slog.Debug("customer initialized", "id", id, "name", name, "age", age)
	return c, nil
}

// CustomerFromRecord 由已解析的紀錄建立客戶，規則同 NewCustomer。
func CustomerFromRecord(rec storage.Record) (*Customer, error) {
	return NewCustomer(rec.Name, rec.Age, rec.ID, rec.Balance)
}

// CustomerFromFile 讀取四行紀錄檔後交給 NewCustomer。
// 檔案讀取與解析錯誤原樣往上傳遞。
func CustomerFromFile(path string) (*Customer, error) {
	rec, err := storage.LoadRecord(path)
	if err != nil {
		return nil, err
	}
	return CustomerFromRecord(rec)
}

func (c *Customer) Name() string { return c.name }
func (c *Customer) Age() int { return c.age }
func (c *Customer) ID() int { return c.id }
func (c *Customer) Balance() int64 { return c.balance }

// Record 轉回儲存層格式，供寫檔使用。
func (c *Customer) Record() storage.Record {
	return storage.Record{Name: c.name, Age: c.age, ID: c.id, Balance: c.balance}
}

// Equal 以 {id, name, age} 做結構比對，不比較餘額。
func (c *Customer) Equal(other *Customer) bool {
	if c == nil || other == nil {
		return false
	}
	return c.id == other.id && c.name == other.name && c.age == other.age
}

// Describe 將自我介紹寫入 w。
func (c *Customer) Describe(w io.Writer) error {
	_, err := fmt.Fprintf(w, "My name is %s and I am %d years old.\n", c.name, c.age)
	return err
}
