// internal/storage/model.go
//
// 定義客戶紀錄檔 (customer record) 的資料結構。
// 此層只描述檔案內容，不做任何商業規則檢查（例如餘額是否為負），
// 那是 bank 層的責任。
package storage

import "errors"

// ErrMalformedRecord 代表紀錄檔缺行或數值欄位無法解析。
var ErrMalformedRecord = errors.New("malformed customer record")

// Record 為四行純文字紀錄的結構化形式，欄位順序即檔案行序：
//
//	name
//	age
//	id
//	balance
type Record struct {
	Name    string
	Age     int
	ID      int
	Balance int64
}
