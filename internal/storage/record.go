// internal/storage/record.go
//
// 提供客戶紀錄檔的讀寫實作。
// 讀取：逐行解析四個欄位（name, age, id, balance），第五行以後忽略。
// 寫入：沿用「原子寫入」策略，先寫 .tmp 暫存檔，再以 rename() 取代原檔，
// 避免中途失敗留下半份紀錄。
package storage

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode"
)

// LoadRecord 開啟指定路徑的紀錄檔並解析；檔案於函式返回前即關閉。
func LoadRecord(path string) (Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return Record{}, fmt.Errorf("open record %s: %w", path, err)
	}
	defer f.Close()

	rec, err := ParseRecord(f)
	if err != nil {
		return Record{}, fmt.Errorf("parse record %s: %w", path, err)
	}
	return rec, nil
}

// ParseRecord 由 r 依序讀出四行並轉成 Record。
// name 僅去除尾端空白；數值欄位去除前後空白後以十進位解析。
func ParseRecord(r io.Reader) (Record, error) {
	br := bufio.NewReader(r)

	var lines [4]string
	for i := range lines {
		line, err := br.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return Record{}, err
		}
		if errors.Is(err, io.EOF) && line == "" {
			return Record{}, fmt.Errorf("%w: missing line %d", ErrMalformedRecord, i+1)
		}
		lines[i] = line
	}

	age, err := parseField("age", lines[1], 0)
	if err != nil {
		return Record{}, err
	}
	id, err := parseField("id", lines[2], 0)
	if err != nil {
		return Record{}, err
	}
	balance, err := parseField("balance", lines[3], 64)
	if err != nil {
		return Record{}, err
	}

	return Record{
		Name:    strings.TrimRightFunc(lines[0], unicode.IsSpace),
		Age:     int(age),
		ID:      int(id),
		Balance: balance,
	}, nil
}

// parseField 解析單一數值欄位；bitSize 為 0 時依 int 大小檢查範圍。
func parseField(name, line string, bitSize int) (int64, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(line), 10, bitSize)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %v", ErrMalformedRecord, name, err)
	}
	return v, nil
}

// SaveRecord 將 Record 寫成四行文字檔，採原子方式寫入。
// 流程：
//  1. 寫入 path+".tmp" 暫存檔。
//  2. 寫入完成後使用 os.Rename() 取代正式檔案。
func SaveRecord(path string, rec Record) error {
	if strings.ContainsAny(rec.Name, "\r\n") {
		return fmt.Errorf("%w: name must be a single line", ErrMalformedRecord)
	}
	tmp := path + ".tmp"

	f, err := os.Create(tmp)
	if err != nil {
		return err
	}

	if err := WriteRecord(f, rec); err != nil {
		f.Close()
		_ = os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmp)
		return err
	}

	// 原子替換
	return os.Rename(tmp, path)
}

// WriteRecord 依固定行序輸出四個欄位。
func WriteRecord(w io.Writer, rec Record) error {
	_, err := fmt.Fprintf(w, "%s\n%d\n%d\n%d\n", rec.Name, rec.Age, rec.ID, rec.Balance)
	return err
}
