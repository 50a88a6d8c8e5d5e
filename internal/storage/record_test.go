// internal/storage/record_test.go
//
// 驗證四行紀錄檔的解析與寫入。
// 使用 t.TempDir() 確保測試不汙染本機環境。
package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRecord(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Record
		wantErr bool
	}{
		{
			name:  "four lines",
			input: "Ada\n30\n42\n1500\n",
			want:  Record{Name: "Ada", Age: 30, ID: 42, Balance: 1500},
		},
		{
			name:  "no trailing newline",
			input: "Ada\n30\n42\n1500",
			want:  Record{Name: "Ada", Age: 30, ID: 42, Balance: 1500},
		},
		{
			name:  "name keeps leading space, numbers are trimmed",
			input: "  Ada Lovelace \t\r\n 30 \n42\r\n-5\n",
			want:  Record{Name: "  Ada Lovelace", Age: 30, ID: 42, Balance: -5},
		},
		{
			name:  "extra lines ignored",
			input: "Ada\n30\n42\n1500\nignored\n",
			want:  Record{Name: "Ada", Age: 30, ID: 42, Balance: 1500},
		},
		{
			name:    "missing balance line",
			input:   "Ada\n30\n42\n",
			wantErr: true,
		},
		{
			name:    "empty input",
			input:   "",
			wantErr: true,
		},
		{
			name:    "age not numeric",
			input:   "Ada\nthirty\n42\n1500\n",
			wantErr: true,
		},
		{
			name:    "empty id line",
			input:   "Ada\n30\n\n1500\n",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseRecord(strings.NewReader(tt.input))
			if tt.wantErr {
				require.ErrorIs(t, err, ErrMalformedRecord)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSaveAndLoadRecord(t *testing.T) {
	path := filepath.Join(t.TempDir(), "new_customer.txt")
	rec := Record{Name: "Grace", Age: 45, ID: 7, Balance: 250}

	require.NoError(t, SaveRecord(path, rec))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Grace\n45\n7\n250\n", string(raw))

	_, err = os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err), "temp file should be renamed away")

	loaded, err := LoadRecord(path)
	require.NoError(t, err)
	assert.Equal(t, rec, loaded)
}

func TestSaveRecordRejectsMultilineName(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.txt")
	err := SaveRecord(path, Record{Name: "a\nb", Age: 20, ID: 1})
	require.ErrorIs(t, err, ErrMalformedRecord)

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestLoadRecordMissingFile(t *testing.T) {
	_, err := LoadRecord(filepath.Join(t.TempDir(), "nope.txt"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
