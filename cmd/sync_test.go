package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeTrays(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{
			name:  "PrinterReport",
			input: `{"print":{"ams":{"ams":[{"id":"0","tray":[{"id":"0","tray_type":"PLA","tray_info_idx":"GFA00","remain":50}]}]}}}`,
			want:  1,
		},
		{
			name:  "SyncRequest",
			input: `{"trays":[{"ams_id":0,"tray_id":1,"tray_type":"PLA"},{"ams_id":1,"tray_id":0,"tray_type":"PETG"}]}`,
			want:  2,
		},
		{
			name:  "TrayArray",
			input: `[{"ams_id":0,"tray_id":1,"tray_type":"PLA"}]`,
			want:  1,
		},
		{
			name:  "EmptyRequest",
			input: `{"trays":[]}`,
			want:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			trays, err := decodeTrays([]byte(tt.input))
			require.NoError(t, err)
			assert.Len(t, trays, tt.want)
		})
	}
}

func TestDecodeTrays_Invalid(t *testing.T) {
	_, err := decodeTrays([]byte(`"nope"`))
	assert.Error(t, err)
}

func TestReadTrays_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"ams_id":2,"tray_id":3,"tray_type":"ABS"}]`), 0o600))

	trays, err := readTrays(path)
	require.NoError(t, err)
	require.Len(t, trays, 1)
	assert.Equal(t, 2, trays[0].AmsID)

	_, err = readTrays(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}
