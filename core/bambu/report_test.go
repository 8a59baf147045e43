package bambu

import (
	"encoding/json"
	"testing"

	"spool-sync/core/reconcile"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fullReport = `{
  "print": {
    "command": "push_status",
    "ams": {
      "ams": [
        {
          "id": "1",
          "humidity": "4",
          "tray": [
            {
              "id": "2",
              "tray_type": "PETG",
              "tray_sub_brands": "PETG HF",
              "tray_color": "00FF00FF",
              "remain": 80,
              "tag_uid": "0000000000000000",
              "tray_uuid": "00000000000000000000000000000000",
              "tray_info_idx": "GFG02",
              "tray_weight": "1000"
            }
          ]
        },
        {
          "id": "0",
          "tray": [
            {
              "id": "0",
              "tray_type": "PLA",
              "tray_sub_brands": "PLA Basic",
              "tray_color": "FF0000FF",
              "remain": 50,
              "tag_uid": "B568B1A400000100",
              "tray_uuid": "A1B2C3D4E5F6A1B2C3D4E5F6A1B2C3D4",
              "tray_info_idx": "GFA00",
              "tray_weight": "1000"
            },
            { "id": "1" },
            {
              "id": "3",
              "tray_type": "PLA",
              "tray_sub_brands": "",
              "tray_color": "FFFFFFFF",
              "remain": -1,
              "tag_uid": "",
              "tray_uuid": "",
              "tray_info_idx": "",
              "tray_weight": 0
            }
          ]
        }
      ],
      "tray_now": "255"
    }
  }
}`

func TestParseReport(t *testing.T) {
	trays, ok, err := ParseReport([]byte(fullReport))
	require.NoError(t, err)
	require.True(t, ok)
	require.Len(t, trays, 3)

	assert.Equal(t, reconcile.Tray{
		AmsID:         0,
		TrayID:        0,
		TrayType:      "PLA",
		TraySubBrands: "PLA Basic",
		TrayColor:     "FF0000FF",
		Remain:        50,
		TagUID:        "B568B1A400000100",
		TrayUUID:      "A1B2C3D4E5F6A1B2C3D4E5F6A1B2C3D4",
		TrayInfoIdx:   "GFA00",
		TrayWeight:    1000,
	}, trays[0])

	// Third-party spool keeps its unknown remain and no preset.
	assert.Equal(t, 3, trays[1].TrayID)
	assert.Equal(t, -1, trays[1].Remain)
	assert.False(t, trays[1].IsFirstParty())

	// Zeroed identifiers are dropped.
	assert.Equal(t, 1, trays[2].AmsID)
	assert.Equal(t, 2, trays[2].TrayID)
	assert.Empty(t, trays[2].TagUID)
	assert.Empty(t, trays[2].TrayUUID)
	assert.Equal(t, "", trays[2].MatchKey())
}

func TestParseReport_NoAMS(t *testing.T) {
	for _, payload := range []string{
		`{"print": {"command": "push_status", "nozzle_temper": 210}}`,
		`{"info": {"command": "get_version"}}`,
		`{"print": {"ams": {"tray_now": "1"}}}`,
	} {
		trays, ok, err := ParseReport([]byte(payload))
		require.NoError(t, err)
		assert.False(t, ok, payload)
		assert.Nil(t, trays)
	}
}

func TestParseReport_EmptyAMS(t *testing.T) {
	trays, ok, err := ParseReport([]byte(`{"print": {"ams": {"ams": []}}}`))
	require.NoError(t, err)
	assert.True(t, ok)
	assert.NotNil(t, trays)
	assert.Empty(t, trays)
}

func TestParseReport_InvalidJSON(t *testing.T) {
	_, _, err := ParseReport([]byte(`{"print":`))
	assert.Error(t, err)
}

func TestPushAllPayload(t *testing.T) {
	var got map[string]map[string]string
	require.NoError(t, json.Unmarshal(PushAllPayload(7), &got))
	assert.Equal(t, "pushall", got["pushing"]["command"])
	assert.Equal(t, "7", got["pushing"]["sequence_id"])
}

func TestTopics(t *testing.T) {
	assert.Equal(t, "device/01S00A000000000/report", ReportTopic("01S00A000000000"))
	assert.Equal(t, "device/01S00A000000000/request", RequestTopic("01S00A000000000"))
}
