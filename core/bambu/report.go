package bambu

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"

	"spool-sync/core/reconcile"
	"spool-sync/core/utils"
)

type reportEnvelope struct {
	Print *struct {
		Command string `json:"command"`
		AMS     *struct {
			Units []amsUnit `json:"ams"`
		} `json:"ams"`
	} `json:"print"`
}

type amsUnit struct {
	ID    any              `json:"id"`
	Trays []map[string]any `json:"tray"`
}

// ParseReport extracts the loaded trays of every AMS unit from a printer
// report. ok is false when the report carries no AMS block, which is the
// case for most incremental reports.
func ParseReport(payload []byte) (trays []reconcile.Tray, ok bool, err error) {
	dec := json.NewDecoder(bytes.NewReader(payload))
	dec.UseNumber()

	var env reportEnvelope
	if err := dec.Decode(&env); err != nil {
		return nil, false, fmt.Errorf("failed to decode printer report: %w", err)
	}
	if env.Print == nil || env.Print.AMS == nil || env.Print.AMS.Units == nil {
		return nil, false, nil
	}

	trays = []reconcile.Tray{}
	for _, unit := range env.Print.AMS.Units {
		amsID := utils.ToInt(unit.ID, -1)
		if amsID < 0 {
			continue
		}
		for _, raw := range unit.Trays {
			tray, loaded := parseTray(amsID, raw)
			if loaded {
				trays = append(trays, tray)
			}
		}
	}

	sort.SliceStable(trays, func(i, j int) bool {
		if trays[i].AmsID != trays[j].AmsID {
			return trays[i].AmsID < trays[j].AmsID
		}
		return trays[i].TrayID < trays[j].TrayID
	})
	return trays, true, nil
}

// parseTray returns loaded=false for empty slots.
func parseTray(amsID int, raw map[string]any) (reconcile.Tray, bool) {
	trayType := utils.ToString(raw["tray_type"])
	if trayType == "" {
		return reconcile.Tray{}, false
	}

	tray := reconcile.Tray{
		AmsID:         amsID,
		TrayID:        utils.ToInt(raw["id"], 0),
		TrayType:      trayType,
		TraySubBrands: utils.ToString(raw["tray_sub_brands"]),
		TrayColor:     utils.ToString(raw["tray_color"]),
		Remain:        utils.ToInt(raw["remain"], -1),
		TagUID:        utils.ToString(raw["tag_uid"]),
		TrayUUID:      utils.ToString(raw["tray_uuid"]),
		TrayInfoIdx:   utils.ToString(raw["tray_info_idx"]),
		TrayWeight:    utils.ToInt(raw["tray_weight"], 0),
	}
	if utils.IsZeroID(tray.TagUID) {
		tray.TagUID = ""
	}
	if utils.IsZeroID(tray.TrayUUID) {
		tray.TrayUUID = ""
	}
	return tray, true
}

type pushAllRequest struct {
	Pushing struct {
		SequenceID string `json:"sequence_id"`
		Command    string `json:"command"`
	} `json:"pushing"`
}

// PushAllPayload builds the command asking a printer for a full report.
func PushAllPayload(sequence int) []byte {
	var req pushAllRequest
	req.Pushing.SequenceID = fmt.Sprintf("%d", sequence)
	req.Pushing.Command = "pushall"
	b, _ := json.Marshal(req)
	return b
}
