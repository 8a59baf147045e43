package reconcile

import (
	"strings"

	"spool-sync/core/spoolman"
)

// Tray is one AMS slot as reported by the printer. It is immutable for the
// duration of a poll.
type Tray struct {
	// AmsID is the index of the AMS unit the tray belongs to.
	AmsID int `json:"ams_id"`
	// TrayID is the slot index within the AMS unit.
	TrayID int `json:"tray_id"`
	// TrayType is the material family code (e.g., "PLA").
	TrayType string `json:"tray_type"`
	// TraySubBrands is the product name (e.g., "PLA Basic").
	TraySubBrands string `json:"tray_sub_brands"`
	// TrayColor is the packed RGBA hex color (e.g., "FF0000FF").
	TrayColor string `json:"tray_color"`
	// Remain is the remaining percentage, 0-100. Negative means unknown.
	Remain int `json:"remain"`
	// TagUID is the raw RFID tag UID, empty for untagged spools.
	TagUID string `json:"tag_uid"`
	// TrayUUID is the 32-character spool identifier, empty if absent.
	TrayUUID string `json:"tray_uuid"`
	// TrayInfoIdx is the vendor preset id. Empty for third-party spools.
	TrayInfoIdx string `json:"tray_info_idx"`
	// TrayWeight is the nominal full spool mass in grams.
	TrayWeight int `json:"tray_weight"`
}

// IsFirstParty reports whether the tray carries a vendor preset id.
func (t Tray) IsFirstParty() bool {
	return strings.TrimSpace(t.TrayInfoIdx) != ""
}

// MatchKey returns the identity used to match the tray against inventory
// records: the tray UUID when present, otherwise the RFID tag UID.
func (t Tray) MatchKey() string {
	if uuid := strings.TrimSpace(t.TrayUUID); uuid != "" {
		return uuid
	}
	return strings.TrimSpace(t.TagUID)
}

// Action describes what SyncTray did with a tray.
type Action string

const (
	// ActionSkipped means the tray was ignored: a third-party spool, or a
	// preset assigned to a spool without a tag.
	ActionSkipped Action = "skipped"
	// ActionUpdated means an existing spool record was updated.
	ActionUpdated Action = "updated"
	// ActionCreated means a new spool record was created.
	ActionCreated Action = "created"
)

// Result is the outcome of synchronizing a single tray.
// Spool is nil when the tray was skipped.
type Result struct {
	Action Action
	Spool  *spoolman.Spool
}

// SyncOptions controls a single SyncTray call.
type SyncOptions struct {
	// DisableWeightSync leaves remaining_weight untouched on existing
	// records. It has no effect when a record is created.
	DisableWeightSync bool

	// Cached is the snapshot to match against. If nil, spools are fetched.
	Cached Snapshot
}

// ActiveTags returns the match keys of every tagged tray. It is the set
// ClearStaleLocations expects.
func ActiveTags(trays []Tray) map[string]struct{} {
	active := make(map[string]struct{}, len(trays))
	for _, tray := range trays {
		if key := tray.MatchKey(); key != "" {
			active[key] = struct{}{}
		}
	}
	return active
}
