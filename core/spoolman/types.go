package spoolman

import "encoding/json"

// Vendor is a filament manufacturer.
type Vendor struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Filament is a distinct material/brand/color product.
type Filament struct {
	ID            int     `json:"id"`
	Name          string  `json:"name"`
	Material      string  `json:"material"`
	ColorHex      string  `json:"color_hex,omitempty"`
	ArticleNumber string  `json:"article_number,omitempty"`
	Density       float64 `json:"density,omitempty"`
	Diameter      float64 `json:"diameter,omitempty"`
	Weight        float64 `json:"weight,omitempty"`
	Vendor        *Vendor `json:"vendor,omitempty"`
}

// Spool is a physical spool of filament tracked in the inventory.
type Spool struct {
	ID              int               `json:"id"`
	RemainingWeight float64           `json:"remaining_weight"`
	InitialWeight   float64           `json:"initial_weight,omitempty"`
	Location        string            `json:"location,omitempty"`
	Archived        bool              `json:"archived,omitempty"`
	Extra           map[string]string `json:"extra,omitempty"`
	Filament        *Filament         `json:"filament,omitempty"`
}

// SpoolCreate is the body of a spool creation request.
type SpoolCreate struct {
	FilamentID      int               `json:"filament_id"`
	RemainingWeight *float64          `json:"remaining_weight,omitempty"`
	InitialWeight   float64           `json:"initial_weight,omitempty"`
	Location        string            `json:"location,omitempty"`
	Extra           map[string]string `json:"extra,omitempty"`
}

// SpoolUpdate describes a partial spool update. Nil fields are left
// unchanged. ClearLocation unsets the location and takes precedence over
// Location.
type SpoolUpdate struct {
	Location        *string
	RemainingWeight *float64
	ClearLocation   bool
}

// IsEmpty reports whether the update would not change anything.
func (u SpoolUpdate) IsEmpty() bool {
	return u.Location == nil && u.RemainingWeight == nil && !u.ClearLocation
}

// MarshalJSON encodes only the fields that are set.
func (u SpoolUpdate) MarshalJSON() ([]byte, error) {
	body := make(map[string]any, 2)
	switch {
	case u.ClearLocation:
		body["location"] = nil
	case u.Location != nil:
		body["location"] = *u.Location
	}
	if u.RemainingWeight != nil {
		body["remaining_weight"] = *u.RemainingWeight
	}
	return json.Marshal(body)
}

// FilamentCreate is the body of a filament creation request.
type FilamentCreate struct {
	Name          string  `json:"name"`
	Material      string  `json:"material"`
	VendorID      int     `json:"vendor_id,omitempty"`
	ColorHex      string  `json:"color_hex,omitempty"`
	ArticleNumber string  `json:"article_number,omitempty"`
	Density       float64 `json:"density"`
	Diameter      float64 `json:"diameter"`
	Weight        float64 `json:"weight,omitempty"`
}

// VendorCreate is the body of a vendor creation request.
type VendorCreate struct {
	Name string `json:"name"`
}
