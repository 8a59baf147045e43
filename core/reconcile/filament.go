package reconcile

import (
	"context"
	"fmt"
	"strings"

	"spool-sync/core/spoolman"
)

// DefaultVendor is the vendor new first-party filaments are filed under.
const DefaultVendor = "Bambu Lab"

const defaultDiameter = 1.75

// densities holds g/cm³ per material family.
var densities = map[string]float64{
	"PLA":  1.24,
	"PETG": 1.27,
	"ABS":  1.04,
	"ASA":  1.07,
	"TPU":  1.21,
	"PA":   1.14,
	"PC":   1.20,
	"PVA":  1.23,
	"HIPS": 1.04,
}

// MaterialDensity returns the density for a material family code.
// Variants such as "PLA-CF" fall back to their base family.
func MaterialDensity(material string) float64 {
	m := strings.ToUpper(strings.TrimSpace(material))
	if d, ok := densities[m]; ok {
		return d
	}
	if base, _, found := strings.Cut(m, "-"); found {
		if d, ok := densities[base]; ok {
			return d
		}
	}
	return densities["PLA"]
}

// FilamentResolver finds or creates the filament definition of a tray.
type FilamentResolver struct {
	inv    Inventory
	vendor string
}

// NewFilamentResolver creates a resolver filing new filaments under vendor.
func NewFilamentResolver(inv Inventory, vendor string) *FilamentResolver {
	if vendor == "" {
		vendor = DefaultVendor
	}
	return &FilamentResolver{inv: inv, vendor: vendor}
}

// FindOrCreate returns the filament matching the tray's material,
// product name, color and preset, creating it when none exists.
func (r *FilamentResolver) FindOrCreate(ctx context.Context, tray Tray) (*spoolman.Filament, error) {
	want := filamentFor(tray)

	filaments, err := r.inv.GetFilaments(ctx)
	if err != nil {
		return nil, err
	}
	for i := range filaments {
		if matchesFilament(filaments[i], want) {
			return &filaments[i], nil
		}
	}

	vendor, err := r.findOrCreateVendor(ctx)
	if err != nil {
		return nil, err
	}
	want.VendorID = vendor.ID

	filament, err := r.inv.CreateFilament(ctx, want)
	if err != nil {
		return nil, err
	}
	return filament, nil
}

func (r *FilamentResolver) findOrCreateVendor(ctx context.Context) (*spoolman.Vendor, error) {
	vendors, err := r.inv.GetVendors(ctx)
	if err != nil {
		return nil, err
	}
	for i := range vendors {
		if strings.EqualFold(vendors[i].Name, r.vendor) {
			return &vendors[i], nil
		}
	}
	vendor, err := r.inv.CreateVendor(ctx, spoolman.VendorCreate{Name: r.vendor})
	if err != nil {
		return nil, fmt.Errorf("failed to create vendor %q: %w", r.vendor, err)
	}
	return vendor, nil
}

// filamentFor builds the definition a tray maps to.
func filamentFor(tray Tray) spoolman.FilamentCreate {
	name := strings.TrimSpace(tray.TraySubBrands)
	if name == "" {
		name = tray.TrayType
	}
	return spoolman.FilamentCreate{
		Name:          name,
		Material:      tray.TrayType,
		ColorHex:      colorHex(tray.TrayColor),
		ArticleNumber: strings.TrimSpace(tray.TrayInfoIdx),
		Density:       MaterialDensity(tray.TrayType),
		Diameter:      defaultDiameter,
		Weight:        float64(tray.TrayWeight),
	}
}

func matchesFilament(f spoolman.Filament, want spoolman.FilamentCreate) bool {
	return strings.EqualFold(f.Material, want.Material) &&
		f.Name == want.Name &&
		strings.EqualFold(f.ColorHex, want.ColorHex) &&
		f.ArticleNumber == want.ArticleNumber
}

// colorHex drops the alpha channel of an RGBA hex color.
func colorHex(rgba string) string {
	c := strings.ToUpper(strings.TrimPrefix(strings.TrimSpace(rgba), "#"))
	if len(c) > 6 {
		c = c[:6]
	}
	return c
}
