package reconcile

import (
	"strings"
)

const (
	locationSeparator = " - "
	amsLabel          = "AMS "
)

// FormatLocation returns the canonical location of an AMS unit,
// e.g. FormatLocation("My Printer", 0) == "My Printer - AMS A".
func FormatLocation(printerName string, amsID int) string {
	return LocationPrefix(printerName) + amsLabel + amsLetter(amsID)
}

// LocationPrefix returns the prefix shared by every location of a printer.
func LocationPrefix(printerName string) string {
	return printerName + locationSeparator
}

// ParseLocation is the inverse of FormatLocation.
func ParseLocation(location string) (printerName string, amsID int, ok bool) {
	idx := strings.LastIndex(location, locationSeparator+amsLabel)
	if idx <= 0 {
		return "", 0, false
	}
	id, ok := amsIndex(location[idx+len(locationSeparator)+len(amsLabel):])
	if !ok {
		return "", 0, false
	}
	return location[:idx], id, true
}

// amsLetter maps 0 -> A, 25 -> Z, 26 -> AA.
func amsLetter(id int) string {
	if id < 0 {
		id = 0
	}
	var b []byte
	for n := id + 1; n > 0; n = (n - 1) / 26 {
		b = append([]byte{byte('A' + (n-1)%26)}, b...)
	}
	return string(b)
}

func amsIndex(letters string) (int, bool) {
	if letters == "" {
		return 0, false
	}
	n := 0
	for _, r := range letters {
		if r < 'A' || r > 'Z' {
			return 0, false
		}
		n = n*26 + int(r-'A'+1)
	}
	return n - 1, true
}
