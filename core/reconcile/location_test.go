package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatLocation(t *testing.T) {
	tests := []struct {
		printer string
		amsID   int
		want    string
	}{
		{"My Printer", 0, "My Printer - AMS A"},
		{"My Printer", 1, "My Printer - AMS B"},
		{"X1C", 3, "X1C - AMS D"},
		{"X1C", 25, "X1C - AMS Z"},
		{"X1C", 26, "X1C - AMS AA"},
		{"X1C", 27, "X1C - AMS AB"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatLocation(tt.printer, tt.amsID))
		})
	}
}

func TestLocationPrefix(t *testing.T) {
	assert.Equal(t, "Printer1 - ", LocationPrefix("Printer1"))
	assert.True(t, len(FormatLocation("Printer1", 2)) > len(LocationPrefix("Printer1")))
}

func TestParseLocation(t *testing.T) {
	for _, id := range []int{0, 1, 7, 25, 26, 51, 52, 700} {
		printer, amsID, ok := ParseLocation(FormatLocation("Lab - East", id))
		assert.True(t, ok)
		assert.Equal(t, "Lab - East", printer)
		assert.Equal(t, id, amsID)
	}

	for _, bad := range []string{"", "Shelf", " - AMS A", "P - AMS ", "P - AMS a", "P - AMS A1"} {
		_, _, ok := ParseLocation(bad)
		assert.False(t, ok, bad)
	}
}
