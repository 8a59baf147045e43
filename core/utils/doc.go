// Package utils provides helpers for decoding loosely typed printer
// payloads.
//
// Printer firmware is inconsistent about JSON types: the same field may
// arrive as a number on one model and as a quoted string on another.
// ToInt and ToString normalize both forms.
package utils
