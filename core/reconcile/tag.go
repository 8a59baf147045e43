package reconcile

import "spool-sync/core/spoolman"

// TagExtraKey is the spool extra field holding the encoded tray tag.
const TagExtraKey = "tag"

const tagQuote = '"'

// EncodeTag wraps a tag in the quote layer Spoolman extra fields are
// stored with.
func EncodeTag(tag string) string {
	return string(tagQuote) + tag + string(tagQuote)
}

// DecodeTag strips exactly one layer of surrounding quotes from a stored
// tag. ok is false when the value is not wrapped.
func DecodeTag(stored string) (tag string, ok bool) {
	if len(stored) < 2 || stored[0] != tagQuote || stored[len(stored)-1] != tagQuote {
		return "", false
	}
	return stored[1 : len(stored)-1], true
}

// SpoolTag returns the decoded tag of a spool record.
func SpoolTag(spool spoolman.Spool) (string, bool) {
	stored, exists := spool.Extra[TagExtraKey]
	if !exists {
		return "", false
	}
	return DecodeTag(stored)
}
