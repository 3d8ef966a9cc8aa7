package types

// SourceResult holds the outcome of scanning one input source.
// Ranges is the final sequence: inverted already if inversion was requested.
type SourceResult struct {
	// Name is the display name of the source ("-" for stdin).
	Name string

	// Data is the scanned buffer (after any trailing-newline trim).
	// Retained so the renderer can emit matched bytes.
	Data []byte

	// Ranges is the final match sequence over Data.
	Ranges Sequence
}

// Matched reports the source's verdict: true when the final sequence is
// non-empty. Under inverted matching this means "has at least one gap",
// which is the verdict the filename-listing modes use.
func (r *SourceResult) Matched() bool {
	return len(r.Ranges) > 0
}
