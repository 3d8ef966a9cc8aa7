//go:build !cgo || !hyperscan

package engine

import "fmt"

// NewHyperscan stub for builds without Hyperscan support.
func NewHyperscan(pattern string, flags Flags) (Matcher, error) {
	return nil, fmt.Errorf("hyperscan engine requires CGO (build with CGO_ENABLED=1 and -tags=hyperscan)")
}
