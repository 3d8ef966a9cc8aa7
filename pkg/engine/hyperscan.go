//go:build cgo && hyperscan

package engine

import (
	"sort"

	"github.com/flier/gohs/hyperscan"

	"github.com/bytegrep/bytegrep/pkg/types"
)

// hyperscanMatcher matches with a Hyperscan block database. Hyperscan
// reports an event for every match end position; Open collects the events
// and reduces them to a leftmost-longest non-overlapping sequence, which
// the session then serves.
type hyperscanMatcher struct {
	db hyperscan.BlockDatabase
}

// NewHyperscan compiles pattern into a Hyperscan-backed matcher.
// Requires CGO and the Hyperscan/Vectorscan library on the system.
func NewHyperscan(pattern string, flags Flags) (Matcher, error) {
	cf := hyperscan.SomLeftMost
	if flags.CaseInsensitive {
		cf |= hyperscan.Caseless
	}
	if flags.Unicode {
		cf |= hyperscan.Utf8Mode
	}

	p := hyperscan.NewPattern(pattern, cf)
	db, err := hyperscan.NewBlockDatabase(p)
	if err != nil {
		return nil, &CompileError{Pattern: pattern, Err: err}
	}

	return &hyperscanMatcher{db: db}, nil
}

func (m *hyperscanMatcher) Open(buf []byte) (Session, error) {
	scratch, err := hyperscan.NewScratch(m.db)
	if err != nil {
		return nil, err
	}
	defer scratch.Free()

	var events []types.ByteRange
	handler := hyperscan.MatchHandler(func(id uint, from, to uint64, fl uint, ctx interface{}) error {
		events = append(events, types.ByteRange{Start: int(from), End: int(to)})
		return nil
	})

	if len(buf) > 0 {
		if err := m.db.Scan(buf, scratch, handler, nil); err != nil {
			return nil, err
		}
	}

	return &hyperscanSession{matches: reduceEvents(events)}, nil
}

func (m *hyperscanMatcher) Close() error {
	return m.db.Close()
}

// reduceEvents picks the leftmost-longest non-overlapping subset of the
// reported match events, in ascending start order.
func reduceEvents(events []types.ByteRange) []types.ByteRange {
	sort.Slice(events, func(i, j int) bool {
		if events[i].Start != events[j].Start {
			return events[i].Start < events[j].Start
		}
		return events[i].End > events[j].End
	})

	var out []types.ByteRange
	cursor := 0
	for _, e := range events {
		if e.Start < cursor {
			continue
		}
		out = append(out, e)
		cursor = e.End
		if cursor <= e.Start {
			cursor = e.Start + 1
		}
	}
	return out
}

type hyperscanSession struct {
	matches []types.ByteRange
}

func (s *hyperscanSession) Next(from int) (types.ByteRange, bool) {
	i := sort.Search(len(s.matches), func(i int) bool {
		return s.matches[i].Start >= from
	})
	if i == len(s.matches) {
		return types.ByteRange{}, false
	}
	return s.matches[i], true
}
