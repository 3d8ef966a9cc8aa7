package types

// Mode selects what the renderer emits for each source.
//
// The filename-listing flags form one mode family and the span sub-flags
// another. When a filename-listing flag is set it wins over the sub-flags;
// with nothing set the default is listing matched filenames.
type Mode struct {
	// ListMatched lists names of sources whose verdict is true (-l).
	ListMatched bool

	// ListUnmatched lists names of sources whose verdict is false (-L).
	ListUnmatched bool

	// ShowOffset emits each range's start offset in hex (-b).
	ShowOffset bool

	// ShowBytes emits each range's raw bytes verbatim (-o).
	ShowBytes bool
}

// FileListing reports whether the filename-listing family is active,
// either explicitly or as the default when no sub-flag is set.
func (m Mode) FileListing() bool {
	if m.ListMatched || m.ListUnmatched {
		return true
	}
	return !m.ShowOffset && !m.ShowBytes
}

// NamePolicy decides whether rendered records carry a filename prefix.
type NamePolicy int

const (
	// NameAuto suppresses the name for a single source and shows it
	// for two or more.
	NameAuto NamePolicy = iota
	NameShow
	NameSuppress
)

// ShowNames resolves the policy against the number of input sources.
func (p NamePolicy) ShowNames(sources int) bool {
	switch p {
	case NameShow:
		return true
	case NameSuppress:
		return false
	default:
		return sources > 1
	}
}
