package strtod

// debugStrtod gates the invariant assertions in bigInt.validate. Left false
// in committed code; the Go compiler folds every debugStrtod-guarded branch
// away when it's a constant false, so there's no runtime cost.
const debugStrtod = false

//go:generate stringer -type=refineCase

// refineCase classifies which branch of the refinement loop's three-way
// comparison (spec.md §4.4) produced a given rv update. The loop itself
// switches on cmp's plain int result; refineCase exists so the
// debugStrtod-guarded consistency check in slowpath.go (debugAssertRefineCase)
// has a named value to panic with when classification and cmp disagree.
type refineCase int

const (
	caseLess refineCase = iota
	caseEqual
	caseGreater
)
