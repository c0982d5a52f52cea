package vm

import "github.com/robbyt/go-tapescript/engines/flatline/token"

// findMarker scans forward from start and returns the offset of the first
// control marker of the target kind. When start is already at the end of the
// range the scan is skipped entirely and (start, false) is returned; the same
// (start, false) comes back when the scan runs off the end without a match.
// The caller decides whether a miss is fatal (EndFor/EndIf) or tolerated (an
// optional Else, where the miss leaves the offset at the body start).
//
// The scan does not track nesting depth: a marker belonging to an inner block
// of the same kind is indistinguishable from the intended outer one. That is
// a known limitation of the flat encoding: do not "fix" it with depth
// counting, which would change where the boundaries of existing programs land.
func findMarker(toks []token.Token, start int, target token.ControlKind) (int, bool) {
	if start == len(toks) {
		return start, false
	}
	for i := start; i < len(toks); i++ {
		if toks[i].IsMarker(target) {
			return i, true
		}
	}
	return start, false
}
