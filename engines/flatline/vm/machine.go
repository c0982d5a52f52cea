// Package vm implements the flatline evaluation machine: a single-pass,
// recursive walk over a flat token array that fuses expression evaluation,
// variable mutation and control-flow boundary resolution in one scan.
//
// There is no syntax tree. Nested constructs are fixed-offset windows into
// the same backing array, delimited by control markers and located with a
// linear scan; the machine recurses on re-sliced sub-ranges of the immutable
// token sequence. Expressions fold strictly left to right with at most one
// operator outstanding; there is no precedence table.
package vm

import (
	"fmt"

	"github.com/robbyt/go-tapescript/engines/flatline/token"
)

// Machine evaluates token programs against one flat variable table. The
// table is created empty with the Machine, persists across Evaluate calls on
// it, and is discarded with it. A Machine is not safe for concurrent use:
// it is single-threaded by design and owns its Store exclusively.
type Machine struct {
	store *Store
}

// New returns a Machine with an empty variable table.
func New() *Machine {
	return &Machine{store: NewStore()}
}

// Store exposes the variable table, to seed inputs before a run or inspect
// results after one.
func (m *Machine) Store() *Store {
	return m.store
}

// Evaluate walks one token range left to right and returns its value. It is
// both the public entry point and the recursive workhorse for control-block
// bodies; sub-ranges are plain re-slices of the caller's token sequence,
// which is never mutated. An empty range yields 0 and touches nothing.
//
// Any failure aborts the walk and propagates through every enclosing
// recursive call to the top-level caller.
func (m *Machine) Evaluate(toks []token.Token) (float64, error) {
	var result float64
	var pending token.OperatorKind
	hasPending := false

	for i := 0; i < len(toks); i++ {
		tok := toks[i]
		switch tok.Kind {
		case token.KindNumber:
			switch {
			case hasPending && pending == token.OpAssign:
				// The assignment target is fixed by position: the variable
				// reference exactly two tokens back from the literal.
				if i < 2 || toks[i-2].Kind != token.KindVariable {
					return 0, fmt.Errorf(
						"%w: no variable reference two tokens before the literal at offset %d",
						ErrInvalidAssignment, i)
				}
				m.store.Assign(toks[i-2].Name, tok.Num)
				result = tok.Num
				hasPending = false
			case hasPending:
				result = applyOperator(result, tok.Num, pending)
				hasPending = false
			default:
				result = tok.Num
			}

		case token.KindVariable:
			value, ok := m.store.Lookup(tok.Name)
			if !ok {
				return 0, fmt.Errorf("%w: %q", ErrUndefinedVariable, tok.Name)
			}
			switch {
			case hasPending && pending == token.OpAssign:
				// Only a literal is a legal right-hand side for an assign in
				// this encoding.
				return 0, fmt.Errorf(
					"%w: variable %q on the right of an assign at offset %d",
					ErrInvalidAssignment, tok.Name, i)
			case hasPending:
				result = applyOperator(result, value, pending)
				hasPending = false
			default:
				result = value
			}

		case token.KindOperator:
			// At most one operator is outstanding; a newer one silently
			// replaces it. Chains are strictly binary, folded left to right.
			pending = tok.Op
			hasPending = true

		case token.KindMarker:
			switch tok.Ctl {
			case token.For:
				next, err := m.evalFor(toks, i)
				if err != nil {
					return 0, err
				}
				i = next
			case token.If:
				next, err := m.evalIf(toks, i)
				if err != nil {
					return 0, err
				}
				i = next
			default:
				// Else, EndFor and EndIf reached by the main scan are inert:
				// they only mean something when findMarker locates them as a
				// block boundary.
			}
		}
	}

	return result, nil
}

// evalFor runs one counted loop. toks[i] is the for marker; the fixed shape
// after it is: loop variable at i+1, start expression at i+2, end expression
// at i+3 (single-token sub-expressions, evaluated once), body from i+4 up to
// the next endfor. Returns the endfor offset so the outer scan resumes after
// the loop.
func (m *Machine) evalFor(toks []token.Token, i int) (int, error) {
	if remaining := len(toks) - (i + 1); remaining < 5 {
		return 0, fmt.Errorf(
			"%w: %d tokens after the marker at offset %d, need at least 5",
			ErrInvalidForLoop, remaining, i)
	}
	loopVar := toks[i+1]
	if loopVar.Kind != token.KindVariable {
		return 0, fmt.Errorf(
			"%w: loop variable slot at offset %d holds a %s token",
			ErrInvalidForLoop, i+1, loopVar.Kind)
	}

	start, err := m.Evaluate(toks[i+2 : i+3])
	if err != nil {
		return 0, err
	}
	end, err := m.Evaluate(toks[i+3 : i+4])
	if err != nil {
		return 0, err
	}

	bodyStart := i + 4
	bodyEnd, found := findMarker(toks, bodyStart, token.EndFor)
	if !found {
		return 0, fmt.Errorf("%w: for marker at offset %d", ErrMissingEndFor, i)
	}
	if toks[bodyStart].Kind != token.KindVariable {
		return 0, fmt.Errorf(
			"%w: loop body at offset %d must begin with the accumulator variable",
			ErrInvalidForLoop, bodyStart)
	}

	// Each iteration binds the loop variable, runs the body, then writes the
	// body's result back into whatever variable the body's FIRST token names.
	// The loop accumulates into that variable regardless of what the body
	// computed. Intentional, and load-bearing for existing programs.
	accumulator := toks[bodyStart].Name
	for v := start; v <= end; v += 1.0 {
		m.store.Assign(loopVar.Name, v)
		bodyResult, err := m.Evaluate(toks[bodyStart:bodyEnd])
		if err != nil {
			return 0, err
		}
		m.store.Assign(accumulator, bodyResult)
	}

	return bodyEnd, nil
}

// evalIf runs one conditional. toks[i] is the if marker, followed by exactly
// three condition tokens (operand, operator, operand), the then body, an
// optional else marker with its body, and a mandatory endif. Branch bodies
// communicate through the store; their values are discarded. Returns the
// endif offset so the outer scan resumes after the conditional.
func (m *Machine) evalIf(toks []token.Token, i int) (int, error) {
	if remaining := len(toks) - (i + 1); remaining < 3 {
		return 0, fmt.Errorf(
			"%w: %d tokens after the marker at offset %d, need at least 3",
			ErrInvalidIfStatement, remaining, i)
	}

	cond, err := m.Evaluate(toks[i+1 : i+4])
	if err != nil {
		return 0, err
	}

	thenStart := i + 4
	elsePos, elseFound := findMarker(toks, thenStart, token.Else)
	// An else sitting exactly at the then-body start cannot be told apart
	// from an absent one: findMarker reports the body start for both. The
	// flat encoding has no way to express an empty then-branch before an else.
	if elsePos == thenStart {
		elseFound = false
	}

	endPos, found := findMarker(toks, elsePos, token.EndIf)
	if !found {
		return 0, fmt.Errorf("%w: if marker at offset %d", ErrMissingEndIf, i)
	}

	if cond != 0.0 {
		thenEnd := endPos
		if elseFound {
			thenEnd = elsePos
		}
		if _, err := m.Evaluate(toks[thenStart:thenEnd]); err != nil {
			return 0, err
		}
	} else if elseFound {
		if _, err := m.Evaluate(toks[elsePos+1 : endPos]); err != nil {
			return 0, err
		}
	}
	// A false condition with no else runs the empty range: zero effects.

	return endPos, nil
}
