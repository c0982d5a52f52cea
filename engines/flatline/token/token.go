// Package token defines the flatline instruction vocabulary: the tagged token
// variant that programs are assembled from, and the YAML document codec used
// to exchange pre-tokenized programs.
//
// Tokens are produced by an external producer (a host application, a test
// fixture, or a program document); flatline performs no lexing of source
// text. A program is an ordered, immutable []Token; the machine in
// engines/flatline/vm walks it positionally.
package token

import "strconv"

// Kind discriminates the active case of a Token.
type Kind uint8

const (
	// KindNumber is a float64 literal.
	KindNumber Kind = iota
	// KindVariable is a reference to a named variable.
	KindVariable
	// KindOperator is a binary or assignment operator.
	KindOperator
	// KindMarker is a structural control marker (For/If/Else/EndFor/EndIf).
	KindMarker
)

func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindVariable:
		return "variable"
	case KindOperator:
		return "operator"
	case KindMarker:
		return "marker"
	default:
		return "unknown"
	}
}

// OperatorKind enumerates the binary and assignment operators.
type OperatorKind uint8

const (
	OpAdd OperatorKind = iota
	OpSubtract
	OpMultiply

	// OpLessOrEqual compares left <= right. This is the flatline encoding of
	// the historical "less than" operator, which always compared with <=;
	// the kind is named for what it does. Decoders accept the legacy "<"
	// spelling for it (see yaml.go).
	OpLessOrEqual

	OpGreaterThan

	// OpApproxEqual compares |left - right| < 1e-8.
	OpApproxEqual

	// OpAssign commits a literal into the variable named two tokens back.
	OpAssign
)

func (o OperatorKind) String() string {
	switch o {
	case OpAdd:
		return "+"
	case OpSubtract:
		return "-"
	case OpMultiply:
		return "*"
	case OpLessOrEqual:
		return "<="
	case OpGreaterThan:
		return ">"
	case OpApproxEqual:
		return "=="
	case OpAssign:
		return "="
	default:
		return "op(" + strconv.Itoa(int(o)) + ")"
	}
}

// ControlKind enumerates the structural markers. Markers carry no payload;
// the tokens around them, at fixed relative positions, carry the loop
// variable, bounds, condition and bodies.
type ControlKind uint8

const (
	For ControlKind = iota
	If
	Else
	EndFor
	EndIf
)

func (c ControlKind) String() string {
	switch c {
	case For:
		return "for"
	case If:
		return "if"
	case Else:
		return "else"
	case EndFor:
		return "endfor"
	case EndIf:
		return "endif"
	default:
		return "ctl(" + strconv.Itoa(int(c)) + ")"
	}
}

// Token is one classified unit of a flatline program. Exactly one case is
// active, selected by Kind; the payload fields for the other cases are zero.
// Construct tokens with Number, Variable, Operator and Marker rather than as
// struct literals; the constructors keep the unused payloads zeroed.
type Token struct {
	Kind Kind

	// Num is the literal value when Kind == KindNumber.
	Num float64
	// Name is the variable name when Kind == KindVariable.
	Name string
	// Op is the operator when Kind == KindOperator.
	Op OperatorKind
	// Ctl is the marker when Kind == KindMarker.
	Ctl ControlKind
}

// Number returns a NumberLiteral token.
func Number(v float64) Token {
	return Token{Kind: KindNumber, Num: v}
}

// Variable returns a VariableRef token.
func Variable(name string) Token {
	return Token{Kind: KindVariable, Name: name}
}

// Operator returns an Operator token.
func Operator(op OperatorKind) Token {
	return Token{Kind: KindOperator, Op: op}
}

// Marker returns a ControlMarker token.
func Marker(ctl ControlKind) Token {
	return Token{Kind: KindMarker, Ctl: ctl}
}

// IsMarker reports whether the token is a control marker of the given kind.
func (t Token) IsMarker(ctl ControlKind) bool {
	return t.Kind == KindMarker && t.Ctl == ctl
}

func (t Token) String() string {
	switch t.Kind {
	case KindNumber:
		return strconv.FormatFloat(t.Num, 'g', -1, 64)
	case KindVariable:
		return "$" + t.Name
	case KindOperator:
		return t.Op.String()
	case KindMarker:
		return t.Ctl.String()
	default:
		return "token(?)"
	}
}
