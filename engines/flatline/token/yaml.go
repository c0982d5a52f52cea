package token

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Program documents are YAML with a single top-level "tokens" list; each entry
// is a one-key mapping selecting the token case:
//
//	tokens:
//	  - var: sum
//	  - op: "="
//	  - num: 0
//
// The document is an interchange format for already-classified tokens, not a
// source language: there is no lexer behind it.

// ErrEmptyDocument is returned when a document decodes to zero tokens.
var ErrEmptyDocument = errors.New("program document has no tokens")

// operator spellings. Encode always emits the canonical form; decode accepts
// the aliases. "<" is the spelling legacy producers used for the <= compare,
// and "~=" is an older spelling of the approximate equality.
var opSpellings = map[string]OperatorKind{
	"+":  OpAdd,
	"-":  OpSubtract,
	"*":  OpMultiply,
	"<=": OpLessOrEqual,
	"<":  OpLessOrEqual,
	">":  OpGreaterThan,
	"==": OpApproxEqual,
	"~=": OpApproxEqual,
	"=":  OpAssign,
}

var ctlSpellings = map[string]ControlKind{
	"for":    For,
	"if":     If,
	"else":   Else,
	"endfor": EndFor,
	"endif":  EndIf,
}

// tokenDoc is the YAML wire shape of one token. Exactly one field may be set.
type tokenDoc struct {
	Num *float64 `yaml:"num,omitempty"`
	Var *string  `yaml:"var,omitempty"`
	Op  *string  `yaml:"op,omitempty"`
	Ctl *string  `yaml:"ctl,omitempty"`
}

// MarshalYAML implements yaml.Marshaler, emitting the canonical one-key form.
func (t Token) MarshalYAML() (any, error) {
	switch t.Kind {
	case KindNumber:
		v := t.Num
		return tokenDoc{Num: &v}, nil
	case KindVariable:
		name := t.Name
		return tokenDoc{Var: &name}, nil
	case KindOperator:
		s := t.Op.String()
		if _, ok := opSpellings[s]; !ok {
			return nil, fmt.Errorf("unencodable operator kind %d", t.Op)
		}
		return tokenDoc{Op: &s}, nil
	case KindMarker:
		s := t.Ctl.String()
		if _, ok := ctlSpellings[s]; !ok {
			return nil, fmt.Errorf("unencodable marker kind %d", t.Ctl)
		}
		return tokenDoc{Ctl: &s}, nil
	default:
		return nil, fmt.Errorf("unencodable token kind %d", t.Kind)
	}
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (t *Token) UnmarshalYAML(node *yaml.Node) error {
	var doc tokenDoc
	if err := node.Decode(&doc); err != nil {
		return err
	}

	set := 0
	if doc.Num != nil {
		set++
	}
	if doc.Var != nil {
		set++
	}
	if doc.Op != nil {
		set++
	}
	if doc.Ctl != nil {
		set++
	}
	if set != 1 {
		return fmt.Errorf("line %d: token entry must set exactly one of num/var/op/ctl, got %d", node.Line, set)
	}

	switch {
	case doc.Num != nil:
		*t = Number(*doc.Num)
	case doc.Var != nil:
		if *doc.Var == "" {
			return fmt.Errorf("line %d: variable name is empty", node.Line)
		}
		*t = Variable(*doc.Var)
	case doc.Op != nil:
		op, ok := opSpellings[*doc.Op]
		if !ok {
			return fmt.Errorf("line %d: unknown operator %q", node.Line, *doc.Op)
		}
		*t = Operator(op)
	case doc.Ctl != nil:
		ctl, ok := ctlSpellings[*doc.Ctl]
		if !ok {
			return fmt.Errorf("line %d: unknown control marker %q", node.Line, *doc.Ctl)
		}
		*t = Marker(ctl)
	}
	return nil
}

// programDoc is the top-level document shape.
type programDoc struct {
	Tokens []Token `yaml:"tokens"`
}

// MarshalDocument renders tokens as a canonical program document. The output
// is deterministic, so checksums over it are stable identifiers for a program.
func MarshalDocument(toks []Token) ([]byte, error) {
	return yaml.Marshal(programDoc{Tokens: toks})
}

// UnmarshalDocument decodes a program document into its token sequence.
// A document without tokens returns ErrEmptyDocument.
func UnmarshalDocument(data []byte) ([]Token, error) {
	var doc programDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("malformed program document: %w", err)
	}
	if len(doc.Tokens) == 0 {
		return nil, ErrEmptyDocument
	}
	return doc.Tokens, nil
}
