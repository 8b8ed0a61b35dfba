// Package demos holds the demo apps shared by the example programs and the
// snapshot command.
package demos

import (
	"fmt"

	"github.com/mathviz/c5"
)

// Kind selects a demo.
type Kind uint8

const (
	KindComplexMult Kind = iota
	KindPartialSums
	KindComplexMapping
)

// Kinds lists every demo.
var Kinds = []Kind{KindComplexMult, KindPartialSums, KindComplexMapping}

func (k Kind) String() string {
	switch k {
	case KindComplexMult:
		return "complexmult"
	case KindPartialSums:
		return "partialsums"
	case KindComplexMapping:
		return "complexmapping"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// ParseKind returns the demo named s.
func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds {
		if k.String() == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("demos: unknown demo %q", s)
}

// New builds the demo app for k. Width and height in cfg are replaced by
// the demo's own layout.
func New(k Kind, cfg c5.Config) (*c5.App, error) {
	switch k {
	case KindComplexMult:
		return NewComplexMult(cfg)
	case KindPartialSums:
		return NewPartialSums(cfg)
	case KindComplexMapping:
		return NewComplexMapping(cfg)
	default:
		return nil, fmt.Errorf("demos: unknown demo %d", k)
	}
}
