package demos

import (
	"fmt"
	"math/cmplx"
)

// Mapping is a named complex function shown by the mapping demo.
type Mapping uint8

const (
	MappingExp Mapping = iota
	MappingCos
	MappingSin
	MappingCosh
	MappingSinh
	MappingSquare
	MappingInverse
	MappingLog
)

// Mappings lists every mapping in button order.
var Mappings = []Mapping{
	MappingExp, MappingCos, MappingSin, MappingCosh,
	MappingSinh, MappingSquare, MappingInverse, MappingLog,
}

// Eval applies the mapping to z.
func (m Mapping) Eval(z complex128) complex128 {
	switch m {
	case MappingExp:
		return cmplx.Exp(z)
	case MappingCos:
		return cmplx.Cos(z)
	case MappingSin:
		return cmplx.Sin(z)
	case MappingCosh:
		return cmplx.Cosh(z)
	case MappingSinh:
		return cmplx.Sinh(z)
	case MappingSquare:
		return z * z
	case MappingInverse:
		return 1 / z
	case MappingLog:
		return cmplx.Log(z)
	default:
		panic(fmt.Sprintf("demos: unknown mapping %d", m))
	}
}

// TeX returns the formula as math markup, e.g. `\exp(z)`.
func (m Mapping) TeX() string {
	switch m {
	case MappingExp:
		return `\exp(z)`
	case MappingCos:
		return `\cos(z)`
	case MappingSin:
		return `\sin(z)`
	case MappingCosh:
		return `\cosh(z)`
	case MappingSinh:
		return `\sinh(z)`
	case MappingSquare:
		return `z^2`
	case MappingInverse:
		return `1/z`
	case MappingLog:
		return `\log(z)`
	default:
		return fmt.Sprintf("mapping(%d)", uint8(m))
	}
}

func (m Mapping) String() string {
	switch m {
	case MappingExp:
		return "exp"
	case MappingCos:
		return "cos"
	case MappingSin:
		return "sin"
	case MappingCosh:
		return "cosh"
	case MappingSinh:
		return "sinh"
	case MappingSquare:
		return "square"
	case MappingInverse:
		return "inverse"
	case MappingLog:
		return "log"
	default:
		return fmt.Sprintf("Mapping(%d)", uint8(m))
	}
}

// ParseMapping returns the mapping named s.
func ParseMapping(s string) (Mapping, error) {
	for _, m := range Mappings {
		if m.String() == s {
			return m, nil
		}
	}
	return 0, fmt.Errorf("demos: unknown mapping %q", s)
}

// mapPath applies m to every point of a flat x0,y0,x1,y1,... path.
func (m Mapping) mapPath(xy []float64) []float64 {
	out := make([]float64, len(xy)&^1)
	for i := 0; i+1 < len(xy); i += 2 {
		w := m.Eval(complex(xy[i], xy[i+1]))
		out[i], out[i+1] = real(w), imag(w)
	}
	return out
}
