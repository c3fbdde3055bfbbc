package polyroot

import (
	"math"
	"strconv"
	"strings"
)

// String renders p as "f(x) = 2x^3 - x + 4", highest exponent first.
func (p *Polynomial) String() string {
	return "f(x) = " + p.render(func(e int) string { return "x^" + strconv.Itoa(e) })
}

func (p *Polynomial) LaTeX() string {
	return p.render(func(e int) string { return "x^{" + strconv.Itoa(e) + "}" })
}

func (p *Polynomial) render(pow func(int) string) string {
	exps := p.Exponents()
	if len(exps) == 0 {
		return "0"
	}
	var sb strings.Builder
	for i := len(exps) - 1; i >= 0; i-- {
		e := exps[i]
		c := p.coeffs[e]
		switch {
		case i == len(exps)-1 && c < 0:
			sb.WriteString("-")
		case i != len(exps)-1 && c < 0:
			sb.WriteString(" - ")
		case i != len(exps)-1:
			sb.WriteString(" + ")
		}
		abs := math.Abs(c)
		if abs != 1 || e == 0 {
			sb.WriteString(strconv.FormatFloat(abs, 'g', -1, 64))
		}
		switch e {
		case 0:
		case 1:
			sb.WriteString("x")
		default:
			sb.WriteString(pow(e))
		}
	}
	return sb.String()
}
