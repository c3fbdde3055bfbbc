package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/njchilds90/polyroot"
)

// parseTerms turns "exp:coeff" arguments into a polynomial. Repeated
// exponents are summed.
func parseTerms(args []string) (*polyroot.Polynomial, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("no terms given")
	}
	p := polyroot.NewPolynomial()
	for _, arg := range args {
		expStr, coeffStr, ok := strings.Cut(arg, ":")
		if !ok {
			return nil, fmt.Errorf("term %q: want exp:coeff", arg)
		}
		exp, err := strconv.Atoi(strings.TrimSpace(expStr))
		if err != nil || exp < 0 {
			return nil, fmt.Errorf("term %q: exponent must be a non-negative integer", arg)
		}
		if exp > polyroot.MaxExponent {
			return nil, fmt.Errorf("term %q: exponent exceeds %d", arg, polyroot.MaxExponent)
		}
		coeff, err := strconv.ParseFloat(strings.TrimSpace(coeffStr), 64)
		if err != nil {
			return nil, fmt.Errorf("term %q: %w", arg, err)
		}
		p.Set(exp, p.Coeff(exp)+coeff)
	}
	return p, nil
}

// parseRoots parses a comma separated list of roots.
func parseRoots(s string) ([]float64, error) {
	parts := strings.Split(s, ",")
	roots := make([]float64, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		r, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return nil, fmt.Errorf("root %q: %w", part, err)
		}
		roots = append(roots, r)
	}
	if len(roots) == 0 {
		return nil, fmt.Errorf("no roots given")
	}
	return roots, nil
}

func formatRoots(roots []float64, places int) string {
	if len(roots) == 0 {
		return "no real roots"
	}
	strs := make([]string, len(roots))
	for i, r := range roots {
		strs[i] = strconv.FormatFloat(r, 'f', places, 64)
	}
	return strings.Join(strs, ", ")
}
