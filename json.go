package polyroot

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// ============================================================
// JSON Serialization
// ============================================================

// Wire form: {"coefficients": {"3": 1, "0": -6}}.
type polynomialJSON struct {
	Coefficients map[string]float64 `json:"coefficients"`
}

func (p *Polynomial) MarshalJSON() ([]byte, error) {
	out := polynomialJSON{Coefficients: make(map[string]float64, len(p.coeffs))}
	for e, c := range p.coeffs {
		out.Coefficients[strconv.Itoa(e)] = c
	}
	return json.Marshal(out)
}

func (p *Polynomial) UnmarshalJSON(data []byte) error {
	var in polynomialJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	if in.Coefficients == nil {
		return fmt.Errorf("polynomial: missing 'coefficients'")
	}
	parsed := NewPolynomial()
	for k, c := range in.Coefficients {
		e, err := parseExponent(k)
		if err != nil {
			return err
		}
		parsed.Set(e, c)
	}
	*p = *parsed
	return nil
}

func ToJSON(p *Polynomial) (string, error) {
	b, err := json.Marshal(p)
	return string(b), err
}

// FromJSON builds a polynomial from an already-decoded JSON object.
// The object either carries "coefficients" (exponent → value) or "roots"
// with an optional "lead" factor.
func FromJSON(data map[string]interface{}) (*Polynomial, error) {
	if data == nil {
		return nil, fmt.Errorf("polynomial must be an object")
	}
	if raw, ok := data["coefficients"]; ok {
		m, ok := raw.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("polynomial: 'coefficients' must be an object")
		}
		p := NewPolynomial()
		for k, v := range m {
			e, err := parseExponent(k)
			if err != nil {
				return nil, err
			}
			c, ok := v.(float64)
			if !ok {
				return nil, fmt.Errorf("polynomial: coefficient %q must be a number", k)
			}
			p.Set(e, c)
		}
		return p, nil
	}
	if raw, ok := data["roots"]; ok {
		arr, ok := raw.([]interface{})
		if !ok {
			return nil, fmt.Errorf("polynomial: 'roots' must be an array")
		}
		roots := make([]float64, len(arr))
		for i, v := range arr {
			r, ok := v.(float64)
			if !ok {
				return nil, fmt.Errorf("polynomial: roots[%d] must be a number", i)
			}
			roots[i] = r
		}
		lead := 1.0
		if lv, ok := data["lead"]; ok {
			if lead, ok = lv.(float64); !ok {
				return nil, fmt.Errorf("polynomial: 'lead' must be a number")
			}
		}
		return FromRoots(lead, roots...), nil
	}
	return nil, fmt.Errorf("polynomial: need 'coefficients' or 'roots'")
}

func parseExponent(s string) (int, error) {
	e, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("polynomial: invalid exponent %q", s)
	}
	if e < 0 {
		return 0, fmt.Errorf("polynomial: negative exponent %d", e)
	}
	if e > MaxExponent {
		return 0, fmt.Errorf("polynomial: exponent %d exceeds %d", e, MaxExponent)
	}
	return e, nil
}
