package polyroot

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// ============================================================
// Tool Interface
// ============================================================

type ToolRequest struct {
	Tool   string                 `json:"tool"`
	Params map[string]interface{} `json:"params"`
}

type ToolResponse struct {
	Result interface{} `json:"result,omitempty"`
	LaTeX  string      `json:"latex,omitempty"`
	String string      `json:"string,omitempty"`
	Error  string      `json:"error,omitempty"`
}

// HandleToolCall runs one tool request against f. Numbers in results are
// rendered as strings so NaN and ±Inf survive JSON encoding.
func (f *Finder) HandleToolCall(req ToolRequest) ToolResponse {
	getPoly := func(key string) (*Polynomial, error) {
		v, ok := req.Params[key]
		if !ok {
			return nil, fmt.Errorf("missing param: %s", key)
		}
		m, ok := v.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("invalid type for param %s", key)
		}
		p, err := FromJSON(m)
		if err != nil {
			return nil, err
		}
		if err := f.checkDegree(p); err != nil {
			return nil, err
		}
		return p, nil
	}
	getNumber := func(key string) (float64, error) {
		v, ok := req.Params[key]
		if !ok {
			return 0, fmt.Errorf("missing param: %s", key)
		}
		n, ok := v.(float64)
		if !ok {
			return 0, fmt.Errorf("param %s must be a number", key)
		}
		return n, nil
	}
	respondPoly := func(p *Polynomial) ToolResponse {
		return ToolResponse{Result: p.Terms(), LaTeX: p.LaTeX(), String: p.String()}
	}
	respondNumbers := func(xs []float64) ToolResponse {
		strs := make([]string, len(xs))
		for i, x := range xs {
			strs[i] = formatNumber(x)
		}
		return ToolResponse{Result: strs, String: strings.Join(strs, ", ")}
	}
	fail := func(err error) ToolResponse { return ToolResponse{Error: err.Error()} }

	switch req.Tool {
	case "find_roots":
		p, err := getPoly("poly")
		if err != nil {
			return fail(err)
		}
		roots, err := f.Find(p)
		if err != nil {
			return fail(err)
		}
		return respondNumbers(roots)

	case "solve_quadratic":
		p, err := getPoly("poly")
		if err != nil {
			return fail(err)
		}
		xs, err := f.Quadratic(p)
		if err != nil {
			return fail(err)
		}
		return respondNumbers(xs)

	case "newton":
		p, err := getPoly("poly")
		if err != nil {
			return fail(err)
		}
		x0, err := getNumber("x0")
		if err != nil {
			return fail(err)
		}
		return respondNumbers([]float64{f.Newton(p, x0)})

	case "evaluate":
		p, err := getPoly("poly")
		if err != nil {
			return fail(err)
		}
		x, err := getNumber("x")
		if err != nil {
			return fail(err)
		}
		return respondNumbers([]float64{p.Evaluate(x)})

	case "differentiate":
		p, err := getPoly("poly")
		if err != nil {
			return fail(err)
		}
		return respondPoly(p.Differentiate())

	case "degree":
		p, err := getPoly("poly")
		if err != nil {
			return fail(err)
		}
		d := p.Degree()
		return ToolResponse{Result: d, String: strconv.Itoa(d)}

	case "to_latex":
		p, err := getPoly("poly")
		if err != nil {
			return fail(err)
		}
		return ToolResponse{LaTeX: p.LaTeX(), String: p.String()}

	case "mcp_spec":
		return ToolResponse{Result: ToolSpec()}
	}
	return ToolResponse{Error: fmt.Sprintf("unknown tool: %s", req.Tool)}
}

func formatNumber(x float64) string {
	return strconv.FormatFloat(x, 'g', -1, 64)
}

// ToolSpec returns the JSON schema of every tool HandleToolCall accepts.
func ToolSpec() string {
	poly := map[string]string{"poly": "object"}
	tools := []map[string]interface{}{
		ts("find_roots", "Real roots of a polynomial of degree >= 2", []string{"poly"}, poly),
		ts("solve_quadratic", "Raw quadratic formula values (may be NaN)", []string{"poly"}, poly),
		ts("newton", "Fixed-budget Newton refinement from x0", []string{"poly", "x0"}, map[string]string{"poly": "object", "x0": "number"}),
		ts("evaluate", "Evaluate the polynomial at x", []string{"poly", "x"}, map[string]string{"poly": "object", "x": "number"}),
		ts("differentiate", "First derivative", []string{"poly"}, poly),
		ts("degree", "Highest exponent with a non-zero coefficient", []string{"poly"}, poly),
		ts("to_latex", "Render as LaTeX", []string{"poly"}, poly),
		ts("mcp_spec", "Return this tool schema", []string{}, map[string]string{}),
	}
	spec := map[string]interface{}{"tools": tools}
	b, _ := json.MarshalIndent(spec, "", "  ")
	return string(b)
}

func ts(name, description string, required []string, props map[string]string) map[string]interface{} {
	properties := map[string]interface{}{}
	for k, typ := range props {
		properties[k] = map[string]interface{}{"type": typ}
	}
	return map[string]interface{}{
		"name":        name,
		"description": description,
		"inputSchema": map[string]interface{}{
			"type":       "object",
			"properties": properties,
			"required":   required,
		},
	}
}
