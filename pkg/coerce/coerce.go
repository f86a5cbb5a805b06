// Package coerce converts text tokens into the typed values the function
// library consumes. Each coercer is a pure function; a malformed token
// yields an errdefs.CoercionError.
package coerce

import (
	"math"
	"strconv"
	"strings"

	"github.com/numstack/numctl/pkg/errdefs"
	"github.com/numstack/numctl/pkg/matrix"
)

// Coercer converts one text token into a typed value. Name identifies the
// target type in help text and generated docs.
type Coercer struct {
	Name string
	Fn   func(token string) (any, error)
}

// Variadic converts all remaining tokens into one value.
type Variadic struct {
	Name string
	Fn   func(tokens []string) (any, error)
}

func fail(token, want string, err error) (any, error) {
	return nil, &errdefs.CoercionError{Token: token, Want: want, Err: err}
}

// Int parses a decimal integer.
var Int = Coercer{Name: "int", Fn: func(token string) (any, error) {
	n, err := strconv.Atoi(token)
	if err != nil {
		return fail(token, "int", err)
	}
	return n, nil
}}

// Float parses a floating point number.
var Float = Coercer{Name: "float", Fn: func(token string) (any, error) {
	v, err := strconv.ParseFloat(token, 64)
	if err != nil {
		return fail(token, "float", err)
	}
	return v, nil
}}

// Bool parses true/false/1/0.
var Bool = Coercer{Name: "bool", Fn: func(token string) (any, error) {
	b, err := strconv.ParseBool(token)
	if err != nil {
		return fail(token, "bool", err)
	}
	return b, nil
}}

// String passes the token through unchanged.
var String = Coercer{Name: "str", Fn: func(token string) (any, error) {
	return token, nil
}}

// IntList parses N[,M[,...]] into []int.
var IntList = Coercer{Name: "intlist", Fn: func(token string) (any, error) {
	parts := strings.Split(token, ",")
	out := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return fail(token, "intlist", err)
		}
		out[i] = n
	}
	return out, nil
}}

// BoolList parses a comma-separated list of booleans.
var BoolList = Coercer{Name: "boollist", Fn: func(token string) (any, error) {
	parts := strings.Split(token, ",")
	out := make([]bool, len(parts))
	for i, p := range parts {
		b, err := strconv.ParseBool(strings.TrimSpace(p))
		if err != nil {
			return fail(token, "boollist", err)
		}
		out[i] = b
	}
	return out, nil
}}

// TupleList parses a comma-separated list where each piece is itself an
// integer list, used for axis-pair arguments.
var TupleList = Coercer{Name: "tuplelist", Fn: func(token string) (any, error) {
	parts := strings.Split(token, ",")
	out := make([][]int, 0, len(parts))
	for _, p := range parts {
		v, err := IntList.Fn(strings.TrimSpace(p))
		if err != nil {
			return fail(token, "tuplelist", err)
		}
		out = append(out, v.([]int))
	}
	return out, nil
}}

// Matrix parses the token as a matrix literal, falling back to fetching
// the token as a URL and parsing its content.
var Matrix = Coercer{Name: "matrix", Fn: func(token string) (any, error) {
	return matrix.ParseOrFetch(strings.TrimRight(token, ";"))
}}

// Array parses a matrix and flattens it to a one-dimensional vector.
var Array = Coercer{Name: "array", Fn: func(token string) (any, error) {
	m, err := matrix.ParseOrFetch(strings.TrimRight(token, ";"))
	if err != nil {
		return nil, err
	}
	return matrix.Flatten(m), nil
}}

// ArrayOrInt tries an integer first, then falls back to Array. Used where
// the library accepts either a count or a weighted array.
var ArrayOrInt = Coercer{Name: "arrayorint", Fn: func(token string) (any, error) {
	if n, err := strconv.Atoi(token); err == nil {
		return n, nil
	}
	return Array.Fn(token)
}}

// Order parses a norm-order argument: "inf"/"-inf" map to floating
// infinities, integers stay integral, anything else passes through as a
// named order.
var Order = Coercer{Name: "order", Fn: func(token string) (any, error) {
	switch token {
	case "inf":
		return math.Inf(1), nil
	case "-inf":
		return math.Inf(-1), nil
	}
	if n, err := strconv.Atoi(token); err == nil {
		return n, nil
	}
	return token, nil
}}

// IntArgs consumes all remaining tokens as one integer list, for
// variadic dimension arguments.
var IntArgs = Variadic{Name: "int...", Fn: func(tokens []string) (any, error) {
	out := make([]int, len(tokens))
	for i, tok := range tokens {
		n, err := strconv.Atoi(tok)
		if err != nil {
			return fail(tok, "int", err)
		}
		out[i] = n
	}
	return out, nil
}}
