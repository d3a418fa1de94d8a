// Copyright (C) 2025 Fumito Ito. All Rights Reserved.

// Package ast defines the dynamic values produced by decoding JSON text:
// objects, arrays, strings, numbers, Booleans, and null.
package ast

import (
	"fmt"
	"maps"
	"slices"
)

// A Value is a single JSON value. The concrete types are Null, Bool, Int,
// Float, String, Array, and Object; the interface is satisfied by no other
// types.
type Value interface {
	// JSON returns the value re-encoded as compact JSON text.
	JSON() string

	// appendJSON appends the compact JSON encoding of the value to dst.
	appendJSON(dst []byte) []byte
}

// Null represents the JSON null constant.
type Null struct{}

// A Bool is a Boolean value.
type Bool bool

// Bool reports the truth value of b.
func (b Bool) Bool() bool { return bool(b) }

// An Int is an integer value.
type Int int64

// Int64 returns z as an int64.
func (z Int) Int64() int64 { return int64(z) }

// A Float is a floating-point value.
type Float float64

// Float64 returns f as a float64.
func (f Float) Float64() float64 { return float64(f) }

// A String is a string value.
type String string

// An Array is an ordered sequence of values.
type Array []Value

// An Object is an ordered collection of key-value members.
type Object []*Member

// A Member is a single key-value pair belonging to an Object.
type Member struct {
	Key   string
	Value Value
}

// Field constructs an object member with the given key and value.
// The value must be one of the types supported by ToValue.
func Field(key string, value any) *Member { return &Member{Key: key, Value: ToValue(value)} }

// IndexKey returns the index of the first member of o with the given key, or
// -1 if no such member exists.
func (o Object) IndexKey(key string) int {
	for i, m := range o {
		if m.Key == key {
			return i
		}
	}
	return -1
}

// Find returns the first member of o with the given key, or nil if no such
// member exists.
func (o Object) Find(key string) *Member {
	if i := o.IndexKey(key); i >= 0 {
		return o[i]
	}
	return nil
}

// ToValue converts a plain Go value into an ast.Value. It panics if v does
// not have one of the supported types: nil, bool, string, int, int64,
// float64, []any, map[string]any, or any concrete Value.
//
// Map members are ordered by key, so the result is deterministic.
func ToValue(v any) Value {
	switch t := v.(type) {
	case nil:
		return Null{}
	case Value:
		return t
	case bool:
		return Bool(t)
	case string:
		return String(t)
	case int:
		return Int(t)
	case int64:
		return Int(t)
	case float64:
		return Float(t)
	case []any:
		vs := make(Array, len(t))
		for i, elt := range t {
			vs[i] = ToValue(elt)
		}
		return vs
	case map[string]any:
		ms := make(Object, 0, len(t))
		for _, key := range slices.Sorted(maps.Keys(t)) {
			ms = append(ms, &Member{Key: key, Value: ToValue(t[key])})
		}
		return ms
	default:
		panic(fmt.Sprintf("invalid value type %T", v))
	}
}
