// Copyright (C) 2025 Fumito Ito. All Rights Reserved.

package ast_test

import (
	"testing"

	"github.com/creachadair/mds/mtest"
	"github.com/google/go-cmp/cmp"

	"github.com/fumito-ito/ojson/ast"
)

func TestJSON(t *testing.T) {
	tests := []struct {
		input ast.Value
		want  string
	}{
		{ast.Null{}, "null"},

		{ast.Bool(false), "false"},
		{ast.Bool(true), "true"},

		{ast.String(""), `""`},
		{ast.String("a \t b"), `"a \t b"`},
		{ast.String(`say "when"`), `"say \"when\""`},

		{ast.Float(-0.00239), `-0.00239`},
		{ast.Float(1.5), `1.5`},

		{ast.Int(0), `0`},
		{ast.Int(15), `15`},
		{ast.Int(-25), `-25`},

		{ast.Array{}, `[]`},
		{ast.Array{
			ast.Bool(false),
		}, `[false]`},
		{ast.Array{
			ast.Bool(true),
			ast.Int(199),
		}, `[true,199]`},
		{ast.Array{
			ast.String("free"),
			ast.String("your"),
			ast.String("mind"),
		}, `["free","your","mind"]`},

		{ast.Object{}, `{}`},
		{ast.Object{
			ast.Field("xs", nil),
		}, `{"xs":null}`},
		{ast.Object{
			ast.Field("name", "Dennis"),
			ast.Field("age", 37),
			ast.Field("isOld", false),
		}, `{"name":"Dennis","age":37,"isOld":false}`},

		{ast.Object{
			ast.Field("values", ast.Array{
				ast.Int(5),
				ast.Int(10),
				ast.Bool(true),
			}),
			ast.Field("page", ast.Object{
				ast.Field("token", "xyz-pdq-zvm"),
				ast.Field("count", 100),
			}),
		}, `{"values":[5,10,true],"page":{"token":"xyz-pdq-zvm","count":100}}`},
	}
	for _, test := range tests {
		got := test.input.JSON()
		if got != test.want {
			t.Errorf("Input: %+v\nGot:  %s\nWant: %s", test.input, got, test.want)
		}
	}
}

func TestObjectFind(t *testing.T) {
	obj := ast.Object{
		ast.Field("alpha", 1),
		ast.Field("bravo", "two"),
		ast.Field("alpha", 3), // shadowed by the first alpha
	}

	if got := obj.IndexKey("bravo"); got != 1 {
		t.Errorf("IndexKey bravo: got %d, want 1", got)
	}
	if got := obj.IndexKey("charlie"); got != -1 {
		t.Errorf("IndexKey charlie: got %d, want -1", got)
	}

	m := obj.Find("alpha")
	if m == nil {
		t.Fatal("Find alpha: not found")
	}
	if got, want := m.Value, ast.ToValue(1); got != want {
		t.Errorf("Find alpha: got %v, want %v", got, want)
	}
	if got := obj.Find("charlie"); got != nil {
		t.Errorf("Find charlie: got %v, want nil", got)
	}
}

func TestToValue(t *testing.T) {
	tests := []struct {
		input any
		want  ast.Value
	}{
		{nil, ast.Null{}},
		{true, ast.Bool(true)},
		{"pear", ast.String("pear")},
		{25, ast.Int(25)},
		{int64(-31), ast.Int(-31)},
		{0.25, ast.Float(0.25)},
		{ast.Int(12), ast.Int(12)},
		{[]any{1, "two", nil}, ast.Array{ast.Int(1), ast.String("two"), ast.Null{}}},
		{map[string]any{"z": 1, "a": true}, ast.Object{
			ast.Field("a", true), // map keys are ordered
			ast.Field("z", 1),
		}},
	}
	for _, test := range tests {
		got := ast.ToValue(test.input)
		if diff := cmp.Diff(test.want, got); diff != "" {
			t.Errorf("ToValue %v (-want, +got):\n%s", test.input, diff)
		}
	}

	t.Run("Invalid", func(t *testing.T) {
		mtest.MustPanic(t, func() { ast.ToValue([]bool{true}) })
		mtest.MustPanic(t, func() { ast.ToValue(func() {}) })
		mtest.MustPanic(t, func() { ast.ToValue(make(chan struct{})) })
	})
}

func TestField(t *testing.T) {
	m := ast.Field("fruit", "apple")
	if m.Key != "fruit" {
		t.Errorf("Field key: got %q, want fruit", m.Key)
	}
	if got, want := m.Value, ast.String("apple"); got != want {
		t.Errorf("Field value: got %v, want %v", got, want)
	}
}
