package js

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type legality int

const (
	allowed      legality = iota
	sloppyOnly            // illegal in strict mode
	annexB                // illegal without web compatibility
	sloppyAnnexB          // illegal in strict mode or without web compatibility
	never
)

func TestScopeLegality(t *testing.T) {
	var tests = []struct {
		js    string
		legal legality
	}{
		{"var a; var a;", allowed},
		{"function f() {} var f;", allowed},
		{"var f; function f() {}", allowed},
		{"let a; { let a; }", allowed},
		{"{ let a; } var b; { const a = 1; }", allowed},
		{"function f(a) { var a; }", allowed},
		{"function f(a) { function a() {} }", allowed},
		{"function f() { var f; }", allowed},
		{"try {} catch (e) { let f; }", allowed},
		{"try {} catch ({ e }) { let f; }", allowed},
		{"(a, b) => { var a; }", allowed},
		{"for (let a;;) { let a; }", allowed},
		{"for (var a of b) { var a; }", allowed},
		{"switch (a) { case 1: let b; } let b;", allowed},

		{"function f(a, a) {}", sloppyOnly},

		{"try {} catch (e) { var e; }", annexB},
		{"try {} catch (e) { for (var e in f) {} }", annexB},

		{"{ function f() {} function f() {} }", sloppyAnnexB},
		{"switch (a) { case 1: function f() {} default: function f() {} }", sloppyAnnexB},
		{"if (a) function f() {}", sloppyAnnexB},
		{"l: function f() {}", sloppyAnnexB},
		{"for (var a = 1 in b) {}", sloppyAnnexB},

		{"{ function f() {} var f; }", never},
		{"{ var f; function f() {} }", never},
		{"let a; var a;", never},
		{"var a; let a;", never},
		{"let a; function a() {}", never},
		{"const a = 1; let a;", never},
		{"class A {} var A;", never},
		{"function f(a, a = 1) {}", never},
		{"function f(a, ...a) {}", never},
		{"(a, a) => 1", never},
		{"function f(a) { let a; }", never},
		{"function f({ a }) { let a; }", never},
		{"function f([a] = b) { let a; }", never},
		{"switch (a) { case 1: let b; case 2: let b; }", never},
		{"{ async function f() {} function f() {} }", never},
		{"{ function* f() {} function f() {} }", never},
		{"try {} catch (e) { let e; }", never},
		{"try {} catch ([e]) { var e; }", never},
		{"try {} catch (e) { for (var e of f) {} }", never},
		{"try {} catch (e) { for (var [e] of f) {} }", never},
		{"try {} catch (e) { { for (var e of f) {} } }", never},
		{"try {} catch (e) { function g() { for (var e of f) {} } }", allowed},
		{"for (let a of b) { var a; }", never},
		{"let {a, b: [a]} = c;", never},
	}

	run := func(t *testing.T, js string, opts Options, want bool) {
		_, err := ParseString(js, opts)
		if want {
			assert.NoError(t, err, js)
		} else if assert.Error(t, err, js) {
			_, ok := err.(*Error)
			assert.True(t, ok, js)
		}
	}

	for _, tt := range tests {
		t.Run(tt.js, func(t *testing.T) {
			run(t, tt.js, Options{}, tt.legal != never)
			run(t, tt.js, Options{DisableWebCompat: true}, tt.legal == allowed || tt.legal == sloppyOnly)
			run(t, "'use strict'; "+tt.js, Options{}, tt.legal == allowed || tt.legal == annexB)
		})
	}
}

func TestScopeModule(t *testing.T) {
	var tests = []struct {
		js     string
		script bool
		module bool
	}{
		{"function f() {} function f() {}", true, false},
		{"var a; function a() {}", true, false},
		{"function f() { function g() {} function g() {} }", true, true},
		{"import { a } from 'x'; var a;", false, false},
		{"import a from 'x'; function f() { var a; }", false, true},
		{"export let a; { let a; }", false, true},
	}
	for _, tt := range tests {
		t.Run(tt.js, func(t *testing.T) {
			if !tt.script {
				// import and export are not allowed in scripts at all
				_, err := ParseString(tt.js, Options{})
				assert.Error(t, err)
			} else {
				_, err := ParseString(tt.js, Options{})
				assert.NoError(t, err)
			}

			_, err := ParseString(tt.js, Options{SourceType: SourceModule})
			if tt.module {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Equal(t, ErrDuplicateBinding, err.(*Error).Kind)
			}
		})
	}
}

func TestScopeErrorPosition(t *testing.T) {
	_, err := ParseString("let a;\nvar b, a;", Options{})
	require.Error(t, err)
	perr := err.(*Error)
	assert.Equal(t, ErrDuplicateBinding, perr.Kind)
	assert.Equal(t, []string{"a"}, perr.Params)
	assert.Equal(t, 2, perr.Line)
	assert.Equal(t, 7, perr.Column)

	// duplicates in a later strict function are reported at the parameter
	_, err = ParseString("function f(b, b) {\n'use strict'\n}", Options{})
	require.Error(t, err)
	perr = err.(*Error)
	assert.Equal(t, ErrDuplicateBinding, perr.Kind)
	assert.Equal(t, 1, perr.Line)
	assert.Equal(t, 14, perr.Column)
}
