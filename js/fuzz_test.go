package js

import (
	"encoding/json"
	"testing"
)

func FuzzParse(f *testing.F) {
	for _, seed := range []string{
		"a + b * c",
		"({a, b: [c], ...d} = e)",
		"async (a = 1, ...b) => { await a }",
		"class A extends B { static *m() { yield super.x } }",
		"`a${b}c` / d / g",
		"for (let [k, v] of m) label: { break label }",
		"'use strict'; function f(a, a) {}",
	} {
		f.Add(seed, false)
	}
	f.Add("import a, { b as c } from 'x'; export default class {}", true)

	f.Fuzz(func(t *testing.T, src string, module bool) {
		opts := Options{Loc: true, Raw: true}
		if module {
			opts.SourceType = SourceModule
		}
		ast, err := ParseString(src, opts)
		if err != nil {
			if _, ok := err.(*Error); !ok {
				t.Fatalf("unexpected error type %T: %v", err, err)
			}
			return
		}
		_ = ast.String()
		if _, err := json.Marshal(ast); err != nil {
			t.Fatal(err)
		}
	})
}
