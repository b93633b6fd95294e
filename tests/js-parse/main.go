//go:build gofuzz
// +build gofuzz

package fuzz

import (
	"encoding/json"
	"fmt"
	"unicode/utf8"

	"github.com/tdewolff/esparse"
	"github.com/tdewolff/esparse/js"
)

// Fuzz is a fuzz test.
func Fuzz(data []byte) int {
	if !utf8.Valid(data) {
		return 0
	}

	for _, o := range []js.Options{{}, {SourceType: js.SourceModule, Loc: true, Raw: true}} {
		ast, err := js.Parse(esparse.NewInputBytes(data), o)
		if err != nil {
			perr, ok := err.(*js.Error)
			if !ok {
				panic(fmt.Sprintf("unexpected error type %T", err))
			} else if perr.Index < 0 || len(data) < perr.Index || perr.Line < 1 {
				panic(fmt.Sprintf("error position out of range: %v", perr))
			}
			_ = perr.Context(data)
			continue
		}

		_ = ast.String()
		if _, err := json.Marshal(ast); err != nil {
			panic(err)
		}
		return 1
	}
	return 0
}
