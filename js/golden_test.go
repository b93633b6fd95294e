package js

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// TestGolden parses every testdata/*.js (script) and testdata/*.mjs (module) file and compares the indented JSON
// with the .json file next to it. Run with UPDATE_GOLDEN=1 to rewrite the expected output.
func TestGolden(t *testing.T) {
	var files []string
	for _, pattern := range []string{"testdata/*.js", "testdata/*.mjs"} {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			t.Fatal(err)
		}
		files = append(files, matches...)
	}
	if len(files) == 0 {
		t.Fatal("no golden files")
	}

	update := os.Getenv("UPDATE_GOLDEN") != ""
	for _, file := range files {
		t.Run(filepath.Base(file), func(t *testing.T) {
			src, err := os.ReadFile(file)
			if err != nil {
				t.Fatal(err)
			}

			opts := Options{Raw: true}
			if filepath.Ext(file) == ".mjs" {
				opts.SourceType = SourceModule
			}
			ast, err := ParseString(string(src), opts)
			if err != nil {
				t.Fatal(err)
			}
			b, err := json.MarshalIndent(ast, "", "  ")
			if err != nil {
				t.Fatal(err)
			}
			got := string(b) + "\n"

			golden := strings.TrimSuffix(file, filepath.Ext(file)) + ".json"
			if update {
				if err := os.WriteFile(golden, []byte(got), 0644); err != nil {
					t.Fatal(err)
				}
				return
			}

			want, err := os.ReadFile(golden)
			if err != nil {
				t.Fatal(err)
			}
			if got != string(want) {
				dmp := diffmatchpatch.New()
				diffs := dmp.DiffMain(string(want), got, true)
				t.Errorf("%s differs from %s:\n%s", file, golden, dmp.DiffPrettyText(diffs))
			}
		})
	}
}
