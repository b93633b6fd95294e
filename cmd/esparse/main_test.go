package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	out, _, err := executeStderr(t, stdin, args...)
	return out, err
}

func executeStderr(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCmd()
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestStdinJSON(t *testing.T) {
	out, err := execute(t, "a + b")
	require.NoError(t, err)
	require.Contains(t, out, `"type": "Program"`)
	require.Contains(t, out, `"sourceType": "script"`)
	require.Contains(t, out, `"type": "BinaryExpression"`)
	require.NotContains(t, out, `"loc"`)

	out, err = execute(t, "a", "--loc")
	require.NoError(t, err)
	require.Contains(t, out, `"loc"`)
}

func TestFormats(t *testing.T) {
	out, err := execute(t, "a", "--format", "go")
	require.NoError(t, err)
	require.Contains(t, out, "&js.Program{")

	out, err = execute(t, "a", "--format", "none")
	require.NoError(t, err)
	require.Empty(t, out)

	_, err = execute(t, "a", "--format", "yaml")
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid format")
}

func TestStats(t *testing.T) {
	out, err := execute(t, "a + b", "--format", "none", "--stats")
	require.NoError(t, err)
	require.Equal(t, "BinaryExpression\t1\nExpressionStatement\t1\nIdentifier\t2\nProgram\t1\n", out)
}

func TestRepeat(t *testing.T) {
	out, err := execute(t, "a", "--format", "none", "--repeat", "3")
	require.NoError(t, err)
	require.Contains(t, out, "-: 3 runs\n")
	require.Contains(t, out, "  median: ")
	require.Contains(t, out, "  stddev: ")

	_, err = execute(t, "a", "--repeat", "0")
	require.Error(t, err)
}

func TestModule(t *testing.T) {
	_, err := execute(t, "export default 1")
	require.Error(t, err)

	out, err := execute(t, "export default 1", "--module")
	require.NoError(t, err)
	require.Contains(t, out, `"sourceType": "module"`)
	require.Contains(t, out, `"type": "ExportDefaultDeclaration"`)
}

func TestParseErrors(t *testing.T) {
	dir := t.TempDir()
	good := writeFile(t, dir, "good.js", "let a;")
	bad := writeFile(t, dir, "bad.js", "let a;\nlet a;")
	worse := writeFile(t, dir, "worse.js", "(a ?? b || c)")

	out, err := execute(t, "", good, bad, worse, filepath.Join(dir, "missing.js"))
	require.Error(t, err)
	require.Contains(t, out, `"type": "VariableDeclaration"`)

	merr, ok := err.(*multierror.Error)
	require.True(t, ok)
	require.Len(t, merr.Errors, 3)

	perr, ok := merr.Errors[0].(*parseError)
	require.True(t, ok)
	require.Equal(t, bad+":2:5: Identifier 'a' has already been declared", perr.Error())
	require.Contains(t, merr.Errors[2].Error(), "missing.js")

	setColor(false)
	w := &bytes.Buffer{}
	report(w, err)
	lines := strings.Split(w.String(), "\n")
	require.Equal(t, bad+":2:5: error: Identifier 'a' has already been declared", lines[0])
	require.Equal(t, "    2: let a;", lines[1])
	require.Equal(t, "           ^", lines[2])
	require.Contains(t, w.String(), "error: read "+filepath.Join(dir, "missing.js"))
}

func TestParseErrorLogging(t *testing.T) {
	// failures are reported once by the caller, the logger only mentions them at debug level
	_, stderr, err := executeStderr(t, "let a; let a;")
	require.Error(t, err)
	require.Empty(t, stderr)

	_, stderr, err = executeStderr(t, "let a; let a;", "--log-level", "debug")
	require.Error(t, err)
	require.Contains(t, stderr, "parse failed")
}

func TestConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfg := writeFile(t, dir, "esparse.yaml", "module: true\nformat: none\nstats: true\n")

	out, err := execute(t, "import a from 'x'", "--config", cfg)
	require.NoError(t, err)
	require.Contains(t, out, "ImportDeclaration\t1\n")
	require.NotContains(t, out, `"type"`)

	// flags take precedence over the config file
	out, err = execute(t, "import a from 'x'", "--config", cfg, "--format", "json", "--stats=false")
	require.NoError(t, err)
	require.Contains(t, out, `"type": "ImportDeclaration"`)
	require.NotContains(t, out, "ImportDeclaration\t1\n")

	_, err = execute(t, "a", "--config", filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
}

func TestEnvironment(t *testing.T) {
	t.Setenv("ESPARSE_IMPLIED_STRICT", "true")
	_, err := execute(t, "with (a) b")
	require.Error(t, err)

	t.Setenv("ESPARSE_IMPLIED_STRICT", "false")
	_, err = execute(t, "with (a) b")
	require.NoError(t, err)
}
