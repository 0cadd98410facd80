package cli

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRationalCommand(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"normalize", []string{"--a", "6,-8"}, "-3/4"},
		{"integer", []string{"--a", "10,5"}, "2"},
		{"add", []string{"--a", "1,2", "--op", "add", "--b", "1,3"}, "5/6"},
		{"sub int", []string{"--a", "1,2", "--op", "sub", "--b-int", "1"}, "-1/2"},
		{"mul", []string{"--a", "2,3", "--op", "mul", "--b", "3,4"}, "1/2"},
		{"div negative", []string{"--a", "1,2", "--op", "div", "--b=-1,4"}, "-2"},
		{"add float", []string{"--a", "1,4", "--op", "add", "--b-float", "0.5"}, "3/4"},
		{"pow int", []string{"--a", "2,3", "--op", "pow", "--b-int", "-2"}, "9/4"},
		{"pow rational", []string{"--a", "4,9", "--op", "pow", "--b=-1,2"}, "3/2"},
		{"eq", []string{"--a", "2,4", "--op", "eq", "--b", "1,2"}, "true"},
		{"eq float", []string{"--a", "1,3", "--op", "eq", "--b-float", "0.3333"}, "false"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := execute(t, append([]string{"rational"}, tt.args...)...)
			require.NoError(t, err)
			assert.Equal(t, tt.want+"\n", out)
		})
	}
}

func TestRationalCommandJSON(t *testing.T) {
	out, _, err := execute(t, "--format", "json", "rational", "--a", "1,2", "--op", "mul", "--b", "2,3")
	require.NoError(t, err)

	resp := decodeResponse(t, out)
	assert.Equal(t, "ok", resp.Status)
	data, ok := resp.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "mul", data["op"])
	assert.Equal(t, "1/3", data["result"])
	assert.Equal(t, []any{"1/2", "2/3"}, data["operands"])
}

// Direct subcommand use, the way tests drive a single command without root.
func TestRationalCommandStandalone(t *testing.T) {
	buf := &bytes.Buffer{}
	cmd := NewRationalCommand(&RootOptions{Format: "text"})
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"--a", "3,9"})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "1/3\n", buf.String())
}

func TestCommandErrors(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		exitCode int
		code     string
	}{
		{"zero denominator", []string{"rational", "--a", "1,0"}, ExitFailure, "E001"},
		{"division by zero", []string{"rational", "--a", "1,2", "--op", "div", "--b-int", "0"}, ExitFailure, "E002"},
		{"zero to negative power", []string{"rational", "--a", "0", "--op", "pow", "--b-int", "-1"}, ExitFailure, "E002"},
		{"irrational pow", []string{"rational", "--a", "2", "--op", "pow", "--b", "1,2"}, ExitFailure, "E003"},
		{"negative base", []string{"rational", "--a=-4", "--op", "pow", "--b", "1,2"}, ExitFailure, "E001"},
		{"nan float", []string{"rational", "--a", "1", "--op", "add", "--b-float", "NaN"}, ExitFailure, "E001"},
		{"too many values", []string{"rational", "--a", "1,2,3"}, ExitCommandError, "E001"},
		{"operand without op", []string{"rational", "--a", "1,2", "--b", "1"}, ExitCommandError, "E001"},
		{"op without operand", []string{"rational", "--a", "1,2", "--op", "add"}, ExitCommandError, "E001"},
		{"unknown op", []string{"rational", "--a", "1,2", "--op", "mod", "--b", "1"}, ExitCommandError, "E001"},
		{"irrational root", []string{"root", "--a", "2"}, ExitFailure, "E003"},
		{"even root of negative", []string{"root", "--a=-4", "--n", "2"}, ExitFailure, "E003"},
		{"bad degree", []string{"root", "--a", "4", "--n", "0"}, ExitFailure, "E001"},
		{"infinite float", []string{"float", "--x", "+Inf"}, ExitFailure, "E001"},
		{"complex div by zero", []string{"complex", "--re", "1", "--op", "div", "--ore", "0"}, ExitFailure, "E002"},
		{"complex inv zero", []string{"complex", "--re", "0", "--op", "inv"}, ExitFailure, "E002"},
		{"complex zero pow", []string{"complex", "--re", "0", "--op", "pow", "--n", "-2"}, ExitFailure, "E002"},
		{"complex missing operand", []string{"complex", "--re", "1", "--op", "mul"}, ExitCommandError, "E001"},
		{"complex pow operand", []string{"complex", "--re", "1", "--op", "pow", "--b", "2"}, ExitCommandError, "E001"},
		{"complex unary operand", []string{"complex", "--re", "1", "--op", "neg", "--b-int", "2"}, ExitCommandError, "E001"},
		{"complex unknown op", []string{"complex", "--re", "1", "--op", "sqrt"}, ExitCommandError, "E001"},
		{"form kind", []string{"form", "--re", "1", "--kind", "polar"}, ExitCommandError, "E001"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := execute(t, tt.args...)
			require.Error(t, err)
			assert.Equal(t, tt.exitCode, GetExitCode(err))
			assert.True(t, strings.HasPrefix(out, "Error ["+tt.code+"]: "), "got %q", out)
		})
	}
}

func TestCommandErrorsJSON(t *testing.T) {
	out, _, err := execute(t, "--format", "json", "root", "--a", "2,3", "--n", "2")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))

	resp := decodeResponse(t, out)
	assert.Equal(t, "error", resp.Status)
	require.NotNil(t, resp.Error)
	assert.Equal(t, ErrCodeIrrationalResult, resp.Error.Code)
	assert.Contains(t, resp.Error.Message, "irrational")
}

func TestFlagConflicts(t *testing.T) {
	_, _, err := execute(t, "rational", "--a", "1", "--op", "add", "--b", "1", "--b-int", "2")
	assert.Error(t, err)

	_, _, err = execute(t, "rational", "--op", "add", "--b", "1")
	assert.Error(t, err)

	_, _, err = execute(t, "complex", "--op", "neg")
	assert.Error(t, err)

	_, _, err = execute(t, "float", "extra")
	assert.Error(t, err)
}

func TestRootExtractCommand(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"--a", "8,27", "--n", "3"}, "2/3"},
		{[]string{"--a=-32", "--n", "5"}, "-2"},
		{[]string{"--a", "49,64"}, "7/8"},
		{[]string{"--a", "5", "--n", "1"}, "5"},
	}
	for _, tt := range tests {
		out, _, err := execute(t, append([]string{"root"}, tt.args...)...)
		require.NoError(t, err)
		assert.Equal(t, tt.want+"\n", out)
	}
}

func TestFloatCommand(t *testing.T) {
	tests := map[string]string{
		"0.75":         "3/4",
		"0.1":          "1/10",
		"-2.5":         "-5/2",
		"3":            "3",
		"0.3333333333": "3333333333/10000000000",
	}
	for x, want := range tests {
		out, _, err := execute(t, "float", "--x", x)
		require.NoError(t, err)
		assert.Equal(t, want+"\n", out, "x=%s", x)
	}
}

func TestComplexCommand(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"print", []string{"--re", "1,2", "--im=-3,4"}, "(1/2) - (3/4)i"},
		{"imaginary only", []string{"--im", "2"}, "2i"},
		{"add", []string{"--re", "1", "--im", "2", "--op", "add", "--ore", "3", "--oim", "4"}, "4 + 6i"},
		{"add rational", []string{"--re", "1", "--im", "2", "--op", "add", "--b", "1,2"}, "(3/2) + 2i"},
		{"sub int", []string{"--re", "4", "--im", "2", "--op", "sub", "--b-int", "1"}, "3 + 2i"},
		{"mul", []string{"--re", "1", "--im", "1", "--op", "mul", "--ore", "1", "--oim", "1"}, "2i"},
		{"div", []string{"--re", "1", "--im", "2", "--op", "div", "--ore", "3", "--oim", "4"}, "(11/25) + (2/25)i"},
		{"pow", []string{"--re", "1", "--im", "1", "--op", "pow", "--n", "2"}, "2i"},
		{"pow inverse", []string{"--re", "1", "--im", "1", "--op", "pow", "--n=-1"}, "(1/2) - (1/2)i"},
		{"eq", []string{"--re", "5", "--op", "eq", "--b-int", "5"}, "true"},
		{"neg", []string{"--re", "1,2", "--im=-3,4", "--op", "neg"}, "(-1/2) + (3/4)i"},
		{"conj", []string{"--re", "1,2", "--im=-3,4", "--op", "conj"}, "(1/2) + (3/4)i"},
		{"inv", []string{"--im", "2", "--op", "inv"}, "-1/2i"},
		{"abs", []string{"--re", "3", "--im", "4", "--op", "abs"}, "5"},
		{"arg", []string{"--re", "3", "--im", "4", "--op", "arg"}, "0.9273"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := execute(t, append([]string{"complex"}, tt.args...)...)
			require.NoError(t, err)
			assert.Equal(t, tt.want+"\n", out)
		})
	}
}

func TestComplexAbsMatchesForm(t *testing.T) {
	abs, _, err := execute(t, "--digits", "0", "complex", "--re", "3,2", "--im", "2", "--op", "abs")
	require.NoError(t, err)
	assert.Equal(t, "2.0\n", abs)

	arg, _, err := execute(t, "--digits", "0", "complex", "--re", "3,2", "--im", "2", "--op", "arg")
	require.NoError(t, err)
	assert.Equal(t, "1.0\n", arg)

	form, _, err := execute(t, "--digits", "0", "form", "--re", "3,2", "--im", "2", "--kind", "exp")
	require.NoError(t, err)
	assert.Equal(t, "2.0*exp(1.0i)\n", form)
}

func TestFormCommand(t *testing.T) {
	out, _, err := execute(t, "--digits", "2", "form", "--re", "0", "--im=-5", "--kind", "exp")
	require.NoError(t, err)
	assert.Equal(t, "5*exp(-1.57i)\n", out)

	out, _, err = execute(t, "--format", "json", "form", "--re", "1", "--im", "2", "--kind", "trig")
	require.NoError(t, err)
	resp := decodeResponse(t, out)
	data, ok := resp.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "1 + 2i", data["value"])
	assert.Equal(t, float64(4), data["digits"])
	assert.Equal(t, "2.2361*(cos(1.1071) + isin(1.1071))", data["trig"])
	assert.NotContains(t, data, "exp")
}

// A short session across every command, pinned as a golden transcript.
func TestSessionGolden(t *testing.T) {
	session := [][]string{
		{"rational", "--a", "6,-8"},
		{"rational", "--a", "1,2", "--op", "add", "--b", "1,3"},
		{"rational", "--a", "4,9", "--op", "pow", "--b=-1,2"},
		{"root", "--a", "8,27", "--n", "3"},
		{"root", "--a", "2"},
		{"float", "--x", "0.75"},
		{"complex", "--re", "1", "--im", "2", "--op", "div", "--ore", "3", "--oim", "4"},
		{"complex", "--re", "1", "--im", "1", "--op", "pow", "--n=-1"},
		{"form", "--re", "1", "--im", "2"},
	}

	var b strings.Builder
	for _, args := range session {
		out, _, _ := execute(t, args...)
		fmt.Fprintf(&b, "$ exactnum %s\n%s", strings.Join(args, " "), out)
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "session", []byte(b.String()))
}
