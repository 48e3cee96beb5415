package cmd

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetFlags restores the defaults, since the commands are package globals.
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			_ = sv.Replace(nil)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	resetFlags(RootCmd)

	var out bytes.Buffer
	RootCmd.SetArgs(args)
	RootCmd.SetIn(strings.NewReader(stdin))
	RootCmd.SetOut(&out)
	RootCmd.SetErr(io.Discard)
	err := RootCmd.Execute()
	return out.String(), err
}

func TestParseCmd(t *testing.T) {
	out, err := execute(t, "", "parse", "1.5")
	require.NoError(t, err)
	assert.Equal(t, "atomics: 1500000\ndecimal: 1.5\nstorage: 1.5\n", out)

	out, err = execute(t, "", "parse", "1.5", "--places", "9")
	require.NoError(t, err)
	assert.Equal(t, "atomics: 1500000000\ndecimal: 1.5\nstorage: 1.5\n", out)

	_, err = execute(t, "", "parse", "1.1234567")
	assert.EqualError(t, err, "Parse error: too many decimal places: 7 (max 6)")

	_, err = execute(t, "", "parse", "1", "--places", "5")
	assert.Error(t, err)
}

func TestParseCmd_Env(t *testing.T) {
	t.Setenv("DECIMALCTL_PLACES", "18")
	out, err := execute(t, "", "parse", "1.5")
	require.NoError(t, err)
	assert.Equal(t, "atomics: 1500000000000000000\ndecimal: 1.5\nstorage: 1.5\n", out)

	// flags take precedence
	out, err = execute(t, "", "parse", "1.5", "--places", "0")
	assert.Error(t, err)
	assert.Empty(t, out)
}

func TestConvertCmd(t *testing.T) {
	out, err := execute(t, "", "convert", "1.123456789", "--places", "9", "--to", "6")
	require.NoError(t, err)
	assert.Equal(t, "atomics: 1123456\ndecimal: 1.123456\nstorage: 1.123456\n", out)

	_, err = execute(t, "", "convert", "340282366920938463463374607431768.211455", "--to", "18")
	assert.EqualError(t, err, "Precision conversion overflow: cannot convert from 6 to 18 decimals")
}

func TestCalcCmd(t *testing.T) {
	out, err := execute(t, "", "calc", "1.5", "*", "2.5")
	require.NoError(t, err)
	assert.Equal(t, "3.75\n", out)

	_, err = execute(t, "", "calc", "1", "/", "0")
	assert.EqualError(t, err, "Division by zero")

	_, err = execute(t, "", "calc", "1", "+")
	assert.Error(t, err)
}

func TestNormalizeCmd(t *testing.T) {
	out, err := execute(t, `{"price":"1.500000000000000000","qty":"2.0"}`, "normalize", "--field", "price")
	require.NoError(t, err)
	assert.JSONEq(t, `{"price":"1.5","qty":"2.0"}`, out)
	assert.True(t, strings.HasSuffix(out, "\n"))

	path := filepath.Join(t.TempDir(), "doc.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"a":"0.1234567","b":"1"}]`), 0o600))
	out, err = execute(t, "", "normalize", path, "--field", "a", "--field", "b", "--places", "2")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"a":"0.12","b":"1"}]`, out)

	_, err = execute(t, `{}`, "normalize")
	assert.EqualError(t, err, "no fields to normalize, use --field")

	_, err = execute(t, `{"price":"x"}`, "normalize", "--field", "price")
	assert.Error(t, err)
}

func TestVersionCmd(t *testing.T) {
	out, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.Equal(t, Version+"\n", out)
}
