package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runCLI invokes rootCmd with args and returns its error and whatever
// was written to the command's own output/error writers (the commands'
// fmt.Print output to the process stdout/stderr is not captured), the way deployable_test.go asserted on exported results
// of invoking library entry points directly rather than scraping a
// separately-run subprocess.
func runCLI(t *testing.T, args ...string) (error, string) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return err, out.String()
}

func TestCLIParseValidFileExitsZero(t *testing.T) {
	err, _ := runCLI(t, "parse", "testdata/ofx.sgml")
	require.NoError(t, err)
}

func TestCLIParseInvalidFileFailsWithPosition(t *testing.T) {
	err, _ := runCLI(t, "parse", "testdata/bad.sgml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), ":1:4:")
}

func TestCLIDumpValidFile(t *testing.T) {
	err, _ := runCLI(t, "dump", "testdata/ofx.sgml")
	require.NoError(t, err)
}

func TestCLINormalizeOFXElision(t *testing.T) {
	err, _ := runCLI(t, "normalize", "testdata/ofx.sgml")
	require.NoError(t, err)
}

func TestCLIDumpDigestIsStableAcrossRuns(t *testing.T) {
	t.Cleanup(func() { dumpDigest = false })

	err, first := runCLI(t, "dump", "--digest", "testdata/ofx.sgml")
	require.NoError(t, err)

	err, second := runCLI(t, "dump", "--digest", "testdata/ofx.sgml")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.NotEmpty(t, first)
}
