package main

import (
	"bytes"
	"homefinder/pkg/serrors"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

func newTestRoot(t *testing.T, sub func(a *app) *cobra.Command) (*cobra.Command, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	t.Chdir(t.TempDir())

	a := &app{configPath: filepath.Join(t.TempDir(), "missing.yml")}
	root := &cobra.Command{Use: "homefinder", PersistentPreRunE: a.load, SilenceUsage: true, SilenceErrors: true}
	root.AddCommand(sub(a))

	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)

	return root, &out, &errOut
}

func TestFootprintCommand(t *testing.T) {
	root, out, _ := newTestRoot(t, footprintCommand)
	root.SetArgs([]string{"footprint", "--color", "never",
		"--city", "Kolkata", "--locality", "Newtown", "--property-type", "flat",
		"--budget", "7500000", "--family-size", "4",
		"--bedroom-size", "120", "--bedroom-size", "150", "--bathroom-size", "80",
		"--kitchen", "150", "--living", "300", "--other", "50",
	})

	require.NoError(t, root.Execute())
	require.Contains(t, out.String(), "Total carpet area: 850.0 sq ft")
	require.Contains(t, out.String(),
		"Query: What is the price range of affordable flats in Newtown, Kolkata with a super built-up area of approximately 1275.0 sq ft.")
}

func TestFootprintCommand_InvalidInput(t *testing.T) {
	root, _, errOut := newTestRoot(t, footprintCommand)
	root.SetArgs([]string{"footprint", "--color", "never", "--city", "Kolkata", "--locality", "Newtown",
		"--bedroom-size", "20", "--bathroom-size", "80"})

	err := root.Execute()
	require.ErrorIs(t, err, serrors.ErrBadRequest)
	require.Contains(t, errOut.String(), "Error: invalid requirements: bedroom 1 must be between 100 and 250 sq ft")
}

func TestFindCommand_MissingCredentials(t *testing.T) {
	t.Setenv("SEARCH_API_KEY", "")
	t.Setenv("LLM_API_KEY", "")

	root, _, errOut := newTestRoot(t, findCommand)
	root.SetArgs([]string{"find", "--color", "never", "--city", "Kolkata", "--locality", "Newtown",
		"--bedroom-size", "120", "--bathroom-size", "80"})

	err := root.Execute()
	require.ErrorIs(t, err, serrors.ErrMisconfigured)
	require.Contains(t, errOut.String(), "SEARCH_API_KEY")
}
