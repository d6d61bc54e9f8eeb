package categorizer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// lowerNormalizer collapses whitespace and lowercases; it stands in for the
// dictionary lemmatizer where lemmas do not matter.
type lowerNormalizer struct{}

func (lowerNormalizer) Normalize(text string) string {
	return strings.ToLower(strings.Join(strings.Fields(text), " "))
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func welfareFixture() ([]Motion, []ReferenceCode) {
	motions := []Motion{{
		ID: "m1",
		Examples: []Example{
			{Fields: []string{"expand welfare state", "expand welfare state"}, Code: "201"},
			{Fields: []string{"expand welfare state", "expand welfare state"}, Code: "201"},
		},
	}}
	refs := []ReferenceCode{
		{ID: "101", Name: "free market"},
		{ID: "201", Name: "welfare state"},
	}
	return motions, refs
}

// chdir changes the working directory for the duration of the test and
// restores it on cleanup (equivalent of testing.T.Chdir, added in Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}
