package version

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetFullVersion(t *testing.T) {
	restore := func(v, c, d string) {
		Version, GitCommit, BuildDate = v, c, d
	}
	defer restore(Version, GitCommit, BuildDate)

	restore("dev", "unknown", "unknown")
	require.Equal(t, "dev", GetFullVersion())

	restore("1.2.0", "unknown", "unknown")
	require.Equal(t, "1.2.0", GetFullVersion())

	restore("1.2.0", "abc1234", "unknown")
	require.Equal(t, "1.2.0 (abc1234)", GetFullVersion())

	restore("1.2.0", "abc1234", "2026-08-25")
	require.Equal(t, "1.2.0 (abc1234, 2026-08-25)", GetFullVersion())
}
