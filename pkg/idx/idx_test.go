package idx_test

import (
	"testing"
	"time"

	"github.com/aussiebroadwan/authkit/pkg/idx"
	"github.com/stretchr/testify/require"
)

func TestNewAndParse(t *testing.T) {
	id := idx.New()
	require.False(t, id.IsZero())

	parsed, err := idx.Parse(id.String())
	require.NoError(t, err)
	require.Equal(t, id, parsed)
}

func TestParse_Invalid(t *testing.T) {
	for _, in := range []string{"", "   ", "not-a-ulid", "01HQ7T3Z1MZ0JQ3M6MZQ1FQ3Z"} {
		_, err := idx.Parse(in)
		require.ErrorIs(t, err, idx.ErrInvalid, "input %q", in)
	}
}

func TestMonotonic(t *testing.T) {
	at := time.Unix(1700000000, 0).UTC()
	a := idx.NewAt(at)
	b := idx.NewAt(at)

	// Same millisecond still sorts strictly.
	require.Less(t, a.String(), b.String())
}

func TestTimeExtraction(t *testing.T) {
	tm := time.Unix(1700000000, 0).UTC()
	require.WithinDuration(t, tm, idx.NewAt(tm).Time(), time.Millisecond)
	require.True(t, idx.Zero.Time().IsZero())
}

func TestFromHeader(t *testing.T) {
	t.Run("keeps valid ulid", func(t *testing.T) {
		const in = "01HQ7T3Z1MZ0JQ3M6MZQ1FQ3ZV"
		require.Equal(t, idx.ID(in), idx.FromHeader(in))
	})

	t.Run("replaces garbage", func(t *testing.T) {
		id := idx.FromHeader("<script>")
		require.NotEqual(t, idx.ID("<script>"), id)
		_, err := idx.Parse(id.String())
		require.NoError(t, err)
	})

	t.Run("generates when empty", func(t *testing.T) {
		require.False(t, idx.FromHeader("").IsZero())
	})
}
