package exempt

import (
	"testing"

	"sab_waitlist/internal/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddNormalizesAndIsIdempotent(t *testing.T) {
	r := NewRegistry()

	name, err := r.Add("  PlayerOne ")
	require.NoError(t, err)
	assert.Equal(t, "playerone", name)

	_, err = r.Add("playerone")
	require.NoError(t, err)
	assert.Equal(t, 1, r.Len())

	_, ok, err := r.Contains("PLAYERONE")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestRemoveReportsExisted(t *testing.T) {
	r := NewRegistry()
	_, _ = r.Add("Someone")

	name, existed, err := r.Remove("someone ")
	require.NoError(t, err)
	assert.Equal(t, "someone", name)
	assert.True(t, existed)

	_, existed, err = r.Remove("someone")
	require.NoError(t, err)
	assert.False(t, existed)
	assert.Equal(t, 0, r.Len())
}

func TestRemoveAbsentLeavesSetUnchanged(t *testing.T) {
	r := NewRegistry()
	_, _ = r.Add("keep")

	_, existed, err := r.Remove("other")
	require.NoError(t, err)
	assert.False(t, existed)
	assert.Equal(t, []string{"keep"}, r.List())
}

func TestListSorted(t *testing.T) {
	r := NewRegistry()
	for _, n := range []string{"zed", "Alpha", "mike"} {
		_, _ = r.Add(n)
	}
	assert.Equal(t, []string{"alpha", "mike", "zed"}, r.List())
}

func TestMissingName(t *testing.T) {
	r := NewRegistry()

	_, err := r.Add("   ")
	assert.ErrorIs(t, err, apperr.ErrInvalidArgument)
	_, _, err = r.Remove("")
	assert.ErrorIs(t, err, apperr.ErrInvalidArgument)
	_, _, err = r.Contains("")
	assert.ErrorIs(t, err, apperr.ErrInvalidArgument)
}
