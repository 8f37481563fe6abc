package counter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Highlife1911/ultimate-hashcontainer/hashcontainer/keyset"
)

func Test_EmptyCounter(t *testing.T) {
	tr, err := New(4)
	require.NoError(t, err)

	assert.Empty(t, tr.Keys())
	assert.Equal(t, 0, tr.Get("a"), "wrong .Get() result")
	assert.Equal(t, 0, tr.Del("a"), "wrong .Del() result")
	assert.Empty(t, tr.CountedKeys())
}

func Test_IncDec(t *testing.T) {
	tr, err := New(8)
	require.NoError(t, err)

	for _, tcase := range []struct {
		op  func(string) (int, error)
		key string
		exp int
	}{
		{tr.Inc, "x", 1},
		{tr.Inc, "x", 2},
		{tr.Dec, "x", 1},
		{tr.Dec, "y", -1},
		{tr.Inc, "y", 0},
		{tr.Inc, "z", 1},
	} {
		c, err := tcase.op(tcase.key)
		require.NoError(t, err)
		assert.Equal(t, tcase.exp, c, tcase.key)
		assert.Equal(t, tcase.exp, tr.Get(tcase.key), tcase.key)
	}

	prev, err := tr.Set("x", 10)
	require.NoError(t, err)
	assert.Equal(t, 1, prev)
	assert.Equal(t, 10, tr.Get("x"))

	assert.Equal(t, []string{"x", "y", "z"}, tr.Keys())
	assert.Equal(t, 3, tr.Len())
}

func Test_DeleteUnknownKey(t *testing.T) {
	tr, err := New(4)
	require.NoError(t, err)

	c, err := tr.Inc("aa")
	require.NoError(t, err)
	assert.Equal(t, 1, c, "wrong result when increment a key in an empty counter")

	assert.Equal(t, 0, tr.Del("ab"), "wrong result when deleting an unknown key")
	assert.Equal(t, 1, tr.Del("aa"))
	assert.Equal(t, 0, tr.Len())

	// a deleted key starts from scratch
	c, err = tr.Inc("aa")
	require.NoError(t, err)
	assert.Equal(t, 1, c)
}

func Test_Full(t *testing.T) {
	tr, err := New(1)
	require.NoError(t, err)

	_, err = tr.Inc("a")
	require.NoError(t, err)

	_, err = tr.Inc("b")
	assert.ErrorIs(t, err, keyset.ErrFull)
	assert.Equal(t, 0, tr.Get("b"))
}

func Test_CountedKeys(t *testing.T) {
	tr, err := New(10)
	require.NoError(t, err)

	for _, s := range []string{"a", "b", "c", "a", "bb", "ccc", "a", "ccc"} {
		_, err := tr.Inc(s)
		require.NoError(t, err)
	}

	assert.Equal(t, CountedKeySlice{
		{"a", 3}, {"ccc", 2}, {"b", 1}, {"bb", 1}, {"c", 1},
	}, tr.CountedKeys())
}

func Test_Merge(t *testing.T) {
	a, err := New(4, CountedKeySlice{{"ABC", 3}, {"DEF", 2}}...)
	require.NoError(t, err)
	b, err := New(4, CountedKeySlice{{"ABC", -1}, {"GHI", 1}}...)
	require.NoError(t, err)

	require.NoError(t, a.Merge(b))
	require.NoError(t, a.Merge(nil))

	assert.Equal(t, CountedKeySlice{
		{"ABC", 2}, {"DEF", 2}, {"GHI", 1},
	}, a.CountedKeys())
}

func Test_MergeFull(t *testing.T) {
	a, err := New(1, CountedKey{"A", 1})
	require.NoError(t, err)
	b, err := New(2, CountedKey{"A", 1}, CountedKey{"B", 1})
	require.NoError(t, err)

	assert.ErrorIs(t, a.Merge(b), keyset.ErrFull)

	_, err = New(1, CountedKey{"A", 1}, CountedKey{"B", 1})
	assert.ErrorIs(t, err, keyset.ErrFull)
}
