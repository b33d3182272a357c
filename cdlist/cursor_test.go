package cdlist_test

import (
	"testing"

	"github.com/SnowyOwl000/3700.f22.public/cdlist"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCursor_Unpositioned(t *testing.T) {
	_, l := newTestList(t)
	require.NoError(t, l.Insert(0, "a"))

	// A fresh list has no current node even when non-empty.
	_, err := l.Cur()
	assert.ErrorIs(t, err, cdlist.ErrNoCurrentNode)

	_, err = l.Advance()
	assert.ErrorIs(t, err, cdlist.ErrNoCurrentNode)

	_, err = l.Retreat()
	assert.ErrorIs(t, err, cdlist.ErrNoCurrentNode)
}

func TestCursor_FirstLastEmpty(t *testing.T) {
	_, l := newTestList(t)

	_, err := l.First()
	assert.ErrorIs(t, err, cdlist.ErrEmptyList)

	_, err = l.Last()
	assert.ErrorIs(t, err, cdlist.ErrEmptyList)

	assert.False(t, l.IsFirst())
	assert.False(t, l.IsLast())
}

func TestCursor_FirstLast(t *testing.T) {
	_, l := newTestList(t)
	for i, v := range []string{"a", "b", "c"} {
		require.NoError(t, l.Insert(i, v))
	}

	v, err := l.First()
	require.NoError(t, err)
	assert.Equal(t, "a", *v)
	assert.True(t, l.IsFirst())
	assert.False(t, l.IsLast())

	v, err = l.Last()
	require.NoError(t, err)
	assert.Equal(t, "c", *v)
	assert.True(t, l.IsLast())
	assert.False(t, l.IsFirst())
}

func TestCursor_AdvanceWrapsAround(t *testing.T) {
	_, l := newTestList(t)
	for i, v := range []string{"a", "b", "c"} {
		require.NoError(t, l.Insert(i, v))
	}

	_, err := l.First()
	require.NoError(t, err)

	// Exactly Len steps forward return the cursor to the first element.
	for i := 0; i < l.Len(); i++ {
		_, err = l.Advance()
		require.NoError(t, err)
	}

	assert.True(t, l.IsFirst())

	v, err := l.Cur()
	require.NoError(t, err)
	assert.Equal(t, "a", *v)
}

func TestCursor_RetreatWrapsAround(t *testing.T) {
	_, l := newTestList(t)
	for i, v := range []string{"a", "b", "c"} {
		require.NoError(t, l.Insert(i, v))
	}

	_, err := l.First()
	require.NoError(t, err)

	v, err := l.Retreat()
	require.NoError(t, err)
	assert.Equal(t, "c", *v)
	assert.True(t, l.IsLast())
}

func TestCursor_Walk(t *testing.T) {
	_, l := newTestList(t)
	for i, v := range []string{"a", "b", "c"} {
		require.NoError(t, l.Insert(i, v))
	}

	var seen []string
	v, err := l.First()
	require.NoError(t, err)
	seen = append(seen, *v)

	for !l.IsLast() {
		v, err = l.Advance()
		require.NoError(t, err)
		seen = append(seen, *v)
	}

	assert.Equal(t, []string{"a", "b", "c"}, seen)
}

func TestCursor_Mutation(t *testing.T) {
	_, l := newTestList(t)
	require.NoError(t, l.Insert(0, "a"))
	require.NoError(t, l.Insert(1, "b"))

	v, err := l.Last()
	require.NoError(t, err)
	*v = "B"

	assert.Equal(t, []string{"a", "B"}, contents(t, l))
}

func TestCursor_ClearResets(t *testing.T) {
	_, l := newTestList(t)
	require.NoError(t, l.Insert(0, "a"))

	_, err := l.First()
	require.NoError(t, err)

	l.Clear()

	_, err = l.Cur()
	assert.ErrorIs(t, err, cdlist.ErrNoCurrentNode)
	assert.False(t, l.IsFirst())
	assert.False(t, l.IsLast())
}

func TestCursor_SingleElement(t *testing.T) {
	_, l := newTestList(t)
	require.NoError(t, l.Insert(0, "a"))

	_, err := l.First()
	require.NoError(t, err)

	// The sole node is both first and last, and its own neighbor.
	assert.True(t, l.IsFirst())
	assert.True(t, l.IsLast())

	v, err := l.Advance()
	require.NoError(t, err)
	assert.Equal(t, "a", *v)
	assert.True(t, l.IsFirst())
}
