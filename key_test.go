package rowdex

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/rowdex/model"
	"github.com/hupe1980/rowdex/rowstore"
)

// opaqueStore exposes rows positionally but without a materialized copy,
// like a remote or virtualized source.
type opaqueStore struct {
	rows []model.Row
}

func (s *opaqueStore) RowCount() int           { return len(s.rows) }
func (s *opaqueStore) RowAt(pos int) model.Row { return s.rows[pos] }

func TestResolveKey_ExplicitUnchanged(t *testing.T) {
	store := rowstore.NewMemory(model.Row{"id": 1, "name": "a"})
	ix := New(store, store, WithKey("name", "id"))

	key, err := ix.resolveKey(model.Row{"id": 1, "name": "a"})
	require.NoError(t, err)
	assert.Equal(t, []string{"name", "id"}, key)

	// Even a scalar sarg is fine once a key is configured.
	key, err = ix.resolveKey(1)
	require.NoError(t, err)
	assert.Equal(t, []string{"name", "id"}, key)
}

func TestResolveKey_ScalarWithoutKey(t *testing.T) {
	store := rowstore.NewMemory()
	ix := New(store, store)

	_, err := ix.resolveKey(42)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestResolveKey_SelectivityOrder(t *testing.T) {
	// "id" takes 3 distinct values, "dept" only 1: the id column must lead
	// so the first narrowing pass eliminates the most candidates.
	store := rowstore.NewMemory(
		model.Row{"dept": "eng", "id": 1},
		model.Row{"dept": "eng", "id": 2},
		model.Row{"dept": "eng", "id": 3},
	)
	ix := New(store, store)

	key, err := ix.resolveKey(model.Row{"dept": "eng", "id": 2})
	require.NoError(t, err)
	assert.Equal(t, []string{"id", "dept"}, key)
}

func TestResolveKey_FallbackWithoutLister(t *testing.T) {
	// No materialized rows means no selectivity scores; the deterministic
	// sorted-name fallback decides.
	store := &opaqueStore{rows: []model.Row{
		{"zeta": 1, "alpha": "x"},
		{"zeta": 2, "alpha": "x"},
	}}
	ix := New(store, nil)

	key, err := ix.resolveKey(model.Row{"zeta": 1, "alpha": "x"})
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "zeta"}, key)
}

func TestResolveKey_CachedUntilReset(t *testing.T) {
	store := rowstore.NewMemory(
		model.Row{"a": 1, "b": "x"},
		model.Row{"a": 2, "b": "y"},
	)
	ix := New(store, store)

	key, err := ix.resolveKey(model.Row{"a": 1, "b": "x"})
	require.NoError(t, err)
	require.NotEmpty(t, key)

	// A differently shaped sarg does not re-derive while cached.
	cached, err := ix.resolveKey(model.Row{"c": 1})
	require.NoError(t, err)
	assert.Equal(t, key, cached)

	ix.ResetKey()
	assert.Nil(t, ix.Key())

	rederived, err := ix.resolveKey(model.Row{"c": 1})
	require.NoError(t, err)
	assert.Equal(t, []string{"c"}, rederived)
}

func TestNormalize(t *testing.T) {
	tuple, err := normalize([]string{"id"}, 7)
	require.NoError(t, err)
	assert.Equal(t, []any{7}, tuple)

	tuple, err = normalize([]string{"dept", "id"}, model.Row{"id": 7, "dept": "eng", "extra": true})
	require.NoError(t, err)
	assert.Equal(t, []any{"eng", 7}, tuple)

	_, err = normalize([]string{"dept", "id"}, 7)
	assert.ErrorIs(t, err, ErrAmbiguousSearchArgument)

	_, err = normalize([]string{"dept", "id"}, model.Row{"dept": "eng"})
	var missing *ErrMissingKeyColumn
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "id", missing.Column)
}
