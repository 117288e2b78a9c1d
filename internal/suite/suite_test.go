package suite

import (
	"errors"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/hsiuhsiu/ffibench-go/internal/bindings"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogShape(t *testing.T) {
	cat := Catalog()
	require.Len(t, cat, 33)

	seen := map[string]bool{}
	var order []string
	for _, bm := range cat {
		assert.False(t, seen[bm.Name], "duplicate %q", bm.Name)
		seen[bm.Name] = true
		assert.Contains(t, Categories(), bm.Category)
		assert.NotNil(t, bm.Setup, bm.Name)
		if len(order) == 0 || order[len(order)-1] != bm.Category {
			order = append(order, bm.Category)
		}
	}
	assert.Equal(t, Categories(), order, "categories appear once each, in report order")
}

func TestCatalogRunsOnEveryAdapter(t *testing.T) {
	for _, name := range bindings.Adapters() {
		t.Run(name, func(t *testing.T) {
			b, err := bindings.Open(bindings.Config{Adapter: name})
			if errors.Is(err, bindings.ErrNotBuilt) {
				t.Skipf("%s adapter not built", name)
			}
			require.NoError(t, err)
			defer b.Close()

			for _, bm := range Catalog() {
				call := bm.Setup()
				require.NoError(t, call(b), bm.Name)
				require.NoError(t, call(b), "%s (second call)", bm.Name)
			}
		})
	}
}

func TestSelect(t *testing.T) {
	cat := Catalog()

	assert.Len(t, Select(cat, nil, ""), len(cat))

	calls := Select(cat, []string{"function call overhead"}, "")
	require.Len(t, calls, 3)
	for _, bm := range calls {
		assert.Equal(t, CategoryCallOverhead, bm.Category)
	}

	sums := Select(cat, nil, "SUM_")
	names := make([]string, 0, len(sums))
	for _, bm := range sums {
		names = append(names, bm.Name)
	}
	assert.Equal(t, []string{
		"sum_array(size=1000)",
		"sum_array(size=10000)",
		"sum_array(size=100000)",
		"sum_strided(stride=1)",
		"sum_strided(stride=10)",
		"sum_strided(stride=100)",
		"sum_datapoints(100 structs)",
	}, names)

	both := Select(cat, []string{CategoryMemory}, "strided")
	assert.Len(t, both, 3)

	assert.Empty(t, Select(cat, []string{"No Such Category"}, ""))
}

func TestLookup(t *testing.T) {
	bm, ok := Lookup(Catalog(), "popcount(0xFFFFFFFF)")
	require.True(t, ok)
	assert.Equal(t, CategoryBitwise, bm.Category)

	_, ok = Lookup(Catalog(), "missing")
	assert.False(t, ok)
}

func TestInputsAreDeterministic(t *testing.T) {
	assert.Equal(t, randomDoubles("array", 64), randomDoubles("array", 64))
	assert.NotEqual(t, randomDoubles("array", 64), randomDoubles("dot_product/a", 64))
	assert.Equal(t, randomBytes("buffer", 32), randomBytes("buffer", 32))

	for _, v := range randomDoubles("array", 1000) {
		assert.True(t, v >= 0 && v < 1)
	}
}

func TestLabelSeedIsFNV1a(t *testing.T) {
	// FNV-1a offset basis and the published 64-bit hash of "a".
	for label, sum := range map[string]uint64{"": 0xcbf29ce484222325, "a": 0xaf63dc4c8601ec8c} {
		want := rand.New(rand.NewPCG(Seed, sum))
		got := rng(label)
		for range 4 {
			assert.Equal(t, want.Uint64(), got.Uint64(), "label %q", label)
		}
	}
}

func TestSetupGivesFreshInputs(t *testing.T) {
	bm, ok := Lookup(Catalog(), "sort_array(10000)")
	require.True(t, ok)

	b, err := bindings.Open(bindings.Config{Adapter: bindings.AdapterCompiled})
	require.NoError(t, err)
	defer b.Close()

	require.NoError(t, bm.Setup()(b))
	// A second setup regenerates the same unsorted input.
	arr := randomDoubles("sort_array", 10000)
	assert.False(t, slices.IsSorted(arr))
}
