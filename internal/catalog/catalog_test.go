package catalog

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/MagicGarden_Go/internal/domain"
)

type stubSource struct {
	plants []domain.Plant
	err    error
	calls  int
}

func (s *stubSource) GetPlants(ctx context.Context) ([]domain.Plant, error) {
	s.calls++
	return s.plants, s.err
}

func ids(plants []domain.Plant) []int {
	out := make([]int, len(plants))
	for i, p := range plants {
		out[i] = p.ID
	}
	return out
}

func TestDefaults(t *testing.T) {
	c, err := New(nil, time.Minute)
	require.NoError(t, err)

	all := c.All()
	require.Len(t, all, 6)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, ids(all))

	rose, ok := c.Get(1)
	require.True(t, ok)
	assert.Equal(t, 100, rose.Price)
	assert.Equal(t, 30, rose.GrowTime)
	assert.Equal(t, 1000, rose.Reward)
	assert.Equal(t, 20, rose.Exp)

	pumpkin, ok := c.Get(4)
	require.True(t, ok)
	assert.Equal(t, "Giant Pumpkin", pumpkin.Name)

	_, ok = c.Get(99)
	assert.False(t, ok)
}

func TestRefresh_ReplacesDefaults(t *testing.T) {
	src := &stubSource{plants: []domain.Plant{
		{ID: 7, Name: "Sun Fern", Price: 80, GrowTime: 20, Reward: 500, Exp: 10},
	}}
	c, err := New(src, time.Minute)
	require.NoError(t, err)

	require.NoError(t, c.Refresh(context.Background()))

	assert.Equal(t, []int{7}, ids(c.All()))
	_, ok := c.Get(1)
	assert.False(t, ok, "authority catalog is authoritative once cached")
	fern, ok := c.Get(7)
	require.True(t, ok)
	assert.Equal(t, "Sun Fern", fern.Name)
}

func TestRefresh_FailureKeepsServing(t *testing.T) {
	src := &stubSource{err: domain.ErrTransport}
	c, err := New(src, time.Minute)
	require.NoError(t, err)

	err = c.Refresh(context.Background())
	assert.True(t, errors.Is(err, domain.ErrTransport))
	assert.Len(t, c.All(), 6)
}

func TestRefresh_EmptyIgnored(t *testing.T) {
	src := &stubSource{}
	c, err := New(src, time.Minute)
	require.NoError(t, err)

	require.NoError(t, c.Refresh(context.Background()))
	assert.Len(t, c.All(), 6)
}

func TestCacheExpiryFallsBackToDefaults(t *testing.T) {
	src := &stubSource{plants: []domain.Plant{{ID: 7, Name: "Sun Fern", GrowTime: 20}}}
	c, err := New(src, 20*time.Millisecond)
	require.NoError(t, err)
	require.NoError(t, c.Refresh(context.Background()))
	require.Len(t, c.All(), 1)

	assert.Eventually(t, func() bool { return len(c.All()) == 6 }, time.Second, 10*time.Millisecond)
}

func TestSearch(t *testing.T) {
	c, err := New(nil, time.Minute)
	require.NoError(t, err)

	tests := []struct {
		name  string
		query string
		sort  string
		want  []int
	}{
		{"all by id", "", "", []int{1, 2, 3, 4, 5, 6}},
		{"case folded", "MAGIC", "", []int{1, 2}},
		{"price desc", "", SortPriceDesc, []int{6, 5, 4, 3, 2, 1}},
		{"time asc", "", SortTimeAsc, []int{1, 2, 3, 4, 5, 6}},
		{"reward desc filtered", "magic", SortRewardDesc, []int{2, 1}},
		{"no match", "cactus", SortPriceAsc, []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := c.Search(tt.query, tt.sort)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestSearch_UnknownSort(t *testing.T) {
	c, err := New(nil, time.Minute)
	require.NoError(t, err)

	_, err = c.Search("", "alphabetical")
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}

func TestParseSeed_Incomplete(t *testing.T) {
	_, err := ParseSeed([]byte("plants:\n  - id: 1\n    name: Rose\n"))
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))

	_, err = ParseSeed([]byte("plants: ["))
	assert.Error(t, err)
}

func TestLevelTable(t *testing.T) {
	c, err := New(nil, time.Minute)
	require.NoError(t, err)
	levels := c.Levels()

	assert.Equal(t, 10, levels.MaxLevel())
	assert.Equal(t, 230, levels.ExpToNext(1, 20))
	assert.Equal(t, 200, levels.ExpToNext(2, 250))
	assert.Equal(t, 0, levels.ExpToNext(10, 5000))
}
