package tmdb

import (
	"context"
	"encoding/json"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const configurationDoc = `{
	"images": {
		"base_url": "http://image.tmdb.org/t/p/",
		"secure_base_url": "https://image.tmdb.org/t/p/",
		"backdrop_sizes": ["w300", "w780", "w1280", "original"],
		"logo_sizes": ["w45", "w92", "original"],
		"poster_sizes": ["w92", "w185", "w92"],
		"profile_sizes": ["w45", "h632", "original"],
		"still_sizes": ["w92", "original"]
	},
	"change_keys": ["adult", "budget", "title"]
}`

// countingSource serves doc and counts how often it was asked
type countingSource struct {
	calls atomic.Int32
	resp  func() *Response
}

func (s *countingSource) fetch(_ context.Context) *Response {
	s.calls.Add(1)
	return s.resp()
}

func newCountingSource(doc string) *countingSource {
	return &countingSource{resp: func() *Response { return NewResponse(json.RawMessage(doc)) }}
}

func TestConfigurationNotLoaded(t *testing.T) {
	cfg := NewConfiguration(newCountingSource(configurationDoc).fetch, zerolog.Nop())

	assert.False(t, cfg.IsLoaded())
	_, err := cfg.BaseURL()
	assert.ErrorIs(t, err, ErrConfigurationNotLoaded)
	_, err = cfg.SecureBaseURL()
	assert.ErrorIs(t, err, ErrConfigurationNotLoaded)
	_, err = cfg.Sizes(ImageKindPoster)
	assert.ErrorIs(t, err, ErrConfigurationNotLoaded)
	_, err = cfg.SupportsSize(ImageKindPoster, "w92")
	assert.ErrorIs(t, err, ErrConfigurationNotLoaded)
	_, err = cfg.ChangeKeys()
	assert.ErrorIs(t, err, ErrConfigurationNotLoaded)
	_, err = cfg.LoadedAt()
	assert.ErrorIs(t, err, ErrConfigurationNotLoaded)
	_, err = cfg.Snapshot()
	assert.ErrorIs(t, err, ErrConfigurationNotLoaded)
}

func TestConfigurationLoad(t *testing.T) {
	src := newCountingSource(configurationDoc)
	cfg := NewConfiguration(src.fetch, zerolog.Nop())
	ctx := context.Background()

	require.NoError(t, cfg.Load(ctx))
	require.NoError(t, cfg.Load(ctx))
	assert.Equal(t, int32(1), src.calls.Load(), "load is idempotent")

	assert.True(t, cfg.IsLoaded())
	base, err := cfg.SecureBaseURL()
	require.NoError(t, err)
	assert.Equal(t, "https://image.tmdb.org/t/p/", base)

	posters, err := cfg.Sizes(ImageKindPoster)
	require.NoError(t, err)
	assert.Equal(t, []string{"w92", "w185"}, posters, "sizes are de-duplicated in order")

	posters[0] = "mutated"
	again, _ := cfg.Sizes(ImageKindPoster)
	assert.Equal(t, "w92", again[0], "getters return copies")

	ok, err := cfg.SupportsSize(ImageKindProfile, "h632")
	require.NoError(t, err)
	assert.True(t, ok)
	ok, _ = cfg.SupportsSize(ImageKindProfile, "w500")
	assert.False(t, ok)

	keys, err := cfg.ChangeKeys()
	require.NoError(t, err)
	assert.Equal(t, []string{"adult", "budget", "title"}, keys)

	snap, err := cfg.Snapshot()
	require.NoError(t, err)
	assert.Equal(t, []string{"w92", "original"}, snap.Sizes["still"])
	assert.False(t, snap.LoadedAt.IsZero())
}

func TestConfigurationForceLoad(t *testing.T) {
	src := newCountingSource(configurationDoc)
	cfg := NewConfiguration(src.fetch, zerolog.Nop())
	ctx := context.Background()

	require.NoError(t, cfg.Load(ctx))
	require.NoError(t, cfg.ForceLoad(ctx))
	assert.Equal(t, int32(2), src.calls.Load())
	assert.True(t, cfg.IsLoaded())

	src.resp = func() *Response { return FailedResponse(StatusServerError, nil) }
	err := cfg.ForceLoad(ctx)
	assert.ErrorIs(t, err, ErrServerError)
	assert.False(t, cfg.IsLoaded(), "failed reload leaves the cache not loaded")
}

func TestConfigurationLoadFailures(t *testing.T) {
	tests := []struct {
		name    string
		resp    *Response
		wantErr error
	}{
		{"call failed", FailedResponse(StatusUnauthorized, nil), ErrUnauthorized},
		{"missing images", NewResponse(json.RawMessage(`{"change_keys":[]}`)), ErrPartialParse},
		{"missing secure base url", NewResponse(json.RawMessage(`{"images":{"base_url":"http://x/"}}`)), ErrPartialParse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfiguration(func(context.Context) *Response { return tt.resp }, zerolog.Nop())
			err := cfg.Load(context.Background())
			assert.ErrorIs(t, err, tt.wantErr)
			assert.False(t, cfg.IsLoaded())
		})
	}
}

func TestConfigurationMissingCatalogIsEmpty(t *testing.T) {
	cfg := NewConfiguration(newCountingSource(`{"images":{"base_url":"http://x/","secure_base_url":"https://x/"}}`).fetch, zerolog.Nop())
	require.NoError(t, cfg.Load(context.Background()))

	sizes, err := cfg.Sizes(ImageKindStill)
	require.NoError(t, err)
	assert.Empty(t, sizes)
	keys, err := cfg.ChangeKeys()
	require.NoError(t, err)
	assert.Empty(t, keys)
}

func TestConfigurationConcurrentLoad(t *testing.T) {
	src := newCountingSource(configurationDoc)
	cfg := NewConfiguration(src.fetch, zerolog.Nop())

	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, cfg.Load(context.Background()))
			sizes, err := cfg.Sizes(ImageKindBackdrop)
			assert.NoError(t, err)
			assert.Len(t, sizes, 4)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), src.calls.Load())
}
