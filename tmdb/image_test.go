package tmdb

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadedConfiguration(t *testing.T, doc string) *Configuration {
	t.Helper()
	cfg := NewConfiguration(func(context.Context) *Response {
		return NewResponse(json.RawMessage(doc))
	}, zerolog.Nop())
	require.NoError(t, cfg.Load(context.Background()))
	return cfg
}

func TestImageURL(t *testing.T) {
	cfg := loadedConfiguration(t, `{"images":{
		"base_url":"http://image.tmdb.org/t/p/",
		"secure_base_url":"https://image.tmdb.org/t/p/",
		"poster_sizes":["w92","w185"],
		"backdrop_sizes":["w300","original"]
	}}`)
	poster := Image{Kind: ImageKindPoster, FilePath: "/kqjL17yufvn9OVLyXYpvtyrFfak.jpg"}

	t.Run("supported size", func(t *testing.T) {
		u, err := poster.URL(cfg, "w185")
		require.NoError(t, err)
		assert.Equal(t, "https://image.tmdb.org/t/p/w185/kqjL17yufvn9OVLyXYpvtyrFfak.jpg", u)
	})

	t.Run("unsupported size is never substituted", func(t *testing.T) {
		u, err := poster.URL(cfg, "w500")
		assert.Empty(t, u)
		require.ErrorIs(t, err, ErrImageSizeNotSupported)

		var se *ImageSizeError
		require.ErrorAs(t, err, &se)
		assert.Equal(t, "w500", se.Size)
		assert.Equal(t, []string{"w92", "w185"}, se.Supported)
		assert.Equal(t, "/kqjL17yufvn9OVLyXYpvtyrFfak.jpg", poster.FilePath)
	})

	t.Run("size of another kind", func(t *testing.T) {
		_, err := poster.URL(cfg, "original")
		assert.ErrorIs(t, err, ErrImageSizeNotSupported)
	})

	t.Run("kind without catalog", func(t *testing.T) {
		still := Image{Kind: ImageKindStill, FilePath: "/s.jpg"}
		_, err := still.URL(cfg, "w92")
		assert.ErrorIs(t, err, ErrImageSizeNotSupported)
	})

	t.Run("configuration not loaded", func(t *testing.T) {
		unloaded := NewConfiguration(func(context.Context) *Response { return nil }, zerolog.Nop())
		_, err := poster.URL(unloaded, "w92")
		assert.ErrorIs(t, err, ErrConfigurationNotLoaded)

		_, err = poster.URL(nil, "w92")
		assert.ErrorIs(t, err, ErrConfigurationNotLoaded)
	})
}

func TestParseImageSet(t *testing.T) {
	set, err := ParseImageSet(json.RawMessage(`{
		"id": 550,
		"backdrops": [{"aspect_ratio": 1.778, "file_path": "/b.jpg", "height": 1080, "iso_639_1": null, "vote_average": 5.3, "vote_count": 10, "width": 1920}],
		"posters": [{"aspect_ratio": 0.667, "file_path": "/p.jpg", "height": 3000, "iso_639_1": "en", "width": 2000}]
	}`))
	require.NoError(t, err)

	require.Len(t, set.Backdrops, 1)
	b := set.Backdrops[0]
	assert.Equal(t, ImageKindBackdrop, b.Kind)
	assert.Equal(t, 1920, *b.Width)
	assert.Nil(t, b.Language)
	require.Len(t, set.Posters, 1)
	assert.Equal(t, "en", *set.Posters[0].Language)
	assert.Nil(t, set.Posters[0].VoteCount)
	assert.NotNil(t, set.Logos)
	assert.Empty(t, set.Logos)
	assert.Equal(t, 2, set.Len())

	_, err = ParseImageSet(json.RawMessage(`{"posters":[{"width":10}]}`))
	assert.ErrorIs(t, err, ErrPartialParse)
}

func TestImageKind(t *testing.T) {
	for _, kind := range imageKinds {
		parsed, err := ParseImageKind(kind.String())
		require.NoError(t, err)
		assert.Equal(t, kind, parsed)
	}
	_, err := ParseImageKind("banner")
	assert.Error(t, err)

	data, err := json.Marshal(Image{Kind: ImageKindLogo, FilePath: "/l.png"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"kind":"logo","file_path":"/l.png"}`, string(data))
}
