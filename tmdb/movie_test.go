package tmdb

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const movieDetails = `{
	"adult": false,
	"backdrop_path": "/fCayJrkfRaCRCTh8GqN30f8oyQF.jpg",
	"belongs_to_collection": null,
	"budget": 63000000,
	"genres": [{"id": 18, "name": "Drama"}],
	"homepage": "",
	"id": 550,
	"imdb_id": "tt0137523",
	"original_language": "en",
	"original_title": "Fight Club",
	"overview": "A ticking-time-bomb insomniac...",
	"popularity": 0.5,
	"poster_path": null,
	"production_companies": [
		{"id": 508, "logo_path": "/7PzJdsLGlR7oW4J0J5Xcd0pHGRg.png", "name": "Regency Enterprises", "origin_country": "US"}
	],
	"production_countries": [{"iso_3166_1": "US", "name": "United States of America"}],
	"release_date": "1999-10-12",
	"revenue": 100853753,
	"runtime": 139,
	"spoken_languages": [{"iso_639_1": "en", "name": "English"}],
	"status": "Released",
	"tagline": "How much can you take?",
	"title": "Fight Club",
	"video": false,
	"vote_average": 7.8,
	"vote_count": 3439
}`

func TestMovieTiersAreSupersets(t *testing.T) {
	data := json.RawMessage(movieDetails)

	thumb, err := ParseMovieThumbnail(data)
	require.NoError(t, err)
	reduced, err := ParseMovieReduced(data)
	require.NoError(t, err)
	full, err := ParseMovie(data)
	require.NoError(t, err)

	assert.Equal(t, thumb, reduced.MovieThumbnail)
	assert.Equal(t, reduced, full.MovieReduced)
}

func TestParseMovie(t *testing.T) {
	m, err := ParseMovie(json.RawMessage(movieDetails))
	require.NoError(t, err)

	assert.Equal(t, int64(550), m.ID)
	assert.Equal(t, "Fight Club", m.Title)
	require.NotNil(t, m.Budget)
	assert.Equal(t, int64(63000000), *m.Budget)
	require.NotNil(t, m.Runtime)
	assert.Equal(t, 139, *m.Runtime)
	require.NotNil(t, m.Homepage)
	assert.Equal(t, "", *m.Homepage, "empty text is a set value")
	assert.Nil(t, m.Poster, "null poster path is unset")
	require.NotNil(t, m.Backdrop)
	assert.Equal(t, ImageKindBackdrop, m.Backdrop.Kind)
	assert.Nil(t, m.BelongsToCollection)

	require.Len(t, m.Genres, 1)
	assert.Equal(t, "Drama", m.Genres[0].Name)
	require.Len(t, m.ProductionCompanies, 1)
	require.NotNil(t, m.ProductionCompanies[0].Logo)
	assert.Equal(t, ImageKindLogo, m.ProductionCompanies[0].Logo.Kind)
	assert.Empty(t, m.GenreIDs)

	assert.NotNil(t, m.Keywords)
	assert.Empty(t, m.Keywords)
	assert.NotNil(t, m.Images.Posters)

	year, ok := m.ReleaseYear()
	assert.True(t, ok)
	assert.Equal(t, 1999, year)
	assert.Equal(t, "Fight Club (1999)", m.DisplayTitle())
}

func TestMovieUnsetVersusZero(t *testing.T) {
	tests := []struct {
		name       string
		doc        string
		wantBudget *int64
		wantVotes  *int
	}{
		{
			name: "absent fields are unset",
			doc:  `{"id":5,"title":"X"}`,
		},
		{
			name: "null fields are unset",
			doc:  `{"id":5,"title":"X","budget":null,"vote_count":null}`,
		},
		{
			name:       "zero is a value",
			doc:        `{"id":5,"title":"X","budget":0,"vote_count":0}`,
			wantBudget: ptr(int64(0)),
			wantVotes:  ptr(0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := ParseMovie(json.RawMessage(tt.doc))
			require.NoError(t, err)
			assert.Equal(t, tt.wantBudget, m.Budget)
			assert.Equal(t, tt.wantVotes, m.VoteCount)
			assert.Nil(t, m.Runtime)
			assert.Nil(t, m.Overview)
			assert.Empty(t, m.Genres)
			assert.NotNil(t, m.Genres)
		})
	}
}

func TestMovieMissingMandatoryFields(t *testing.T) {
	tests := []struct {
		name        string
		doc         string
		wantMissing []string
	}{
		{"missing title", `{"id":5}`, []string{"title"}},
		{"missing both", `{"overview":"x"}`, []string{"id", "title"}},
		{"wrong id type", `{"id":"five","title":"X"}`, []string{"id"}},
		{"not an object", `"movie"`, []string{"<object>", "id", "title"}},
		{"bad nested genre", `{"id":5,"title":"X","genres":[{"id":1}]}`, []string{"genres[0]"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := ParseMovie(json.RawMessage(tt.doc))
			require.ErrorIs(t, err, ErrPartialParse)
			var pe *ParseError
			require.ErrorAs(t, err, &pe)
			assert.Equal(t, tt.wantMissing, pe.Missing)
			assert.NotNil(t, m.Cast)
		})
	}
}

func TestParseMovieReducedSearchResult(t *testing.T) {
	m, err := ParseMovieReduced(json.RawMessage(`{
		"id": 603, "title": "The Matrix", "genre_ids": [28, 878],
		"poster_path": "/f89U3ADr1oiB1s9GkdPOEpXUk5H.jpg", "poster_path_extra": 1,
		"vote_average": 8.2, "release_date": ""
	}`))
	require.NoError(t, err)
	assert.Equal(t, []int64{28, 878}, m.GenreIDs)
	require.NotNil(t, m.Poster)
	assert.Equal(t, "/f89U3ADr1oiB1s9GkdPOEpXUk5H.jpg", m.Poster.FilePath)
	assert.Nil(t, m.Poster.Width)
	_, ok := m.ReleaseYear()
	assert.False(t, ok)
	assert.Equal(t, "The Matrix", m.DisplayTitle())
}

func TestMovieHelpers(t *testing.T) {
	m := Movie{
		Videos: []Video{
			{Key: "a", Site: "YouTube", Type: ptr("Trailer")},
			{Key: "b", Site: "YouTube", Type: ptr("Featurette")},
		},
		Crew: []CrewCredit{
			{PersonThumbnail: PersonThumbnail{Name: "Lana"}, Job: ptr("Director")},
			{PersonThumbnail: PersonThumbnail{Name: "Bill"}, Job: ptr("Director of Photography")},
		},
	}

	trailers := m.Trailers()
	require.Len(t, trailers, 1)
	assert.Equal(t, "https://www.youtube.com/watch?v=a", trailers[0].WatchURL())

	directors := m.Directors()
	require.Len(t, directors, 1)
	assert.Equal(t, "Lana", directors[0].Name)
}

func ptr[T any](v T) *T {
	return &v
}
