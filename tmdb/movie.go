package tmdb

import (
	"encoding/json"
	"strconv"
	"time"
)

// MovieThumbnail is the smallest view of a movie, enough for a list row
type MovieThumbnail struct {
	ID            int64   `json:"id" yaml:"id"`
	Title         string  `json:"title" yaml:"title"`
	OriginalTitle *string `json:"original_title,omitempty" yaml:"original_title,omitempty"`
	ReleaseDate   *string `json:"release_date,omitempty" yaml:"release_date,omitempty"`
	Poster        *Image  `json:"poster,omitempty" yaml:"poster,omitempty"`
}

// MovieReduced is the movie as returned in search and discovery results
type MovieReduced struct {
	MovieThumbnail   `yaml:",inline"`
	Overview         *string  `json:"overview,omitempty" yaml:"overview,omitempty"`
	VoteAverage      *float64 `json:"vote_average,omitempty" yaml:"vote_average,omitempty"`
	VoteCount        *int     `json:"vote_count,omitempty" yaml:"vote_count,omitempty"`
	Popularity       *float64 `json:"popularity,omitempty" yaml:"popularity,omitempty"`
	Backdrop         *Image   `json:"backdrop,omitempty" yaml:"backdrop,omitempty"`
	OriginalLanguage *string  `json:"original_language,omitempty" yaml:"original_language,omitempty"`
	GenreIDs         []int64  `json:"genre_ids" yaml:"genre_ids"`
	Adult            *bool    `json:"adult,omitempty" yaml:"adult,omitempty"`
	Video            *bool    `json:"video,omitempty" yaml:"video,omitempty"`
}

// Movie is the full movie record. The fields after BelongsToCollection are
// filled by supplementary calls and stay empty when those calls fail.
type Movie struct {
	MovieReduced        `yaml:",inline"`
	Budget              *int64               `json:"budget,omitempty" yaml:"budget,omitempty"`
	Revenue             *int64               `json:"revenue,omitempty" yaml:"revenue,omitempty"`
	Runtime             *int                 `json:"runtime,omitempty" yaml:"runtime,omitempty"`
	Homepage            *string              `json:"homepage,omitempty" yaml:"homepage,omitempty"`
	Tagline             *string              `json:"tagline,omitempty" yaml:"tagline,omitempty"`
	Status              *string              `json:"status,omitempty" yaml:"status,omitempty"`
	IMDbID              *string              `json:"imdb_id,omitempty" yaml:"imdb_id,omitempty"`
	Genres              []Genre              `json:"genres" yaml:"genres"`
	ProductionCompanies []CompanyThumbnail   `json:"production_companies" yaml:"production_companies"`
	ProductionCountries []Country            `json:"production_countries" yaml:"production_countries"`
	SpokenLanguages     []Language           `json:"spoken_languages" yaml:"spoken_languages"`
	BelongsToCollection *CollectionThumbnail `json:"belongs_to_collection,omitempty" yaml:"belongs_to_collection,omitempty"`

	Images            ImageSet           `json:"images" yaml:"images"`
	Keywords          []Keyword          `json:"keywords" yaml:"keywords"`
	Translations      []Translation      `json:"translations" yaml:"translations"`
	Videos            []Video            `json:"videos" yaml:"videos"`
	Cast              []CastCredit       `json:"cast" yaml:"cast"`
	Crew              []CrewCredit       `json:"crew" yaml:"crew"`
	AlternativeTitles []AlternativeTitle `json:"alternative_titles" yaml:"alternative_titles"`
}

// ParseMovieThumbnail materializes the thumbnail tier of a movie document
func ParseMovieThumbnail(data json.RawMessage) (MovieThumbnail, error) {
	o := decodeObject("movie", data)
	m := movieThumbnail(o)
	return m, o.err()
}

// ParseMovieReduced materializes the reduced tier of a movie document
func ParseMovieReduced(data json.RawMessage) (MovieReduced, error) {
	o := decodeObject("movie", data)
	m := movieReduced(o)
	return m, o.err()
}

// ParseMovie materializes the full tier of a movie details document.
// Supplementary collections are left empty.
func ParseMovie(data json.RawMessage) (Movie, error) {
	o := decodeObject("movie", data)
	m := movieFull(o)
	return m, o.err()
}

func movieThumbnail(o *object) MovieThumbnail {
	return MovieThumbnail{
		ID:            required[int64](o, "id"),
		Title:         required[string](o, "title"),
		OriginalTitle: optional[string](o, "original_title"),
		ReleaseDate:   optional[string](o, "release_date"),
		Poster:        imageField(o, "poster_path", ImageKindPoster),
	}
}

func movieReduced(o *object) MovieReduced {
	genreIDs := []int64{}
	if ids := optional[[]int64](o, "genre_ids"); ids != nil {
		genreIDs = *ids
	}
	return MovieReduced{
		MovieThumbnail:   movieThumbnail(o),
		Overview:         optional[string](o, "overview"),
		VoteAverage:      optional[float64](o, "vote_average"),
		VoteCount:        optional[int](o, "vote_count"),
		Popularity:       optional[float64](o, "popularity"),
		Backdrop:         imageField(o, "backdrop_path", ImageKindBackdrop),
		OriginalLanguage: optional[string](o, "original_language"),
		GenreIDs:         genreIDs,
		Adult:            optional[bool](o, "adult"),
		Video:            optional[bool](o, "video"),
	}
}

func movieFull(o *object) Movie {
	m := Movie{
		MovieReduced:        movieReduced(o),
		Budget:              optional[int64](o, "budget"),
		Revenue:             optional[int64](o, "revenue"),
		Runtime:             optional[int](o, "runtime"),
		Homepage:            optional[string](o, "homepage"),
		Tagline:             optional[string](o, "tagline"),
		Status:              optional[string](o, "status"),
		IMDbID:              optional[string](o, "imdb_id"),
		Genres:              collection(o, "genres", ParseGenre),
		ProductionCompanies: collection(o, "production_companies", ParseCompanyThumbnail),
		ProductionCountries: collection(o, "production_countries", ParseCountry),
		SpokenLanguages:     collection(o, "spoken_languages", ParseLanguage),
		BelongsToCollection: nested(o, "belongs_to_collection", ParseCollectionThumbnail),

		Images:            emptyImageSet(),
		Keywords:          []Keyword{},
		Translations:      []Translation{},
		Videos:            []Video{},
		Cast:              []CastCredit{},
		Crew:              []CrewCredit{},
		AlternativeTitles: []AlternativeTitle{},
	}
	return m
}

// ReleaseYear returns the year of the release date, if it is set and valid
func (m MovieThumbnail) ReleaseYear() (int, bool) {
	t, ok := m.Released()
	if !ok {
		return 0, false
	}
	return t.Year(), true
}

// Released parses the release date
func (m MovieThumbnail) Released() (time.Time, bool) {
	if m.ReleaseDate == nil || *m.ReleaseDate == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(time.DateOnly, *m.ReleaseDate)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// DisplayTitle returns the title followed by the release year when known
func (m MovieThumbnail) DisplayTitle() string {
	if year, ok := m.ReleaseYear(); ok {
		return m.Title + " (" + strconv.Itoa(year) + ")"
	}
	return m.Title
}

// Trailers returns the videos that are trailers
func (m Movie) Trailers() []Video {
	var trailers []Video
	for _, v := range m.Videos {
		if v.IsTrailer() {
			trailers = append(trailers, v)
		}
	}
	return trailers
}

// Directors returns the crew members credited with the Director job
func (m Movie) Directors() []CrewCredit {
	var directors []CrewCredit
	for _, c := range m.Crew {
		if c.Job != nil && *c.Job == "Director" {
			directors = append(directors, c)
		}
	}
	return directors
}

// RatedMovie is a movie with the rating the account gave it
type RatedMovie struct {
	MovieReduced `yaml:",inline"`
	Rating       *float64 `json:"rating,omitempty" yaml:"rating,omitempty"`
}

// ParseRatedMovie materializes an entry of the rated movies list
func ParseRatedMovie(data json.RawMessage) (RatedMovie, error) {
	o := decodeObject("rated movie", data)
	m := RatedMovie{
		MovieReduced: movieReduced(o),
		Rating:       optional[float64](o, "rating"),
	}
	return m, o.err()
}

// parseMovieItem materializes list items that may mix media types. Only
// movies are kept; ok is false for any other media type.
func parseMovieItem(data json.RawMessage) (m MovieReduced, ok bool, err error) {
	o := decodeObject("movie", data)
	if mt := optional[string](o, "media_type"); mt != nil && *mt != "movie" {
		return MovieReduced{}, false, nil
	}
	m = movieReduced(o)
	return m, true, o.err()
}

// movieItems reads the movies of a mixed media array field
func movieItems(o *object, key string) []MovieReduced {
	out := []MovieReduced{}
	raw, ok := o.raw(key)
	if !ok {
		return out
	}
	var elems []json.RawMessage
	if err := json.Unmarshal(raw, &elems); err != nil {
		o.fail(key)
		return out
	}
	for i, elem := range elems {
		m, isMovie, err := parseMovieItem(elem)
		if !isMovie {
			continue
		}
		if err != nil {
			o.fail(key + "[" + strconv.Itoa(i) + "]")
		}
		out = append(out, m)
	}
	return out
}
