package tmdb

import (
	"encoding/json"
	"strings"
)

// Genre is a movie genre
type Genre struct {
	ID   int64  `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

// ParseGenre materializes a genre
func ParseGenre(data json.RawMessage) (Genre, error) {
	o := decodeObject("genre", data)
	g := Genre{
		ID:   required[int64](o, "id"),
		Name: required[string](o, "name"),
	}
	return g, o.err()
}

// Keyword is a keyword attached to a movie
type Keyword struct {
	ID   int64  `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

// ParseKeyword materializes a keyword
func ParseKeyword(data json.RawMessage) (Keyword, error) {
	o := decodeObject("keyword", data)
	k := Keyword{
		ID:   required[int64](o, "id"),
		Name: required[string](o, "name"),
	}
	return k, o.err()
}

// Country is a production country
type Country struct {
	ISO3166_1 string  `json:"iso_3166_1" yaml:"iso_3166_1"`
	Name      *string `json:"name,omitempty" yaml:"name,omitempty"`
}

// ParseCountry materializes a country
func ParseCountry(data json.RawMessage) (Country, error) {
	o := decodeObject("country", data)
	c := Country{
		ISO3166_1: required[string](o, "iso_3166_1"),
		Name:      optional[string](o, "name"),
	}
	return c, o.err()
}

// Language is a spoken language
type Language struct {
	ISO639_1    string  `json:"iso_639_1" yaml:"iso_639_1"`
	Name        *string `json:"name,omitempty" yaml:"name,omitempty"`
	EnglishName *string `json:"english_name,omitempty" yaml:"english_name,omitempty"`
}

// ParseLanguage materializes a language
func ParseLanguage(data json.RawMessage) (Language, error) {
	o := decodeObject("language", data)
	l := Language{
		ISO639_1:    required[string](o, "iso_639_1"),
		Name:        optional[string](o, "name"),
		EnglishName: optional[string](o, "english_name"),
	}
	return l, o.err()
}

// TranslationData is the translated text of a resource
type TranslationData struct {
	Title     *string `json:"title,omitempty" yaml:"title,omitempty"`
	Name      *string `json:"name,omitempty" yaml:"name,omitempty"`
	Overview  *string `json:"overview,omitempty" yaml:"overview,omitempty"`
	Homepage  *string `json:"homepage,omitempty" yaml:"homepage,omitempty"`
	Tagline   *string `json:"tagline,omitempty" yaml:"tagline,omitempty"`
	Biography *string `json:"biography,omitempty" yaml:"biography,omitempty"`
}

// Translation is one available translation of a movie or person
type Translation struct {
	ISO3166_1   string          `json:"iso_3166_1" yaml:"iso_3166_1"`
	ISO639_1    string          `json:"iso_639_1" yaml:"iso_639_1"`
	Name        *string         `json:"name,omitempty" yaml:"name,omitempty"`
	EnglishName *string         `json:"english_name,omitempty" yaml:"english_name,omitempty"`
	Data        TranslationData `json:"data" yaml:"data"`
}

// ParseTranslation materializes a translation
func ParseTranslation(data json.RawMessage) (Translation, error) {
	o := decodeObject("translation", data)
	t := Translation{
		ISO3166_1:   required[string](o, "iso_3166_1"),
		ISO639_1:    required[string](o, "iso_639_1"),
		Name:        optional[string](o, "name"),
		EnglishName: optional[string](o, "english_name"),
	}
	if raw, ok := o.raw("data"); ok {
		d := decodeObject("translation data", raw)
		t.Data = TranslationData{
			Title:     optional[string](d, "title"),
			Name:      optional[string](d, "name"),
			Overview:  optional[string](d, "overview"),
			Homepage:  optional[string](d, "homepage"),
			Tagline:   optional[string](d, "tagline"),
			Biography: optional[string](d, "biography"),
		}
	}
	return t, o.err()
}

// Video is a trailer, teaser or clip hosted on an external site
type Video struct {
	ID          string  `json:"id" yaml:"id"`
	Key         string  `json:"key" yaml:"key"`
	Name        string  `json:"name" yaml:"name"`
	Site        string  `json:"site" yaml:"site"`
	Type        *string `json:"type,omitempty" yaml:"type,omitempty"`
	Size        *int    `json:"size,omitempty" yaml:"size,omitempty"`
	Official    *bool   `json:"official,omitempty" yaml:"official,omitempty"`
	ISO639_1    *string `json:"iso_639_1,omitempty" yaml:"iso_639_1,omitempty"`
	ISO3166_1   *string `json:"iso_3166_1,omitempty" yaml:"iso_3166_1,omitempty"`
	PublishedAt *string `json:"published_at,omitempty" yaml:"published_at,omitempty"`
}

// ParseVideo materializes a video
func ParseVideo(data json.RawMessage) (Video, error) {
	o := decodeObject("video", data)
	v := Video{
		ID:          required[string](o, "id"),
		Key:         required[string](o, "key"),
		Name:        required[string](o, "name"),
		Site:        required[string](o, "site"),
		Type:        optional[string](o, "type"),
		Size:        optional[int](o, "size"),
		Official:    optional[bool](o, "official"),
		ISO639_1:    optional[string](o, "iso_639_1"),
		ISO3166_1:   optional[string](o, "iso_3166_1"),
		PublishedAt: optional[string](o, "published_at"),
	}
	return v, o.err()
}

// IsTrailer checks if the video is a trailer
func (v Video) IsTrailer() bool {
	return v.Type != nil && *v.Type == "Trailer"
}

// WatchURL returns the public URL of the video for the sites that have one
func (v Video) WatchURL() string {
	switch strings.ToLower(v.Site) {
	case "youtube":
		return "https://www.youtube.com/watch?v=" + v.Key
	case "vimeo":
		return "https://vimeo.com/" + v.Key
	default:
		return ""
	}
}

// AlternativeTitle is a title a movie is known by in a country
type AlternativeTitle struct {
	ISO3166_1 string  `json:"iso_3166_1" yaml:"iso_3166_1"`
	Title     string  `json:"title" yaml:"title"`
	Type      *string `json:"type,omitempty" yaml:"type,omitempty"`
}

// ParseAlternativeTitle materializes an alternative title
func ParseAlternativeTitle(data json.RawMessage) (AlternativeTitle, error) {
	o := decodeObject("alternative title", data)
	a := AlternativeTitle{
		ISO3166_1: required[string](o, "iso_3166_1"),
		Title:     required[string](o, "title"),
		Type:      optional[string](o, "type"),
	}
	return a, o.err()
}

// Review is a user review of a movie
type Review struct {
	ID        string   `json:"id" yaml:"id"`
	Author    string   `json:"author" yaml:"author"`
	Content   string   `json:"content" yaml:"content"`
	URL       *string  `json:"url,omitempty" yaml:"url,omitempty"`
	Rating    *float64 `json:"rating,omitempty" yaml:"rating,omitempty"`
	CreatedAt *string  `json:"created_at,omitempty" yaml:"created_at,omitempty"`
}

// ParseReview materializes a review
func ParseReview(data json.RawMessage) (Review, error) {
	o := decodeObject("review", data)
	r := Review{
		ID:        required[string](o, "id"),
		Author:    required[string](o, "author"),
		Content:   required[string](o, "content"),
		URL:       optional[string](o, "url"),
		CreatedAt: optional[string](o, "created_at"),
	}
	if raw, ok := o.raw("author_details"); ok {
		r.Rating = optional[float64](decodeObject("author details", raw), "rating")
	}
	return r, o.err()
}
