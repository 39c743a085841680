package tmdb

import (
	"encoding/json"
	"fmt"
)

// Gender is the gender recorded for a person
type Gender int

const (
	GenderNotSet Gender = iota
	GenderFemale
	GenderMale
	GenderNonBinary
)

// String returns the string representation of a Gender
func (g Gender) String() string {
	switch g {
	case GenderNotSet:
		return "not set"
	case GenderFemale:
		return "female"
	case GenderMale:
		return "male"
	case GenderNonBinary:
		return "non-binary"
	default:
		return fmt.Sprintf("Gender(%d)", int(g))
	}
}

// MarshalText renders the gender by name
func (g Gender) MarshalText() ([]byte, error) {
	return []byte(g.String()), nil
}

// PersonThumbnail is the smallest view of a person
type PersonThumbnail struct {
	ID      int64  `json:"id" yaml:"id"`
	Name    string `json:"name" yaml:"name"`
	Profile *Image `json:"profile,omitempty" yaml:"profile,omitempty"`
}

// PersonReduced is the person as returned in search and popularity lists
type PersonReduced struct {
	PersonThumbnail    `yaml:",inline"`
	Popularity         *float64       `json:"popularity,omitempty" yaml:"popularity,omitempty"`
	KnownForDepartment *string        `json:"known_for_department,omitempty" yaml:"known_for_department,omitempty"`
	Gender             *Gender        `json:"gender,omitempty" yaml:"gender,omitempty"`
	Adult              *bool          `json:"adult,omitempty" yaml:"adult,omitempty"`
	KnownFor           []MovieReduced `json:"known_for" yaml:"known_for"`
}

// Person is the full person record. Images and MovieCredits are filled by
// supplementary calls.
type Person struct {
	PersonReduced `yaml:",inline"`
	Biography     *string  `json:"biography,omitempty" yaml:"biography,omitempty"`
	Birthday      *string  `json:"birthday,omitempty" yaml:"birthday,omitempty"`
	Deathday      *string  `json:"deathday,omitempty" yaml:"deathday,omitempty"`
	PlaceOfBirth  *string  `json:"place_of_birth,omitempty" yaml:"place_of_birth,omitempty"`
	Homepage      *string  `json:"homepage,omitempty" yaml:"homepage,omitempty"`
	IMDbID        *string  `json:"imdb_id,omitempty" yaml:"imdb_id,omitempty"`
	AlsoKnownAs   []string `json:"also_known_as" yaml:"also_known_as"`

	Images       []Image            `json:"images" yaml:"images"`
	MovieCredits PersonMovieCredits `json:"movie_credits" yaml:"movie_credits"`
}

// ParsePersonThumbnail materializes the thumbnail tier of a person document
func ParsePersonThumbnail(data json.RawMessage) (PersonThumbnail, error) {
	o := decodeObject("person", data)
	p := personThumbnail(o)
	return p, o.err()
}

// ParsePersonReduced materializes the reduced tier of a person document
func ParsePersonReduced(data json.RawMessage) (PersonReduced, error) {
	o := decodeObject("person", data)
	p := personReduced(o)
	return p, o.err()
}

// ParsePerson materializes the full tier of a person details document.
// Supplementary collections are left empty.
func ParsePerson(data json.RawMessage) (Person, error) {
	o := decodeObject("person", data)
	p := personFull(o)
	return p, o.err()
}

func personThumbnail(o *object) PersonThumbnail {
	return PersonThumbnail{
		ID:      required[int64](o, "id"),
		Name:    required[string](o, "name"),
		Profile: imageField(o, "profile_path", ImageKindProfile),
	}
}

func personReduced(o *object) PersonReduced {
	return PersonReduced{
		PersonThumbnail:    personThumbnail(o),
		Popularity:         optional[float64](o, "popularity"),
		KnownForDepartment: optional[string](o, "known_for_department"),
		Gender:             optional[Gender](o, "gender"),
		Adult:              optional[bool](o, "adult"),
		KnownFor:           movieItems(o, "known_for"),
	}
}

func personFull(o *object) Person {
	aka := []string{}
	if names := optional[[]string](o, "also_known_as"); names != nil {
		aka = *names
	}
	return Person{
		PersonReduced: personReduced(o),
		Biography:     optional[string](o, "biography"),
		Birthday:      optional[string](o, "birthday"),
		Deathday:      optional[string](o, "deathday"),
		PlaceOfBirth:  optional[string](o, "place_of_birth"),
		Homepage:      optional[string](o, "homepage"),
		IMDbID:        optional[string](o, "imdb_id"),
		AlsoKnownAs:   aka,
		Images:        []Image{},
		MovieCredits:  emptyPersonMovieCredits(),
	}
}
