package tmdb

import "encoding/json"

// CastCredit is an acting credit on a movie
type CastCredit struct {
	PersonThumbnail    `yaml:",inline"`
	CreditID           string  `json:"credit_id" yaml:"credit_id"`
	Character          *string `json:"character,omitempty" yaml:"character,omitempty"`
	Order              *int    `json:"order,omitempty" yaml:"order,omitempty"`
	KnownForDepartment *string `json:"known_for_department,omitempty" yaml:"known_for_department,omitempty"`
}

// ParseCastCredit materializes a cast entry
func ParseCastCredit(data json.RawMessage) (CastCredit, error) {
	o := decodeObject("cast credit", data)
	c := CastCredit{
		PersonThumbnail:    personThumbnail(o),
		CreditID:           required[string](o, "credit_id"),
		Character:          optional[string](o, "character"),
		Order:              optional[int](o, "order"),
		KnownForDepartment: optional[string](o, "known_for_department"),
	}
	return c, o.err()
}

// CrewCredit is a crew credit on a movie
type CrewCredit struct {
	PersonThumbnail `yaml:",inline"`
	CreditID        string  `json:"credit_id" yaml:"credit_id"`
	Department      *string `json:"department,omitempty" yaml:"department,omitempty"`
	Job             *string `json:"job,omitempty" yaml:"job,omitempty"`
}

// ParseCrewCredit materializes a crew entry
func ParseCrewCredit(data json.RawMessage) (CrewCredit, error) {
	o := decodeObject("crew credit", data)
	c := CrewCredit{
		PersonThumbnail: personThumbnail(o),
		CreditID:        required[string](o, "credit_id"),
		Department:      optional[string](o, "department"),
		Job:             optional[string](o, "job"),
	}
	return c, o.err()
}

// Credits is the cast and crew of a movie
type Credits struct {
	Cast []CastCredit `json:"cast" yaml:"cast"`
	Crew []CrewCredit `json:"crew" yaml:"crew"`
}

// ParseCredits materializes a credits document
func ParseCredits(data json.RawMessage) (Credits, error) {
	o := decodeObject("credits", data)
	c := Credits{
		Cast: collection(o, "cast", ParseCastCredit),
		Crew: collection(o, "crew", ParseCrewCredit),
	}
	return c, o.err()
}

// PersonMovieCredit is a movie a person worked on, with their role in it
type PersonMovieCredit struct {
	MovieReduced `yaml:",inline"`
	CreditID     string  `json:"credit_id" yaml:"credit_id"`
	Character    *string `json:"character,omitempty" yaml:"character,omitempty"`
	Order        *int    `json:"order,omitempty" yaml:"order,omitempty"`
	Department   *string `json:"department,omitempty" yaml:"department,omitempty"`
	Job          *string `json:"job,omitempty" yaml:"job,omitempty"`
}

// ParsePersonMovieCredit materializes an entry of a person's movie credits
func ParsePersonMovieCredit(data json.RawMessage) (PersonMovieCredit, error) {
	o := decodeObject("person movie credit", data)
	c := PersonMovieCredit{
		MovieReduced: movieReduced(o),
		CreditID:     required[string](o, "credit_id"),
		Character:    optional[string](o, "character"),
		Order:        optional[int](o, "order"),
		Department:   optional[string](o, "department"),
		Job:          optional[string](o, "job"),
	}
	return c, o.err()
}

// PersonMovieCredits is a person's filmography split by cast and crew
type PersonMovieCredits struct {
	Cast []PersonMovieCredit `json:"cast" yaml:"cast"`
	Crew []PersonMovieCredit `json:"crew" yaml:"crew"`
}

func emptyPersonMovieCredits() PersonMovieCredits {
	return PersonMovieCredits{Cast: []PersonMovieCredit{}, Crew: []PersonMovieCredit{}}
}

// ParsePersonMovieCredits materializes a person movie credits document
func ParsePersonMovieCredits(data json.RawMessage) (PersonMovieCredits, error) {
	o := decodeObject("person movie credits", data)
	c := PersonMovieCredits{
		Cast: collection(o, "cast", ParsePersonMovieCredit),
		Crew: collection(o, "crew", ParsePersonMovieCredit),
	}
	return c, o.err()
}
