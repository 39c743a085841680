package tmdb

import "encoding/json"

// ListThumbnail is the smallest view of a user list. List ids are strings
// for v4 lists and numbers for v3 lists; both are kept as strings.
type ListThumbnail struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

// ListReduced is the list as returned in account and movie list results
type ListReduced struct {
	ListThumbnail `yaml:",inline"`
	Description   *string `json:"description,omitempty" yaml:"description,omitempty"`
	FavoriteCount *int    `json:"favorite_count,omitempty" yaml:"favorite_count,omitempty"`
	ItemCount     *int    `json:"item_count,omitempty" yaml:"item_count,omitempty"`
	ISO639_1      *string `json:"iso_639_1,omitempty" yaml:"iso_639_1,omitempty"`
	ListType      *string `json:"list_type,omitempty" yaml:"list_type,omitempty"`
	Poster        *Image  `json:"poster,omitempty" yaml:"poster,omitempty"`
}

// List is the full list with its movies. Entries of other media types are skipped.
type List struct {
	ListReduced `yaml:",inline"`
	CreatedBy   *string        `json:"created_by,omitempty" yaml:"created_by,omitempty"`
	Items       []MovieReduced `json:"items" yaml:"items"`
}

// ParseListThumbnail materializes the thumbnail tier of a list document
func ParseListThumbnail(data json.RawMessage) (ListThumbnail, error) {
	o := decodeObject("list", data)
	l := listThumbnail(o)
	return l, o.err()
}

// ParseListReduced materializes the reduced tier of a list document
func ParseListReduced(data json.RawMessage) (ListReduced, error) {
	o := decodeObject("list", data)
	l := listReduced(o)
	return l, o.err()
}

// ParseList materializes the full tier of a list details document
func ParseList(data json.RawMessage) (List, error) {
	o := decodeObject("list", data)
	l := List{
		ListReduced: listReduced(o),
		CreatedBy:   optional[string](o, "created_by"),
		Items:       movieItems(o, "items"),
	}
	return l, o.err()
}

func listThumbnail(o *object) ListThumbnail {
	return ListThumbnail{
		ID:   flexibleID(o, "id"),
		Name: required[string](o, "name"),
	}
}

func listReduced(o *object) ListReduced {
	return ListReduced{
		ListThumbnail: listThumbnail(o),
		Description:   optional[string](o, "description"),
		FavoriteCount: optional[int](o, "favorite_count"),
		ItemCount:     optional[int](o, "item_count"),
		ISO639_1:      optional[string](o, "iso_639_1"),
		ListType:      optional[string](o, "list_type"),
		Poster:        imageField(o, "poster_path", ImageKindPoster),
	}
}
