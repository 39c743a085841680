package tmdb

import "encoding/json"

// CollectionThumbnail is the smallest view of a movie collection
type CollectionThumbnail struct {
	ID     int64  `json:"id" yaml:"id"`
	Name   string `json:"name" yaml:"name"`
	Poster *Image `json:"poster,omitempty" yaml:"poster,omitempty"`
}

// CollectionReduced is the collection as returned in search results
type CollectionReduced struct {
	CollectionThumbnail `yaml:",inline"`
	Backdrop            *Image  `json:"backdrop,omitempty" yaml:"backdrop,omitempty"`
	Overview            *string `json:"overview,omitempty" yaml:"overview,omitempty"`
}

// Collection is the full collection record with its movies
type Collection struct {
	CollectionReduced `yaml:",inline"`
	Parts             []MovieReduced `json:"parts" yaml:"parts"`

	Images ImageSet `json:"images" yaml:"images"`
}

// ParseCollectionThumbnail materializes the thumbnail tier of a collection document
func ParseCollectionThumbnail(data json.RawMessage) (CollectionThumbnail, error) {
	o := decodeObject("collection", data)
	c := collectionThumbnail(o)
	return c, o.err()
}

// ParseCollectionReduced materializes the reduced tier of a collection document
func ParseCollectionReduced(data json.RawMessage) (CollectionReduced, error) {
	o := decodeObject("collection", data)
	c := collectionReduced(o)
	return c, o.err()
}

// ParseCollection materializes the full tier of a collection details document
func ParseCollection(data json.RawMessage) (Collection, error) {
	o := decodeObject("collection", data)
	c := Collection{
		CollectionReduced: collectionReduced(o),
		Parts:             collection(o, "parts", ParseMovieReduced),
		Images:            emptyImageSet(),
	}
	return c, o.err()
}

func collectionThumbnail(o *object) CollectionThumbnail {
	return CollectionThumbnail{
		ID:     required[int64](o, "id"),
		Name:   required[string](o, "name"),
		Poster: imageField(o, "poster_path", ImageKindPoster),
	}
}

func collectionReduced(o *object) CollectionReduced {
	return CollectionReduced{
		CollectionThumbnail: collectionThumbnail(o),
		Backdrop:            imageField(o, "backdrop_path", ImageKindBackdrop),
		Overview:            optional[string](o, "overview"),
	}
}
