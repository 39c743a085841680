package tmdb

import (
	"encoding/json"
	"fmt"
)

// ImageKind selects the size catalog an image is rendered from
type ImageKind int

const (
	// ImageKindPoster is a movie or collection poster
	ImageKindPoster ImageKind = iota
	// ImageKindBackdrop is a wide background image
	ImageKindBackdrop
	// ImageKindProfile is a person's portrait
	ImageKindProfile
	// ImageKindLogo is a company or title logo
	ImageKindLogo
	// ImageKindStill is an episode still
	ImageKindStill
)

// String returns the string representation of an ImageKind
func (k ImageKind) String() string {
	switch k {
	case ImageKindPoster:
		return "poster"
	case ImageKindBackdrop:
		return "backdrop"
	case ImageKindProfile:
		return "profile"
	case ImageKindLogo:
		return "logo"
	case ImageKindStill:
		return "still"
	default:
		return fmt.Sprintf("ImageKind(%d)", int(k))
	}
}

// MarshalText renders the kind by name in JSON and YAML output
func (k ImageKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// ParseImageKind converts a name such as "poster" into an ImageKind
func ParseImageKind(s string) (ImageKind, error) {
	for _, k := range imageKinds {
		if k.String() == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown image kind: %s", s)
}

var imageKinds = []ImageKind{ImageKindPoster, ImageKindBackdrop, ImageKindProfile, ImageKindLogo, ImageKindStill}

// Image is an image resource. Metadata fields are unset when the image
// came from a bare path such as a movie's poster_path.
type Image struct {
	Kind        ImageKind `json:"kind" yaml:"kind"`
	FilePath    string    `json:"file_path" yaml:"file_path"`
	Width       *int      `json:"width,omitempty" yaml:"width,omitempty"`
	Height      *int      `json:"height,omitempty" yaml:"height,omitempty"`
	AspectRatio *float64  `json:"aspect_ratio,omitempty" yaml:"aspect_ratio,omitempty"`
	Language    *string   `json:"iso_639_1,omitempty" yaml:"iso_639_1,omitempty"`
	VoteAverage *float64  `json:"vote_average,omitempty" yaml:"vote_average,omitempty"`
	VoteCount   *int      `json:"vote_count,omitempty" yaml:"vote_count,omitempty"`
}

// ParseImage materializes an image entry of the given kind
func ParseImage(kind ImageKind, data json.RawMessage) (Image, error) {
	o := decodeObject(kind.String()+" image", data)
	img := Image{
		Kind:        kind,
		FilePath:    required[string](o, "file_path"),
		Width:       optional[int](o, "width"),
		Height:      optional[int](o, "height"),
		AspectRatio: optional[float64](o, "aspect_ratio"),
		Language:    optional[string](o, "iso_639_1"),
		VoteAverage: optional[float64](o, "vote_average"),
		VoteCount:   optional[int](o, "vote_count"),
	}
	return img, o.err()
}

func imageParser(kind ImageKind) func(json.RawMessage) (Image, error) {
	return func(data json.RawMessage) (Image, error) {
		return ParseImage(kind, data)
	}
}

// URL builds the secure URL of the image at the given rendition size.
// It fails with ErrConfigurationNotLoaded before cfg is loaded and with an
// *ImageSizeError when size is not in the catalog for the image's kind;
// no other size is substituted.
func (i Image) URL(cfg *Configuration, size string) (string, error) {
	snap, err := cfg.snapshot()
	if err != nil {
		return "", err
	}
	sizes := snap.sizes[i.Kind]
	if !sizes.contains(size) {
		return "", &ImageSizeError{Kind: i.Kind, Size: size, Supported: sizes.list()}
	}
	return snap.secureBaseURL + size + i.FilePath, nil
}

// ImageSet groups the images returned by an images endpoint
type ImageSet struct {
	Posters   []Image `json:"posters" yaml:"posters"`
	Backdrops []Image `json:"backdrops" yaml:"backdrops"`
	Logos     []Image `json:"logos" yaml:"logos"`
	Profiles  []Image `json:"profiles" yaml:"profiles"`
}

func emptyImageSet() ImageSet {
	return ImageSet{Posters: []Image{}, Backdrops: []Image{}, Logos: []Image{}, Profiles: []Image{}}
}

// ParseImageSet materializes an images document
func ParseImageSet(data json.RawMessage) (ImageSet, error) {
	o := decodeObject("images", data)
	set := ImageSet{
		Posters:   collection(o, "posters", imageParser(ImageKindPoster)),
		Backdrops: collection(o, "backdrops", imageParser(ImageKindBackdrop)),
		Logos:     collection(o, "logos", imageParser(ImageKindLogo)),
		Profiles:  collection(o, "profiles", imageParser(ImageKindProfile)),
	}
	return set, o.err()
}

// Len returns the total number of images in the set
func (s ImageSet) Len() int {
	return len(s.Posters) + len(s.Backdrops) + len(s.Logos) + len(s.Profiles)
}
