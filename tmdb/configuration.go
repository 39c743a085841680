package tmdb

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
)

// ConfigurationSource performs the call that returns the service configuration document
type ConfigurationSource func(ctx context.Context) *Response

// Configuration holds the service's image configuration. It is loaded
// once and read by any number of goroutines afterwards; readers see either
// the not-loaded state or a fully populated snapshot, never a partial one.
type Configuration struct {
	source ConfigurationSource
	logger zerolog.Logger

	mu    sync.Mutex // serialises Load and ForceLoad
	state atomic.Pointer[catalog]
}

// catalog is an immutable snapshot of a loaded configuration
type catalog struct {
	loadedAt      time.Time
	baseURL       string
	secureBaseURL string
	sizes         map[ImageKind]*sizeSet
	changeKeys    []string
}

// sizeSet is an ordered, append-only set of rendition sizes
type sizeSet struct {
	order []string
	index map[string]struct{}
}

func newSizeSet() *sizeSet {
	return &sizeSet{index: make(map[string]struct{})}
}

func (s *sizeSet) add(size string) {
	if _, ok := s.index[size]; ok {
		return
	}
	s.index[size] = struct{}{}
	s.order = append(s.order, size)
}

func (s *sizeSet) contains(size string) bool {
	if s == nil {
		return false
	}
	_, ok := s.index[size]
	return ok
}

func (s *sizeSet) list() []string {
	if s == nil {
		return []string{}
	}
	return slices.Clone(s.order)
}

// NewConfiguration creates an unloaded configuration backed by source
func NewConfiguration(source ConfigurationSource, logger zerolog.Logger) *Configuration {
	return &Configuration{
		source: source,
		logger: logger,
	}
}

// Load fetches and publishes the configuration. It is a no-op once loaded.
func (c *Configuration) Load(ctx context.Context) error {
	if c.state.Load() != nil {
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state.Load() != nil {
		return nil
	}
	return c.loadLocked(ctx)
}

// ForceLoad discards the loaded configuration and loads it again. If the
// reload fails the configuration stays not loaded.
func (c *Configuration) ForceLoad(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.state.Store(nil)
	return c.loadLocked(ctx)
}

func (c *Configuration) loadLocked(ctx context.Context) error {
	resp := c.source(ctx)
	payload, err := resp.Payload()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	cat, err := parseCatalog(payload)
	if err != nil {
		return fmt.Errorf("failed to parse configuration: %w", err)
	}
	cat.loadedAt = time.Now()
	c.state.Store(cat)

	c.logger.Debug().
		Str("base_url", cat.secureBaseURL).
		Int("poster_sizes", len(cat.sizes[ImageKindPoster].order)).
		Int("change_keys", len(cat.changeKeys)).
		Msg("Loaded TMDb configuration")
	return nil
}

func parseCatalog(data json.RawMessage) (*catalog, error) {
	o := decodeObject("configuration", data)
	images := required[map[string]json.RawMessage](o, "images")
	if err := o.err(); err != nil {
		return nil, err
	}

	imgs := &object{entity: "configuration.images", fields: images}
	cat := &catalog{
		baseURL:       required[string](imgs, "base_url"),
		secureBaseURL: required[string](imgs, "secure_base_url"),
		sizes:         make(map[ImageKind]*sizeSet, len(imageKinds)),
		changeKeys:    []string{},
	}
	for _, kind := range imageKinds {
		set := newSizeSet()
		if sizes := optional[[]string](imgs, kind.String()+"_sizes"); sizes != nil {
			for _, size := range *sizes {
				set.add(size)
			}
		}
		cat.sizes[kind] = set
	}
	if err := imgs.err(); err != nil {
		return nil, err
	}

	if keys := optional[[]string](o, "change_keys"); keys != nil {
		cat.changeKeys = *keys
	}
	return cat, nil
}

func (c *Configuration) snapshot() (*catalog, error) {
	if c == nil {
		return nil, ErrConfigurationNotLoaded
	}
	cat := c.state.Load()
	if cat == nil {
		return nil, ErrConfigurationNotLoaded
	}
	return cat, nil
}

// IsLoaded reports whether a configuration has been loaded
func (c *Configuration) IsLoaded() bool {
	_, err := c.snapshot()
	return err == nil
}

// LoadedAt returns when the current configuration was loaded
func (c *Configuration) LoadedAt() (time.Time, error) {
	cat, err := c.snapshot()
	if err != nil {
		return time.Time{}, err
	}
	return cat.loadedAt, nil
}

// BaseURL returns the plain HTTP image base URL
func (c *Configuration) BaseURL() (string, error) {
	cat, err := c.snapshot()
	if err != nil {
		return "", err
	}
	return cat.baseURL, nil
}

// SecureBaseURL returns the HTTPS image base URL
func (c *Configuration) SecureBaseURL() (string, error) {
	cat, err := c.snapshot()
	if err != nil {
		return "", err
	}
	return cat.secureBaseURL, nil
}

// Sizes returns the rendition sizes available for kind, in service order
func (c *Configuration) Sizes(kind ImageKind) ([]string, error) {
	cat, err := c.snapshot()
	if err != nil {
		return nil, err
	}
	return cat.sizes[kind].list(), nil
}

// SupportsSize reports whether size is in the catalog for kind
func (c *Configuration) SupportsSize(kind ImageKind, size string) (bool, error) {
	cat, err := c.snapshot()
	if err != nil {
		return false, err
	}
	return cat.sizes[kind].contains(size), nil
}

// ChangeKeys returns the keys the changes endpoints may report
func (c *Configuration) ChangeKeys() ([]string, error) {
	cat, err := c.snapshot()
	if err != nil {
		return nil, err
	}
	return slices.Clone(cat.changeKeys), nil
}

// ImageConfiguration is an exported copy of a loaded configuration
type ImageConfiguration struct {
	LoadedAt      time.Time           `json:"loaded_at" yaml:"loaded_at"`
	BaseURL       string              `json:"base_url" yaml:"base_url"`
	SecureBaseURL string              `json:"secure_base_url" yaml:"secure_base_url"`
	Sizes         map[string][]string `json:"sizes" yaml:"sizes"`
	ChangeKeys    []string            `json:"change_keys" yaml:"change_keys"`
}

// Snapshot returns a copy of the loaded configuration
func (c *Configuration) Snapshot() (ImageConfiguration, error) {
	cat, err := c.snapshot()
	if err != nil {
		return ImageConfiguration{}, err
	}
	out := ImageConfiguration{
		LoadedAt:      cat.loadedAt,
		BaseURL:       cat.baseURL,
		SecureBaseURL: cat.secureBaseURL,
		Sizes:         make(map[string][]string, len(cat.sizes)),
		ChangeKeys:    slices.Clone(cat.changeKeys),
	}
	for kind, set := range cat.sizes {
		out.Sizes[kind.String()] = set.list()
	}
	return out, nil
}
