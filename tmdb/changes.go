package tmdb

import "encoding/json"

// ChangedItem identifies a resource changed within the requested window
type ChangedItem struct {
	ID    int64 `json:"id" yaml:"id"`
	Adult *bool `json:"adult,omitempty" yaml:"adult,omitempty"`
}

// ParseChangedItem materializes an entry of a changes list
func ParseChangedItem(data json.RawMessage) (ChangedItem, error) {
	o := decodeObject("changed item", data)
	c := ChangedItem{
		ID:    required[int64](o, "id"),
		Adult: optional[bool](o, "adult"),
	}
	return c, o.err()
}

// Change groups the edits made to one key of a resource
type Change struct {
	Key   string        `json:"key" yaml:"key"`
	Items []ChangeEntry `json:"items" yaml:"items"`
}

// ChangeEntry is a single edit. Values keep their raw JSON form since
// their shape depends on the key.
type ChangeEntry struct {
	ID            string          `json:"id" yaml:"id"`
	Action        string          `json:"action" yaml:"action"`
	Time          *string         `json:"time,omitempty" yaml:"time,omitempty"`
	ISO639_1      *string         `json:"iso_639_1,omitempty" yaml:"iso_639_1,omitempty"`
	ISO3166_1     *string         `json:"iso_3166_1,omitempty" yaml:"iso_3166_1,omitempty"`
	Value         json.RawMessage `json:"value,omitempty" yaml:"-"`
	OriginalValue json.RawMessage `json:"original_value,omitempty" yaml:"-"`
}

// ParseChange materializes a change group
func ParseChange(data json.RawMessage) (Change, error) {
	o := decodeObject("change", data)
	c := Change{
		Key:   required[string](o, "key"),
		Items: collection(o, "items", ParseChangeEntry),
	}
	return c, o.err()
}

// ParseChangeEntry materializes a single edit
func ParseChangeEntry(data json.RawMessage) (ChangeEntry, error) {
	o := decodeObject("change entry", data)
	e := ChangeEntry{
		ID:        required[string](o, "id"),
		Action:    required[string](o, "action"),
		Time:      optional[string](o, "time"),
		ISO639_1:  optional[string](o, "iso_639_1"),
		ISO3166_1: optional[string](o, "iso_3166_1"),
	}
	if v, ok := o.raw("value"); ok {
		e.Value = v
	}
	if v, ok := o.raw("original_value"); ok {
		e.OriginalValue = v
	}
	return e, o.err()
}

// parseChanges materializes a {"changes": [...]} document
func parseChanges(data json.RawMessage) ([]Change, error) {
	return parseField("changes", "changes", data, ParseChange)
}
