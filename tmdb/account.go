package tmdb

import "encoding/json"

// Account is the user account behind a session
type Account struct {
	ID           int64   `json:"id" yaml:"id"`
	Username     string  `json:"username" yaml:"username"`
	Name         *string `json:"name,omitempty" yaml:"name,omitempty"`
	IncludeAdult *bool   `json:"include_adult,omitempty" yaml:"include_adult,omitempty"`
	ISO639_1     *string `json:"iso_639_1,omitempty" yaml:"iso_639_1,omitempty"`
	ISO3166_1    *string `json:"iso_3166_1,omitempty" yaml:"iso_3166_1,omitempty"`
	Avatar       *Image  `json:"avatar,omitempty" yaml:"avatar,omitempty"`
}

// ParseAccount materializes an account document
func ParseAccount(data json.RawMessage) (Account, error) {
	o := decodeObject("account", data)
	a := Account{
		ID:           required[int64](o, "id"),
		Username:     required[string](o, "username"),
		Name:         optional[string](o, "name"),
		IncludeAdult: optional[bool](o, "include_adult"),
		ISO639_1:     optional[string](o, "iso_639_1"),
		ISO3166_1:    optional[string](o, "iso_3166_1"),
	}
	if raw, ok := o.raw("avatar"); ok {
		if inner, ok := decodeObject("avatar", raw).raw("tmdb"); ok {
			a.Avatar = imageField(decodeObject("avatar", inner), "avatar_path", ImageKindProfile)
		}
	}
	return a, o.err()
}

// WriteResult is the acknowledgement returned by write operations
type WriteResult struct {
	Code    int    `json:"status_code" yaml:"status_code"`
	Message string `json:"status_message" yaml:"status_message"`
}

// ParseWriteResult materializes a write acknowledgement
func ParseWriteResult(data json.RawMessage) (WriteResult, error) {
	o := decodeObject("write result", data)
	r := WriteResult{
		Code:    required[int](o, "status_code"),
		Message: required[string](o, "status_message"),
	}
	return r, o.err()
}
