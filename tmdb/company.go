package tmdb

import "encoding/json"

// CompanyThumbnail is the smallest view of a production company
type CompanyThumbnail struct {
	ID            int64   `json:"id" yaml:"id"`
	Name          string  `json:"name" yaml:"name"`
	Logo          *Image  `json:"logo,omitempty" yaml:"logo,omitempty"`
	OriginCountry *string `json:"origin_country,omitempty" yaml:"origin_country,omitempty"`
}

// Company is the full company record. Logos is filled by a supplementary call.
type Company struct {
	CompanyThumbnail `yaml:",inline"`
	Description      *string           `json:"description,omitempty" yaml:"description,omitempty"`
	Headquarters     *string           `json:"headquarters,omitempty" yaml:"headquarters,omitempty"`
	Homepage         *string           `json:"homepage,omitempty" yaml:"homepage,omitempty"`
	ParentCompany    *CompanyThumbnail `json:"parent_company,omitempty" yaml:"parent_company,omitempty"`

	Logos []Image `json:"logos" yaml:"logos"`
}

// ParseCompanyThumbnail materializes the thumbnail tier of a company document
func ParseCompanyThumbnail(data json.RawMessage) (CompanyThumbnail, error) {
	o := decodeObject("company", data)
	c := companyThumbnail(o)
	return c, o.err()
}

// ParseCompany materializes the full tier of a company details document
func ParseCompany(data json.RawMessage) (Company, error) {
	o := decodeObject("company", data)
	c := Company{
		CompanyThumbnail: companyThumbnail(o),
		Description:      optional[string](o, "description"),
		Headquarters:     optional[string](o, "headquarters"),
		Homepage:         optional[string](o, "homepage"),
		ParentCompany:    nested(o, "parent_company", ParseCompanyThumbnail),
		Logos:            []Image{},
	}
	return c, o.err()
}

func companyThumbnail(o *object) CompanyThumbnail {
	return CompanyThumbnail{
		ID:            required[int64](o, "id"),
		Name:          required[string](o, "name"),
		Logo:          imageField(o, "logo_path", ImageKindLogo),
		OriginCountry: optional[string](o, "origin_country"),
	}
}
