package localcontact

import "github.com/discourse/discourse-local-site-contacts/internal/shared/constants"

// JSONSchema is the subset of JSON Schema needed to describe the contacts
// setting to an editor.
type JSONSchema struct {
	Title      string                 `json:"title,omitempty" yaml:"title,omitempty"`
	Type       string                 `json:"type" yaml:"type"`
	Default    string                 `json:"default,omitempty" yaml:"default,omitempty"`
	Items      *JSONSchema            `json:"items,omitempty" yaml:"items,omitempty"`
	Properties map[string]*JSONSchema `json:"properties,omitempty" yaml:"properties,omitempty"`
}

// Schema describes the accepted shape of the contacts setting.
func Schema() *JSONSchema {
	return &JSONSchema{
		Title: "Localised Links",
		Type:  "array",
		Items: &JSONSchema{
			Title: "Local Site Contact",
			Type:  "object",
			Properties: map[string]*JSONSchema{
				"locale":   {Type: "string", Default: constants.DefaultLocale},
				"username": {Type: "string", Default: constants.DefaultSiteContact},
			},
		},
	}
}
