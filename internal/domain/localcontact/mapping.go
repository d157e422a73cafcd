package localcontact

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Entry maps one locale to the username that should send system messages
// to readers of that locale.
type Entry struct {
	Locale   string `json:"locale"`
	Username string `json:"username"`
}

// Mapping is the ordered list of entries decoded from the contacts setting.
// Order matters: for a given locale only the first entry is ever consulted.
type Mapping []Entry

// rawEntry keeps pointers so that a missing field can be told apart from
// an empty string.
type rawEntry struct {
	Locale   *string `validate:"required"`
	Username *string `validate:"required"`
}

type rawMapping struct {
	Entries []rawEntry `validate:"dive"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

const (
	fieldLocale   = "locale"
	fieldUsername = "username"
)

// ParseMapping decodes the JSON text of the contacts setting.
//
// The text must be a JSON array whose elements are all objects carrying
// string "locale" and "username" fields. Keys are matched exactly, so
// "Locale" is just an unrelated key. Syntax errors wrap ErrConfigParse;
// a well-formed document of any other shape wraps ErrConfigShape.
func ParseMapping(raw string) (Mapping, error) {
	var objects *[]map[string]json.RawMessage
	if err := json.Unmarshal([]byte(raw), &objects); err != nil {
		return nil, classifyDecodeError(err)
	}
	if objects == nil {
		return nil, fmt.Errorf("%w: top-level value is null", ErrConfigShape)
	}

	entries := make([]rawEntry, 0, len(*objects))
	for i, obj := range *objects {
		locale, err := stringField(obj, fieldLocale)
		if err != nil {
			return nil, fmt.Errorf("%w: entry %d: %v", ErrConfigShape, i, err)
		}
		username, err := stringField(obj, fieldUsername)
		if err != nil {
			return nil, fmt.Errorf("%w: entry %d: %v", ErrConfigShape, i, err)
		}
		entries = append(entries, rawEntry{Locale: locale, Username: username})
	}

	if err := validate.Struct(rawMapping{Entries: entries}); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigShape, err)
	}

	mapping := make(Mapping, 0, len(entries))
	for _, e := range entries {
		mapping = append(mapping, Entry{Locale: *e.Locale, Username: *e.Username})
	}
	return mapping, nil
}

// stringField reads obj[key] as a string. A missing key or a JSON null
// yields nil; any other non-string value is an error.
func stringField(obj map[string]json.RawMessage, key string) (*string, error) {
	value, ok := obj[key]
	if !ok {
		return nil, nil
	}
	var s *string
	if err := json.Unmarshal(value, &s); err != nil {
		return nil, fmt.Errorf("field %q: %w", key, err)
	}
	return s, nil
}

func classifyDecodeError(err error) error {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return fmt.Errorf("%w: %v", ErrConfigShape, err)
	}
	return fmt.Errorf("%w: %v", ErrConfigParse, err)
}

// FirstForLocale returns the first entry whose locale equals locale.
// Later entries for the same locale are ignored.
func (m Mapping) FirstForLocale(locale string) (Entry, bool) {
	for _, e := range m {
		if e.Locale == locale {
			return e, true
		}
	}
	return Entry{}, false
}

// Shadowed returns, for every entry hidden by an earlier entry of the same
// locale, its index mapped to the index of the entry that wins.
func (m Mapping) Shadowed() map[int]int {
	first := make(map[string]int, len(m))
	shadowed := make(map[int]int)
	for i, e := range m {
		if j, ok := first[e.Locale]; ok {
			shadowed[i] = j
			continue
		}
		first[e.Locale] = i
	}
	return shadowed
}
