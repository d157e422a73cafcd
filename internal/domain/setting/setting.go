package setting

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// ValueType defines the type of a setting value
type ValueType string

const (
	ValueTypeString ValueType = "string"
	ValueTypeBool   ValueType = "bool"
	ValueTypeJSON   ValueType = "json"
)

// SystemSetting represents a stored site setting. The value is always kept
// as text; valueType decides how it is read back.
type SystemSetting struct {
	id          uint
	category    string
	key         string
	value       string
	valueType   ValueType
	description string
	updatedBy   uint
	version     int
	createdAt   time.Time
	updatedAt   time.Time
}

// NewSystemSetting creates a new system setting
func NewSystemSetting(category, key string, valueType ValueType, description string) (*SystemSetting, error) {
	if category == "" {
		return nil, fmt.Errorf("category is required")
	}
	if key == "" {
		return nil, fmt.Errorf("key is required")
	}
	if !isValidValueType(valueType) {
		return nil, fmt.Errorf("invalid value type: %s", valueType)
	}

	now := time.Now().UTC()
	return &SystemSetting{
		category:    category,
		key:         key,
		valueType:   valueType,
		description: description,
		version:     1,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

// ReconstructSystemSetting reconstructs a SystemSetting from persistence layer
func ReconstructSystemSetting(
	id uint,
	category string,
	key string,
	value string,
	valueType ValueType,
	description string,
	updatedBy uint,
	version int,
	createdAt, updatedAt time.Time,
) *SystemSetting {
	return &SystemSetting{
		id:          id,
		category:    category,
		key:         key,
		value:       value,
		valueType:   valueType,
		description: description,
		updatedBy:   updatedBy,
		version:     version,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

// Getters
func (s *SystemSetting) ID() uint             { return s.id }
func (s *SystemSetting) Category() string     { return s.category }
func (s *SystemSetting) Key() string          { return s.key }
func (s *SystemSetting) Value() string        { return s.value }
func (s *SystemSetting) ValueType() ValueType { return s.valueType }
func (s *SystemSetting) Description() string  { return s.description }
func (s *SystemSetting) UpdatedBy() uint      { return s.updatedBy }
func (s *SystemSetting) Version() int         { return s.version }
func (s *SystemSetting) CreatedAt() time.Time { return s.createdAt }
func (s *SystemSetting) UpdatedAt() time.Time { return s.updatedAt }

// SetID sets the setting ID (only for persistence layer use)
func (s *SystemSetting) SetID(id uint) {
	s.id = id
}

// HasValue checks if the setting has a non-empty value
func (s *SystemSetting) HasValue() bool {
	return s.value != ""
}

// GetStringValue returns the raw value. JSON settings are returned verbatim,
// undecoded; callers that own the schema decode them.
func (s *SystemSetting) GetStringValue() string {
	return s.value
}

// GetBoolValue returns the value as a boolean
func (s *SystemSetting) GetBoolValue() (bool, error) {
	if s.value == "" {
		return false, nil
	}
	return strconv.ParseBool(s.value)
}

// SetStringValue sets the value as a string
func (s *SystemSetting) SetStringValue(value string, updatedBy uint) error {
	if s.valueType != ValueTypeString {
		return fmt.Errorf("value type mismatch: expected %s, got string", s.valueType)
	}
	s.touch(value, updatedBy)
	return nil
}

// SetBoolValue sets the value as a boolean
func (s *SystemSetting) SetBoolValue(value bool, updatedBy uint) error {
	if s.valueType != ValueTypeBool {
		return fmt.Errorf("value type mismatch: expected %s, got bool", s.valueType)
	}
	s.touch(strconv.FormatBool(value), updatedBy)
	return nil
}

// SetRawJSONValue stores pre-encoded JSON text. The text must be
// syntactically valid JSON; its shape is not checked here.
func (s *SystemSetting) SetRawJSONValue(raw string, updatedBy uint) error {
	if s.valueType != ValueTypeJSON {
		return fmt.Errorf("value type mismatch: expected %s, got json", s.valueType)
	}
	if !json.Valid([]byte(raw)) {
		return ErrInvalidValueType
	}
	s.touch(raw, updatedBy)
	return nil
}

func (s *SystemSetting) touch(value string, updatedBy uint) {
	s.value = value
	s.updatedBy = updatedBy
	s.version++
	s.updatedAt = time.Now().UTC()
}

// isValidValueType checks if the value type is valid
func isValidValueType(vt ValueType) bool {
	switch vt {
	case ValueTypeString, ValueTypeBool, ValueTypeJSON:
		return true
	default:
		return false
	}
}
