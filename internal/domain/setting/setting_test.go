package setting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSystemSetting_Validation(t *testing.T) {
	_, err := NewSystemSetting("", KeyEnabled, ValueTypeBool, "")
	assert.EqualError(t, err, "category is required")

	_, err = NewSystemSetting(CategoryLocalSiteContacts, "", ValueTypeBool, "")
	assert.EqualError(t, err, "key is required")

	_, err = NewSystemSetting(CategoryLocalSiteContacts, KeyEnabled, ValueType("int"), "")
	assert.EqualError(t, err, "invalid value type: int")
}

func TestSystemSetting_BoolValue(t *testing.T) {
	s, err := NewSystemSetting(CategoryLocalSiteContacts, KeyEnabled, ValueTypeBool, "")
	require.NoError(t, err)

	v, err := s.GetBoolValue()
	require.NoError(t, err)
	assert.False(t, v)

	require.NoError(t, s.SetBoolValue(true, 1))
	v, err = s.GetBoolValue()
	require.NoError(t, err)
	assert.True(t, v)
	assert.Equal(t, 2, s.Version())
	assert.Equal(t, uint(1), s.UpdatedBy())

	assert.Error(t, s.SetStringValue("yes", 1))
}

func TestSystemSetting_RawJSONValue(t *testing.T) {
	s, err := NewSystemSetting(CategoryLocalSiteContacts, KeyContacts, ValueTypeJSON, "")
	require.NoError(t, err)

	raw := `[{"locale":"en","username":"alice"}]`
	require.NoError(t, s.SetRawJSONValue(raw, 1))
	assert.Equal(t, raw, s.GetStringValue())

	assert.ErrorIs(t, s.SetRawJSONValue("[{", 1), ErrInvalidValueType)
	assert.Equal(t, raw, s.GetStringValue())
}

func TestSystemSetting_StringValue(t *testing.T) {
	s, err := NewSystemSetting(CategorySite, KeySiteContactUsername, ValueTypeString, "")
	require.NoError(t, err)
	assert.False(t, s.HasValue())

	require.NoError(t, s.SetStringValue("team", 3))
	assert.True(t, s.HasValue())
	assert.Equal(t, "team", s.GetStringValue())
	assert.Error(t, s.SetBoolValue(true, 3))
}

// FuzzGetBoolValue checks that parsing never panics and is stable.
func FuzzGetBoolValue(f *testing.F) {
	for _, seed := range []string{"", "true", "false", "1", "0", "t", "F", "yes", "truee"} {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, input string) {
		s := &SystemSetting{value: input, valueType: ValueTypeBool}
		v1, err1 := s.GetBoolValue()
		v2, err2 := s.GetBoolValue()
		if (err1 == nil) != (err2 == nil) || v1 != v2 {
			t.Errorf("GetBoolValue(%q) not stable", input)
		}
		if input == "" && (err1 != nil || v1) {
			t.Errorf("GetBoolValue(\"\") = (%t, %v), expected (false, nil)", v1, err1)
		}
	})
}
