package localcontact

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/discourse/discourse-local-site-contacts/internal/domain/user"
	"github.com/discourse/discourse-local-site-contacts/internal/shared/authorization"
)

func issueCodes(e EntryReport) []string {
	codes := make([]string, 0, len(e.Issues))
	for _, i := range e.Issues {
		codes = append(codes, i.Code)
	}
	return codes
}

func TestConfigValidator_Validate(t *testing.T) {
	ctx := context.Background()
	users := new(mockUserFinder)
	users.On("FindByUsername", ctx, "alice").Return(newAccount(1, "alice", authorization.RoleAdmin, "en"), nil)
	users.On("FindByUsername", ctx, "bob").Return(newAccount(2, "bob", authorization.RoleUser, "fr"), nil)
	users.On("FindByUsername", ctx, "ghost123").Return(nil, user.ErrUserNotFound)
	users.On("FindByUsername", ctx, "carol").Return(nil, errors.New("timeout"))

	raw := `[
		{"locale":"en","username":"alice"},
		{"locale":"fr","username":"bob"},
		{"locale":"en","username":"ghost123"},
		{"locale":"not a locale!","username":"carol"},
		{"locale":"pt_BR","username":"alice"}
	]`

	report := NewConfigValidator(users).Validate(ctx, raw)

	require.True(t, report.Valid)
	require.Len(t, report.Entries, 5)
	assert.Empty(t, report.Entries[0].Issues)
	assert.Equal(t, []string{IssueUserNotStaff}, issueCodes(report.Entries[1]))
	assert.Equal(t, []string{IssueShadowed, IssueUserNotFound}, issueCodes(report.Entries[2]))
	assert.Equal(t, []string{IssueMalformedLocale, IssueLookupFailed}, issueCodes(report.Entries[3]))
	assert.Empty(t, report.Entries[4].Issues)
	assert.Equal(t, 5, report.IssueCount())
}

func TestConfigValidator_InvalidConfig(t *testing.T) {
	users := new(mockUserFinder)

	report := NewConfigValidator(users).Validate(context.Background(), `[{`)

	assert.False(t, report.Valid)
	assert.Contains(t, report.Error, "invalid JSON")
	assert.Empty(t, report.Entries)
	assert.Zero(t, report.IssueCount())
}
