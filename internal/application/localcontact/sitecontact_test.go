package localcontact

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/discourse/discourse-local-site-contacts/internal/domain/user"
	"github.com/discourse/discourse-local-site-contacts/internal/shared/authorization"
)

func TestSettingSiteContactProvider_SystemUsername(t *testing.T) {
	users := new(mockUserFinder)
	log := new(mockLogger)

	for _, name := range []string{"", "system"} {
		p := NewSettingSiteContactProvider(fakeSettings{siteContact: name}, users, log)
		assert.True(t, p.DefaultSiteContact(context.Background()).IsSystem())
	}
	users.AssertNotCalled(t, "FindByUsername", mock.Anything, mock.Anything)
}

func TestSettingSiteContactProvider_ConfiguredUser(t *testing.T) {
	ctx := context.Background()
	team := newAccount(5, "team", authorization.RoleAdmin, "en")

	users := new(mockUserFinder)
	users.On("FindByUsername", ctx, "team").Return(team, nil)

	p := NewSettingSiteContactProvider(fakeSettings{siteContact: "team"}, users, new(mockLogger))

	assert.Same(t, team, p.DefaultSiteContact(ctx))
}

func TestSettingSiteContactProvider_MissingUser(t *testing.T) {
	ctx := context.Background()

	users := new(mockUserFinder)
	users.On("FindByUsername", ctx, "gone").Return(nil, user.ErrUserNotFound)
	log := new(mockLogger)
	log.On("Warnw", "site contact user not found, using system user", hasField("username", "gone")).Return()

	p := NewSettingSiteContactProvider(fakeSettings{siteContact: "gone"}, users, log)

	assert.True(t, p.DefaultSiteContact(ctx).IsSystem())
	log.AssertExpectations(t)
}
