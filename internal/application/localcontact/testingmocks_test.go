package localcontact

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/discourse/discourse-local-site-contacts/internal/domain/user"
	"github.com/discourse/discourse-local-site-contacts/internal/shared/authorization"
	"github.com/discourse/discourse-local-site-contacts/internal/shared/logger"
)

type mockUserFinder struct {
	mock.Mock
}

func (m *mockUserFinder) FindByUsername(ctx context.Context, username string) (*user.Account, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.Account), args.Error(1)
}

type mockSiteContact struct {
	mock.Mock
}

func (m *mockSiteContact) DefaultSiteContact(ctx context.Context) *user.Account {
	return m.Called(ctx).Get(0).(*user.Account)
}

type mockResolver struct {
	mock.Mock
}

func (m *mockResolver) Resolve(ctx context.Context, locale, rawConfig string) *user.Account {
	return m.Called(ctx, locale, rawConfig).Get(0).(*user.Account)
}

type fakeSettings struct {
	enabled       bool
	contacts      string
	siteContact   string
	defaultLocale string
}

func (s fakeSettings) IsLocalContactsEnabled(ctx context.Context) bool  { return s.enabled }
func (s fakeSettings) GetLocalContacts(ctx context.Context) string      { return s.contacts }
func (s fakeSettings) GetSiteContactUsername(ctx context.Context) string { return s.siteContact }
func (s fakeSettings) GetDefaultLocale(ctx context.Context) string      { return s.defaultLocale }

type mockLogger struct {
	mock.Mock
}

func (m *mockLogger) Debug(msg string, args ...any) { m.Called(msg, args) }
func (m *mockLogger) Info(msg string, args ...any)  { m.Called(msg, args) }
func (m *mockLogger) Warn(msg string, args ...any)  { m.Called(msg, args) }
func (m *mockLogger) Error(msg string, args ...any) { m.Called(msg, args) }

func (m *mockLogger) With(args ...any) logger.Interface { return m }
func (m *mockLogger) Named(name string) logger.Interface { return m }

func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) { m.Called(msg, keysAndValues) }
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})  { m.Called(msg, keysAndValues) }
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})  { m.Called(msg, keysAndValues) }
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) { m.Called(msg, keysAndValues) }

// hasField matches a keysAndValues slice containing key paired with value
func hasField(key string, value any) interface{} {
	return mock.MatchedBy(func(kv []interface{}) bool {
		for i := 0; i+1 < len(kv); i += 2 {
			if kv[i] == key && kv[i+1] == value {
				return true
			}
		}
		return false
	})
}

func newAccount(id uint, username string, role authorization.UserRole, locale string) *user.Account {
	a, err := user.NewAccount(username, username, role, locale)
	if err != nil {
		panic(err)
	}
	if err := a.SetID(id); err != nil {
		panic(err)
	}
	return a
}
