package usecases

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/discourse/discourse-local-site-contacts/internal/domain/setting"
	"github.com/discourse/discourse-local-site-contacts/internal/shared/logger"
)

type mockSettingRepository struct {
	mock.Mock
}

func (m *mockSettingRepository) GetByKey(ctx context.Context, category, key string) (*setting.SystemSetting, error) {
	args := m.Called(ctx, category, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*setting.SystemSetting), args.Error(1)
}

func (m *mockSettingRepository) GetByCategory(ctx context.Context, category string) ([]*setting.SystemSetting, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*setting.SystemSetting), args.Error(1)
}

func (m *mockSettingRepository) Upsert(ctx context.Context, s *setting.SystemSetting) error {
	return m.Called(ctx, s).Error(0)
}

func (m *mockSettingRepository) Delete(ctx context.Context, category, key string) error {
	return m.Called(ctx, category, key).Error(0)
}

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
