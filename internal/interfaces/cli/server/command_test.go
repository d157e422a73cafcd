package server

import (
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/discourse/discourse-local-site-contacts/internal/infrastructure/config"
	sharedConfig "github.com/discourse/discourse-local-site-contacts/internal/shared/config"
	"github.com/discourse/discourse-local-site-contacts/internal/shared/logger"
)

type mockLogger struct {
	mock.Mock
}

func (m *mockLogger) Debug(msg string, args ...any)                   {}
func (m *mockLogger) Info(msg string, args ...any)                    {}
func (m *mockLogger) Warn(msg string, args ...any)                    {}
func (m *mockLogger) Error(msg string, args ...any)                   {}
func (m *mockLogger) With(args ...any) logger.Interface               { return m }
func (m *mockLogger) Named(name string) logger.Interface              { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})  { m.Called(msg, keysAndValues) }
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}

func newConfig(mode, secret string) *config.Config {
	return &config.Config{
		Server: sharedConfig.ServerConfig{Mode: mode},
		Auth:   sharedConfig.AuthConfig{JWT: sharedConfig.JWTConfig{Secret: secret}},
	}
}

func TestCheckJWTSecret(t *testing.T) {
	t.Run("release mode with default secret", func(t *testing.T) {
		log := new(mockLogger)

		err := checkJWTSecret(newConfig(gin.ReleaseMode, config.DefaultJWTSecret), log)
		assert.ErrorIs(t, err, config.ErrInsecureJWTSecret)
		log.AssertNotCalled(t, "Warnw", mock.Anything, mock.Anything)
	})

	t.Run("release mode with empty secret", func(t *testing.T) {
		err := checkJWTSecret(newConfig(gin.ReleaseMode, ""), new(mockLogger))
		assert.ErrorIs(t, err, config.ErrInsecureJWTSecret)
	})

	t.Run("test mode warns", func(t *testing.T) {
		log := new(mockLogger)
		log.On("Warnw", mock.Anything, mock.Anything).Return()

		assert.NoError(t, checkJWTSecret(newConfig(gin.TestMode, config.DefaultJWTSecret), log))
		log.AssertCalled(t, "Warnw", mock.Anything, mock.Anything)
	})

	t.Run("configured secret", func(t *testing.T) {
		log := new(mockLogger)

		assert.NoError(t, checkJWTSecret(newConfig(gin.ReleaseMode, "s3cr3t"), log))
		log.AssertNotCalled(t, "Warnw", mock.Anything, mock.Anything)
	})
}
