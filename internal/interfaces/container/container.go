// Package container wires repositories, use cases and handlers together.
package container

import (
	"gorm.io/gorm"

	localcontactApp "github.com/discourse/discourse-local-site-contacts/internal/application/localcontact"
	settingUsecases "github.com/discourse/discourse-local-site-contacts/internal/application/setting/usecases"
	"github.com/discourse/discourse-local-site-contacts/internal/domain/systemmessage"
	"github.com/discourse/discourse-local-site-contacts/internal/infrastructure/auth"
	"github.com/discourse/discourse-local-site-contacts/internal/infrastructure/config"
	"github.com/discourse/discourse-local-site-contacts/internal/infrastructure/repository"
	httpRouter "github.com/discourse/discourse-local-site-contacts/internal/interfaces/http"
	"github.com/discourse/discourse-local-site-contacts/internal/interfaces/http/handlers"
	"github.com/discourse/discourse-local-site-contacts/internal/shared/logger"
)

// Container holds every component built from one configuration and one
// database connection.
type Container struct {
	cfg *config.Config
	db  *gorm.DB
	log logger.Interface

	userRepo *repository.UserRepository

	settings       *settingUsecases.SettingProvider
	settingsWriter *settingUsecases.UpdateSettingsUseCase
	settingsReader *settingUsecases.GetSettingsUseCase

	siteContact *localcontactApp.SettingSiteContactProvider
	resolver    *localcontactApp.Resolver
	hook        *localcontactApp.SystemMessageHook
	hooks       *systemmessage.Hooks
	validator   *localcontactApp.ConfigValidator
	previewer   *localcontactApp.Previewer

	jwtService *auth.JWTService
}

// New builds the container. The local contacts hook is registered on the
// returned Hooks registry.
func New(cfg *config.Config, db *gorm.DB, log logger.Interface) *Container {
	c := &Container{cfg: cfg, db: db, log: log}

	c.userRepo = repository.NewUserRepository(db, log.Named("repository.user"))
	settingRepo := repository.NewSystemSettingRepository(db, log.Named("repository.setting"))

	c.settings = settingUsecases.NewSettingProvider(settingRepo, settingUsecases.SettingProviderConfig{
		LocalContacts: cfg.LocalContacts,
	}, log.Named("setting.provider"))
	c.settingsWriter = settingUsecases.NewUpdateSettingsUseCase(settingRepo, log.Named("setting.update"))
	c.settingsReader = settingUsecases.NewGetSettingsUseCase(settingRepo, log.Named("setting.get"))

	contactLog := log.Named("local_site_contacts")
	c.siteContact = localcontactApp.NewSettingSiteContactProvider(c.settings, c.userRepo, contactLog)
	c.resolver = localcontactApp.NewResolver(c.userRepo, c.siteContact, contactLog)
	c.hook = localcontactApp.NewSystemMessageHook(c.settings, c.resolver)
	c.hooks = systemmessage.NewHooks()
	c.hooks.Register(c.hook)
	c.validator = localcontactApp.NewConfigValidator(c.userRepo)
	c.previewer = localcontactApp.NewPreviewer(c.settings, c.siteContact, c.hooks)

	c.jwtService = auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes)

	return c
}

// Router builds the admin HTTP router
func (c *Container) Router() *httpRouter.Router {
	handler := handlers.NewLocalContactHandler(c.previewer, c.validator, c.settings, c.log.Named("handler.local_site_contacts"))
	return httpRouter.NewRouter(httpRouter.RouterDeps{
		LocalContactHandler: handler,
		TokenVerifier:       c.jwtService,
		Logger:              c.log.Named("http"),
	})
}

func (c *Container) Config() *config.Config {
	return c.cfg
}

func (c *Container) DB() *gorm.DB {
	return c.db
}

func (c *Container) Users() *repository.UserRepository {
	return c.userRepo
}

func (c *Container) Settings() *settingUsecases.SettingProvider {
	return c.settings
}

func (c *Container) SettingsWriter() *settingUsecases.UpdateSettingsUseCase {
	return c.settingsWriter
}

func (c *Container) SettingsReader() *settingUsecases.GetSettingsUseCase {
	return c.settingsReader
}

func (c *Container) SiteContact() *localcontactApp.SettingSiteContactProvider {
	return c.siteContact
}

func (c *Container) Resolver() *localcontactApp.Resolver {
	return c.resolver
}

func (c *Container) Hooks() *systemmessage.Hooks {
	return c.hooks
}

func (c *Container) Validator() *localcontactApp.ConfigValidator {
	return c.validator
}

func (c *Container) Previewer() *localcontactApp.Previewer {
	return c.previewer
}

func (c *Container) JWTService() *auth.JWTService {
	return c.jwtService
}
