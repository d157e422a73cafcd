package localcontact

import (
	"context"
	"time"

	"github.com/discourse/discourse-local-site-contacts/internal/domain/systemmessage"
	"github.com/discourse/discourse-local-site-contacts/internal/domain/user"
	"github.com/discourse/discourse-local-site-contacts/internal/shared/authorization"
)

const previewMessageType = "preview"

// PreviewResult describes who would send a system message to a recipient
// reading Locale.
type PreviewResult struct {
	Locale     string `json:"locale" yaml:"locale"`
	Enabled    bool   `json:"enabled" yaml:"enabled"`
	FromSystem bool   `json:"from_system" yaml:"from_system"`
	Overridden bool   `json:"overridden" yaml:"overridden"`
	SenderID   uint   `json:"sender_id" yaml:"sender_id"`
	Sender     string `json:"sender" yaml:"sender"`
}

// Previewer runs the before-send hooks against a synthetic message so
// operators can check the configuration without sending anything.
type Previewer struct {
	settings    Settings
	siteContact SiteContactProvider
	hooks       *systemmessage.Hooks
}

// NewPreviewer creates a new Previewer
func NewPreviewer(settings Settings, siteContact SiteContactProvider, hooks *systemmessage.Hooks) *Previewer {
	return &Previewer{
		settings:    settings,
		siteContact: siteContact,
		hooks:       hooks,
	}
}

// Preview reports the sender for a recipient with the given locale. An empty
// locale means the recipient has none and the site default applies.
func (p *Previewer) Preview(ctx context.Context, locale string, fromSystem bool) *PreviewResult {
	now := time.Now().UTC()
	recipient := user.ReconstructAccount(0, "preview", "", authorization.RoleUser, locale, now, now)
	defaultSender := p.siteContact.DefaultSiteContact(ctx)

	msg := systemmessage.NewMessage(previewMessageType, recipient, defaultSender)
	msg.FromSystem = fromSystem
	p.hooks.RunBeforeSend(ctx, msg)

	return &PreviewResult{
		Locale:     recipient.EffectiveLocale(p.settings.GetDefaultLocale(ctx)),
		Enabled:    p.settings.IsLocalContactsEnabled(ctx),
		FromSystem: fromSystem,
		Overridden: msg.Sender.ID() != defaultSender.ID() || msg.Sender.Username() != defaultSender.Username(),
		SenderID:   msg.Sender.ID(),
		Sender:     msg.Sender.Username(),
	}
}
