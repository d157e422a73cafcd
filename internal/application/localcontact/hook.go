package localcontact

import (
	"context"

	"github.com/discourse/discourse-local-site-contacts/internal/domain/systemmessage"
)

// SystemMessageHook swaps the sender of outgoing system messages for the
// contact configured for the recipient's locale.
type SystemMessageHook struct {
	settings Settings
	resolver ContactResolver
}

// NewSystemMessageHook creates a new SystemMessageHook
func NewSystemMessageHook(settings Settings, resolver ContactResolver) *SystemMessageHook {
	return &SystemMessageHook{
		settings: settings,
		resolver: resolver,
	}
}

var _ systemmessage.BeforeSendHook = (*SystemMessageHook)(nil)

// BeforeSystemMessageSent leaves msg untouched when the feature is off, when
// the send already comes from the system, or when there is no recipient.
func (h *SystemMessageHook) BeforeSystemMessageSent(ctx context.Context, msg *systemmessage.Message) {
	if msg == nil || msg.Recipient == nil {
		return
	}
	if !h.settings.IsLocalContactsEnabled(ctx) || msg.FromSystem {
		return
	}

	locale := msg.Recipient.EffectiveLocale(h.settings.GetDefaultLocale(ctx))
	msg.Sender = h.resolver.Resolve(ctx, locale, h.settings.GetLocalContacts(ctx))
}
