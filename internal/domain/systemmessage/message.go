// Package systemmessage models the moment just before an automated message
// is handed to delivery, where registered hooks may adjust it.
package systemmessage

import (
	"context"
	"sync"

	"github.com/discourse/discourse-local-site-contacts/internal/domain/user"
)

// Message is a system message about to be sent. Sender starts out as the
// default site contact and hooks may replace it.
type Message struct {
	Type       string
	Recipient  *user.Account
	Sender     *user.Account
	FromSystem bool
}

// NewMessage creates a message addressed to recipient from defaultSender
func NewMessage(messageType string, recipient, defaultSender *user.Account) *Message {
	return &Message{
		Type:      messageType,
		Recipient: recipient,
		Sender:    defaultSender,
	}
}

// BeforeSendHook is called synchronously before a system message is sent
type BeforeSendHook interface {
	BeforeSystemMessageSent(ctx context.Context, msg *Message)
}

// BeforeSendHookFunc adapts a function to BeforeSendHook
type BeforeSendHookFunc func(ctx context.Context, msg *Message)

func (f BeforeSendHookFunc) BeforeSystemMessageSent(ctx context.Context, msg *Message) {
	f(ctx, msg)
}

// Hooks is a registry of before-send hooks run in registration order
type Hooks struct {
	mu    sync.RWMutex
	hooks []BeforeSendHook
}

// NewHooks creates an empty hook registry
func NewHooks() *Hooks {
	return &Hooks{}
}

// Register adds a hook
func (h *Hooks) Register(hook BeforeSendHook) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.hooks = append(h.hooks, hook)
}

// RunBeforeSend runs every registered hook against msg
func (h *Hooks) RunBeforeSend(ctx context.Context, msg *Message) {
	h.mu.RLock()
	hooks := make([]BeforeSendHook, len(h.hooks))
	copy(hooks, h.hooks)
	h.mu.RUnlock()

	for _, hook := range hooks {
		hook.BeforeSystemMessageSent(ctx, msg)
	}
}
