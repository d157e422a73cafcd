package systemmessage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/discourse/discourse-local-site-contacts/internal/domain/user"
)

func TestHooks_RunBeforeSend_InOrder(t *testing.T) {
	var calls []string
	hooks := NewHooks()
	hooks.Register(BeforeSendHookFunc(func(ctx context.Context, msg *Message) {
		calls = append(calls, "first")
	}))
	hooks.Register(BeforeSendHookFunc(func(ctx context.Context, msg *Message) {
		calls = append(calls, "second")
		msg.Type = "rewritten"
	}))

	msg := NewMessage("welcome_invite", nil, user.SystemAccount())
	hooks.RunBeforeSend(context.Background(), msg)

	assert.Equal(t, []string{"first", "second"}, calls)
	assert.Equal(t, "rewritten", msg.Type)
	assert.Equal(t, "system", msg.Sender.Username())
	assert.False(t, msg.FromSystem)
}

func TestHooks_RunBeforeSend_Empty(t *testing.T) {
	msg := NewMessage("welcome_invite", nil, user.SystemAccount())
	NewHooks().RunBeforeSend(context.Background(), msg)

	assert.Equal(t, "system", msg.Sender.Username())
}
