// Package notify composes review reminder messages and delivers them
// through the chat platform.
package notify

import (
	"context"
	"log/slog"

	"github.com/slack-go/slack"

	"github.com/Iamhuzaifasabahuddin/BlinkDigitally-sub000/internal/errors"
	"github.com/Iamhuzaifasabahuddin/BlinkDigitally-sub000/internal/ratelimit"
)

// Rate limit: Slack's chat.postMessage tier is one message per second per
// channel; lookups are more generous.
const (
	defaultRPS   = 1.0
	defaultBurst = 3

	limitKeyPost   = "post"
	limitKeyLookup = "lookup"
)

// Chat is the outbound messaging contract. Every operation returns a typed
// error: RecipientUnknown for lookups with no account, Transport for failed
// posts.
type Chat interface {
	// LookupUserByEmail resolves an e-mail to the platform's user ID.
	LookupUserByEmail(ctx context.Context, email string) (string, error)
	// OpenDM opens (or reuses) a direct conversation with a user and
	// returns its channel ID.
	OpenDM(ctx context.Context, userID string) (string, error)
	// PostChannel posts a Markdown message to a channel ID.
	PostChannel(ctx context.Context, channelID, text string) error
	// PostDM posts a Markdown message directly to a user.
	PostDM(ctx context.Context, userID, text string) error
}

// SlackChat is a rate-limited Slack implementation of Chat.
type SlackChat struct {
	client  *slack.Client
	limiter *ratelimit.KeyedLimiter
	logger  *slog.Logger
}

// NewSlackChat creates a Slack chat client with the given bot token.
func NewSlackChat(token string, logger *slog.Logger) *SlackChat {
	return &SlackChat{
		client:  slack.New(token),
		limiter: ratelimit.New(defaultRPS, defaultBurst),
		logger:  logger,
	}
}

// LookupUserByEmail resolves an e-mail to a Slack user ID.
func (s *SlackChat) LookupUserByEmail(ctx context.Context, email string) (string, error) {
	if err := s.limiter.Wait(ctx, limitKeyLookup); err != nil {
		return "", err
	}

	user, err := s.client.GetUserByEmailContext(ctx, email)
	if err != nil {
		s.logger.Warn("user lookup failed", "email", email, "error", err)
		return "", errors.RecipientUnknownf("no chat account for %s", email).WithCause(err)
	}
	return user.ID, nil
}

// OpenDM opens or reuses a direct conversation with a user.
func (s *SlackChat) OpenDM(ctx context.Context, userID string) (string, error) {
	if err := s.limiter.Wait(ctx, limitKeyLookup); err != nil {
		return "", err
	}

	channel, _, _, err := s.client.OpenConversationContext(ctx, &slack.OpenConversationParameters{
		Users: []string{userID},
	})
	if err != nil {
		return "", errors.Wrapf(err, errors.CodeTransport, "open conversation with %s", userID)
	}
	return channel.ID, nil
}

// PostChannel posts a Markdown message to a channel.
func (s *SlackChat) PostChannel(ctx context.Context, channelID, text string) error {
	if err := s.limiter.Wait(ctx, limitKeyPost); err != nil {
		return err
	}

	_, _, err := s.client.PostMessageContext(ctx, channelID, slack.MsgOptionText(text, false))
	if err != nil {
		s.logger.Error("channel post failed", "channel", channelID, "error", err)
		return errors.Wrapf(err, errors.CodeTransport, "post to channel %s", channelID)
	}
	return nil
}

// PostDM posts a Markdown message directly to a user.
func (s *SlackChat) PostDM(ctx context.Context, userID, text string) error {
	channelID, err := s.OpenDM(ctx, userID)
	if err != nil {
		return err
	}
	return s.PostChannel(ctx, channelID, text)
}

// Mention renders a user mention for message text.
func Mention(userID string) string {
	return "<@" + userID + ">"
}
