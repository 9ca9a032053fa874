package duel

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_notifier.go github.com/kerchief/duelbot/internal/services/duel Notifier

// IncomingMessage is one message observed on a watched private channel
type IncomingMessage struct {
	// AuthorID is the Discord user ID of the message author
	AuthorID string

	// Content is the raw message text
	Content string
}

// Notifier delivers public and private messages and exposes each user's
// private channel as a message stream. Implemented by the Discord handler.
type Notifier interface {
	// SendPublic posts a message to a channel
	SendPublic(ctx context.Context, channelID, content string) error

	// SendPrivate sends a direct message to a user. Returns ErrPrivateRefused
	// when the user's DMs are closed to the bot.
	SendPrivate(ctx context.Context, userID, content string) error

	// WatchPrivate streams the user's incoming direct messages. The stop
	// function releases the watch; the stream is not restartable and a
	// stopped watch never delivers again.
	WatchPrivate(ctx context.Context, userID string) (<-chan IncomingMessage, func(), error)
}
