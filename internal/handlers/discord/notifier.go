package discord

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/bwmarrin/discordgo"

	"github.com/kerchief/duelbot/internal/services/duel"
)

// watchBuffer bounds how many unread DMs a watcher can hold; beyond that the
// gateway handler drops instead of blocking
const watchBuffer = 8

// Notifier delivers duel messages over a Discord session and routes private
// replies back to waiting duels. It implements duel.Notifier.
type Notifier struct {
	session *discordgo.Session

	mu       sync.Mutex
	watchers map[string]*dmWatcher
}

type dmWatcher struct {
	dmChannelID string
	msgs        chan duel.IncomingMessage
}

// NotifierConfig holds configuration for the notifier
type NotifierConfig struct {
	// Session is the Discord session messages are sent and received on
	Session *discordgo.Session
}

// NewNotifier creates a notifier bound to the session and registers its
// message handler
func NewNotifier(cfg *NotifierConfig) (*Notifier, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.Session == nil {
		return nil, errors.New("session cannot be nil")
	}

	n := &Notifier{
		session:  cfg.Session,
		watchers: make(map[string]*dmWatcher),
	}
	cfg.Session.AddHandler(n.handleMessageCreate)

	return n, nil
}

// SendPublic posts a message to a channel
func (n *Notifier) SendPublic(_ context.Context, channelID, content string) error {
	if _, err := n.session.ChannelMessageSend(channelID, content); err != nil {
		return fmt.Errorf("failed to send message to channel %s: %w", channelID, err)
	}
	return nil
}

// SendPrivate DMs a user. Returns duel.ErrPrivateRefused when the user's
// privacy settings block the bot.
func (n *Notifier) SendPrivate(_ context.Context, userID, content string) error {
	channel, err := n.session.UserChannelCreate(userID)
	if err != nil {
		return fmt.Errorf("failed to open DM channel with %s: %w", userID, err)
	}

	if _, err := n.session.ChannelMessageSend(channel.ID, content); err != nil {
		if isDMRefused(err) {
			return duel.ErrPrivateRefused
		}
		return fmt.Errorf("failed to DM %s: %w", userID, err)
	}

	return nil
}

// WatchPrivate subscribes to the user's DMs. A user can have at most one
// active watcher; the registry already guarantees one duel per user.
func (n *Notifier) WatchPrivate(_ context.Context, userID string) (<-chan duel.IncomingMessage, func(), error) {
	channel, err := n.session.UserChannelCreate(userID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open DM channel with %s: %w", userID, err)
	}

	watcher := &dmWatcher{
		dmChannelID: channel.ID,
		msgs:        make(chan duel.IncomingMessage, watchBuffer),
	}

	n.mu.Lock()
	if _, ok := n.watchers[userID]; ok {
		n.mu.Unlock()
		return nil, nil, fmt.Errorf("user %s already has an active DM watcher", userID)
	}
	n.watchers[userID] = watcher
	n.mu.Unlock()

	stop := func() {
		n.mu.Lock()
		if n.watchers[userID] == watcher {
			delete(n.watchers, userID)
		}
		n.mu.Unlock()
	}

	return watcher.msgs, stop, nil
}

// handleMessageCreate routes DM replies to the watcher for their author
func (n *Notifier) handleMessageCreate(_ *discordgo.Session, m *discordgo.MessageCreate) {
	// Only direct messages from humans matter here
	if m.Author == nil || m.Author.Bot || m.GuildID != "" {
		return
	}

	n.mu.Lock()
	watcher, ok := n.watchers[m.Author.ID]
	n.mu.Unlock()
	if !ok || watcher.dmChannelID != m.ChannelID {
		return
	}

	select {
	case watcher.msgs <- duel.IncomingMessage{AuthorID: m.Author.ID, Content: m.Content}:
	default:
	}
}

// isDMRefused reports whether the API rejected the DM because the recipient
// does not accept messages from the bot
func isDMRefused(err error) bool {
	var restErr *discordgo.RESTError
	if errors.As(err, &restErr) && restErr.Message != nil {
		return restErr.Message.Code == discordgo.ErrCodeCannotSendMessagesToThisUser
	}
	return false
}
