package discord

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/bwmarrin/discordgo"

	"github.com/kerchief/duelbot/internal/services/duel"
)

// DuelCommand handles the /duel command
type DuelCommand struct {
	BaseCommand
	duelService duel.Service
}

// NewDuelCommand creates a new duel command handler
func NewDuelCommand(duelService duel.Service) *DuelCommand {
	return &DuelCommand{
		BaseCommand: BaseCommand{
			Name:        "duel",
			Description: "Challenge a user to Drop the Handkerchief",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionUser,
					Name:        "opponent",
					Description: "The user to duel",
					Required:    true,
				},
			},
		},
		duelService: duelService,
	}
}

// Handle processes a Discord interaction for the duel command
func (c *DuelCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if i.Type != discordgo.InteractionApplicationCommand {
		return nil
	}

	if i.Member == nil || i.Member.User == nil {
		return RespondWithEphemeralMessage(s, i, "Command for servers only.")
	}

	challenger := i.Member.User
	opponent := resolveUserOption(s, i)
	if opponent == nil {
		return RespondWithEphemeralMessage(s, i, "You must pick an opponent.")
	}
	if opponent.Bot {
		return RespondWithEphemeralMessage(s, i, "Can't duel a bot!")
	}
	if opponent.ID == challenger.ID {
		return RespondWithEphemeralMessage(s, i, "Can't duel yourself!")
	}

	_, err := c.duelService.Challenge(context.Background(), &duel.ChallengeInput{
		ChallengerID:   challenger.ID,
		ChallengerName: memberDisplayName(i.Member),
		OpponentID:     opponent.ID,
		OpponentName:   opponent.Username,
		ChannelID:      i.ChannelID,
		GuildID:        i.GuildID,
	})
	switch {
	case errors.Is(err, duel.ErrAlreadyEngaged):
		return RespondWithEphemeralMessage(s, i, "One of you is already in a duel/pending challenge.")
	case errors.Is(err, duel.ErrSelfChallenge):
		return RespondWithEphemeralMessage(s, i, "Can't duel yourself!")
	case err != nil:
		log.Printf("Error issuing challenge from %s to %s: %v", challenger.ID, opponent.ID, err)
		return RespondWithError(s, i, "Failed to set up the duel. Try again.")
	}

	return RespondWithEphemeralMessage(s, i, fmt.Sprintf("Challenge sent to <@%s>.", opponent.ID))
}

// AcceptCommand handles the /accept command
type AcceptCommand struct {
	BaseCommand
	duelService duel.Service
}

// NewAcceptCommand creates a new accept command handler
func NewAcceptCommand(duelService duel.Service) *AcceptCommand {
	return &AcceptCommand{
		BaseCommand: BaseCommand{
			Name:        "accept",
			Description: "Accept a duel challenge",
		},
		duelService: duelService,
	}
}

// Handle processes a Discord interaction for the accept command
func (c *AcceptCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if i.Type != discordgo.InteractionApplicationCommand {
		return nil
	}

	if i.Member == nil || i.Member.User == nil {
		return RespondWithEphemeralMessage(s, i, "Command for servers only.")
	}

	output, err := c.duelService.Accept(context.Background(), &duel.AcceptInput{
		AcceptorID: i.Member.User.ID,
	})
	switch {
	case errors.Is(err, duel.ErrNoPendingChallenge):
		return RespondWithEphemeralMessage(s, i, "No valid pending challenge to accept, or you initiated it.")
	case errors.Is(err, duel.ErrStaleChallenge):
		return RespondWithEphemeralMessage(s, i, "Challenge no longer valid (dropped or error).")
	case err != nil:
		log.Printf("Error accepting challenge for %s: %v", i.Member.User.ID, err)
		return RespondWithError(s, i, "Failed to start the duel. Try again.")
	}

	return RespondWithEphemeralMessage(s, i,
		fmt.Sprintf("Duel vs <@%s> is underway. Watch your DMs!", output.ChallengerID))
}

// DeclineCommand handles the /decline command
type DeclineCommand struct {
	BaseCommand
	duelService duel.Service
}

// NewDeclineCommand creates a new decline command handler
func NewDeclineCommand(duelService duel.Service) *DeclineCommand {
	return &DeclineCommand{
		BaseCommand: BaseCommand{
			Name:        "decline",
			Description: "Decline a duel challenge",
		},
		duelService: duelService,
	}
}

// Handle processes a Discord interaction for the decline command
func (c *DeclineCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if i.Type != discordgo.InteractionApplicationCommand {
		return nil
	}

	if i.Member == nil || i.Member.User == nil {
		return RespondWithEphemeralMessage(s, i, "Command for servers only.")
	}

	output, err := c.duelService.Decline(context.Background(), &duel.DeclineInput{
		DeclinerID: i.Member.User.ID,
	})
	switch {
	case errors.Is(err, duel.ErrNoPendingChallenge):
		return RespondWithEphemeralMessage(s, i, "No valid pending challenge to decline.")
	case err != nil:
		log.Printf("Error declining challenge for %s: %v", i.Member.User.ID, err)
		return RespondWithError(s, i, "Failed to decline the duel. Try again.")
	}

	return RespondWithEphemeralMessage(s, i,
		fmt.Sprintf("You declined the duel from <@%s>.", output.ChallengerID))
}

// DropCommand handles the /drop command
type DropCommand struct {
	BaseCommand
	duelService duel.Service
}

// NewDropCommand creates a new drop command handler
func NewDropCommand(duelService duel.Service) *DropCommand {
	return &DropCommand{
		BaseCommand: BaseCommand{
			Name:        "drop",
			Description: "Cancel your pending duel challenge",
		},
		duelService: duelService,
	}
}

// Handle processes a Discord interaction for the drop command
func (c *DropCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if i.Type != discordgo.InteractionApplicationCommand {
		return nil
	}

	if i.Member == nil || i.Member.User == nil {
		return RespondWithEphemeralMessage(s, i, "Command for servers only.")
	}

	output, err := c.duelService.Drop(context.Background(), &duel.DropInput{
		ChallengerID: i.Member.User.ID,
	})
	switch {
	case errors.Is(err, duel.ErrNoPendingChallenge):
		return RespondWithEphemeralMessage(s, i, "No valid challenge by you to drop.")
	case err != nil:
		log.Printf("Error dropping challenge for %s: %v", i.Member.User.ID, err)
		return RespondWithError(s, i, "Failed to drop the challenge. Try again.")
	}

	return RespondWithEphemeralMessage(s, i,
		fmt.Sprintf("You cancelled your challenge to <@%s>.", output.OpponentID))
}

// StartCommand handles the /start command, a standalone random role draw
type StartCommand struct {
	BaseCommand
	duelService duel.Service
}

// NewStartCommand creates a new start command handler
func NewStartCommand(duelService duel.Service) *StartCommand {
	return &StartCommand{
		BaseCommand: BaseCommand{
			Name:        "start",
			Description: "Test random role assignment",
		},
		duelService: duelService,
	}
}

// Handle processes a Discord interaction for the start command
func (c *StartCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if i.Type != discordgo.InteractionApplicationCommand {
		return nil
	}

	output, err := c.duelService.DrawRole(context.Background(), &duel.DrawRoleInput{})
	if err != nil {
		log.Printf("Error drawing role: %v", err)
		return RespondWithError(s, i, "Failed to draw a role. Try again.")
	}

	return RespondWithMessage(s, i, fmt.Sprintf("Random role: **%s**", output.Role))
}
