package discord

import (
	"context"
	"log"

	"github.com/bwmarrin/discordgo"

	"github.com/kerchief/duelbot/internal/models"
	"github.com/kerchief/duelbot/internal/services/stats"
)

// StatsCommand handles the /stats command
type StatsCommand struct {
	BaseCommand
	statsService stats.Service
}

// NewStatsCommand creates a new stats command handler
func NewStatsCommand(statsService stats.Service) *StatsCommand {
	return &StatsCommand{
		BaseCommand: BaseCommand{
			Name:        "stats",
			Description: "Display game statistics",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionUser,
					Name:        "user",
					Description: "User to get stats for (defaults to yourself)",
					Required:    false,
				},
			},
		},
		statsService: statsService,
	}
}

// Handle processes a Discord interaction for the stats command
func (c *StatsCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if i.Type != discordgo.InteractionApplicationCommand {
		return nil
	}

	if i.Member == nil || i.Member.User == nil || i.GuildID == "" {
		return RespondWithEphemeralMessage(s, i, "Command for servers only.")
	}

	target := resolveUserOption(s, i)
	if target == nil {
		target = i.Member.User
	}

	output, err := c.statsService.GetPlayerStats(context.Background(), &stats.GetPlayerStatsInput{
		GuildID: i.GuildID,
		UserID:  target.ID,
	})
	if err != nil {
		log.Printf("Error fetching stats for %s in guild %s: %v", target.ID, i.GuildID, err)
		return RespondWithError(s, i, "Failed to fetch stats. Try again.")
	}

	// Stored names go stale; prefer the live one
	username := output.Stats.Username
	if username == models.UnknownPlayerName || username != target.Username {
		username = target.Username
	}

	embed := buildStatsEmbed(username, target.AvatarURL(""), c.guildName(s, i.GuildID), output.Stats)
	return RespondWithEmbed(s, i, embed)
}

// guildName resolves a display name for the guild, falling back to the API
// when the state cache misses
func (c *StatsCommand) guildName(s *discordgo.Session, guildID string) string {
	if guild, err := s.State.Guild(guildID); err == nil && guild.Name != "" {
		return guild.Name
	}
	if guild, err := s.Guild(guildID); err == nil && guild.Name != "" {
		return guild.Name
	}
	return "this server"
}
