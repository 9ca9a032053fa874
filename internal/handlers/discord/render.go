package discord

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/kerchief/duelbot/internal/models"
)

const (
	// MaxScoreDisplay caps the points total shown on the stats embed
	MaxScoreDisplay = 300

	statsEmbedColor = 0x3498db // Blue color
)

// buildStatsEmbed renders one player's lifetime record for a guild
func buildStatsEmbed(username, avatarURL, guildName string, playerStats *models.PlayerStats) *discordgo.MessageEmbed {
	// Win rate counts decided games only; ties are excluded
	decided := playerStats.Wins + playerStats.Losses
	winRate := 0.0
	if decided > 0 {
		winRate = float64(playerStats.Wins) / float64(decided) * 100
	}

	return &discordgo.MessageEmbed{
		Title: fmt.Sprintf("📊 Stats for %s", username),
		Color: statsEmbedColor,
		Thumbnail: &discordgo.MessageEmbedThumbnail{
			URL: avatarURL,
		},
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Points", Value: formatPoints(playerStats.Points), Inline: true},
			{Name: "Games", Value: fmt.Sprintf("%d", playerStats.GamesPlayed), Inline: true},
			{Name: "Wins", Value: fmt.Sprintf("%d", playerStats.Wins), Inline: true},
			{Name: "Losses", Value: fmt.Sprintf("%d", playerStats.Losses), Inline: true},
			{Name: "Ties", Value: fmt.Sprintf("%d", playerStats.Ties), Inline: true},
			{Name: "Win Rate (W/L)", Value: fmt.Sprintf("%.2f%%", winRate), Inline: true},
		},
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("Stats from server: %s", guildName),
		},
	}
}

// formatPoints caps the displayed total at MaxScoreDisplay
func formatPoints(points int) string {
	if points > MaxScoreDisplay {
		return fmt.Sprintf("%d+", MaxScoreDisplay)
	}
	return fmt.Sprintf("%d", points)
}
