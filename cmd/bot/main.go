package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/bwmarrin/discordgo"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/kerchief/duelbot/internal/coin"
	"github.com/kerchief/duelbot/internal/common/clock"
	"github.com/kerchief/duelbot/internal/common/uuid"
	"github.com/kerchief/duelbot/internal/handlers/discord"
	"github.com/kerchief/duelbot/internal/registry"
	"github.com/kerchief/duelbot/internal/repositories/scores"
	"github.com/kerchief/duelbot/internal/services/duel"
	"github.com/kerchief/duelbot/internal/services/stats"
)

func main() {
	// auth.env keeps the token out of the repo; a plain .env also works
	if err := godotenv.Load("auth.env"); err != nil {
		if err := godotenv.Load(); err != nil {
			log.Println("No env file found, using environment variables")
		}
	}

	token := os.Getenv("DISCORD_TOKEN")
	if token == "" {
		log.Fatal("DISCORD_TOKEN environment variable is required")
	}

	// Initialize the score repository
	scoreRepo, err := newScoreRepository()
	if err != nil {
		log.Fatalf("Failed to create score repository: %v", err)
	}

	// Initialize the stats service
	statsService, err := stats.New(context.Background(), &stats.Config{
		Repository: scoreRepo,
	})
	if err != nil {
		log.Fatalf("Failed to create stats service: %v", err)
	}

	// Initialize the Discord session
	session, err := discordgo.New("Bot " + token)
	if err != nil {
		log.Fatalf("Failed to create Discord session: %v", err)
	}
	session.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages |
		discordgo.IntentsDirectMessages |
		discordgo.IntentMessageContent

	notifier, err := discord.NewNotifier(&discord.NotifierConfig{
		Session: session,
	})
	if err != nil {
		log.Fatalf("Failed to create notifier: %v", err)
	}

	// Initialize the duel service
	duelService, err := duel.New(&duel.Config{
		Registry:      registry.New(),
		Stats:         statsService,
		Notifier:      notifier,
		Roles:         coin.New(&coin.Config{}),
		Clock:         clock.New(),
		UUIDGenerator: uuid.New(),
	})
	if err != nil {
		log.Fatalf("Failed to create duel service: %v", err)
	}

	// Initialize the Discord bot
	bot, err := discord.New(&discord.Config{
		Session:       session,
		ApplicationID: os.Getenv("APPLICATION_ID"),
		GuildID:       os.Getenv("GUILD_ID"),
		DuelService:   duelService,
		StatsService:  statsService,
	})
	if err != nil {
		log.Fatalf("Failed to create Discord bot: %v", err)
	}

	if err := bot.Start(); err != nil {
		log.Fatalf("Failed to start bot: %v", err)
	}

	// Wait for a termination signal
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	log.Println("Shutting down...")
	if err := bot.Stop(); err != nil {
		log.Printf("Error during shutdown: %v", err)
	}
}

// newScoreRepository selects the persistence backend from the environment
func newScoreRepository() (scores.Repository, error) {
	switch backend := getEnv("SCORE_BACKEND", "file"); backend {
	case "file":
		return scores.NewFile(&scores.FileConfig{
			Path: getEnv("SCORE_FILE", "scores.json"),
		})
	case "redis":
		redisClient := redis.NewClient(&redis.Options{
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       0,
		})
		return scores.NewRedis(&scores.RedisConfig{
			RedisClient: redisClient,
		})
	default:
		return nil, fmt.Errorf("unknown SCORE_BACKEND %q", backend)
	}
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
