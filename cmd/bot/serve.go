package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/bwmarrin/discordgo"
	"github.com/spf13/cobra"

	"github.com/rollkeeper/roll-api/internal/config"
	"github.com/rollkeeper/roll-api/internal/errors"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the Discord bot",
	Long:  `Connect to Discord and answer dice commands until interrupted.`,
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if cfg.DiscordToken == "" {
		return errors.InvalidArgument("DISCORD_TOKEN is required")
	}

	handler, err := buildHandler(cfg)
	if err != nil {
		return err
	}

	session, err := discordgo.New("Bot " + cfg.DiscordToken)
	if err != nil {
		return errors.Wrap(err, "failed to create discord session")
	}

	session.AddHandler(func(s *discordgo.Session, m *discordgo.MessageCreate) {
		if m.Author.ID == s.State.User.ID {
			return
		}
		resp := handler.HandleMessage(context.Background(), m.Author.ID, m.Content)
		if resp == "" {
			return
		}
		if _, err := s.ChannelMessageSend(m.ChannelID, resp); err != nil {
			slog.Error("failed to send response", "channel_id", m.ChannelID, "error", err)
		}
	})
	session.Identify.Intents = discordgo.IntentsGuildMessages | discordgo.IntentMessageContent

	if err := session.Open(); err != nil {
		return errors.Wrap(err, "failed to connect to discord")
	}
	defer func() {
		if err := session.Close(); err != nil {
			slog.Error("failed to close discord session", "error", err)
		}
	}()

	slog.Info("bot connected", "default_game", cfg.DefaultGame)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	slog.Info("received shutdown signal, disconnecting")
	return nil
}
