package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/vytor/flashcards/internal/cli"
	"github.com/vytor/flashcards/internal/config"
	"github.com/vytor/flashcards/internal/console"
	"github.com/vytor/flashcards/internal/db"
	"github.com/vytor/flashcards/internal/flashcard"
	"github.com/vytor/flashcards/internal/logger"
	"github.com/vytor/flashcards/internal/repository"
	"github.com/vytor/flashcards/internal/repository/memory"
	"github.com/vytor/flashcards/internal/repository/sqlite"
)

func newRootCmd() *cobra.Command {
	cfg := config.Load()

	cmd := &cobra.Command{
		Use:   "flashcards",
		Short: "Add, review and delete flashcards in the terminal",
		Long: `flashcards is an interactive question/answer drill.
Cards live in memory for the current session only and are gone on exit.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.Validate(); err != nil {
				return err
			}
			return run(cmd.Context(), cfg, cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	cmd.Flags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log threshold: DEBUG, INFO, WARN or ERROR (env LOG_LEVEL)")
	cmd.Flags().StringVar(&cfg.Backend, "backend", cfg.Backend, "card storage: memory or sqlite, both in-memory (env FLASHCARDS_BACKEND)")
	cmd.Flags().BoolVar(&cfg.Shuffle, "shuffle", cfg.Shuffle, "present cards in random order during review (env FLASHCARDS_SHUFFLE)")

	return cmd
}

func run(ctx context.Context, cfg config.Config, in io.Reader, out, errOut io.Writer) error {
	log := logger.New(
		logger.WithOutput(errOut),
		logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
		logger.WithColors(false),
	)
	logger.SetDefault(log)
	ctx = logger.NewContext(ctx, log)

	log.Debug("log_level=%s", cfg.LogLevel)
	log.Debug("backend=%s", cfg.Backend)
	log.Debug("shuffle=%t", cfg.Shuffle)

	repo, closeRepo, err := openRepository(ctx, cfg.Backend)
	if err != nil {
		return fmt.Errorf("open %s storage: %w", cfg.Backend, err)
	}
	defer closeRepo()

	store := flashcard.NewStore(repo)
	app := cli.New(store, console.NewReader(in), out, cli.WithShuffle(cfg.Shuffle))
	return app.Run(ctx)
}

func openRepository(ctx context.Context, backend string) (repository.FlashcardRepository, func(), error) {
	switch strings.ToLower(backend) {
	case config.BackendSQLite:
		database, err := db.OpenMemory(ctx)
		if err != nil {
			return nil, nil, err
		}
		closeDB := func() {
			if err := database.Close(); err != nil {
				logger.FromContext(ctx).Warn("failed to close database: %v", err)
			}
		}
		return sqlite.NewFlashcardRepository(database.DB), closeDB, nil
	default:
		return memory.NewFlashcardRepository(), func() {}, nil
	}
}
