package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mcoot/hearts/internal/config"
	"github.com/mcoot/hearts/internal/factory"
	"github.com/mcoot/hearts/internal/logging"
	"github.com/mcoot/hearts/internal/services/scoreboard"
)

// session carries the wired application between a command's hooks
type session struct {
	opts  *Options
	app   *factory.App
	owned bool // built here, so closed here
}

func (s *session) board() *scoreboard.Controller {
	return s.app.Scoreboard
}

func (s *session) output(cmd *cobra.Command) *Output {
	return NewOutput(s.opts.Output, cmd.OutOrStdout())
}

func newSession(app *factory.App) *session {
	return &session{opts: DefaultOptions(), app: app}
}

// execute runs the command tree and closes the app if this session
// opened it, whether or not the command failed
func (s *session) execute(cmd *cobra.Command) (err error) {
	defer func() {
		if cerr := s.close(); cerr != nil {
			cmd.PrintErrln("Error:", cerr)
			err = errors.Join(err, cerr)
		}
	}()
	return cmd.Execute()
}

func (s *session) close() error {
	if !s.owned {
		return nil
	}
	s.owned = false
	return s.app.Close()
}

// newRootCmd builds the command tree. An app already on the session is
// used as-is and left open; otherwise one is built from configuration.
func newRootCmd(s *session) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "hearts",
		Short: "Scorekeeper for a four-player game of Hearts",
		Long: `hearts keeps score for a four-player game of Hearts.

Points are entered per round; the scoreboard tracks the dealer, the passing
direction and moon shots, and flags the end of the game once a player
reaches 100. State is saved after every change.

Players are referred to by seat number (1-4) or player id.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if s.app != nil {
				return nil
			}
			return s.open(cmd)
		},
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&s.opts.ConfigFile, "config", "", "Config file (default ~/.hearts/config.yaml)")
	rootCmd.PersistentFlags().StringVarP(&s.opts.Output, "output", "o", s.opts.Output, "Output format: text, json (env: HEARTS_OUTPUT)")
	rootCmd.PersistentFlags().StringVar(&s.opts.StorageType, "storage", "", "Storage backend: sqlite, redis, memory (env: HEARTS_STORAGE_TYPE)")
	rootCmd.PersistentFlags().StringVar(&s.opts.SQLitePath, "sqlite-path", "", "SQLite database file (env: HEARTS_STORAGE_SQLITE_PATH)")
	rootCmd.PersistentFlags().StringVar(&s.opts.RedisURL, "redis-url", "", "Redis URL (env: HEARTS_STORAGE_REDIS_URL)")
	rootCmd.PersistentFlags().StringVar(&s.opts.Namespace, "namespace", "", "Redis key namespace (env: HEARTS_STORAGE_REDIS_NAMESPACE)")

	// Add subcommands
	rootCmd.AddCommand(newStatusCmd(s))
	rootCmd.AddCommand(newRanksCmd(s))
	rootCmd.AddCommand(newPointsCmd(s))
	rootCmd.AddCommand(newMoonCmd(s))
	rootCmd.AddCommand(newUndoCmd(s))
	rootCmd.AddCommand(newNextCmd(s))
	rootCmd.AddCommand(newPrevCmd(s))
	rootCmd.AddCommand(newNameCmd(s))
	rootCmd.AddCommand(newResetCmd(s))
	rootCmd.AddCommand(newSettingsCmd(s))

	return rootCmd
}

// open loads configuration, applies flag overrides and wires the app
func (s *session) open(cmd *cobra.Command) error {
	cfg, err := config.Load(s.opts.ConfigFile)
	if err != nil {
		return err
	}
	s.opts.apply(cmd, cfg)
	if err := config.Validate(cfg); err != nil {
		return err
	}
	s.opts.Output = cfg.Output

	logger, err := logging.New(cfg.Log.Level, cfg.Log.Format, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	app, err := factory.New(cmd.Context(), factory.ConfigFrom(cfg, logger))
	if err != nil {
		return fmt.Errorf("open scoreboard: %w", err)
	}
	s.app = app
	s.owned = true
	return nil
}

// Execute runs the root command
func Execute() {
	s := newSession(nil)
	if err := s.execute(newRootCmd(s)); err != nil {
		os.Exit(1)
	}
}
