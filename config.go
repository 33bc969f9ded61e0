/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package main

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Seednode/wordraw/games/wordraw"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type Config struct {
	bind            string
	corsOrigins     []string
	drawDuration    time.Duration
	endDuration     time.Duration
	guessDuration   time.Duration
	historyDB       string
	historySize     int
	maxParticipants int
	playerTimeout   time.Duration
	port            int
	prefix          string
	profile         bool
	readyDuration   time.Duration
	rounds          int
	sessionTimeout  time.Duration
	tlsCert         string
	tlsKey          string
	verbose         bool
	version         bool
	words           string

	log zerolog.Logger
}

func (c *Config) validate() error {
	if (c.tlsCert == "") != (c.tlsKey == "") {
		return errors.New("both --tls-cert and --tls-key must be provided together")
	}
	if c.port < 1 || c.port > 65535 {
		return fmt.Errorf("invalid port (must be between 1-65535 inclusive): %d", c.port)
	}
	if err := c.schedule().Validate(); err != nil {
		return err
	}
	if c.rounds < 1 {
		return fmt.Errorf("invalid rounds (must be at least 1): %d", c.rounds)
	}
	if c.maxParticipants < 2 || c.maxParticipants > 100 {
		return fmt.Errorf("invalid max participants (must be between 2-100 inclusive): %d", c.maxParticipants)
	}
	if c.historySize < 1 {
		return fmt.Errorf("invalid history size (must be at least 1): %d", c.historySize)
	}
	return nil
}

func (c *Config) scheme() string {
	if c.tlsCert != "" && c.tlsKey != "" {
		return "https"
	}
	return "http"
}

func (c *Config) schedule() wordraw.Schedule {
	return wordraw.Schedule{
		Ready: c.readyDuration,
		Draw:  c.drawDuration,
		Guess: c.guessDuration,
		End:   c.endDuration,
	}
}

func newCmd(cfg *Config) *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix("WORDRAW")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	cmd := &cobra.Command{
		Use:           "wordraw",
		Short:         "A team drawing and guessing party game, served as a single webapp.",
		Args:          cobra.ExactArgs(0),
		SilenceErrors: true,
		Version:       releaseVersion,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.validate(); err != nil {
				return err
			}
			cfg.log = newLogger(cfg)
			return ServePage(cmd.Context(), cfg, args)
		},
	}

	fs := cmd.Flags()

	fs.SetNormalizeFunc(func(_ *pflag.FlagSet, name string) pflag.NormalizedName {
		return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
	})

	defaults := wordraw.DefaultSchedule()

	fs.StringVarP(&cfg.bind, "bind", "b", "0.0.0.0", "address to bind to (env: WORDRAW_BIND)")
	fs.StringSliceVar(&cfg.corsOrigins, "cors-origin", nil, "origin allowed to call the JSON API, can be repeated (env: WORDRAW_CORS_ORIGIN)")
	fs.DurationVar(&cfg.drawDuration, "draw-duration", defaults.Draw, "length of the draw phase (env: WORDRAW_DRAW_DURATION)")
	fs.DurationVar(&cfg.endDuration, "end-duration", defaults.End, "time the result of a turn stays on screen (env: WORDRAW_END_DURATION)")
	fs.DurationVar(&cfg.guessDuration, "guess-duration", defaults.Guess, "length of the guess phase (env: WORDRAW_GUESS_DURATION)")
	fs.StringVar(&cfg.historyDB, "history-db", "", "sqlite file to store finished matches in, kept in memory if unset (env: WORDRAW_HISTORY_DB)")
	fs.IntVar(&cfg.historySize, "history-size", 50, "number of finished matches to keep in memory and list (env: WORDRAW_HISTORY_SIZE)")
	fs.IntVar(&cfg.maxParticipants, "max-participants", wordraw.DefaultMaxParticipants, "maximum participants per game (env: WORDRAW_MAX_PARTICIPANTS)")
	fs.DurationVar(&cfg.playerTimeout, "player-timeout", 10*time.Minute, "time before a disconnected player's name is released (env: WORDRAW_PLAYER_TIMEOUT)")
	fs.IntVarP(&cfg.port, "port", "p", 8080, "port to listen on (env: WORDRAW_PORT)")
	fs.StringVar(&cfg.prefix, "prefix", "", "path to prepend to all URLs, for use behind reverse proxy (env: WORDRAW_PREFIX)")
	fs.BoolVar(&cfg.profile, "profile", false, "register net/http/pprof handlers (env: WORDRAW_PROFILE)")
	fs.DurationVar(&cfg.readyDuration, "ready-duration", defaults.Ready, "length of the ready phase (env: WORDRAW_READY_DURATION)")
	fs.IntVar(&cfg.rounds, "rounds", 1, "times every participant draws per match (env: WORDRAW_ROUNDS)")
	fs.DurationVar(&cfg.sessionTimeout, "session-timeout", 60*time.Minute, "time before idle game sessions are ended (env: WORDRAW_SESSION_TIMEOUT)")
	fs.StringVar(&cfg.tlsCert, "tls-cert", "", "path to tls certificate (env: WORDRAW_TLS_CERT)")
	fs.StringVar(&cfg.tlsKey, "tls-key", "", "path to tls keyfile (env: WORDRAW_TLS_KEY)")
	fs.BoolVarP(&cfg.verbose, "verbose", "v", false, "display additional output (env: WORDRAW_VERBOSE)")
	fs.BoolVarP(&cfg.version, "version", "V", false, "display version and exit (env: WORDRAW_VERSION)")
	fs.StringVar(&cfg.words, "words", "", "json or yaml word list to use instead of the bundled one (env: WORDRAW_WORDS)")

	fs.VisitAll(func(f *pflag.Flag) {
		_ = v.BindPFlag(f.Name, f)
		_ = v.BindEnv(f.Name)
		if !f.Changed && v.IsSet(f.Name) {
			_ = fs.Set(f.Name, fmt.Sprintf("%v", v.Get(f.Name)))
		}
	})

	cmd.CompletionOptions.HiddenDefaultCmd = true
	cmd.SetHelpCommand(&cobra.Command{Hidden: true})
	cmd.SetVersionTemplate("wordraw v{{.Version}}\n")

	cmd.SilenceErrors = true
	cmd.SilenceUsage = true

	return cmd
}
