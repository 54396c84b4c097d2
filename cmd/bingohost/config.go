package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/sam-s10s/bs-bingo/internal/config"
	"github.com/sam-s10s/bs-bingo/internal/log"
	"github.com/sam-s10s/bs-bingo/pkg/game"
	"github.com/sam-s10s/bs-bingo/pkg/web"
)

// Config holds the server settings, populated from flags and BINGO_* env
// vars.
type Config struct {
	bind     string
	port     int
	words    string
	baseURL  string
	rps      int
	burst    int
	logLevel string
}

func (c *Config) validate() error {
	if c.port < 1 || c.port > 65535 {
		return fmt.Errorf("invalid port (must be between 1-65535 inclusive): %d", c.port)
	}
	if c.words == "" {
		return fmt.Errorf("a word pool file is required")
	}
	return nil
}

func (c *Config) addr() string {
	return fmt.Sprintf("%s:%d", c.bind, c.port)
}

func newCmd(cfg *Config) *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix("BINGO")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	cmd := &cobra.Command{
		Use:           "bingohost",
		Short:         "Voice-game host engine for buzzword bingo: tool API, scoring, and board display.",
		Args:          cobra.ExactArgs(0),
		SilenceErrors: true,
		SilenceUsage:  true,
		Version:       releaseVersion,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.validate(); err != nil {
				return err
			}
			return run(cfg)
		},
	}

	fs := cmd.Flags()

	fs.SetNormalizeFunc(func(_ *pflag.FlagSet, name string) pflag.NormalizedName {
		return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
	})

	fs.StringVarP(&cfg.bind, "bind", "b", "0.0.0.0", "address to bind to (env: BINGO_BIND)")
	fs.IntVarP(&cfg.port, "port", "p", 8080, "port to listen on (env: BINGO_PORT)")
	fs.StringVarP(&cfg.words, "words", "w", config.DefaultWordsFile, "path to the word pool JSON file (env: BINGO_WORDS)")
	fs.StringVar(&cfg.baseURL, "base-url", "", "externally reachable base URL for board links (env: BINGO_BASE_URL)")
	fs.IntVar(&cfg.rps, "rate-limit", 20, "per-client requests per second, 0 to disable (env: BINGO_RATE_LIMIT)")
	fs.IntVar(&cfg.burst, "rate-burst", 40, "per-client burst allowance (env: BINGO_RATE_BURST)")
	fs.StringVar(&cfg.logLevel, "log-level", "info", "log level: debug, info, warn, error (env: BINGO_LOG_LEVEL)")

	fs.VisitAll(func(f *pflag.Flag) {
		_ = v.BindPFlag(f.Name, f)
		_ = v.BindEnv(f.Name)
		if !f.Changed && v.IsSet(f.Name) {
			_ = fs.Set(f.Name, fmt.Sprintf("%v", v.Get(f.Name)))
		}
	})

	cmd.CompletionOptions.HiddenDefaultCmd = true
	cmd.SetHelpCommand(&cobra.Command{Hidden: true})
	cmd.SetVersionTemplate("bingohost v{{.Version}}\n")

	return cmd
}

func run(cfg *Config) error {
	log.Init(cfg.logLevel)

	pool, err := game.LoadPool(cfg.words)
	if err != nil {
		return err
	}
	log.Info("word pool loaded", "path", cfg.words, "words", pool.Len())

	baseURL := cfg.baseURL
	if baseURL == "" {
		baseURL = fmt.Sprintf("http://localhost:%d", cfg.port)
	}

	srv := web.NewServer(game.NewManager(pool), web.Options{
		BaseURL:        baseURL,
		RateLimitRPS:   cfg.rps,
		RateLimitBurst: cfg.burst,
	})
	return srv.Listen(cfg.addr())
}
