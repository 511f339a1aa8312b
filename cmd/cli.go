package cmd

import (
	"io"
	"os"

	"sortvis/internal/config"
	"sortvis/pkg/build"

	"github.com/spf13/cobra"
)

// ParseArgs builds the run configuration from the config file, environment
// and command line. It returns a nil config when cobra has fully handled the
// invocation, as with --help or --version. Usage text goes to stderr since
// stdout carries the frame stream.
func ParseArgs(args []string) (*config.Config, error) {
	return parseArgs(args, os.Stderr)
}

func parseArgs(args []string, out io.Writer) (*config.Config, error) {
	buildInfo := build.GetBuildFlags()

	var (
		options    *config.Config
		configPath string
		audioPath  string
		seed       string
		sorts      []string
		wait       int
		quiet      bool
		slow       bool
		finalize   bool
		verbose    bool
		wsAddr     string
		udpTarget  string
	)

	// load applies changed flags on top of the file and environment values.
	load := func(cmd *cobra.Command) (*config.Config, error) {
		cfg, err := config.LoadConfig(configPath)
		if err != nil {
			return nil, err
		}
		flags := cmd.Flags()
		if flags.Changed("audio") {
			cfg.Audio.Output = audioPath
		}
		if flags.Changed("seed") {
			cfg.Sort.Seed = seed
		}
		if flags.Changed("sort") {
			cfg.Sort.Algorithms = sorts
		}
		if flags.Changed("wait") {
			cfg.Sort.PauseFrames = wait
		}
		switch {
		case quiet:
			cfg.Sort.Shuffle = "quiet"
		case slow:
			cfg.Sort.Shuffle = "full"
		}
		if finalize {
			cfg.Audio.Finalize = true
		}
		if verbose {
			cfg.LogLevel = "debug"
			cfg.Telemetry.Log = true
		}
		if flags.Changed("ws") {
			cfg.Telemetry.WebSocketAddr = wsAddr
		}
		if flags.Changed("udp") {
			cfg.Telemetry.UDPTarget = udpTarget
		}
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
		return cfg, nil
	}

	rootCmd := &cobra.Command{
		Use:           buildInfo.Name,
		Short:         build.Description,
		Version:       buildInfo.Version,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd:   true,
			DisableDescriptions: true,
			DisableNoDescFlag:   true,
			HiddenDefaultCmd:    true,
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := load(cmd)
			if err != nil {
				return err
			}
			options = cfg
			return nil
		},
	}
	rootCmd.SetOut(out)
	rootCmd.SetErr(out)
	rootCmd.SetVersionTemplate(buildInfo.String() + "\n")

	// Display help message
	rootCmd.SetHelpCommand(&cobra.Command{Hidden: true})

	// List command
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List available sorting algorithms",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := load(cmd)
			if err != nil {
				return err
			}
			cfg.Command = "list"
			options = cfg
			return nil
		},
	}
	rootCmd.AddCommand(listCmd)

	flags := rootCmd.PersistentFlags()

	// Input and run plan
	flags.StringVarP(&configPath, "config", "c", "",
		"YAML configuration file (default "+config.DefaultPath+" when present)")
	flags.StringArrayVarP(&sorts, "sort", "s", nil,
		"Animate sort N, by id or name. Repeat to chain stages; omit to run all")
	flags.IntVarP(&wait, "wait", "w", 0,
		"Idle frames inserted after each selected sort")
	flags.StringVarP(&seed, "seed", "x", config.DefaultSeed,
		"64-bit shuffle seed in hex")
	flags.BoolVarP(&quiet, "quiet", "q", false,
		"Don't draw the shuffle")
	flags.BoolVarP(&slow, "slow", "y", false,
		"Draw every shuffle step")

	// Audio
	flags.StringVarP(&audioPath, "audio", "a", "",
		"Write the soundtrack to this WAV file")
	flags.BoolVar(&finalize, "finalize", false,
		"Patch WAV lengths on exit instead of streaming open-ended lengths")

	// Telemetry
	flags.StringVar(&wsAddr, "ws", "",
		"Serve per-frame telemetry over WebSocket on this address (e.g. :8080)")
	flags.StringVar(&udpTarget, "udp", "",
		"Send per-frame telemetry datagrams to this address")

	// Debug Configuration
	flags.BoolVarP(&verbose, "verbose", "v", false,
		"Show verbose output and log every frame")

	// Execute the CLI
	rootCmd.SetArgs(args)
	if err := rootCmd.Execute(); err != nil {
		return nil, err
	}

	return options, nil
}
