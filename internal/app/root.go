package app

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/jessebraham/camper/internal/bandcamp"
	"github.com/jessebraham/camper/internal/config"
	"github.com/jessebraham/camper/internal/tui"
)

var (
	cfg *config.Config
	bc  *bandcamp.Client

	flagNoColor bool
	flagDebug   bool
	flagConfig  string
)

var rootCmd = &cobra.Command{
	Use:   "camper",
	Short: "List and download your Bandcamp collection from the command line",
	Long: `camper is a command-line client for your Bandcamp account.

It lists the full contents of a fan's purchase collection or wishlist via
Bandcamp's paginated fancollection API. Authentication uses the identity
cookie from an existing browser session; run 'camper configure' first.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("error:"), err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file path (default: ~/.config/camper/config.yml)")

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		tui.InitColor(flagNoColor)
		setupLogging(flagDebug)

		var err error
		cfg, err = config.Load(flagConfig)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		// The bare root command plus configure, version, completion and
		// help run without a valid configuration; everything else needs
		// one.
		switch cmd.Name() {
		case "camper", "configure", "version", "completion", "help":
			return nil
		}

		if !cfg.Valid() {
			return fmt.Errorf("missing or invalid configuration — run `camper configure` and try again")
		}

		bc = bandcamp.New(cfg.Identity, "", log.Logger)
		return nil
	}

	// Register sub-commands.
	rootCmd.AddCommand(
		newConfigureCmd(),
		newListCmd(),
		newDownloadCmd(),
		newSyncCmd(),
		newVersionCmd(),
		newCompletionCmd(),
	)
}

// setupLogging wires the global zerolog logger: console output on stderr,
// warnings only unless --debug is set.
func setupLogging(debug bool) {
	level := zerolog.WarnLevel
	if debug {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
}

// ok prints a green success line.
func ok(format string, a ...interface{}) {
	fmt.Println(color.GreenString("✓"), fmt.Sprintf(format, a...))
}

// warn prints a yellow warning line.
func warn(format string, a ...interface{}) {
	fmt.Fprintln(os.Stderr, color.YellowString("!"), fmt.Sprintf(format, a...))
}

// fail prints a red error and exits 1.
func fail(format string, a ...interface{}) {
	fmt.Fprintln(os.Stderr, color.RedString("✗"), fmt.Sprintf(format, a...))
	os.Exit(1)
}

// header prints a cyan section heading.
func header(format string, a ...interface{}) {
	fmt.Println(color.CyanString(fmt.Sprintf(format, a...)))
}
