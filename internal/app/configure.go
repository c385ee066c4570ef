package app

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jessebraham/camper/internal/config"
	"github.com/jessebraham/camper/internal/format"
	"github.com/jessebraham/camper/internal/tui"
)

func newConfigureCmd() *cobra.Command {
	var (
		fanID         uint32
		identity      string
		library       string
		defaultFormat string
		update        bool
		print         bool
	)

	cmd := &cobra.Command{
		Use:   "configure",
		Short: "Configure camper with authentication and library settings",
		Long: `Configure camper with your Bandcamp credentials and music library.

You will need:
  • Your fan ID — the number in your collection page URL
  • Your identity cookie — copy it from a logged-in browser session
  • A local directory to use as your music library

Values not passed as flags are prompted for interactively. Use --update to
change individual values later, or --print to inspect the current config.`,
		Example: `  # Interactive setup
  camper configure

  # Non-interactive setup
  camper configure --fan-id 896389 --identity "..." --library ~/Music --default-format flac

  # Change just the default format
  camper configure --update --default-format mp3-v0`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if print {
				header("Current configuration")
				fmt.Print(cfg.String())
				return nil
			}
			if update {
				return configureUpdate(cmd, fanID, identity, library, defaultFormat)
			}
			return configureCreate(cmd, fanID, identity, library, defaultFormat)
		},
	}

	cmd.Flags().Uint32VarP(&fanID, "fan-id", "i", 0, "Bandcamp fan ID")
	cmd.Flags().StringVarP(&identity, "identity", "t", "", "Bandcamp identity cookie")
	cmd.Flags().StringVarP(&library, "library", "l", "", "Path to music library")
	cmd.Flags().StringVarP(&defaultFormat, "default-format", "f", "",
		"Default audio format to download ("+strings.Join(format.Names(), ", ")+")")
	cmd.Flags().BoolVarP(&update, "update", "u", false, "Overwrite existing values with the provided values")
	cmd.Flags().BoolVarP(&print, "print", "p", false, "Print the current configuration, other options are ignored")

	return cmd
}

// configureCreate builds a fresh config from flags, prompting for anything
// missing, and writes it to disk.
func configureCreate(cmd *cobra.Command, fanID uint32, identity, library, defaultFormat string) error {
	var err error

	if !cmd.Flags().Changed("fan-id") {
		if fanID, err = promptUint32("Bandcamp fan ID"); err != nil {
			return err
		}
	}
	if identity == "" {
		if identity, err = promptString("Bandcamp identity cookie"); err != nil {
			return err
		}
	}
	if library == "" {
		if library, err = promptString("Music library directory"); err != nil {
			return err
		}
	}

	var f format.Format
	if defaultFormat != "" {
		if f, err = format.Parse(defaultFormat); err != nil {
			return err
		}
	} else {
		if f, err = promptFormat(); err != nil {
			return err
		}
	}

	// Resolve and verify the library path before committing anything.
	library, err = filepath.Abs(config.ExpandHome(library))
	if err != nil {
		return err
	}
	if info, statErr := os.Stat(library); statErr != nil || !info.IsDir() {
		fail("library path does not exist: '%s'", library)
	}

	newCfg := &config.Config{
		FanID:    fanID,
		Identity: identity,
		Library:  library,
		Format:   f.String(),
	}
	if err := config.Save(newCfg, flagConfig); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}
	ok("Configuration saved")
	return nil
}

// configureUpdate patches only the values provided as flags. Confirmation
// lines are printed once the save has actually succeeded.
func configureUpdate(cmd *cobra.Command, fanID uint32, identity, library, defaultFormat string) error {
	var messages []string

	if cmd.Flags().Changed("fan-id") {
		cfg.FanID = fanID
		messages = append(messages, fmt.Sprintf("Updated fan ID to %d", fanID))
	}
	if identity != "" {
		cfg.Identity = identity
		messages = append(messages, "Updated identity")
	}
	if library != "" {
		path, err := filepath.Abs(config.ExpandHome(library))
		if err != nil {
			return err
		}
		cfg.Library = path
		messages = append(messages, fmt.Sprintf("Updated library to %s", path))
	}
	if defaultFormat != "" {
		f, err := format.Parse(defaultFormat)
		if err != nil {
			return err
		}
		cfg.Format = f.String()
		messages = append(messages, fmt.Sprintf("Updated default format to %s", f))
	}

	if len(messages) == 0 {
		warn("Nothing to update — pass at least one of --fan-id, --identity, --library, --default-format")
		return nil
	}
	if err := config.Save(cfg, flagConfig); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}
	for _, message := range messages {
		ok("%s", message)
	}
	return nil
}

// promptString reads one line of input for the given prompt. Prompting only
// works on a terminal; otherwise the value must come from a flag.
func promptString(prompt string) (string, error) {
	if !tui.IsTTY() {
		return "", fmt.Errorf("%s required — pass it as a flag in non-interactive mode", prompt)
	}
	fmt.Printf("%s: ", prompt)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("reading input: %w", err)
	}
	value := strings.TrimSpace(line)
	if value == "" {
		return "", fmt.Errorf("%s must not be empty", prompt)
	}
	return value, nil
}

func promptUint32(prompt string) (uint32, error) {
	value, err := promptString(prompt)
	if err != nil {
		return 0, err
	}
	n, err := strconv.ParseUint(value, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number: %w", prompt, err)
	}
	return uint32(n), nil
}

// promptFormat offers the known audio formats as a numbered list.
func promptFormat() (format.Format, error) {
	if !tui.IsTTY() {
		return "", fmt.Errorf("default format required — pass --default-format in non-interactive mode")
	}

	formats := format.Formats()
	fmt.Println("Default audio format:")
	for i, f := range formats {
		fmt.Printf("  %d. %s\n", i+1, f)
	}
	fmt.Printf("Choice [1]: ")

	var choice string
	_, _ = fmt.Scanln(&choice)
	if choice == "" {
		return formats[0], nil
	}
	n, err := strconv.Atoi(choice)
	if err != nil || n < 1 || n > len(formats) {
		return "", fmt.Errorf("invalid choice %q", choice)
	}
	return formats[n-1], nil
}
