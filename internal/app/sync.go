package app

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jessebraham/camper/internal/config"
	"github.com/jessebraham/camper/internal/format"
)

func newSyncCmd() *cobra.Command {
	var fileFormat string

	cmd := &cobra.Command{
		Use:   "sync <directory>",
		Short: "Synchronize a directory with a collection",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := filepath.Abs(config.ExpandHome(args[0]))
			if err != nil {
				return err
			}
			if info, err := os.Stat(dir); err != nil || !info.IsDir() {
				return fmt.Errorf("sync target is not a directory: %s", dir)
			}

			f := format.Format(cfg.Format)
			if fileFormat != "" {
				if f, err = format.Parse(fileFormat); err != nil {
					return err
				}
			}

			// TODO: implement alongside download; sync is a diff of the
			// collection against dir followed by downloads.
			warn("sync is not implemented yet (target %s, format %s)", dir, f)
			return nil
		},
	}

	cmd.Flags().StringVarP(&fileFormat, "format", "f", "",
		"File format to download albums in ("+strings.Join(format.Names(), ", ")+")")

	return cmd
}
