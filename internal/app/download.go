package app

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jessebraham/camper/internal/format"
)

func newDownloadCmd() *cobra.Command {
	var fileFormat string

	cmd := &cobra.Command{
		Use:   "download <album-id>...",
		Short: "Download one or more albums from a collection",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids := make([]uint32, 0, len(args))
			for _, arg := range args {
				id, err := strconv.ParseUint(arg, 10, 32)
				if err != nil {
					return fmt.Errorf("invalid album ID %q", arg)
				}
				ids = append(ids, uint32(id))
			}

			f := format.Format(cfg.Format)
			if fileFormat != "" {
				var err error
				if f, err = format.Parse(fileFormat); err != nil {
					return err
				}
			}

			// TODO: implement once the download URL flow is reverse
			// engineered; the fancollection API only lists items.
			warn("download is not implemented yet (%d album(s) in %s requested)", len(ids), f)
			return nil
		},
	}

	cmd.Flags().StringVarP(&fileFormat, "format", "f", "",
		"File format to download albums in ("+strings.Join(format.Names(), ", ")+")")

	return cmd
}
