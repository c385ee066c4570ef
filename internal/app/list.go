package app

import (
	"context"
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/jessebraham/camper/internal/bandcamp"
	"github.com/jessebraham/camper/internal/tui"
)

func newListCmd() *cobra.Command {
	var (
		fanID    uint32
		wishlist bool
	)

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List all albums in a collection or wishlist",
		Long: `List every item in a fan's purchase collection or wishlist.

By default the configured fan ID is used; pass --fan-id to list someone
else's public collection. Requests carry the configured identity cookie so
private and hidden items show up for your own account.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			id := cfg.FanID
			if cmd.Flags().Changed("fan-id") {
				id = fanID
			}

			kind := bandcamp.Collection
			fetch := bc.ListCollection
			if wishlist {
				kind = bandcamp.Wishlist
				fetch = bc.ListWishlist
			}

			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			var items []bandcamp.Item
			err := tui.Spin(fmt.Sprintf("Fetching %s for fan %d…", kind, id), cancel, func() error {
				var ferr error
				items, ferr = fetch(ctx, id)
				return ferr
			})
			if err != nil {
				return err
			}

			fmt.Println(renderItems(items))
			fmt.Printf("\n%d items\n", len(items))
			return nil
		},
	}

	cmd.Flags().Uint32VarP(&fanID, "fan-id", "i", 0, "ID of the user whose collection items to list")
	cmd.Flags().BoolVarP(&wishlist, "wishlist", "w", false, "List items from the wishlist instead")

	return cmd
}

var (
	tableHeaderStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	tableCellStyle   = lipgloss.NewStyle().Padding(0, 1)
	tableIDStyle     = tableCellStyle.Align(lipgloss.Right)
)

// renderItems lays the items out as a bordered table: right-aligned album ID,
// then band and title.
func renderItems(items []bandcamp.Item) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Album ID", "Band", "Album Title").
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return tableHeaderStyle
			case col == 0:
				return tableIDStyle
			default:
				return tableCellStyle
			}
		})

	for _, item := range items {
		t.Row(strconv.FormatUint(uint64(item.AlbumID), 10), item.BandName, item.AlbumTitle)
	}

	return t.Render()
}
