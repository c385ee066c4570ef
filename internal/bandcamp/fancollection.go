package bandcamp

import (
	"context"
	"encoding/json"
	"fmt"
	"net/mail"
	"time"
)

// Kind selects which of the two fan collections a query targets.
type Kind string

const (
	Collection Kind = "collection"
	Wishlist   Kind = "wishlist"
)

// endpoint returns the API path segment for this kind.
func (k Kind) endpoint() string {
	return string(k) + "_items"
}

// pageSize is a protocol constant. Larger counts trip server-side errors, so
// every request asks for exactly what the Bandcamp web player asks for.
const pageSize = 20

// queryRequest is the payload for one page fetch.
type queryRequest struct {
	FanID          uint32 `json:"fan_id"`
	OlderThanToken string `json:"older_than_token"`
	Count          int    `json:"count"`
}

// page is one page of server results. MoreAvailable alone decides whether
// another page is requested; the token content is never interpreted.
type page struct {
	Items         []Item `json:"items"`
	LastToken     string `json:"last_token"`
	MoreAvailable bool   `json:"more_available"`
}

// Item is a single release in a collection or wishlist; usually an album,
// sometimes a track. Immutable once decoded.
type Item struct {
	Added      time.Time
	BandName   string
	AlbumID    uint32
	AlbumTitle string
}

// UnmarshalJSON decodes the wire shape, parsing the RFC-2822 `added` string
// into a UTC instant. A malformed timestamp fails the whole decode — there is
// no default to fall back to.
func (it *Item) UnmarshalJSON(data []byte) error {
	var raw struct {
		Added      string `json:"added"`
		BandName   string `json:"band_name"`
		AlbumID    uint32 `json:"album_id"`
		AlbumTitle string `json:"album_title"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	added, err := mail.ParseDate(raw.Added)
	if err != nil {
		return fmt.Errorf("parsing added timestamp %q: %w", raw.Added, err)
	}

	it.Added = added.UTC()
	it.BandName = raw.BandName
	it.AlbumID = raw.AlbumID
	it.AlbumTitle = raw.AlbumTitle
	return nil
}

// ListCollection returns every item in the fan's purchase collection, in the
// server's order.
func (c *Client) ListCollection(ctx context.Context, fanID uint32) ([]Item, error) {
	return c.list(ctx, Collection, fanID)
}

// ListWishlist returns every item in the fan's wishlist, in the server's
// order.
func (c *Client) ListWishlist(ctx context.Context, fanID uint32) ([]Item, error) {
	return c.list(ctx, Wishlist, fanID)
}

// list drains the paginated endpoint for kind into one ordered slice. Each
// page fetch depends on the previous response's token, so pages are strictly
// sequential. Any failure aborts the whole call: no partial results, no
// retries. The loop ends only when the server clears more_available — an
// empty page with the flag still set keeps going.
func (c *Client) list(ctx context.Context, kind Kind, fanID uint32) ([]Item, error) {
	var items []Item

	url := c.url(kind.endpoint())
	token := initialToken(c.now())
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		var pg page
		req := queryRequest{FanID: fanID, OlderThanToken: token, Count: pageSize}
		if err := c.postJSON(ctx, url, req, &pg); err != nil {
			return nil, fmt.Errorf("listing %s items: %w", kind, err)
		}

		c.log.Debug().
			Str("kind", string(kind)).
			Str("token", token).
			Int("items", len(pg.Items)).
			Bool("more_available", pg.MoreAvailable).
			Msg("fetched page")

		items = append(items, pg.Items...)
		token = pg.LastToken

		if !pg.MoreAvailable {
			break
		}
	}

	return items, nil
}

// initialToken derives the synthetic cursor for the first page. The API
// rejects an empty cursor, and this is the exact shape the Bandcamp web
// player seeds its first request with.
func initialToken(t time.Time) string {
	return fmt.Sprintf("%d:0:a::", t.Unix())
}
