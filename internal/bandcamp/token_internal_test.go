package bandcamp

import (
	"testing"
	"time"
)

func TestInitialToken_ExactShape(t *testing.T) {
	at := time.Date(2022, time.March, 15, 12, 30, 45, 0, time.UTC)
	got := initialToken(at)
	want := "1647347445:0:a::"
	if got != want {
		t.Errorf("initialToken = %q, want %q", got, want)
	}
}

func TestInitialToken_IgnoresZone(t *testing.T) {
	// The seed is a Unix timestamp, so the wall-clock zone must not matter.
	utc := time.Date(2022, time.March, 15, 12, 30, 45, 0, time.UTC)
	est := utc.In(time.FixedZone("EST", -5*60*60))
	if initialToken(utc) != initialToken(est) {
		t.Errorf("token differs across zones: %q vs %q", initialToken(utc), initialToken(est))
	}
}

func TestKindEndpoints(t *testing.T) {
	if got := Collection.endpoint(); got != "collection_items" {
		t.Errorf("Collection endpoint = %q, want collection_items", got)
	}
	if got := Wishlist.endpoint(); got != "wishlist_items" {
		t.Errorf("Wishlist endpoint = %q, want wishlist_items", got)
	}
}
