package domain

import (
	"fmt"
	"testing"
)

func testMower() *Mower {
	return NewMower("mw-1", testProfile(), "Turbo", "petrol", "ride-on", "DE", 42, true)
}

func TestNewMower_DenormalizesOwner(t *testing.T) {
	m := testMower()

	if m.AccountID != "acc-1" || m.Username != "alice" {
		t.Errorf("owner copy: got %s/%s", m.AccountID, m.Username)
	}
	if m.Link != "" || m.MainPhoto != "" {
		t.Error("link and photo must start empty")
	}
	if m.Reviews == nil || m.Offers == nil {
		t.Error("sub-lists must be empty, not nil")
	}
}

func TestAddReview_CapEvictsOldest(t *testing.T) {
	m := testMower()
	for i := 0; i <= SubListCap; i++ {
		m.AddReview(fmt.Sprintf("r-%d", i), "bob", "solid machine", "cut test", 4)
	}

	if len(m.Reviews) != SubListCap {
		t.Fatalf("reviews: got %d, want %d", len(m.Reviews), SubListCap)
	}
	if m.Reviews[0].ShortID != "r-1" {
		t.Errorf("head: got %s, want r-1", m.Reviews[0].ShortID)
	}
}

func TestOffers_CreateLikeDelete(t *testing.T) {
	m := testMower()

	m.AddOffer("of-1", "bob", "ebay", "used", 120, Cord{Lat: 1})
	if m.Offers[0].Likes != 0 {
		t.Errorf("likes must start at 0, got %v", m.Offers[0].Likes)
	}

	m.LikeOffer("of-1")
	m.LikeOffer("missing")
	if m.Offers[0].Likes != 1 {
		t.Errorf("likes: got %v, want 1", m.Offers[0].Likes)
	}

	m.RemoveOffer("of-1")
	if len(m.Offers) != 0 {
		t.Errorf("offers after delete: got %d, want 0", len(m.Offers))
	}
}
