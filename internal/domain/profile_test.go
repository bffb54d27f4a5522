package domain

import (
	"fmt"
	"testing"
)

func testProfile() *Profile {
	return NewProfile("acc-1", "alice", "code-1", "@alice", "North", Cord{Lat: 1, Long: 2}, "Mon", "")
}

func TestNewProfile_Defaults(t *testing.T) {
	p := testProfile()

	if p.Rate != 1 {
		t.Errorf("rate: got %v, want 1", p.Rate)
	}
	if p.Budget != 0 || p.AreaSize != 0 {
		t.Errorf("budget/area: got %v/%v, want 0/0", p.Budget, p.AreaSize)
	}
	if p.Orders == nil || p.Zones == nil || p.AccountComponents == nil {
		t.Error("sub-lists must be empty, not nil")
	}
}

func TestAcceptOrder_FlipsFlagAndAddsBudget(t *testing.T) {
	p := testProfile()
	p.AddOrder("o-1", "front lawn", 40, 30, "2024-05-01")

	p.AcceptOrder("o-1", 30)

	if !p.Orders[0].IsAccepted {
		t.Error("order not marked accepted")
	}
	if p.Budget != 30 {
		t.Errorf("budget: got %v, want 30", p.Budget)
	}
}

func TestAcceptOrder_RepeatAddsAgain(t *testing.T) {
	p := testProfile()
	p.AddOrder("o-1", "front lawn", 40, 30, "2024-05-01")

	p.AcceptOrder("o-1", 30)
	p.AcceptOrder("o-1", 30)

	if p.Budget != 60 {
		t.Errorf("budget after repeat accept: got %v, want 60", p.Budget)
	}
}

func TestAcceptOrder_UnknownIDStillAddsBudget(t *testing.T) {
	p := testProfile()
	p.AddOrder("o-1", "front lawn", 40, 30, "2024-05-01")

	p.AcceptOrder("missing", 15)

	if p.Orders[0].IsAccepted {
		t.Error("order must stay unaccepted")
	}
	if p.Budget != 15 {
		t.Errorf("budget: got %v, want 15", p.Budget)
	}
}

func TestRemoveOrder(t *testing.T) {
	p := testProfile()
	p.AddOrder("o-1", "front", 40, 30, "2024-05-01")
	p.AddOrder("o-2", "back", 25, 20, "2024-05-02")

	p.RemoveOrder("o-1")

	if len(p.Orders) != 1 || p.Orders[0].ShortID != "o-2" {
		t.Errorf("orders after delete: got %+v", p.Orders)
	}

	p.RemoveOrder("missing")
	if len(p.Orders) != 1 {
		t.Error("deleting an absent order must be a no-op")
	}
}

func TestZone_AreaSizeRoundTrip(t *testing.T) {
	p := testProfile()

	p.AddZone("z-1", "Front", "lawn", Cord{}, 50, "active", "")
	if p.AreaSize != 50 {
		t.Fatalf("area after create: got %v, want 50", p.AreaSize)
	}

	p.RemoveZone("z-1", 50)
	if p.AreaSize != 0 {
		t.Errorf("area after delete: got %v, want 0", p.AreaSize)
	}
	if len(p.Zones) != 0 {
		t.Errorf("zones after delete: got %d, want 0", len(p.Zones))
	}
}

func TestZone_CapEvictsOldest(t *testing.T) {
	p := testProfile()
	for i := 0; i < SubListCap; i++ {
		p.AddZone(fmt.Sprintf("z-%d", i), "Zone", "lawn", Cord{}, 1, "active", "")
	}

	p.AddZone("z-new", "Zone", "lawn", Cord{}, 1, "active", "")

	if len(p.Zones) != SubListCap {
		t.Fatalf("zones: got %d, want %d", len(p.Zones), SubListCap)
	}
	if p.Zones[0].ShortID != "z-1" {
		t.Errorf("oldest not evicted: head is %s, want z-1", p.Zones[0].ShortID)
	}
	if p.Zones[SubListCap-1].ShortID != "z-new" {
		t.Errorf("newest not at tail: got %s", p.Zones[SubListCap-1].ShortID)
	}
}

func TestUpdateZone_MutableFieldsOnly(t *testing.T) {
	p := testProfile()
	p.AddZone("z-1", "Front", "lawn", Cord{Lat: 3}, 50, "active", "a.jpg")

	p.UpdateZone("z-1", "done", "b.jpg")

	z := p.Zones[0]
	if z.Status != "done" || z.PhotoURL != "b.jpg" {
		t.Errorf("update not applied: %+v", z)
	}
	if z.Title != "Front" || z.Square != 50 || z.Cords.Lat != 3 {
		t.Errorf("frozen fields changed: %+v", z)
	}

	// Unknown id: silent no-op.
	p.UpdateZone("missing", "x", "x")
	if p.Zones[0].Status != "done" {
		t.Error("no-op update changed state")
	}
}

func TestLikeZone(t *testing.T) {
	p := testProfile()
	p.AddZone("z-1", "Front", "lawn", Cord{}, 50, "active", "")

	p.LikeZone("z-1")
	p.LikeZone("z-1")
	p.LikeZone("missing")

	if p.Zones[0].Likes != 2 {
		t.Errorf("likes: got %v, want 2", p.Zones[0].Likes)
	}
}

func TestComponents_UniquePerTitleAndPath(t *testing.T) {
	p := testProfile()
	p.AddComponent("m-1", "Turbo", PathMower)

	if !p.HasComponent("Turbo", PathMower) {
		t.Error("component not found after add")
	}
	if p.HasComponent("Turbo", PathForum) {
		t.Error("path tag must scope the uniqueness check")
	}
	if p.HasComponent("Other", PathMower) {
		t.Error("title must scope the uniqueness check")
	}

	p.RemoveComponent("m-1")
	if p.HasComponent("Turbo", PathMower) {
		t.Error("component still present after remove")
	}
}
