package domain

import (
	"fmt"
	"testing"
)

func testForum() *Forum {
	return NewForum("f-1", testProfile(), "Lawn talk", "general", "open", "DE",
		"everything lawns", "active", "North", Cord{})
}

func TestNewForum_Defaults(t *testing.T) {
	f := testForum()

	if f.AccountID != "acc-1" || f.Username != "alice" {
		t.Errorf("owner copy: got %s/%s", f.AccountID, f.Username)
	}
	if f.TelegramTag != "@alice" {
		t.Errorf("telegram tag: got %s", f.TelegramTag)
	}
	if f.Progress != 0 {
		t.Errorf("progress must start at 0, got %v", f.Progress)
	}
}

func TestImages_UpdateOnlyStatus(t *testing.T) {
	f := testForum()
	f.AddImage("i-1", "before", "front", "jpg", "draft", "a.jpg")

	f.UpdateImage("i-1", "published")

	img := f.Images[0]
	if img.Status != "published" {
		t.Errorf("status: got %s", img.Status)
	}
	if img.Text != "before" || img.PhotoURL != "a.jpg" {
		t.Errorf("frozen fields changed: %+v", img)
	}

	f.UpdateImage("missing", "x")
	f.RemoveImage("i-1")
	if len(f.Images) != 0 {
		t.Errorf("images after delete: got %d", len(f.Images))
	}
}

func TestImages_CapEvictsOldest(t *testing.T) {
	f := testForum()
	for i := 0; i <= SubListCap; i++ {
		f.AddImage(fmt.Sprintf("i-%d", i), "pic", "front", "jpg", "draft", "")
	}

	if len(f.Images) != SubListCap {
		t.Fatalf("images: got %d, want %d", len(f.Images), SubListCap)
	}
	if f.Images[0].ShortID != "i-1" {
		t.Errorf("head: got %s, want i-1", f.Images[0].ShortID)
	}
}

func TestSources_CreateLikeDelete(t *testing.T) {
	f := testForum()

	f.AddSource("s-1", "alice", "Mowing guide", "howto", "https://example.com")
	if f.Sources[0].Likes != 0 {
		t.Errorf("likes must start at 0, got %v", f.Sources[0].Likes)
	}

	f.LikeSource("s-1")
	if f.Sources[0].Likes != 1 {
		t.Errorf("likes: got %v, want 1", f.Sources[0].Likes)
	}

	f.RemoveSource("missing")
	if len(f.Sources) != 1 {
		t.Error("deleting an absent source must be a no-op")
	}
	f.RemoveSource("s-1")
	if len(f.Sources) != 0 {
		t.Errorf("sources after delete: got %d", len(f.Sources))
	}
}
