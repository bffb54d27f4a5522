package domain

import "testing"

func TestTail_UnderCap(t *testing.T) {
	list := []int{1, 2, 3}
	got := Tail(list, 20)
	if len(got) != 3 {
		t.Errorf("got %v, want unchanged list", got)
	}
}

func TestTail_AtCap(t *testing.T) {
	list := make([]int, 20)
	got := Tail(list, 20)
	if len(got) != 20 {
		t.Errorf("len: got %d, want 20", len(got))
	}
}

func TestTail_OverCap_DropsFromFront(t *testing.T) {
	list := []int{0, 1, 2, 3, 4}
	got := Tail(list, 3)
	if len(got) != 3 || got[0] != 2 || got[2] != 4 {
		t.Errorf("got %v, want [2 3 4]", got)
	}
}

func TestTail_Empty(t *testing.T) {
	got := Tail([]string{}, 20)
	if len(got) != 0 {
		t.Errorf("got %v, want empty", got)
	}
}
