package domain

import "testing"

func testMowing() *Mowing {
	owner := testProfile()
	return NewMowing("mg-1", owner, "Park cleanup", "community", "easy", 300,
		"2024-06-01", "10:00", "North", Cord{}, []Cord{{Lat: 1}, {Lat: 2}}, "organizer")
}

func TestNewMowing_SeedsCreatorAsMember(t *testing.T) {
	m := testMowing()

	if len(m.Members) != 1 {
		t.Fatalf("members: got %d, want 1", len(m.Members))
	}
	creator := m.Members[0]
	if creator.AccountID != "acc-1" || creator.Username != "alice" || creator.TelegramTag != "@alice" {
		t.Errorf("creator member: %+v", creator)
	}
	if creator.Activity != "organizer" {
		t.Errorf("activity: got %s, want organizer", creator.Activity)
	}
	if len(m.Borders) != 2 {
		t.Errorf("borders: got %d, want 2", len(m.Borders))
	}
}

func TestMembership_JoinUpdateLeave(t *testing.T) {
	m := testMowing()
	bob := NewProfile("acc-2", "bob", "code-2", "@bob", "South", Cord{}, "Tue", "")

	m.Join(bob, "helper")
	if len(m.Members) != 2 {
		t.Fatalf("members after join: got %d, want 2", len(m.Members))
	}

	m.UpdateMember("acc-2", "driver")
	if m.Members[1].Activity != "driver" {
		t.Errorf("activity after update: got %s", m.Members[1].Activity)
	}

	m.UpdateMember("missing", "x")

	m.Leave("acc-2")
	if len(m.Members) != 1 || m.Members[0].AccountID != "acc-1" {
		t.Errorf("members after leave: %+v", m.Members)
	}
}

func TestTopics_CreateSupportDelete(t *testing.T) {
	m := testMowing()

	m.AddTopic("t-1", "alice", "what about rain?", "logistics")
	if m.Topics[0].Supports != 0 {
		t.Errorf("supports must start at 0, got %v", m.Topics[0].Supports)
	}

	m.SupportTopic("t-1")
	m.SupportTopic("t-1")
	if m.Topics[0].Supports != 2 {
		t.Errorf("supports: got %v, want 2", m.Topics[0].Supports)
	}

	m.RemoveTopic("t-1")
	if len(m.Topics) != 0 {
		t.Errorf("topics after delete: got %d, want 0", len(m.Topics))
	}
}
