package domain

// Member is a participant of a collaborative mowing event.
type Member struct {
	AccountID   string `json:"account_id"`
	TelegramTag string `json:"telegram_tag"`
	Username    string `json:"username"`
	Activity    string `json:"activity"`
}

// Topic is a discussion thread attached to a mowing event.
type Topic struct {
	ShortID  string  `json:"shortid"`
	Name     string  `json:"name"`
	Text     string  `json:"text"`
	Category string  `json:"category"`
	Supports float64 `json:"supports"`
}

// EntityID returns the topic's shortid.
func (t Topic) EntityID() string { return t.ShortID }

// Mowing is a collaborative mowing event aggregate owned by one profile.
type Mowing struct {
	ShortID   string   `json:"shortid"`
	AccountID string   `json:"account_id"`
	Username  string   `json:"username"`
	Title     string   `json:"title"`
	Category  string   `json:"category"`
	Level     string   `json:"level"`
	Square    float64  `json:"square"`
	Date      string   `json:"date"`
	Time      string   `json:"time"`
	Region    string   `json:"region"`
	Cords     Cord     `json:"cords"`
	Borders   []Cord   `json:"borders"`
	MainPhoto string   `json:"main_photo"`
	Members   []Member `json:"members"`
	Topics    []Topic  `json:"topics"`
}

// NewMowing builds a mowing event owned by the given profile. The member
// list starts with exactly the creator.
func NewMowing(shortID string, owner *Profile, title, category, level string, square float64, date, timeOfDay, region string, cords Cord, borders []Cord, activity string) *Mowing {
	return &Mowing{
		ShortID:   shortID,
		AccountID: owner.AccountID,
		Username:  owner.Username,
		Title:     title,
		Category:  category,
		Level:     level,
		Square:    square,
		Date:      date,
		Time:      timeOfDay,
		Region:    region,
		Cords:     cords,
		Borders:   borders,
		MainPhoto: "",
		Members: []Member{{
			AccountID:   owner.AccountID,
			TelegramTag: owner.TelegramTag,
			Username:    owner.Username,
			Activity:    activity,
		}},
		Topics: []Topic{},
	}
}

// SetMainPhoto overwrites the event photo.
func (m *Mowing) SetMainPhoto(mainPhoto string) {
	m.MainPhoto = mainPhoto
}

// ---------------------------------------------------------------------------
// Members, keyed by the participant's account id.
// ---------------------------------------------------------------------------

// Join appends the given profile as a member with the given activity state.
func (m *Mowing) Join(p *Profile, activity string) {
	m.Members = append(m.Members, Member{
		AccountID:   p.AccountID,
		TelegramTag: p.TelegramTag,
		Username:    p.Username,
		Activity:    activity,
	})
}

// UpdateMember rewrites the activity state of the member with the given
// account id. Absent members are a silent no-op.
func (m *Mowing) UpdateMember(accountID, activity string) {
	for i := range m.Members {
		if m.Members[i].AccountID == accountID {
			m.Members[i].Activity = activity
		}
	}
}

// Leave removes the member with the given account id, if present.
func (m *Mowing) Leave(accountID string) {
	out := m.Members[:0]
	for _, mem := range m.Members {
		if mem.AccountID != accountID {
			out = append(out, mem)
		}
	}
	m.Members = out
}

// ---------------------------------------------------------------------------
// Topics
// ---------------------------------------------------------------------------

// AddTopic appends a topic authored by name with zero supports and keeps the
// list at its cap.
func (m *Mowing) AddTopic(shortID, name, text, category string) {
	m.Topics = append(m.Topics, Topic{
		ShortID:  shortID,
		Name:     name,
		Text:     text,
		Category: category,
		Supports: 0,
	})
	m.Topics = Tail(m.Topics, SubListCap)
}

// SupportTopic bumps the topic's support counter by one. Absent shortid is a
// silent no-op.
func (m *Mowing) SupportTopic(collID string) {
	if i := indexByID(m.Topics, collID); i >= 0 {
		m.Topics[i].Supports++
	}
}

// RemoveTopic deletes the topic with the given shortid, if present.
func (m *Mowing) RemoveTopic(collID string) {
	m.Topics = removeByID(m.Topics, collID)
}
