package domain

// Review is a user-submitted mower review.
type Review struct {
	ShortID string  `json:"shortid"`
	Name    string  `json:"name"`
	Content string  `json:"content"`
	Test    string  `json:"test"`
	Rate    float64 `json:"rate"`
}

// EntityID returns the review's shortid.
func (r Review) EntityID() string { return r.ShortID }

// Offer is a marketplace listing for a mower.
type Offer struct {
	ShortID     string  `json:"shortid"`
	Name        string  `json:"name"`
	Marketplace string  `json:"marketplace"`
	Format      string  `json:"format"`
	Cost        float64 `json:"cost"`
	Cords       Cord    `json:"cords"`
	Likes       float64 `json:"likes"`
}

// EntityID returns the offer's shortid.
func (o Offer) EntityID() string { return o.ShortID }

// Mower is an equipment listing aggregate owned by one profile.
type Mower struct {
	ShortID   string   `json:"shortid"`
	AccountID string   `json:"account_id"`
	Username  string   `json:"username"`
	Title     string   `json:"title"`
	Category  string   `json:"category"`
	Format    string   `json:"format"`
	Country   string   `json:"country"`
	CutSize   float64  `json:"cut_size"`
	IsStripe  bool     `json:"isStripe"`
	Link      string   `json:"link"`
	MainPhoto string   `json:"main_photo"`
	Reviews   []Review `json:"reviews"`
	Offers    []Offer  `json:"offers"`
}

// NewMower builds a mower owned by the given profile, with empty link,
// photo, and sub-lists.
func NewMower(shortID string, owner *Profile, title, category, format, country string, cutSize float64, isStripe bool) *Mower {
	return &Mower{
		ShortID:   shortID,
		AccountID: owner.AccountID,
		Username:  owner.Username,
		Title:     title,
		Category:  category,
		Format:    format,
		Country:   country,
		CutSize:   cutSize,
		IsStripe:  isStripe,
		Link:      "",
		MainPhoto: "",
		Reviews:   []Review{},
		Offers:    []Offer{},
	}
}

// SetInfo overwrites the mutable mower fields.
func (m *Mower) SetInfo(link, mainPhoto string) {
	m.Link = link
	m.MainPhoto = mainPhoto
}

// AddReview appends a review authored by name and keeps the list at its cap.
func (m *Mower) AddReview(shortID, name, content, test string, rate float64) {
	m.Reviews = append(m.Reviews, Review{
		ShortID: shortID,
		Name:    name,
		Content: content,
		Test:    test,
		Rate:    rate,
	})
	m.Reviews = Tail(m.Reviews, SubListCap)
}

// AddOffer appends an offer with zero likes and keeps the list at its cap.
func (m *Mower) AddOffer(shortID, name, marketplace, format string, cost float64, cords Cord) {
	m.Offers = append(m.Offers, Offer{
		ShortID:     shortID,
		Name:        name,
		Marketplace: marketplace,
		Format:      format,
		Cost:        cost,
		Cords:       cords,
		Likes:       0,
	})
	m.Offers = Tail(m.Offers, SubListCap)
}

// LikeOffer bumps the offer's like counter by one. Absent shortid is a
// silent no-op.
func (m *Mower) LikeOffer(collID string) {
	if i := indexByID(m.Offers, collID); i >= 0 {
		m.Offers[i].Likes++
	}
}

// RemoveOffer deletes the offer with the given shortid, if present.
func (m *Mower) RemoveOffer(collID string) {
	m.Offers = removeByID(m.Offers, collID)
}
