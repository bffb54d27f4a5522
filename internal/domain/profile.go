package domain

// Cord is a geographic coordinate pair.
type Cord struct {
	Lat  float64 `json:"lat"`
	Long float64 `json:"long"`
}

// Component path tags for account component linkage entries.
const (
	PathMower  = "mower"
	PathMowing = "mowing"
	PathForum  = "forum"
)

// AccountComponent is a denormalized pointer to a mower, mowing, or forum
// the account created or joined.
type AccountComponent struct {
	ShortID string `json:"shortid"`
	Title   string `json:"title"`
	Path    string `json:"path"`
}

// Order is a mowing job request attached to a profile.
type Order struct {
	ShortID    string  `json:"shortid"`
	Msg        string  `json:"msg"`
	Square     float64 `json:"square"`
	Cost       float64 `json:"cost"`
	Date       string  `json:"date"`
	IsAccepted bool    `json:"isAccepted"`
}

// EntityID returns the order's shortid.
func (o Order) EntityID() string { return o.ShortID }

// Zone is a lawn area the profile maintains.
type Zone struct {
	ShortID  string  `json:"shortid"`
	Title    string  `json:"title"`
	Category string  `json:"category"`
	Cords    Cord    `json:"cords"`
	Square   float64 `json:"square"`
	Status   string  `json:"status"`
	PhotoURL string  `json:"photo_url"`
	Likes    float64 `json:"likes"`
}

// EntityID returns the zone's shortid.
func (z Zone) EntityID() string { return z.ShortID }

// Profile is the root account aggregate. It is created once at registration
// and never deleted; every write persists the whole document.
type Profile struct {
	AccountID         string             `json:"account_id"`
	Username          string             `json:"username"`
	SecurityCode      string             `json:"security_code"`
	TelegramTag       string             `json:"telegram_tag"`
	Region            string             `json:"region"`
	Cords             Cord               `json:"cords"`
	ActivityDay       string             `json:"activity_day"`
	Rate              float64            `json:"rate"`
	Budget            float64            `json:"budget"`
	AreaSize          float64            `json:"area_size"`
	MainPhoto         string             `json:"main_photo"`
	Orders            []Order            `json:"orders"`
	Zones             []Zone             `json:"zones"`
	AccountComponents []AccountComponent `json:"account_components"`
}

// NewProfile builds a freshly registered profile with a starting rate of 1,
// zero budget and area, and empty sub-lists.
func NewProfile(accountID, username, securityCode, telegramTag, region string, cords Cord, activityDay, mainPhoto string) *Profile {
	return &Profile{
		AccountID:         accountID,
		Username:          username,
		SecurityCode:      securityCode,
		TelegramTag:       telegramTag,
		Region:            region,
		Cords:             cords,
		ActivityDay:       activityDay,
		Rate:              1,
		Budget:            0,
		AreaSize:          0,
		MainPhoto:         mainPhoto,
		Orders:            []Order{},
		Zones:             []Zone{},
		AccountComponents: []AccountComponent{},
	}
}

// ---------------------------------------------------------------------------
// Scalar updates
// ---------------------------------------------------------------------------

// SetPersonalInfo overwrites the username and the main photo. The caller is
// responsible for only passing a username that is free (or unchanged).
func (p *Profile) SetPersonalInfo(username, mainPhoto string) {
	p.Username = username
	p.MainPhoto = mainPhoto
}

// SetGeoInfo overwrites the region and coordinates.
func (p *Profile) SetGeoInfo(region string, cords Cord) {
	p.Region = region
	p.Cords = cords
}

// SetLawncareInfo overwrites the weekly activity day and the rating.
func (p *Profile) SetLawncareInfo(activityDay string, rate float64) {
	p.ActivityDay = activityDay
	p.Rate = rate
}

// SetSecurityCode overwrites the login code.
func (p *Profile) SetSecurityCode(code string) {
	p.SecurityCode = code
}

// ---------------------------------------------------------------------------
// Orders
// ---------------------------------------------------------------------------

// AddOrder appends a new, not yet accepted order.
func (p *Profile) AddOrder(shortID, msg string, square, cost float64, date string) {
	p.Orders = append(p.Orders, Order{
		ShortID:    shortID,
		Msg:        msg,
		Square:     square,
		Cost:       cost,
		Date:       date,
		IsAccepted: false,
	})
}

// AcceptOrder marks the order with the given shortid as accepted and adds
// cost to the running budget. The budget grows on every call, including
// repeat accepts of the same order and accepts of an unknown id: the budget
// is a running total that is never decremented or recomputed.
func (p *Profile) AcceptOrder(collID string, cost float64) {
	if i := indexByID(p.Orders, collID); i >= 0 {
		p.Orders[i].IsAccepted = true
	}
	p.Budget += cost
}

// RemoveOrder deletes the order with the given shortid, if present.
func (p *Profile) RemoveOrder(collID string) {
	p.Orders = removeByID(p.Orders, collID)
}

// ---------------------------------------------------------------------------
// Zones
// ---------------------------------------------------------------------------

// AddZone appends a new zone with zero likes, keeps the list at its cap, and
// adds square to the running area total.
func (p *Profile) AddZone(shortID, title, category string, cords Cord, square float64, status, photoURL string) {
	p.Zones = append(p.Zones, Zone{
		ShortID:  shortID,
		Title:    title,
		Category: category,
		Cords:    cords,
		Square:   square,
		Status:   status,
		PhotoURL: photoURL,
		Likes:    0,
	})
	p.Zones = Tail(p.Zones, SubListCap)
	p.AreaSize += square
}

// UpdateZone overwrites the mutable zone fields (status and photo).
// Updating an absent shortid is a silent no-op.
func (p *Profile) UpdateZone(collID, status, photoURL string) {
	if i := indexByID(p.Zones, collID); i >= 0 {
		p.Zones[i].Status = status
		p.Zones[i].PhotoURL = photoURL
	}
}

// LikeZone bumps the zone's like counter by one. Absent shortid is a silent
// no-op.
func (p *Profile) LikeZone(collID string) {
	if i := indexByID(p.Zones, collID); i >= 0 {
		p.Zones[i].Likes++
	}
}

// RemoveZone deletes the zone with the given shortid and subtracts square
// from the running area total. The caller supplies the square; the stored
// value is not consulted, so the total can drift if they disagree.
func (p *Profile) RemoveZone(collID string, square float64) {
	p.Zones = removeByID(p.Zones, collID)
	p.AreaSize -= square
}

// ---------------------------------------------------------------------------
// Account components
// ---------------------------------------------------------------------------

// HasComponent reports whether a component with the given title already
// exists under the given path tag.
func (p *Profile) HasComponent(title, path string) bool {
	for _, c := range p.AccountComponents {
		if c.Path == path && c.Title == title {
			return true
		}
	}
	return false
}

// AddComponent appends a linkage entry for a created or joined aggregate.
func (p *Profile) AddComponent(shortID, title, path string) {
	p.AccountComponents = append(p.AccountComponents, AccountComponent{
		ShortID: shortID,
		Title:   title,
		Path:    path,
	})
}

// RemoveComponent deletes the linkage entry with the given shortid.
func (p *Profile) RemoveComponent(shortID string) {
	out := p.AccountComponents[:0]
	for _, c := range p.AccountComponents {
		if c.ShortID != shortID {
			out = append(out, c)
		}
	}
	p.AccountComponents = out
}
