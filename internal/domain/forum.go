package domain

// Image is a gallery entry attached to a forum.
type Image struct {
	ShortID  string `json:"shortid"`
	Text     string `json:"text"`
	Level    string `json:"level"`
	Format   string `json:"format"`
	Status   string `json:"status"`
	PhotoURL string `json:"photo_url"`
}

// EntityID returns the image's shortid.
func (i Image) EntityID() string { return i.ShortID }

// Source is an external reference shared on a forum.
type Source struct {
	ShortID  string  `json:"shortid"`
	Name     string  `json:"name"`
	Title    string  `json:"title"`
	Category string  `json:"category"`
	URL      string  `json:"url"`
	Likes    float64 `json:"likes"`
}

// EntityID returns the source's shortid.
func (s Source) EntityID() string { return s.ShortID }

// Forum is a community forum aggregate owned by one profile.
type Forum struct {
	ShortID     string   `json:"shortid"`
	AccountID   string   `json:"account_id"`
	Username    string   `json:"username"`
	Title       string   `json:"title"`
	Category    string   `json:"category"`
	Format      string   `json:"format"`
	Country     string   `json:"country"`
	Description string   `json:"description"`
	Status      string   `json:"status"`
	Region      string   `json:"region"`
	Cords       Cord     `json:"cords"`
	TelegramTag string   `json:"telegram_tag"`
	Progress    float64  `json:"progress"`
	Images      []Image  `json:"images"`
	Sources     []Source `json:"sources"`
}

// NewForum builds a forum owned by the given profile, starting at zero
// progress with empty sub-lists.
func NewForum(shortID string, owner *Profile, title, category, format, country, description, status, region string, cords Cord) *Forum {
	return &Forum{
		ShortID:     shortID,
		AccountID:   owner.AccountID,
		Username:    owner.Username,
		Title:       title,
		Category:    category,
		Format:      format,
		Country:     country,
		Description: description,
		Status:      status,
		Region:      region,
		Cords:       cords,
		TelegramTag: owner.TelegramTag,
		Progress:    0,
		Images:      []Image{},
		Sources:     []Source{},
	}
}

// SetProgress overwrites the forum's numeric progress.
func (f *Forum) SetProgress(progress float64) {
	f.Progress = progress
}

// ---------------------------------------------------------------------------
// Images
// ---------------------------------------------------------------------------

// AddImage appends an image and keeps the list at its cap.
func (f *Forum) AddImage(shortID, text, level, format, status, photoURL string) {
	f.Images = append(f.Images, Image{
		ShortID:  shortID,
		Text:     text,
		Level:    level,
		Format:   format,
		Status:   status,
		PhotoURL: photoURL,
	})
	f.Images = Tail(f.Images, SubListCap)
}

// UpdateImage overwrites the image's status, the only mutable field.
// Absent shortid is a silent no-op.
func (f *Forum) UpdateImage(collID, status string) {
	if i := indexByID(f.Images, collID); i >= 0 {
		f.Images[i].Status = status
	}
}

// RemoveImage deletes the image with the given shortid, if present.
func (f *Forum) RemoveImage(collID string) {
	f.Images = removeByID(f.Images, collID)
}

// ---------------------------------------------------------------------------
// Sources
// ---------------------------------------------------------------------------

// AddSource appends a source shared by name with zero likes and keeps the
// list at its cap.
func (f *Forum) AddSource(shortID, name, title, category, url string) {
	f.Sources = append(f.Sources, Source{
		ShortID:  shortID,
		Name:     name,
		Title:    title,
		Category: category,
		URL:      url,
		Likes:    0,
	})
	f.Sources = Tail(f.Sources, SubListCap)
}

// LikeSource bumps the source's like counter by one. Absent shortid is a
// silent no-op.
func (f *Forum) LikeSource(collID string) {
	if i := indexByID(f.Sources, collID); i >= 0 {
		f.Sources[i].Likes++
	}
}

// RemoveSource deletes the source with the given shortid, if present.
func (f *Forum) RemoveSource(collID string) {
	f.Sources = removeByID(f.Sources, collID)
}
