package models

// Book is a book listed for exchange by its owner.
type Book struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Title       string `gorm:"not null" json:"title"`
	Author      string `gorm:"not null" json:"author"`
	Description string `json:"description"`
	OwnerID     uint   `gorm:"not null;index" json:"owner_id"`
	IsAvailable bool   `gorm:"not null" json:"is_available"`

	// Owner is preloaded for listings so responses can carry the owner's
	// username. Not serialized directly.
	Owner *User `gorm:"foreignKey:OwnerID" json:"-"`

	Exchanges []Exchange `gorm:"foreignKey:BookID;constraint:OnDelete:CASCADE" json:"-"`
	Reviews   []Review   `gorm:"foreignKey:BookID;constraint:OnDelete:CASCADE" json:"-"`
}

// BookResponse is the stable wire shape for a book. OwnerUsername is null
// when the owner row cannot be resolved; cascade delete should make that
// impossible, but the mapping stays defensive.
type BookResponse struct {
	ID            uint    `json:"id"`
	Title         string  `json:"title"`
	Author        string  `json:"author"`
	Description   string  `json:"description"`
	OwnerID       uint    `json:"owner_id"`
	IsAvailable   bool    `json:"is_available"`
	OwnerUsername *string `json:"owner_username"`
}

// BookPatch carries a partial update. Nil fields were absent from the
// request and are left untouched. A non-nil OwnerID is re-validated against
// existing users before any field is applied.
type BookPatch struct {
	Title       *string `json:"title"`
	Author      *string `json:"author"`
	Description *string `json:"description"`
	OwnerID     *uint   `json:"owner_id"`
	IsAvailable *bool   `json:"is_available"`
}

// NewBookResponse maps a Book to its wire shape.
func NewBookResponse(b *Book) BookResponse {
	resp := BookResponse{
		ID:          b.ID,
		Title:       b.Title,
		Author:      b.Author,
		Description: b.Description,
		OwnerID:     b.OwnerID,
		IsAvailable: b.IsAvailable,
	}
	if b.Owner != nil {
		resp.OwnerUsername = &b.Owner.Username
	}
	return resp
}

// NewBookResponses maps a slice of books, always returning a non-nil slice.
func NewBookResponses(books []Book) []BookResponse {
	out := make([]BookResponse, 0, len(books))
	for i := range books {
		out = append(out, NewBookResponse(&books[i]))
	}
	return out
}
