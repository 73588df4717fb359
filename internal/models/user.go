package models

// User is a member of the book exchange. Username and email are unique
// across all users; both are enforced by the service layer first and backed
// by unique indexes at the storage layer.
type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Username string `gorm:"uniqueIndex;not null" json:"username"`
	Email    string `gorm:"uniqueIndex;not null" json:"email"`

	// Owned rows. Deleting a user cascades to all of them.
	Books     []Book     `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE" json:"-"`
	Exchanges []Exchange `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Reviews   []Review   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

// UserResponse is the stable wire shape for a user.
type UserResponse struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// UserPatch carries a partial update. Nil fields were absent from the
// request and are left untouched.
type UserPatch struct {
	Username *string `json:"username"`
	Email    *string `json:"email"`
}

// NewUserResponse maps a User to its wire shape.
func NewUserResponse(u *User) UserResponse {
	return UserResponse{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
	}
}

// NewUserResponses maps a slice of users, always returning a non-nil slice.
func NewUserResponses(users []User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for i := range users {
		out = append(out, NewUserResponse(&users[i]))
	}
	return out
}
