package models

const GuestToken = "guest"

// User is the profile returned by /api/auth/users/me/.
type User struct {
	Name                string `json:"name"`
	Email               string `json:"email"`
	Role                string `json:"role"`
	ProfilePictureIndex int    `json:"profile_picture_index"`
}

// Guest is the profile shown for the guest credential. It is never fetched.
var Guest = User{
	Name:  "guest",
	Email: "guest@guest",
	Role:  "guest",
}

// IsGuest reports whether u is the guest profile.
func (u User) IsGuest() bool {
	return u.Role == Guest.Role
}
