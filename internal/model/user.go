package model

import "time"

// User represents a member account. Withdraw is a soft delete: withdrawn
// users keep their record but are excluded from uniqueness checks and
// profile lookups.
type User struct {
	ID        string    `json:"id"`
	LoginID   string    `json:"login_id"`
	Nickname  string    `json:"nickname"`
	Hash      string    `json:"-"` // Never expose password hash
	Age       int       `json:"age,omitempty"`
	Gender    string    `json:"gender,omitempty"`
	Withdraw  bool      `json:"withdraw"`
	CreatedOn time.Time `json:"created_on"`
	UpdatedOn time.Time `json:"updated_on"`
}

// Password constraints
const (
	MinPasswordLength = 8
	MaxPasswordLength = 128
	MaxNicknameLength = 30
)

// SignUpRequest represents a registration request
type SignUpRequest struct {
	LoginID  string `json:"id"`
	Nickname string `json:"nickname"`
	Password string `json:"password"`
}

// LoginRequest represents a login request
type LoginRequest struct {
	LoginID  string `json:"id"`
	Password string `json:"password"`
}

// LoginResult carries the issued access token
type LoginResult struct {
	Nickname    string `json:"nickname"`
	AccessToken string `json:"access_token"`
}

// UpdateInfoRequest represents a profile update
type UpdateInfoRequest struct {
	Nickname string `json:"nickname"`
	Age      int    `json:"age"`
	Gender   string `json:"gender"`
}

// ChangePasswordRequest carries the old and new password
type ChangePasswordRequest struct {
	Password    string `json:"password"`
	NewPassword string `json:"new_password"`
}

// Profile is the public view of a user
type Profile struct {
	Nickname string `json:"nickname"`
	Age      int    `json:"age,omitempty"`
	Gender   string `json:"gender,omitempty"`
}

// ToProfile strips a user down to its public fields
func (u *User) ToProfile() *Profile {
	return &Profile{
		Nickname: u.Nickname,
		Age:      u.Age,
		Gender:   u.Gender,
	}
}
