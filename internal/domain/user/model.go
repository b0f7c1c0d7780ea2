package user

import (
	"fmt"
	"net/mail"
	"strings"
	"time"
)

const (
	MaxEmailLength     = 255
	MaxUsernameLength  = 150
	MaxFullNameLength  = 255
	MaxTeamLength      = 100
	MaxAvatarURLLength = 500
)

// User is a registered athlete. Team is a loose reference to a team name.
type User struct {
	ID           string
	Email        string
	Username     string
	PasswordHash string
	FullName     string
	Team         *string
	AvatarURL    *string
	CreatedAt    time.Time
}

func (u User) Validate() error {
	email := strings.TrimSpace(u.Email)
	if email == "" {
		return fmt.Errorf("user email is required")
	}
	if len(email) > MaxEmailLength {
		return fmt.Errorf("user email must be at most %d characters", MaxEmailLength)
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return fmt.Errorf("user email is invalid")
	}
	if strings.TrimSpace(u.Username) == "" {
		return fmt.Errorf("user username is required")
	}
	if len(u.Username) > MaxUsernameLength {
		return fmt.Errorf("user username must be at most %d characters", MaxUsernameLength)
	}
	if u.PasswordHash == "" {
		return fmt.Errorf("user password is required")
	}
	if strings.TrimSpace(u.FullName) == "" {
		return fmt.Errorf("user full name is required")
	}
	if len(u.FullName) > MaxFullNameLength {
		return fmt.Errorf("user full name must be at most %d characters", MaxFullNameLength)
	}
	if u.Team != nil && len(*u.Team) > MaxTeamLength {
		return fmt.Errorf("user team must be at most %d characters", MaxTeamLength)
	}
	if u.AvatarURL != nil && len(*u.AvatarURL) > MaxAvatarURLLength {
		return fmt.Errorf("user avatar url must be at most %d characters", MaxAvatarURLLength)
	}

	return nil
}

// TeamName returns the referenced team or an empty string.
func (u User) TeamName() string {
	if u.Team == nil {
		return ""
	}
	return *u.Team
}
