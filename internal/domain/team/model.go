package team

import (
	"fmt"
	"slices"
	"strings"
	"time"
)

const (
	MaxNameLength    = 255
	MaxCaptainLength = 150
)

// Team groups users by username. TotalPoints is a running sum maintained by callers.
type Team struct {
	ID          string
	Name        string
	Description string
	Captain     string
	Members     []string
	TotalPoints int
	CreatedAt   time.Time
}

func (t Team) Validate() error {
	if strings.TrimSpace(t.Name) == "" {
		return fmt.Errorf("team name is required")
	}
	if len(t.Name) > MaxNameLength {
		return fmt.Errorf("team name must be at most %d characters", MaxNameLength)
	}
	if strings.TrimSpace(t.Captain) == "" {
		return fmt.Errorf("team captain is required")
	}
	if len(t.Captain) > MaxCaptainLength {
		return fmt.Errorf("team captain must be at most %d characters", MaxCaptainLength)
	}
	if t.TotalPoints < 0 {
		return fmt.Errorf("team total points must be >= 0")
	}

	seen := make(map[string]struct{}, len(t.Members))
	for _, member := range t.Members {
		if strings.TrimSpace(member) == "" {
			return fmt.Errorf("team member username cannot be empty")
		}
		if _, ok := seen[member]; ok {
			return fmt.Errorf("duplicate team member %q", member)
		}
		seen[member] = struct{}{}
	}

	return nil
}

func (t Team) HasMember(username string) bool {
	return slices.Contains(t.Members, username)
}

// WithMember returns a copy of t with username appended.
func (t Team) WithMember(username string) Team {
	out := t
	out.Members = append(slices.Clone(t.Members), username)
	return out
}

// WithoutMember returns a copy of t with every occurrence of username removed.
func (t Team) WithoutMember(username string) Team {
	out := t
	out.Members = slices.DeleteFunc(slices.Clone(t.Members), func(v string) bool {
		return v == username
	})
	return out
}
