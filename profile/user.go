// Package profile builds the centre strip of a user profile header: follower
// and subscriber counts, a message button, and the user's level.
package profile

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// ContentXMargin is the horizontal inset of header content from the screen edges.
const ContentXMargin = 50

// UserLevel is a user's level and the percentage progress towards the next one.
type UserLevel struct {
	Current  int
	Progress int // 0-100
}

// APIUser is the subset of a user's public profile shown by the header.
type APIUser struct {
	ID                   int
	Username             string
	FollowerCount        int
	MappingFollowerCount int
	PMFriendsOnly        bool
	IsFriend             bool
	Level                UserLevel
}

// UserProfileData is the user shown by a profile overlay, with the ruleset
// the overlay is displaying statistics for.
type UserProfileData struct {
	User    *APIUser
	Ruleset string
}

var counts = message.NewPrinter(language.English)

// formatCount renders n with thousands separators.
func formatCount(n int) string {
	return counts.Sprintf("%d", n)
}
