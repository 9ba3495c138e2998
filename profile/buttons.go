package profile

import "github.com/phanxgames/rhythmui"

const (
	buttonCornerRadius = 20
	buttonFontSize     = 14
)

// headerButton is the rounded pill shared by the header's buttons: a
// background with an icon glyph and an optional label laid out in a row.
type headerButton struct {
	User *rhythmui.Bindable[*UserProfileData]

	node       *rhythmui.Node
	background *rhythmui.Node
	icon       *rhythmui.Node
	label      *rhythmui.Node
}

func newHeaderButton(name, glyph string, colours *ColourProvider) *headerButton {
	b := &headerButton{User: rhythmui.NewBindable[*UserProfileData](nil)}

	b.node = rhythmui.NewContainer(name)
	b.node.AutoSizeAxes = rhythmui.AxesX
	b.node.SetRelativeSizeAxes(rhythmui.AxesY)
	b.node.OnDispose = b.User.UnbindAll

	b.background = rhythmui.NewBox("button background", 0, 0)
	b.background.SetRelativeSizeAxes(rhythmui.AxesBoth)
	b.background.CornerRadius = buttonCornerRadius
	b.background.Colour = colours.Background6()

	content := rhythmui.NewFlow("button content", rhythmui.FlowHorizontal, rhythmui.Vec2{X: 8})
	content.AutoSizeAxes = rhythmui.AxesX
	content.SetRelativeSizeAxes(rhythmui.AxesY)
	content.Padding = rhythmui.Horizontal(10)

	font := rhythmui.DefaultFont(buttonFontSize)
	b.icon = rhythmui.NewText("icon", glyph, font)
	b.icon.Anchor = rhythmui.AnchorCentreLeft
	b.icon.Origin = rhythmui.AnchorCentreLeft
	b.icon.Colour = colours.Light1()

	b.label = rhythmui.NewText("label", "", font)
	b.label.Anchor = rhythmui.AnchorCentreLeft
	b.label.Origin = rhythmui.AnchorCentreLeft
	b.label.Colour = colours.Content2()

	content.AddChildren(b.icon, b.label)
	b.node.AddChildren(b.background, content)
	return b
}

// Node returns the button's node.
func (b *headerButton) Node() *rhythmui.Node { return b.node }

// Label returns the button's current label text.
func (b *headerButton) Label() string { return b.label.Text.Content }

// FollowersButton shows how many users follow the profile's user.
type FollowersButton struct {
	*headerButton
}

// NewFollowersButton creates a followers button with no user.
func NewFollowersButton(colours *ColourProvider) *FollowersButton {
	b := &FollowersButton{newHeaderButton("followers", "+", colours)}
	b.User.BindValueChanged(func(e rhythmui.ValueChangedEvent[*UserProfileData]) {
		n := 0
		if e.NewValue != nil && e.NewValue.User != nil {
			n = e.NewValue.User.FollowerCount
		}
		b.label.SetText(formatCount(n))
	}, true)
	return b
}

// MappingSubscribersButton shows how many users subscribe to the user's beatmaps.
type MappingSubscribersButton struct {
	*headerButton
}

// NewMappingSubscribersButton creates a subscribers button with no user.
func NewMappingSubscribersButton(colours *ColourProvider) *MappingSubscribersButton {
	b := &MappingSubscribersButton{newHeaderButton("mapping subscribers", "*", colours)}
	b.User.BindValueChanged(func(e rhythmui.ValueChangedEvent[*UserProfileData]) {
		n := 0
		if e.NewValue != nil && e.NewValue.User != nil {
			n = e.NewValue.User.MappingFollowerCount
		}
		b.label.SetText(formatCount(n))
	}, true)
	return b
}

// MessageUserButton opens a conversation with the user. It is hidden on the
// local user's own profile and for users who only accept messages from
// friends.
type MessageUserButton struct {
	*headerButton
	localUserID int
}

// NewMessageUserButton creates a message button. localUserID identifies the
// user running the client.
func NewMessageUserButton(colours *ColourProvider, localUserID int) *MessageUserButton {
	b := &MessageUserButton{
		headerButton: newHeaderButton("message user", "@", colours),
		localUserID:  localUserID,
	}
	b.label.SetText("Message")
	b.User.BindValueChanged(func(e rhythmui.ValueChangedEvent[*UserProfileData]) {
		b.node.Visible = b.canMessage(e.NewValue)
	}, true)
	return b
}

func (b *MessageUserButton) canMessage(d *UserProfileData) bool {
	if d == nil || d.User == nil {
		return false
	}
	u := d.User
	if u.ID == b.localUserID {
		return false
	}
	return !u.PMFriendsOnly || u.IsFriend
}
