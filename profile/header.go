package profile

import "github.com/phanxgames/rhythmui"

// HeaderHeight is the height of the centre strip.
const HeaderHeight = 60

// CentreHeader is the strip beneath a profile's cover: social buttons on the
// left and the user's level on the right. Setting User updates every child.
type CentreHeader struct {
	User *rhythmui.Bindable[*UserProfileData]

	node        *rhythmui.Node
	followers   *FollowersButton
	subscribers *MappingSubscribersButton
	message     *MessageUserButton
	badge       *LevelBadge
	progress    *LevelProgressBar
}

// NewCentreHeader builds the header. localUserID is the signed-in user, whose
// own profile never offers a message button.
func NewCentreHeader(colours *ColourProvider, localUserID int) *CentreHeader {
	h := &CentreHeader{User: rhythmui.NewBindable[*UserProfileData](nil)}

	h.node = rhythmui.NewContainer("centre header")
	h.node.SetRelativeSizeAxes(rhythmui.AxesX)
	h.node.Height = HeaderHeight
	h.node.OnDispose = h.User.UnbindAll

	background := rhythmui.NewBox("header background", 0, 0)
	background.SetRelativeSizeAxes(rhythmui.AxesBoth)
	background.Colour = colours.Background3()

	buttons := rhythmui.NewFlow("buttons", rhythmui.FlowHorizontal, rhythmui.Vec2{X: 10})
	buttons.AutoSizeAxes = rhythmui.AxesX
	buttons.SetRelativeSizeAxes(rhythmui.AxesY)
	buttons.Padding = rhythmui.Vertical(10)
	buttons.Margin.Left = ContentXMargin

	h.followers = NewFollowersButton(colours)
	h.subscribers = NewMappingSubscribersButton(colours)
	h.message = NewMessageUserButton(colours, localUserID)
	buttons.AddChildren(h.followers.Node(), h.subscribers.Node(), h.message.Node())

	level := rhythmui.NewContainer("level")
	level.Anchor = rhythmui.AnchorCentreRight
	level.Origin = rhythmui.AnchorCentreRight
	level.AutoSizeAxes = rhythmui.AxesBoth
	level.Margin.Right = ContentXMargin

	h.badge = NewLevelBadge(colours, 40)
	h.badge.Node().Anchor = rhythmui.AnchorCentreRight
	h.badge.Node().Origin = rhythmui.AnchorCentreRight

	bar := rhythmui.NewContainer("level progress holder")
	bar.Anchor = rhythmui.AnchorCentreRight
	bar.Origin = rhythmui.AnchorCentreRight
	bar.SetSize(200, 6)
	bar.Margin.Right = 50
	h.progress = NewLevelProgressBar(colours)
	bar.AddChild(h.progress.Node())

	level.AddChildren(h.badge.Node(), bar)
	h.node.AddChildren(background, buttons, level)

	h.followers.User.BindTo(h.User)
	h.subscribers.User.BindTo(h.User)
	h.message.User.BindTo(h.User)
	h.badge.User.BindTo(h.User)
	h.progress.User.BindTo(h.User)
	return h
}

// Node returns the header's node.
func (h *CentreHeader) Node() *rhythmui.Node { return h.node }

// Followers returns the followers button.
func (h *CentreHeader) Followers() *FollowersButton { return h.followers }

// MappingSubscribers returns the mapping subscribers button.
func (h *CentreHeader) MappingSubscribers() *MappingSubscribersButton { return h.subscribers }

// Message returns the message button.
func (h *CentreHeader) Message() *MessageUserButton { return h.message }

// LevelBadge returns the level badge.
func (h *CentreHeader) LevelBadge() *LevelBadge { return h.badge }

// LevelProgress returns the level progress bar.
func (h *CentreHeader) LevelProgress() *LevelProgressBar { return h.progress }
