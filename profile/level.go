package profile

import (
	"strconv"

	"github.com/phanxgames/rhythmui"
)

// LevelBadge shows the user's current level inside a ring.
type LevelBadge struct {
	User *rhythmui.Bindable[*UserProfileData]

	node  *rhythmui.Node
	level *rhythmui.Node
}

// NewLevelBadge creates a badge of the given diameter.
func NewLevelBadge(colours *ColourProvider, size float64) *LevelBadge {
	b := &LevelBadge{User: rhythmui.NewBindable[*UserProfileData](nil)}

	b.node = rhythmui.NewCircle("level badge", size, size)
	b.node.Colour = colours.Background5()
	b.node.BorderThickness = 3
	b.node.BorderColour = colours.Highlight1()
	b.node.OnDispose = b.User.UnbindAll

	b.level = rhythmui.NewText("level", "0", rhythmui.DefaultFont(12))
	b.level.Anchor = rhythmui.AnchorCentre
	b.level.Origin = rhythmui.AnchorCentre
	b.level.Colour = colours.Content1()
	b.node.AddChild(b.level)

	b.User.BindValueChanged(func(e rhythmui.ValueChangedEvent[*UserProfileData]) {
		level := 0
		if e.NewValue != nil && e.NewValue.User != nil {
			level = e.NewValue.User.Level.Current
		}
		b.level.SetText(strconv.Itoa(level))
	}, true)
	return b
}

// Node returns the badge's node.
func (b *LevelBadge) Node() *rhythmui.Node { return b.node }

// Text returns the level currently displayed.
func (b *LevelBadge) Text() string { return b.level.Text.Content }

// LevelProgressBar shows progress towards the next level as a bar with a
// percentage beneath its right end. It fills whatever size its parent gives it.
type LevelProgressBar struct {
	User *rhythmui.Bindable[*UserProfileData]

	node    *rhythmui.Node
	fill    *rhythmui.Node
	percent *rhythmui.Node
}

// NewLevelProgressBar creates an empty progress bar.
func NewLevelProgressBar(colours *ColourProvider) *LevelProgressBar {
	b := &LevelProgressBar{User: rhythmui.NewBindable[*UserProfileData](nil)}

	b.node = rhythmui.NewContainer("level progress")
	b.node.SetRelativeSizeAxes(rhythmui.AxesBoth)
	b.node.OnDispose = b.User.UnbindAll

	track := rhythmui.NewBox("progress track", 0, 0)
	track.SetRelativeSizeAxes(rhythmui.AxesBoth)
	track.CornerRadius = 3
	track.Colour = colours.Background6()

	b.fill = rhythmui.NewBox("progress fill", 0, 1)
	b.fill.RelativeSizeAxes = rhythmui.AxesBoth
	b.fill.CornerRadius = 3
	b.fill.Colour = colours.Highlight1()

	b.percent = rhythmui.NewText("progress text", "0%", rhythmui.DefaultFont(11))
	b.percent.Anchor = rhythmui.AnchorBottomRight
	b.percent.Origin = rhythmui.AnchorTopRight
	b.percent.Colour = colours.Foreground1()

	b.node.AddChildren(track, b.fill, b.percent)

	b.User.BindValueChanged(func(e rhythmui.ValueChangedEvent[*UserProfileData]) {
		progress := 0
		if e.NewValue != nil && e.NewValue.User != nil {
			progress = min(max(e.NewValue.User.Level.Progress, 0), 100)
		}
		b.fill.Width = float64(progress) / 100
		b.percent.SetText(strconv.Itoa(progress) + "%")
	}, true)
	return b
}

// Node returns the bar's node.
func (b *LevelProgressBar) Node() *rhythmui.Node { return b.node }

// Progress returns the filled fraction in [0, 1].
func (b *LevelProgressBar) Progress() float64 { return b.fill.Width }

// Text returns the percentage label.
func (b *LevelProgressBar) Text() string { return b.percent.Text.Content }
