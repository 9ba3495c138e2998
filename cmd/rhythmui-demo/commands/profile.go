package commands

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/phanxgames/rhythmui"
	"github.com/phanxgames/rhythmui/profile"
)

func profileCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "profile",
		Short: "Show a profile header; Space cycles sample users",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(buildProfileScene(cfg.Profile.Hue, cfg.Profile.LocalUserID), "profile")
		},
	}
}

// sampleUsers covers each message button state. nil shows the empty header.
func sampleUsers(localUserID int) []*profile.UserProfileData {
	return []*profile.UserProfileData{
		nil,
		{Ruleset: "mania", User: &profile.APIUser{
			ID: localUserID, Username: "you", FollowerCount: 12, MappingFollowerCount: 0,
			Level: profile.UserLevel{Current: 8, Progress: 63},
		}},
		{Ruleset: "mania", User: &profile.APIUser{
			ID: localUserID + 1, Username: "mapper", FollowerCount: 48213, MappingFollowerCount: 3120,
			Level: profile.UserLevel{Current: 101, Progress: 7},
		}},
		{Ruleset: "osu", User: &profile.APIUser{
			ID: localUserID + 2, Username: "private", FollowerCount: 1204, PMFriendsOnly: true,
			Level: profile.UserLevel{Current: 55, Progress: 99},
		}},
	}
}

func buildProfileScene(hue float64, localUserID int) *rhythmui.Scene {
	colours := profile.NewColourProvider(hue)
	scene := rhythmui.NewScene()
	scene.ClearColor = colours.Background6()

	header := profile.NewCentreHeader(colours, localUserID)
	header.Node().Anchor = rhythmui.AnchorCentre
	header.Node().Origin = rhythmui.AnchorCentre

	users := sampleUsers(localUserID)
	current := 0
	input := rhythmui.NewContainer("input")
	input.AlwaysPresent = true
	input.OnPressed = func(a rhythmui.Action) bool {
		if a != actionNext {
			return false
		}
		current = (current + 1) % len(users)
		if err := header.User.Set(users[current]); err != nil {
			rhythmui.Logger().Error("set user", "err", err)
		}
		return true
	}

	scene.Root().AddChildren(header.Node(), input)
	scene.BindKey(ebiten.KeySpace, actionNext)
	return scene
}
