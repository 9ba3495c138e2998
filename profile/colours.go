package profile

import "github.com/phanxgames/rhythmui"

// Hues of the built-in overlay colour schemes, in degrees.
const (
	HueRed        = 0
	HueOrange     = 45
	HueLime       = 90
	HueGreen      = 125
	HueAquamarine = 160
	HueBlue       = 200
	HuePurple     = 255
	HuePlum       = 320
	HuePink       = 333
)

// ColourProvider derives an overlay's palette from a single hue.
type ColourProvider struct {
	hue float64
}

// NewColourProvider returns a palette for hue, in degrees.
func NewColourProvider(hue float64) *ColourProvider {
	return &ColourProvider{hue: hue}
}

// Hue returns the palette's hue in degrees.
func (p *ColourProvider) Hue() float64 { return p.hue }

func (p *ColourProvider) colour(s, l float64) rhythmui.Color {
	return rhythmui.ColorFromHSL(p.hue, s, l)
}

func (p *ColourProvider) Highlight1() rhythmui.Color  { return p.colour(1, 0.7) }
func (p *ColourProvider) Content1() rhythmui.Color    { return p.colour(0.4, 1) }
func (p *ColourProvider) Content2() rhythmui.Color    { return p.colour(0.4, 0.9) }
func (p *ColourProvider) Light1() rhythmui.Color      { return p.colour(0.4, 0.8) }
func (p *ColourProvider) Foreground1() rhythmui.Color { return p.colour(0.1, 0.6) }
func (p *ColourProvider) Background1() rhythmui.Color { return p.colour(0.1, 0.4) }
func (p *ColourProvider) Background2() rhythmui.Color { return p.colour(0.1, 0.3) }
func (p *ColourProvider) Background3() rhythmui.Color { return p.colour(0.1, 0.25) }
func (p *ColourProvider) Background4() rhythmui.Color { return p.colour(0.1, 0.2) }
func (p *ColourProvider) Background5() rhythmui.Color { return p.colour(0.1, 0.15) }
func (p *ColourProvider) Background6() rhythmui.Color { return p.colour(0.1, 0.1) }
