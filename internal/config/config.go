package config

import "image/color"

const (
	WindowWidth  = 1100
	WindowHeight = 650

	// Control panel
	PanelX      = 15
	PanelY      = 15
	PanelWidth  = 250
	PanelHeight = WindowHeight - 2*PanelY

	FieldWidth  = 150
	FieldHeight = 26
	FieldX      = PanelX + 20
	RateFieldY  = PanelY + 40
	MoneyFieldY = RateFieldY + 70
	FieldMaxLen = 24

	// Button dimensions
	ButtonWidth  = 150
	ButtonHeight = 36
	ButtonX      = FieldX
	ApplyButtonY = MoneyFieldY + 60
	HelpButtonY  = ApplyButtonY + ButtonHeight + 12

	StatusY = HelpButtonY + ButtonHeight + 40

	// Chart area
	ChartX      = PanelX + PanelWidth + 20
	ChartY      = PanelY
	ChartWidth  = WindowWidth - ChartX - 15
	ChartHeight = WindowHeight - 2*PanelY

	ChartMaxTicks   = 8
	MarkerRadius    = 3
	MarkerMaxPoints = 60

	// Debug font cell
	GlyphWidth  = 6
	GlyphHeight = 16

	// Key repeat, in ticks
	RepeatDelay    = 30
	RepeatInterval = 3

	// Audio cue
	CueSampleRate   = 44100
	CueDurationMs   = 180
	CueRiseHz       = 660
	CueFallHz       = 440
	CueAmplitude    = 0.3
	PulseDecay      = 0.9
	PulseMaxRadius  = 18
	CueBufferMillis = 50
)

// Debug text is always white, so every surface it sits on is dark.
var (
	BackgroundColor = color.RGBA{R: 0x14, G: 0x18, B: 0x22, A: 0xff}
	PanelColor      = color.RGBA{R: 0x1e, G: 0x24, B: 0x32, A: 0xff}
	BorderColor     = color.RGBA{R: 0x3c, G: 0x46, B: 0x5a, A: 0xff}
	GridColor       = color.RGBA{R: 0x3a, G: 0x40, B: 0x4c, A: 0xff}
	AxisColor       = color.RGBA{R: 0x96, G: 0xa0, B: 0xb4, A: 0xff}
	FieldColor      = color.RGBA{R: 0x0e, G: 0x11, B: 0x18, A: 0xff}
	FocusColor      = color.RGBA{R: 0x5c, G: 0x85, B: 0xd6, A: 0xff}
	CursorColor     = color.RGBA{R: 0xe6, G: 0xe6, B: 0xe6, A: 0xff}

	ButtonColor        = color.RGBA{R: 0x5c, G: 0x85, B: 0xd6, A: 0xff}
	ButtonHoverColor   = color.RGBA{R: 0x4a, G: 0x70, B: 0xbd, A: 0xff}
	ButtonPressedColor = color.RGBA{R: 0x3a, G: 0x5a, B: 0x9c, A: 0xff}
	ButtonBorderColor  = color.RGBA{R: 0x96, G: 0xaa, B: 0xc8, A: 0xff}

	GDPColor          = color.RGBA{R: 0x3c, G: 0xc8, B: 0x50, A: 0xff}
	InflationColor    = color.RGBA{R: 0xf0, G: 0x46, B: 0x46, A: 0xff}
	UnemploymentColor = color.RGBA{R: 0x50, G: 0x8c, B: 0xff, A: 0xff}
)
