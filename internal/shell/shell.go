package shell

import (
	"errors"
	"io"
	"log"
	"math"
	"strconv"

	"golang.org/x/text/message"

	"github.com/iburimskiy/monetary-storm/internal/config"
	"github.com/iburimskiy/monetary-storm/internal/economy"
)

// ErrQuit is returned by Handle when the user asks to close the window.
var ErrQuit = errors.New("quit")

// Dialogs shows modal messages to the user.
type Dialogs interface {
	Error(title, text string) error
	Info(title, text string) error
}

// Cue is played after every simulated day.
type Cue interface {
	Play(rising bool)
}

type Options struct {
	Engine *economy.Engine
	// Screen prints text drawn with the bitmap font; Text prints window
	// titles and dialogs.
	Screen *message.Printer
	Text   *message.Printer

	Dialogs Dialogs
	Cue     Cue

	RateText    string
	MoneyText   string
	ChartWindow int

	Logger *log.Logger
}

// Controller is the presentation state of the simulation window. It turns
// frames of input into engine calls and keeps what Draw needs.
type Controller struct {
	engine  *economy.Engine
	screen  *message.Printer
	text    *message.Printer
	dialogs Dialogs
	cue     Cue
	log     *log.Logger

	Rate   *Field
	Money  *Field
	fields []*Field
	focus  int

	ApplyButton Button
	HelpButton  Button

	window  int
	series  []economy.Record
	chart   Chart
	prevGDP float64
}

func New(o Options) *Controller {
	logger := o.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	c := &Controller{
		engine:  o.Engine,
		screen:  o.Screen,
		text:    o.Text,
		dialogs: o.Dialogs,
		cue:     o.Cue,
		log:     logger,
		window:  o.ChartWindow,
		prevGDP: o.Engine.State().GDP,
	}

	c.Rate = NewField(
		Rect{X: config.FieldX, Y: config.RateFieldY, W: config.FieldWidth, H: config.FieldHeight},
		o.Screen.Sprintf("field.rate"), o.RateText, config.FieldMaxLen)
	c.Money = NewField(
		Rect{X: config.FieldX, Y: config.MoneyFieldY, W: config.FieldWidth, H: config.FieldHeight},
		o.Screen.Sprintf("field.money"), o.MoneyText, config.FieldMaxLen)
	c.fields = []*Field{c.Rate, c.Money}

	c.ApplyButton = Button{
		Rect:  Rect{X: config.ButtonX, Y: config.ApplyButtonY, W: config.ButtonWidth, H: config.ButtonHeight},
		Label: o.Screen.Sprintf("button.apply"),
	}
	c.HelpButton = Button{
		Rect:  Rect{X: config.ButtonX, Y: config.HelpButtonY, W: config.ButtonWidth, H: config.ButtonHeight},
		Label: o.Screen.Sprintf("button.help"),
	}

	c.engine.Subscribe(c.onAdvance)
	c.refreshChart()
	return c
}

// Handle processes one frame of input.
func (c *Controller) Handle(in Input) error {
	if in.Pressed {
		c.focusAt(in.MouseX, in.MouseY)
	}
	if c.ApplyButton.Update(in) {
		c.apply()
	}
	if c.HelpButton.Update(in) {
		c.help()
	}

	if f := c.Focused(); f != nil {
		f.Insert(in.Chars)
	}
	for _, k := range in.Keys {
		switch k {
		case KeyQuit:
			return ErrQuit
		case KeyTab:
			c.focus = (c.focus + 1) % len(c.fields)
		case KeyEnter:
			c.apply()
		case KeyHelp:
			c.help()
		default:
			if f := c.Focused(); f != nil {
				f.Edit(k)
			}
		}
	}
	return nil
}

// Focused returns the field receiving keystrokes, or nil.
func (c *Controller) Focused() *Field {
	if c.focus < 0 || c.focus >= len(c.fields) {
		return nil
	}
	return c.fields[c.focus]
}

func (c *Controller) focusAt(x, y int) {
	for i, f := range c.fields {
		if f.Contains(x, y) {
			c.focus = i
			f.PlaceCursor((x - f.X - FieldPadding + config.GlyphWidth/2) / config.GlyphWidth)
			return
		}
	}
}

func (c *Controller) apply() {
	_, err := c.engine.ApplyPolicy(c.Rate.Text(), c.Money.Text())
	if errors.Is(err, economy.ErrInvalidInput) {
		c.show(c.dialogs.Error, "error.title", "error.invalid_number")
	}
}

func (c *Controller) help() {
	c.show(c.dialogs.Info, "help.title", "help.body")
}

func (c *Controller) show(dialog func(title, text string) error, titleKey, textKey string) {
	if err := dialog(c.text.Sprintf(titleKey), c.text.Sprintf(textKey)); err != nil {
		c.log.Printf("dialog %s: %v", titleKey, err)
	}
}

func (c *Controller) onAdvance(s economy.State, r economy.Record) {
	rising := s.GDP >= c.prevGDP
	c.prevGDP = s.GDP
	c.refreshChart()

	c.log.Printf("day %d: rate=%g money=%g gdp=%.2f inflation=%.2f unemployment=%.2f",
		r.Day, s.InterestRate, s.MoneySupply, r.GDP, r.Inflation, r.Unemployment)

	if c.cue != nil {
		c.cue.Play(rising)
	}
}

func (c *Controller) refreshChart() {
	c.series = c.engine.Window(c.window)
	c.chart = NewChart(c.series, PlotRect(), config.ChartMaxTicks)
}

// Series returns the records currently plotted.
func (c *Controller) Series() []economy.Record { return c.series }

func (c *Controller) Chart() Chart { return c.chart }

// StatusLines returns the day and indicator labels, values truncated
// toward zero and printed without digit grouping.
func (c *Controller) StatusLines() []string {
	s := c.engine.State()
	return []string{
		c.screen.Sprintf("status.day", strconv.Itoa(s.Day)),
		c.screen.Sprintf("status.gdp", strconv.FormatInt(Truncate(s.GDP), 10)),
		c.screen.Sprintf("status.inflation", strconv.FormatInt(Truncate(s.Inflation), 10)),
		c.screen.Sprintf("status.unemployment", strconv.FormatInt(Truncate(s.Unemployment), 10)),
	}
}

// Label returns an on-screen message.
func (c *Controller) Label(key string) string {
	return c.screen.Sprintf(key)
}

// Truncate converts v to an integer toward zero, saturating at the int64
// range.
func Truncate(v float64) int64 {
	switch {
	case math.IsNaN(v):
		return 0
	case v >= math.MaxInt64:
		return math.MaxInt64
	case v <= math.MinInt64:
		return math.MinInt64
	}
	return int64(v)
}

// FieldPadding is the inset of field text from the field's left edge.
const FieldPadding = 6

// PlotRect is the inner plotting area of the chart, leaving room for the
// title, axis labels and tick labels.
func PlotRect() Rect {
	const (
		left   = 70
		right  = 20
		top    = 40
		bottom = 50
	)
	return Rect{
		X: config.ChartX + left,
		Y: config.ChartY + top,
		W: config.ChartWidth - left - right,
		H: config.ChartHeight - top - bottom,
	}
}
