package economy

import (
	"math"
	"strconv"
	"strings"
)

// Observer is notified after every successful policy application.
type Observer func(State, Record)

// Engine owns the simulation state and its history.
//
// An Engine is not safe for concurrent use; the UI loop drives it.
type Engine struct {
	model     Model
	source    Source
	state     State
	history   History
	observers []Observer
}

// Option configures an Engine.
type Option func(*Engine)

// WithSource replaces the noise source.
func WithSource(src Source) Option {
	return func(e *Engine) { e.source = src }
}

// WithModel replaces the response coefficients.
func WithModel(m Model) Option {
	return func(e *Engine) { e.model = m }
}

// NewEngine returns an engine at day zero. Without options it uses
// DefaultModel and an unseeded RandSource.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		model:  DefaultModel(),
		source: NewRandSource(0),
		state:  InitialState(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ParsePolicy parses the raw text of both policy fields.
func ParsePolicy(rate, money string) (Policy, error) {
	r, err := parseField("rate", rate)
	if err != nil {
		return Policy{}, err
	}
	m, err := parseField("money", money)
	if err != nil {
		return Policy{}, err
	}
	return Policy{Rate: r, Money: m}, nil
}

func parseField(field, raw string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, &InputError{Field: field, Input: raw, Cause: err}
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, &InputError{Field: field, Input: raw}
	}
	return v, nil
}

// ApplyPolicy parses rate and money and advances the simulation one day.
// On a parse failure the state is left untouched and the returned error
// matches ErrInvalidInput.
func (e *Engine) ApplyPolicy(rate, money string) (State, error) {
	p, err := ParsePolicy(rate, money)
	if err != nil {
		return e.state, err
	}
	return e.Apply(p), nil
}

// Apply advances the simulation one day under an already parsed policy.
func (e *Engine) Apply(p Policy) State {
	e.state = e.model.Step(e.state, p, e.source)
	rec := e.state.Record()
	e.history.add(rec)

	for _, obs := range e.observers {
		obs(e.state, rec)
	}
	return e.state
}

// Subscribe registers obs for every future policy application.
func (e *Engine) Subscribe(obs Observer) {
	e.observers = append(e.observers, obs)
}

func (e *Engine) State() State { return e.state }

// History returns a copy of every record.
func (e *Engine) History() []Record { return e.history.Records() }

// Window returns up to the last n records; see History.Window.
func (e *Engine) Window(n int) []Record { return e.history.Window(n) }

// Days returns the number of recorded days.
func (e *Engine) Days() int { return e.history.Len() }
