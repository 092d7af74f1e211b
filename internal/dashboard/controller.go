// Package dashboard implements the two-view flood report controller:
// a selection view for choosing a location and a dashboard view showing
// the returned report, its alert tabs, voice playback and the satellite
// panel.
package dashboard

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/jalrakshak/jalrakshak/internal/region"
	"github.com/jalrakshak/jalrakshak/internal/risk"
	"github.com/jalrakshak/jalrakshak/internal/satellite"
)

// DefaultLocateTimeout caps a geolocation lookup.
const DefaultLocateTimeout = 10 * time.Second

// View is the top-level screen.
type View int

const (
	ViewSelection View = iota
	ViewDashboard
)

func (v View) String() string {
	if v == ViewDashboard {
		return "dashboard"
	}
	return "selection"
}

// SatelliteState is the satellite panel sub-state.
type SatelliteState int

const (
	SatelliteIdle SatelliteState = iota
	SatelliteRunning
	SatelliteComplete
)

func (s SatelliteState) String() string {
	switch s {
	case SatelliteRunning:
		return "running"
	case SatelliteComplete:
		return "complete"
	default:
		return "idle"
	}
}

// State is a snapshot used for rendering.
type State struct {
	View            View
	Selection       region.Location
	Districts       []string // options for the selected state
	CanSubmit       bool
	Loading         bool
	Record          *risk.Record
	Language        risk.Language
	AlertText       string
	Playing         bool
	Satellite       SatelliteState
	SatelliteResult *satellite.Result
	Locating        bool
	Coordinates     *region.Coordinates
}

// Controller owns all page state. Methods are safe to call from any
// goroutine; speech callbacks may arrive on another one.
type Controller struct {
	backend  Backend
	speaker  Speaker
	locator  Locator
	notifier Notifier

	// LocateTimeout caps Locate. Zero means DefaultLocateTimeout.
	LocateTimeout time.Duration

	mu        sync.Mutex
	view      View
	selection region.Location
	loading   bool
	record    *risk.Record
	lang      risk.Language

	playing  bool
	playback Playback
	playGen  uint64

	satState  SatelliteState
	satResult *satellite.Result
	satGen    uint64

	locating bool
	coords   *region.Coordinates
}

// New creates a controller in the selection view. speaker, locator and
// notifier may be nil; a nil capability is reported as unsupported.
func New(backend Backend, speaker Speaker, locator Locator, notifier Notifier) *Controller {
	if notifier == nil {
		notifier = NotifierFunc(func(Notification) {})
	}
	return &Controller{
		backend:  backend,
		speaker:  speaker,
		locator:  locator,
		notifier: notifier,
		lang:     risk.DefaultLanguage,
	}
}

// Snapshot returns the current state.
func (c *Controller) Snapshot() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	st := State{
		View:        c.view,
		Selection:   c.selection,
		CanSubmit:   c.canSubmitLocked(),
		Loading:     c.loading,
		Language:    c.lang,
		Playing:     c.playing,
		Satellite:   c.satState,
		Locating:    c.locating,
		Coordinates: c.coords,
	}
	if c.selection.State != "" {
		st.Districts, _ = region.Districts(c.selection.State)
	}
	if c.record != nil {
		rec := *c.record
		st.Record = &rec
		st.AlertText = rec.Alerts.Text(c.lang)
	}
	if c.satResult != nil {
		res := *c.satResult
		st.SatelliteResult = &res
	}
	return st
}

// SelectState chooses a state and clears the district. An empty state
// clears the selection.
func (c *Controller) SelectState(state string) error {
	if state != "" && !region.HasState(state) {
		return fmt.Errorf("%w: %q", ErrUnknownState, state)
	}
	c.mu.Lock()
	c.selection = region.Location{State: state}
	c.mu.Unlock()
	return nil
}

// SelectDistrict chooses a district of the selected state.
func (c *Controller) SelectDistrict(district string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if district != "" && !region.Contains(c.selection.State, district) {
		return fmt.Errorf("%w: %q in %q", ErrUnknownDistrict, district, c.selection.State)
	}
	c.selection.District = district
	return nil
}

// CanSubmit reports whether Submit would start a request.
func (c *Controller) CanSubmit() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.canSubmitLocked()
}

func (c *Controller) canSubmitLocked() bool {
	return c.selection.State != "" && c.selection.District != "" && !c.loading
}

// Submit requests a report for the selected location and switches to the
// dashboard view on success.
func (c *Controller) Submit(ctx context.Context) error {
	c.mu.Lock()
	if c.loading {
		c.mu.Unlock()
		return ErrBusy
	}
	if !c.canSubmitLocked() {
		c.mu.Unlock()
		return ErrIncompleteLocation
	}
	c.loading = true
	loc := c.selection
	c.mu.Unlock()

	rec, err := c.backend.FloodRisk(ctx, loc.State, loc.District)

	c.mu.Lock()
	c.loading = false
	if err != nil {
		c.mu.Unlock()
		c.notify("Failed to fetch risk data", KindError)
		return fmt.Errorf("flood risk: %w", err)
	}
	c.record = &rec
	c.view = ViewDashboard
	c.satState = SatelliteIdle
	c.satResult = nil
	c.satGen++
	c.mu.Unlock()

	c.notify(fmt.Sprintf("Risk report for %s generated", loc.District), KindSuccess)
	return nil
}

// SetLanguage switches the alert tab. It never calls the backend.
func (c *Controller) SetLanguage(lang risk.Language) error {
	if !lang.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownLanguage, lang)
	}
	c.mu.Lock()
	c.lang = lang
	c.mu.Unlock()
	return nil
}

// AlertText returns the loaded record's alert in the active language.
func (c *Controller) AlertText() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.record == nil {
		return ""
	}
	return c.record.Alerts.Text(c.lang)
}

// TogglePlayback speaks the current alert, or stops it if already playing.
func (c *Controller) TogglePlayback() error {
	c.mu.Lock()
	if c.playing {
		pb := c.stopLocked()
		c.mu.Unlock()
		if pb != nil {
			pb.Cancel()
		}
		return nil
	}
	if c.record == nil {
		c.mu.Unlock()
		return ErrNoReport
	}
	if c.speaker == nil {
		c.mu.Unlock()
		c.notify("Voice alerts are not supported on this device", KindError)
		return ErrUnsupported
	}
	text := c.record.Alerts.Text(c.lang)
	if text == "" {
		c.mu.Unlock()
		return nil
	}
	u := Utterance{Text: text, Lang: c.lang.VoiceTag(), Rate: risk.SpeechRate}
	c.playing = true
	c.playGen++
	gen := c.playGen
	c.mu.Unlock()

	pb, err := c.speaker.Speak(u, Callbacks{
		OnEnd:   func() { c.finishPlayback(gen, nil) },
		OnError: func(err error) { c.finishPlayback(gen, err) },
	})

	c.mu.Lock()
	if err != nil {
		if c.playGen == gen {
			c.playing = false
		}
		c.mu.Unlock()
		c.notify("Voice playback failed", KindError)
		return fmt.Errorf("%w: %v", ErrPlatform, err)
	}
	if c.playGen != gen || !c.playing {
		// Stopped or finished before Speak returned.
		c.mu.Unlock()
		if pb != nil {
			pb.Cancel()
		}
		return nil
	}
	c.playback = pb
	c.mu.Unlock()
	return nil
}

// Playing reports whether a voice alert is in progress.
func (c *Controller) Playing() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.playing
}

func (c *Controller) finishPlayback(gen uint64, err error) {
	c.mu.Lock()
	if gen != c.playGen || !c.playing {
		c.mu.Unlock()
		return
	}
	c.playing = false
	c.playback = nil
	c.mu.Unlock()

	if err != nil {
		c.notify("Voice playback failed", KindError)
	}
}

// stopLocked clears playback state and returns the handle to cancel once
// the lock is released.
func (c *Controller) stopLocked() Playback {
	pb := c.playback
	c.playing = false
	c.playback = nil
	c.playGen++
	return pb
}

// Reset returns to the selection view, cancelling any speech.
func (c *Controller) Reset() {
	c.mu.Lock()
	pb := c.stopLocked()
	c.view = ViewSelection
	c.record = nil
	c.satState = SatelliteIdle
	c.satResult = nil
	c.satGen++
	c.mu.Unlock()

	if pb != nil {
		pb.Cancel()
	}
}

// RunSatellite runs the mock SAR inference for the loaded report.
func (c *Controller) RunSatellite(ctx context.Context) error {
	c.mu.Lock()
	if c.record == nil {
		c.mu.Unlock()
		return ErrNoReport
	}
	if c.satState == SatelliteRunning {
		c.mu.Unlock()
		return ErrBusy
	}
	c.satState = SatelliteRunning
	gen := c.satGen
	c.mu.Unlock()

	res, err := c.backend.AnalyzeSatellite(ctx)

	c.mu.Lock()
	if gen != c.satGen || c.satState != SatelliteRunning {
		// Reset or resubmitted while in flight; drop the result.
		c.mu.Unlock()
		return nil
	}
	if err != nil {
		c.satState = SatelliteIdle
		c.mu.Unlock()
		c.notify("Satellite analysis failed", KindError)
		return fmt.Errorf("analyze satellite: %w", err)
	}
	c.satState = SatelliteComplete
	c.satResult = &res
	c.mu.Unlock()

	c.notify("SAR Masking Complete", KindSuccess)
	return nil
}

// Locate asks the locator for a position and selects the nearest district.
func (c *Controller) Locate(ctx context.Context) error {
	if c.locator == nil {
		c.notify("Geolocation not supported", KindError)
		return ErrUnsupported
	}

	c.mu.Lock()
	if c.locating {
		c.mu.Unlock()
		return ErrBusy
	}
	c.locating = true
	c.coords = nil
	c.mu.Unlock()

	timeout := c.LocateTimeout
	if timeout <= 0 {
		timeout = DefaultLocateTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	coords, err := c.locator.CurrentPosition(ctx)

	c.mu.Lock()
	c.locating = false
	if err != nil {
		c.mu.Unlock()
		c.notify("Location access denied", KindError)
		if errors.Is(err, ErrUnsupported) {
			return err
		}
		return fmt.Errorf("%w: %v", ErrPlatform, err)
	}
	loc := region.Nearest(coords)
	c.coords = &coords
	c.selection = loc
	c.mu.Unlock()

	c.notify(fmt.Sprintf("Nearest District: %s, %s", loc.District, loc.State), KindSuccess)
	return nil
}

func (c *Controller) notify(msg string, kind NotificationKind) {
	c.notifier.Notify(Notification{Message: msg, Kind: kind})
}
