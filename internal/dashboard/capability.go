package dashboard

import (
	"context"
	"errors"

	"github.com/jalrakshak/jalrakshak/internal/region"
	"github.com/jalrakshak/jalrakshak/internal/risk"
	"github.com/jalrakshak/jalrakshak/internal/satellite"
)

// Failure classes surfaced to the user as notifications.
var (
	ErrNetwork     = errors.New("network failure")
	ErrUnsupported = errors.New("capability not supported")
	ErrPlatform    = errors.New("platform error")
)

// Controller misuse.
var (
	ErrUnknownState       = errors.New("unknown state")
	ErrUnknownDistrict    = errors.New("unknown district")
	ErrUnknownLanguage    = errors.New("unknown language")
	ErrIncompleteLocation = errors.New("state and district are required")
	ErrBusy               = errors.New("request already in progress")
	ErrNoReport           = errors.New("no report loaded")
)

// Utterance is one piece of text handed to a speech synthesizer.
type Utterance struct {
	Text string
	Lang string // BCP 47 voice tag, e.g. "hi-IN"
	Rate float64
}

// Callbacks are the lifecycle hooks of a playback. Any may be nil.
type Callbacks struct {
	OnEnd   func()
	OnError func(error)
}

// Playback is an in-progress utterance.
type Playback interface {
	Cancel()
}

// Speaker is the platform text-to-speech capability.
type Speaker interface {
	Speak(u Utterance, cb Callbacks) (Playback, error)
}

// Locator is the platform geolocation capability.
type Locator interface {
	CurrentPosition(ctx context.Context) (region.Coordinates, error)
}

// Backend is the server API used by the controller.
type Backend interface {
	FloodRisk(ctx context.Context, state, district string) (risk.Record, error)
	AnalyzeSatellite(ctx context.Context) (satellite.Result, error)
	GenerateAudio(ctx context.Context, alertText, lang string) ([]byte, error)
}

// NotificationKind selects toast styling.
type NotificationKind string

const (
	KindSuccess NotificationKind = "success"
	KindError   NotificationKind = "error"
)

// Notification is a transient, auto-dismissing message.
type Notification struct {
	Message string
	Kind    NotificationKind
}

// Notifier delivers notifications to the user.
type Notifier interface {
	Notify(n Notification)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(Notification)

func (f NotifierFunc) Notify(n Notification) { f(n) }

// StaticLocator always reports the same position.
type StaticLocator region.Coordinates

func (l StaticLocator) CurrentPosition(ctx context.Context) (region.Coordinates, error) {
	if err := ctx.Err(); err != nil {
		return region.Coordinates{}, err
	}
	return region.Coordinates(l), nil
}
