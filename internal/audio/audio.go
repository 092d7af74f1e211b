// Package audio serves the placeholder alert clip. Nothing is synthesized;
// spoken alerts come from the client's own speech engine.
package audio

import (
	"encoding/base64"
	"net/url"
)

const ContentType = "audio/wav"

// silentWAV is a RIFF/WAVE header (PCM, mono, 44.1kHz, 16-bit) with an
// empty data chunk.
const silentWAV = "UklGRigAAABXQVZFZm10IBAAAAABAAEARKwAAIhYAQACABAAZGF0YQAAAAA="

var silent = mustDecode(silentWAV)

// Request is the body accepted by the audio endpoint.
type Request struct {
	AlertText string `json:"alertText"`
	Lang      string `json:"lang"`
}

// Clip is a generated clip plus the metadata echoed back to the caller.
type Clip struct {
	Data      []byte
	AlertText string
	Lang      string
}

// Silent returns a copy of the fixed clip.
func Silent() []byte {
	out := make([]byte, len(silent))
	copy(out, silent)
	return out
}

// Generate ignores the request text and returns the fixed clip.
func Generate(req Request) Clip {
	return Clip{Data: Silent(), AlertText: req.AlertText, Lang: req.Lang}
}

// HeaderValue makes s safe to carry in an HTTP header.
func HeaderValue(s string) string {
	return url.PathEscape(s)
}

func mustDecode(s string) []byte {
	b, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		panic(err)
	}
	return b
}
