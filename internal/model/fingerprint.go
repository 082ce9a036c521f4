package model

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"golang.org/x/text/language"
)

// Fingerprint is one collected browser fingerprint, the input record of the
// analysis engine. Every field is optional: first-party privacy tools strip
// signals intentionally, so partial fingerprints are a normal case and absent
// signals are simply excluded from the analysis.
//
// Design decision: We use a typed record with one named field per component
// type rather than a generic signal list keyed by label string. Typed fields
// remove an entire class of label-typo bugs and let the correlation and
// anomaly checks read the platform and resolution directly instead of
// scanning a list.
type Fingerprint struct {
	// UserAgent is the raw User-Agent string. It is carried for report
	// context only and does not contribute to the entropy total.
	UserAgent string `json:"user_agent,omitempty"`

	// Platform is the navigator.platform value (e.g. "Win32", "MacIntel").
	Platform string `json:"platform,omitempty"`

	// ScreenResolution is the screen size in "WIDTHxHEIGHT" form.
	ScreenResolution string `json:"screen_resolution,omitempty"`

	// Timezone is the reported timezone (e.g. "UTC+1").
	Timezone string `json:"timezone,omitempty"`

	// Language is the primary browser language as a BCP 47 tag.
	Language string `json:"language,omitempty"`

	// HardwareConcurrency is the logical CPU count. Browsers report it as a
	// number but collectors frequently stringify it, so both are accepted.
	HardwareConcurrency SignalValue `json:"hardware_concurrency,omitempty"`

	// DeviceMemory is the device memory in GiB, string or number like
	// HardwareConcurrency.
	DeviceMemory SignalValue `json:"device_memory,omitempty"`

	// CanvasHash is the hash of the rendered canvas probe.
	CanvasHash string `json:"canvas_hash,omitempty"`

	// WebGL holds GPU information exposed through the WebGL API.
	// A nil or empty value means the signal was not observed.
	WebGL *WebGL `json:"webgl,omitempty"`

	// AudioHash is the hash of the audio-stack probe output.
	AudioHash string `json:"audio_hash,omitempty"`
}

// WebGL contains the GPU information exposed via the WebGL debug extension.
type WebGL struct {
	// Vendor is the GPU vendor string (e.g. "Google Inc.").
	Vendor string `json:"vendor,omitempty"`

	// Renderer identifies the GPU and driver (e.g. "ANGLE (NVIDIA ...)").
	// This is the identifying part of the WebGL signal.
	Renderer string `json:"renderer,omitempty"`

	// Version is the WebGL version string.
	Version string `json:"version,omitempty"`

	// ShadingLanguage is the GLSL version string.
	ShadingLanguage string `json:"shading_language,omitempty"`
}

// HasWebGL reports whether a usable WebGL signal is present.
// An empty object is treated the same as an absent one.
func (f *Fingerprint) HasWebGL() bool {
	return f.WebGL != nil && *f.WebGL != (WebGL{})
}

// WebGLRenderer returns the renderer string, or "Unknown" when the WebGL
// signal is present but the renderer field is missing.
func (f *Fingerprint) WebGLRenderer() string {
	if f.WebGL == nil || f.WebGL.Renderer == "" {
		return "Unknown"
	}
	return f.WebGL.Renderer
}

// NormalizedLanguage returns the language tag in canonical BCP 47 form
// ("en-us" becomes "en-US") so that lookups against the population table are
// case-insensitive. Unparseable values are returned unchanged; they fall
// through to the unknown-value probability floor downstream.
func (f *Fingerprint) NormalizedLanguage() string {
	if f.Language == "" {
		return ""
	}
	tag, err := language.Parse(f.Language)
	if err != nil {
		return f.Language
	}
	return tag.String()
}

// HasAnySignal reports whether at least one analyzable signal is present.
// The boundary layer rejects fingerprints with no usable signals before
// invoking the engine; the engine itself never fails on partial input.
func (f *Fingerprint) HasAnySignal() bool {
	return f.Platform != "" ||
		f.ScreenResolution != "" ||
		f.Timezone != "" ||
		f.Language != "" ||
		f.HardwareConcurrency != "" ||
		f.DeviceMemory != "" ||
		f.CanvasHash != "" ||
		f.HasWebGL() ||
		f.AudioHash != ""
}

// SignalValue is a fingerprint signal that arrives either as a JSON string
// or as a JSON number. It always normalizes to its string form: integral
// numbers are rendered without a decimal point so that 8 and "8" hit the
// same entry in the population table.
type SignalValue string

// String returns the normalized string form of the signal.
func (v SignalValue) String() string {
	return string(v)
}

// UnmarshalJSON accepts a string, a number, or null.
// Any other JSON type is an error so that malformed fields surface during
// decoding at the boundary, where they are treated as absent signals.
func (v *SignalValue) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*v = ""
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*v = SignalValue(s)
		return nil
	}

	var n float64
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("signal value must be a string or number: %w", err)
	}

	if n == math.Trunc(n) && !math.IsInf(n, 0) {
		*v = SignalValue(strconv.FormatInt(int64(n), 10))
		return nil
	}
	*v = SignalValue(strconv.FormatFloat(n, 'f', -1, 64))
	return nil
}
