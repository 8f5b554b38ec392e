// Package quality maps a quality selection to the encoder arguments passed to ffmpeg.
package quality

import (
	"fmt"
	"strings"
)

// Selection is one of the fixed quality presets.
type Selection int

const (
	// PreserveOriginal remuxes without re-encoding.
	PreserveOriginal Selection = iota
	// High re-encodes with a low CRF and the slow preset.
	High
	// Medium re-encodes with the default CRF and preset.
	Medium
	// Low re-encodes with a loose CRF and the fast preset.
	Low
)

// ConfigurationError is returned for a selection outside the known presets.
type ConfigurationError struct {
	Value string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("Unknown quality setting: %s", e.Value)
}

type preset struct {
	key   string
	label string
	args  []string
}

var presets = map[Selection]preset{
	PreserveOriginal: {"preserve", "Preserve Original", []string{"-c", "copy"}},
	High:             {"high", "High Quality", []string{"-c:v", "libx264", "-crf", "18", "-preset", "slow", "-c:a", "aac", "-b:a", "192k"}},
	Medium:           {"medium", "Medium Quality", []string{"-c:v", "libx264", "-crf", "23", "-preset", "medium", "-c:a", "aac", "-b:a", "128k"}},
	Low:              {"low", "Low Quality", []string{"-c:v", "libx264", "-crf", "28", "-preset", "fast", "-c:a", "aac", "-b:a", "96k"}},
}

// All lists the selections in menu order.
func All() []Selection {
	return []Selection{PreserveOriginal, High, Medium, Low}
}

// Args returns the encoder arguments for s. The returned slice is a copy.
func Args(s Selection) ([]string, error) {
	p, ok := presets[s]
	if !ok {
		return nil, &ConfigurationError{Value: fmt.Sprintf("%d", int(s))}
	}
	out := make([]string, len(p.args))
	copy(out, p.args)
	return out, nil
}

// String returns the menu label, e.g. "High Quality".
func (s Selection) String() string {
	if p, ok := presets[s]; ok {
		return p.label
	}
	return fmt.Sprintf("Selection(%d)", int(s))
}

// Key returns the short flag value, e.g. "high".
func (s Selection) Key() string {
	if p, ok := presets[s]; ok {
		return p.key
	}
	return ""
}

// Parse accepts either a flag key ("high") or a menu label ("High Quality"), case-insensitively.
func Parse(v string) (Selection, error) {
	v = strings.TrimSpace(v)
	for _, s := range All() {
		p := presets[s]
		if strings.EqualFold(v, p.key) || strings.EqualFold(v, p.label) {
			return s, nil
		}
	}
	return 0, &ConfigurationError{Value: v}
}

// Keys returns the flag keys, for help text.
func Keys() []string {
	keys := make([]string, 0, len(presets))
	for _, s := range All() {
		keys = append(keys, presets[s].key)
	}
	return keys
}
