// Package logo resolves branding items, either logo files or rendered text,
// into rasters ready for the overlay pipeline.
package logo

import (
	"errors"
	"fmt"
)

// Kind tags the payload an Item carries.
type Kind string

const (
	KindImage Kind = "image"
	KindText  Kind = "text"
)

// ErrInvalidItem is returned by Item.Validate.
var ErrInvalidItem = errors.New("invalid logo item")

// Item is one branding element: a logo image selected by ID or name, or a
// line of text rendered with a font.
//
// For images, ID follows the one-based scheme of the logo list: 1 selects no
// logo and n >= 2 selects entry n-2. A non-empty Name takes precedence over
// ID.
type Item struct {
	Kind Kind `json:"kind,omitempty" yaml:"kind,omitempty"`

	ID   int    `json:"id,omitempty" yaml:"id,omitempty"`
	Name string `json:"name,omitempty" yaml:"name,omitempty"`

	Text     string `json:"text,omitempty" yaml:"text,omitempty"`
	FontPath string `json:"font,omitempty" yaml:"font,omitempty"`
	Color    string `json:"color,omitempty" yaml:"color,omitempty"`
}

// EffectiveKind returns Kind, inferring it from the payload when unset.
func (it Item) EffectiveKind() Kind {
	if it.Kind != "" {
		return it.Kind
	}
	if it.Text != "" {
		return KindText
	}
	return KindImage
}

// IsZero reports whether the item selects nothing.
func (it Item) IsZero() bool {
	switch it.EffectiveKind() {
	case KindText:
		return it.Text == ""
	default:
		return it.Name == "" && it.ID <= 1
	}
}

// Validate checks that the item's kind is known and its payload consistent.
func (it Item) Validate() error {
	switch it.EffectiveKind() {
	case KindImage:
		if it.ID < 0 {
			return fmt.Errorf("%w: id %d must not be negative", ErrInvalidItem, it.ID)
		}
		if it.Text != "" {
			return fmt.Errorf("%w: image item carries text %q", ErrInvalidItem, it.Text)
		}
	case KindText:
		if it.Name != "" || it.ID != 0 {
			return fmt.Errorf("%w: text item carries an image selector", ErrInvalidItem)
		}
	default:
		return fmt.Errorf("%w: unknown kind %q", ErrInvalidItem, it.Kind)
	}
	return nil
}

// String describes the item for log lines.
func (it Item) String() string {
	switch it.EffectiveKind() {
	case KindText:
		return fmt.Sprintf("text %q", it.Text)
	default:
		if it.Name != "" {
			return fmt.Sprintf("logo %q", it.Name)
		}
		return fmt.Sprintf("logo id %d", it.ID)
	}
}
