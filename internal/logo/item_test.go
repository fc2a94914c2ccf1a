package logo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestItem_EffectiveKind(t *testing.T) {
	assert.Equal(t, KindImage, Item{ID: 3}.EffectiveKind())
	assert.Equal(t, KindText, Item{Text: "Acme"}.EffectiveKind())
	assert.Equal(t, KindText, Item{Kind: KindText}.EffectiveKind())
	assert.Equal(t, KindImage, Item{}.EffectiveKind())
}

func TestItem_IsZero(t *testing.T) {
	tests := []struct {
		name string
		item Item
		want bool
	}{
		{"empty", Item{}, true},
		{"id one means none", Item{ID: 1}, true},
		{"id two", Item{ID: 2}, false},
		{"by name", Item{Name: "brand.png"}, false},
		{"empty text", Item{Kind: KindText}, true},
		{"text", Item{Text: "Acme"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.item.IsZero())
		})
	}
}

func TestItem_Validate(t *testing.T) {
	tests := []struct {
		name    string
		item    Item
		wantErr bool
	}{
		{"image by id", Item{ID: 2}, false},
		{"image by name", Item{Kind: KindImage, Name: "a.png"}, false},
		{"text", Item{Text: "Acme", Color: "#fff"}, false},
		{"negative id", Item{ID: -1}, true},
		{"image with text", Item{Kind: KindImage, Text: "x"}, true},
		{"text with name", Item{Kind: KindText, Text: "x", Name: "a.png"}, true},
		{"unknown kind", Item{Kind: "video"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.item.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidItem)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
