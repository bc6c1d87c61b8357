package input

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"

	"github.com/TSandvaer/platformgame-sub000/internal/application/system"
)

// fakeKeys holds and just-pressed sets for one tick
type fakeKeys struct {
	held map[ebiten.Key]bool
	just map[ebiten.Key]bool
}

func (f fakeKeys) Pressed(key ebiten.Key) bool     { return f.held[key] }
func (f fakeKeys) JustPressed(key ebiten.Key) bool { return f.just[key] }

func keys(held []ebiten.Key, just []ebiten.Key) fakeKeys {
	f := fakeKeys{held: map[ebiten.Key]bool{}, just: map[ebiten.Key]bool{}}
	for _, k := range held {
		f.held[k] = true
	}
	for _, k := range just {
		f.held[k] = true
		f.just[k] = true
	}
	return f
}

func TestKeyboard_Read(t *testing.T) {
	tests := []struct {
		name string
		held []ebiten.Key
		just []ebiten.Key
		want system.Input
	}{
		{"nothing", nil, nil, system.Input{}},
		{"left", []ebiten.Key{ebiten.KeyA}, nil, system.Input{MoveX: -1}},
		{"right arrow", []ebiten.Key{ebiten.KeyArrowRight}, nil, system.Input{MoveX: 1}},
		{"left and right cancel", []ebiten.Key{ebiten.KeyA, ebiten.KeyD}, nil, system.Input{}},
		{"two left keys count once", []ebiten.Key{ebiten.KeyA, ebiten.KeyArrowLeft}, nil, system.Input{MoveX: -1}},
		{"down jump drops", []ebiten.Key{ebiten.KeyS}, []ebiten.Key{ebiten.KeySpace}, system.Input{MoveY: 1, Jump: true}},
		{"held jump does not repeat", []ebiten.Key{ebiten.KeySpace}, nil, system.Input{}},
		{"attack", nil, []ebiten.Key{ebiten.KeyJ}, system.Input{Attack: true}},
		{"up", []ebiten.Key{ebiten.KeyW}, nil, system.Input{MoveY: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kb := NewKeyboardWithState(DefaultBindings(), keys(tt.held, tt.just))

			got := kb.Read()

			assert.Equal(t, tt.want, got)
			if tt.want.Jump && tt.want.MoveY > 0 {
				assert.True(t, got.WantsDrop())
			}
		})
	}
}

func TestKeyboard_Controls(t *testing.T) {
	kb := NewKeyboardWithState(DefaultBindings(), keys(
		[]ebiten.Key{ebiten.KeyTab},
		[]ebiten.Key{ebiten.KeyEscape, ebiten.KeyF5},
	))

	assert.True(t, kb.PausePressed())
	assert.True(t, kb.SavePressed())
	assert.True(t, kb.DebugHeld())
	assert.False(t, kb.RestartPressed())
}

func TestKeyboard_CustomBindings(t *testing.T) {
	b := DefaultBindings()
	b.Attack = []ebiten.Key{ebiten.KeyK}
	kb := NewKeyboardWithState(b, keys(nil, []ebiten.Key{ebiten.KeyJ}))

	assert.False(t, kb.Read().Attack)
}
