package game

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TSandvaer/platformgame-sub000/internal/application/scene"
)

// fakeScene appends every call to a shared log so tests can check ordering
type fakeScene struct {
	name   string
	calls  *[]string
	next   scene.Scene
	err    error
	lastDT float64
	draws  int
}

func newFakeScene(name string, calls *[]string) *fakeScene {
	return &fakeScene{name: name, calls: calls}
}

func (f *fakeScene) Update(dt float64) (scene.Scene, error) {
	f.lastDT = dt
	*f.calls = append(*f.calls, f.name+".update")
	return f.next, f.err
}

func (f *fakeScene) Draw(*ebiten.Image) { f.draws++ }
func (f *fakeScene) OnEnter()           { *f.calls = append(*f.calls, f.name+".enter") }
func (f *fakeScene) OnExit()            { *f.calls = append(*f.calls, f.name+".exit") }

func TestNew_EntersInitialScene(t *testing.T) {
	var calls []string
	g := New(newFakeScene("menu", &calls), 320, 240)

	require.NotNil(t, g)
	assert.Equal(t, []string{"menu.enter"}, calls)
}

func TestGame_LayoutIsFixed(t *testing.T) {
	var calls []string
	g := New(newFakeScene("a", &calls), 320, 240)

	for _, size := range [][2]int{{640, 480}, {100, 100}, {1920, 1080}} {
		w, h := g.Layout(size[0], size[1])
		assert.Equal(t, 320, w)
		assert.Equal(t, 240, h)
	}
}

func TestGame_Draw(t *testing.T) {
	var calls []string
	s := newFakeScene("a", &calls)
	g := New(s, 320, 240)

	g.Draw(ebiten.NewImage(320, 240))

	assert.Equal(t, 1, s.draws)
}

func TestGame_Transition(t *testing.T) {
	var calls []string
	first := newFakeScene("first", &calls)
	second := newFakeScene("second", &calls)
	first.next = second
	g := New(first, 320, 240)

	require.NoError(t, g.Update())
	require.NoError(t, g.Update())

	assert.Equal(t, []string{
		"first.enter",
		"first.update",
		"first.exit",
		"second.enter",
		"second.update",
	}, calls)
	assert.Same(t, second, g.Current())
}

func TestGame_StaysWithoutTransition(t *testing.T) {
	var calls []string
	s := newFakeScene("a", &calls)
	g := New(s, 320, 240)

	for i := 0; i < 5; i++ {
		require.NoError(t, g.Update())
	}

	assert.Len(t, calls, 6)
	assert.NotContains(t, calls, "a.exit")
}

func TestGame_UpdateError(t *testing.T) {
	var calls []string
	s := newFakeScene("a", &calls)
	s.err = assert.AnError
	g := New(s, 320, 240)

	assert.ErrorIs(t, g.Update(), assert.AnError)
	assert.NotContains(t, calls, "a.exit", "plain errors leave the scene active")
}

func TestGame_DT(t *testing.T) {
	var calls []string
	s := newFakeScene("a", &calls)
	g := New(s, 320, 240)

	assert.InDelta(t, 16.67, g.DT(), 0.01, "one 60 TPS tick in ms")

	g.SetDT(1000.0 / 30)
	require.NoError(t, g.Update())
	assert.InDelta(t, 33.33, s.lastDT, 0.01)
}

func TestGame_TerminationShutsDownOnce(t *testing.T) {
	var calls []string
	s := newFakeScene("a", &calls)
	s.err = ebiten.Termination
	g := New(s, 320, 240)

	assert.ErrorIs(t, g.Update(), ebiten.Termination)
	g.Shutdown()

	assert.Equal(t, []string{"a.enter", "a.update", "a.exit"}, calls)
}

func TestGame_ShutdownExitsCurrentScene(t *testing.T) {
	var calls []string
	first := newFakeScene("first", &calls)
	first.next = newFakeScene("second", &calls)
	g := New(first, 320, 240)
	require.NoError(t, g.Update())

	g.Shutdown()
	g.Shutdown()

	assert.Equal(t, "second.exit", calls[len(calls)-1])
	assert.Equal(t, 1, count(calls, "second.exit"))
}

func count(calls []string, name string) int {
	n := 0
	for _, c := range calls {
		if c == name {
			n++
		}
	}
	return n
}
