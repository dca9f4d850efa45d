package engine

import (
	"github.com/vovakirdan/tui-engine/internal/core"
)

const kindSpy = KindUser + 1

// spy records every call it receives.
type spy struct {
	Base
	kind     Kind
	updates  []float64
	draws    int
	onUpdate func(p *spy)
	onDraw   func(p *spy)
	panicOn  string
}

func newSpy() *spy {
	return &spy{kind: kindSpy}
}

func (p *spy) Kind() Kind {
	return p.kind
}

func (p *spy) Update(dt float64) {
	if !p.Active() {
		return
	}
	if p.panicOn == "update" {
		panic("spy update failed")
	}
	p.updates = append(p.updates, dt)
	if p.onUpdate != nil {
		p.onUpdate(p)
	}
}

func (p *spy) Draw(s Surface) {
	if p.panicOn == "draw" {
		panic("spy draw failed")
	}
	p.draws++
	if p.onDraw != nil {
		p.onDraw(p)
	}
	if owner := p.Owner(); owner != nil {
		s.FillRect(owner.X, owner.Y, 1, 1, core.Fill{Rune: '#'})
	}
}

type destroySpy struct {
	Base
	destroyed int
}

func (d *destroySpy) Kind() Kind {
	return KindBehavior
}

func (d *destroySpy) Destroy() {
	d.destroyed++
}

// recordingSurface is a core.Screen that counts calls.
type recordingSurface struct {
	*core.Screen
	clears int
	texts  []string
	dims   int
	closed int
}

func newRecordingSurface(w, h int) *recordingSurface {
	return &recordingSurface{Screen: core.NewScreen(w, h)}
}

func (r *recordingSurface) Clear() {
	r.clears++
	r.Screen.Clear()
}

func (r *recordingSurface) FillRect(x, y, w, h float64, f core.Fill) {
	if f.Rune == 0 && f.Dim {
		r.dims++
	}
	r.Screen.FillRect(x, y, w, h, f)
}

func (r *recordingSurface) FillText(x, y float64, text string, color core.Color, align core.Align) {
	r.texts = append(r.texts, text)
	r.Screen.FillText(x, y, text, color, align)
}

func (r *recordingSurface) Close() error {
	r.closed++
	return nil
}

// spawn adds an entity with a spy and returns both.
func spawn(e *Engine, name string, x, y float64) (*Entity, *spy) {
	p := newSpy()
	ent := NewEntity(name, x, y).MustAddComponent(p)
	if err := e.AddGameObject(ent); err != nil {
		panic(err)
	}
	return ent, p
}

func names(ents []*Entity) []string {
	out := make([]string, len(ents))
	for i, ent := range ents {
		out[i] = ent.Name
	}
	return out
}
