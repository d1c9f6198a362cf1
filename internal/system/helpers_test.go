package system

import (
	"ar-catcher/internal/component"
	"ar-catcher/internal/defs"
	"ar-catcher/internal/entity"
	"ar-catcher/internal/event"
	"ar-catcher/internal/utils"
)

// scriptedRand возвращает заранее заданные значения по кругу.
type scriptedRand struct {
	floats []float64
	ints   []int
	fi, ii int
}

func (r *scriptedRand) Float64() float64 {
	if len(r.floats) == 0 {
		return 0
	}
	v := r.floats[r.fi%len(r.floats)]
	r.fi++
	return v
}

func (r *scriptedRand) Intn(n int) int {
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[r.ii%len(r.ints)] % n
	r.ii++
	return v
}

var _ utils.RandomSource = (*scriptedRand)(nil)

type fixture struct {
	world      *entity.World
	effects    *EffectSystem
	collision  *CollisionSystem
	dispatcher *event.Dispatcher
	events     []event.Event
}

func newFixture() *fixture {
	f := &fixture{world: entity.NewWorld(1280, 720), dispatcher: event.NewDispatcher()}
	f.effects = NewEffectSystem(f.world, utils.NewPRNGService(1))
	f.collision = NewCollisionSystem(f.world, f.effects, f.dispatcher)
	f.dispatcher.SubscribeAll(event.ListenerFunc(func(e event.Event) {
		f.events = append(f.events, e)
	}), event.Caught, event.HazardHit, event.ShieldBlocked, event.ShieldPicked, event.MatchWon)
	return f
}

func (f *fixture) place(v defs.Variant, x, y float64) *component.FallingObject {
	def := v.Def()
	obj := &component.FallingObject{
		Position:  component.Position{X: x, Y: y},
		Radius:    def.Radius,
		VelocityY: def.Speed.Min,
		Variant:   v,
		Score:     def.Score,
	}
	f.world.AddObject(obj)
	return obj
}

func (f *fixture) hasObject(obj *component.FallingObject) bool {
	for _, o := range f.world.Objects {
		if o == obj {
			return true
		}
	}
	return false
}

func (f *fixture) burstsOfKind(kind defs.BurstKind) int {
	n := 0
	for _, b := range f.world.Bursts {
		if b.Kind == kind {
			n++
		}
	}
	return n
}
