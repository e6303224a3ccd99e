package game

import (
	"sort"
	"sync"
)

// WorldMap holds the static planning view of the adventure map: interactable
// objects, known heroes and per-player bookkeeping. It implements the
// PlayerState collaborator.
type WorldMap struct {
	objects map[string]*WorldObject
	heroes  map[HeroID]*Hero
	keys    map[PlayerID]map[int]bool
	lock    sync.Mutex
}

// NewWorldMap creates an empty WorldMap.
func NewWorldMap() *WorldMap {
	return &WorldMap{
		objects: make(map[string]*WorldObject),
		heroes:  make(map[HeroID]*Hero),
		keys:    make(map[PlayerID]map[int]bool),
	}
}

// AddObject registers a map object.
func (w *WorldMap) AddObject(obj *WorldObject) {
	w.lock.Lock()
	defer w.lock.Unlock()
	w.objects[obj.ID] = obj
}

// AddHero registers a hero.
func (w *WorldMap) AddHero(h *Hero) {
	w.lock.Lock()
	defer w.lock.Unlock()
	w.heroes[h.ID] = h
}

// ObjectByID looks up an object by id.
func (w *WorldMap) ObjectByID(id string) (*WorldObject, bool) {
	w.lock.Lock()
	defer w.lock.Unlock()
	obj, ok := w.objects[id]
	return obj, ok
}

// Objects returns all objects ordered by id.
func (w *WorldMap) Objects() []*WorldObject {
	w.lock.Lock()
	defer w.lock.Unlock()
	out := make([]*WorldObject, 0, len(w.objects))
	for _, obj := range w.objects {
		out = append(out, obj)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Heroes returns all heroes ordered by id.
func (w *WorldMap) Heroes() []*Hero {
	w.lock.Lock()
	defer w.lock.Unlock()
	out := make([]*Hero, 0, len(w.heroes))
	for _, h := range w.heroes {
		out = append(out, h)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// HeroesOf returns the heroes owned by the given player, ordered by id.
func (w *WorldMap) HeroesOf(p PlayerID) []*Hero {
	var out []*Hero
	for _, h := range w.Heroes() {
		if h.Owner == p {
			out = append(out, h)
		}
	}
	return out
}

// HeroCount returns the number of heroes the player controls.
func (w *WorldMap) HeroCount(p PlayerID) int {
	w.lock.Lock()
	defer w.lock.Unlock()
	count := 0
	for _, h := range w.heroes {
		if h.Owner == p {
			count++
		}
	}
	return count
}

// UnlockKey records that the player picked up the key of a keymaster color.
func (w *WorldMap) UnlockKey(p PlayerID, subType int) {
	w.lock.Lock()
	defer w.lock.Unlock()
	if w.keys[p] == nil {
		w.keys[p] = make(map[int]bool)
	}
	w.keys[p][subType] = true
}

// KeyUnlocked reports whether the player holds the key of a keymaster color.
func (w *WorldMap) KeyUnlocked(p PlayerID, subType int) bool {
	w.lock.Lock()
	defer w.lock.Unlock()
	return w.keys[p][subType]
}

// DistanceClusterizer partitions the world's objects into nearby and far
// pools by straight-line distance from a reference position. It implements
// the Clusterizer collaborator.
type DistanceClusterizer struct {
	world  *WorldMap
	origin Position
	radius float64
}

// NewDistanceClusterizer creates a clusterizer around the given origin.
func NewDistanceClusterizer(world *WorldMap, origin Position, radius float64) *DistanceClusterizer {
	return &DistanceClusterizer{
		world:  world,
		origin: origin,
		radius: radius,
	}
}

// NearbyObjects returns objects within the radius, closest first.
func (dc *DistanceClusterizer) NearbyObjects() []*WorldObject {
	return dc.cluster(true)
}

// FarObjects returns objects outside the radius, closest first.
func (dc *DistanceClusterizer) FarObjects() []*WorldObject {
	return dc.cluster(false)
}

func (dc *DistanceClusterizer) cluster(near bool) []*WorldObject {
	var out []*WorldObject
	for _, obj := range dc.world.Objects() {
		if (dc.origin.DistanceTo(obj.Pos) <= dc.radius) == near {
			out = append(out, obj)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		di := dc.origin.DistanceTo(out[i].Pos)
		dj := dc.origin.DistanceTo(out[j].Pos)
		if di != dj {
			return di < dj
		}
		return out[i].ID < out[j].ID
	})
	return out
}
