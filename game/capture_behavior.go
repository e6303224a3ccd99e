package game

// CaptureObjectsBehavior generates goals for profitably reaching and visiting
// interactable map objects. It either targets an explicit object list or
// scans the clustered object pools through type/subtype filters.
type CaptureObjectsBehavior struct {
	ctx *PlannerContext

	specificObjects bool
	objects         []*WorldObject
	objectTypes     []ObjectType
	objectSubTypes  []int
}

// NewCaptureObjects creates a behavior targeting the given objects directly.
func NewCaptureObjects(ctx *PlannerContext, objects ...*WorldObject) *CaptureObjectsBehavior {
	return &CaptureObjectsBehavior{
		ctx:             ctx,
		specificObjects: true,
		objects:         objects,
	}
}

// NewCaptureObjectsOfType creates a behavior scanning the clustered pools for
// objects matching the filters. An empty filter accepts everything.
func NewCaptureObjectsOfType(ctx *PlannerContext, types []ObjectType, subTypes []int) *CaptureObjectsBehavior {
	return &CaptureObjectsBehavior{
		ctx:            ctx,
		objectTypes:    types,
		objectSubTypes: subTypes,
	}
}

func (b *CaptureObjectsBehavior) String() string {
	return "Capture objects"
}

// Equals reports whether two behaviors request the same work: both explicit
// with the same object set, or both filtered with the same type and subtype
// sets. Order is irrelevant.
func (b *CaptureObjectsBehavior) Equals(other *CaptureObjectsBehavior) bool {
	if other == nil || b.specificObjects != other.specificObjects {
		return false
	}
	if b.specificObjects {
		ids := func(objs []*WorldObject) []string {
			out := make([]string, len(objs))
			for i, o := range objs {
				out[i] = o.ID
			}
			return out
		}
		return setEquals(ids(b.objects), ids(other.objects))
	}
	return setEquals(b.objectTypes, other.objectTypes) &&
		setEquals(b.objectSubTypes, other.objectSubTypes)
}

func setEquals[T comparable](a, b []T) bool {
	seen := make(map[T]bool, len(a))
	for _, v := range a {
		seen[v] = true
	}
	for _, v := range b {
		if !seen[v] {
			return false
		}
	}
	other := make(map[T]bool, len(b))
	for _, v := range b {
		other[v] = true
	}
	for _, v := range a {
		if !other[v] {
			return false
		}
	}
	return true
}

// shouldVisitObject applies the configured type and subtype filters. An empty
// filter accepts any value.
func (b *CaptureObjectsBehavior) shouldVisitObject(obj *WorldObject) bool {
	if len(b.objectTypes) > 0 && !contains(b.objectTypes, obj.Type) {
		return false
	}
	if len(b.objectSubTypes) > 0 && !contains(b.objectSubTypes, obj.SubType) {
		return false
	}
	return true
}

func contains[T comparable](values []T, v T) bool {
	for _, c := range values {
		if c == v {
			return true
		}
	}
	return false
}

// visitGoals builds the goal batch for all candidate paths to one object.
// Every path starts as an invalid placeholder which is replaced when the
// route is accepted; rejected routes stay invalid and are stripped later.
func (b *CaptureObjectsBehavior) visitGoals(paths []Path, objToVisit *WorldObject) []Goal {
	ctx := b.ctx
	logger := ctx.logger()

	tasks := make([]Goal, 0, len(paths))

	var closestWay *Path
	var waysToVisitObj []*ExecuteRoute

	for i := range paths {
		path := paths[i]
		tasks = append(tasks, InvalidGoal{})

		if ctx.Danger.EnemyCanKillAlongPath(path) {
			logger.Printf("Ignoring %s: hero can be killed along the way", path)
			continue
		}

		if objToVisit != nil && !ctx.ShouldVisit(path.Hero, objToVisit) {
			continue
		}

		hero := path.Hero
		danger := path.Danger

		// Scouts avoid multi-hero convoy routes even when they are safe.
		if ctx.Roles.RoleOf(hero) == RoleScout && danger == 0 && path.ExchangeCount > 1 {
			continue
		}

		if path.Blocked != nil {
			subGoal := path.Blocked.Decompose(hero)
			logger.Printf("Decomposing special action %s returns %s", path.Blocked, subGoal)

			if !subGoal.Invalid() {
				composition := &Composition{}
				composition.AddNext(&ExecuteRoute{Path: path.snapshot(), Object: objToVisit})
				composition.AddNext(subGoal)
				tasks[len(tasks)-1] = composition
			}
			continue
		}

		isSafe := ctx.Danger.IsSafeToVisit(hero, path.Army, danger)

		logger.Printf("It is %s to visit %s by %s, danger %d, army loss %d",
			safeWord(isSafe), targetName(objToVisit, path), hero.Name, danger, path.ArmyLoss)

		if !isSafe {
			continue
		}

		// The cheapest safe route sets the ratio baseline even when its
		// heroes are locked; locked routes are just not emitted.
		if closestWay == nil || closestWay.Cost > path.Cost {
			closestWay = &paths[i]
		}

		if !ctx.Locks.PathHeroesLocked(path) {
			way := &ExecuteRoute{Path: path.snapshot(), Object: objToVisit}
			waysToVisitObj = append(waysToVisitObj, way)
			tasks[len(tasks)-1] = way
		}
	}

	for _, way := range waysToVisitObj {
		way.ClosestWayRatio = closestWay.Cost / way.Path.Cost
	}

	return tasks
}

func safeWord(isSafe bool) string {
	if isSafe {
		return "safe"
	}
	return "not safe"
}

func targetName(obj *WorldObject, path Path) string {
	if obj != nil {
		return obj.String()
	}
	return path.Target.String()
}

// Decompose is the entry point of a planning pass. It selects the candidate
// object pool, produces per-path goals for every admissible object and
// returns the batch with all invalid entries stripped.
func (b *CaptureObjectsBehavior) Decompose() []Goal {
	ctx := b.ctx
	logger := ctx.logger()

	var tasks []Goal

	captureObjects := func(objs []*WorldObject) {
		if len(objs) == 0 {
			return
		}

		logger.Printf("Scanning objects, count %d", len(objs))

		for _, objToVisit := range objs {
			if !b.shouldVisitObject(objToVisit) {
				continue
			}

			paths := ctx.Pathfinder.PathsTo(objToVisit.Pos)
			logger.Printf("Checking object %s, found %d paths", objToVisit, len(paths))

			tasks = append(tasks, b.visitGoals(paths, objToVisit)...)
		}

		tasks = dropInvalid(tasks)
	}

	if b.specificObjects {
		captureObjects(b.objects)
	} else {
		captureObjects(ctx.Clusters.NearbyObjects())

		if len(tasks) == 0 {
			captureObjects(ctx.Clusters.FarObjects())
		}
	}

	return tasks
}
