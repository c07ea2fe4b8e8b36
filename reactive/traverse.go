package reactive

import (
	mapset "github.com/deckarep/golang-set/v2"
)

// Traverse reads every nested value of a container through the tracked
// accessors, so the watcher currently collecting picks up every reachable
// dep. Deep watchers call this on each evaluation. Observed containers are
// visited at most once, keyed by their container dep id, so cyclic state
// terminates.
func Traverse(value any) any {
	seen := mapset.NewThreadUnsafeSet[uint64]()
	traverse(value, seen)
	return value
}

func traverse(value any, seen mapset.Set[uint64]) {
	switch v := value.(type) {
	case *Map:
		if v.ob != nil {
			id := v.ob.dep.ID()
			if seen.Contains(id) {
				return
			}
			seen.Add(id)
		}
		keys := v.order
		for i := len(keys) - 1; i >= 0; i-- {
			traverse(v.Get(keys[i]), seen)
		}
	case *Array:
		if v.ob != nil {
			id := v.ob.dep.ID()
			if seen.Contains(id) {
				return
			}
			seen.Add(id)
		}
		for i := len(v.items) - 1; i >= 0; i-- {
			traverse(v.Get(i), seen)
		}
	}
}
