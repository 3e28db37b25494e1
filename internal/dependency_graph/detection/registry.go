package detection

import (
	"sort"
	"sync"
)

var (
	mu         sync.RWMutex
	registered = map[string]Detector{}
)

func Register(d Detector) {
	if d == nil {
		return
	}
	mu.Lock()
	defer mu.Unlock()
	registered[d.Name()] = d
}

// All returns the registered detectors ordered by name.
func All() []Detector {
	mu.RLock()
	out := make([]Detector, 0, len(registered))
	for _, d := range registered {
		out = append(out, d)
	}
	mu.RUnlock()
	sort.Slice(out, func(i, j int) bool { return out[i].Name() < out[j].Name() })
	return out
}
