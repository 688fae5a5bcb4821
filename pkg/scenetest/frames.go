package scenetest

// Frames is a manually driven frame loop. Step fires every registered
// hook in registration order.
type Frames struct {
	nextID int
	order  []int
	hooks  map[int]func()
}

func (f *Frames) OnFrame(fn func()) (cancel func()) {
	if f.hooks == nil {
		f.hooks = make(map[int]func())
	}
	id := f.nextID
	f.nextID++
	f.order = append(f.order, id)
	f.hooks[id] = fn
	return func() { delete(f.hooks, id) }
}

// Step advances the loop by n frames.
func (f *Frames) Step(n int) {
	for i := 0; i < n; i++ {
		for _, id := range f.order {
			if fn, ok := f.hooks[id]; ok {
				fn()
			}
		}
	}
}

// Active reports how many hooks are still registered.
func (f *Frames) Active() int { return len(f.hooks) }
