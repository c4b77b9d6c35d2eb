package schedule

import "sort"

// store owns the authoritative task collection, kept sorted by start time.
// It is not safe for concurrent use on its own; the Service serializes all
// access under its mutex.
type store struct {
	tasks []Task
}

func (st *store) len() int { return len(st.tasks) }

// index returns the position of the task with the given id, or -1.
func (st *store) index(id string) int {
	for i := range st.tasks {
		if st.tasks[i].ID == id {
			return i
		}
	}
	return -1
}

func (st *store) get(id string) (Task, bool) {
	i := st.index(id)
	if i < 0 {
		return Task{}, false
	}
	return st.tasks[i], true
}

// insert adds t at its sorted position.
func (st *store) insert(t Task) {
	i := sort.Search(len(st.tasks), func(i int) bool {
		return st.tasks[i].Start >= t.Start
	})
	st.tasks = append(st.tasks, Task{})
	copy(st.tasks[i+1:], st.tasks[i:])
	st.tasks[i] = t
}

// replace swaps the stored task with t (matched by ID) and restores order.
func (st *store) replace(t Task) bool {
	i := st.index(t.ID)
	if i < 0 {
		return false
	}
	st.tasks = append(st.tasks[:i], st.tasks[i+1:]...)
	st.insert(t)
	return true
}

func (st *store) remove(id string) bool {
	i := st.index(id)
	if i < 0 {
		return false
	}
	st.tasks = append(st.tasks[:i], st.tasks[i+1:]...)
	return true
}

// snapshot returns a copy of the collection in start order.
func (st *store) snapshot() []Task {
	out := make([]Task, len(st.tasks))
	copy(out, st.tasks)
	return out
}
