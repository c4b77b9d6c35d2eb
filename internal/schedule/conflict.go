package schedule

// FindConflict scans tasks for one whose interval overlaps [start, end),
// skipping the task with excludeID (pass "" to check against everything).
//
// tasks must be sorted by start time; the scan bails out once a task starts
// at or after end, and the task returned is therefore the earliest-starting
// conflicting one. Returns nil when the interval is free.
//
// Linear scan is fine at the tens-of-tasks scale a single day holds.
// TODO: switch to binary search on the sorted slice if day sizes ever grow
// past a few hundred tasks.
func FindConflict(start, end Clock, tasks []Task, excludeID string) *Task {
	for i := range tasks {
		t := &tasks[i]
		if t.Start >= end {
			break
		}
		if excludeID != "" && t.ID == excludeID {
			continue
		}
		if t.Overlaps(start, end) {
			c := *t
			return &c
		}
	}
	return nil
}
