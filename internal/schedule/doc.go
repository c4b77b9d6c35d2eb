// Package schedule maintains a single day's set of time-bounded tasks.
//
// The Service is the only way in: every mutation runs validation and
// conflict detection against the current task set under one lock, so the
// store can never hold two overlapping intervals. Reads hand out copies.
package schedule
