package schedule

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"dayplan/internal/eventbus"
	logx "dayplan/pkg/logx"
)

// TaskEvent is the payload published on the event bus for every committed
// mutation.
type TaskEvent struct {
	Action string
	Task   Task
}

// Service orchestrates validation, conflict detection and store mutation as
// one atomic operation per call.
//
// A single mutex guards the whole validate -> conflict-check -> mutate
// sequence, so two concurrent AddTask calls can never both pass the conflict
// check against a stale view and commit overlapping intervals. No operation
// blocks on I/O; everything returns synchronously.
type Service struct {
	mu  sync.Mutex
	log logx.Logger
	bus eventbus.Bus

	st store

	now   func() time.Time
	newID func() string
}

// New returns an empty schedule service. bus may be nil when no one is
// listening for mutation events.
func New(log logx.Logger, bus eventbus.Bus) *Service {
	if log.IsZero() {
		log = logx.Nop()
	}
	return &Service{
		log:   log,
		bus:   bus,
		now:   time.Now,
		newID: uuid.NewString,
	}
}

// AddTask validates the candidate, checks it against every existing task and
// inserts it, all under one critical section. On success the new task is
// returned with a fresh id and status PENDING.
func (s *Service) AddTask(description, start, end string, priority Priority) (Task, error) {
	cand, err := Validate(description, start, end)
	if err != nil {
		return Task{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if c := FindConflict(cand.Start, cand.End, s.st.tasks, ""); c != nil {
		return Task{}, &ConflictError{Conflicting: *c}
	}

	t := Task{
		ID:          s.newID(),
		Description: cand.Description,
		Start:       cand.Start,
		End:         cand.End,
		Priority:    priority,
		Status:      StatusPending,
		CreatedAt:   s.now(),
	}
	s.st.insert(t)

	s.log.Debug("task added",
		logx.String("id", t.ID),
		logx.String("window", t.Start.String()+"-"+t.End.String()),
		logx.String("priority", t.Priority.String()))
	s.publish(eventbus.TopicTaskAdded, t)
	return t, nil
}

// TaskPatch carries the fields EditTask should change; nil fields keep the
// task's current value.
type TaskPatch struct {
	Description *string
	Start       *string // "HH:mm"
	End         *string // "HH:mm"
	Priority    *Priority
}

// EditTask re-validates the merged candidate and re-runs conflict detection
// against all other tasks (the edited task is excluded, so re-saving a task
// with its current times never conflicts with itself).
func (s *Service) EditTask(id string, patch TaskPatch) (Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur, ok := s.st.get(id)
	if !ok {
		return Task{}, &NotFoundError{ID: id}
	}

	desc := cur.Description
	if patch.Description != nil {
		desc = *patch.Description
	}
	start := cur.Start.String()
	if patch.Start != nil {
		start = *patch.Start
	}
	end := cur.End.String()
	if patch.End != nil {
		end = *patch.End
	}

	cand, err := Validate(desc, start, end)
	if err != nil {
		return Task{}, err
	}
	if c := FindConflict(cand.Start, cand.End, s.st.tasks, id); c != nil {
		return Task{}, &ConflictError{Conflicting: *c}
	}

	next := cur
	next.Description = cand.Description
	next.Start = cand.Start
	next.End = cand.End
	if patch.Priority != nil {
		next.Priority = *patch.Priority
	}
	s.st.replace(next)

	s.log.Debug("task edited",
		logx.String("id", next.ID),
		logx.String("window", next.Start.String()+"-"+next.End.String()))
	s.publish(eventbus.TopicTaskEdited, next)
	return next, nil
}

// MarkComplete transitions the task to COMPLETED. Completing an already
// completed task is a no-op success: the unchanged task is returned and no
// event is published.
func (s *Service) MarkComplete(id string) (Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur, ok := s.st.get(id)
	if !ok {
		return Task{}, &NotFoundError{ID: id}
	}
	if cur.Status == StatusCompleted {
		return cur, nil
	}

	cur.Status = StatusCompleted
	s.st.replace(cur)

	s.log.Debug("task completed", logx.String("id", cur.ID))
	s.publish(eventbus.TopicTaskCompleted, cur)
	return cur, nil
}

// RemoveTask deletes the task from the store.
func (s *Service) RemoveTask(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur, ok := s.st.get(id)
	if !ok {
		return &NotFoundError{ID: id}
	}
	s.st.remove(id)

	s.log.Debug("task removed", logx.String("id", id))
	s.publish(eventbus.TopicTaskRemoved, cur)
	return nil
}

// Task returns a copy of a single task by id.
func (s *Service) Task(id string) (Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.st.get(id)
	if !ok {
		return Task{}, &NotFoundError{ID: id}
	}
	return t, nil
}

// Tasks returns a snapshot of the schedule, sorted by start time ascending.
// The slice is a copy; analyzers and exporters can do what they like with it.
func (s *Service) Tasks() []Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.st.snapshot()
}

// Len reports the number of tasks currently held.
func (s *Service) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.st.len()
}

func (s *Service) publish(topic string, t Task) {
	if s.bus == nil {
		return
	}
	s.bus.Publish(eventbus.Event{Type: topic, Data: TaskEvent{Action: topic, Task: t}})
}
