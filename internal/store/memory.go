package store

import (
	"context"
	"sort"
	"sync"
	"time"
)

// MemoryStore is the in-memory backend. It implements CourseRepo,
// ProgressRepo, and EventRepo behind one RWMutex, which is all the
// serialization a single-process deployment needs.
type MemoryStore struct {
	mu        sync.RWMutex
	courses   map[string]*Course
	questions map[string][]Question    // courseID → ordered questions
	progress  map[string]*UserProgress // progressID → record
	events    []GenerationEvent
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		courses:   make(map[string]*Course),
		questions: make(map[string][]Question),
		progress:  make(map[string]*UserProgress),
	}
}

func (s *MemoryStore) CreateCourse(_ context.Context, c *Course) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if c.ID == "" {
		c.ID = NewID()
	}
	now := time.Now()
	c.CreatedAt = now
	c.UpdatedAt = now

	cp := *c
	s.courses[c.ID] = &cp
	return nil
}

func (s *MemoryStore) GetCourse(_ context.Context, id string) (*Course, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.courses[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *c
	return &cp, nil
}

func (s *MemoryStore) ListCourses(_ context.Context) ([]Course, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Course, 0, len(s.courses))
	for _, c := range s.courses {
		out = append(out, *c)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (s *MemoryStore) UpdateCourse(_ context.Context, c *Course) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.courses[c.ID]; !ok {
		return ErrNotFound
	}
	c.UpdatedAt = time.Now()
	cp := *c
	s.courses[c.ID] = &cp
	return nil
}

func (s *MemoryStore) CreateQuestions(_ context.Context, courseID string, qs []Question) ([]Question, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := make([]Question, len(qs))
	for i, q := range qs {
		q.ID = NewID()
		q.CourseID = courseID
		q.Order = i
		stored[i] = q
	}
	s.questions[courseID] = stored

	out := make([]Question, len(stored))
	copy(out, stored)
	return out, nil
}

func (s *MemoryStore) GetQuestions(_ context.Context, courseID string) ([]Question, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	qs := s.questions[courseID]
	out := make([]Question, len(qs))
	copy(out, qs)
	return out, nil
}

func (s *MemoryStore) CreateProgress(_ context.Context, p *UserProgress) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.findProgress(p.CourseID, p.SessionID) != nil {
		return ErrConflict
	}
	if p.ID == "" {
		p.ID = NewID()
	}
	now := time.Now()
	if p.StartedAt.IsZero() {
		p.StartedAt = now
	}
	p.LastAccessedAt = now

	cp := *p
	s.progress[p.ID] = &cp
	return nil
}

func (s *MemoryStore) GetProgress(_ context.Context, courseID, sessionID string) (*UserProgress, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p := s.findProgress(courseID, sessionID)
	if p == nil {
		return nil, ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (s *MemoryStore) UpdateProgress(_ context.Context, p *UserProgress) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.progress[p.ID]; !ok {
		return ErrNotFound
	}
	p.LastAccessedAt = time.Now()
	cp := *p
	s.progress[p.ID] = &cp
	return nil
}

func (s *MemoryStore) AddAttempt(_ context.Context, courseID, sessionID string, att QuestionAttempt) (*UserProgress, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.findProgress(courseID, sessionID)
	if p == nil {
		return nil, ErrNotFound
	}

	if att.AttemptedAt.IsZero() {
		att.AttemptedAt = time.Now()
	}
	p.Attempts = append(p.Attempts, att)
	p.CompletedQuestions = markCompleted(p.CompletedQuestions, att.QuestionID)
	p.Score = computeScore(p.Attempts, len(s.questions[courseID]))
	p.LastAccessedAt = time.Now()

	cp := *p
	return &cp, nil
}

func (s *MemoryStore) AppendGeneration(_ context.Context, ev GenerationEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, ev)
	return nil
}

// GenerationEvents returns a copy of the recorded events. For tests and
// the CLI event listing.
func (s *MemoryStore) GenerationEvents() []GenerationEvent {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]GenerationEvent, len(s.events))
	copy(out, s.events)
	return out
}

// findProgress scans for the (courseID, sessionID) record.
// Caller must hold the lock.
func (s *MemoryStore) findProgress(courseID, sessionID string) *UserProgress {
	for _, p := range s.progress {
		if p.CourseID == courseID && p.SessionID == sessionID {
			return p
		}
	}
	return nil
}
