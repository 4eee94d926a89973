package course

import (
	"strings"
	"sync"
	"time"
)

// Filter narrows a catalog listing. Zero fields, and the value All for
// Category and Level, match every course.
type Filter struct {
	Category string
	Search   string
	Level    Level
}

// Store holds the course catalog and the caller's enrollments.
type Store struct {
	mu       sync.RWMutex
	courses  []Course
	index    map[string]int
	enrolled []EnrolledCourse
	now      func() time.Time
}

type Option func(*Store)

// WithClock sets the clock used to stamp new enrollments.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithEnrollments preloads the enrollment set. Entries whose course is not
// in the catalog, or that repeat an id, are dropped.
func WithEnrollments(ecs []EnrolledCourse) Option {
	return func(s *Store) {
		for _, ec := range ecs {
			if _, ok := s.index[ec.ID]; !ok || s.enrolledAt(ec.ID) >= 0 {
				continue
			}
			s.enrolled = append(s.enrolled, ec)
		}
	}
}

func NewStore(courses []Course, opts ...Option) *Store {
	s := &Store{
		courses: make([]Course, 0, len(courses)),
		index:   make(map[string]int, len(courses)),
		now:     time.Now,
	}

	for _, c := range courses {
		if _, ok := s.index[c.ID]; ok {
			continue
		}
		s.index[c.ID] = len(s.courses)
		s.courses = append(s.courses, c)
	}

	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) List() []Course {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Course, len(s.courses))
	copy(out, s.courses)
	return out
}

func (s *Store) Fetch(id string) (Course, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.index[id]
	if !ok {
		return Course{}, false
	}
	return s.courses[i], true
}

func (s *Store) Filter(f Filter) []Course {
	s.mu.RLock()
	defer s.mu.RUnlock()

	term := strings.ToLower(f.Search)

	out := make([]Course, 0)
	for _, c := range s.courses {
		if f.Category != "" && f.Category != All && c.Category != f.Category {
			continue
		}
		if f.Level != "" && f.Level != All && c.Level != f.Level {
			continue
		}
		if term != "" && !matches(c, term) {
			continue
		}
		out = append(out, c)
	}
	return out
}

func matches(c Course, term string) bool {
	for _, field := range []string{c.Title, c.Description, c.Instructor, c.Institution} {
		if strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}
	return false
}

// Enroll adds the course to the enrollment set with no progress and today's
// start date. Already enrolled or unknown ids leave the set unchanged.
func (s *Store) Enroll(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.enrolledAt(id) >= 0 {
		return
	}

	i, ok := s.index[id]
	if !ok {
		return
	}

	s.enrolled = append(s.enrolled, EnrolledCourse{
		Course:    s.courses[i],
		Progress:  0,
		StartDate: DateOf(s.now()),
	})
}

func (s *Store) Unenroll(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.enrolledAt(id)
	if i < 0 {
		return
	}
	s.enrolled = append(s.enrolled[:i:i], s.enrolled[i+1:]...)
}

func (s *Store) Enrolled() []EnrolledCourse {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]EnrolledCourse, len(s.enrolled))
	copy(out, s.enrolled)
	return out
}

func (s *Store) IsEnrolled(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.enrolledAt(id) >= 0
}

// UpdateProgress sets the progress of an enrolled course, clamped to
// [0, 100]. It reports false when the course is not enrolled.
func (s *Store) UpdateProgress(id string, progress int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.enrolledAt(id)
	if i < 0 {
		return false
	}

	switch {
	case progress < 0:
		progress = 0
	case progress > 100:
		progress = 100
	}
	s.enrolled[i].Progress = progress
	return true
}

// enrolledAt must be called with s.mu held.
func (s *Store) enrolledAt(id string) int {
	for i, ec := range s.enrolled {
		if ec.ID == id {
			return i
		}
	}
	return -1
}

// FilterCategories returns the categories containing term, ignoring case.
func FilterCategories(term string) []string {
	term = strings.ToLower(term)

	out := make([]string, 0, len(Categories))
	for _, c := range Categories {
		if strings.Contains(strings.ToLower(c), term) {
			out = append(out, c)
		}
	}
	return out
}
