package course

import (
	"math"
	"sort"
)

type Stats struct {
	Enrolled        int `json:"enrolled"`
	OverallProgress int `json:"overallProgress"`
	HalfwayDone     int `json:"halfwayDone"`
	Completed       int `json:"completed"`
}

type Dashboard struct {
	Stats       Stats            `json:"stats"`
	Enrolled    []EnrolledCourse `json:"enrolled"`
	Recommended []Course         `json:"recommended"`
}

func (s *Store) Stats() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	st := Stats{Enrolled: len(s.enrolled)}
	if st.Enrolled == 0 {
		return st
	}

	var sum int
	for _, ec := range s.enrolled {
		sum += ec.Progress
		if ec.Progress >= 50 {
			st.HalfwayDone++
		}
		if ec.Progress == 100 {
			st.Completed++
		}
	}
	st.OverallProgress = int(math.Round(float64(sum) / float64(st.Enrolled)))
	return st
}

// Recommended returns up to n courses the caller is not enrolled in, best
// rated first.
func (s *Store) Recommended(n int) []Course {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Course, 0, len(s.courses))
	for _, c := range s.courses {
		if s.enrolledAt(c.ID) < 0 {
			out = append(out, c)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Rating > out[j].Rating
	})

	if n >= 0 && n < len(out) {
		out = out[:n]
	}
	return out
}
