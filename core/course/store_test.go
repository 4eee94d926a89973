package course

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

var today = time.Date(2024, time.March, 9, 17, 30, 0, 0, time.UTC)

func newTestStore(ecs ...EnrolledCourse) *Store {
	return NewStore(SeedCourses(),
		WithClock(func() time.Time { return today }),
		WithEnrollments(ecs),
	)
}

func ids(cs []Course) []string {
	out := make([]string, 0, len(cs))
	for _, c := range cs {
		out = append(out, c.ID)
	}
	return out
}

func enrolledIDs(ecs []EnrolledCourse) []string {
	out := make([]string, 0, len(ecs))
	for _, ec := range ecs {
		out = append(out, ec.ID)
	}
	return out
}

func TestList(t *testing.T) {
	s := newTestStore()

	if diff := cmp.Diff(SeedCourses(), s.List()); diff != "" {
		t.Fatalf("list mismatch (-want +got):\n%s", diff)
	}
}

func TestNewStoreSkipsDuplicateIDs(t *testing.T) {
	seed := SeedCourses()
	dup := seed[1]
	dup.ID = seed[0].ID

	s := NewStore(append(seed, dup))

	if got := len(s.List()); got != len(seed) {
		t.Fatalf("expected %d courses, got %d", len(seed), got)
	}
	c, _ := s.Fetch(seed[0].ID)
	if c.Title != seed[0].Title {
		t.Fatalf("expected first course to win, got %q", c.Title)
	}
}

func TestFetch(t *testing.T) {
	s := newTestStore()

	c, ok := s.Fetch("2")
	if !ok {
		t.Fatal("expected course 2 to exist")
	}
	if c.Title != "Introduction to React" {
		t.Fatalf("unexpected title %q", c.Title)
	}

	for _, id := range []string{"", "0", "9", "999", "abc"} {
		if _, ok := s.Fetch(id); ok {
			t.Errorf("expected course[%s] to be absent", id)
		}
	}
}

func TestFilter(t *testing.T) {
	tests := []struct {
		name string
		f    Filter
		want []string
	}{
		{"no filter", Filter{}, []string{"1", "2", "3", "4", "5", "6", "7", "8"}},
		{"all category", Filter{Category: All}, []string{"1", "2", "3", "4", "5", "6", "7", "8"}},
		{"category", Filter{Category: "Business"}, []string{"3", "4"}},
		{"category is case sensitive", Filter{Category: "business"}, []string{}},
		{"search title", Filter{Search: "react"}, []string{"2"}},
		{"search instructor", Filter{Search: "ANDREW"}, []string{"1"}},
		{"search institution", Filter{Search: "hopkins"}, []string{"8"}},
		{"search description", Filter{Search: "typography"}, []string{"7"}},
		{"category and search", Filter{Category: "Computer Science", Search: "algorithm"}, []string{"6"}},
		{"category and search disjoint", Filter{Category: "Health", Search: "react"}, []string{}},
		{"level", Filter{Level: Advanced}, []string{"3"}},
		{"all level", Filter{Level: All, Category: "Business"}, []string{"3", "4"}},
		{"no match", Filter{Search: "quantum chromodynamics"}, []string{}},
	}

	s := newTestStore()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.Filter(tt.f)
			if got == nil {
				t.Fatal("expected non-nil slice")
			}
			if diff := cmp.Diff(tt.want, ids(got)); diff != "" {
				t.Fatalf("filter mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFilterCategoryMatchesOnlyThatCategory(t *testing.T) {
	s := newTestStore()

	for _, c := range s.Filter(Filter{Category: "Business"}) {
		if c.Category != "Business" {
			t.Fatalf("course[%s] has category %q", c.ID, c.Category)
		}
	}
}

func TestEnroll(t *testing.T) {
	s := newTestStore()

	s.Enroll("1")
	s.Enroll("1")

	got := s.Enrolled()
	if len(got) != 1 {
		t.Fatalf("expected one enrollment, got %d", len(got))
	}

	c, _ := s.Fetch("1")
	want := EnrolledCourse{Course: c, Progress: 0, StartDate: DateOf(today)}
	if diff := cmp.Diff(want, got[0]); diff != "" {
		t.Fatalf("enrollment mismatch (-want +got):\n%s", diff)
	}
	if got[0].StartDate.String() != "2024-03-09" {
		t.Fatalf("unexpected start date %s", got[0].StartDate)
	}
}

func TestEnrollUnknownCourse(t *testing.T) {
	s := newTestStore(SeedEnrollments(SeedCourses())...)
	before := s.Enrolled()

	s.Enroll("999")

	if diff := cmp.Diff(before, s.Enrolled()); diff != "" {
		t.Fatalf("enrollments changed (-want +got):\n%s", diff)
	}
}

func TestUnenroll(t *testing.T) {
	s := newTestStore(SeedEnrollments(SeedCourses())...)
	s.Enroll("3")

	s.Unenroll("2")
	if diff := cmp.Diff([]string{"1", "6", "3"}, enrolledIDs(s.Enrolled())); diff != "" {
		t.Fatalf("unenrolling a missing course changed the set (-want +got):\n%s", diff)
	}

	s.Unenroll("6")
	if diff := cmp.Diff([]string{"1", "3"}, enrolledIDs(s.Enrolled())); diff != "" {
		t.Fatalf("unexpected enrollments (-want +got):\n%s", diff)
	}
}

func TestEnrollRoundTrip(t *testing.T) {
	s := newTestStore(SeedEnrollments(SeedCourses())...)
	before := s.Enrolled()

	s.Enroll("2")
	if !s.IsEnrolled("2") {
		t.Fatal("expected course 2 to be enrolled")
	}
	s.Unenroll("2")

	if diff := cmp.Diff(before, s.Enrolled()); diff != "" {
		t.Fatalf("round trip changed the set (-want +got):\n%s", diff)
	}
}

func TestEnrolledReturnsCopy(t *testing.T) {
	s := newTestStore(SeedEnrollments(SeedCourses())...)

	got := s.Enrolled()
	got[0].Progress = 99

	if s.Enrolled()[0].Progress == 99 {
		t.Fatal("mutating the returned slice changed the store")
	}
}

func TestWithEnrollmentsKeepsSubset(t *testing.T) {
	seed := SeedEnrollments(SeedCourses())
	ghost := seed[0]
	ghost.ID = "42"

	s := newTestStore(seed[0], seed[0], ghost, seed[1])

	if diff := cmp.Diff([]string{"1", "6"}, enrolledIDs(s.Enrolled())); diff != "" {
		t.Fatalf("unexpected enrollments (-want +got):\n%s", diff)
	}
}

func TestUpdateProgress(t *testing.T) {
	s := newTestStore(SeedEnrollments(SeedCourses())...)

	tests := []struct {
		id       string
		progress int
		ok       bool
		want     int
	}{
		{"1", 80, true, 80},
		{"1", 140, true, 100},
		{"6", -5, true, 0},
		{"2", 10, false, 0},
	}

	for _, tt := range tests {
		if ok := s.UpdateProgress(tt.id, tt.progress); ok != tt.ok {
			t.Fatalf("update[%s]: expected %v, got %v", tt.id, tt.ok, ok)
		}
		if !tt.ok {
			continue
		}
		for _, ec := range s.Enrolled() {
			if ec.ID == tt.id && ec.Progress != tt.want {
				t.Fatalf("update[%s]: expected progress %d, got %d", tt.id, tt.want, ec.Progress)
			}
		}
	}
}

func TestFilterCategories(t *testing.T) {
	if diff := cmp.Diff(Categories, FilterCategories("")); diff != "" {
		t.Fatalf("categories mismatch (-want +got):\n%s", diff)
	}

	want := []string{"Data Science", "Computer Science", "Social Sciences"}
	if diff := cmp.Diff(want, FilterCategories("SCIENCE")); diff != "" {
		t.Fatalf("categories mismatch (-want +got):\n%s", diff)
	}
}

func TestPriceJSON(t *testing.T) {
	tests := []struct {
		price Price
		raw   string
	}{
		{FreePrice(), `"Free"`},
		{USD(49), `49`},
	}

	for _, tt := range tests {
		b, err := json.Marshal(tt.price)
		if err != nil {
			t.Fatal(err)
		}
		if string(b) != tt.raw {
			t.Fatalf("expected %s, got %s", tt.raw, b)
		}

		var p Price
		if err := json.Unmarshal(b, &p); err != nil {
			t.Fatal(err)
		}
		if p != tt.price {
			t.Fatalf("expected %v, got %v", tt.price, p)
		}
	}

	var p Price
	if err := json.Unmarshal([]byte(`"Cheap"`), &p); err == nil {
		t.Fatal("expected an error for an unknown price label")
	}
}
