package lesson

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCurriculumTotals(t *testing.T) {
	c := SampleCurriculum()

	if got := c.TotalLessons(); got != 16 {
		t.Fatalf("expected 16 lessons, got %d", got)
	}
	if got := c.TotalMinutes(); got != 180 {
		t.Fatalf("expected 180 minutes, got %d", got)
	}

	c = Curriculum{{Items: []Item{{Duration: "self paced"}, {Duration: "12 mins 30 secs"}}}}
	if got := c.TotalMinutes(); got != 12 {
		t.Fatalf("expected 12 minutes, got %d", got)
	}
}

func TestTranscriptAt(t *testing.T) {
	tr := NewTranscript([]Entry{
		{Time: 30, Text: "c"},
		{Time: 5, Text: "a"},
		{Time: 15, Text: "b"},
	})

	tests := []struct {
		sec  float64
		want string
		ok   bool
	}{
		{0, "", false},
		{4.9, "", false},
		{5, "a", true},
		{14.99, "a", true},
		{15, "b", true},
		{29, "b", true},
		{300, "c", true},
	}

	for _, tt := range tests {
		e, ok := tr.At(tt.sec)
		if ok != tt.ok || e.Text != tt.want {
			t.Errorf("At(%v): expected (%q, %v), got (%q, %v)", tt.sec, tt.want, tt.ok, e.Text, ok)
		}
	}
}

func TestCheckpointFiresOnce(t *testing.T) {
	cp := NewCheckpoint(SampleQuiz(), false)

	positions := []float64{0, 12, 29.9, 30, 31, 45, 10}
	expected := []bool{false, false, false, true, false, false, false}

	for i, pos := range positions {
		if got := cp.Observe(pos); got != expected[i] {
			t.Fatalf("iteration %d: expected %v, but got %v", i, expected[i], got)
		}
	}

	if !cp.Shown() {
		t.Fatal("expected checkpoint to be marked as shown")
	}
}

func TestCheckpointAlreadyShown(t *testing.T) {
	cp := NewCheckpoint(SampleQuiz(), true)
	if cp.Observe(60) {
		t.Fatal("expected no quiz once it was shown")
	}
}

func TestQuizCorrect(t *testing.T) {
	q := SampleQuiz()

	got := []bool{q.Correct(-1), q.Correct(0), q.Correct(1), q.Correct(4)}
	if diff := cmp.Diff([]bool{false, true, false, false}, got); diff != "" {
		t.Fatalf("answers mismatch (-want +got):\n%s", diff)
	}
}

func TestVideoID(t *testing.T) {
	tests := []struct {
		url  string
		want string
		ok   bool
	}{
		{"https://www.youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ", true},
		{"https://www.youtube.com/watch?feature=share&v=dQw4w9WgXcQ", "dQw4w9WgXcQ", true},
		{"https://youtu.be/dQw4w9WgXcQ", "dQw4w9WgXcQ", true},
		{"https://www.youtube.com/embed/dQw4w9WgXcQ?autoplay=1", "dQw4w9WgXcQ", true},
		{"https://www.youtube.com/v/dQw4w9WgXcQ", "dQw4w9WgXcQ", true},
		{"https://www.youtube.com/watch?v=short", "", false},
		{"https://example.com/video.mp4", "", false},
	}

	for _, tt := range tests {
		got, ok := VideoID(tt.url)
		if got != tt.want || ok != tt.ok {
			t.Errorf("VideoID(%q): expected (%q, %v), got (%q, %v)", tt.url, tt.want, tt.ok, got, ok)
		}
	}
}
