// Package lesson holds the course player helpers: curriculum outline,
// transcript lookup, the quiz checkpoint shown during playback and YouTube
// URL parsing.
package lesson

import (
	"regexp"
	"sort"
	"strconv"
)

type ItemType string

const (
	ItemVideo    ItemType = "video"
	ItemPractice ItemType = "practice"
	ItemQuiz     ItemType = "quiz"
	ItemReading  ItemType = "reading"
	ItemModule   ItemType = "module"
)

type Item struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Duration string   `json:"duration"`
	Type     ItemType `json:"type"`
}

type Section struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Duration  string   `json:"duration"`
	Type      ItemType `json:"type"`
	IsPreview bool     `json:"isPreview"`
	Items     []Item   `json:"items"`
}

type Curriculum []Section

var minutesRe = regexp.MustCompile(`\d+`)

func (c Curriculum) TotalLessons() int {
	var n int
	for _, s := range c {
		n += len(s.Items)
	}
	return n
}

// TotalMinutes adds the leading number of every item duration. Durations
// without a number count as zero.
func (c Curriculum) TotalMinutes() int {
	var total int
	for _, s := range c {
		for _, it := range s.Items {
			m := minutesRe.FindString(it.Duration)
			if m == "" {
				continue
			}
			n, err := strconv.Atoi(m)
			if err != nil {
				continue
			}
			total += n
		}
	}
	return total
}

type Entry struct {
	Time float64 `json:"time"`
	Text string  `json:"text"`
}

// Transcript is a list of entries ordered by start time.
type Transcript []Entry

func NewTranscript(entries []Entry) Transcript {
	t := make(Transcript, len(entries))
	copy(t, entries)
	sort.SliceStable(t, func(i, j int) bool { return t[i].Time < t[j].Time })
	return t
}

// At returns the entry being spoken at sec.
func (t Transcript) At(sec float64) (Entry, bool) {
	i := sort.Search(len(t), func(i int) bool { return t[i].Time > sec })
	if i == 0 {
		return Entry{}, false
	}
	return t[i-1], true
}

var youtubeRe = regexp.MustCompile(`^.*(youtu\.be/|v/|u/\w/|embed/|watch\?v=|&v=)([^#&?]*).*`)

// VideoID extracts the 11 character id from a YouTube URL.
func VideoID(url string) (string, bool) {
	m := youtubeRe.FindStringSubmatch(url)
	if m == nil || len(m[2]) != 11 {
		return "", false
	}
	return m[2], true
}
