package lesson

type Quiz struct {
	TimePoint     float64  `json:"timePoint"`
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"-"`
}

// Correct reports whether option is the right answer. Options outside the
// list are never correct.
func (q Quiz) Correct(option int) bool {
	return option >= 0 && option < len(q.Options) && option == q.CorrectAnswer
}

func (q Quiz) ValidOption(option int) bool {
	return option >= 0 && option < len(q.Options)
}

// Checkpoint decides when the quiz overlay appears during playback. It fires
// once, the first time the position reaches the quiz time point.
type Checkpoint struct {
	Quiz  Quiz
	shown bool
}

func NewCheckpoint(q Quiz, shown bool) *Checkpoint {
	return &Checkpoint{Quiz: q, shown: shown}
}

// Observe records the current playback position in seconds and reports
// whether the quiz must be shown now.
func (c *Checkpoint) Observe(position float64) bool {
	if c.shown || position < c.Quiz.TimePoint {
		return false
	}
	c.shown = true
	return true
}

func (c *Checkpoint) Shown() bool {
	return c.shown
}
