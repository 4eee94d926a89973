package lesson

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/alexedwards/scs/v2"
	"github.com/irsalhamdi/course-catalog/api/web"
	"github.com/irsalhamdi/course-catalog/api/weberr"
	"github.com/irsalhamdi/course-catalog/core/course"
	"github.com/irsalhamdi/course-catalog/validate"
)

const quizShownKey = "lesson.quiz_shown"

type CurriculumView struct {
	Sections     Curriculum `json:"sections"`
	TotalLessons int        `json:"totalLessons"`
	TotalMinutes int        `json:"totalMinutes"`
}

type Playback struct {
	Position *float64 `json:"position" validate:"required,gte=0"`
}

type PlaybackResult struct {
	ShowQuiz bool  `json:"showQuiz"`
	Quiz     *Quiz `json:"quiz,omitempty"`
}

type Answer struct {
	Option *int `json:"option" validate:"required,gte=0"`
}

type AnswerResult struct {
	Correct bool `json:"correct"`
}

func HandleCurriculum(store *course.Store, cur Curriculum) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		id := web.Param(r, "id")
		if _, ok := store.Fetch(id); !ok {
			return weberr.NotFound(fmt.Errorf("course[%s] not found", id))
		}

		v := CurriculumView{
			Sections:     cur,
			TotalLessons: cur.TotalLessons(),
			TotalMinutes: cur.TotalMinutes(),
		}
		return web.Respond(ctx, w, v, http.StatusOK)
	}
}

func HandleTranscript(tr Transcript) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		at := r.URL.Query().Get("at")
		if at == "" {
			return web.Respond(ctx, w, tr, http.StatusOK)
		}

		sec, err := strconv.ParseFloat(at, 64)
		if err != nil || sec < 0 {
			return weberr.BadRequest(fmt.Errorf("invalid transcript time %q", at))
		}

		e, ok := tr.At(sec)
		if !ok {
			return weberr.NotFound(fmt.Errorf("no transcript entry at %v", sec))
		}
		return web.Respond(ctx, w, e, http.StatusOK)
	}
}

// HandlePlayback is polled by the player with the current position. The quiz
// is returned once per session.
func HandlePlayback(session *scs.SessionManager, q Quiz) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		var pb Playback
		if err := web.Decode(w, r, &pb); err != nil {
			return weberr.BadRequest(fmt.Errorf("unable to decode payload: %w", err))
		}

		if err := validate.Check(pb); err != nil {
			return weberr.Unprocessable(err)
		}

		cp := NewCheckpoint(q, session.GetBool(ctx, quizShownKey))
		if !cp.Observe(*pb.Position) {
			return web.Respond(ctx, w, PlaybackResult{}, http.StatusOK)
		}

		session.Put(ctx, quizShownKey, true)
		return web.Respond(ctx, w, PlaybackResult{ShowQuiz: true, Quiz: &cp.Quiz}, http.StatusOK)
	}
}

func HandleAnswer(q Quiz) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		var a Answer
		if err := web.Decode(w, r, &a); err != nil {
			return weberr.BadRequest(fmt.Errorf("unable to decode payload: %w", err))
		}

		if err := validate.Check(a); err != nil {
			return weberr.Unprocessable(err)
		}

		if !q.ValidOption(*a.Option) {
			return weberr.Unprocessable(errors.New("option out of range"))
		}

		return web.Respond(ctx, w, AnswerResult{Correct: q.Correct(*a.Option)}, http.StatusOK)
	}
}
