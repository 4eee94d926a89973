package api

import (
	"context"
	"net/http"

	"github.com/alexedwards/scs/v2"
	"github.com/gorilla/mux"
	"github.com/irsalhamdi/course-catalog/api/background"
	"github.com/irsalhamdi/course-catalog/api/middleware"
	"github.com/irsalhamdi/course-catalog/api/web"
	"github.com/irsalhamdi/course-catalog/core/auth"
	"github.com/irsalhamdi/course-catalog/core/course"
	"github.com/irsalhamdi/course-catalog/core/learning"
	"github.com/irsalhamdi/course-catalog/core/lesson"
	"github.com/irsalhamdi/course-catalog/core/user"
	"github.com/irsalhamdi/course-catalog/rate"
	"github.com/sirupsen/logrus"
)

// Remote is the subset of the learning API client used by the handlers.
type Remote interface {
	auth.Remote
	learning.Remote
}

type APIConfig struct {
	CorsOrigin   string
	Log          logrus.FieldLogger
	Store        *course.Store
	Session      *scs.SessionManager
	Background   *background.Background
	Remote       Remote
	LoginLimiter *rate.Limiter
	TokenLength  int
	Curriculum   lesson.Curriculum
	Transcript   lesson.Transcript
	Quiz         lesson.Quiz
}

type api struct {
	*mux.Router
	mw  []web.Middleware
	log logrus.FieldLogger
}

func APIMux(cfg APIConfig) http.Handler {
	a := &api{
		Router: mux.NewRouter(),
		log:    cfg.Log,
	}

	a.mw = append(a.mw, auth.LoadAndSave(cfg.Session))
	a.mw = append(a.mw, middleware.RequestID())
	a.mw = append(a.mw, middleware.Logger(cfg.Log))
	a.mw = append(a.mw, middleware.Errors(cfg.Log))
	a.mw = append(a.mw, middleware.Panics())

	if cfg.CorsOrigin != "" {
		a.mw = append(a.mw, middleware.Cors(cfg.CorsOrigin))

		h := func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
			w.WriteHeader(http.StatusNoContent)
			return nil
		}

		a.Handle(http.MethodOptions, "/{path:.*}", h)
	}

	authen := auth.Authenticate(cfg.Session)

	a.Handle(http.MethodPost, "/auth/login", auth.HandleLogin(auth.LoginConfig{
		Session:     cfg.Session,
		Limiter:     cfg.LoginLimiter,
		Background:  cfg.Background,
		Remote:      cfg.Remote,
		TokenLength: cfg.TokenLength,
		Log:         cfg.Log,
	}))
	a.Handle(http.MethodPost, "/auth/signup", auth.HandleSignup(cfg.Session, cfg.TokenLength))
	a.Handle(http.MethodPost, "/auth/logout", auth.HandleLogout(cfg.Session))

	a.Handle(http.MethodGet, "/users/current", user.HandleShowCurrent(), authen)

	a.Handle(http.MethodGet, "/categories", course.HandleCategories())
	a.Handle(http.MethodGet, "/courses/{id}/curriculum", lesson.HandleCurriculum(cfg.Store, cfg.Curriculum))
	a.Handle(http.MethodGet, "/courses/{id}", course.HandleShow(cfg.Store))
	a.Handle(http.MethodGet, "/courses", course.HandleList(cfg.Store))

	a.Handle(http.MethodGet, "/enrollments", course.HandleListEnrolled(cfg.Store), authen)
	a.Handle(http.MethodPut, "/enrollments/{course_id}/progress", course.HandleUpdateProgress(cfg.Store), authen)
	a.Handle(http.MethodPut, "/enrollments/{course_id}", course.HandleEnroll(cfg.Store), authen)
	a.Handle(http.MethodDelete, "/enrollments/{course_id}", course.HandleUnenroll(cfg.Store), authen)
	a.Handle(http.MethodGet, "/dashboard", course.HandleDashboard(cfg.Store), authen)

	a.Handle(http.MethodGet, "/lessons/transcript", lesson.HandleTranscript(cfg.Transcript))
	a.Handle(http.MethodPut, "/lessons/playback", lesson.HandlePlayback(cfg.Session, cfg.Quiz), authen)
	a.Handle(http.MethodPost, "/lessons/quiz", lesson.HandleAnswer(cfg.Quiz), authen)

	a.Handle(http.MethodGet, "/specialisations/{id}", learning.HandleShowSpecialisation(cfg.Remote))
	a.Handle(http.MethodGet, "/specialisations", learning.HandleListSpecialisations(cfg.Remote))
	a.Handle(http.MethodGet, "/learning/courses/{id}", learning.HandleShowCourse(cfg.Remote))
	a.Handle(http.MethodGet, "/learning/contents/{id}", learning.HandleListContents(cfg.Remote), authen)
	a.Handle(http.MethodPost, "/code/submit", learning.HandleSubmitCode(cfg.Remote), authen)
	a.Handle(http.MethodGet, "/assignments/{id}/tests", learning.HandleAssignmentTests(cfg.Remote), authen)

	return a.Router
}

func (a *api) Handle(method string, path string, handler web.Handler, mw ...web.Middleware) {

	handler = web.WrapMiddleware(mw, handler)

	handler = web.WrapMiddleware(a.mw, handler)

	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

		ctx := r.Context()

		if err := handler(ctx, w, r); err != nil {

			a.log.WithFields(logrus.Fields{
				"req_id":  middleware.ContextRequestID(ctx),
				"message": err,
			}).Error("ERROR")
		}
	})

	a.Router.Handle(path, h).Methods(method)
}
