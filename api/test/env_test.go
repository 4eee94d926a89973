package test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alexedwards/scs/v2"
	"github.com/gorilla/mux"
	"github.com/irsalhamdi/course-catalog/api"
	"github.com/irsalhamdi/course-catalog/api/background"
	"github.com/irsalhamdi/course-catalog/core/course"
	"github.com/irsalhamdi/course-catalog/core/lesson"
	"github.com/irsalhamdi/course-catalog/learnapi"
	"github.com/irsalhamdi/course-catalog/rate"
	"github.com/sirupsen/logrus"
)

const (
	UserEmail = "john.smith@example.com"
	UserPass  = "password"
)

type TestEnv struct {
	*httptest.Server
	Store  *course.Store
	Remote *mockLearning
}

func NewTestEnv(t *testing.T, loginBurst int) *TestEnv {
	t.Helper()

	log := logrus.New()
	log.SetOutput(io.Discard)

	remote := newMockLearning()
	remoteSrv := httptest.NewServer(remote.handle())
	t.Cleanup(remoteSrv.Close)

	store := course.NewStore(course.SeedCourses(),
		course.WithEnrollments(course.SeedEnrollments(course.SeedCourses())),
	)

	bg := background.New(log)

	limiter := rate.NewLimiter(loginBurst, 10, rate.Every(time.Hour))
	t.Cleanup(limiter.Close)

	h := api.APIMux(api.APIConfig{
		Log:          log,
		Store:        store,
		Session:      scs.New(),
		Background:   bg,
		Remote:       learnapi.New(learnapi.Config{BaseURL: remoteSrv.URL, Timeout: 5 * time.Second}),
		LoginLimiter: limiter,
		TokenLength:  32,
		Curriculum:   lesson.SampleCurriculum(),
		Transcript:   lesson.SampleTranscript(),
		Quiz:         lesson.SampleQuiz(),
	})

	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatal(err)
	}
	srv.Client().Jar = jar

	return &TestEnv{Server: srv, Store: store, Remote: remote}
}

// Do sends a JSON request and decodes the JSON response into out when out is
// not nil. It returns the response status code.
func (env *TestEnv) Do(t *testing.T, method, path string, body, out any, headers ...string) int {
	t.Helper()

	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatal(err)
		}
		rd = bytes.NewReader(b)
	}

	r, err := http.NewRequest(method, env.URL+path, rd)
	if err != nil {
		t.Fatal(err)
	}
	r.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(headers); i += 2 {
		r.Header.Set(headers[i], headers[i+1])
	}

	w, err := env.Client().Do(r)
	if err != nil {
		t.Fatal(err)
	}
	defer w.Body.Close()

	if out != nil && w.StatusCode < http.StatusBadRequest && w.StatusCode != http.StatusNoContent {
		if err := json.NewDecoder(w.Body).Decode(out); err != nil {
			t.Fatalf("%s %s: cannot decode response: %v", method, path, err)
		}
	}

	return w.StatusCode
}

func (env *TestEnv) Login(t *testing.T) {
	t.Helper()

	cred := map[string]string{"email": UserEmail, "password": UserPass}
	if code := env.Do(t, http.MethodPost, "/auth/login", cred, nil); code != http.StatusOK {
		t.Fatalf("cannot login: status code %d", code)
	}
}

func (env *TestEnv) Logout(t *testing.T) {
	t.Helper()

	if code := env.Do(t, http.MethodPost, "/auth/logout", nil, nil); code != http.StatusNoContent {
		t.Fatalf("cannot logout: status code %d", code)
	}
}

type mockLearning struct {
	logins chan learnapi.Credentials
}

func newMockLearning() *mockLearning {
	return &mockLearning{logins: make(chan learnapi.Credentials, 16)}
}

func respond(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (m *mockLearning) handle() http.Handler {
	r := mux.NewRouter()

	r.HandleFunc("/user/login", func(w http.ResponseWriter, r *http.Request) {
		var cred learnapi.Credentials
		if err := json.NewDecoder(r.Body).Decode(&cred); err != nil {
			respond(w, http.StatusBadRequest, nil)
			return
		}
		m.logins <- cred
		respond(w, http.StatusOK, learnapi.Token{AccessToken: "remote-token"})
	}).Methods(http.MethodPost)

	r.HandleFunc("/learning/specialisations", func(w http.ResponseWriter, r *http.Request) {
		respond(w, http.StatusOK, []learnapi.Specialisation{{ID: 1, Name: "Web Development"}, {ID: 2, Name: "Data Science"}})
	}).Methods(http.MethodGet)

	r.HandleFunc("/learning/specialisations/{id}", func(w http.ResponseWriter, r *http.Request) {
		id := mux.Vars(r)["id"]
		if id != "1" {
			respond(w, http.StatusNotFound, map[string]string{"detail": "Specialisation not found"})
			return
		}
		respond(w, http.StatusOK, learnapi.Specialisation{ID: 1, Name: "Web Development"})
	}).Methods(http.MethodGet)

	r.HandleFunc("/learning/courses/{id}", func(w http.ResponseWriter, r *http.Request) {
		respond(w, http.StatusOK, learnapi.Course{
			ID:             7,
			Name:           fmt.Sprintf("course %s", mux.Vars(r)["id"]),
			Specialisation: &learnapi.Specialisation{ID: 1, Name: "Web Development"},
		})
	}).Methods(http.MethodGet)

	r.HandleFunc("/learning/contents/{id}", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer remote-token" {
			respond(w, http.StatusForbidden, map[string]string{"detail": "You are not enrolled in this course"})
			return
		}
		respond(w, http.StatusOK, []learnapi.Content{{ID: 1, CourseID: 7, ContentType: "video", ContentURL: "https://youtu.be/dQw4w9WgXcQ"}})
	}).Methods(http.MethodGet)

	return r
}
