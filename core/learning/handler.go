// Package learning exposes the remote learning API through this service.
package learning

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/irsalhamdi/course-catalog/api/web"
	"github.com/irsalhamdi/course-catalog/api/weberr"
	"github.com/irsalhamdi/course-catalog/learnapi"
	"github.com/irsalhamdi/course-catalog/validate"
)

type Remote interface {
	Specialisations(ctx context.Context) ([]learnapi.Specialisation, error)
	Specialisation(ctx context.Context, id string) (learnapi.Specialisation, error)
	Course(ctx context.Context, id string) (learnapi.Course, error)
	Contents(ctx context.Context, courseID string) ([]learnapi.Content, error)
	SubmitCode(ctx context.Context, s learnapi.Submission) (learnapi.Execution, error)
	AssignmentTests(ctx context.Context, assignmentID string) (json.RawMessage, error)
}

// withBearer forwards the caller's bearer token to the remote API.
func withBearer(ctx context.Context, r *http.Request) context.Context {
	h := r.Header.Get("Authorization")
	if tok, ok := strings.CutPrefix(h, "Bearer "); ok && tok != "" {
		return learnapi.WithToken(ctx, tok)
	}
	return ctx
}

func remoteErr(err error, what string) error {
	if errors.Is(err, learnapi.ErrNotFound) {
		return weberr.NotFound(fmt.Errorf("%s: %w", what, err))
	}

	var apiErr *learnapi.Error
	if errors.As(err, &apiErr) && apiErr.StatusCode < http.StatusInternalServerError {
		return weberr.NewError(err, http.StatusText(apiErr.StatusCode), apiErr.StatusCode)
	}

	return fmt.Errorf("%s: %w", what, err)
}

func HandleListSpecialisations(api Remote) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		specs, err := api.Specialisations(withBearer(ctx, r))
		if err != nil {
			return remoteErr(err, "fetching specialisations")
		}

		return web.Respond(ctx, w, specs, http.StatusOK)
	}
}

func HandleShowSpecialisation(api Remote) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		id := web.Param(r, "id")

		spec, err := api.Specialisation(withBearer(ctx, r), id)
		if err != nil {
			return remoteErr(err, fmt.Sprintf("fetching specialisation[%s]", id))
		}

		return web.Respond(ctx, w, spec, http.StatusOK)
	}
}

func HandleShowCourse(api Remote) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		id := web.Param(r, "id")

		c, err := api.Course(withBearer(ctx, r), id)
		if err != nil {
			return remoteErr(err, fmt.Sprintf("fetching course details[%s]", id))
		}

		return web.Respond(ctx, w, c, http.StatusOK)
	}
}

func HandleListContents(api Remote) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		id := web.Param(r, "id")

		contents, err := api.Contents(withBearer(ctx, r), id)
		if err != nil {
			return remoteErr(err, fmt.Sprintf("fetching contents of course[%s]", id))
		}

		return web.Respond(ctx, w, contents, http.StatusOK)
	}
}

func HandleSubmitCode(api Remote) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		var s learnapi.Submission
		if err := web.Decode(w, r, &s); err != nil {
			return weberr.BadRequest(fmt.Errorf("unable to decode payload: %w", err))
		}

		if err := validate.Check(s); err != nil {
			return weberr.Unprocessable(err)
		}

		exec, err := api.SubmitCode(withBearer(ctx, r), s)
		if err != nil {
			return remoteErr(err, "submitting code")
		}

		return web.Respond(ctx, w, exec, http.StatusOK)
	}
}

func HandleAssignmentTests(api Remote) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		id := web.Param(r, "id")

		tests, err := api.AssignmentTests(withBearer(ctx, r), id)
		if err != nil {
			return remoteErr(err, fmt.Sprintf("fetching tests of assignment[%s]", id))
		}

		return web.Respond(ctx, w, tests, http.StatusOK)
	}
}
