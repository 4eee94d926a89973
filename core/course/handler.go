package course

import (
	"context"
	"fmt"
	"net/http"

	"github.com/irsalhamdi/course-catalog/api/web"
	"github.com/irsalhamdi/course-catalog/api/weberr"
	"github.com/irsalhamdi/course-catalog/validate"
)

const recommendedCount = 3

func HandleList(store *Store) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		q := r.URL.Query()
		f := Filter{
			Category: q.Get("category"),
			Search:   q.Get("search"),
			Level:    Level(q.Get("level")),
		}

		return web.Respond(ctx, w, store.Filter(f), http.StatusOK)
	}
}

func HandleShow(store *Store) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		id := web.Param(r, "id")

		c, ok := store.Fetch(id)
		if !ok {
			return weberr.NotFound(fmt.Errorf("course[%s] not found", id))
		}

		return web.Respond(ctx, w, c, http.StatusOK)
	}
}

func HandleCategories() web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		return web.Respond(ctx, w, FilterCategories(r.URL.Query().Get("search")), http.StatusOK)
	}
}

func HandleListEnrolled(store *Store) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		return web.Respond(ctx, w, store.Enrolled(), http.StatusOK)
	}
}

func HandleEnroll(store *Store) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		store.Enroll(web.Param(r, "course_id"))
		return web.Respond(ctx, w, nil, http.StatusNoContent)
	}
}

func HandleUnenroll(store *Store) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		store.Unenroll(web.Param(r, "course_id"))
		return web.Respond(ctx, w, nil, http.StatusNoContent)
	}
}

func HandleUpdateProgress(store *Store) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		id := web.Param(r, "course_id")

		var up ProgressUp
		if err := web.Decode(w, r, &up); err != nil {
			return weberr.BadRequest(fmt.Errorf("unable to decode payload: %w", err))
		}

		if err := validate.Check(up); err != nil {
			return weberr.Unprocessable(err)
		}

		if !store.UpdateProgress(id, *up.Progress) {
			return weberr.NotFound(fmt.Errorf("course[%s] not enrolled", id))
		}

		return web.Respond(ctx, w, nil, http.StatusNoContent)
	}
}

func HandleDashboard(store *Store) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		d := Dashboard{
			Stats:       store.Stats(),
			Enrolled:    store.Enrolled(),
			Recommended: store.Recommended(recommendedCount),
		}

		return web.Respond(ctx, w, d, http.StatusOK)
	}
}
