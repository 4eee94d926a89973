package learning

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/irsalhamdi/course-catalog/api/weberr"
	"github.com/irsalhamdi/course-catalog/learnapi"
)

func TestRemoteErr(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		status   int
		response bool
	}{
		{"not found", learnapi.ErrNotFound, http.StatusNotFound, true},
		{"wrapped not found", fmt.Errorf("x: %w", learnapi.ErrNotFound), http.StatusNotFound, true},
		{"client error", &learnapi.Error{StatusCode: http.StatusForbidden}, http.StatusForbidden, true},
		{"server error", &learnapi.Error{StatusCode: http.StatusBadGateway}, 0, false},
		{"transport", errors.New("connection refused"), 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, status, ok := weberr.Response(remoteErr(tt.err, "fetching"))
			if ok != tt.response || status != tt.status {
				t.Fatalf("expected (%d, %v), got (%d, %v)", tt.status, tt.response, status, ok)
			}
		})
	}
}

func TestWithBearer(t *testing.T) {
	tests := []struct {
		header string
		want   string
	}{
		{"Bearer abc", "abc"},
		{"Bearer ", ""},
		{"Basic dXNlcjpwYXNz", ""},
		{"", ""},
	}

	for _, tt := range tests {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		if tt.header != "" {
			r.Header.Set("Authorization", tt.header)
		}

		if got := learnapi.TokenFrom(withBearer(context.Background(), r)); got != tt.want {
			t.Errorf("header %q: expected token %q, got %q", tt.header, tt.want, got)
		}
	}
}
