// Package learnapi is a client for the remote learning API: login,
// specialisations, course details, course contents, code submission and
// assignment tests.
package learnapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/sirupsen/logrus"
)

// ErrNotFound is returned when the API answers 404.
var ErrNotFound = errors.New("resource not found")

// Error is a non-2xx answer other than 404.
type Error struct {
	Method     string
	Path       string
	StatusCode int
	Body       string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s %s: status %d: %s", e.Method, e.Path, e.StatusCode, e.Body)
}

type Config struct {
	BaseURL string
	Timeout time.Duration
	Log     logrus.FieldLogger
}

type Client struct {
	rc *resty.Client
}

func New(cfg Config) *Client {
	rc := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.Timeout).
		SetHeader("Accept", "application/json")

	if cfg.Log != nil {
		rc.SetLogger(cfg.Log)
	}

	return &Client{rc: rc}
}

type ctxKey int

const tokenKey ctxKey = 1

// WithToken attaches a bearer token to every call made with ctx.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey, token)
}

// TokenFrom returns the bearer token attached by WithToken.
func TokenFrom(ctx context.Context) string {
	tok, _ := ctx.Value(tokenKey).(string)
	return tok
}

func (c *Client) do(ctx context.Context, method, path string, params map[string]string, body, out any) error {
	req := c.rc.R().SetContext(ctx)

	if tok := TokenFrom(ctx); tok != "" {
		req.SetAuthToken(tok)
	}
	if params != nil {
		req.SetPathParams(params)
	}
	if body != nil {
		req.SetBody(body)
	}
	if out != nil {
		req.SetResult(out)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}

	switch {
	case resp.StatusCode() == http.StatusNotFound:
		return ErrNotFound
	case resp.IsError():
		return &Error{
			Method:     method,
			Path:       path,
			StatusCode: resp.StatusCode(),
			Body:       resp.String(),
		}
	}
	return nil
}

type Credentials struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type Token struct {
	AccessToken  string `json:"token"`
	RefreshToken string `json:"refresh_token,omitempty"`
}

func (c *Client) Login(ctx context.Context, cred Credentials) (Token, error) {
	var tok Token
	if err := c.do(ctx, http.MethodPost, "/user/login", nil, cred, &tok); err != nil {
		return Token{}, err
	}
	return tok, nil
}

type Specialisation struct {
	ID          int             `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Data        json.RawMessage `json:"data,omitempty"`
	Courses     []Course        `json:"courses,omitempty"`
}

type Course struct {
	ID             int             `json:"id"`
	Name           string          `json:"name"`
	Description    string          `json:"description"`
	Data           json.RawMessage `json:"data,omitempty"`
	Specialisation *Specialisation `json:"specialisation,omitempty"`
}

type Content struct {
	ID          int             `json:"id"`
	CourseID    int             `json:"course_id"`
	ContentType string          `json:"content_type"`
	ContentURL  string          `json:"content_url"`
	ContentData json.RawMessage `json:"content_data,omitempty"`
	ContentText *string         `json:"content_text"`
}

func (c *Client) Specialisations(ctx context.Context) ([]Specialisation, error) {
	var out []Specialisation
	if err := c.do(ctx, http.MethodGet, "/learning/specialisations", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Specialisation(ctx context.Context, id string) (Specialisation, error) {
	var out Specialisation
	params := map[string]string{"id": id}
	if err := c.do(ctx, http.MethodGet, "/learning/specialisations/{id}", params, nil, &out); err != nil {
		return Specialisation{}, err
	}
	return out, nil
}

func (c *Client) Course(ctx context.Context, id string) (Course, error) {
	var out Course
	params := map[string]string{"id": id}
	if err := c.do(ctx, http.MethodGet, "/learning/courses/{id}", params, nil, &out); err != nil {
		return Course{}, err
	}
	return out, nil
}

// Contents lists the contents of a course. The caller must be enrolled.
func (c *Client) Contents(ctx context.Context, courseID string) ([]Content, error) {
	var out []Content
	params := map[string]string{"id": courseID}
	if err := c.do(ctx, http.MethodGet, "/learning/contents/{id}", params, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

type Submission struct {
	Language    string   `json:"language" validate:"required"`
	FileName    string   `json:"file_name" validate:"required"`
	FileContent string   `json:"file_content" validate:"required"`
	Stdin       string   `json:"stdin"`
	Args        []string `json:"args"`
}

type Stage struct {
	Stdout string  `json:"stdout"`
	Stderr string  `json:"stderr"`
	Output string  `json:"output"`
	Code   *int    `json:"code"`
	Signal *string `json:"signal"`
}

type Execution struct {
	Language string `json:"language"`
	Version  string `json:"version"`
	Run      Stage  `json:"run"`
	Compile  *Stage `json:"compile,omitempty"`
}

func (c *Client) SubmitCode(ctx context.Context, s Submission) (Execution, error) {
	var out Execution
	if err := c.do(ctx, http.MethodPost, "/code/submit", nil, s, &out); err != nil {
		return Execution{}, err
	}
	return out, nil
}

// AssignmentTests returns the test cases of an assignment as sent by the
// API.
func (c *Client) AssignmentTests(ctx context.Context, assignmentID string) (json.RawMessage, error) {
	var out json.RawMessage
	params := map[string]string{"id": assignmentID}
	if err := c.do(ctx, http.MethodGet, "/assignments/{id}/tests", params, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
