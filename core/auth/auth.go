// Package auth implements the mocked login flow. Any non-empty credentials
// are accepted and resolve to the sample user; the credentials are still
// forwarded to the remote API in the background.
package auth

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/alexedwards/scs/v2"
	"github.com/irsalhamdi/course-catalog/api/background"
	"github.com/irsalhamdi/course-catalog/api/web"
	"github.com/irsalhamdi/course-catalog/api/weberr"
	"github.com/irsalhamdi/course-catalog/core/claims"
	"github.com/irsalhamdi/course-catalog/core/user"
	"github.com/irsalhamdi/course-catalog/learnapi"
	"github.com/irsalhamdi/course-catalog/random"
	"github.com/irsalhamdi/course-catalog/rate"
	"github.com/irsalhamdi/course-catalog/validate"
	"github.com/sirupsen/logrus"
)

const (
	userIDKey    = "auth.user_id"
	userNameKey  = "auth.user_name"
	userEmailKey = "auth.user_email"
)

const remoteLoginTimeout = 30 * time.Second

// Remote is the API the credentials are forwarded to.
type Remote interface {
	Login(ctx context.Context, cred learnapi.Credentials) (learnapi.Token, error)
}

type LoginConfig struct {
	Session     *scs.SessionManager
	Limiter     *rate.Limiter
	Background  *background.Background
	Remote      Remote
	TokenLength int
	Log         logrus.FieldLogger
}

type Session struct {
	User        user.User `json:"user"`
	AccessToken string    `json:"accessToken"`
}

// LoadAndSave loads the session of the request and commits it once the
// handler returns.
func LoadAndSave(session *scs.SessionManager) web.Middleware {
	m := func(handler web.Handler) web.Handler {
		h := func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
			var err error
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				err = handler(r.Context(), w, r)
			})

			session.LoadAndSave(next).ServeHTTP(w, r.WithContext(ctx))
			return err
		}
		return h
	}
	return m
}

// Authenticate rejects requests without a logged in user and stores the
// user's claims in the context.
func Authenticate(session *scs.SessionManager) web.Middleware {
	m := func(handler web.Handler) web.Handler {
		h := func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
			id := session.GetString(ctx, userIDKey)
			if id == "" {
				return weberr.NotAuthorized(errors.New("user not authenticated"))
			}

			ctx = claims.Set(ctx, claims.Claims{
				UserID: id,
				Name:   session.GetString(ctx, userNameKey),
				Email:  session.GetString(ctx, userEmailKey),
			})
			return handler(ctx, w, r)
		}
		return h
	}
	return m
}

func login(ctx context.Context, session *scs.SessionManager, usr user.User) error {
	if err := session.RenewToken(ctx); err != nil {
		return fmt.Errorf("renewing session token: %w", err)
	}

	session.Put(ctx, userIDKey, usr.ID)
	session.Put(ctx, userNameKey, usr.Name)
	session.Put(ctx, userEmailKey, usr.Email)
	return nil
}

func respondSession(ctx context.Context, w http.ResponseWriter, usr user.User, tokenLength int) error {
	tok, err := random.StringSecure(tokenLength)
	if err != nil {
		return fmt.Errorf("generating access token: %w", err)
	}

	return web.Respond(ctx, w, Session{User: usr, AccessToken: tok}, http.StatusOK)
}

func clientAddr(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func HandleLogin(cfg LoginConfig) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		if cfg.Limiter != nil && !cfg.Limiter.Check(clientAddr(r)) {
			return weberr.TooManyRequests(fmt.Errorf("login attempts exceeded for %s", clientAddr(r)))
		}

		var cred learnapi.Credentials
		if err := web.Decode(w, r, &cred); err != nil {
			return weberr.BadRequest(fmt.Errorf("unable to decode payload: %w", err))
		}

		if err := validate.Check(cred); err != nil {
			return weberr.Unprocessable(err)
		}

		if cfg.Remote != nil {
			err := cfg.Background.Go(func() {
				ctx, cancel := context.WithTimeout(context.Background(), remoteLoginTimeout)
				defer cancel()

				if _, err := cfg.Remote.Login(ctx, cred); err != nil {
					cfg.Log.WithField("email", cred.Email).Warnf("remote login: %s", err)
				}
			})
			if err != nil {
				cfg.Log.Warnf("skipping remote login: %s", err)
			}
		}

		usr := user.Sample()
		if err := login(ctx, cfg.Session, usr); err != nil {
			return err
		}

		return respondSession(ctx, w, usr, cfg.TokenLength)
	}
}

func HandleSignup(session *scs.SessionManager, tokenLength int) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		var us user.UserSignup
		if err := web.Decode(w, r, &us); err != nil {
			return weberr.BadRequest(fmt.Errorf("unable to decode payload: %w", err))
		}

		if err := validate.Check(us); err != nil {
			return weberr.Unprocessable(err)
		}

		usr := user.Sample()
		usr.ID = validate.GenerateID()
		usr.Name = us.Name
		usr.Email = us.Email

		if err := login(ctx, session, usr); err != nil {
			return err
		}

		return respondSession(ctx, w, usr, tokenLength)
	}
}

func HandleLogout(session *scs.SessionManager) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		if err := session.Destroy(ctx); err != nil {
			return fmt.Errorf("destroying session: %w", err)
		}

		return web.Respond(ctx, w, nil, http.StatusNoContent)
	}
}
