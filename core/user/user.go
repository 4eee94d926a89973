package user

import (
	"context"
	"errors"
	"net/http"

	"github.com/irsalhamdi/course-catalog/api/web"
	"github.com/irsalhamdi/course-catalog/api/weberr"
	"github.com/irsalhamdi/course-catalog/core/claims"
)

const defaultAvatar = "https://images.pexels.com/photos/220453/pexels-photo-220453.jpeg?auto=compress&cs=tinysrgb&w=600"

type User struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Avatar string `json:"avatar"`
}

type UserSignup struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Sample is the account every mocked login resolves to.
func Sample() User {
	return User{
		ID:     "1",
		Name:   "John Smith",
		Email:  "john.smith@example.com",
		Avatar: defaultAvatar,
	}
}

func FromClaims(clm claims.Claims) User {
	return User{
		ID:     clm.UserID,
		Name:   clm.Name,
		Email:  clm.Email,
		Avatar: defaultAvatar,
	}
}

func HandleShowCurrent() web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		clm, err := claims.Get(ctx)
		if err != nil {
			return weberr.NotAuthorized(errors.New("user not authenticated"))
		}

		return web.Respond(ctx, w, FromClaims(clm), http.StatusOK)
	}
}
