package api

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/mailvalid/mailvalid/internal/user"
	"github.com/mailvalid/mailvalid/pkg/binder"
	"github.com/mailvalid/mailvalid/pkg/handler"
)

func (a *API) createUser() http.HandlerFunc {
	return handler.Wrap(
		func(r *http.Request, req EmailRequest) handler.Response {
			u, err := a.users.Register(r.Context(), req.Email)
			if err != nil {
				return a.fail(err)
			}
			return handler.JSON(u, handler.WithJSONStatus(http.StatusCreated))
		},
		handler.WithBinder[EmailRequest](binder.JSON(binder.WithMaxSize(a.maxBodySize))),
		handler.WithErrorHandler[EmailRequest](a.onError),
	)
}

func (a *API) getUser() http.HandlerFunc {
	return handler.Wrap(
		func(r *http.Request, _ struct{}) handler.Response {
			id, err := uuid.Parse(chi.URLParam(r, "id"))
			if err != nil {
				return a.fail(handler.ErrNotFound)
			}
			u, err := a.users.Get(r.Context(), id)
			if errors.Is(err, user.ErrNotFound) {
				return a.fail(handler.ErrNotFound)
			}
			if err != nil {
				return a.fail(err)
			}
			return handler.JSON(u)
		},
		handler.WithErrorHandler[struct{}](a.onError),
	)
}

// fail defers err to the error handler so it is logged and
// localized like binding failures.
func (a *API) fail(err error) handler.Response {
	return errorResponse{err: err, onError: a.onError}
}

type errorResponse struct {
	err     error
	onError handler.ErrorHandler
}

func (e errorResponse) Render(w http.ResponseWriter, r *http.Request) error {
	e.onError(w, r, e.err)
	return nil
}
