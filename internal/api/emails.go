package api

import (
	"net/http"

	"github.com/mailvalid/mailvalid/pkg/binder"
	"github.com/mailvalid/mailvalid/pkg/handler"
	"github.com/mailvalid/mailvalid/pkg/validator"
)

// EmailRequest is the body of the email endpoints.
type EmailRequest struct {
	Email string `json:"email"`
}

// ValidationResult is the data of POST /v1/emails/validate.
type ValidationResult struct {
	Email   string `json:"email"`
	Valid   bool   `json:"valid"`
	Reason  string `json:"reason,omitempty"`
	Message string `json:"message,omitempty"`
}

func (a *API) validateEmail() http.HandlerFunc {
	return handler.Wrap(
		func(r *http.Request, req EmailRequest) handler.Response {
			outcome := a.matcher.Validate(req.Email)
			a.metrics.ObserveValidation(outcome.Valid, outcome.Reason)
			res := ValidationResult{Email: req.Email, Valid: outcome.Valid}
			if !outcome.Valid {
				res.Reason = outcome.Reason
				res.Message = a.tr.Tc(r.Context(), validator.TranslationKey(outcome.Reason))
			}
			return handler.JSON(res)
		},
		handler.WithBinder[EmailRequest](binder.JSON(binder.WithMaxSize(a.maxBodySize))),
		handler.WithErrorHandler[EmailRequest](a.onError),
	)
}
