// Package handler turns typed request handlers into http.HandlerFunc values.
//
// A HandlerFunc receives the request and a decoded request struct and
// returns a Response. Wrap runs the binders, calls the handler and renders
// the result. Errors from binding or rendering go to the ErrorHandler.
//
//	h := handler.HandlerFunc[ValidateRequest](func(r *http.Request, req ValidateRequest) handler.Response {
//	    return handler.JSON(result)
//	})
//	router.Post("/v1/emails/validate", handler.Wrap(h, handler.WithBinder[ValidateRequest](binder.JSON())))
//
// JSON responses share one envelope, JSONResponse, with data, meta and
// error members. record.Errors render as 422 with per-field details and
// HTTPError values render with their own status and code.
package handler
