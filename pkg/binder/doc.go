// Package binder decodes HTTP request bodies into typed request structs.
//
// JSON returns a binder that checks the Content-Type header, caps the body
// size and decodes in strict mode: unknown fields and trailing data are
// rejected.
//
//	bind := binder.JSON(binder.WithMaxSize(64 << 10))
//	var req ValidateRequest
//	if err := bind(r, &req); err != nil {
//	    // errors.Is(err, binder.ErrUnsupportedMediaType) ...
//	}
//
// Failures wrap one of the package sentinel errors so callers can map them
// to HTTP status codes with errors.Is.
package binder
