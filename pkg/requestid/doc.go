// Package requestid tags every HTTP request with a correlation id.
//
// Middleware keeps a client-supplied X-Request-ID when it is made of at most
// 128 characters from [A-Za-z0-9_-]; anything else is replaced by a fresh
// UUIDv7. The id is stored in the request context and echoed back in the
// response header. LogExtractor plugs it into pkg/logger so every record
// logged with the request context carries request_id.
package requestid
