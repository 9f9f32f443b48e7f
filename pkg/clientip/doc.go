// Package clientip resolves the address of the client behind a request.
//
// By default only the connection address is used. Deployments behind a
// proxy list the headers that proxy sets:
//
//	res := clientip.New(clientip.HeaderXForwardedFor)
//	router.Use(clientip.Middleware(res))
//
// Addresses are normalized through net/netip, so IPv4-mapped IPv6 addresses
// and zones collapse to one rate-limit key per client.
package clientip
