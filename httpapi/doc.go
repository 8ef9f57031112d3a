// Package httpapi is the HTTP shell over the engine: a chi router
// that decodes requests, invokes engine flows, and maps classified
// domain errors onto status codes and an {"error": "..."} body.
//
// The shell makes no decisions of its own. Authentication,
// authorization, and rate limiting all happen inside the engine; the
// only thing settled here is how those outcomes read on the wire.
package httpapi
