// Package post stores the protected resource records of the service.
//
// Posts carry an immutable owner set at creation. The store is a
// plain record keeper: it enforces no authorization, which is the
// policy package's job, applied by the engine before any store call.
package post
