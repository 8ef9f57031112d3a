// Package health reports whether the auth service is able to serve.
//
// A Checker probes one component and reports Healthy, Degraded, or
// Unhealthy. The Aggregator fans out over the registered checkers and
// folds their results into an overall status: any unhealthy component
// makes the service unhealthy, any degraded one makes it degraded.
//
// The package ships two checkers: a token self-check that signs and
// validates a probe token (catching signing-key misconfiguration
// before a user does), and a process memory check. Anything else is a
// CheckerFunc away. The HTTP handlers back /healthz (liveness),
// /readyz (readiness), and /health (detailed JSON).
package health
