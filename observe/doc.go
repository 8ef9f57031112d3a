// Package observe provides observability primitives for the auth
// service.
//
// It is a pure instrumentation library: no auth decisions, no
// transport, no I/O beyond exporter setup. Consumers wire the
// observer into the engine and the HTTP shell; credentials and
// tokens are redacted before any log line is written.
package observe
