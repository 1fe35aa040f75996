// Package controller contains HTTP middlewares and helper handlers used by the
// API server.
//
// Middlewares:
//   - WithCORS: cross-origin headers and OPTIONS preflight.
//   - WithLogger: request-scoped logger and request ID, plus an access log.
//
// Helpers:
//   - PprofMux: net/http/pprof handlers, mounted under /debug/pprof/.
package controller
