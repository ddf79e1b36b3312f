// Package server exposes CV rendering over HTTP.
//
// Routes:
//
//	POST /v1/render   CV JSON or YAML body; returns application/pdf, or text/html with ?format=html
//	GET  /healthz     liveness
//	GET  /metrics     Prometheus exposition
//
// Each request borrows a converter from a Source for the duration of the
// render. Failures are isolated to the request that caused them: an invalid
// CV answers 422, a browser failure 502, a panic 500, and the server keeps
// serving.
package server
