// Package server exposes path search over HTTP.
//
// Routes:
//
//   - POST /v1/path           run one search, JSON in / JSON out
//   - GET  /v1/path/stream    run one search on a built-in map and stream
//     every expansion and backtrack over a websocket
//   - GET  /v1/maps           built-in map names
//   - GET  /v1/maps/:name     one built-in map
//   - GET  /healthz           liveness
//
// A search that finds no path is a successful request (200, found=false).
// Malformed input and violated search preconditions are 400s carrying the
// error text.
//
// Requests are logged through the zap.Logger given to New.
package server
