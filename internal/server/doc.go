// Package server is the HTTP presentation shell in front of the image
// analysis pipeline.
//
// The shell owns no algorithmic content. Each request carries one uploaded
// image; the shell decodes it into a pixel buffer, invokes exactly one
// pipeline operation, and renders the result verbatim as JSON. Processed
// images travel as base64-encoded PNG.
//
// # Endpoints
//
//	POST /api/{op}   multipart form, field "image"
//	GET  /healthz    liveness probe
//
// Operations: grayscale, rotate, mirror, grid, edges, detect, properties.
// Operation parameters arrive as form or query values: angle (rotate),
// rows/cols/color (grid), low/high (edges), min_area (detect). Unset
// parameters use the configured defaults.
//
// # Statelessness
//
// Nothing is persisted. An uploaded image lives for the duration of its
// request and is forgotten afterwards; concurrent requests never share a
// buffer, so the shell needs no synchronization around pipeline calls.
//
// # Errors
//
// Malformed uploads, undecodable images and invalid parameters map to
// HTTP 400 with a JSON error body; unknown operations map to 404;
// everything else is a 500.
package server
