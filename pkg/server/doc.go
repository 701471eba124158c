// Package server exposes the rendering pipeline over HTTP.
//
// # Endpoints
//
//	GET /v1/packs                      list packs
//	GET /v1/packs/{pack}/icons         list icons in a pack (?q= filters)
//	GET /v1/render/{pack}/{icon}       render one icon
//
// The render endpoint accepts the full style surface as query
// parameters (color, background, padding, radius, size, format) and
// returns the artifact bytes directly with the matching content type.
// Out-of-range style values are clamped, not rejected, mirroring the
// CLI; only unparseable values are 400s.
//
// Responses carry an X-Request-ID header for log correlation and the
// render endpoint reports X-Cache: HIT or MISS.
//
// Errors are JSON envelopes with the machine-readable code:
//
//	{"error": {"code": "PACK_NOT_FOUND", "message": "pack \"nope\" not found"}}
package server
