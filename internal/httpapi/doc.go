// Package httpapi serves a read-only view of member progression over HTTP.
//
// Routes
//
//	GET /health
//	    Liveness plus whether the member document is behind memory ("dirty").
//
//	GET /members
//	    The whole member table.
//
//	GET /members/:id
//	    One member record, 404 if unknown.
//
//	GET /levels/:level/threshold
//	    Experience needed to leave :level.
//
//	GET /metrics
//	    Prometheus exposition of the supplied registry.
//
// Mutations stay with the CLI; nothing here writes the document.
package httpapi
