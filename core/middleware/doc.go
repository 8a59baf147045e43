// Package middleware contains HTTP middleware for the Fiber application.
//
// # Components
//
//   - auth: API key validation via the X-API-Key header.
//   - rayid: assigns a RayID to every request, stored in locals and echoed
//     in the X-Ray-ID response header for tracing.
package middleware
