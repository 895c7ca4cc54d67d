package middleware

import "net/http"

// Middleware is a function that wraps an http.Handler. It has the shape
// chi's Router.Use expects.
type Middleware func(http.Handler) http.Handler
