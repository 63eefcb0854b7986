// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /health", middleware.WithLogging(handler))

Logs request start at debug level and completion (method, path, status,
duration_ms) at info.

# Recovery and CORS

Wrap the whole mux:

	server := http.Server{
		Handler: middleware.Recovery(middleware.CORS(mux)),
	}

Recovery turns panics into a 500 JSON error. CORS echoes the request
Origin (or "*") for GET, POST and OPTIONS and answers preflight requests
itself.

# JSON Helpers

Write JSON responses:

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusNotFound, "Day not found") // {"error":"Day not found"}

Parse free-form form bodies:

	payload, err := middleware.ParseJSONObject(w, r)

Numbers stay json.Number, an empty body is {}, and anything that is not a
JSON object is an error.

# Client IP Extraction

Get the original client IP (handles X-Forwarded-For, X-Real-IP):

	ip := middleware.GetClientIP(r)

Used for visitor IP hashing.
*/
package middleware
