// Package jsonutil writes the JSON bodies of the content API.
//
// Errors use {"error": msg}, field validation adds "fields", and unknown
// records use the {"detail": "Not found."} body the site client expects.
package jsonutil

import (
	"encoding/json"
	"math"
	"net/http"
	"strconv"
	"time"
)

// JSON encodes v with the given status. A nil v writes headers only.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if v != nil {
		_ = json.NewEncoder(w).Encode(v)
	}
}

// OK writes v with 200.
func OK(w http.ResponseWriter, v any) { JSON(w, http.StatusOK, v) }

// Created writes v with 201.
func Created(w http.ResponseWriter, v any) { JSON(w, http.StatusCreated, v) }

// Error writes {"error": msg}.
func Error(w http.ResponseWriter, status int, msg string) {
	JSON(w, status, map[string]string{"error": msg})
}

// BadRequest writes a 400 error body.
func BadRequest(w http.ResponseWriter, msg string) { Error(w, http.StatusBadRequest, msg) }

// InternalError writes a 500 error body. Callers log the cause; msg is
// what the client sees.
func InternalError(w http.ResponseWriter, msg string) {
	Error(w, http.StatusInternalServerError, msg)
}

// NotFoundDetail writes 404 {"detail": "Not found."}.
func NotFoundDetail(w http.ResponseWriter) {
	JSON(w, http.StatusNotFound, map[string]string{"detail": "Not found."})
}

// ValidationError writes 400 with per-field messages keyed by JSON field name.
func ValidationError(w http.ResponseWriter, fields map[string]string) {
	JSON(w, http.StatusBadRequest, map[string]any{
		"error":  "validation failed",
		"fields": fields,
	})
}

// TooManyRequests writes 429 and, for a positive retryAfter, a Retry-After
// header rounded up to whole seconds.
func TooManyRequests(w http.ResponseWriter, msg string, retryAfter time.Duration) {
	if retryAfter > 0 {
		w.Header().Set("Retry-After", strconv.Itoa(int(math.Ceil(retryAfter.Seconds()))))
	}
	Error(w, http.StatusTooManyRequests, msg)
}

// DecodeLimited decodes the request body into v, reading at most maxBytes.
// An oversized body yields an *http.MaxBytesError.
func DecodeLimited(w http.ResponseWriter, r *http.Request, v any, maxBytes int64) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
	return json.NewDecoder(r.Body).Decode(v)
}
