// Package http carries the platform HTTP surface: the Router seam, the JSON
// response envelope, and return-style handler plumbing
package http

import (
	"encoding/json"
	"net/http"

	pnet "vibecheck/internal/platform/net"
)

// Envelope is the transport Wire under the name handlers know it by
type Envelope = pnet.Wire

// Page carries pagination fields on list responses
type Page struct {
	Total    int    `json:"total"`
	Page     int    `json:"page"`
	PageSize int    `json:"page_size"`
	Cursor   string `json:"cursor,omitempty"`
}

const contentTypeJSON = "application/json; charset=utf-8"

// JSON encodes v to the writer with the given status
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Response is what return-style handlers hand back instead of writing
// to the ResponseWriter themselves
type Response struct {
	Status int
	Body   any
	// extra headers, set before the body goes out
	Header http.Header
}

// OK wraps data in a 200 response
func OK(data any) Response { return Response{Status: http.StatusOK, Body: data} }

// Created wraps data in a 201 response
func Created(data any) Response { return Response{Status: http.StatusCreated, Body: data} }

// NoContent is a bodyless 204 response
func NoContent() Response { return Response{Status: http.StatusNoContent} }

// Error defers status and envelope shape to the error itself
func Error(err error) Response { return Response{Body: err} }

// respondWith folds a compute result into the matching response
func respondWith(out any, err error) Response {
	if err != nil {
		return Error(err)
	}
	return OK(out)
}

// List wraps items plus pagination in a 200 response
func List(items any, total, page, size int, cursor string) Response {
	type listBody struct {
		Items any  `json:"items"`
		Page  Page `json:"page"`
	}
	return OK(listBody{
		Items: items,
		Page:  Page{Total: total, Page: page, PageSize: size, Cursor: cursor},
	})
}

// Handle adapts a Response-returning handler to a net/http HandlerFunc
func Handle(h func(r *http.Request) Response) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h(r).write(w, r)
	}
}

func (resp Response) write(w http.ResponseWriter, r *http.Request) {
	dst := w.Header()
	for k, vv := range resp.Header {
		dst[k] = append(dst[k], vv...)
	}

	status := resp.Status
	if status == 0 {
		status = http.StatusOK
	}
	if status == http.StatusNoContent {
		w.WriteHeader(status)
		return
	}

	reqID := pnet.RequestID(r.Context())
	st, env := pnet.Reply(status, reqID, resp.Body)
	// an error body overrides the declared status
	if err, ok := resp.Body.(error); ok && err != nil {
		st, env = pnet.Error(err, reqID)
	}
	JSON(w, st, env)
}
