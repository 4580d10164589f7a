package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/meeplehub/api/internal/model"
)

// WriteJSON writes a JSON response with the given status code
func WriteJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

// WriteSuccess writes a 200 envelope with an optional payload
func WriteSuccess(w http.ResponseWriter, message string, data interface{}) {
	WriteJSON(w, http.StatusOK, model.Envelope{
		Status:  http.StatusOK,
		Message: message,
		Data:    data,
	})
}

// WriteFailure writes a 400 envelope carrying the failure reason
func WriteFailure(w http.ResponseWriter, message string) {
	WriteJSON(w, http.StatusBadRequest, model.Envelope{
		Status:  http.StatusBadRequest,
		Message: message,
	})
}

// WriteUnauthorized writes a 401 envelope
func WriteUnauthorized(w http.ResponseWriter) {
	WriteJSON(w, http.StatusUnauthorized, model.Envelope{
		Status:  http.StatusUnauthorized,
		Message: "authentication required",
	})
}

// DecodeJSON decodes a JSON request body into the given struct
func DecodeJSON(r *http.Request, v interface{}) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(v)
}

// pagingParams reads keyword, page, and pagesize query parameters,
// falling back to the listing defaults when absent or malformed.
func pagingParams(r *http.Request) (keyword string, page, pageSize int) {
	q := r.URL.Query()

	keyword = q.Get("keyword")

	page = model.DefaultPage
	if v := q.Get("page"); v != "" {
		if p, err := strconv.Atoi(v); err == nil && p > 0 {
			page = p
		}
	}

	pageSize = model.DefaultPageSize
	if v := q.Get("pagesize"); v != "" {
		if ps, err := strconv.Atoi(v); err == nil && ps > 0 {
			pageSize = ps
		}
	}

	return keyword, page, pageSize
}
