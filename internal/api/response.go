package api

import (
	"encoding/json"
	"net/http"

	"github.com/RoyceAzure/lab/storefront/internal/apperr"
)

type Response struct {
	Data any `json:"data,omitempty"`
}

type ResponseError struct {
	Errors apperr.FieldErrorMap `json:"errors"`
}

func SuccessJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		json.NewEncoder(w).Encode(Response{Data: data})
	}
}

// ErrorJSON 所有錯誤都以FieldErrorMap形式回給presentation layer
func ErrorJSON(w http.ResponseWriter, status int, errs apperr.FieldErrorMap) {
	if !errs.HasErrors() {
		errs = apperr.Global(http.StatusText(status))
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(ResponseError{Errors: errs})
}
