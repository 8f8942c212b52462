package http

import (
	"encoding/json"
	"net/http"
)

const (
	codeMethodNotAllowed     = "method_not_allowed"
	codeNotFound             = "not_found"
	codeInvalidRequestBody   = "invalid_request_body"
	codeEmployeeNameRequired = "employee_name_required"
	codeTeaRequired          = "tea_required"
	codeSnackRequired        = "snack_required"
	codeInvalidAmount        = "invalid_amount"
	codeWindowClosed         = "window_closed"
	codeDuplicateOrder       = "duplicate_order"
	codeNameRequired         = "name_required"
	codeInvalidPrice         = "invalid_price"
	codeInvalidCatalog       = "invalid_catalog"
	codeInvalidRange         = "invalid_range"
	codeInvalidID            = "invalid_id"
	codeInvalidCredentials   = "invalid_credentials"
	codeUnauthorized         = "unauthorized"
	codeInternalError        = "internal_error"
)

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func writeError(w http.ResponseWriter, status int, code, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	payload, err := json.Marshal(errorResponse{
		Error: msg,
		Code:  code,
	})
	if err != nil {
		_, _ = w.Write([]byte(`{"error":"internal error","code":"internal_error"}`))
		return
	}
	_, _ = w.Write(payload)
}
