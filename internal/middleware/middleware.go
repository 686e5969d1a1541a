package middleware

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

func WriteSuccessData(w http.ResponseWriter, r *http.Request, data interface{}) {
	writeJSON(w, http.StatusOK, data)
}

func WriteErrorResponse(w http.ResponseWriter, r *http.Request, errCode int, err string) {
	writeJSON(w, errCode, ErrorResponse{
		Error: err,
	})
}

// headers must go out before the body
func writeJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := jsoniter.NewEncoder(w).Encode(v); err != nil {
		logrus.Errorf("failed encode response, error: %v", err)
	}
}
