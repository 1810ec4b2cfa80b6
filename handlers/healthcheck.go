package handlers

import "net/http"

// HealthCheck reports whether the service is running.
func HealthCheck(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}
