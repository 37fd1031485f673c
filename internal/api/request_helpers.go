package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/qna-api/internal/api/shared"
)

// getPathID extracts a positive integer identifier from the URL path.
// Writes a 400 response and returns false when the parameter is missing or
// malformed.
func getPathID(w http.ResponseWriter, r *http.Request, paramName string) (int64, bool) {
	raw := chi.URLParam(r, paramName)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid "+paramName, err)
		return 0, false
	}
	return id, true
}
