package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"problem_app/internal/common"
)

const maxBodyBytes = 1 << 20 // 1MiB

// decodeJSON reads a size-capped JSON body into dst. On failure it writes the
// error response and returns false.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any, invalidPrefix string) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	defer r.Body.Close()

	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			common.RespondWithError(w, http.StatusRequestEntityTooLarge, "Request body too large")
			return false
		}
		common.RespondWithError(w, http.StatusBadRequest, invalidPrefix+err.Error())
		return false
	}
	return true
}
