package response

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/GregMSThompson/ifsc-finder/pkg/logger"
)

// WriteSuccess encodes data as the whole response body. Clients of the lookup
// routes expect the record itself, not an envelope.
func (h *responseHandler) WriteSuccess(w http.ResponseWriter, r *http.Request, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		// headers are already sent
		logger.FromContext(r.Context()).Error("failed to encode success response", "error", err)
	}
}

func (h *responseHandler) WriteAttachment(w http.ResponseWriter, r *http.Request, contentType, filename string, data []byte) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)

	if _, err := w.Write(data); err != nil {
		logger.FromContext(r.Context()).Error("failed to write attachment", "error", err, "filename", filename)
	}
}
