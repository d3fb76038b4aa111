package http

import (
	"net/http"

	"github.com/MKhiriev/go-study-keeper/internal/utils"
	"github.com/rs/zerolog"
)

const traceIDHeader = "X-Trace-ID"

// traceIDs issues time-ordered IDs so interleaved request logs stay sortable.
var traceIDs = utils.NewUUIDGenerator()

// withTraceID tags every request with a trace ID: reuses the one supplied by
// the client, generates one otherwise. The ID is echoed in the response
// header and stamped onto the request-scoped logger.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		traceID := r.Header.Get(traceIDHeader)
		if traceID == "" {
			traceID = traceIDs.Generate()
		}

		l := h.logger.GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("trace_id", traceID)
		})
		r = r.WithContext(l.WithContext(ctx))

		w.Header().Set(traceIDHeader, traceID)
		next.ServeHTTP(w, r)
	})
}
