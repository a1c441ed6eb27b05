package apperr

import (
	"net/http"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"zoo-inventory/internal/platform/logger"
)

// Responder escribe la falla al cliente (texto plano) y la deja registrada en el log.
type Responder struct {
	Log logger.Logger

	// ExposeInternal manda el texto del driver en las respuestas 5xx.
	// Apagado: el cliente recibe "internal error (ref <id>)" y el detalle queda solo en el log.
	ExposeInternal bool
}

func (rs Responder) Write(w http.ResponseWriter, r *http.Request, err error) {
	kind := KindOf(err)
	status := kind.Status()

	fields := map[string]any{
		"kind":   kind.String(),
		"status": status,
		"err":    err.Error(),
		"method": r.Method,
		"path":   r.URL.Path,
	}
	if op := OpOf(err); op != "" {
		fields["op"] = op
	}
	if reqID := chimw.GetReqID(r.Context()); reqID != "" {
		fields["request_id"] = reqID
	}

	body := err.Error()
	if status >= http.StatusInternalServerError && !rs.ExposeInternal {
		ref := uuid.NewString()
		fields["ref"] = ref
		body = "internal error (ref " + ref + ")"
	}

	if rs.Log != nil {
		if status >= http.StatusInternalServerError {
			rs.Log.Error("request failed", fields)
		} else {
			rs.Log.Warn("request rejected", fields)
		}
	}

	http.Error(w, body, status)
}
