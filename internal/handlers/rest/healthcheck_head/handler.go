package healthcheck_head

import (
	"context"
	"net/http"
	"sync/atomic"
	"time"
)

const probeTimeout = time.Second

type Handler struct {
	isShuttingDown *atomic.Bool
	probes         []Pinger
}

// New принимает необязательные проверки готовности, nil пропускается.
func New(isShuttingDown *atomic.Bool, probes ...Pinger) *Handler {
	active := make([]Pinger, 0, len(probes))
	for _, probe := range probes {
		if probe != nil {
			active = append(active, probe)
		}
	}

	return &Handler{
		isShuttingDown: isShuttingDown,
		probes:         active,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.isShuttingDown.Load() {
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), probeTimeout)
	defer cancel()

	for _, probe := range h.probes {
		if err := probe.Ping(ctx); err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
	}

	w.WriteHeader(http.StatusNoContent)
}
