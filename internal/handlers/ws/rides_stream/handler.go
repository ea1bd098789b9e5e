package rides_stream

import (
	"errors"
	"net/http"
	"time"

	"courier-booking/internal/dto"
	"courier-booking/pkg/logger"

	"github.com/gorilla/websocket"
	"github.com/jonboulle/clockwork"
)

const (
	writeWait      = 5 * time.Second
	pongWait       = 60 * time.Second
	maxMessageSize = 512
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
}

// Handler пушит снимок активных поездок сразу после подключения и затем каждые interval.
// Входящие сообщения клиента игнорируются, чтение нужно только для close и pong.
type Handler struct {
	log      handlerLogger
	service  Service
	clock    clockwork.Clock
	interval time.Duration
}

func New(log handlerLogger, service Service, clock clockwork.Clock, interval time.Duration) *Handler {
	handlerLog := log.With(logger.NewField("handler", "rides_stream"))

	return &Handler{
		log:      handlerLog,
		service:  service,
		clock:    clock,
		interval: interval,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade уже ответил клиенту ошибкой
		h.log.Warn("websocket upgrade", logger.NewField("error", err))
		return
	}
	defer conn.Close()

	StreamConnections.Inc()
	defer StreamConnections.Dec()

	connLog := h.log.With(logger.NewField("remote_addr", r.RemoteAddr))
	connLog.Info("tracking stream opened")

	closed := make(chan struct{})
	go h.readLoop(conn, closed)

	ticker := h.clock.NewTicker(h.interval)
	defer ticker.Stop()

	if err := h.push(conn); err != nil {
		connLog.Warn("push tracking snapshot", logger.NewField("error", err))
		return
	}

	for {
		select {
		case <-closed:
			connLog.Info("tracking stream closed by client")
			return
		case <-r.Context().Done():
			h.writeClose(conn, websocket.CloseGoingAway, "server shutting down")
			connLog.Info("tracking stream closed by server")
			return
		case <-ticker.Chan():
			if err := h.push(conn); err != nil {
				connLog.Warn("push tracking snapshot", logger.NewField("error", err))
				return
			}
		}
	}
}

func (h *Handler) push(conn *websocket.Conn) error {
	tracking := h.service.Tracking()
	snapshot := dto.RidesResponse{
		Rides:       dto.FromTracking(tracking),
		ActiveRides: len(tracking),
		MaxRides:    h.service.Capacity(),
	}

	if err := conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		StreamSnapshotsTotal.WithLabelValues("error").Inc()
		return err
	}
	if err := conn.WriteJSON(snapshot); err != nil {
		StreamSnapshotsTotal.WithLabelValues("error").Inc()
		return err
	}
	if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
		StreamSnapshotsTotal.WithLabelValues("error").Inc()
		return err
	}

	StreamSnapshotsTotal.WithLabelValues("ok").Inc()
	return nil
}

// readLoop закрывает closed, когда клиент отключился или перестал отвечать на ping.
func (h *Handler) readLoop(conn *websocket.Conn, closed chan<- struct{}) {
	defer close(closed)

	conn.SetReadLimit(maxMessageSize)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) &&
				!errors.Is(err, websocket.ErrCloseSent) {
				h.log.Warn("tracking stream read", logger.NewField("error", err))
			}
			return
		}
	}
}

func (h *Handler) writeClose(conn *websocket.Conn, code int, text string) {
	msg := websocket.FormatCloseMessage(code, text)
	if err := conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(writeWait)); err != nil {
		h.log.Warn("write close frame", logger.NewField("error", err))
	}
}
