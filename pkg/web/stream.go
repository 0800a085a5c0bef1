package web

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"golang.org/x/time/rate"
)

const (
	streamWriteWait = 5 * time.Second
	streamReadLimit = 512
)

// streamTelemetry pushes a LiveSample every stream interval until the client
// goes away or the server closes.
func (s *Server) streamTelemetry(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("Websocket upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	s.metrics.StreamClientConnected()
	defer s.metrics.StreamClientDisconnected()

	ctx, cancel := context.WithCancel(s.ctx)
	defer cancel()

	go readUntilClosed(conn, cancel)

	limiter := rate.NewLimiter(rate.Every(s.interval), 1)

	for {
		if err := limiter.Wait(ctx); err != nil {
			closeStream(conn)
			return
		}

		sample := s.gen.LiveSample()
		s.metrics.RecordSnapshot("live")

		_ = conn.SetWriteDeadline(time.Now().Add(streamWriteWait))

		if err := conn.WriteJSON(sample); err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Printf("Telemetry stream write failed: %v", err)
			}

			return
		}
	}
}

// readUntilClosed drains client frames so control messages are processed,
// and cancels the stream once the connection is gone.
func readUntilClosed(conn *websocket.Conn, cancel context.CancelFunc) {
	defer cancel()

	conn.SetReadLimit(streamReadLimit)
	_ = conn.SetReadDeadline(time.Time{})

	for {
		if _, _, err := conn.NextReader(); err != nil {
			return
		}
	}
}

func closeStream(conn *websocket.Conn) {
	msg := websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down")
	_ = conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(streamWriteWait))
}
