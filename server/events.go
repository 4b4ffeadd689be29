package server

import (
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/mediasort/mediasort/pkg/logger"
	"go.uber.org/zap"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Events upgrades the connection and streams progress events to the client
// until it disconnects. Clients are not expected to send anything.
func (s Server) Events() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Debug("websocket upgrade failed", zap.Error(err))
			return
		}
		defer conn.Close()

		bus := s.manager.Events()
		sub := bus.Subscribe()
		defer bus.Unsubscribe(sub)

		// drain client frames so pings and closes are processed
		done := make(chan struct{})
		go func() {
			defer close(done)
			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					return
				}
			}
		}()

		for {
			select {
			case evt, ok := <-sub.Events():
				if !ok {
					return
				}
				if err := conn.WriteJSON(evt); err != nil {
					log.Debug("websocket write failed", zap.Error(err))
					return
				}
			case <-done:
				return
			}
		}
	}
}
