package bridge

import (
	"net/http"
	"slices"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/bnema/spacesync/internal/domain/entity"
	"github.com/bnema/spacesync/internal/logging"
)

const maxClientMessage = 4 * 1024

func (s *Server) upgrader() websocket.Upgrader {
	return websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool {
			origin := r.Header.Get("Origin")
			if origin == "" || len(s.cfg.AllowedOrigins) == 0 {
				return true
			}
			return slices.Contains(s.cfg.AllowedOrigins, origin)
		},
	}
}

// stream upgrades to a WebSocket and writes every dispatched update as JSON.
// The first frame is a spaces_replaced snapshot so clients start in sync.
// Slow clients lose updates instead of stalling the broadcast.
func (s *Server) stream(c *gin.Context) {
	log := logging.FromContext(c.Request.Context())

	up := s.upgrader()
	conn, err := up.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Warn().Err(err).Msg("websocket upgrade failed")
		return
	}
	defer conn.Close()

	updates, cancel := s.updates.SubscribeChan(s.cfg.StreamBuffer)
	defer cancel()

	streamClients.Inc()
	defer streamClients.Dec()
	log.Debug().Str("remote", c.Request.RemoteAddr).Msg("stream client connected")

	hello := entity.NewUpdate(uuid.NewString(), entity.SpacesReplacedPayload{
		Spaces: s.spaces.GetAllSpaces(),
		Closed: s.spaces.GetClosedSpaces(),
	}, entity.PriorityNormal, time.Now())
	if err := s.writeJSON(conn, hello); err != nil {
		return
	}

	gone := make(chan struct{})
	go s.readPump(conn, gone)

	ticker := time.NewTicker(s.cfg.PongWait * 9 / 10)
	defer ticker.Stop()

	for {
		select {
		case update, ok := <-updates:
			if !ok {
				s.writeClose(conn)
				return
			}
			if err := s.writeJSON(conn, update); err != nil {
				log.Debug().Err(err).Msg("stream write failed")
				return
			}
			streamMessages.Inc()
		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(s.cfg.WriteWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-gone:
			log.Debug().Msg("stream client disconnected")
			return
		case <-s.stop:
			s.writeClose(conn)
			return
		}
	}
}

// readPump discards client frames and keeps the read deadline fresh on pong.
func (s *Server) readPump(conn *websocket.Conn, gone chan<- struct{}) {
	defer close(gone)

	conn.SetReadLimit(maxClientMessage)
	_ = conn.SetReadDeadline(time.Now().Add(s.cfg.PongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(s.cfg.PongWait))
	})
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
		_ = conn.SetReadDeadline(time.Now().Add(s.cfg.PongWait))
	}
}

func (s *Server) writeJSON(conn *websocket.Conn, v any) error {
	_ = conn.SetWriteDeadline(time.Now().Add(s.cfg.WriteWait))
	return conn.WriteJSON(v)
}

func (s *Server) writeClose(conn *websocket.Conn) {
	msg := websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down")
	_ = conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(s.cfg.WriteWait))
}
