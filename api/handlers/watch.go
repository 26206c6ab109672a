package handlers

import (
	"net/http"
	"time"

	"github.com/Pjt727/classboard/planner"
	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"
)

// every client gets each change made while it is connected. Changes are
// dropped for a client that can not keep up; it can refetch the collection
// named in the next change it does receive.

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type watchConnection struct {
	conn    *websocket.Conn
	changes <-chan planner.Change
	cancel  func()
	logger  *log.Entry
}

func (h *Handler) Watch(w http.ResponseWriter, r *http.Request) {
	// subscribed before the handshake completes so no change is missed
	changes, cancel := h.Planner.Broker().Subscribe()
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		cancel()
		log.Info("Could not upgrade: ", err)
		return
	}
	wsConn := &watchConnection{
		conn:    conn,
		changes: changes,
		cancel:  cancel,
		logger:  log.WithField("remote", r.RemoteAddr),
	}
	wsConn.logger.Debug("Watcher connected")

	go wsConn.writePump()
	go wsConn.readPump()
}

// readPump only watches for the client going away
func (wsConn *watchConnection) readPump() {
	defer wsConn.cancel()
	wsConn.conn.SetReadDeadline(time.Now().Add(pongWait))
	wsConn.conn.SetPongHandler(func(string) error {
		return wsConn.conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		_, _, err := wsConn.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(
				err,
				websocket.CloseGoingAway,
				websocket.CloseAbnormalClosure,
			) {
				wsConn.logger.Info("Watcher closed: ", err)
			}
			return
		}
	}
}

func (wsConn *watchConnection) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		wsConn.cancel()
		wsConn.conn.Close()
		wsConn.logger.Debug("Watcher disconnected")
	}()
	for {
		select {
		case change, ok := <-wsConn.changes:
			wsConn.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				wsConn.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := wsConn.conn.WriteJSON(change); err != nil {
				wsConn.logger.Error("Could not send change: ", err)
				return
			}
		case <-ticker.C:
			wsConn.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := wsConn.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
