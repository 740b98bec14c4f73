package ws

import (
	"tasmeem_backend/internal/logger"

	"github.com/gorilla/websocket"
)

type Client struct {
	UserID  string
	Conn    *websocket.Conn
	Send    chan Event
	Manager *Manager
}

// readPump drains the connection until it closes. Clients only receive;
// incoming frames are discarded.
func (c *Client) readPump() {
	defer func() {
		c.Manager.unregister <- c
		c.Conn.Close()
	}()

	for {
		if _, _, err := c.Conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (c *Client) writePump() {
	defer c.Conn.Close()

	for event := range c.Send {
		if err := c.Conn.WriteJSON(event); err != nil {
			logger.Debug("WebSocket write error", "user_id", c.UserID, "error", err)
			return
		}
	}
}
