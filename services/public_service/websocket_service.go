package public_service

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

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

// DashboardClient 一条仪表盘推送连接，scopeKey 决定它能收到哪些刷新通知
type DashboardClient struct {
	hub      *DashboardHub
	conn     *websocket.Conn
	send     chan []byte
	uid      int
	scopeKey string
}

// DashboardHub 仪表盘推送中心
// 后台数据发生变更时向相关可见域的连接推送刷新通知，前端收到后重新拉取摘要
type DashboardHub struct {
	mu      sync.RWMutex
	clients map[*DashboardClient]struct{}
}

func NewDashboardHub() *DashboardHub {
	return &DashboardHub{
		clients: make(map[*DashboardClient]struct{}),
	}
}

// 全局推送中心实例
var Hub = NewDashboardHub()

type refreshNotice struct {
	Type      string `json:"type"`
	Reason    string `json:"reason"`
	Timestamp int64  `json:"timestamp"`
}

// HandleConnection 升级WebSocket连接并登记到推送中心
func (h *DashboardHub) HandleConnection(c *gin.Context, uid int, scopeKey string) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("WebSocket upgrade failed: %v", err)
		return
	}

	client := &DashboardClient{
		hub:      h,
		conn:     conn,
		send:     make(chan []byte, 16),
		uid:      uid,
		scopeKey: scopeKey,
	}

	h.mu.Lock()
	h.clients[client] = struct{}{}
	h.mu.Unlock()

	go client.writePump()
	go client.readPump()
}

// NotifyRefresh 向指定可见域推送刷新通知
// scopeKey 为 "global" 时同时通知所有商家连接（全局数据变了，商家视图也可能变）
func (h *DashboardHub) NotifyRefresh(scopeKey, reason string) {
	notice := refreshNotice{
		Type:      "summary_refresh",
		Reason:    reason,
		Timestamp: time.Now().Unix(),
	}
	payload, err := json.Marshal(notice)
	if err != nil {
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for client := range h.clients {
		if scopeKey != "global" && client.scopeKey != scopeKey && client.scopeKey != "global" {
			continue
		}
		select {
		case client.send <- payload:
		default:
			// 发送队列已满，跳过本次通知
		}
	}
}

// ClientCount 当前连接数
func (h *DashboardHub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

func (h *DashboardHub) remove(client *DashboardClient) {
	h.mu.Lock()
	if _, ok := h.clients[client]; ok {
		delete(h.clients, client)
		close(client.send)
	}
	h.mu.Unlock()
}

// readPump 仅用于探测断连，收到的消息直接丢弃
func (c *DashboardClient) readPump() {
	defer func() {
		c.hub.remove(c)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(512)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			break
		}
	}
}

func (c *DashboardClient) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
