package main

import (
	"log"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  4096,
	WriteBufferSize: 4096,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

const (
	wsWriteTimeout = 10 * time.Second
	wsPingInterval = 30 * time.Second
)

// WebSocketServer serves the live frame stream and the remote sample push
// endpoint.
type WebSocketServer struct {
	config      *Config
	bus         *FrameBus
	metrics     *PrometheusMetrics
	pushClients int64
}

// NewWebSocketServer creates the websocket handler set.
func NewWebSocketServer(config *Config, bus *FrameBus, metrics *PrometheusMetrics) *WebSocketServer {
	return &WebSocketServer{config: config, bus: bus, metrics: metrics}
}

// handleFrames streams every decoded frame to the client as JSON.
func (ws *WebSocketServer) handleFrames(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[WebSocket] Frame stream upgrade failed: %v", err)
		return
	}
	clientID := uuid.New().String()
	log.Printf("[WebSocket] Frame client %s connected from %s", clientID, r.RemoteAddr)
	if ws.metrics != nil {
		ws.metrics.wsConnectionsTotal.WithLabelValues("frames").Inc()
		ws.metrics.wsActiveConnections.WithLabelValues("frames").Inc()
		defer ws.metrics.wsActiveConnections.WithLabelValues("frames").Dec()
	}

	sub := ws.bus.Subscribe()
	defer ws.bus.Unsubscribe(sub)

	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ping := time.NewTicker(wsPingInterval)
	defer ping.Stop()
	defer conn.Close()

	for {
		select {
		case <-done:
			log.Printf("[WebSocket] Frame client %s disconnected", clientID)
			return
		case f := <-sub:
			conn.SetWriteDeadline(time.Now().Add(wsWriteTimeout))
			if err := conn.WriteJSON(f); err != nil {
				log.Printf("[WebSocket] Frame client %s write failed: %v", clientID, err)
				return
			}
		case <-ping.C:
			conn.SetWriteDeadline(time.Now().Add(wsWriteTimeout))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// handleSamples accepts binary sample pushes from a remote capture head.
// Each connection gets its own engine instance; decoded frames go to the
// shared bus and back to the pushing client.
func (ws *WebSocketServer) handleSamples(w http.ResponseWriter, r *http.Request) {
	if max := ws.config.Server.MaxPushClients; max > 0 &&
		atomic.LoadInt64(&ws.pushClients) >= int64(max) {
		http.Error(w, "too many push clients", http.StatusServiceUnavailable)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[WebSocket] Sample push upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	clientID := uuid.New().String()
	atomic.AddInt64(&ws.pushClients, 1)
	defer atomic.AddInt64(&ws.pushClients, -1)
	if ws.metrics != nil {
		ws.metrics.wsConnectionsTotal.WithLabelValues("samples").Inc()
		ws.metrics.wsActiveConnections.WithLabelValues("samples").Inc()
		defer ws.metrics.wsActiveConnections.WithLabelValues("samples").Dec()
	}

	engineCfg, err := ws.config.EngineConfig()
	if err != nil {
		log.Printf("[WebSocket] Sample push %s rejected: %v", clientID, err)
		return
	}
	receiver, err := NewReceiver("push:"+clientID[:8], engineCfg, ws.bus, ws.metrics, ws.config.Logging)
	if err != nil {
		log.Printf("[WebSocket] Sample push %s rejected: %v", clientID, err)
		return
	}
	log.Printf("[WebSocket] Sample push client %s connected from %s", clientID, r.RemoteAddr)

	// Forward this client's frames back over the same socket.
	sub := ws.bus.Subscribe()
	defer ws.bus.Unsubscribe(sub)
	go func() {
		source := "push:" + clientID[:8]
		for f := range sub {
			if f.Source != source {
				continue
			}
			conn.SetWriteDeadline(time.Now().Add(wsWriteTimeout))
			if err := conn.WriteJSON(f); err != nil {
				return
			}
		}
	}()

	for {
		msgType, data, err := conn.ReadMessage()
		if err != nil {
			log.Printf("[WebSocket] Sample push client %s disconnected", clientID)
			return
		}
		if msgType != websocket.BinaryMessage {
			continue
		}
		receiver.Feed(data)
	}
}
