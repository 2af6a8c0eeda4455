package main

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/katalvlaran/taxirelay/taxienv"
)

// frame is one monitor update: the structured state plus the rendered map.
type frame struct {
	Episode  int              `json:"episode"`
	Snapshot taxienv.Snapshot `json:"snapshot"`
	Text     string           `json:"text"`
}

// monitor fans episode frames out to websocket subscribers.
type monitor struct {
	upgrader websocket.Upgrader

	mu      sync.Mutex
	clients map[*websocket.Conn]struct{}
	last    *frame
}

func newMonitor() *monitor {
	return &monitor{
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		clients: make(map[*websocket.Conn]struct{}),
	}
}

// serve runs the monitor endpoints until the context is canceled.
func (m *monitor) serve(ctx context.Context, addr string) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", m.handleWS)
	mux.HandleFunc("/healthz", m.handleHealth)

	srv := &http.Server{Addr: addr, Handler: mux}
	go func() {
		<-ctx.Done()
		srv.Shutdown(context.Background())
	}()

	log.Printf("monitor listening on %s", addr)
	if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

// handleWS upgrades the connection and subscribes it to episode frames.
// A late subscriber immediately gets the most recent frame.
func (m *monitor) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := m.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("monitor: upgrade failed: %v", err)
		return
	}

	m.mu.Lock()
	m.clients[conn] = struct{}{}
	if m.last != nil {
		if err := conn.WriteJSON(m.last); err != nil {
			delete(m.clients, conn)
			m.mu.Unlock()
			conn.Close()
			return
		}
	}
	m.mu.Unlock()
	log.Printf("monitor: client %s subscribed", conn.RemoteAddr())

	// Clients send nothing; reading only detects the close.
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				m.drop(conn)
				return
			}
		}
	}()
}

func (m *monitor) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// publish sends the frame to every subscriber, dropping the ones that fail.
func (m *monitor) publish(f frame) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.last = &f
	for conn := range m.clients {
		if err := conn.WriteJSON(f); err != nil {
			delete(m.clients, conn)
			conn.Close()
		}
	}
}

func (m *monitor) drop(conn *websocket.Conn) {
	m.mu.Lock()
	if _, ok := m.clients[conn]; ok {
		delete(m.clients, conn)
		log.Printf("monitor: client %s left", conn.RemoteAddr())
	}
	m.mu.Unlock()
	conn.Close()
}
