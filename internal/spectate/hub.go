package spectate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"
)

const (
	clientBuffer = 8
	writeTimeout = 5 * time.Second
	readTimeout  = 60 * time.Second
)

// Hub fans published frames out to connected watchers.
type Hub struct {
	boot        Bootstrap
	logger      *log.Logger
	allowRemote bool

	upgrader websocket.Upgrader
	nextID   atomic.Uint64
	dropped  atomic.Uint64

	mu      sync.Mutex
	clients map[uint64]chan []byte
	srv     *http.Server
}

// NewHub creates a hub announcing boot. Unless allowRemote is set only
// loopback peers may connect.
func NewHub(boot Bootstrap, logger *log.Logger, allowRemote bool) *Hub {
	if boot.ProtocolVersion == 0 {
		boot.ProtocolVersion = ProtocolVersion
	}
	return &Hub{
		boot:        boot,
		logger:      logger,
		allowRemote: allowRemote,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4 * 1024,
			WriteBufferSize: 64 * 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
		clients: make(map[uint64]chan []byte),
	}
}

// Handler returns the hub's HTTP routes: /bootstrap and /ws.
func (h *Hub) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/bootstrap", h.bootstrapHandler)
	mux.HandleFunc("/ws", h.wsHandler)
	return mux
}

// Publish sends a frame to every watcher without blocking. Watchers whose
// buffer is full miss this frame.
func (h *Hub) Publish(msg FrameMsg) error {
	msg.Type = MsgFrame
	msg.ProtocolVersion = ProtocolVersion
	b, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("spectate: marshal frame: %w", err)
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for _, out := range h.clients {
		select {
		case out <- b:
		default:
			h.dropped.Add(1)
		}
	}
	return nil
}

// Clients returns the number of connected watchers.
func (h *Hub) Clients() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Dropped returns how many per-watcher frames were skipped.
func (h *Hub) Dropped() uint64 {
	return h.dropped.Load()
}

// ListenAndServe serves the hub on addr until ctx is cancelled or Close is
// called.
func (h *Hub) ListenAndServe(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("spectate: listen %s: %w", addr, err)
	}
	return h.Serve(ctx, ln)
}

// Serve serves the hub on an existing listener.
func (h *Hub) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           h.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	h.mu.Lock()
	h.srv = srv
	h.mu.Unlock()

	go func() {
		<-ctx.Done()
		h.Close()
	}()

	h.logger.Info("spectator hub listening", "addr", ln.Addr().String())
	if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("spectate: serve: %w", err)
	}
	return nil
}

// Close stops the server and disconnects every watcher.
func (h *Hub) Close() error {
	h.mu.Lock()
	srv := h.srv
	h.srv = nil
	for id, out := range h.clients {
		close(out)
		delete(h.clients, id)
	}
	h.mu.Unlock()

	if srv == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	return srv.Shutdown(ctx)
}

func (h *Hub) bootstrapHandler(rw http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		rw.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if !h.allowed(r) {
		http.Error(rw, "forbidden", http.StatusForbidden)
		return
	}
	rw.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(rw).Encode(h.boot)
}

func (h *Hub) wsHandler(rw http.ResponseWriter, r *http.Request) {
	if !h.allowed(r) {
		http.Error(rw, "forbidden", http.StatusForbidden)
		return
	}
	conn, err := h.upgrader.Upgrade(rw, r, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	id, out := h.subscribe()
	defer h.unsubscribe(id)
	h.logger.Info("watcher connected", "id", id, "remote", r.RemoteAddr)

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	writeErr := make(chan error, 1)
	go func() {
		for {
			select {
			case <-ctx.Done():
				writeErr <- ctx.Err()
				return
			case b, ok := <-out:
				if !ok {
					_ = conn.WriteControl(websocket.CloseMessage,
						websocket.FormatCloseMessage(websocket.CloseGoingAway, "round over"),
						time.Now().Add(time.Second))
					writeErr <- nil
					return
				}
				_ = conn.SetWriteDeadline(time.Now().Add(writeTimeout))
				if err := conn.WriteMessage(websocket.TextMessage, b); err != nil {
					writeErr <- err
					return
				}
			}
		}
	}()

	// Watchers never send anything meaningful; reading keeps control frames
	// flowing and detects disconnects.
	go func() {
		for {
			_ = conn.SetReadDeadline(time.Now().Add(readTimeout))
			if _, _, err := conn.ReadMessage(); err != nil {
				cancel()
				return
			}
		}
	}()

	<-writeErr
	h.logger.Info("watcher disconnected", "id", id)
}

func (h *Hub) subscribe() (uint64, chan []byte) {
	id := h.nextID.Add(1)
	out := make(chan []byte, clientBuffer)
	h.mu.Lock()
	h.clients[id] = out
	h.mu.Unlock()
	return id, out
}

func (h *Hub) unsubscribe(id uint64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if out, ok := h.clients[id]; ok {
		close(out)
		delete(h.clients, id)
	}
}

func (h *Hub) allowed(r *http.Request) bool {
	return h.allowRemote || isLoopbackRemote(r.RemoteAddr)
}

func isLoopbackRemote(remoteAddr string) bool {
	host := remoteAddr
	if hst, _, err := net.SplitHostPort(remoteAddr); err == nil {
		host = hst
	}
	host = strings.TrimPrefix(host, "[")
	host = strings.TrimSuffix(host, "]")
	ip := net.ParseIP(host)
	return ip != nil && ip.IsLoopback()
}
