// Package ws is the streaming gateway: it bridges websocket clients to
// the broadcast hub and answers their on-demand risk/tariff requests
// through the same facade the HTTP handlers use.
package ws

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/Sravyamissula/trade-Genie-Final-Do-sub000/internal/broadcast"
	"github.com/Sravyamissula/trade-Genie-Final-Do-sub000/internal/usecase"
	xlogger "github.com/Sravyamissula/trade-Genie-Final-Do-sub000/pkg/logger"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
)

const writeDeadline = 5 * time.Second

// Frame types sent to clients.
const (
	frameMarketUpdate = "market_update"
	frameRisk         = "risk_assessment"
	frameTariff       = "tariff_assessment"
	frameError        = "error"
)

// clientRequest is an on-demand query issued over the socket.
type clientRequest struct {
	Type        string `json:"type"`
	Country     string `json:"country,omitempty"`
	Product     string `json:"product,omitempty"`
	FromCountry string `json:"from,omitempty"`
	ToCountry   string `json:"to,omitempty"`
}

// frame is the envelope for everything written to the socket.
type frame struct {
	Type      string      `json:"type"`
	Data      interface{} `json:"data,omitempty"`
	Message   string      `json:"message,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}

// Gateway upgrades HTTP connections and serves the streaming surface.
type Gateway struct {
	hub *broadcast.Hub
	svc *usecase.Intelligence
	log *xlogger.Logger

	upgrader websocket.Upgrader
}

// NewGateway creates the websocket gateway.
func NewGateway(hub *broadcast.Hub, svc *usecase.Intelligence, log *xlogger.Logger) *Gateway {
	if log == nil {
		log = xlogger.Nop()
	}
	return &Gateway{
		hub: hub,
		svc: svc,
		log: log,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
			// The dashboard is served from another origin.
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}
}

// RegisterRoutes mounts the websocket endpoint.
func (g *Gateway) RegisterRoutes(e *echo.Echo) {
	e.GET("/ws/market", g.Serve)
}

// Serve handles one websocket session. A writer goroutine owns the
// connection's write side; the read side parses on-demand requests and
// queues replies through the same writer.
func (g *Gateway) Serve(c echo.Context) error {
	conn, err := g.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}
	defer conn.Close()

	sub := g.hub.Subscribe()
	if sub == nil {
		return nil // hub already closed, shutting down
	}
	defer g.hub.Unsubscribe(sub.ID)

	g.log.Info("websocket client connected", xlogger.String("subscriber", sub.ID))

	// Replies to on-demand requests flow through here so only the
	// writer goroutine touches the connection's write side.
	replies := make(chan frame, 8)
	writerDone := make(chan struct{})

	go func() {
		defer close(writerDone)
		for {
			select {
			case <-sub.Done():
				return
			case update, ok := <-sub.Updates():
				if !ok {
					return
				}
				if !g.write(conn, frame{Type: frameMarketUpdate, Data: update, Timestamp: update.Timestamp}) {
					return
				}
			case f := <-replies:
				if !g.write(conn, f) {
					return
				}
			}
		}
	}()

	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			break
		}
		var req clientRequest
		if err := json.Unmarshal(raw, &req); err != nil {
			g.enqueue(replies, writerDone, frame{Type: frameError, Message: "malformed request", Timestamp: time.Now()})
			continue
		}
		g.enqueue(replies, writerDone, g.answer(req))
	}

	g.hub.Unsubscribe(sub.ID)
	<-writerDone
	g.log.Info("websocket client disconnected", xlogger.String("subscriber", sub.ID))
	return nil
}

// answer resolves an on-demand request via the facade. Unknown request
// types get an error frame; unknown countries/products resolve to the
// facade's documented defaults like any other query.
func (g *Gateway) answer(req clientRequest) frame {
	now := time.Now()
	switch req.Type {
	case "risk":
		if req.Country == "" {
			return frame{Type: frameError, Message: "risk request needs a country", Timestamp: now}
		}
		return frame{Type: frameRisk, Data: g.svc.GetRisk(req.Country, req.Product), Timestamp: now}
	case "tariff":
		if req.Product == "" || req.FromCountry == "" || req.ToCountry == "" {
			return frame{Type: frameError, Message: "tariff request needs product, from and to", Timestamp: now}
		}
		return frame{Type: frameTariff, Data: g.svc.GetTariff(req.Product, req.FromCountry, req.ToCountry), Timestamp: now}
	default:
		return frame{Type: frameError, Message: "unknown request type", Timestamp: now}
	}
}

func (g *Gateway) enqueue(replies chan frame, writerDone <-chan struct{}, f frame) {
	select {
	case replies <- f:
	case <-writerDone:
	}
}

func (g *Gateway) write(conn *websocket.Conn, f frame) bool {
	_ = conn.SetWriteDeadline(time.Now().Add(writeDeadline))
	if err := conn.WriteJSON(f); err != nil {
		g.log.Warn("websocket write failed", xlogger.Error(err))
		return false
	}
	return true
}
