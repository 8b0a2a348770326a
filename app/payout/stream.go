package payout

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/joefazee/prognos/internal/logger"
	"github.com/joefazee/prognos/models"
)

const (
	MessageQuote  = "quote"
	MessageError  = "error"
	MessageClosed = "market_closed"

	writeWait = 5 * time.Second
)

// StreamMessage is a frame pushed to quote stream clients.
type StreamMessage struct {
	Type string      `json:"type"`
	Data interface{} `json:"data,omitempty"`
}

// Streamer pushes a fresh quote to a websocket client whenever the market's
// odds move.
type Streamer struct {
	service  Service
	interval time.Duration
	log      logger.Logger
	upgrader websocket.Upgrader
}

// NewStreamer creates a streamer polling odds every interval
func NewStreamer(service Service, interval time.Duration, log logger.Logger) *Streamer {
	return &Streamer{
		service:  service,
		interval: interval,
		log:      log,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
	}
}

// Serve upgrades the request and streams quotes until the client leaves or
// the market closes.
func (s *Streamer) Serve(w http.ResponseWriter, r *http.Request, marketID uuid.UUID, req MarketQuoteRequest) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Error(err, map[string]interface{}{"market_id": marketID.String(), "op": "websocket upgrade"})
		return
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	// the read loop only watches for the client going away
	go func() {
		defer cancel()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	var lastYes, lastNo float64
	sent := false

	for {
		quote, err := s.service.QuoteMarket(ctx, marketID, &req)
		var calcErr *models.CalculationError
		switch {
		case errors.Is(err, models.ErrMarketNotOpen), errors.Is(err, models.ErrRecordNotFound):
			s.write(conn, StreamMessage{Type: MessageClosed, Data: map[string]string{"market_id": marketID.String()}})
			return
		case errors.Is(err, models.ErrMarketNotBinary), errors.As(err, &calcErr):
			// retrying cannot help; the market's odds will never price this stake
			s.write(conn, StreamMessage{Type: MessageError, Data: map[string]string{"message": err.Error()}})
			return
		case err != nil:
			if ctx.Err() != nil {
				return
			}
			if !s.write(conn, StreamMessage{Type: MessageError, Data: map[string]string{"message": "Unable to calculate payout"}}) {
				return
			}
		case !sent || quote.YesOdds != lastYes || quote.NoOdds != lastNo:
			if !s.write(conn, StreamMessage{Type: MessageQuote, Data: quote}) {
				return
			}
			lastYes, lastNo, sent = quote.YesOdds, quote.NoOdds, true
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

func (s *Streamer) write(conn *websocket.Conn, msg StreamMessage) bool {
	_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
	if err := conn.WriteJSON(msg); err != nil {
		s.log.Debug("quote stream closed", map[string]interface{}{"error": err.Error()})
		return false
	}
	return true
}
