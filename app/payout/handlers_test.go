package payout

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/joefazee/prognos/app/api"
	"github.com/joefazee/prognos/models"
)

func setupRouter(source OddsSource) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	cfg := GetDefaultConfig()
	cfg.OddsCacheTTL = 0
	cfg.StreamInterval = 100 * time.Millisecond
	Init(r.Group("/api/v1"), Dependencies{Source: source, Config: cfg})
	return r
}

func doJSON(r http.Handler, method, path string, body interface{}) (*httptest.ResponseRecorder, api.Response) {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp api.Response
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	return w, resp
}

func TestHandler_Quote(t *testing.T) {
	r := setupRouter(new(MockOddsSource))

	t.Run("success", func(t *testing.T) {
		w, resp := doJSON(r, http.MethodPost, "/api/v1/payout/quote",
			map[string]interface{}{"stake_amount": 10, "side": "YES", "yes_odds": 65, "no_odds": 35})

		assert.Equal(t, http.StatusOK, w.Code)
		assert.True(t, resp.Success)
		data := resp.Data.(map[string]interface{})
		assert.Equal(t, "15.18", data["display"].(map[string]interface{})["net_payout"])
	})

	t.Run("validation", func(t *testing.T) {
		w, resp := doJSON(r, http.MethodPost, "/api/v1/payout/quote",
			map[string]interface{}{"stake_amount": -1, "side": "UP", "yes_odds": 0, "no_odds": 35})

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		details := resp.Error.Details.(map[string]interface{})
		assert.Contains(t, details, "stake_amount")
		assert.Contains(t, details, "side")
		assert.Contains(t, details, "yes_odds")
	})

	t.Run("stake too large to price", func(t *testing.T) {
		w, resp := doJSON(r, http.MethodPost, "/api/v1/payout/quote",
			map[string]interface{}{"stake_amount": 1e307, "side": "YES", "yes_odds": 1, "no_odds": 50})

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Contains(t, resp.Error.Details.(map[string]interface{}), "stake_amount")
	})

	t.Run("malformed body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/payout/quote", strings.NewReader("{"))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHandler_QuoteMarket(t *testing.T) {
	id := uuid.New()
	closedID := uuid.New()
	missingID := uuid.New()

	source := new(MockOddsSource)
	source.On("GetOdds", mock.Anything, id).Return(openOdds(id, 50, 50), nil)
	source.On("GetOdds", mock.Anything, closedID).Return(models.MarketOdds{MarketID: closedID, YesOdds: 50, NoOdds: 50}, nil)
	source.On("GetOdds", mock.Anything, missingID).Return(models.MarketOdds{}, models.ErrRecordNotFound)
	r := setupRouter(source)

	w, resp := doJSON(r, http.MethodPost, "/api/v1/markets/"+id.String()+"/quote", map[string]interface{}{"stake_amount": 5, "side": "no"})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, resp.Success)

	w, resp = doJSON(r, http.MethodPost, "/api/v1/markets/"+closedID.String()+"/quote", map[string]interface{}{"stake_amount": 5, "side": "no"})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "MARKET_NOT_QUOTABLE", resp.Error.Code)

	w, _ = doJSON(r, http.MethodPost, "/api/v1/markets/"+missingID.String()+"/quote", map[string]interface{}{"stake_amount": 5, "side": "no"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, _ = doJSON(r, http.MethodPost, "/api/v1/markets/not-a-uuid/quote", map[string]interface{}{"stake_amount": 5, "side": "no"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_QuickQuotes(t *testing.T) {
	id := uuid.New()
	source := new(MockOddsSource)
	source.On("GetOdds", mock.Anything, id).Return(openOdds(id, 25, 75), nil)
	r := setupRouter(source)

	w, resp := doJSON(r, http.MethodGet, "/api/v1/markets/"+id.String()+"/quote/quick?side=yes", nil)
	require.Equal(t, http.StatusOK, w.Code)
	quotes := resp.Data.(map[string]interface{})["quotes"].([]interface{})
	assert.Len(t, quotes, 4)

	w, _ = doJSON(r, http.MethodGet, "/api/v1/markets/"+id.String()+"/quote/quick", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestHandler_Stream(t *testing.T) {
	id := uuid.New()
	source := new(MockOddsSource)
	source.On("GetOdds", mock.Anything, id).Return(openOdds(id, 50, 50), nil).Twice()
	source.On("GetOdds", mock.Anything, id).Return(openOdds(id, 60, 40), nil).Once()
	source.On("GetOdds", mock.Anything, id).Return(models.MarketOdds{MarketID: id, YesOdds: 60, NoOdds: 40}, nil)

	srv := httptest.NewServer(setupRouter(source))
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/api/v1/markets/" + id.String() + "/quote/stream?side=YES&stake=10"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	_ = conn.SetReadDeadline(time.Now().Add(5 * time.Second))

	var msg StreamMessage
	require.NoError(t, conn.ReadJSON(&msg))
	assert.Equal(t, MessageQuote, msg.Type)
	assert.Equal(t, 50.0, msg.Data.(map[string]interface{})["yes_odds"])

	// unchanged odds are not re-sent; the next frame carries the move
	require.NoError(t, conn.ReadJSON(&msg))
	assert.Equal(t, MessageQuote, msg.Type)
	assert.Equal(t, 60.0, msg.Data.(map[string]interface{})["yes_odds"])

	require.NoError(t, conn.ReadJSON(&msg))
	assert.Equal(t, MessageClosed, msg.Type)
}

func TestHandler_StreamStopsOnUnquotableMarket(t *testing.T) {
	tests := []struct {
		name string
		odds models.MarketOdds
		err  error
	}{
		{name: "not binary", err: models.ErrMarketNotBinary},
		{name: "invalid odds", odds: models.MarketOdds{YesOdds: 0, NoOdds: 100, Open: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id := uuid.New()
			source := new(MockOddsSource)
			source.On("GetOdds", mock.Anything, id).Return(tt.odds, tt.err)

			srv := httptest.NewServer(setupRouter(source))
			defer srv.Close()

			url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/api/v1/markets/" + id.String() + "/quote/stream?side=YES&stake=10"
			conn, _, err := websocket.DefaultDialer.Dial(url, nil)
			require.NoError(t, err)
			defer conn.Close()

			_ = conn.SetReadDeadline(time.Now().Add(5 * time.Second))

			var msg StreamMessage
			require.NoError(t, conn.ReadJSON(&msg))
			assert.Equal(t, MessageError, msg.Type)

			assert.Error(t, conn.ReadJSON(&msg))
			source.AssertNumberOfCalls(t, "GetOdds", 1)
		})
	}
}

func TestHandler_StreamRejectsBadQuery(t *testing.T) {
	r := setupRouter(new(MockOddsSource))
	w, _ := doJSON(r, http.MethodGet, "/api/v1/markets/"+uuid.NewString()+"/quote/stream?side=YES", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}
