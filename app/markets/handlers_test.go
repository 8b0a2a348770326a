package markets

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/joefazee/prognos/app/api"
	"github.com/joefazee/prognos/models"
)

func setupRouter(repo Repository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	Init(r.Group("/api/v1"), Dependencies{Repository: repo})
	return r
}

func get(r http.Handler, path string) (*httptest.ResponseRecorder, api.Response) {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp api.Response
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	return w, resp
}

func TestHandler_GetMarkets(t *testing.T) {
	t.Run("success with filters", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("GetAll", mock.Anything, mock.MatchedBy(func(f *MarketFilters) bool {
			return f.Category == "Tech" && f.MarketType != nil && *f.MarketType == models.MarketTypeYesNo &&
				f.Page == 2 && f.PerPage == 1
		})).Return([]models.Market{testMarket(models.MarketTypeYesNo)}, int64(3), nil)

		w, resp := get(setupRouter(repo), "/api/v1/markets?category=Tech&market_type=yes-no&page=2&per_page=1")

		require.Equal(t, http.StatusOK, w.Code)
		assert.Len(t, resp.Data, 1)
		meta := resp.Meta.(map[string]interface{})
		assert.EqualValues(t, 3, meta["total_pages"])
		assert.Equal(t, true, meta["has_next"])
		assert.Equal(t, true, meta["has_prev"])
		repo.AssertExpectations(t)
	})

	t.Run("empty", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("GetAll", mock.Anything, mock.Anything).Return([]models.Market{}, int64(0), nil)

		w, resp := get(setupRouter(repo), "/api/v1/markets")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "No markets found", resp.Message)
		assert.Equal(t, []interface{}{}, resp.Data)
	})

	t.Run("invalid filter", func(t *testing.T) {
		w, resp := get(setupRouter(new(MockRepository)), "/api/v1/markets?status=pending&sort_order=up")
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		details := resp.Error.Details.(map[string]interface{})
		assert.Contains(t, details, "status")
		assert.Contains(t, details, "sort_order")
	})

	t.Run("bad page", func(t *testing.T) {
		w, _ := get(setupRouter(new(MockRepository)), "/api/v1/markets?page=abc")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("repository error", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("GetAll", mock.Anything, mock.Anything).Return(nil, int64(0), errors.New("db down"))

		w, resp := get(setupRouter(repo), "/api/v1/markets")
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "INTERNAL_ERROR", resp.Error.Code)
	})
}

func TestHandler_GetMarketByID(t *testing.T) {
	repo := new(MockRepository)
	m := testMarket(models.MarketTypeYesNo)
	missing := uuid.New()
	repo.On("GetByID", mock.Anything, m.ID).Return(&m, nil)
	repo.On("GetByID", mock.Anything, missing).Return(nil, models.ErrRecordNotFound)
	r := setupRouter(repo)

	w, resp := get(r, "/api/v1/markets/"+m.ID.String())
	require.Equal(t, http.StatusOK, w.Code)
	data := resp.Data.(map[string]interface{})
	assert.Equal(t, "Will X happen?", data["title"])
	assert.Equal(t, []interface{}{"Yes", "No"}, data["outcomes"])
	assert.Equal(t, "65", data["yes_odds"])

	w, _ = get(r, "/api/v1/markets/"+missing.String())
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, _ = get(r, "/api/v1/markets/not-a-uuid")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetCategories(t *testing.T) {
	w, resp := get(setupRouter(new(MockRepository)), "/api/v1/markets/categories")

	require.Equal(t, http.StatusOK, w.Code)
	data := resp.Data.(map[string]interface{})
	assert.Len(t, data["categories"], len(models.Categories))
	assert.Equal(t, []interface{}{"yes-no", "multiple", "scalar"}, data["market_types"])
}
