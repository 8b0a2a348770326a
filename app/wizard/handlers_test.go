package wizard

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
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joefazee/prognos/app/api"
	"github.com/joefazee/prognos/internal/cache"
	"github.com/joefazee/prognos/internal/security"
	"github.com/joefazee/prognos/models"
)

type testServer struct {
	router *gin.Engine
	drafts cache.Cache[models.MarketDraft]
}

func setupRouter(t *testing.T, submitter Submitter) testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	tokens, err := security.NewPasetoMaker(testTokenKey)
	require.NoError(t, err)

	drafts := cache.NewMemoryCache[models.MarketDraft]()
	cfg := GetDefaultConfig()
	cfg.SubmitTimeout = 5 * time.Second

	r := gin.New()
	Init(r.Group("/api/v1"), Dependencies{
		Submitter:  submitter,
		DraftCache: drafts,
		TokenMaker: tokens,
		Config:     cfg,
	})
	return testServer{router: r, drafts: drafts}
}

func (s testServer) do(method, path, token string, body interface{}) (*httptest.ResponseRecorder, api.Response) {
	return s.send(method, path, SessionTokenHeader, token, body)
}

func (s testServer) doDraft(method, path, draftToken string, body interface{}) (*httptest.ResponseRecorder, api.Response) {
	return s.send(method, path, DraftTokenHeader, draftToken, body)
}

func (s testServer) send(method, path, header, token string, body interface{}) (*httptest.ResponseRecorder, api.Response) {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set(header, token)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	var resp api.Response
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	return w, resp
}

func (s testServer) start(t *testing.T) (string, string) {
	t.Helper()
	w, resp := s.do(http.MethodPost, "/api/v1/wizard/sessions", "", nil)
	require.Equal(t, http.StatusCreated, w.Code)

	data := resp.Data.(map[string]interface{})
	session := data["session"].(map[string]interface{})
	return "/api/v1/wizard/sessions/" + session["id"].(string), data["token"].(string)
}

func dataOf(resp api.Response) map[string]interface{} {
	return resp.Data.(map[string]interface{})
}

func completePatch() map[string]interface{} {
	return map[string]interface{}{
		"title":             "Will X happen?",
		"category":          "Tech",
		"description":       "desc",
		"close_date":        time.Now().Add(72 * time.Hour).UTC().Format(time.RFC3339),
		"market_type":       "yes-no",
		"initial_liquidity": 50,
		"min_stake":         1,
		"max_stake":         100,
		"resolver_type":     "oracle",
		"agreed_to_terms":   true,
	}
}

func TestHandler_FullFlow(t *testing.T) {
	sub := &fakeSubmitter{}
	srv := setupRouter(t, sub)
	base, token := srv.start(t)

	w, resp := srv.do(http.MethodPost, base+"/next", token, nil)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	details := resp.Error.Details.(map[string]interface{})
	assert.Equal(t, "Title is required", details["title"])
	assert.Equal(t, "Close date is required", details["close_date"])

	w, resp = srv.do(http.MethodPatch, base+"/draft", token, completePatch())
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, dataOf(resp)["errors"])

	for step := 2; step <= 5; step++ {
		w, resp = srv.do(http.MethodPost, base+"/next", token, nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.EqualValues(t, step, dataOf(resp)["step"])
	}
	assert.Equal(t, true, dataOf(resp)["can_submit"])

	w, resp = srv.do(http.MethodPost, base+"/submit?wait=true", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	data := dataOf(resp)
	assert.Equal(t, true, data["submitted"])
	assert.Equal(t, false, data["submitting"])
	assert.Equal(t, "Will X happen?", data["market"].(map[string]interface{})["title"])
	assert.Equal(t, 1, sub.Calls())

	w, _ = srv.do(http.MethodPost, base+"/submit", token, nil)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, 1, sub.Calls())
}

func TestHandler_SubmitFailure(t *testing.T) {
	sub := &fakeSubmitter{}
	sub.setErr(assert.AnError)
	srv := setupRouter(t, sub)
	base, token := srv.start(t)

	srv.do(http.MethodPatch, base+"/draft", token, completePatch())
	for i := 0; i < 4; i++ {
		srv.do(http.MethodPost, base+"/next", token, nil)
	}

	w, resp := srv.do(http.MethodPost, base+"/submit?wait=true", token, nil)
	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Equal(t, "SUBMISSION_FAILED", resp.Error.Code)

	w, resp = srv.do(http.MethodGet, base, token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, false, dataOf(resp)["submitting"])
	assert.NotEmpty(t, dataOf(resp)["submit_error"])
}

func TestHandler_SubmitOffReview(t *testing.T) {
	srv := setupRouter(t, &fakeSubmitter{})
	base, token := srv.start(t)

	w, resp := srv.do(http.MethodPost, base+"/submit", token, nil)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "INVALID_STEP", resp.Error.Code)
}

func TestHandler_PreviousFromFirstStep(t *testing.T) {
	srv := setupRouter(t, &fakeSubmitter{})
	base, token := srv.start(t)

	srv.do(http.MethodPost, base+"/next", token, nil)
	w, resp := srv.do(http.MethodPost, base+"/previous", token, nil)

	require.Equal(t, http.StatusOK, w.Code)
	data := dataOf(resp)
	assert.EqualValues(t, 1, data["step"])
	assert.Len(t, data["errors"], 4)
}

func TestHandler_EditValidation(t *testing.T) {
	srv := setupRouter(t, &fakeSubmitter{})
	base, token := srv.start(t)

	t.Run("creator fee out of range", func(t *testing.T) {
		w, resp := srv.do(http.MethodPatch, base+"/draft", token, map[string]interface{}{"creator_fee": 11})
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Contains(t, resp.Error.Details, "creator_fee")
	})

	t.Run("too many options", func(t *testing.T) {
		opts := []string{"a", "b", "c", "d", "e", "f", "g"}
		w, resp := srv.do(http.MethodPatch, base+"/draft", token, map[string]interface{}{"options": opts})
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Contains(t, resp.Error.Details, "options")
	})

	t.Run("unknown market type", func(t *testing.T) {
		w, _ := srv.do(http.MethodPatch, base+"/draft", token, map[string]interface{}{"market_type": "range"})
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPatch, base+"/draft", strings.NewReader("{"))
		req.Header.Set(SessionTokenHeader, token)
		w := httptest.NewRecorder()
		srv.router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHandler_Options(t *testing.T) {
	srv := setupRouter(t, &fakeSubmitter{})
	base, token := srv.start(t)

	w, resp := srv.do(http.MethodPost, base+"/options", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, dataOf(resp)["draft"].(map[string]interface{})["options"], 3)

	w, _ = srv.do(http.MethodDelete, base+"/options/0", token, nil)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w, _ = srv.do(http.MethodDelete, base+"/options/x", token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, resp = srv.do(http.MethodDelete, base+"/options/2", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, dataOf(resp)["draft"].(map[string]interface{})["options"], 2)
}

func TestHandler_SaveAndResumeDraft(t *testing.T) {
	srv := setupRouter(t, &fakeSubmitter{})
	base, token := srv.start(t)

	srv.do(http.MethodPatch, base+"/draft", token, map[string]interface{}{"title": "Saved title"})
	w, resp := srv.do(http.MethodPost, base+"/draft", token, nil)
	require.Equal(t, http.StatusAccepted, w.Code)
	draftID := dataOf(resp)["draft_id"].(string)
	draftToken := dataOf(resp)["draft_token"].(string)
	require.NotEmpty(t, draftToken)

	require.Eventually(t, func() bool {
		w, _ := srv.doDraft(http.MethodGet, "/api/v1/wizard/drafts/"+draftID, draftToken, nil)
		return w.Code == http.StatusOK
	}, 2*time.Second, 10*time.Millisecond)

	w, resp = srv.doDraft(http.MethodPost, "/api/v1/wizard/sessions", draftToken, map[string]interface{}{"draft_id": draftID})
	require.Equal(t, http.StatusCreated, w.Code)
	session := dataOf(resp)["session"].(map[string]interface{})
	assert.Equal(t, "Saved title", session["draft"].(map[string]interface{})["title"])
	assert.Equal(t, draftID, session["draft_id"])

	w, _ = srv.doDraft(http.MethodGet, "/api/v1/wizard/drafts/not-a-uuid", draftToken, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_DraftToken(t *testing.T) {
	srv := setupRouter(t, &fakeSubmitter{})
	base, token := srv.start(t)
	otherBase, otherToken := srv.start(t)

	w, resp := srv.do(http.MethodPost, base+"/draft", token, nil)
	require.Equal(t, http.StatusAccepted, w.Code)
	draftID := dataOf(resp)["draft_id"].(string)
	draftToken := dataOf(resp)["draft_token"].(string)

	w, resp = srv.do(http.MethodPost, otherBase+"/draft", otherToken, nil)
	require.Equal(t, http.StatusAccepted, w.Code)
	otherDraftToken := dataOf(resp)["draft_token"].(string)

	require.Eventually(t, func() bool {
		w, _ := srv.doDraft(http.MethodGet, "/api/v1/wizard/drafts/"+draftID, draftToken, nil)
		return w.Code == http.StatusOK
	}, 2*time.Second, 10*time.Millisecond)

	tests := []struct {
		name  string
		token string
		want  int
	}{
		{name: "missing token", want: http.StatusUnauthorized},
		{name: "garbage token", token: "nope", want: http.StatusUnauthorized},
		{name: "token for other draft", token: otherDraftToken, want: http.StatusForbidden},
		{name: "session token", token: token, want: http.StatusForbidden},
		{name: "own draft", token: draftToken, want: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run("read "+tt.name, func(t *testing.T) {
			w, _ := srv.doDraft(http.MethodGet, "/api/v1/wizard/drafts/"+draftID, tt.token, nil)
			assert.Equal(t, tt.want, w.Code)
		})
		t.Run("resume "+tt.name, func(t *testing.T) {
			w, _ := srv.doDraft(http.MethodPost, "/api/v1/wizard/sessions", tt.token, map[string]interface{}{"draft_id": draftID})
			want := tt.want
			if want == http.StatusOK {
				want = http.StatusCreated
			}
			assert.Equal(t, want, w.Code)
		})
	}

	missing := uuid.NewString()
	w, _ = srv.doDraft(http.MethodGet, "/api/v1/wizard/drafts/"+missing, draftToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHandler_SessionToken(t *testing.T) {
	srv := setupRouter(t, &fakeSubmitter{})
	base, token := srv.start(t)
	otherBase, otherToken := srv.start(t)

	tests := []struct {
		name  string
		path  string
		token string
		want  int
	}{
		{name: "missing token", path: base, want: http.StatusUnauthorized},
		{name: "garbage token", path: base, token: "nope", want: http.StatusUnauthorized},
		{name: "token for other session", path: base, token: otherToken, want: http.StatusForbidden},
		{name: "bad session id", path: "/api/v1/wizard/sessions/abc", token: token, want: http.StatusBadRequest},
		{name: "own session", path: otherBase, token: otherToken, want: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, _ := srv.do(http.MethodGet, tt.path, tt.token, nil)
			assert.Equal(t, tt.want, w.Code)
		})
	}
}

func TestHandler_Discard(t *testing.T) {
	srv := setupRouter(t, &fakeSubmitter{})
	base, token := srv.start(t)

	w, _ := srv.do(http.MethodDelete, base, token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w, resp := srv.do(http.MethodGet, base, token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.False(t, resp.Success)
}
