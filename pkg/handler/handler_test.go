// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/AccelByte/extend-landing-promo/pkg/countdown"
	"github.com/AccelByte/extend-landing-promo/pkg/page"
	"github.com/AccelByte/extend-landing-promo/pkg/store"
	"github.com/AccelByte/extend-landing-promo/pkg/timing"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticHealth bool

func (h staticHealth) IsHealthy(context.Context) bool { return bool(h) }

type staticCountdown countdown.Snapshot

func (c staticCountdown) Snapshot() countdown.Snapshot { return countdown.Snapshot(c) }

func newTestDocument() *page.Document {
	doc := page.NewDocument()
	doc.Register(page.InlineTimerID).SetText("অফার শেষ হচ্ছে: 09:59")
	doc.Register(page.FixedBannerID, page.BannerHiddenClass)
	return doc
}

func serve(t *testing.T, h http.Handler, method, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(method, path, nil))
	return rec
}

func TestPage_List(t *testing.T) {
	router := NewRouter(newTestDocument(), staticCountdown{}, staticHealth(true))

	rec := serve(t, router, http.MethodGet, "/api/v1/page")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var elements []page.ElementSnapshot
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &elements))
	require.Len(t, elements, 2)
	assert.Equal(t, page.InlineTimerID, elements[0].ID)
	assert.Equal(t, "অফার শেষ হচ্ছে: 09:59", elements[0].Text)
	assert.Equal(t, []string{page.BannerHiddenClass}, elements[1].Classes)
}

func TestPage_Element(t *testing.T) {
	router := NewRouter(newTestDocument(), staticCountdown{}, staticHealth(true))

	rec := serve(t, router, http.MethodGet, "/api/v1/page/elements/"+page.FixedBannerID)
	require.Equal(t, http.StatusOK, rec.Code)

	var el page.ElementSnapshot
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &el))
	assert.Equal(t, page.FixedBannerID, el.ID)
	assert.Contains(t, el.Classes, page.BannerHiddenClass)
}

func TestPage_ElementNotFound(t *testing.T) {
	router := NewRouter(newTestDocument(), staticCountdown{}, staticHealth(true))

	rec := serve(t, router, http.MethodGet, "/api/v1/page/elements/"+page.FixedTimerID)
	require.Equal(t, http.StatusNotFound, rec.Code)

	var body errorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body.Error, page.FixedTimerID)
}

func TestCountdown_Get(t *testing.T) {
	snap := countdown.Snapshot{
		Phase:      countdown.PhaseRunning,
		ExpiryTime: 2200,
		Remaining:  600,
		Display:    "10:00",
		Cycles:     1,
	}
	router := NewRouter(page.NewDocument(), staticCountdown(snap), staticHealth(true))

	rec := serve(t, router, http.MethodGet, "/api/v1/countdown")
	require.Equal(t, http.StatusOK, rec.Code)

	var got countdown.Snapshot
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, snap, got)
}

func TestCountdown_LiveEngine(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	clock := timing.NewManualUnix(1000)
	doc := page.NewDocument()
	inline := doc.Register(page.InlineTimerID)
	engine := countdown.NewEngine(
		context.Background(),
		countdown.DefaultConfig(),
		clock, clock,
		store.NewRedisStore(client, store.RedisStoreConfig{}),
		countdown.Displays{Inline: inline},
	)
	engine.Start()
	clock.AdvanceSeconds(5)

	router := NewRouter(doc, engine, staticHealth(true))

	rec := serve(t, router, http.MethodGet, "/api/v1/countdown")
	require.Equal(t, http.StatusOK, rec.Code)

	var got countdown.Snapshot
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, countdown.PhaseRunning, got.Phase)
	assert.Equal(t, int64(1600), got.ExpiryTime)
	assert.Equal(t, "09:55", got.Display)

	rec = serve(t, router, http.MethodGet, "/api/v1/page/elements/"+page.InlineTimerID)
	require.Equal(t, http.StatusOK, rec.Code)
	var el page.ElementSnapshot
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &el))
	assert.Equal(t, "অফার শেষ হচ্ছে: 09:55", el.Text)
}

func TestHealth(t *testing.T) {
	tests := []struct {
		name       string
		healthy    bool
		wantStatus int
		wantBody   string
	}{
		{name: "store reachable", healthy: true, wantStatus: http.StatusOK, wantBody: "ok"},
		{name: "store down", healthy: false, wantStatus: http.StatusServiceUnavailable, wantBody: "unavailable"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := NewRouter(page.NewDocument(), staticCountdown{}, staticHealth(tt.healthy))

			rec := serve(t, router, http.MethodGet, "/healthz")
			require.Equal(t, tt.wantStatus, rec.Code)

			var body healthResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantBody, body.Status)
		})
	}
}

func TestHealth_StoreChecker(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	checker := store.NewHealthChecker(store.NewRedisStore(client, store.RedisStoreConfig{}))
	router := NewRouter(page.NewDocument(), staticCountdown{}, checker)

	assert.Equal(t, http.StatusOK, serve(t, router, http.MethodGet, "/healthz").Code)

	mr.Close()
	assert.Equal(t, http.StatusServiceUnavailable, serve(t, router, http.MethodGet, "/healthz").Code)
}

func TestRouter_MethodNotAllowed(t *testing.T) {
	router := NewRouter(page.NewDocument(), staticCountdown{}, staticHealth(true))

	rec := serve(t, router, http.MethodPost, "/api/v1/countdown")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
