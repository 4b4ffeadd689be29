package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/mediasort/mediasort/pkg/events"
	mio "github.com/mediasort/mediasort/pkg/io"
	"github.com/mediasort/mediasort/pkg/logger"
	"github.com/mediasort/mediasort/pkg/manager"
	"github.com/mediasort/mediasort/pkg/probe"
	"github.com/mediasort/mediasort/pkg/storage"
	mediaSqlite "github.com/mediasort/mediasort/pkg/storage/sqlite"
	"github.com/mediasort/mediasort/pkg/tmdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) (Server, *events.Bus) {
	t.Helper()

	store, err := mediaSqlite.New(":memory:")
	require.NoError(t, err)
	require.NoError(t, store.Init(context.Background()))

	bus := events.NewBus()
	mgr := manager.New(
		store,
		func(apiKey string) tmdb.ClientInterface { return tmdb.New("", apiKey) },
		probe.New(),
		&mio.MediaFileSystem{},
		bus,
	)

	return New(logger.Get(), mgr), bus
}

func TestHealthz(t *testing.T) {
	s, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	s.Healthz()(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ok")
}

func TestStartScanUnconfigured(t *testing.T) {
	s, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/scan", nil)
	rec := httptest.NewRecorder()
	s.StartScan()(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestStartOrganizeRequiresIDs(t *testing.T) {
	s, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/organize", strings.NewReader(`{"ids":[]}`))
	rec := httptest.NewRecorder()
	s.StartOrganize()(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListMediaItemsEmpty(t *testing.T) {
	s, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/items", nil)
	rec := httptest.NewRecorder()
	s.ListMediaItems()(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Response []*storage.MediaItem `json:"response"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Empty(t, resp.Response)
}

func TestEventsStream(t *testing.T) {
	s, bus := newTestServer(t)

	srv := httptest.NewServer(s.Events())
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	// give the handler a beat to register its subscriber
	time.Sleep(100 * time.Millisecond)

	bus.Publish(events.Event{
		Type: events.TypeScanProgress,
		Data: events.ScanProgress{JobID: 7, TotalFiles: 3, ProcessedFiles: 1},
	})

	var evt struct {
		Type string              `json:"type"`
		Data events.ScanProgress `json:"data"`
	}
	require.NoError(t, conn.ReadJSON(&evt))
	assert.Equal(t, events.TypeScanProgress, evt.Type)
	assert.Equal(t, int64(7), evt.Data.JobID)
	assert.Equal(t, 3, evt.Data.TotalFiles)
}
