package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"anchor-sim/internal/api/models"
	"anchor-sim/internal/data"
	"anchor-sim/internal/model"
	"anchor-sim/internal/simulation"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/gorilla/websocket"
)

func readFrame(t *testing.T, conn *websocket.Conn) models.StreamFrame {
	t.Helper()
	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, raw, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read frame: %v", err)
	}
	var f models.StreamFrame
	if err := json.Unmarshal(raw, &f); err != nil {
		t.Fatalf("decode frame %s: %v", raw, err)
	}
	return f
}

func TestStreamPushesNewVersions(t *testing.T) {
	gin.SetMode(gin.TestMode)
	sessions, err := data.NewSessionCache(4, nil)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(sessions.Purge)
	router := NewRouter(RouterConfig{
		Sessions:       sessions,
		StreamInterval: 10 * time.Millisecond,
		TickerFactory:  (&simulation.ManualTickers{}).New,
	})
	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	s, err := simulation.New(model.DefaultConfig(), simulation.WithTickerFactory((&simulation.ManualTickers{}).New))
	if err != nil {
		t.Fatal(err)
	}
	sessions.Add(s)

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/api/v1/sessions/" + s.ID() + "/stream"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer conn.Close()

	first := readFrame(t, conn)
	if first.Type != "snapshot" || first.Data == nil || first.Data.RunState != "STOPPED" {
		t.Fatalf("first frame = %+v", first)
	}

	if err := s.Start(); err != nil {
		t.Fatal(err)
	}
	next := readFrame(t, conn)
	if next.Data.Version <= first.Data.Version || next.Data.RunState != "RUNNING" {
		t.Fatalf("second frame = %+v", next.Data)
	}

	if err := sessions.Remove(s.ID()); err != nil {
		t.Fatal(err)
	}
	last := readFrame(t, conn)
	if last.Type != "closed" {
		t.Fatalf("last frame type = %q", last.Type)
	}
}

func TestStreamUnknownSession(t *testing.T) {
	ts := newTestServer(t)
	w := ts.do(t, http.MethodGet, "/api/v1/sessions/missing/stream", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d", w.Code)
	}
}

func TestStreamRejectsUnlistedOrigin(t *testing.T) {
	gin.SetMode(gin.TestMode)
	sessions, err := data.NewSessionCache(4, nil)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(sessions.Purge)
	srv := httptest.NewServer(NewRouter(RouterConfig{
		Sessions:       sessions,
		CORSOrigins:    []string{"http://allowed.test"},
		StreamInterval: 10 * time.Millisecond,
	}))
	t.Cleanup(srv.Close)

	s, err := simulation.New(model.DefaultConfig(), simulation.WithTickerFactory((&simulation.ManualTickers{}).New))
	if err != nil {
		t.Fatal(err)
	}
	sessions.Add(s)
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/api/v1/sessions/" + s.ID() + "/stream"

	_, resp, err := websocket.DefaultDialer.Dial(url, http.Header{"Origin": {"http://evil.test"}})
	if err == nil {
		t.Fatal("upgrade from unlisted origin succeeded")
	}
	if resp == nil || resp.StatusCode != http.StatusForbidden {
		t.Fatalf("response = %+v, want 403", resp)
	}

	conn, _, err := websocket.DefaultDialer.Dial(url, http.Header{"Origin": {"http://allowed.test"}})
	if err != nil {
		t.Fatalf("allowed origin: %v", err)
	}
	defer conn.Close()
	if f := readFrame(t, conn); f.Type != "snapshot" {
		t.Fatalf("frame type = %q", f.Type)
	}
}
