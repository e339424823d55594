package server_test

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/dctopo/export"
	"github.com/katalvlaran/dctopo/registry"
	"github.com/katalvlaran/dctopo/server"
	"github.com/katalvlaran/dctopo/stats"
)

func newTestServer(t *testing.T, opts ...server.Option) (*httptest.Server, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zapcore.InfoLevel)
	srv := httptest.NewServer(server.New(registry.NewDefault(), zap.New(core), opts...).Handler())
	t.Cleanup(srv.Close)
	return srv, logs
}

func get(t *testing.T, url string) *http.Response {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func TestHealth(t *testing.T) {
	srv, logs := newTestServer(t)

	resp := get(t, srv.URL+"/health")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("X-Request-Id"))

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "ok", body["status"])

	entries := logs.FilterMessage("HTTP Request").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "/health", entries[0].ContextMap()["path"])
	assert.EqualValues(t, http.StatusOK, entries[0].ContextMap()["status"])
}

func TestRequestIDEcho(t *testing.T) {
	srv, _ := newTestServer(t)

	req, err := http.NewRequest(http.MethodGet, srv.URL+"/topologies/torus", nil)
	require.NoError(t, err)
	req.Header.Set("X-Request-Id", "abc-123")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "abc-123", resp.Header.Get("X-Request-Id"))
	var body struct {
		Error     string `json:"error"`
		RequestID string `json:"requestId"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "abc-123", body.RequestID)
}

func TestListTopologies(t *testing.T) {
	srv, _ := newTestServer(t)

	resp := get(t, srv.URL+"/topologies")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body []struct {
		Name   string               `json:"name"`
		Params []registry.ParamSpec `json:"params"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body, 2)
	assert.Equal(t, "bcube", body[0].Name)
	assert.Equal(t, "fattree", body[1].Name)
	assert.Equal(t, "r", body[1].Params[1].Name)
	assert.Equal(t, 1, body[1].Params[1].Default)
}

func TestBuildTopology_JSON(t *testing.T) {
	srv, _ := newTestServer(t)

	resp := get(t, srv.URL+"/topologies/fattree?k=4")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	doc, err := export.Decode(resp.Body, export.FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, "fattree", doc.Name)
	assert.Equal(t, map[string]int{"k": 4, "r": 1}, doc.Params)
	assert.Len(t, doc.Hosts, 16)
	assert.Len(t, doc.Switches, 20)
	assert.Len(t, doc.Links, 48)

	g, err := doc.ToGraph()
	require.NoError(t, err)
	assert.Equal(t, 36, g.NodeCount())
}

func TestBuildTopology_YAML(t *testing.T) {
	srv, _ := newTestServer(t)

	resp := get(t, srv.URL+"/topologies/bcube?k=0&n=2&format=yaml")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/yaml", resp.Header.Get("Content-Type"))

	doc, err := export.Decode(resp.Body, export.FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, []export.LinkDesc{{A: "s0_0", B: "h0_0"}, {A: "s0_0", B: "h0_1"}}, doc.Links)
}

func TestStatsEndpoint(t *testing.T) {
	srv, _ := newTestServer(t)

	resp := get(t, srv.URL+"/topologies/bcube/stats?k=1&n=4&sources=2")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var sum stats.Summary
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&sum))
	assert.Equal(t, 16, sum.Hosts)
	assert.Equal(t, 2, sum.Sources)
	assert.Equal(t, 4, sum.HostDiameter)
	assert.True(t, sum.Connected)
}

func TestStatusMapping(t *testing.T) {
	srv, _ := newTestServer(t, server.WithMaxNodes(1000))

	cases := []struct {
		path string
		want int
	}{
		{"/topologies/torus", http.StatusNotFound},
		{"/topologies/torus/stats", http.StatusNotFound},
		{"/topologies/bcube?n=four", http.StatusBadRequest},
		{"/topologies/bcube?n=0", http.StatusBadRequest},
		{"/topologies/fattree?k=5", http.StatusBadRequest},
		{"/topologies/fattree?k=4&r=3", http.StatusBadRequest},
		{"/topologies/fattree?q=1", http.StatusBadRequest},
		{"/topologies/fattree?format=xml", http.StatusBadRequest},
		{"/topologies/fattree?k=32", http.StatusBadRequest}, // 8192 hosts > limit
		{"/topologies/bcube?k=40&n=2", http.StatusBadRequest},
		{"/topologies/bcube/stats?k=40&n=2", http.StatusBadRequest},
		{"/topologies/fattree/stats?sources=x", http.StatusBadRequest},
		{"/nowhere", http.StatusNotFound},
	}
	for _, tc := range cases {
		resp := get(t, srv.URL+tc.path)
		assert.Equal(t, tc.want, resp.StatusCode, tc.path)
	}
}

func TestDefaultNodeCeiling(t *testing.T) {
	srv, _ := newTestServer(t)

	for _, path := range []string{
		"/topologies/bcube?k=12&n=4",
		"/topologies/bcube?k=40&n=2",
		"/topologies/fattree/stats?k=128",
	} {
		resp := get(t, srv.URL+path)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, path)
	}

	resp := get(t, srv.URL+"/topologies/fattree?k=8")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// An explicit zero lifts the ceiling.
	open, _ := newTestServer(t, server.WithMaxNodes(0))
	resp = get(t, open.URL+"/topologies/bcube?k=2&n=8")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRun_Shutdown(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	require.NoError(t, ln.Close())

	ctx, cancel := context.WithCancel(context.Background())
	s := server.New(registry.NewDefault(), nil)
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx, addr) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + addr + "/health")
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 5*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestRun_BadAddr(t *testing.T) {
	s := server.New(registry.NewDefault(), nil)
	err := s.Run(context.Background(), "bad-address")
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "server:"))
}
