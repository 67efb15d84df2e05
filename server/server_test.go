// Copyright (c) 2026, The AereaConfiavel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/PedroRussoUnB/AereaConfiavel/base/websocket"
	"github.com/PedroRussoUnB/AereaConfiavel/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func get(t *testing.T, srv *httptest.Server, path string, v any) int {
	t.Helper()
	resp, err := http.Get(srv.URL + path)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
	require.NoError(t, json.NewDecoder(resp.Body).Decode(v))
	return resp.StatusCode
}

func TestReport(t *testing.T) {
	srv := httptest.NewServer(New(config.New()).Handler())
	defer srv.Close()

	var full map[string]any
	assert.Equal(t, http.StatusOK, get(t, srv, "/api/report", &full))
	for _, key := range []string{"overbooking", "roi", "decision", "normal", "poisson", "callcenter"} {
		assert.Contains(t, full, key)
	}

	var one map[string]any
	assert.Equal(t, http.StatusOK, get(t, srv, "/api/report/normal?seed=3", &one))
	assert.Contains(t, one, "normal")
	assert.NotContains(t, one, "roi")
	assert.EqualValues(t, 3, one["seed"])

	var dec map[string]any
	assert.Equal(t, http.StatusOK, get(t, srv, "/api/report/decision", &dec))
	assert.Contains(t, dec, "decision")
	assert.Contains(t, dec, "roi")

	var ae apiError
	assert.Equal(t, http.StatusNotFound, get(t, srv, "/api/report/nope", &ae))
	assert.Contains(t, ae.Error, "unknown section")
	assert.Equal(t, http.StatusBadRequest, get(t, srv, "/api/report?seed=x", &ae))
}

func TestCompute(t *testing.T) {
	srv := httptest.NewServer(New(config.New()).Handler())
	defer srv.Close()

	var rr riskResponse
	assert.Equal(t, http.StatusOK, get(t, srv, "/api/risk?capacity=120&sold=120&p=0.88", &rr))
	assert.Equal(t, 0.0, rr.Risk)
	assert.Equal(t, http.StatusOK, get(t, srv, "/api/risk?capacity=120&sold=130&p=0.88", &rr))
	assert.Greater(t, rr.Risk, 0.0)
	assert.Less(t, rr.Risk, 1.0)

	var ae apiError
	assert.Equal(t, http.StatusUnprocessableEntity, get(t, srv, "/api/risk?capacity=120&sold=130&p=1.5", &ae))
	assert.Equal(t, http.StatusBadRequest, get(t, srv, "/api/risk?capacity=120", &ae))
	assert.Contains(t, ae.Error, `"sold"`)
	assert.Contains(t, ae.Error, `"p"`)

	var ro roiResponse
	assert.Equal(t, http.StatusOK, get(t, srv, "/api/roi?investment=50000&revenue=80000&opex=10000&target=100", &ro))
	assert.Equal(t, 140.0, ro.Percent)
	require.NotNil(t, ro.Recommendation)
	assert.Equal(t, "Adopt", ro.Recommendation.Tier.String())
	assert.Equal(t, http.StatusUnprocessableEntity, get(t, srv, "/api/roi?investment=0&revenue=80000&opex=10000", &ae))
	assert.Equal(t, http.StatusUnprocessableEntity, get(t, srv, "/api/roi?investment=1&revenue=2&opex=0&target=0", &ae))

	// counts must be whole numbers in range
	assert.Equal(t, http.StatusBadRequest, get(t, srv, "/api/risk?capacity=120.7&sold=130&p=0.88", &ae))
	assert.Contains(t, ae.Error, `"capacity"`)
	assert.Equal(t, http.StatusBadRequest, get(t, srv, "/api/risk?capacity=1e30&sold=130&p=0.88", &ae))
	assert.Equal(t, http.StatusBadRequest, get(t, srv, "/api/risk?capacity=120&sold=99999999999999999999&p=0.88", &ae))
	assert.Contains(t, ae.Error, `"sold"`)
	assert.Equal(t, http.StatusUnprocessableEntity, get(t, srv, "/api/roi?investment=NaN&revenue=80000&opex=10000", &ae))
	assert.Contains(t, ae.Error, "not finite")
	assert.Equal(t, http.StatusUnprocessableEntity, get(t, srv, "/api/roi?investment=50000&revenue=Inf&opex=10000", &ae))

	var ir intervalResponse
	assert.Equal(t, http.StatusOK, get(t, srv, "/api/interval?mean=100&sd=15&lower=80&upper=120", &ir))
	assert.InDelta(t, 0.8176, ir.Probability, 1e-4)
	assert.Equal(t, http.StatusUnprocessableEntity, get(t, srv, "/api/interval?mean=NaN&sd=15&lower=80&upper=120", &ae))
}

func TestWebSocket(t *testing.T) {
	s := New(config.New())
	srv := httptest.NewServer(s.Handler())
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	cl, err := websocket.Connect(ctx, "ws"+strings.TrimPrefix(srv.URL, "http")+"/ws")
	require.NoError(t, err)

	seeds := make(chan int64, 4)
	cl.OnMessage(func(typ websocket.MessageTypes, msg []byte) {
		var rep struct {
			Seed int64 `json:"seed"`
		}
		if assert.NoError(t, json.Unmarshal(msg, &rep)) {
			seeds <- rep.Seed
		}
	})
	next := func() int64 {
		select {
		case sd := <-seeds:
			return sd
		case <-ctx.Done():
			t.Fatal("timed out waiting for report")
			return 0
		}
	}

	// a config set while the client is joining still reaches it, either
	// as its first report or pushed right after the initial one
	cfg := config.New()
	cfg.Seed = 42
	s.SetConfig(cfg)
	sd := next()
	if sd == 1 {
		sd = next()
	}
	assert.Equal(t, int64(42), sd)
	assert.Equal(t, int64(42), s.Config().Seed)

	require.NoError(t, cl.Close())
	select {
	case <-cl.Done():
	case <-ctx.Done():
		t.Fatal("timed out waiting for close")
	}
}
