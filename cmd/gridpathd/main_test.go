package main

import (
	"context"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func env(kv map[string]string) func(string) string {
	return func(k string) string { return kv[k] }
}

func TestLoadConfig(t *testing.T) {
	cases := []struct {
		name string
		args []string
		env  map[string]string
		want config
	}{
		{"defaults", nil, nil, config{addr: ":8080"}},
		{"env", nil, map[string]string{"GRIDPATH_ADDR": ":9000", "GRIDPATH_ENV": "production"}, config{addr: ":9000", release: true}},
		{"flags win", []string{"-addr", "127.0.0.1:1", "-release=false"}, map[string]string{"GRIDPATH_ADDR": ":9000", "GRIDPATH_ENV": "production"}, config{addr: "127.0.0.1:1"}},
		{"other env value", nil, map[string]string{"GRIDPATH_ENV": "staging"}, config{addr: ":8080"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := loadConfig(tc.args, env(tc.env))
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	_, err := loadConfig([]string{"-port", "1"}, env(nil))
	assert.Error(t, err)
}

func TestServe_ShutsDownOnCancel(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	require.NoError(t, l.Close())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- serve(ctx, config{addr: addr}, zap.NewNop()) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + addr + "/healthz")
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
		t.Fatal("serve did not return after cancel")
	}
}

func TestServe_ListenError(t *testing.T) {
	err := serve(context.Background(), config{addr: "bad-address"}, zap.NewNop())
	assert.Error(t, err)
}
