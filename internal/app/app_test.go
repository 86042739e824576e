package app

import (
	"context"
	"errors"
	"net"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stacklok/descriptor-registry-server/internal/config"
	"github.com/stacklok/descriptor-registry-server/internal/service"
	"github.com/stacklok/descriptor-registry-server/internal/service/inmemory"
)

// fakeFactory hands out a memory repository and counts cleanups
type fakeFactory struct {
	createErr error
	cleanups  atomic.Int32
}

func (f *fakeFactory) CreateRepository(_ context.Context) (service.Repository, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	return inmemory.New()
}

func (f *fakeFactory) Cleanup() {
	f.cleanups.Add(1)
}

// createTestApp builds a RegistryApp on the given address over a memory repository
func createTestApp(t *testing.T, addr string) (*RegistryApp, *fakeFactory) {
	t.Helper()

	factory := &fakeFactory{}
	app, err := NewRegistryApp(context.Background(),
		WithConfig(&config.Config{RegistryName: "test-registry"}),
		WithAddress(addr),
		WithStorageFactory(factory),
	)
	require.NoError(t, err)
	return app, factory
}

func waitReady(t *testing.T, app *RegistryApp) {
	t.Helper()
	select {
	case <-app.Ready():
	case <-time.After(5 * time.Second):
		t.Fatal("server did not start listening")
	}
	require.NoError(t, app.ListenErr())
}

func TestRegistryApp_StartStop(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		addr string
	}{
		{name: "ephemeral port", addr: ":0"},
		{name: "localhost", addr: "127.0.0.1:0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			app, factory := createTestApp(t, tt.addr)

			errChan := make(chan error, 1)
			go func() {
				errChan <- app.Start()
			}()
			waitReady(t, app)

			_, port, err := net.SplitHostPort(app.Addr())
			require.NoError(t, err)
			resp, err := http.Get("http://127.0.0.1:" + port + "/health")
			require.NoError(t, err)
			resp.Body.Close()
			assert.Equal(t, http.StatusOK, resp.StatusCode)

			require.NoError(t, app.Stop(5*time.Second))

			select {
			case startErr := <-errChan:
				require.NoError(t, startErr)
			case <-time.After(5 * time.Second):
				t.Fatal("Start() did not return after Stop()")
			}
			assert.Equal(t, int32(1), factory.cleanups.Load())
		})
	}
}

func TestRegistryApp_StopIdempotent(t *testing.T) {
	t.Parallel()

	app, factory := createTestApp(t, "127.0.0.1:0")

	require.NoError(t, app.Stop(time.Second))
	require.NoError(t, app.Stop(time.Second))
	assert.Equal(t, int32(1), factory.cleanups.Load())

	// a stopped server does not start again
	require.NoError(t, app.Start())
}

func TestRegistryApp_Run(t *testing.T) {
	t.Parallel()

	app, factory := createTestApp(t, "127.0.0.1:0")

	ctx, cancel := context.WithCancel(context.Background())
	errChan := make(chan error, 1)
	go func() {
		errChan <- app.Run(ctx, 5*time.Second)
	}()
	waitReady(t, app)

	resp, err := http.Get("http://" + app.Addr() + "/readiness")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	cancel()

	select {
	case runErr := <-errChan:
		require.NoError(t, runErr)
	case <-time.After(5 * time.Second):
		t.Fatal("Run() did not return after cancel")
	}
	assert.Equal(t, int32(1), factory.cleanups.Load())
}

func TestRegistryApp_StartError_AddressInUse(t *testing.T) {
	t.Parallel()

	occupied, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { _ = occupied.Close() })

	app, factory := createTestApp(t, occupied.Addr().String())

	err = app.Run(context.Background(), time.Second)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to listen")
	assert.Equal(t, int32(1), factory.cleanups.Load())
}

func TestRegistryApp_ReadyClosesWhenListenFails(t *testing.T) {
	t.Parallel()

	occupied, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { _ = occupied.Close() })

	app, _ := createTestApp(t, occupied.Addr().String())
	t.Cleanup(func() { _ = app.Stop(time.Second) })

	errChan := make(chan error, 1)
	go func() {
		errChan <- app.Start()
	}()

	select {
	case <-app.Ready():
	case <-time.After(5 * time.Second):
		t.Fatal("ready was not closed after the listener failed")
	}

	listenErr := app.ListenErr()
	require.Error(t, listenErr)
	assert.Contains(t, listenErr.Error(), "failed to listen")
	assert.Equal(t, occupied.Addr().String(), app.Addr())

	select {
	case err := <-errChan:
		assert.Equal(t, listenErr, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Start did not return")
	}
}

func TestRegistryApp_Getters(t *testing.T) {
	t.Parallel()

	app, _ := createTestApp(t, "127.0.0.1:0")
	assert.Equal(t, "test-registry", app.GetConfig().RegistryName)
	require.NotNil(t, app.GetHTTPServer())
	assert.Equal(t, "127.0.0.1:0", app.Addr())
	assert.NotNil(t, app.components.Repository)
	assert.NotNil(t, app.components.RegistryService)
}

func TestNewRegistryApp_RepositoryError(t *testing.T) {
	t.Parallel()

	factory := &fakeFactory{createErr: errors.New("pool exhausted")}
	_, err := NewRegistryApp(context.Background(),
		WithConfig(&config.Config{}),
		WithStorageFactory(factory),
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pool exhausted")
	assert.Equal(t, int32(1), factory.cleanups.Load())
}
