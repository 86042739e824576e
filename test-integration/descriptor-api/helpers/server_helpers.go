// Package helpers provides utilities for the descriptor API integration tests.
package helpers

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/onsi/gomega"

	registryapp "github.com/stacklok/descriptor-registry-server/internal/app"
	"github.com/stacklok/descriptor-registry-server/internal/config"
)

const apiPrefix = "/api/v3.0"

// ServerTestHelper manages the registry API server lifecycle for testing
type ServerTestHelper struct {
	ctx        context.Context
	configPath string
	baseURL    string
	httpClient *http.Client
	app        *registryapp.RegistryApp
}

// NewServerTestHelper creates a new server test helper
func NewServerTestHelper(ctx context.Context, configPath string) *ServerTestHelper {
	return &ServerTestHelper{
		ctx:        ctx,
		configPath: configPath,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// StartServer starts the registry API server on a random local port
func (s *ServerTestHelper) StartServer() error {
	cfg, err := config.LoadConfig(config.WithConfigPath(s.configPath))
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	app, err := registryapp.NewRegistryApp(s.ctx,
		registryapp.WithConfig(cfg),
		registryapp.WithAddress("127.0.0.1:0"),
	)
	if err != nil {
		return fmt.Errorf("failed to build app: %w", err)
	}
	s.app = app

	go func() {
		if err := app.Start(); err != nil {
			// The test fails when it tries to connect
			fmt.Fprintf(os.Stderr, "Server start failed: %v\n", err)
		}
	}()

	select {
	case <-app.Ready():
	case <-time.After(10 * time.Second):
		return fmt.Errorf("server did not start listening")
	}
	if err := app.ListenErr(); err != nil {
		return err
	}
	s.baseURL = "http://" + app.Addr()
	return nil
}

// StopServer gracefully stops the registry API server
func (s *ServerTestHelper) StopServer() error {
	if s.app != nil {
		return s.app.Stop(5 * time.Second)
	}
	return nil
}

// WaitForServerReady waits for the readiness endpoint to report ready
func (s *ServerTestHelper) WaitForServerReady(timeout time.Duration) {
	gomega.Eventually(func() error {
		resp, err := s.httpClient.Get(s.baseURL + "/readiness")
		if err != nil {
			return err
		}
		defer func() {
			_ = resp.Body.Close()
		}()
		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("server returned status %d", resp.StatusCode)
		}
		return nil
	}, timeout, 100*time.Millisecond).Should(gomega.Succeed(), "Server should be ready")
}

// Do sends a request to the descriptor API. A non-nil body is sent as JSON.
// It returns the status code and the response body.
func (s *ServerTestHelper) Do(method, path string, body any) (int, []byte) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(s.ctx, method, s.baseURL+apiPrefix+path, reader)
	gomega.Expect(err).NotTo(gomega.HaveOccurred())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := s.httpClient.Do(req)
	gomega.Expect(err).NotTo(gomega.HaveOccurred())
	defer func() {
		_ = resp.Body.Close()
	}()

	data, err := io.ReadAll(resp.Body)
	gomega.Expect(err).NotTo(gomega.HaveOccurred())
	return resp.StatusCode, data
}

// GetBaseURL returns the base URL of the server
func (s *ServerTestHelper) GetBaseURL() string {
	return s.baseURL
}

// Encode returns the path form of an identifier
func Encode(id string) string {
	return base64.RawURLEncoding.EncodeToString([]byte(id))
}

// WriteMemoryConfig writes a configuration for a memory registry, optionally seeded
func WriteMemoryConfig(dir, registryName, seedFile string) string {
	content := fmt.Sprintf("registryName: %s\nmemory:\n", registryName)
	if seedFile != "" {
		content += fmt.Sprintf("  seedFile: %s\n", seedFile)
	} else {
		content += "  {}\n"
	}
	return writeConfig(dir, content)
}

// DatabaseParams locates a PostgreSQL database for WriteDatabaseConfig
type DatabaseParams struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
}

// WriteDatabaseConfig writes a configuration for a PostgreSQL registry
func WriteDatabaseConfig(dir, registryName string, p DatabaseParams) string {
	passwordFile := filepath.Join(dir, "db-password")
	err := os.WriteFile(passwordFile, []byte(p.Password), 0600)
	gomega.Expect(err).NotTo(gomega.HaveOccurred())

	content := fmt.Sprintf(`registryName: %s
database:
  host: %s
  port: %d
  user: %s
  passwordFile: %s
  database: %s
  sslMode: disable
  maxOpenConns: 5
`, registryName, p.Host, p.Port, p.User, passwordFile, p.Database)
	return writeConfig(dir, content)
}

func writeConfig(dir, content string) string {
	configPath := filepath.Join(dir, "config.yaml")
	err := os.WriteFile(configPath, []byte(content), 0600)
	gomega.Expect(err).NotTo(gomega.HaveOccurred())
	return configPath
}
