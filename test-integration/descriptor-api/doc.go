// Package integration provides integration tests for the descriptor registry API server.
// These tests run the complete server against the memory store and, when a container
// runtime is available, against PostgreSQL.
package integration
