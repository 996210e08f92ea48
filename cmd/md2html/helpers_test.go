package main

// Notes:
// - Shared mocks and fixtures for the command tests. Not under test itself.

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"

	md2html "github.com/alnah/go-md2html"
)

// ---------------------------------------------------------------------------
// Mock Implementations
// ---------------------------------------------------------------------------

// mockConverter records inputs and returns a fixed result or error.
type mockConverter struct {
	mu     sync.Mutex
	inputs []md2html.Input
	html   string
	pdf    []byte
	err    error
}

func (m *mockConverter) Convert(_ context.Context, input md2html.Input) (*md2html.ConvertResult, error) {
	m.mu.Lock()
	m.inputs = append(m.inputs, input)
	m.mu.Unlock()

	if m.err != nil {
		return nil, m.err
	}
	res := &md2html.ConvertResult{Title: input.Title, HTML: []byte(m.html)}
	if input.PDF {
		res.PDF = m.pdf
	}
	return res, nil
}

func (m *mockConverter) Tree(_ context.Context, markdown string) (*md2html.Node, error) {
	return md2html.Parse(markdown)
}

func (m *mockConverter) calls() []md2html.Input {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]md2html.Input(nil), m.inputs...)
}

// mockPool hands out a single shared converter.
type mockPool struct {
	conv       CLIConverter
	acquireErr error
	size       int
}

func (p *mockPool) Acquire() (CLIConverter, error) {
	if p.acquireErr != nil {
		return nil, p.acquireErr
	}
	return p.conv, nil
}

func (p *mockPool) Release(CLIConverter) {}

func (p *mockPool) Size() int {
	if p.size == 0 {
		return 1
	}
	return p.size
}

// ---------------------------------------------------------------------------
// Fixtures
// ---------------------------------------------------------------------------

// testEnv returns an Environment writing to buffers with a fixed clock.
func testEnv() (*Environment, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	return &Environment{
		Now:    func() time.Time { return now },
		Stdout: &stdout,
		Stderr: &stderr,
	}, &stdout, &stderr
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return string(data)
}

func parsePage(t *testing.T, page string) *goquery.Document {
	t.Helper()

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	if err != nil {
		t.Fatalf("parsing page: %v", err)
	}
	return doc
}
