// Package lsp implements a github.com/tliron/glsp language server for the
// term language: diagnostics only, republishing internal/termlang's parse
// and evaluation errors as LSP PublishDiagnostics notifications.
package lsp

import (
	"encoding/json"
	"fmt"
	"log"
	"net/url"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"bvcore/internal/engine"
	"bvcore/internal/termlang"
)

// Handler implements the LSP server handlers for the term language. It
// carries no semantic-token or completion support: the language has no
// symbol outline beyond declared variable names, which Diagnose
// already resolve-checks.
type Handler struct {
	mu      sync.RWMutex
	content map[string]string
}

// NewHandler creates and returns a new Handler instance.
func NewHandler() *Handler {
	return &Handler{content: make(map[string]string)}
}

// Initialize responds to the LSP client's initialize request and
// advertises the server's capabilities.
func (h *Handler) Initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	log.Println("LSP Initialize called")

	return &protocol.InitializeResult{
		Capabilities: protocol.ServerCapabilities{
			TextDocumentSync: &protocol.TextDocumentSyncOptions{
				OpenClose: ptrBool(true),
				Change:    ptrSyncKind(protocol.TextDocumentSyncKindFull),
			},
		},
	}, nil
}

// Initialized is called after the client receives the server's
// capabilities and completes initialization.
func (h *Handler) Initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	log.Println("bvcore LSP Initialized")
	return nil
}

// Shutdown handles the LSP shutdown request.
func (h *Handler) Shutdown(ctx *glsp.Context) error {
	log.Println("bvcore LSP Shutdown")
	return nil
}

// SetTrace handles the LSP $/setTrace notification.
func (h *Handler) SetTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	return nil
}

// TextDocumentDidOpen handles file open notifications from the editor.
func (h *Handler) TextDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	log.Printf("Opened document: %s\n", params.TextDocument.URI)
	return h.diagnose(ctx, params.TextDocument.URI, params.TextDocument.Text)
}

// TextDocumentDidClose handles file close notifications from the editor.
func (h *Handler) TextDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	log.Printf("Closed document: %s\n", params.TextDocument.URI)

	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return fmt.Errorf("failed to convert URI %s: %w", params.TextDocument.URI, err)
	}

	h.mu.Lock()
	delete(h.content, path)
	h.mu.Unlock()
	return nil
}

// TextDocumentDidChange handles file change notifications from the
// editor. Change is advertised as full-document sync, so the latest
// content change carries the entire new text.
func (h *Handler) TextDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	log.Printf("Changed document: %s\n", params.TextDocument.URI)

	if len(params.ContentChanges) == 0 {
		return nil
	}
	change, ok := params.ContentChanges[len(params.ContentChanges)-1].(protocol.TextDocumentContentChangeEventWhole)
	if !ok {
		return nil
	}
	return h.diagnose(ctx, params.TextDocument.URI, change.Text)
}

// diagnose parses and evaluates source, caches it, and publishes the
// resulting diagnostics (possibly empty, which clears prior ones).
func (h *Handler) diagnose(ctx *glsp.Context, uri protocol.DocumentUri, source string) error {
	path, err := uriToPath(uri)
	if err != nil {
		return fmt.Errorf("failed to convert URI %s: %w", uri, err)
	}

	h.mu.Lock()
	h.content[path] = source
	h.mu.Unlock()

	diagnostics := Diagnose(path, source)
	sendDiagnosticNotification(ctx, uri, diagnostics)
	return nil
}

// Diagnose parses and evaluates source against a throwaway solver,
// converting the first parse or evaluation error (if any) into a
// diagnostic list. A clean document still republishes any static-
// contradiction warnings collected along the way. The returned slice is
// always non-nil so callers always publish (clearing prior diagnostics).
func Diagnose(path, source string) []protocol.Diagnostic {
	program, err := termlang.ParseSource(path, source)
	if err != nil {
		return ConvertParseError(err)
	}

	ev := termlang.NewEval(engine.New())
	if err := ev.Run(program); err != nil {
		return ConvertEvalError(err)
	}

	diagnostics := []protocol.Diagnostic{}
	for _, w := range ev.Warnings {
		diagnostics = append(diagnostics, ConvertEvalError(w)...)
	}
	return diagnostics
}

// uriToPath converts an LSP document URI to a platform-local file path.
func uriToPath(rawURI string) (string, error) {
	u, err := url.Parse(rawURI)
	if err != nil {
		return "", fmt.Errorf("invalid URI %s: %w", rawURI, err)
	}

	path := u.Path
	if runtime.GOOS == "windows" && strings.HasPrefix(path, "/") && len(path) > 3 && path[2] == ':' {
		path = path[1:]
	}
	return filepath.FromSlash(path), nil
}

func sendDiagnosticNotification(ctx *glsp.Context, uri protocol.URI, diagnostics []protocol.Diagnostic) {
	diagnosticsJSON, err := json.MarshalIndent(diagnostics, "", "  ")
	if err != nil {
		log.Println("Failed to marshal diagnostics:", err)
		return
	}
	log.Println("Sending diagnostics:", string(diagnosticsJSON))

	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: diagnostics,
	})
}

func ptrBool(b bool) *bool {
	return &b
}

func ptrSyncKind(k protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind {
	return &k
}
