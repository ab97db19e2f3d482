package lsp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"bvcore/internal/lsp"
)

func TestInitializeAdvertisesFullSyncOnly(t *testing.T) {
	handler := lsp.NewHandler()

	result, err := handler.Initialize(&glsp.Context{}, &protocol.InitializeParams{})
	require.NoError(t, err)

	init, ok := result.(*protocol.InitializeResult)
	require.True(t, ok)
	require.NotNil(t, init.Capabilities.TextDocumentSync)

	sync, ok := init.Capabilities.TextDocumentSync.(*protocol.TextDocumentSyncOptions)
	require.True(t, ok)
	assert.Equal(t, protocol.TextDocumentSyncKindFull, *sync.Change)
	assert.Nil(t, init.Capabilities.CompletionProvider)
}

func TestDiagnoseCleanSourceReturnsNoDiagnostics(t *testing.T) {
	diags := lsp.Diagnose("clean.bv", "(decl x 8)\n(decl y 8)\n(assert (eq x y))\n")
	assert.Empty(t, diags)
}

func TestDiagnoseParseErrorReportsOnePosition(t *testing.T) {
	diags := lsp.Diagnose("broken.bv", "(decl x 8")
	require.Len(t, diags, 1)
	assert.Equal(t, protocol.DiagnosticSeverityError, *diags[0].Severity)
}

func TestDiagnoseUndeclaredIdentReportsEvalError(t *testing.T) {
	diags := lsp.Diagnose("undeclared.bv", "(assert (eq x x))")
	require.Len(t, diags, 1)
	assert.Equal(t, protocol.DiagnosticSeverityError, *diags[0].Severity)
	assert.Contains(t, diags[0].Message, "B1000")
}

func TestTextDocumentDidOpenPublishesDiagnostics(t *testing.T) {
	handler := lsp.NewHandler()
	var published []string
	ctx := &glsp.Context{Notify: func(method string, params any) { published = append(published, method) }}

	err := handler.TextDocumentDidOpen(ctx, &protocol.DidOpenTextDocumentParams{
		TextDocument: protocol.TextDocumentItem{
			URI:  "file:///tmp/open.bv",
			Text: "(decl x 8)\n",
		},
	})
	assert.NoError(t, err)
	assert.Equal(t, []string{protocol.ServerTextDocumentPublishDiagnostics}, published)
}

func TestTextDocumentDidCloseClearsCachedContent(t *testing.T) {
	handler := lsp.NewHandler()
	uri := "file:///tmp/close.bv"
	ctx := &glsp.Context{Notify: func(string, any) {}}

	require.NoError(t, handler.TextDocumentDidOpen(ctx, &protocol.DidOpenTextDocumentParams{
		TextDocument: protocol.TextDocumentItem{URI: uri, Text: "(decl x 8)\n"},
	}))
	assert.NoError(t, handler.TextDocumentDidClose(&glsp.Context{}, &protocol.DidCloseTextDocumentParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: uri},
	}))
}

func TestTextDocumentDidChangeReDiagnosesFullText(t *testing.T) {
	handler := lsp.NewHandler()
	uri := "file:///tmp/change.bv"
	ctx := &glsp.Context{Notify: func(string, any) {}}

	require.NoError(t, handler.TextDocumentDidOpen(ctx, &protocol.DidOpenTextDocumentParams{
		TextDocument: protocol.TextDocumentItem{URI: uri, Text: "(decl x 8)\n"},
	}))

	err := handler.TextDocumentDidChange(ctx, &protocol.DidChangeTextDocumentParams{
		TextDocument: protocol.VersionedTextDocumentIdentifier{
			TextDocumentIdentifier: protocol.TextDocumentIdentifier{URI: uri},
		},
		ContentChanges: []interface{}{
			protocol.TextDocumentContentChangeEventWhole{Text: "(assert (eq x x))"},
		},
	})
	assert.NoError(t, err)
}
