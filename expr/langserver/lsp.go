// Package langserver exposes the expression pipeline over the Language
// Server Protocol: parse diagnostics on every edit, and hover output
// showing the three notations for a valid document.
package langserver

import (
	"net/url"
	"strings"
	"sync"

	"github.com/dhamidi/rex/expr"
	"github.com/dhamidi/rex/expr/parser"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	_ "github.com/tliron/commonlog/simple"
)

const lsName = "rex"

type LSPServer struct {
	handler protocol.Handler
	server  *server.Server
	version string

	mu   sync.Mutex
	docs map[string]string
}

func NewLSPServer(version string) *LSPServer {
	ls := &LSPServer{
		version: version,
		docs:    make(map[string]string),
	}

	ls.handler = protocol.Handler{
		Initialize:            ls.initialize,
		Initialized:           ls.initialized,
		Shutdown:              ls.shutdown,
		SetTrace:              ls.setTrace,
		TextDocumentDidOpen:   ls.textDocumentDidOpen,
		TextDocumentDidChange: ls.textDocumentDidChange,
		TextDocumentDidClose:  ls.textDocumentDidClose,
		TextDocumentHover:     ls.textDocumentHover,
	}

	ls.server = server.NewServer(&ls.handler, lsName, false)

	return ls
}

func (ls *LSPServer) RunStdio() error {
	return ls.server.RunStdio()
}

func (ls *LSPServer) initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	capabilities := ls.handler.CreateServerCapabilities()

	changeKind := protocol.TextDocumentSyncKindFull
	capabilities.TextDocumentSync = &protocol.TextDocumentSyncOptions{
		OpenClose: boolPtr(true),
		Change:    &changeKind,
	}
	capabilities.HoverProvider = true

	return protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    lsName,
			Version: &ls.version,
		},
	}, nil
}

func (ls *LSPServer) initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	return nil
}

func (ls *LSPServer) shutdown(ctx *glsp.Context) error {
	return nil
}

func (ls *LSPServer) setTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

func (ls *LSPServer) textDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	ls.updateDocument(ctx, params.TextDocument.URI, params.TextDocument.Text)
	return nil
}

func (ls *LSPServer) textDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	if len(params.ContentChanges) == 0 {
		return nil
	}
	change := params.ContentChanges[len(params.ContentChanges)-1]
	if textChange, ok := change.(protocol.TextDocumentContentChangeEventWhole); ok {
		ls.updateDocument(ctx, params.TextDocument.URI, textChange.Text)
	}
	return nil
}

func (ls *LSPServer) textDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	ls.mu.Lock()
	delete(ls.docs, params.TextDocument.URI)
	ls.mu.Unlock()
	return nil
}

func (ls *LSPServer) textDocumentHover(ctx *glsp.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	ls.mu.Lock()
	text, ok := ls.docs[params.TextDocument.URI]
	ls.mu.Unlock()
	if !ok {
		return nil, nil
	}

	forms, err := expr.Rewrite(expressionText(text), parser.WithFile(uriToFile(params.TextDocument.URI)))
	if err != nil {
		return nil, nil
	}

	var sb strings.Builder
	sb.WriteString("**parenthesized** `")
	sb.WriteString(forms.Parenthesized)
	sb.WriteString("`\n\n**postfix** `")
	sb.WriteString(forms.Postfix)
	sb.WriteString("`\n\n**prefix** `")
	sb.WriteString(forms.Prefix)
	sb.WriteString("`")

	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.MarkupKindMarkdown,
			Value: sb.String(),
		},
	}, nil
}

func (ls *LSPServer) updateDocument(ctx *glsp.Context, uri string, text string) {
	ls.mu.Lock()
	ls.docs[uri] = text
	ls.mu.Unlock()

	ls.publishDiagnostics(ctx, uri, text)
}

// publishDiagnostics reparses the document and reports the first lex or
// parse failure, or clears diagnostics when the expression is valid.
func (ls *LSPServer) publishDiagnostics(ctx *glsp.Context, uri string, text string) {
	diagnostics := []protocol.Diagnostic{}

	_, err := expr.Rewrite(expressionText(text), parser.WithFile(uriToFile(uri)))
	if d, ok := diagnosticFor(err); ok {
		diagnostics = append(diagnostics, d)
	}

	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: diagnostics,
	})
}

func diagnosticFor(err error) (protocol.Diagnostic, bool) {
	var span parser.Span
	switch e := err.(type) {
	case nil:
		return protocol.Diagnostic{}, false
	case *parser.LexError:
		span = parser.Span{Start: e.Pos, End: e.Pos}
		span.End.Column++
	case *parser.ParseError:
		if e.Got != nil {
			span = e.Got.Span
		}
	}

	severity := protocol.DiagnosticSeverityError
	source := lsName
	return protocol.Diagnostic{
		Range:    spanToRange(span),
		Severity: &severity,
		Source:   &source,
		Message:  err.Error(),
	}, true
}

func spanToRange(span parser.Span) protocol.Range {
	return protocol.Range{
		Start: positionToProtocol(span.Start),
		End:   positionToProtocol(span.End),
	}
}

func positionToProtocol(pos parser.Position) protocol.Position {
	line := pos.Line
	if line > 0 {
		line--
	}
	column := pos.Column
	if column > 0 {
		column--
	}
	return protocol.Position{
		Line:      protocol.UInteger(line),
		Character: protocol.UInteger(column),
	}
}

// expressionText trims the trailing newline an editor buffer carries;
// the expression language itself has no whitespace.
func expressionText(text string) string {
	return strings.TrimRight(text, "\r\n")
}

func uriToFile(uri string) string {
	parsed, err := url.Parse(uri)
	if err != nil {
		return uri
	}
	if parsed.Scheme == "file" {
		return parsed.Path
	}
	return uri
}

func boolPtr(b bool) *bool {
	return &b
}
