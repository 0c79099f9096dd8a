// Package lsp serves expression documents over the Language Server
// Protocol. A document holds one expression per line; blank lines and
// lines whose first non-space character is '#' are ignored.
package lsp

import (
	"fmt"

	"github.com/dhamidi/pratt/expr/parser"
	"github.com/tliron/commonlog"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	_ "github.com/tliron/commonlog/simple"
)

const lsName = "pratt"

var log = commonlog.GetLogger("pratt.lsp")

type Server struct {
	documents *Documents
	analyzer  *Analyzer
	handler   protocol.Handler
	server    *server.Server
	version   string
}

func NewServer(version string, opts ...parser.Option) *Server {
	ls := &Server{
		documents: NewDocuments(),
		analyzer:  NewAnalyzer(opts...),
		version:   version,
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

func (ls *Server) RunStdio() error {
	return ls.server.RunStdio()
}

func (ls *Server) initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	capabilities := ls.handler.CreateServerCapabilities()

	capabilities.TextDocumentSync = &protocol.TextDocumentSyncOptions{
		OpenClose: boolPtr(true),
		Change:    syncKindPtr(protocol.TextDocumentSyncKindFull),
	}
	capabilities.HoverProvider = true

	if params.ClientInfo != nil {
		log.Infof("client %s connected", params.ClientInfo.Name)
	}

	return protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    lsName,
			Version: &ls.version,
		},
	}, nil
}

func (ls *Server) initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	return nil
}

func (ls *Server) shutdown(ctx *glsp.Context) error {
	return nil
}

func (ls *Server) setTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

func (ls *Server) textDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	uri := params.TextDocument.URI
	ls.documents.Update(uri, params.TextDocument.Text)
	log.Debugf("opened %s", uri)
	ls.publish(ctx, uri, params.TextDocument.Text)
	return nil
}

func (ls *Server) textDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	if len(params.ContentChanges) == 0 {
		return nil
	}
	uri := params.TextDocument.URI
	change := params.ContentChanges[len(params.ContentChanges)-1]
	textChange, ok := change.(protocol.TextDocumentContentChangeEventWhole)
	if !ok {
		log.Warningf("ignoring incremental change to %s", uri)
		return nil
	}
	ls.documents.Update(uri, textChange.Text)
	ls.publish(ctx, uri, textChange.Text)
	return nil
}

func (ls *Server) textDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	uri := params.TextDocument.URI
	ls.documents.Close(uri)
	// clear stale markers
	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: []protocol.Diagnostic{},
	})
	return nil
}

func (ls *Server) textDocumentHover(ctx *glsp.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	text, ok := ls.documents.Get(params.TextDocument.URI)
	if !ok {
		return nil, nil
	}
	return ls.hover(text, int(params.Position.Line)), nil
}

func (ls *Server) hover(text string, line int) *protocol.Hover {
	rendered, ok := ls.analyzer.Render(text, line)
	if !ok {
		return nil
	}
	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.MarkupKindMarkdown,
			Value: fmt.Sprintf("```\n%s\n```", rendered),
		},
	}
}

func (ls *Server) publish(ctx *glsp.Context, uri string, text string) {
	diagnostics := ls.diagnostics(text)
	log.Debugf("%s: %d problems", uri, len(diagnostics))
	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: diagnostics,
	})
}

func (ls *Server) diagnostics(text string) []protocol.Diagnostic {
	problems := ls.analyzer.Check(text)
	diagnostics := make([]protocol.Diagnostic, 0, len(problems))
	severity := protocol.DiagnosticSeverityError
	source := lsName
	for _, p := range problems {
		diagnostics = append(diagnostics, protocol.Diagnostic{
			Range: protocol.Range{
				Start: protocol.Position{Line: protocol.UInteger(p.Line), Character: protocol.UInteger(p.StartCol)},
				End:   protocol.Position{Line: protocol.UInteger(p.Line), Character: protocol.UInteger(p.EndCol)},
			},
			Severity: &severity,
			Source:   &source,
			Message:  p.Message,
		})
	}
	return diagnostics
}

func boolPtr(b bool) *bool {
	return &b
}

func syncKindPtr(k protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind {
	return &k
}
