// Package syntax turns Swift source into the call-expression view the
// rules operate on. It wraps a tree-sitter parser; everything rules see
// (files, calls, parameters) is plain data with byte offsets.
package syntax

import (
	"context"
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/swift"

	"github.com/alexdonduk/SwiftLint/pkg/types"
)

// File is the immutable per-file view handed to rules: raw content, a
// line index over it, and the extracted call expressions. Rules read
// it, never write it, so one File may be shared across goroutines.
type File struct {
	Path    string
	Content []byte
	Index   *types.LineIndex
	Calls   []CallExpression
}

// Parser parses Swift source. A Parser is not safe for concurrent use;
// give each worker its own.
type Parser struct {
	inner *sitter.Parser
}

// NewParser returns a parser configured for the Swift grammar.
func NewParser() *Parser {
	p := sitter.NewParser()
	p.SetLanguage(swift.GetLanguage())
	return &Parser{inner: p}
}

// Parse builds the File view for one source file. Syntax errors do not
// fail the parse: tree-sitter recovers and the malformed regions simply
// contribute no calls. The returned error is reserved for context
// cancellation.
func (p *Parser) Parse(ctx context.Context, path string, content []byte) (*File, error) {
	tree, err := p.inner.ParseCtx(ctx, nil, content)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	defer tree.Close()

	return &File{
		Path:    path,
		Content: content,
		Index:   types.NewLineIndex(content),
		Calls:   extractCalls(tree.RootNode(), content),
	}, nil
}

// Close releases the underlying parser.
func (p *Parser) Close() {
	p.inner.Close()
}
