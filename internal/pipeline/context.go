package pipeline

import (
	"github.com/funvibe/monkey/internal/ast"
	"github.com/funvibe/monkey/internal/diagnostics"
	"github.com/funvibe/monkey/internal/token"
)

// Processor is a single stage of the pipeline.
type Processor interface {
	Process(ctx *PipelineContext) *PipelineContext
}

// TokenStream is the token source the lexer stage produces. Tokens are
// produced on demand as the parser pulls them.
type TokenStream interface {
	NextToken() token.Token
}

// Value is what the evaluation stage leaves behind.
type Value interface {
	Inspect() string
}

type PipelineContext struct {
	SourceCode string
	FilePath   string
	// RunID tags trace output of a single run.
	RunID string

	TokenStream TokenStream
	AstRoot     ast.Node
	Errors      []*diagnostics.DiagnosticError

	// Result is nil when evaluation was skipped or produced no value.
	Result Value
}

// HasErrors reports whether any stage recorded a diagnostic.
func (ctx *PipelineContext) HasErrors() bool {
	return len(ctx.Errors) > 0
}
