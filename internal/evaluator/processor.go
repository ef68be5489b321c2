package evaluator

import (
	"github.com/funvibe/monkey/internal/diagnostics"
	"github.com/funvibe/monkey/internal/pipeline"
	"github.com/funvibe/monkey/internal/token"
)

// EvaluatorProcessor is the last pipeline stage. Env and Evaluator may be
// shared across runs (the console keeps one of each for the session); nil
// fields get fresh values.
type EvaluatorProcessor struct {
	Env       *Environment
	Evaluator *Evaluator
}

var _ pipeline.ErrorGated = (*EvaluatorProcessor)(nil)

// SkipOnErrors keeps the pipeline from evaluating a program that did not
// parse cleanly.
func (ep *EvaluatorProcessor) SkipOnErrors() bool { return true }

func (ep *EvaluatorProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	if ctx.AstRoot == nil || ctx.HasErrors() {
		return ctx
	}

	if ep.Env == nil {
		ep.Env = NewEnvironment()
	}
	if ep.Evaluator == nil {
		ep.Evaluator = New()
	}

	eval := ep.Evaluator
	if ctx.RunID != "" {
		eval = eval.WithRun(ctx.RunID)
	}

	result := eval.Eval(ctx.AstRoot, ep.Env)
	if result == nil {
		return ctx
	}
	ctx.Result = result

	// Runtime errors are also reported as diagnostics so file runs can
	// print them like parse errors.
	if err, ok := result.(*Error); ok {
		diag := diagnostics.NewError(
			diagnostics.ErrR001,
			token.Token{Line: err.Line, Column: err.Column},
			"%s", err.Message,
		)
		diag.File = ctx.FilePath
		ctx.Errors = append(ctx.Errors, diag)
	}

	return ctx
}
