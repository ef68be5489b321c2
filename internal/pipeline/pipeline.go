package pipeline

// Pipeline represents a sequence of processing stages.
type Pipeline struct {
	processors []Processor
}

// ErrorGated is implemented by stages that only make sense on clean input.
// Run skips them once an earlier stage has recorded a diagnostic, so a
// program that failed to parse is never evaluated.
type ErrorGated interface {
	SkipOnErrors() bool
}

func New(processors ...Processor) *Pipeline {
	return &Pipeline{processors: processors}
}

// Run executes the stages in order. Lexing and parsing always run so all
// parse diagnostics are collected; gated stages stop at the first error.
func (p *Pipeline) Run(initialCtx *PipelineContext) *PipelineContext {
	ctx := initialCtx
	for _, processor := range p.processors {
		if gated, ok := processor.(ErrorGated); ok && gated.SkipOnErrors() && ctx.HasErrors() {
			continue
		}
		ctx = processor.Process(ctx)
	}
	return ctx
}
