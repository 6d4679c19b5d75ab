package review

import (
	"github.com/charmbracelet/log"

	"github.com/ankiterm/ankiterm/termgfx"
)

// Sink is the host surface the orchestrator renders into: a full-buffer
// line replacement plus raw byte output for cursor-positioned escape
// sequences.
type Sink interface {
	// ReplaceLines replaces the whole text buffer.
	ReplaceLines(lines []string)
	// WriteRaw emits one terminal control sequence verbatim.
	WriteRaw(seq string)
}

// Orchestrator sequences buffer writes and image emission. Text commits
// first; image sequences are row-addressed against the committed surface,
// so they may only be emitted after the host has redrawn it. That ordering
// is made explicit by the two-call API: Commit returns a Frame whose Emit
// the host invokes after the redraw.
type Orchestrator struct {
	sink    Sink
	encoder termgfx.ProtocolEncoder // nil when the terminal is unsupported
	resolve func(string) *termgfx.Geometry
	logger  *log.Logger
}

func NewOrchestrator(sink Sink, encoder termgfx.ProtocolEncoder, logger *log.Logger) *Orchestrator {
	return &Orchestrator{
		sink:    sink,
		encoder: encoder,
		resolve: termgfx.Resolve,
		logger:  logger,
	}
}

// WithResolver replaces the geometry resolver, for a non-default width
// budget or for tests that force resolution failures.
func (o *Orchestrator) WithResolver(resolve func(string) *termgfx.Geometry) *Orchestrator {
	o.resolve = resolve
	return o
}

// Frame is one committed render pass awaiting image emission.
type Frame struct {
	orch   *Orchestrator
	plan   *Plan
	topRow int
}

// Commit replaces the full line buffer with the plan's content. topRow is
// the absolute screen row of the buffer's first line; image rows are
// emitted relative to it.
func (o *Orchestrator) Commit(plan *Plan, topRow int) *Frame {
	o.sink.ReplaceLines(plan.Lines())
	return &Frame{orch: o, plan: plan, topRow: topRow}
}

// Emit paints the frame's images. Under the kitty protocol all previously
// drawn images are deleted first, so repeated renders of the same region
// never accumulate orphaned ids. Unresolvable images are skipped; their
// placeholder line already stands in the committed buffer.
func (f *Frame) Emit() {
	o := f.orch
	if o.encoder == nil {
		return
	}

	if clr := o.encoder.ClearAll(); clr != "" {
		o.sink.WriteRaw(clr)
	}

	for _, e := range f.plan.Entries {
		if e.Kind != KindImage {
			continue
		}

		geom := o.resolve(e.Src)
		if geom == nil {
			o.logger.Debug("image skipped", "src", e.Src)
			continue
		}

		seqs, _ := o.encoder.Encode(e.Src, geom, f.topRow+e.Row-1)
		for _, seq := range seqs {
			o.sink.WriteRaw(seq)
		}
	}
}
