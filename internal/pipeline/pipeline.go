package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"subweave/internal/captions"
	"subweave/internal/logging"
	"subweave/internal/render"
	"subweave/internal/sentence"
	"subweave/internal/translit"
)

// Options select which artifact combinations a run produces.
type Options struct {
	// Merge additionally emits sentence-merged variants.
	Merge        bool
	MergeOptions sentence.Options
	// Adapter enables transliterated variants when non-nil.
	Adapter *translit.Adapter
	// Workers bounds the transliteration pool.
	Workers int
	// Formats are the output representations to emit per variant.
	Formats []render.Format
}

// Variant identifies one {merged|raw} x {transliterated|original}
// combination.
type Variant struct {
	Merged         bool
	Transliterated bool
}

// Suffix returns the artifact name infix for the variant, matching the
// transcript.<variant>.<ext> output convention.
func (v Variant) Suffix() string {
	switch {
	case v.Merged && v.Transliterated:
		return ".merged.translit"
	case v.Merged:
		return ".merged"
	case v.Transliterated:
		return ".translit"
	default:
		return ""
	}
}

// Artifact is one rendered payload awaiting the caller's I/O.
type Artifact struct {
	Variant Variant
	Format  render.Format
	// Name is the conventional file name (transcript<suffix><ext>).
	Name    string
	Payload string
}

// Result collects everything a run produced.
type Result struct {
	Artifacts []Artifact
	// Degraded counts caption units whose transliteration fell back to a
	// best-effort result.
	Degraded int
	// Warnings lists recoverable conditions encountered during the run.
	Warnings []string
}

// Pipeline transforms parsed caption documents into output artifacts.
type Pipeline struct {
	logger *slog.Logger
	opts   Options
}

// New builds a pipeline. A nil logger disables logging.
func New(logger *slog.Logger, opts Options) (*Pipeline, error) {
	if logger == nil {
		logger = logging.NewNop()
	}
	if len(opts.Formats) == 0 {
		return nil, fmt.Errorf("pipeline: no output formats requested")
	}
	return &Pipeline{logger: logger.With(logging.String(logging.FieldComponent, "pipeline")), opts: opts}, nil
}

// Run produces every requested variant x format artifact for the document.
// An empty document yields empty but well-formed payloads.
func (p *Pipeline) Run(ctx context.Context, doc *captions.Document) (*Result, error) {
	result := &Result{}

	raw := doc.Cues()
	if err := p.emitVariant(result, Variant{}, raw); err != nil {
		return nil, err
	}

	var merged []captions.Cue
	if p.opts.Merge {
		sentences := sentence.Merge(doc, p.opts.MergeOptions)
		merged = sentence.Cues(sentences)
		p.logger.Info("merged captions",
			logging.String(logging.FieldStage, "merge"),
			logging.Int("segments", len(doc.Segments)),
			logging.Int("sentences", len(sentences)))
		if err := p.emitVariant(result, Variant{Merged: true}, merged); err != nil {
			return nil, err
		}
	}

	if p.opts.Adapter != nil {
		if err := p.transliterateVariant(ctx, result, Variant{Transliterated: true}, raw); err != nil {
			return nil, err
		}
		if p.opts.Merge {
			if err := p.transliterateVariant(ctx, result, Variant{Merged: true, Transliterated: true}, merged); err != nil {
				return nil, err
			}
		}
	}

	return result, nil
}

func (p *Pipeline) transliterateVariant(ctx context.Context, result *Result, variant Variant, cues []captions.Cue) error {
	converted, unitResults, err := p.opts.Adapter.Apply(ctx, cues, p.opts.Workers)
	if err != nil {
		return fmt.Errorf("transliterate: %w", err)
	}
	if len(unitResults) > 0 {
		p.logger.Info("transliterated captions",
			logging.String(logging.FieldStage, "transliterate"),
			logging.Int("units", len(unitResults)),
			logging.String(logging.FieldScheme, string(primaryScheme(unitResults))))
	}
	if degraded := translit.DegradedCount(unitResults); degraded > 0 {
		result.Degraded += degraded
		warning := fmt.Sprintf("%d caption unit(s) transliterated best-effort in variant %q", degraded, variant.Suffix())
		result.Warnings = append(result.Warnings, warning)
		p.logger.Warn("transliteration degraded",
			logging.String(logging.FieldStage, "transliterate"),
			logging.Int("units", degraded))
	}
	return p.emitVariant(result, variant, converted)
}

// primaryScheme reports the scheme that converted the most units.
func primaryScheme(results []translit.Result) translit.Scheme {
	counts := make(map[translit.Scheme]int, len(results))
	var best translit.Scheme
	for _, res := range results {
		counts[res.Scheme]++
		if counts[res.Scheme] > counts[best] {
			best = res.Scheme
		}
	}
	return best
}

func (p *Pipeline) emitVariant(result *Result, variant Variant, cues []captions.Cue) error {
	for _, format := range p.opts.Formats {
		payload, err := render.Emit(cues, format)
		if err != nil {
			// A single unsupported format never aborts sibling emissions.
			warning := fmt.Sprintf("emit %s%s: %v", variant.Suffix(), format.Extension(), err)
			result.Warnings = append(result.Warnings, warning)
			p.logger.Warn("emission skipped",
				logging.String(logging.FieldStage, "emit"),
				logging.String(logging.FieldFormat, string(format)),
				logging.Error(err))
			continue
		}
		result.Artifacts = append(result.Artifacts, Artifact{
			Variant: variant,
			Format:  format,
			Name:    "transcript" + variant.Suffix() + format.Extension(),
			Payload: payload,
		})
	}
	return nil
}
