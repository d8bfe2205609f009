package translit

import (
	"context"
	"errors"
	"strings"
	"unicode"
)

// DefaultMaxResidualRatio is the highest share of Roman alphabetic
// characters tolerated in converted output before a scheme is considered
// to have failed.
const DefaultMaxResidualRatio = 0.05

// ErrEmptySchemeOrder is returned when transliteration is requested with
// no schemes to try.
var ErrEmptySchemeOrder = errors.New("translit: empty scheme order")

// Engine performs the actual character mapping for one scheme.
type Engine interface {
	Convert(ctx context.Context, text string, scheme Scheme) (string, error)
}

// Result is the outcome of transliterating one caption unit.
type Result struct {
	// Scheme is the convention whose output was kept.
	Scheme Scheme
	// Degraded marks best-effort output that no scheme converted cleanly.
	Degraded bool
	Text     string
}

// Adapter selects the first scheme in a ranked order whose output passes
// the validity check.
type Adapter struct {
	engine           Engine
	order            []Scheme
	maxResidualRatio float64
}

// NewAdapter builds an adapter over the given engine and ranked scheme
// order. maxResidualRatio <= 0 selects the default tolerance.
func NewAdapter(engine Engine, order []Scheme, maxResidualRatio float64) (*Adapter, error) {
	if engine == nil {
		return nil, errors.New("translit: nil engine")
	}
	if len(order) == 0 {
		return nil, ErrEmptySchemeOrder
	}
	if maxResidualRatio <= 0 {
		maxResidualRatio = DefaultMaxResidualRatio
	}
	return &Adapter{engine: engine, order: order, maxResidualRatio: maxResidualRatio}, nil
}

// Transliterate converts one unit of text. The first scheme whose output
// passes validity wins; if none passes, the last attempt is returned with
// Degraded set so callers can flag it instead of failing. Blank input
// yields blank output. The call is deterministic and has no side effects
// beyond the engine invocation.
func (a *Adapter) Transliterate(ctx context.Context, text string) (Result, error) {
	if strings.TrimSpace(text) == "" {
		return Result{Scheme: a.order[0], Text: text}, nil
	}

	// Best effort when everything fails: hand back the original text under
	// the last scheme attempted.
	last := Result{Scheme: a.order[len(a.order)-1], Degraded: true, Text: text}
	for _, scheme := range a.order {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		converted, err := a.engine.Convert(ctx, text, scheme)
		if err != nil {
			continue
		}
		if a.valid(converted) {
			return Result{Scheme: scheme, Text: converted}, nil
		}
		last = Result{Scheme: scheme, Degraded: true, Text: converted}
	}
	return last, nil
}

// valid accepts output that is non-empty and nearly free of residual Roman
// alphabetic characters.
func (a *Adapter) valid(output string) bool {
	if strings.TrimSpace(output) == "" {
		return false
	}
	var total, residual int
	for _, r := range output {
		if unicode.IsSpace(r) {
			continue
		}
		total++
		if r < unicode.MaxASCII && unicode.IsLetter(r) {
			residual++
		}
	}
	if total == 0 {
		return false
	}
	return float64(residual)/float64(total) <= a.maxResidualRatio
}
