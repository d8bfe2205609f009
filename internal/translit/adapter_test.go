package translit

import (
	"context"
	"errors"
	"strings"
	"testing"
)

// fakeEngine maps scheme -> fixed output, or errors for schemes it does not
// know.
type fakeEngine struct {
	outputs map[Scheme]string
	calls   int
}

func (f *fakeEngine) Convert(_ context.Context, text string, scheme Scheme) (string, error) {
	f.calls++
	out, ok := f.outputs[scheme]
	if !ok {
		return "", errors.New("scheme unavailable")
	}
	return out, nil
}

func newAdapter(t *testing.T, engine Engine, order ...Scheme) *Adapter {
	t.Helper()
	adapter, err := NewAdapter(engine, order, 0)
	if err != nil {
		t.Fatalf("new adapter: %v", err)
	}
	return adapter
}

func TestTransliterateFirstValidSchemeWins(t *testing.T) {
	engine := &fakeEngine{outputs: map[Scheme]string{
		SchemeITRANS:       "still roman text here",
		SchemeHarvardKyoto: "नमस्ते",
		SchemeIAST:         "नमस्ते भी",
	}}
	adapter := newAdapter(t, engine, SchemeITRANS, SchemeHarvardKyoto, SchemeIAST)

	res, err := adapter.Transliterate(context.Background(), "namaste")
	if err != nil {
		t.Fatalf("transliterate: %v", err)
	}
	if res.Scheme != SchemeHarvardKyoto {
		t.Fatalf("expected hk to win, got %q", res.Scheme)
	}
	if res.Degraded {
		t.Fatalf("expected non-degraded result")
	}
	if res.Text != "नमस्ते" {
		t.Fatalf("unexpected text %q", res.Text)
	}
}

func TestTransliterateAllSchemesFailDegraded(t *testing.T) {
	engine := &fakeEngine{outputs: map[Scheme]string{
		SchemeITRANS: "totally roman output",
		SchemeIAST:   "also roman output",
	}}
	adapter := newAdapter(t, engine, SchemeITRANS, SchemeIAST)

	res, err := adapter.Transliterate(context.Background(), "hello world")
	if err != nil {
		t.Fatalf("transliterate: %v", err)
	}
	if !res.Degraded {
		t.Fatalf("expected degraded result")
	}
	if res.Scheme != SchemeIAST {
		t.Fatalf("expected last attempted scheme, got %q", res.Scheme)
	}
	if res.Text != "also roman output" {
		t.Fatalf("expected last attempt's output, got %q", res.Text)
	}
}

func TestTransliterateEveryEngineCallErrors(t *testing.T) {
	engine := &fakeEngine{}
	adapter := newAdapter(t, engine, SchemeITRANS, SchemeHarvardKyoto)

	res, err := adapter.Transliterate(context.Background(), "namaste")
	if err != nil {
		t.Fatalf("transliterate: %v", err)
	}
	if !res.Degraded {
		t.Fatalf("expected degraded result")
	}
	if res.Text != "namaste" {
		t.Fatalf("expected original text as best effort, got %q", res.Text)
	}
}

func TestTransliterateBlankInput(t *testing.T) {
	engine := &fakeEngine{}
	adapter := newAdapter(t, engine, SchemeITRANS)

	res, err := adapter.Transliterate(context.Background(), "   ")
	if err != nil {
		t.Fatalf("transliterate: %v", err)
	}
	if res.Degraded {
		t.Fatalf("blank input must not be degraded")
	}
	if engine.calls != 0 {
		t.Fatalf("blank input must not reach the engine, got %d calls", engine.calls)
	}
}

func TestTransliterateDeterministic(t *testing.T) {
	engine := &fakeEngine{outputs: map[Scheme]string{SchemeITRANS: "नमस्ते"}}
	adapter := newAdapter(t, engine, SchemeITRANS)

	first, err := adapter.Transliterate(context.Background(), "namaste")
	if err != nil {
		t.Fatalf("transliterate: %v", err)
	}
	second, err := adapter.Transliterate(context.Background(), "namaste")
	if err != nil {
		t.Fatalf("transliterate: %v", err)
	}
	if first != second {
		t.Fatalf("expected identical results, got %+v and %+v", first, second)
	}
}

func TestTransliterateResidualTolerance(t *testing.T) {
	// 1 Roman letter out of 21 non-space characters is within the 5%
	// default tolerance.
	mostlyConverted := "नमस्तेनमस्तेनमस्तेनमa"
	if n := len([]rune(strings.ReplaceAll(mostlyConverted, " ", ""))); n != 21 {
		t.Fatalf("fixture drifted: %d runes", n)
	}
	engine := &fakeEngine{outputs: map[Scheme]string{SchemeITRANS: mostlyConverted}}
	adapter := newAdapter(t, engine, SchemeITRANS)

	res, err := adapter.Transliterate(context.Background(), "x")
	if err != nil {
		t.Fatalf("transliterate: %v", err)
	}
	if res.Degraded {
		t.Fatalf("expected output within tolerance to pass")
	}
}

func TestNewAdapterRejectsEmptyOrder(t *testing.T) {
	if _, err := NewAdapter(&fakeEngine{}, nil, 0); !errors.Is(err, ErrEmptySchemeOrder) {
		t.Fatalf("expected ErrEmptySchemeOrder, got %v", err)
	}
}

func TestParseSchemes(t *testing.T) {
	order, err := ParseSchemes([]string{"ITRANS", " hk "})
	if err != nil {
		t.Fatalf("parse schemes: %v", err)
	}
	if order[0] != SchemeITRANS || order[1] != SchemeHarvardKyoto {
		t.Fatalf("unexpected order %v", order)
	}
	if _, err := ParseSchemes(nil); err == nil {
		t.Fatalf("expected error for empty order")
	}
	if _, err := ParseSchemes([]string{"hk", "hk"}); err == nil {
		t.Fatalf("expected error for duplicate scheme")
	}
	if _, err := ParseSchemes([]string{"hk", "  "}); err == nil {
		t.Fatalf("expected error for blank scheme")
	}
}

func TestTransliterateCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	adapter := newAdapter(t, &fakeEngine{}, SchemeITRANS)
	if _, err := adapter.Transliterate(ctx, "namaste"); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context error, got %v", err)
	}
}
