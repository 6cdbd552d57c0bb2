package core

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/akedrou/textdiff"
)

// TestReporter is the minimal interface the engine needs from test
// frameworks. Satisfied by *testing.T and *testing.B; any host test
// runner can supply its own.
type TestReporter interface {
	Helper()
	Fatalf(format string, args ...any)
}

// passLogger is the optional interface for reporting pass detail.
// Satisfied by *testing.T; reporters without it just stay quiet on
// success.
type passLogger interface {
	Logf(format string, args ...any)
}

// String renders the outcome as a report. Every variant includes the
// seed, so any run, passing or not, can be reproduced exactly by
// supplying that seed in the Config of a re-run.
func (o Outcome) String() string {
	switch o.Status {
	case Passed:
		return fmt.Sprintf("passed %d trials, %d discarded (seed %d)",
			o.Trials, o.Discards, o.Seed)
	case Inconclusive:
		return fmt.Sprintf(
			"inconclusive: attempt ceiling or deadline reached after %d of the requested trials, %d discarded (seed %d)",
			o.Trials, o.Discards, o.Seed)
	case Falsified:
		return o.renderFalsified()
	default:
		return fmt.Sprintf("unknown status %d (seed %d)", int(o.Status), o.Seed)
	}
}

func (o Outcome) renderFalsified() string {
	original := renderTuple(o.Original)
	shrunk := renderTuple(o.Shrunk)

	var b strings.Builder

	fmt.Fprintf(&b, "falsified after %d trials (seed %d)\n", o.Trials, o.Seed)
	fmt.Fprintf(&b, "  original: %s\n", indentContinuation(original))
	fmt.Fprintf(&b, "  shrunk:   %s (%d shrink steps)\n", indentContinuation(shrunk), o.ShrinkSteps)

	if o.Err != nil {
		fmt.Fprintf(&b, "  error:    %v\n", o.Err)
	}

	// Big multi-line values read better as a diff than as two blobs.
	if strings.Contains(original, "\n") || strings.Contains(shrunk, "\n") {
		diff := textdiff.Unified("original", "shrunk", original+"\n", shrunk+"\n")
		fmt.Fprintf(&b, "  diff:\n%s", indentLines(diff, "    "))
	}

	return strings.TrimRight(b.String(), "\n")
}

// renderTuple renders a falsifying input tuple. Single values render
// bare; multi-argument properties render as a parenthesized tuple.
func renderTuple(values []any) string {
	if len(values) == 1 {
		return renderValue(values[0])
	}

	rendered := make([]string, len(values))
	for i, v := range values {
		rendered[i] = renderValue(v)
	}

	return "(" + strings.Join(rendered, ", ") + ")"
}

// longSliceLen is the element count past which slices render one
// element per line, so original and shrunk versions diff cleanly.
const longSliceLen = 8

func renderValue(v any) string {
	if s, ok := v.(string); ok {
		return fmt.Sprintf("%q", s)
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Slice && rv.Len() > longSliceLen {
		var b strings.Builder

		fmt.Fprintf(&b, "%T{\n", v)

		for i := range rv.Len() {
			fmt.Fprintf(&b, "  %#v,\n", rv.Index(i).Interface())
		}

		b.WriteString("}")

		return b.String()
	}

	return fmt.Sprintf("%#v", v)
}

func indentContinuation(s string) string {
	return strings.ReplaceAll(s, "\n", "\n    ")
}

func indentLines(s, prefix string) string {
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	for i, line := range lines {
		lines[i] = prefix + line
	}

	return strings.Join(lines, "\n") + "\n"
}

// Report delivers an outcome to the host test runner: failures and
// inconclusive runs through Fatalf with the full reproduction detail,
// passes through Logf when available.
func Report(t TestReporter, name string, o Outcome) {
	t.Helper()

	switch o.Status {
	case Passed:
		if l, ok := t.(passLogger); ok {
			l.Logf("property %q %s", name, o)
		}
	case Falsified, Inconclusive:
		t.Fatalf("property %q %s", name, o)
	}
}
