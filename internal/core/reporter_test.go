package core_test

import (
	"errors"
	"fmt"
	"testing"

	. "github.com/onsi/gomega"
	"github.com/toejough/proptest/internal/core"
)

// recordingReporter captures Fatalf and Logf calls so report routing
// can be asserted without failing the host test.
type recordingReporter struct {
	fatals []string
	logs   []string
}

func (r *recordingReporter) Helper() {}

func (r *recordingReporter) Fatalf(format string, args ...any) {
	r.fatals = append(r.fatals, fmt.Sprintf(format, args...))
}

func (r *recordingReporter) Logf(format string, args ...any) {
	r.logs = append(r.logs, fmt.Sprintf(format, args...))
}

// quietReporter has no Logf, like a bare-bones host runner.
type quietReporter struct {
	fatals []string
}

func (r *quietReporter) Helper() {}

func (r *quietReporter) Fatalf(format string, args ...any) {
	r.fatals = append(r.fatals, fmt.Sprintf(format, args...))
}

// TestOutcomeString_Passed_IncludesSeed verifies the pass line carries
// enough to reproduce the run.
func TestOutcomeString_Passed_IncludesSeed(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	o := core.Outcome{Status: core.Passed, Trials: 100, Discards: 3, Seed: 99}

	g.Expect(o.String()).To(Equal("passed 100 trials, 3 discarded (seed 99)"))
}

// TestOutcomeString_Inconclusive_IncludesSeedAndCounts verifies the
// inconclusive line reports partial progress.
func TestOutcomeString_Inconclusive_IncludesSeedAndCounts(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	o := core.Outcome{Status: core.Inconclusive, Trials: 4, Discards: 96, Seed: 7}

	s := o.String()

	g.Expect(s).To(ContainSubstring("inconclusive"))
	g.Expect(s).To(ContainSubstring("4 of the requested trials"))
	g.Expect(s).To(ContainSubstring("96 discarded"))
	g.Expect(s).To(ContainSubstring("(seed 7)"))
}

// TestOutcomeString_Falsified_ShowsOriginalShrunkAndError verifies the
// failure report carries the full reproduction detail.
func TestOutcomeString_Falsified_ShowsOriginalShrunkAndError(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	o := core.Outcome{
		Status:      core.Falsified,
		Trials:      17,
		Seed:        42,
		Original:    []any{-83},
		Shrunk:      []any{-1},
		ShrinkSteps: 6,
		Err:         errors.New("x must be non-negative"),
	}

	s := o.String()

	g.Expect(s).To(ContainSubstring("falsified after 17 trials (seed 42)"))
	g.Expect(s).To(ContainSubstring("original: -83"))
	g.Expect(s).To(ContainSubstring("shrunk:   -1 (6 shrink steps)"))
	g.Expect(s).To(ContainSubstring("error:    x must be non-negative"))
	g.Expect(s).NotTo(ContainSubstring("diff:"), "small scalars need no diff section")
}

// TestOutcomeString_Falsified_Tuple verifies multi-argument inputs
// render as a parenthesized tuple and strings render quoted.
func TestOutcomeString_Falsified_Tuple(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	o := core.Outcome{
		Status:   core.Falsified,
		Trials:   1,
		Seed:     5,
		Original: []any{3, "abc"},
		Shrunk:   []any{0, ""},
	}

	s := o.String()

	g.Expect(s).To(ContainSubstring(`original: (3, "abc")`))
	g.Expect(s).To(ContainSubstring(`shrunk:   (0, "")`))
}

// TestOutcomeString_Falsified_LongSlice_RendersDiff verifies long
// slices render one element per line and the report includes a unified
// diff between original and shrunk.
func TestOutcomeString_Falsified_LongSlice_RendersDiff(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	o := core.Outcome{
		Status:      core.Falsified,
		Trials:      2,
		Seed:        11,
		Original:    []any{[]int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}},
		Shrunk:      []any{[]int{1, 2, 3, 4, 5, 6, 7, 8, 9}},
		ShrinkSteps: 1,
	}

	s := o.String()

	g.Expect(s).To(ContainSubstring("[]int{\n"))
	g.Expect(s).To(ContainSubstring("diff:"))
	g.Expect(s).To(ContainSubstring("--- original"))
	g.Expect(s).To(ContainSubstring("+++ shrunk"))
	g.Expect(s).To(ContainSubstring("-  10,"))
}

// TestReport_Passed_LogsWhenAvailable verifies passes go to Logf, not
// Fatalf.
func TestReport_Passed_LogsWhenAvailable(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	rec := &recordingReporter{}

	core.Report(rec, "sum is commutative", core.Outcome{Status: core.Passed, Trials: 100, Seed: 1})

	g.Expect(rec.fatals).To(BeEmpty())
	g.Expect(rec.logs).To(HaveLen(1))
	g.Expect(rec.logs[0]).To(ContainSubstring(`property "sum is commutative" passed`))
}

// TestReport_Passed_QuietWithoutLogf verifies reporters without Logf
// just stay silent on success.
func TestReport_Passed_QuietWithoutLogf(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	rec := &quietReporter{}

	core.Report(rec, "anything", core.Outcome{Status: core.Passed, Trials: 100, Seed: 1})

	g.Expect(rec.fatals).To(BeEmpty())
}

// TestReport_Falsified_Fatals verifies failures reach Fatalf with the
// property name and the reproduction seed.
func TestReport_Falsified_Fatals(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	rec := &recordingReporter{}

	core.Report(rec, "non-negative", core.Outcome{
		Status:   core.Falsified,
		Trials:   3,
		Seed:     8,
		Original: []any{-40},
		Shrunk:   []any{-1},
	})

	g.Expect(rec.logs).To(BeEmpty())
	g.Expect(rec.fatals).To(HaveLen(1))
	g.Expect(rec.fatals[0]).To(ContainSubstring(`property "non-negative" falsified`))
	g.Expect(rec.fatals[0]).To(ContainSubstring("(seed 8)"))
}

// TestReport_Inconclusive_Fatals verifies inconclusive runs fail the
// host test rather than passing silently.
func TestReport_Inconclusive_Fatals(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	rec := &recordingReporter{}

	core.Report(rec, "starved filter", core.Outcome{Status: core.Inconclusive, Discards: 50, Seed: 2})

	g.Expect(rec.fatals).To(HaveLen(1))
	g.Expect(rec.fatals[0]).To(ContainSubstring("inconclusive"))
}
