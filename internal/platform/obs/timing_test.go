package obs

import (
	"context"
	"errors"
	"testing"
)

// gathered returns the observation count of a histogram series or the value of
// a counter series on Registry.
func gathered(t *testing.T, name string, labels map[string]string) float64 {
	t.Helper()

	families, err := Registry.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	for _, mf := range families {
		if mf.GetName() != name {
			continue
		}
	metrics:
		for _, m := range mf.GetMetric() {
			for _, lp := range m.GetLabel() {
				if want, ok := labels[lp.GetName()]; ok && want != lp.GetValue() {
					continue metrics
				}
			}
			if h := m.GetHistogram(); h != nil {
				return float64(h.GetSampleCount())
			}
			return m.GetCounter().GetValue()
		}
	}
	return 0
}

func TestTimeRecordsOutcome(t *testing.T) {
	RegisterDefault()
	ctx := context.WithValue(context.Background(), RequestIDKey, "req-1")

	okLabels := map[string]string{"op": "test.timed", "result": "ok"}
	errLabels := map[string]string{"op": "test.timed", "result": "error"}
	okBefore := gathered(t, "operation_duration_seconds", okLabels)
	errBefore := gathered(t, "operation_duration_seconds", errLabels)

	func() (err error) {
		defer Time(ctx, "test.timed")(&err)
		return nil
	}()
	func() (err error) {
		defer Time(ctx, "test.timed")(&err)
		return errors.New("boom")
	}()

	if got := gathered(t, "operation_duration_seconds", okLabels); got != okBefore+1 {
		t.Fatalf("ok observations = %v, want %v", got, okBefore+1)
	}
	if got := gathered(t, "operation_duration_seconds", errLabels); got != errBefore+1 {
		t.Fatalf("error observations = %v, want %v", got, errBefore+1)
	}
}

func TestRequestID(t *testing.T) {
	if got := RequestID(context.Background()); got != "" {
		t.Fatalf("RequestID(empty) = %q", got)
	}
	ctx := context.WithValue(context.Background(), RequestIDKey, "abc")
	if got := RequestID(ctx); got != "abc" {
		t.Fatalf("RequestID = %q, want abc", got)
	}
}

func TestRecordPlan(t *testing.T) {
	RegisterDefault()
	before := gathered(t, "load_plans_total", nil)
	unassignedBefore := gathered(t, "load_plan_unassigned_items_total", nil)

	RecordPlan(3, 2)

	if got := gathered(t, "load_plans_total", nil); got != before+1 {
		t.Fatalf("plans = %v, want %v", got, before+1)
	}
	if got := gathered(t, "load_plan_unassigned_items_total", nil); got != unassignedBefore+2 {
		t.Fatalf("unassigned = %v, want %v", got, unassignedBefore+2)
	}
}
