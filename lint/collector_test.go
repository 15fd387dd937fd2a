package lint

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCollector_ZeroValue(t *testing.T) {
	var c Collector

	if c.Len() != 0 {
		t.Errorf("Len() = %d, want 0", c.Len())
	}
	if len(c.Keys()) != 0 {
		t.Errorf("Keys() = %v, want empty", c.Keys())
	}
	if c.HasErrors() {
		t.Error("HasErrors() = true, want false")
	}
}

func TestCollector_GroupsByKeyInFirstAddedOrder(t *testing.T) {
	var c Collector

	warn := Message{Text: "w", Severity: WARN, Category: OverrideConflict}
	order := Message{Text: "o", Severity: ERROR, Category: ExtendsOrderViolation}
	info := Message{Text: "i", Severity: INFO, Category: IDEInfo}

	c.Add("ESLint", warn)
	c.Add("VSCode", info)
	c.Add("ESLint", order)

	if diff := cmp.Diff([]string{"ESLint", "VSCode"}, c.Keys()); diff != "" {
		t.Errorf("Keys() mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]Message{warn, order}, c.Messages("ESLint")); diff != "" {
		t.Errorf("Messages(ESLint) mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]Message{warn, order, info}, c.All()); diff != "" {
		t.Errorf("All() mismatch (-want +got):\n%s", diff)
	}
	if c.Len() != 3 {
		t.Errorf("Len() = %d, want 3", c.Len())
	}
	if !c.HasErrors() {
		t.Error("HasErrors() = false, want true")
	}
}

func TestCollector_AddWithoutMessagesRegistersKey(t *testing.T) {
	var c Collector
	c.Add("Prettier")

	if diff := cmp.Diff([]string{"Prettier"}, c.Keys()); diff != "" {
		t.Errorf("Keys() mismatch (-want +got):\n%s", diff)
	}
	if c.Len() != 0 {
		t.Errorf("Len() = %d, want 0", c.Len())
	}
}

func TestCollector_MessagesReturnsCopy(t *testing.T) {
	var c Collector
	c.Add("ESLint", Message{Text: "a", Severity: WARN})

	got := c.Messages("ESLint")
	got[0].Text = "mutated"

	if c.Messages("ESLint")[0].Text != "a" {
		t.Error("Messages() exposed internal storage")
	}
}
