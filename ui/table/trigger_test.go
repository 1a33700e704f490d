package table

import "testing"

func TestTrigger_FiresOncePerGap(t *testing.T) {
	var tr Trigger
	if !tr.Fire(true, true, false, 100) {
		t.Fatal("first proximity signal must fire")
	}
	// Same frame conditions repeated: latched.
	for i := 0; i < 5; i++ {
		if tr.Fire(true, true, false, 100) {
			t.Fatal("repeated signal for the same gap must not fire")
		}
	}
}

func TestTrigger_RearmsWhenRowsArrive(t *testing.T) {
	var tr Trigger
	tr.Fire(true, true, false, 100)
	// Page landed, row count grew: the next proximity signal fires again.
	if !tr.Fire(true, true, false, 200) {
		t.Error("trigger must re-arm after the row count changes")
	}
}

func TestTrigger_QuietConditions(t *testing.T) {
	var tr Trigger
	if tr.Fire(false, true, false, 100) {
		t.Error("must not fire when not near the end")
	}
	if tr.Fire(true, false, false, 100) {
		t.Error("must not fire without a next page")
	}
	if tr.Fire(true, true, true, 100) {
		t.Error("must not fire while a fetch is in flight")
	}
}

func TestTrigger_ManualRearm(t *testing.T) {
	var tr Trigger
	tr.Fire(true, true, false, 100)
	if tr.Fire(true, true, false, 100) {
		t.Fatal("latched trigger must not fire")
	}
	tr.Rearm()
	if !tr.Fire(true, true, false, 100) {
		t.Error("Rearm must allow firing at an unchanged row count")
	}
}
