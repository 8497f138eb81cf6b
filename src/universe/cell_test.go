package universe

import "testing"

func TestCell_FreshStepBack(t *testing.T) {
	var c Cell
	c.stepBack()
	if c.State() {
		t.Fatal("fresh cell should rewind to dead")
	}
	if c.History() != 0 {
		t.Fatalf("fresh cell history: got %#x, expected 0", c.History())
	}
}

func TestCell_ChangeStateRecordsPrevious(t *testing.T) {
	var c Cell
	c.changeState(true)
	if !c.State() {
		t.Fatal("expected alive after changeState(true)")
	}
	if c.WatchHistory(1) {
		t.Fatal("history bit 0 should record the previous dead state")
	}

	c.changeState(false)
	if c.State() {
		t.Fatal("expected dead after changeState(false)")
	}
	if !c.WatchHistory(1) {
		t.Fatal("history bit 0 should record the previous live state")
	}
	if c.WatchHistory(2) {
		t.Fatal("history bit 1 should record the initial dead state")
	}
}

func TestCell_StepBackRestores(t *testing.T) {
	for _, before := range []bool{false, true} {
		for _, after := range []bool{false, true} {
			c := Cell{state: before}
			c.changeState(after)
			c.stepBack()
			if c.State() != before {
				t.Errorf("%v -> %v: rewound to %v", before, after, c.State())
			}
		}
	}
}

func TestCell_StepBackRotates(t *testing.T) {
	c := Cell{state: false, history: 1}
	c.stepBack()
	if !c.State() {
		t.Fatal("expected the popped live bit to become the state")
	}
	if c.History() != 1<<(HistoryBits-1) {
		t.Fatalf("popped bit should move to the top: got %#x", c.History())
	}

	// the second rewind reads the rotated register, not an older generation
	c.stepBack()
	if c.State() {
		t.Fatal("second rewind should see the zero bit")
	}
}

func TestCell_HistoryOverflowWraps(t *testing.T) {
	c := Cell{}
	for i := 0; i < HistoryBits+10; i++ {
		c.changeState(true)
	}
	if c.History() != ^uint64(0) {
		t.Fatalf("expected all ones, got %#x", c.History())
	}
}

func TestCell_WatchHistoryZero(t *testing.T) {
	c := Cell{history: ^uint64(0)}
	if c.WatchHistory(0) {
		t.Fatal("WatchHistory(0) should be false")
	}
}
