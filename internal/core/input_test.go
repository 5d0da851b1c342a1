package core

import "testing"

func TestMovementPriority(t *testing.T) {
	tests := []struct {
		actions  []Action
		expected Action
	}{
		{nil, ActionNone},
		{[]Action{ActionRestart}, ActionNone},
		{[]Action{ActionRight}, ActionRight},
		{[]Action{ActionRight, ActionLeft}, ActionLeft},
		{[]Action{ActionLeft, ActionDown}, ActionDown},
		{[]Action{ActionDown, ActionUp, ActionRight}, ActionUp},
	}

	for _, tt := range tests {
		if got := FrameOf(tt.actions...).Movement(); got != tt.expected {
			t.Errorf("FrameOf(%v).Movement() = %v, expected %v", tt.actions, got, tt.expected)
		}
	}
}

func TestInputFrameCloneIsIndependent(t *testing.T) {
	f := FrameOf(ActionUp)
	c := f.Clone()
	f.Clear()

	if !c.Has(ActionUp) {
		t.Error("clone lost Up after original was cleared")
	}
	if f.Has(ActionUp) {
		t.Error("Clear did not reset the frame")
	}
}

func TestHeadingLatch(t *testing.T) {
	var h Heading
	if h.Current() != ActionNone {
		t.Errorf("zero heading = %v, expected None", h.Current())
	}

	h.Press(ActionLeft)
	h.Press(ActionRestart)
	if h.Current() != ActionLeft {
		t.Errorf("heading = %v, expected Left", h.Current())
	}

	h.Press(ActionDown)
	if h.Current() != ActionDown {
		t.Errorf("heading = %v, expected Down", h.Current())
	}

	h.Stop()
	if h.Current() != ActionNone {
		t.Errorf("heading after Stop = %v, expected None", h.Current())
	}
}
