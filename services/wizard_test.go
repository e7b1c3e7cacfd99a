package services

import "testing"

func TestWizardStartsAtCategory(t *testing.T) {
	w := NewWizard()

	if w.Step != StepCategory {
		t.Fatalf("expected wizard to start at category, got %v", w.Step)
	}
	if w.Fields.GuestCount != 1 || w.Fields.RoomCount != 1 || w.Fields.BathroomCount != 1 || w.Fields.Price != 1 {
		t.Fatalf("unexpected field defaults: %+v", w.Fields)
	}
}

func TestWizardLinearFlow(t *testing.T) {
	w := NewWizard()

	expected := []WizardStep{StepLocation, StepInfo, StepImages, StepDescription, StepPrice}
	for _, want := range expected {
		w.Advance()
		if w.Step != want {
			t.Fatalf("expected step %v after advance, got %v", want, w.Step)
		}
	}

	for step := StepPrice; step > StepCategory; step-- {
		if w.Step != step {
			t.Fatalf("expected step %v before retreat, got %v", step, w.Step)
		}
		w.Retreat()
	}
	if w.Step != StepCategory {
		t.Fatalf("expected to be back at category, got %v", w.Step)
	}
}

func TestWizardClampsAtBounds(t *testing.T) {
	w := NewWizard()

	w.Retreat()
	if w.Step != StepCategory {
		t.Fatalf("retreat at first step must not move, got %v", w.Step)
	}
	if w.CanRetreat() {
		t.Fatal("CanRetreat must be false at the first step")
	}

	w.Step = StepPrice
	w.Advance()
	if w.Step != StepPrice {
		t.Fatalf("advance at terminal step must not move, got %v", w.Step)
	}
}

func TestWizardConfirmAdvancesUntilTerminal(t *testing.T) {
	w := NewWizard()

	for i := 0; i < 5; i++ {
		if ready := w.Confirm(); ready {
			t.Fatalf("confirm at step %v must not report ready", w.Step)
		}
	}
	if w.Step != StepPrice {
		t.Fatalf("expected five confirms to reach price, got %v", w.Step)
	}

	if ready := w.Confirm(); !ready {
		t.Fatal("confirm at price must report ready to submit")
	}
	if w.Step != StepPrice {
		t.Fatalf("terminal confirm must not change step, got %v", w.Step)
	}
}

func TestWizardLabels(t *testing.T) {
	w := NewWizard()

	for step := StepCategory; step <= StepPrice; step++ {
		w.Step = step

		wantAction := "Next"
		if step == StepPrice {
			wantAction = "Create"
		}
		if got := w.ActionLabel(); got != wantAction {
			t.Fatalf("step %v: expected action label %q, got %q", step, wantAction, got)
		}

		label, ok := w.SecondaryActionLabel()
		if step == StepCategory {
			if ok {
				t.Fatalf("step %v: secondary label must be absent, got %q", step, label)
			}
		} else if !ok || label != "Back" {
			t.Fatalf("step %v: expected secondary label Back, got %q (%v)", step, label, ok)
		}
	}
}

func TestWizardReset(t *testing.T) {
	w := NewWizard()
	w.Step = StepPrice
	w.Fields.Title = "Sea view flat"
	w.Fields.Price = 250

	w.Reset()

	if w.Step != StepCategory {
		t.Fatalf("expected reset to category, got %v", w.Step)
	}
	if w.Fields.Title != "" || w.Fields.Price != 1 {
		t.Fatalf("expected default fields after reset, got %+v", w.Fields)
	}
}

func TestWizardStepNames(t *testing.T) {
	names := map[WizardStep]string{
		StepCategory:    "category",
		StepLocation:    "location",
		StepInfo:        "info",
		StepImages:      "images",
		StepDescription: "description",
		StepPrice:       "price",
	}
	for step, want := range names {
		if got := step.String(); got != want {
			t.Fatalf("step %d: expected name %q, got %q", step, want, got)
		}
	}
	if got := WizardStep(9).String(); got != "unknown" {
		t.Fatalf("out-of-range step: expected unknown, got %q", got)
	}
}
