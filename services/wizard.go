package services

// The listing-creation wizard: a strictly linear six-step machine. The
// machine only tracks step and accumulated fields; persistence happens
// in the HTTP layer once Confirm reports the terminal step.

type WizardStep int

const (
	StepCategory WizardStep = iota
	StepLocation
	StepInfo
	StepImages
	StepDescription
	StepPrice
)

var stepNames = map[WizardStep]string{
	StepCategory:    "category",
	StepLocation:    "location",
	StepInfo:        "info",
	StepImages:      "images",
	StepDescription: "description",
	StepPrice:       "price",
}

func (s WizardStep) String() string {
	if name, ok := stepNames[s]; ok {
		return name
	}
	return "unknown"
}

// WizardFields is the field set accumulated across the steps and
// submitted as one create-listing request at the end.
type WizardFields struct {
	Category      string `json:"category"`
	LocationValue string `json:"locationValue"`
	GuestCount    int    `json:"guestCount"`
	RoomCount     int    `json:"roomCount"`
	BathroomCount int    `json:"bathroomCount"`
	ImageSrc      string `json:"imageSrc"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	Price         int    `json:"price"`
}

type Wizard struct {
	Step   WizardStep   `json:"step"`
	Fields WizardFields `json:"fields"`
}

func NewWizard() *Wizard {
	return &Wizard{
		Step: StepCategory,
		Fields: WizardFields{
			GuestCount:    1,
			RoomCount:     1,
			BathroomCount: 1,
			Price:         1,
		},
	}
}

// Advance moves one step forward, clamped at the terminal step.
func (w *Wizard) Advance() {
	if w.Step < StepPrice {
		w.Step++
	}
}

// Retreat moves one step back, clamped at the first step.
func (w *Wizard) Retreat() {
	if w.Step > StepCategory {
		w.Step--
	}
}

func (w *Wizard) CanRetreat() bool {
	return w.Step > StepCategory
}

// Confirm is the single "primary action". At every non-terminal step it
// advances the machine and reports false; at the terminal step it leaves
// the machine untouched and reports true, meaning the accumulated field
// set is ready to be submitted.
func (w *Wizard) Confirm() (readyToSubmit bool) {
	if w.Step != StepPrice {
		w.Advance()
		return false
	}
	return true
}

// ActionLabel is "Create" at the terminal step, "Next" everywhere else.
func (w *Wizard) ActionLabel() string {
	if w.Step == StepPrice {
		return "Create"
	}
	return "Next"
}

// SecondaryActionLabel is "Back" whenever retreating is possible; at the
// first step there is no secondary action.
func (w *Wizard) SecondaryActionLabel() (string, bool) {
	if w.Step == StepCategory {
		return "", false
	}
	return "Back", true
}

// Reset returns the machine to its initial state and defaults, as after
// a successful submission.
func (w *Wizard) Reset() {
	*w = *NewWizard()
}
