// Package survey models the quotation wizard as an explicit state machine.
// The marketing site walks customers through the same steps in the browser;
// the server replays the gates so a hand-crafted request cannot skip them.
package survey

import (
	"errors"
	"fmt"
	"strings"
)

// Step identifies a wizard screen. Steps advance strictly in order.
type Step int

const (
	StepBasics Step = iota + 1
	StepSizeShape
	StepFlavour
	StepDesign
	StepTerms
	StepContact
)

const totalSteps = int(StepContact)

// BudgetTooLow is the budget range the bakery does not quote for.
const BudgetTooLow = "Under R500"

// ConfirmationIDs are the terms every customer must acknowledge, in the order
// they appear on the site.
var ConfirmationIDs = []string{
	"deposit",
	"rushFees",
	"pricingBasis",
	"designVariation",
	"deliveryFees",
	"cancellation",
}

func (s Step) String() string {
	switch s {
	case StepBasics:
		return "basics"
	case StepSizeShape:
		return "size & shape"
	case StepFlavour:
		return "flavour & filling"
	case StepDesign:
		return "design"
	case StepTerms:
		return "terms"
	case StepContact:
		return "contact"
	}
	return fmt.Sprintf("step(%d)", int(s))
}

// ErrDisqualified is returned when a customer declines one of the terms.
var ErrDisqualified = errors.New("terms not accepted")

// ErrBudgetTooLow is returned when the selected budget is below the minimum
// the bakery quotes for.
var ErrBudgetTooLow = errors.New("budget below minimum")

// IncompleteStepError reports which step is missing required answers.
type IncompleteStepError struct {
	Step Step
}

func (e *IncompleteStepError) Error() string {
	return fmt.Sprintf("survey step %q is incomplete", e.Step)
}

// Answers holds every wizard answer. Zero values mean unanswered.
type Answers struct {
	CakeType  string
	Occasion  string
	Timeframe string

	ServingSize      string
	Budget           string
	Delivery         string
	DeliveryLocation string

	Tiers       string
	Shape       string
	CustomShape string

	Flavour      string
	OtherFlavour string
	Filling      string

	Finish        string
	Toppers       string
	TopperDetails string
	ReferenceLink string
	ColorTheme    string

	Confirmations map[string]string

	Name    string
	Contact string
	Email   string
	Notes   string
}

// NeedsDelivery reports whether the customer asked for delivery. The site's
// delivery options are free-text labels; a "Yes" prefix marks the positive one.
func (a Answers) NeedsDelivery() bool {
	return strings.Contains(a.Delivery, "Yes")
}

func (a Answers) passedTerms() bool {
	for _, id := range ConfirmationIDs {
		if !strings.HasPrefix(a.Confirmations[id], "Yes") {
			return false
		}
	}
	return true
}

// Machine walks the wizard steps over a fixed set of answers.
type Machine struct {
	answers      Answers
	step         Step
	disqualified bool
}

// New starts a machine at the first step.
func New(answers Answers) *Machine {
	return &Machine{answers: answers, step: StepBasics}
}

// Step returns the current step.
func (m *Machine) Step() Step {
	return m.step
}

// Disqualified reports whether the customer failed the terms gate.
func (m *Machine) Disqualified() bool {
	return m.disqualified
}

// CanProceed reports whether the current step has every required answer.
func (m *Machine) CanProceed() bool {
	a := m.answers
	switch m.step {
	case StepBasics:
		return a.ServingSize != "" && a.Budget != "" && a.Delivery != "" &&
			a.Budget != BudgetTooLow &&
			(!a.NeedsDelivery() || a.DeliveryLocation != "")
	case StepSizeShape:
		return a.Tiers != "" && a.Shape != "" &&
			(a.Shape != "Custom shape" || a.CustomShape != "")
	case StepFlavour:
		return a.Flavour != "" && a.Filling != "" &&
			(a.Flavour != "Other" || a.OtherFlavour != "")
	case StepDesign:
		return a.Finish != "" && a.Toppers != ""
	case StepTerms:
		for _, id := range ConfirmationIDs {
			if a.Confirmations[id] == "" {
				return false
			}
		}
		return true
	case StepContact:
		return a.Name != "" && a.Contact != "" && a.Email != ""
	}
	return true
}

// Next advances to the following step. Leaving the terms step requires every
// confirmation to be an acceptance; otherwise the machine parks in the
// disqualified state.
func (m *Machine) Next() error {
	if m.disqualified {
		return ErrDisqualified
	}
	if !m.CanProceed() {
		if m.step == StepBasics && m.answers.Budget == BudgetTooLow {
			return ErrBudgetTooLow
		}
		return &IncompleteStepError{Step: m.step}
	}
	if m.step == StepTerms && !m.answers.passedTerms() {
		m.disqualified = true
		return ErrDisqualified
	}
	if int(m.step) < totalSteps {
		m.step++
	}
	return nil
}

// Back returns to the previous step. The first step is a floor.
func (m *Machine) Back() {
	if m.step > StepBasics {
		m.step--
	}
}

// Reset clears disqualification and returns to the terms step so the customer
// can change their answers, matching the site's "review terms" action.
func (m *Machine) Reset() {
	m.disqualified = false
	m.step = StepTerms
	m.answers.Confirmations = map[string]string{}
}

// Complete replays the whole wizard. It returns nil only when every step
// passes its gate and the terms are accepted.
func (m *Machine) Complete() error {
	for int(m.step) < totalSteps {
		if err := m.Next(); err != nil {
			return err
		}
	}
	if !m.CanProceed() {
		return &IncompleteStepError{Step: m.step}
	}
	return nil
}

// SetConfirmation records a single terms answer, for callers driving the
// machine interactively.
func (m *Machine) SetConfirmation(id, value string) {
	if m.answers.Confirmations == nil {
		m.answers.Confirmations = map[string]string{}
	}
	m.answers.Confirmations[id] = value
}

// ComposeNotes renders the structured survey answers into the free-form notes
// block the inquiry record carries, using the exact layout the site produces.
func (a Answers) ComposeNotes() string {
	confirmationParts := make([]string, 0, len(ConfirmationIDs))
	for _, id := range ConfirmationIDs {
		answer := a.Confirmations[id]
		if answer == "" {
			answer = "Not answered"
		}
		confirmationParts = append(confirmationParts, fmt.Sprintf("%s: %s", id, answer))
	}

	design := []string{
		fmt.Sprintf("Tiers: %s", a.Tiers),
		fmt.Sprintf("Shape: %s%s", a.Shape, parenthesize(a.CustomShape)),
		fmt.Sprintf("Flavour: %s%s", a.Flavour, parenthesize(a.OtherFlavour)),
		fmt.Sprintf("Filling: %s", a.Filling),
		fmt.Sprintf("Finish: %s", a.Finish),
		fmt.Sprintf("Toppers: %s%s", a.Toppers, dashSuffix(a.TopperDetails)),
	}
	if a.ReferenceLink != "" {
		design = append(design, fmt.Sprintf("Reference: %s", a.ReferenceLink))
	}
	if a.ColorTheme != "" {
		design = append(design, fmt.Sprintf("Color/Theme: %s", a.ColorTheme))
	}

	lines := []string{
		fmt.Sprintf("Budget: %s", a.Budget),
		fmt.Sprintf("Serving Size: %s", a.ServingSize),
		fmt.Sprintf("Timeframe: %s", a.Timeframe),
		"=== Design Details ===",
		strings.Join(design, "\n"),
		fmt.Sprintf("Confirmations: %s", strings.Join(confirmationParts, "; ")),
	}
	if a.Notes != "" {
		lines = append(lines, fmt.Sprintf("Additional Notes: %s", a.Notes))
	}
	return strings.Join(lines, "\n")
}

func parenthesize(s string) string {
	if s == "" {
		return ""
	}
	return fmt.Sprintf(" (%s)", s)
}

func dashSuffix(s string) string {
	if s == "" {
		return ""
	}
	return fmt.Sprintf(" - %s", s)
}
