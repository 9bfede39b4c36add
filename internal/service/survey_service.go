package service

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/melodybakes/inquiry-api/internal/dto"
	"github.com/melodybakes/inquiry-api/internal/models"
	"github.com/melodybakes/inquiry-api/internal/notify"
	"github.com/melodybakes/inquiry-api/internal/survey"
	appErrors "github.com/melodybakes/inquiry-api/pkg/errors"
)

// ErrTermsNotAccepted is returned when a survey submission declined one of
// the order terms. The customer can revise their answers and resubmit.
var ErrTermsNotAccepted = appErrors.New("TERMS_NOT_ACCEPTED", http.StatusUnprocessableEntity, "All order terms must be accepted before we can prepare a quotation")

// SurveyService replays the quotation wizard server-side and funnels passing
// submissions through the regular intake pipeline.
type SurveyService struct {
	intake      *IntakeService
	bakeryPhone string
	logger      *zap.Logger
}

// NewSurveyService constructs the service. bakeryPhone is the number the
// follow-up WhatsApp link targets; empty disables the link.
func NewSurveyService(intake *IntakeService, bakeryPhone string, logger *zap.Logger) *SurveyService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SurveyService{intake: intake, bakeryPhone: bakeryPhone, logger: logger}
}

// SurveyResult is the outcome of a successful survey submission.
type SurveyResult struct {
	Inquiry     *models.Inquiry
	WhatsAppURL string
}

// Submit validates the wizard answers step by step, composes the notes block
// and creates the inquiry through the intake pipeline (rate limit included).
func (s *SurveyService) Submit(ctx context.Context, req dto.SurveyQuoteRequest, clientIP string) (*SurveyResult, error) {
	answers := answersFromRequest(req)

	machine := survey.New(answers)
	if err := machine.Complete(); err != nil {
		switch {
		case errors.Is(err, survey.ErrBudgetTooLow):
			return nil, appErrors.Clone(appErrors.ErrValidation, "Budget range is below the custom cake minimum")
		case errors.Is(err, survey.ErrDisqualified):
			return nil, ErrTermsNotAccepted
		default:
			return nil, appErrors.Clone(appErrors.ErrValidation, err.Error())
		}
	}

	notes := answers.ComposeNotes()
	deliveryOption := string(models.DeliveryPickup)
	var deliveryLocation *string
	if answers.NeedsDelivery() {
		deliveryOption = string(models.DeliveryDelivery)
		deliveryLocation = &answers.DeliveryLocation
	}

	// The wizard has no date picker; quotations are dated the day they come in.
	dateNeeded := time.Now().UTC().Format("2006-01-02")

	submission := models.SubmitInquiryRequest{
		Name:             answers.Name,
		Contact:          answers.Contact,
		CakeType:         answers.CakeType,
		EventType:        optional(answers.Occasion),
		DeliveryOption:   &deliveryOption,
		DeliveryLocation: deliveryLocation,
		DateNeeded:       dateNeeded,
		AdditionalNotes:  &notes,
		Honeypot:         optional(req.Honeypot),
	}

	inquiry, err := s.intake.Submit(ctx, submission, clientIP)
	if err != nil {
		return nil, err
	}

	result := &SurveyResult{Inquiry: inquiry}
	if s.bakeryPhone != "" {
		result.WhatsAppURL = s.handoffURL(answers)
	}
	return result, nil
}

// handoffURL builds the "continue the conversation on WhatsApp" link the site
// shows after a successful submission.
func (s *SurveyService) handoffURL(a survey.Answers) string {
	sanitize := func(text string) string { return notify.Sanitize(text, 100) }

	lines := []string{
		"Hi Melody! 🎂",
		"",
		"I just submitted an order inquiry on your website. Here are my details:",
		"",
		"Name: " + sanitize(a.Name),
		"Cake Type: " + sanitize(a.CakeType),
		"Occasion: " + sanitize(a.Occasion),
		"Serving Size: " + sanitize(a.ServingSize),
		"Budget: " + sanitize(a.Budget),
		"Timeframe: " + sanitize(a.Timeframe),
		"Tiers: " + sanitize(a.Tiers),
		"Shape: " + sanitize(a.Shape) + parenthesized(a.CustomShape),
		"Flavour: " + sanitize(a.Flavour) + parenthesized(a.OtherFlavour),
		"Filling: " + sanitize(a.Filling),
		"Finish: " + sanitize(a.Finish),
		"Delivery: " + sanitize(a.Delivery),
	}
	if a.DeliveryLocation != "" {
		lines = append(lines, "Delivery Location: "+notify.Sanitize(a.DeliveryLocation, 200))
	}
	if a.Notes != "" {
		lines = append(lines, "", "Additional Notes: "+notify.Sanitize(a.Notes, 300))
	}
	lines = append(lines, "", "Looking forward to hearing from you! 💜")

	return notify.BuildURL(s.bakeryPhone, strings.Join(lines, "\n"))
}

func parenthesized(s string) string {
	if s == "" {
		return ""
	}
	return " (" + notify.Sanitize(s, 50) + ")"
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func answersFromRequest(req dto.SurveyQuoteRequest) survey.Answers {
	return survey.Answers{
		CakeType:         req.CakeType,
		Occasion:         req.Occasion,
		Timeframe:        req.Timeframe,
		ServingSize:      req.ServingSize,
		Budget:           req.Budget,
		Delivery:         req.Delivery,
		DeliveryLocation: req.DeliveryLocation,
		Tiers:            req.Tiers,
		Shape:            req.Shape,
		CustomShape:      req.CustomShape,
		Flavour:          req.Flavour,
		OtherFlavour:     req.OtherFlavour,
		Filling:          req.Filling,
		Finish:           req.Finish,
		Toppers:          req.Toppers,
		TopperDetails:    req.TopperDetails,
		ReferenceLink:    req.ReferenceLink,
		ColorTheme:       req.ColorTheme,
		Confirmations:    req.Confirmations,
		Name:             req.Name,
		Contact:          req.Contact,
		Email:            req.Email,
		Notes:            req.Notes,
	}
}
