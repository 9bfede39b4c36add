package dto

// SurveyQuoteRequest carries the full set of quotation-wizard answers. The
// server replays the wizard's step gates before anything is persisted.
type SurveyQuoteRequest struct {
	CakeType  string `json:"cake_type" binding:"required"`
	Occasion  string `json:"occasion"`
	Timeframe string `json:"timeframe"`

	ServingSize      string `json:"serving_size"`
	Budget           string `json:"budget"`
	Delivery         string `json:"delivery"`
	DeliveryLocation string `json:"delivery_location"`

	Tiers       string `json:"tiers"`
	Shape       string `json:"shape"`
	CustomShape string `json:"custom_shape"`

	Flavour      string `json:"flavour"`
	OtherFlavour string `json:"other_flavour"`
	Filling      string `json:"filling"`

	Finish        string `json:"finish"`
	Toppers       string `json:"toppers"`
	TopperDetails string `json:"topper_details"`
	ReferenceLink string `json:"reference_link"`
	ColorTheme    string `json:"color_theme"`

	Confirmations map[string]string `json:"confirmations"`

	Name    string `json:"name"`
	Contact string `json:"contact"`
	Email   string `json:"email"`
	Notes   string `json:"notes"`

	Honeypot string `json:"honeypot"`
}

// SurveyQuoteResponse reports the outcome of a survey submission.
type SurveyQuoteResponse struct {
	ID      string `json:"id,omitempty"`
	Message string `json:"message"`
}
