package notification

// Params is the kind-specific parameter set consumed by a template.
// Validate reports the first missing required field, if any.
type Params interface {
	Validate() error
}

// WelcomeParams feeds the welcome templates (user and brand variants).
type WelcomeParams struct {
	Name     string
	Audience WelcomeAudience
}

func (p WelcomeParams) Validate() error {
	if p.Name == "" {
		return &MissingFieldError{Field: "name"}
	}
	return nil
}

// SponsorshipParams feeds the sponsorship templates.
type SponsorshipParams struct {
	Name     string
	Brand    string
	Campaign string
	Stage    SponsorshipStage
}

func (p SponsorshipParams) Validate() error {
	switch {
	case p.Name == "":
		return &MissingFieldError{Field: "name"}
	case p.Brand == "":
		return &MissingFieldError{Field: "brand"}
	case p.Campaign == "":
		return &MissingFieldError{Field: "campaign"}
	}
	return nil
}

// AchievementParams feeds the achievement-unlocked template.
// Description is optional and omitted from the document when empty.
type AchievementParams struct {
	Name        string
	Title       string
	Description string
}

func (p AchievementParams) Validate() error {
	switch {
	case p.Name == "":
		return &MissingFieldError{Field: "name"}
	case p.Title == "":
		return &MissingFieldError{Field: "title"}
	}
	return nil
}

// MonthlyReportParams feeds the monthly impact report template.
// Period is supplied by the caller; the renderer never reads the clock.
type MonthlyReportParams struct {
	Name           string
	Period         string
	VolunteerHours int
	Donations      string
}

func (p MonthlyReportParams) Validate() error {
	switch {
	case p.Name == "":
		return &MissingFieldError{Field: "name"}
	case p.Period == "":
		return &MissingFieldError{Field: "period"}
	}
	return nil
}
