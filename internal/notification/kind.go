package notification

// Kind identifies the category of an outbound notification. Each kind has
// its own template and parameter shape.
type Kind string

const (
	// KindWelcome greets a newly registered user or brand.
	KindWelcome Kind = "welcome"
	// KindSponsorship covers the sponsorship lifecycle (new request, approval).
	KindSponsorship Kind = "sponsorship"
	// KindAchievement announces an unlocked achievement to an employee.
	KindAchievement Kind = "achievement"
	// KindMonthlyReport delivers the monthly impact summary.
	KindMonthlyReport Kind = "monthly-report"
)

// WelcomeAudience selects the welcome template variant.
type WelcomeAudience string

const (
	AudienceUser  WelcomeAudience = "user"
	AudienceBrand WelcomeAudience = "brand"
)

// ParseWelcomeAudience converts the query discriminator into a typed
// audience. The empty string defaults to AudienceUser; anything else that is
// not a known audience is an *UnknownTemplateError.
func ParseWelcomeAudience(s string) (WelcomeAudience, error) {
	switch s {
	case "", string(AudienceUser):
		return AudienceUser, nil
	case string(AudienceBrand):
		return AudienceBrand, nil
	}
	return "", &UnknownTemplateError{Kind: KindWelcome, Variant: s}
}

// SponsorshipStage selects the sponsorship template variant.
type SponsorshipStage string

const (
	StageNotification SponsorshipStage = "notification"
	StageApproval     SponsorshipStage = "approval"
)

// ParseSponsorshipStage converts the query discriminator into a typed stage.
// The empty string defaults to StageNotification.
func ParseSponsorshipStage(s string) (SponsorshipStage, error) {
	switch s {
	case "", string(StageNotification):
		return StageNotification, nil
	case string(StageApproval):
		return StageApproval, nil
	}
	return "", &UnknownTemplateError{Kind: KindSponsorship, Variant: s}
}
