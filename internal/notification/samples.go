package notification

// Sample parameters used by the email preview surfaces (HTTP previews and
// the preview CLI command). Keeping them here guarantees both surfaces render
// the same document.

func SampleWelcomeParams(audience WelcomeAudience) WelcomeParams {
	name := "Ana"
	if audience == AudienceBrand {
		name = "Acme Outdoors"
	}
	return WelcomeParams{Name: name, Audience: audience}
}

func SampleSponsorshipParams(stage SponsorshipStage) SponsorshipParams {
	return SponsorshipParams{
		Name:     "Ana",
		Brand:    "Acme Outdoors",
		Campaign: "Trees for Tomorrow",
		Stage:    stage,
	}
}

func SampleAchievementParams() AchievementParams {
	return AchievementParams{
		Name:        "Ana",
		Title:       "First 10 Volunteer Hours",
		Description: "Logged ten volunteer hours within your first month.",
	}
}

func SampleMonthlyReportParams() MonthlyReportParams {
	return MonthlyReportParams{
		Name:           "Ana",
		Period:         "June 2025",
		VolunteerHours: 14,
		Donations:      "$120",
	}
}
