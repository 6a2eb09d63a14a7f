package notification_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brightimpact/impactboard/internal/notification"
)

func TestParseWelcomeAudience(t *testing.T) {
	audience, err := notification.ParseWelcomeAudience("")
	require.NoError(t, err)
	assert.Equal(t, notification.AudienceUser, audience)

	audience, err = notification.ParseWelcomeAudience("brand")
	require.NoError(t, err)
	assert.Equal(t, notification.AudienceBrand, audience)

	_, err = notification.ParseWelcomeAudience("partner")
	var unknown *notification.UnknownTemplateError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, notification.KindWelcome, unknown.Kind)
	assert.Equal(t, "partner", unknown.Variant)
}

func TestParseSponsorshipStage(t *testing.T) {
	stage, err := notification.ParseSponsorshipStage("")
	require.NoError(t, err)
	assert.Equal(t, notification.StageNotification, stage)

	stage, err = notification.ParseSponsorshipStage("approval")
	require.NoError(t, err)
	assert.Equal(t, notification.StageApproval, stage)

	_, err = notification.ParseSponsorshipStage("rejected")
	var unknown *notification.UnknownTemplateError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "rejected", unknown.Variant)
}

func TestParamsValidate(t *testing.T) {
	var missing *notification.MissingFieldError

	err := notification.WelcomeParams{}.Validate()
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "name", missing.Field)

	err = notification.SponsorshipParams{Name: "Ana", Brand: "Acme"}.Validate()
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "campaign", missing.Field)

	err = notification.AchievementParams{Name: "Ana"}.Validate()
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "title", missing.Field)

	err = notification.MonthlyReportParams{Name: "Ana"}.Validate()
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "period", missing.Field)

	assert.NoError(t, notification.SampleWelcomeParams(notification.AudienceUser).Validate())
	assert.NoError(t, notification.SampleSponsorshipParams(notification.StageApproval).Validate())
	assert.NoError(t, notification.SampleAchievementParams().Validate())
	assert.NoError(t, notification.SampleMonthlyReportParams().Validate())
}
