package notification_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brightimpact/impactboard/internal/i18n"
	"github.com/brightimpact/impactboard/internal/notification"
)

func newRenderer() *notification.Renderer {
	return notification.NewRenderer(i18n.Load("en"))
}

func TestRender_Deterministic(t *testing.T) {
	r := newRenderer()
	params := notification.SampleWelcomeParams(notification.AudienceUser)

	first, err := r.Render(notification.KindWelcome, params)
	require.NoError(t, err)
	second, err := r.Render(notification.KindWelcome, params)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.NotEmpty(t, first.HTML)
	assert.NotEmpty(t, first.Text)
	assert.NotEmpty(t, first.Subject)
}

func TestRender_WelcomeVariantsDiffer(t *testing.T) {
	r := newRenderer()

	user, err := r.Render(notification.KindWelcome,
		notification.WelcomeParams{Name: "Ana", Audience: notification.AudienceUser})
	require.NoError(t, err)
	brand, err := r.Render(notification.KindWelcome,
		notification.WelcomeParams{Name: "Ana", Audience: notification.AudienceBrand})
	require.NoError(t, err)

	assert.NotEqual(t, user.HTML, brand.HTML)
	assert.Contains(t, user.HTML, "welcome/user")
	assert.Contains(t, brand.HTML, "welcome/brand")
}

func TestRender_WelcomeEmptyAudienceDefaultsToUser(t *testing.T) {
	r := newRenderer()

	blank, err := r.Render(notification.KindWelcome, notification.WelcomeParams{Name: "Ana"})
	require.NoError(t, err)
	user, err := r.Render(notification.KindWelcome,
		notification.WelcomeParams{Name: "Ana", Audience: notification.AudienceUser})
	require.NoError(t, err)

	assert.Equal(t, user, blank)
}

func TestRender_SponsorshipVariantsDiffer(t *testing.T) {
	r := newRenderer()

	notif, err := r.Render(notification.KindSponsorship,
		notification.SampleSponsorshipParams(notification.StageNotification))
	require.NoError(t, err)
	approval, err := r.Render(notification.KindSponsorship,
		notification.SampleSponsorshipParams(notification.StageApproval))
	require.NoError(t, err)

	assert.NotEqual(t, notif.HTML, approval.HTML)
	assert.Contains(t, notif.HTML, "Trees for Tomorrow")
	assert.Contains(t, approval.HTML, "approved")
}

func TestRender_UnknownKind(t *testing.T) {
	r := newRenderer()

	_, err := r.Render(notification.Kind("newsletter"), notification.WelcomeParams{Name: "Ana"})
	var unknown *notification.UnknownTemplateError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, notification.Kind("newsletter"), unknown.Kind)
}

func TestRender_UnknownWelcomeAudience(t *testing.T) {
	r := newRenderer()

	_, err := r.Render(notification.KindWelcome,
		notification.WelcomeParams{Name: "Ana", Audience: notification.WelcomeAudience("partner")})
	var unknown *notification.UnknownTemplateError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "partner", unknown.Variant)
}

func TestRender_MismatchedParamsType(t *testing.T) {
	r := newRenderer()

	_, err := r.Render(notification.KindWelcome, notification.AchievementParams{Name: "Ana", Title: "x"})
	require.Error(t, err)
	var unknown *notification.UnknownTemplateError
	assert.NotErrorAs(t, err, &unknown)
}

func TestRender_AchievementDescriptionOptional(t *testing.T) {
	r := newRenderer()

	with, err := r.Render(notification.KindAchievement, notification.AchievementParams{
		Name: "Ana", Title: "First 10 Hours", Description: "Logged ten hours in a month.",
	})
	require.NoError(t, err)
	without, err := r.Render(notification.KindAchievement, notification.AchievementParams{
		Name: "Ana", Title: "First 10 Hours",
	})
	require.NoError(t, err)

	assert.Contains(t, with.HTML, "Logged ten hours in a month.")
	assert.NotContains(t, without.HTML, "Logged ten hours in a month.")
	assert.Contains(t, without.HTML, "First 10 Hours")
}

func TestRender_MonthlyReport(t *testing.T) {
	r := newRenderer()

	doc, err := r.Render(notification.KindMonthlyReport, notification.MonthlyReportParams{
		Name: "Ana", Period: "June 2025", VolunteerHours: 14,
	})
	require.NoError(t, err)

	assert.Contains(t, doc.HTML, "June 2025")
	assert.Contains(t, doc.HTML, "14")
	assert.NotContains(t, doc.HTML, "Donations")
}

func TestRender_LocalizedSubject(t *testing.T) {
	en := notification.NewRenderer(i18n.Load("en"))
	es := notification.NewRenderer(i18n.Load("es"))
	params := notification.SampleWelcomeParams(notification.AudienceUser)

	enDoc, err := en.Render(notification.KindWelcome, params)
	require.NoError(t, err)
	esDoc, err := es.Render(notification.KindWelcome, params)
	require.NoError(t, err)

	assert.Equal(t, "Welcome to Impactboard", enDoc.Subject)
	assert.Equal(t, "Bienvenido a Impactboard", esDoc.Subject)
}
