package notification

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/brightimpact/impactboard/internal/i18n"
)

// Document is a fully rendered notification, ready for preview or delivery.
type Document struct {
	Subject string
	HTML    string
	Text    string
}

// layoutTmpl is the HTML wrapper applied to every outgoing notification.
// {{.Subject}} and {{.FooterReason}} are auto-escaped by html/template;
// Body is pre-rendered trusted markup.
var layoutTmpl = template.Must(template.New("layout").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width,initial-scale=1.0">
  <title>{{.Subject}}</title>
</head>
<body style="margin:0;padding:0;background-color:#f4f7f5;
     font-family:-apple-system,BlinkMacSystemFont,'Segoe UI',Roboto,Arial,sans-serif;">
  <table width="100%" cellpadding="0" cellspacing="0" role="presentation"
         style="background-color:#f4f7f5;padding:40px 16px;">
    <tr>
      <td align="center">
        <table width="600" cellpadding="0" cellspacing="0" role="presentation"
               style="max-width:600px;width:100%;">

          <tr>
            <td style="background-color:#0b1f16;padding:28px 40px;border-radius:12px 12px 0 0;">
              <table cellpadding="0" cellspacing="0" role="presentation">
                <tr>
                  <td style="vertical-align:middle;padding-right:12px;">
                    <div style="width:36px;height:36px;background:linear-gradient(135deg,#22c55e,#0ea5e9);
                                border-radius:8px;display:inline-block;text-align:center;line-height:36px;
                                font-size:20px;font-weight:900;color:#ffffff;">I</div>
                  </td>
                  <td style="vertical-align:middle;">
                    <span style="font-size:20px;font-weight:700;
                                 color:#ffffff;letter-spacing:-0.3px;">Impactboard</span>
                    <span style="display:block;font-size:11px;color:#86a396;margin-top:1px;letter-spacing:0.3px;">
                      Corporate Impact Platform
                    </span>
                  </td>
                </tr>
              </table>
            </td>
          </tr>

          <tr>
            <td style="background-color:#122a1e;padding:16px 40px;border-left:3px solid #22c55e;">
              <p style="margin:0;font-size:15px;font-weight:600;color:#e7f0ea;">{{.Subject}}</p>
            </td>
          </tr>

          <tr>
            <td style="background-color:#ffffff;padding:36px 40px;">
              <div style="font-size:14px;line-height:1.7;color:#374151;word-break:break-word;">{{.Body}}</div>
            </td>
          </tr>

          <tr>
            <td style="background-color:#f9fafb;padding:20px 40px;
                       border-top:1px solid #e5e7eb;border-radius:0 0 12px 12px;">
              <p style="margin:0;font-size:12px;color:#9ca3af;">{{.FooterReason}}</p>
            </td>
          </tr>

        </table>
      </td>
    </tr>
  </table>
</body>
</html>
`))

// templateKey identifies one body template: a kind plus its variant
// discriminator (empty for kinds without variants).
type templateKey struct {
	kind    Kind
	variant string
}

var bodyTmpls = map[templateKey]*template.Template{
	{KindWelcome, string(AudienceUser)}: bodyTmpl("welcome-user", `
<p>Hi {{.Name}},</p>
<p>Welcome to Impactboard! Your personal dashboard is ready. Track your
volunteer hours, donations, and team challenges all in one place.</p>
<p style="color:#6b7280;font-size:12px;">Template: welcome/user</p>`),

	{KindWelcome, string(AudienceBrand)}: bodyTmpl("welcome-brand", `
<p>Hi {{.Name}},</p>
<p>Your brand is now live on Impactboard. Employees across our network can
discover your campaigns and sponsorship opportunities starting today.</p>
<p style="color:#6b7280;font-size:12px;">Template: welcome/brand</p>`),

	{KindSponsorship, string(StageNotification)}: bodyTmpl("sponsorship-notification", `
<p>Hi {{.Name}},</p>
<p><strong>{{.Brand}}</strong> submitted a sponsorship request for the
campaign <strong>{{.Campaign}}</strong>. Review it from your admin dashboard.</p>
<p style="color:#6b7280;font-size:12px;">Template: sponsorship/notification</p>`),

	{KindSponsorship, string(StageApproval)}: bodyTmpl("sponsorship-approval", `
<p>Hi {{.Name}},</p>
<p>Good news &mdash; <strong>{{.Brand}}</strong> approved your sponsorship for
<strong>{{.Campaign}}</strong>. The campaign page has been updated.</p>
<p style="color:#6b7280;font-size:12px;">Template: sponsorship/approval</p>`),

	{KindAchievement, ""}: bodyTmpl("achievement", `
<p>Congratulations {{.Name}}!</p>
<p>You unlocked the achievement <strong>{{.Title}}</strong>.</p>
{{- if .Description}}
<p>{{.Description}}</p>
{{- end}}
<p>Keep it up &mdash; your next milestone is waiting on your dashboard.</p>`),

	{KindMonthlyReport, ""}: bodyTmpl("monthly-report", `
<p>Hi {{.Name}},</p>
<p>Here is your impact summary for <strong>{{.Period}}</strong>:</p>
<ul>
  <li>Volunteer hours logged: <strong>{{.VolunteerHours}}</strong></li>
  {{- if .Donations}}
  <li>Donations: <strong>{{.Donations}}</strong></li>
  {{- end}}
</ul>
<p>See the full breakdown on your dashboard.</p>`),
}

func bodyTmpl(name, body string) *template.Template {
	return template.Must(template.New(name).Parse(body))
}

// Renderer produces rendered notification documents. It is pure and
// deterministic: the same kind and parameters always yield the same document.
// The message catalog is fixed at construction time so the preview and send
// paths share one source of truth.
type Renderer struct {
	messages *i18n.Messages
}

// NewRenderer creates a Renderer using the given message catalog.
func NewRenderer(messages *i18n.Messages) *Renderer {
	return &Renderer{messages: messages}
}

// Render produces the document for the given kind and parameters. Unknown
// kinds and unknown variant discriminators fail with *UnknownTemplateError;
// a mismatched parameter type is reported as a plain error.
func (r *Renderer) Render(kind Kind, params Params) (Document, error) {
	key, subjectKey, text, err := resolveTemplate(kind, params)
	if err != nil {
		return Document{}, err
	}

	tmpl, ok := bodyTmpls[key]
	if !ok {
		return Document{}, &UnknownTemplateError{Kind: kind, Variant: key.variant}
	}

	var body bytes.Buffer
	if err := tmpl.Execute(&body, params); err != nil {
		return Document{}, fmt.Errorf("rendering %q body: %w", tmpl.Name(), err)
	}

	subject := r.messages.Get(subjectKey)

	var doc bytes.Buffer
	err = layoutTmpl.Execute(&doc, struct {
		Subject      string
		Body         template.HTML
		FooterReason string
	}{
		Subject:      subject,
		Body:         template.HTML(body.String()), //nolint:gosec
		FooterReason: r.messages.Get("footer.reason"),
	})
	if err != nil {
		return Document{}, fmt.Errorf("rendering layout for %q: %w", kind, err)
	}

	return Document{Subject: subject, HTML: doc.String(), Text: text}, nil
}

// resolveTemplate maps a kind and its params to the body template key, the
// catalog key for the subject line, and the plain-text fallback body.
func resolveTemplate(kind Kind, params Params) (templateKey, string, string, error) {
	switch kind {
	case KindWelcome:
		p, ok := params.(WelcomeParams)
		if !ok {
			return templateKey{}, "", "", fmt.Errorf("kind %q requires WelcomeParams, got %T", kind, params)
		}
		switch p.Audience {
		case AudienceUser, "":
			return templateKey{kind, string(AudienceUser)}, "welcome.user.subject",
				fmt.Sprintf("Hi %s, welcome to Impactboard! Your dashboard is ready.", p.Name), nil
		case AudienceBrand:
			return templateKey{kind, string(AudienceBrand)}, "welcome.brand.subject",
				fmt.Sprintf("Hi %s, your brand is now live on Impactboard.", p.Name), nil
		}
		return templateKey{}, "", "", &UnknownTemplateError{Kind: kind, Variant: string(p.Audience)}

	case KindSponsorship:
		p, ok := params.(SponsorshipParams)
		if !ok {
			return templateKey{}, "", "", fmt.Errorf("kind %q requires SponsorshipParams, got %T", kind, params)
		}
		switch p.Stage {
		case StageNotification, "":
			return templateKey{kind, string(StageNotification)}, "sponsorship.notification.subject",
				fmt.Sprintf("Hi %s, %s submitted a sponsorship request for %s.", p.Name, p.Brand, p.Campaign), nil
		case StageApproval:
			return templateKey{kind, string(StageApproval)}, "sponsorship.approval.subject",
				fmt.Sprintf("Hi %s, %s approved your sponsorship for %s.", p.Name, p.Brand, p.Campaign), nil
		}
		return templateKey{}, "", "", &UnknownTemplateError{Kind: kind, Variant: string(p.Stage)}

	case KindAchievement:
		p, ok := params.(AchievementParams)
		if !ok {
			return templateKey{}, "", "", fmt.Errorf("kind %q requires AchievementParams, got %T", kind, params)
		}
		return templateKey{kind, ""}, "achievement.subject",
			fmt.Sprintf("Congratulations %s! You unlocked the achievement %q.", p.Name, p.Title), nil

	case KindMonthlyReport:
		p, ok := params.(MonthlyReportParams)
		if !ok {
			return templateKey{}, "", "", fmt.Errorf("kind %q requires MonthlyReportParams, got %T", kind, params)
		}
		return templateKey{kind, ""}, "monthly_report.subject",
			fmt.Sprintf("Hi %s, here is your impact summary for %s: %d volunteer hours.",
				p.Name, p.Period, p.VolunteerHours), nil
	}

	return templateKey{}, "", "", &UnknownTemplateError{Kind: kind}
}
