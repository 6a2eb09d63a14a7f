package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/brightimpact/impactboard/internal/config"
	"github.com/brightimpact/impactboard/internal/i18n"
	"github.com/brightimpact/impactboard/internal/notification"
)

// NewPreviewCmd returns the "preview" subcommand that renders an email
// template to stdout with sample parameters, without sending anything.
func NewPreviewCmd(cfg *config.AppConfig) *cobra.Command {
	var variant string

	cmd := &cobra.Command{
		Use:       "preview {welcome|sponsorship|achievement|monthly-report}",
		Short:     "Render an email template to stdout",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"welcome", "sponsorship", "achievement", "monthly-report"},
		RunE: func(_ *cobra.Command, args []string) error {
			renderer := notification.NewRenderer(i18n.Load(cfg.DefaultLocale))

			kind := notification.Kind(args[0])
			var params notification.Params
			switch kind {
			case notification.KindWelcome:
				audience, err := notification.ParseWelcomeAudience(variant)
				if err != nil {
					return err
				}
				params = notification.SampleWelcomeParams(audience)
			case notification.KindSponsorship:
				stage, err := notification.ParseSponsorshipStage(variant)
				if err != nil {
					return err
				}
				params = notification.SampleSponsorshipParams(stage)
			case notification.KindAchievement:
				params = notification.SampleAchievementParams()
			case notification.KindMonthlyReport:
				params = notification.SampleMonthlyReportParams()
			default:
				return &notification.UnknownTemplateError{Kind: kind}
			}

			doc, err := renderer.Render(kind, params)
			if err != nil {
				return err
			}
			fmt.Println(doc.HTML)
			return nil
		},
	}

	cmd.Flags().StringVar(&variant, "type", "", "template variant (welcome: user|brand, sponsorship: notification|approval)")

	return cmd
}
