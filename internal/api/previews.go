package api

import (
	"log/slog"
	"net/http"

	"github.com/brightimpact/impactboard/internal/notification"
)

// The preview handlers render each template family with sample parameters and
// return the raw markup for human inspection. They never invoke the
// dispatcher or the transport, so they are safe to call repeatedly.

func (s *Server) handlePreviewWelcome(w http.ResponseWriter, r *http.Request) {
	audience, err := notification.ParseWelcomeAudience(r.URL.Query().Get("type"))
	if err != nil {
		s.previewError(w, r, err)
		return
	}
	s.renderPreview(w, r, notification.KindWelcome, notification.SampleWelcomeParams(audience))
}

func (s *Server) handlePreviewSponsorship(w http.ResponseWriter, r *http.Request) {
	stage, err := notification.ParseSponsorshipStage(r.URL.Query().Get("type"))
	if err != nil {
		s.previewError(w, r, err)
		return
	}
	s.renderPreview(w, r, notification.KindSponsorship, notification.SampleSponsorshipParams(stage))
}

func (s *Server) handlePreviewAchievement(w http.ResponseWriter, r *http.Request) {
	s.renderPreview(w, r, notification.KindAchievement, notification.SampleAchievementParams())
}

func (s *Server) handlePreviewMonthlyReport(w http.ResponseWriter, r *http.Request) {
	s.renderPreview(w, r, notification.KindMonthlyReport, notification.SampleMonthlyReportParams())
}

// renderPreview renders the document and writes it as HTML, or a structured
// error when rendering fails. A half-rendered document is never returned.
func (s *Server) renderPreview(w http.ResponseWriter, r *http.Request, kind notification.Kind, params notification.Params) {
	doc, err := s.renderer.Render(kind, params)
	if err != nil {
		s.previewError(w, r, err)
		return
	}
	writeHTML(w, http.StatusOK, doc.HTML)
}

// previewError maps any preview failure, including an unknown template
// variant, to a 500 with a structured error payload.
func (s *Server) previewError(w http.ResponseWriter, r *http.Request, err error) {
	s.logger.Error("email preview failed",
		slog.String("path", r.URL.Path), slog.Any("error", err))
	writeError(w, http.StatusInternalServerError, err.Error())
}
