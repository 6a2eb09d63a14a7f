package api

import (
	"encoding/json"
	"net/http"

	"github.com/brightimpact/impactboard/internal/notification"
)

// Generic failure message for transport and unexpected errors. The full
// detail goes to the server log only.
const errSendFailed = "failed to send notification"

type welcomeEmailRequest struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	Type  string `json:"type"`
}

func (s *Server) handleSendWelcome(w http.ResponseWriter, r *http.Request) {
	var req welcomeEmailRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, errInvalidJSONBody)
		return
	}

	audience, err := notification.ParseWelcomeAudience(req.Type)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	result := s.dispatcher.Dispatch(r.Context(), req.Email, notification.KindWelcome,
		notification.WelcomeParams{Name: req.Name, Audience: audience})
	s.writeDispatchResult(w, result)
}

type sponsorshipEmailRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Brand    string `json:"brand"`
	Campaign string `json:"campaign"`
	Type     string `json:"type"`
}

func (s *Server) handleSendSponsorship(w http.ResponseWriter, r *http.Request) {
	var req sponsorshipEmailRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, errInvalidJSONBody)
		return
	}

	stage, err := notification.ParseSponsorshipStage(req.Type)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	result := s.dispatcher.Dispatch(r.Context(), req.Email, notification.KindSponsorship,
		notification.SponsorshipParams{
			Name:     req.Name,
			Brand:    req.Brand,
			Campaign: req.Campaign,
			Stage:    stage,
		})
	s.writeDispatchResult(w, result)
}

type achievementEmailRequest struct {
	Email       string `json:"email"`
	Name        string `json:"name"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

func (s *Server) handleSendAchievement(w http.ResponseWriter, r *http.Request) {
	var req achievementEmailRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, errInvalidJSONBody)
		return
	}

	result := s.dispatcher.Dispatch(r.Context(), req.Email, notification.KindAchievement,
		notification.AchievementParams{
			Name:        req.Name,
			Title:       req.Title,
			Description: req.Description,
		})
	s.writeDispatchResult(w, result)
}

type monthlyReportEmailRequest struct {
	Email          string `json:"email"`
	Name           string `json:"name"`
	Period         string `json:"period"`
	VolunteerHours int    `json:"volunteer_hours"`
	Donations      string `json:"donations"`
}

func (s *Server) handleSendMonthlyReport(w http.ResponseWriter, r *http.Request) {
	var req monthlyReportEmailRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, errInvalidJSONBody)
		return
	}

	result := s.dispatcher.Dispatch(r.Context(), req.Email, notification.KindMonthlyReport,
		notification.MonthlyReportParams{
			Name:           req.Name,
			Period:         req.Period,
			VolunteerHours: req.VolunteerHours,
			Donations:      req.Donations,
		})
	s.writeDispatchResult(w, result)
}

// writeDispatchResult maps a dispatch outcome to the HTTP response:
// 200 on delivery, 400 for validation failures, 500 for everything else.
// Transport error detail never reaches the response body.
func (s *Server) writeDispatchResult(w http.ResponseWriter, result notification.DispatchResult) {
	switch result.Status {
	case notification.StatusDelivered:
		writeJSON(w, http.StatusOK, map[string]any{
			"success":    true,
			"message_id": result.MessageID,
		})
	case notification.StatusInvalid:
		writeError(w, http.StatusBadRequest, result.Err.Error())
	case notification.StatusUnknownTemplate:
		writeError(w, http.StatusInternalServerError, result.Err.Error())
	default:
		writeError(w, http.StatusInternalServerError, errSendFailed)
	}
}
