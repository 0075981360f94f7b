package dto

import "github.com/confcentral/confcentral/internal/query"

type CreateConferenceRequest struct {
	Name         string   `json:"name" binding:"required"`
	Description  string   `json:"description"`
	Topics       []string `json:"topics"`
	City         string   `json:"city"`
	StartDate    string   `json:"start_date"`
	EndDate      string   `json:"end_date"`
	MaxAttendees *int     `json:"max_attendees"`
}

type QueryRequest struct {
	Filters []query.Clause `json:"filters"`
}

type CreateSessionRequest struct {
	Name          string   `json:"name" binding:"required"`
	Highlights    []string `json:"highlights"`
	SpeakerName   string   `json:"speaker_name" binding:"required"`
	Duration      int      `json:"duration"`
	TypeOfSession string   `json:"type_of_session"`
	Date          string   `json:"date"`
	StartTime     string   `json:"start_time"`
}

type SaveProfileRequest struct {
	DisplayName  string `json:"display_name"`
	TeeShirtSize string `json:"tee_shirt_size"`
}
