package domain

import "time"

// DateFormat is the wire format for conference and session dates.
const DateFormat = "2006-01-02"

type Conference struct {
	Key             string     `json:"websafe_key"`
	Name            string     `json:"name"`
	Description     string     `json:"description"`
	OrganizerUserID string     `json:"organizer_user_id"`
	Topics          []string   `json:"topics"`
	City            string     `json:"city"`
	StartDate       *time.Time `json:"start_date,omitempty"`
	EndDate         *time.Time `json:"end_date,omitempty"`
	Month           int        `json:"month"`
	MaxAttendees    int        `json:"max_attendees"`
	SeatsAvailable  int        `json:"seats_available"`
}

type CreateConferenceInput struct {
	Name         string
	Description  string
	Topics       []string
	City         string
	StartDate    string
	EndDate      string
	MaxAttendees *int
}
