package dto

import (
	"github.com/confcentral/confcentral/internal/domain"
	"github.com/confcentral/confcentral/internal/service"
)

type ConferenceResponse struct {
	WebsafeKey           string   `json:"websafe_key"`
	Name                 string   `json:"name"`
	Description          string   `json:"description,omitempty"`
	OrganizerUserID      string   `json:"organizer_user_id"`
	OrganizerDisplayName string   `json:"organizer_display_name,omitempty"`
	Topics               []string `json:"topics"`
	City                 string   `json:"city"`
	StartDate            string   `json:"start_date,omitempty"`
	EndDate              string   `json:"end_date,omitempty"`
	Month                int      `json:"month"`
	MaxAttendees         int      `json:"max_attendees"`
	SeatsAvailable       int      `json:"seats_available"`
}

type SessionResponse struct {
	WebsafeKey    string   `json:"websafe_key"`
	ConferenceKey string   `json:"conference_key"`
	Name          string   `json:"name"`
	Highlights    []string `json:"highlights"`
	SpeakerName   string   `json:"speaker_name"`
	Duration      int      `json:"duration"`
	TypeOfSession string   `json:"type_of_session"`
	Date          string   `json:"date,omitempty"`
	StartTime     string   `json:"start_time,omitempty"`
}

type ProfileResponse struct {
	UserID                 string   `json:"user_id"`
	DisplayName            string   `json:"display_name"`
	MainEmail              string   `json:"main_email"`
	TeeShirtSize           string   `json:"tee_shirt_size"`
	ConferenceKeysToAttend []string `json:"conference_keys_to_attend"`
	SessionsInWishlist     []string `json:"sessions_in_wishlist"`
}

type WishlistEntryResponse struct {
	SessionKey string           `json:"session_key"`
	Missing    bool             `json:"missing,omitempty"`
	Session    *SessionResponse `json:"session,omitempty"`
}

type BooleanResponse struct {
	Success bool `json:"success"`
}

type AnnouncementResponse struct {
	Announcement string `json:"announcement"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToConferenceResponse(c *domain.Conference, organizerName string) ConferenceResponse {
	resp := ConferenceResponse{
		WebsafeKey:           c.Key,
		Name:                 c.Name,
		Description:          c.Description,
		OrganizerUserID:      c.OrganizerUserID,
		OrganizerDisplayName: organizerName,
		Topics:               c.Topics,
		City:                 c.City,
		Month:                c.Month,
		MaxAttendees:         c.MaxAttendees,
		SeatsAvailable:       c.SeatsAvailable,
	}
	if c.StartDate != nil {
		resp.StartDate = c.StartDate.Format(domain.DateFormat)
	}
	if c.EndDate != nil {
		resp.EndDate = c.EndDate.Format(domain.DateFormat)
	}
	return resp
}

func ToConferenceResponses(confs []*domain.Conference, organizerName string) []ConferenceResponse {
	out := make([]ConferenceResponse, 0, len(confs))
	for _, c := range confs {
		out = append(out, ToConferenceResponse(c, organizerName))
	}
	return out
}

func ToSessionResponse(s *domain.Session) SessionResponse {
	resp := SessionResponse{
		WebsafeKey:    s.Key,
		ConferenceKey: s.ConferenceKey,
		Name:          s.Name,
		Highlights:    s.Highlights,
		SpeakerName:   s.SpeakerName,
		Duration:      s.Duration,
		TypeOfSession: string(s.TypeOfSession),
	}
	if s.Date != nil {
		resp.Date = s.Date.Format(domain.DateFormat)
	}
	if s.StartTime != nil {
		resp.StartTime = s.StartTime.String()
	}
	return resp
}

func ToSessionResponses(sessions []*domain.Session) []SessionResponse {
	out := make([]SessionResponse, 0, len(sessions))
	for _, s := range sessions {
		out = append(out, ToSessionResponse(s))
	}
	return out
}

func ToProfileResponse(p *domain.Profile) ProfileResponse {
	return ProfileResponse{
		UserID:                 p.UserID,
		DisplayName:            p.DisplayName,
		MainEmail:              p.MainEmail,
		TeeShirtSize:           string(p.TeeShirtSize),
		ConferenceKeysToAttend: p.ConferenceKeysToAttend,
		SessionsInWishlist:     p.SessionsInWishlist,
	}
}

func ToWishlistResponse(entries []service.WishlistEntry) []WishlistEntryResponse {
	out := make([]WishlistEntryResponse, 0, len(entries))
	for _, e := range entries {
		resp := WishlistEntryResponse{SessionKey: e.Key}
		if e.Session == nil {
			resp.Missing = true
		} else {
			s := ToSessionResponse(e.Session)
			resp.Session = &s
		}
		out = append(out, resp)
	}
	return out
}
