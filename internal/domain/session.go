package domain

import (
	"fmt"
	"time"
)

type SessionType string

const (
	SessionNotSpecified SessionType = "NOT_SPECIFIED"
	SessionLecture      SessionType = "LECTURE"
	SessionKeynote      SessionType = "KEYNOTE"
	SessionWorkshop     SessionType = "WORKSHOP"
	SessionPanel        SessionType = "PANEL"
)

var sessionTypes = map[SessionType]bool{
	SessionNotSpecified: true,
	SessionLecture:      true,
	SessionKeynote:      true,
	SessionWorkshop:     true,
	SessionPanel:        true,
}

func ParseSessionType(s string) (SessionType, error) {
	t := SessionType(s)
	if !sessionTypes[t] {
		return "", fmt.Errorf("%w: unknown session type %q", ErrValidation, s)
	}
	return t, nil
}

// TimeOfDay is minutes since midnight, the comparable form startTime is
// stored and filtered in.
type TimeOfDay int

const timeOfDayFormat = "15:04"

func ParseTimeOfDay(s string) (TimeOfDay, error) {
	t, err := time.Parse(timeOfDayFormat, s)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid time %q, expected HH:MM", ErrValidation, s)
	}
	return TimeOfDay(t.Hour()*60 + t.Minute()), nil
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", int(t)/60, int(t)%60)
}

// Session is immutable once created. SpeakerName doubles as the Speaker key.
type Session struct {
	Key           string      `json:"websafe_key"`
	ConferenceKey string      `json:"conference_key"`
	Name          string      `json:"name"`
	Highlights    []string    `json:"highlights"`
	SpeakerName   string      `json:"speaker_name"`
	Duration      int         `json:"duration"`
	TypeOfSession SessionType `json:"type_of_session"`
	Date          *time.Time  `json:"date,omitempty"`
	StartTime     *TimeOfDay  `json:"start_time,omitempty"`
}

type CreateSessionInput struct {
	Name          string
	Highlights    []string
	SpeakerName   string
	Duration      int
	TypeOfSession string
	Date          string
	StartTime     string
}
