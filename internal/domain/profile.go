package domain

import "fmt"

type TeeShirtSize string

const (
	TeeShirtNotSpecified TeeShirtSize = "NOT_SPECIFIED"
	TeeShirtXSM          TeeShirtSize = "XS_M"
	TeeShirtXSW          TeeShirtSize = "XS_W"
	TeeShirtSM           TeeShirtSize = "S_M"
	TeeShirtSW           TeeShirtSize = "S_W"
	TeeShirtMM           TeeShirtSize = "M_M"
	TeeShirtMW           TeeShirtSize = "M_W"
	TeeShirtLM           TeeShirtSize = "L_M"
	TeeShirtLW           TeeShirtSize = "L_W"
	TeeShirtXLM          TeeShirtSize = "XL_M"
	TeeShirtXLW          TeeShirtSize = "XL_W"
	TeeShirtXXLM         TeeShirtSize = "XXL_M"
	TeeShirtXXLW         TeeShirtSize = "XXL_W"
)

var teeShirtSizes = map[TeeShirtSize]bool{
	TeeShirtNotSpecified: true,
	TeeShirtXSM:          true,
	TeeShirtXSW:          true,
	TeeShirtSM:           true,
	TeeShirtSW:           true,
	TeeShirtMM:           true,
	TeeShirtMW:           true,
	TeeShirtLM:           true,
	TeeShirtLW:           true,
	TeeShirtXLM:          true,
	TeeShirtXLW:          true,
	TeeShirtXXLM:         true,
	TeeShirtXXLW:         true,
}

func ParseTeeShirtSize(s string) (TeeShirtSize, error) {
	size := TeeShirtSize(s)
	if !teeShirtSizes[size] {
		return "", fmt.Errorf("%w: unknown tee shirt size %q", ErrValidation, s)
	}
	return size, nil
}

// Profile is created lazily on a user's first authenticated request and
// never deleted. UserID is the stable external identity.
type Profile struct {
	UserID                 string       `json:"user_id"`
	DisplayName            string       `json:"display_name"`
	MainEmail              string       `json:"main_email"`
	TeeShirtSize           TeeShirtSize `json:"tee_shirt_size"`
	ConferenceKeysToAttend []string     `json:"conference_keys_to_attend"`
	SessionsInWishlist     []string     `json:"sessions_in_wishlist"`
}

func (p *Profile) IsAttending(conferenceKey string) bool {
	for _, k := range p.ConferenceKeysToAttend {
		if k == conferenceKey {
			return true
		}
	}
	return false
}

func (p *Profile) HasInWishlist(sessionKey string) bool {
	for _, k := range p.SessionsInWishlist {
		if k == sessionKey {
			return true
		}
	}
	return false
}

// RemoveConference drops conferenceKey from the attendance list. It reports
// whether the key was present.
func (p *Profile) RemoveConference(conferenceKey string) bool {
	for i, k := range p.ConferenceKeysToAttend {
		if k == conferenceKey {
			p.ConferenceKeysToAttend = append(p.ConferenceKeysToAttend[:i], p.ConferenceKeysToAttend[i+1:]...)
			return true
		}
	}
	return false
}

type SaveProfileInput struct {
	DisplayName  string
	TeeShirtSize string
}
