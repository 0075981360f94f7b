package domain

// Speaker is keyed by its display name: two speakers sharing a name share
// one record. SessionCount is derived from SessionKeys and recomputed on
// every mutation so queries can order by it.
type Speaker struct {
	DisplayName  string   `json:"display_name"`
	SessionKeys  []string `json:"session_keys"`
	SessionCount int      `json:"session_count"`
	Featured     bool     `json:"featured"`
}

// AddSession appends a presented session and refreshes the derived fields.
// Adding any session marks the speaker featured until the next recompute.
func (s *Speaker) AddSession(sessionKey string) {
	s.SessionKeys = append(s.SessionKeys, sessionKey)
	s.SessionCount = len(s.SessionKeys)
	s.Featured = true
}
