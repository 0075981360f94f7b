// Package cache adapts go-cache to the announcement cache port.
package cache

import (
	gocache "github.com/patrickmn/go-cache"
)

// Announcements is a process-local string cache. Entries never expire on
// their own; the refresh jobs overwrite or delete them.
type Announcements struct {
	c *gocache.Cache
}

func NewAnnouncements() *Announcements {
	return &Announcements{c: gocache.New(gocache.NoExpiration, 0)}
}

func (a *Announcements) Get(key string) (string, bool) {
	v, ok := a.c.Get(key)
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

func (a *Announcements) Set(key, value string) {
	a.c.Set(key, value, gocache.NoExpiration)
}

func (a *Announcements) Delete(key string) {
	a.c.Delete(key)
}
