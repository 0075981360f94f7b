package store

import (
	"encoding/base64"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

var ErrInvalidKey = errors.New("store: invalid key")

// Key identifies an entity by kind plus either a string name or a numeric
// id, optionally scoped under a parent key (ancestor chain). The encoded
// form is opaque and URL-safe.
type Key struct {
	Kind   string
	Name   string
	ID     int64
	Parent *Key
}

func NewNameKey(kind, name string, parent *Key) *Key {
	return &Key{Kind: kind, Name: name, Parent: parent}
}

func NewIDKey(kind string, id int64, parent *Key) *Key {
	return &Key{Kind: kind, ID: id, Parent: parent}
}

// Encode returns the websafe form of the key: the ancestor path root-first,
// base64-encoded without padding.
func (k *Key) Encode() string {
	var segs []string
	for cur := k; cur != nil; cur = cur.Parent {
		var seg string
		if cur.Name != "" {
			seg = cur.Kind + ":n:" + url.PathEscape(cur.Name)
		} else {
			seg = cur.Kind + ":i:" + strconv.FormatInt(cur.ID, 10)
		}
		segs = append([]string{seg}, segs...)
	}
	return base64.RawURLEncoding.EncodeToString([]byte(strings.Join(segs, "/")))
}

// DecodeKey parses a websafe key produced by Encode.
func DecodeKey(s string) (*Key, error) {
	raw, err := base64.RawURLEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidKey, s)
	}
	var key *Key
	for _, seg := range strings.Split(string(raw), "/") {
		parts := strings.SplitN(seg, ":", 3)
		if len(parts) != 3 || parts[0] == "" {
			return nil, fmt.Errorf("%w: %q", ErrInvalidKey, s)
		}
		switch parts[1] {
		case "n":
			name, err := url.PathUnescape(parts[2])
			if err != nil || name == "" {
				return nil, fmt.Errorf("%w: %q", ErrInvalidKey, s)
			}
			key = NewNameKey(parts[0], name, key)
		case "i":
			id, err := strconv.ParseInt(parts[2], 10, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: %q", ErrInvalidKey, s)
			}
			key = NewIDKey(parts[0], id, key)
		default:
			return nil, fmt.Errorf("%w: %q", ErrInvalidKey, s)
		}
	}
	if key == nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidKey, s)
	}
	return key, nil
}

// DecodeKeyOfKind decodes a websafe key and checks it names the expected
// kind.
func DecodeKeyOfKind(s, kind string) (*Key, error) {
	key, err := DecodeKey(s)
	if err != nil {
		return nil, err
	}
	if key.Kind != kind {
		return nil, fmt.Errorf("%w: expected kind %s, got %s", ErrInvalidKey, kind, key.Kind)
	}
	return key, nil
}

func (k *Key) Equal(o *Key) bool {
	if k == nil || o == nil {
		return k == o
	}
	return k.Kind == o.Kind && k.Name == o.Name && k.ID == o.ID && k.Parent.Equal(o.Parent)
}

func (k *Key) String() string {
	if k.Name != "" {
		return fmt.Sprintf("%s(%q)", k.Kind, k.Name)
	}
	return fmt.Sprintf("%s(%d)", k.Kind, k.ID)
}
