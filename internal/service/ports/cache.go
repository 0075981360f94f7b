package ports

// Cache holds precomputed announcement strings. It is a best-effort derived
// view, never authoritative state.
type Cache interface {
	Get(key string) (string, bool)
	Set(key, value string)
	Delete(key string)
}
