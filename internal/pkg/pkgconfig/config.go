package pkgconfig

// Config abstracts the configuration backend so modules depend on reads only.
type Config interface {
	GetString(key string) string
	GetInt(key string) int
	GetBool(key string) bool
	GetStringSlice(key string) []string
	Close() error
}
