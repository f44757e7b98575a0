package cookie

import "net/http"

// Jar is the cookie view of a single request/response exchange.
//
// Reads see cookies added or removed earlier in the same exchange before
// falling back to the request, so a value written by one handler is visible to
// the next one without a round-trip through the browser.
//
// A Jar is not safe for concurrent use, same as the http.ResponseWriter it wraps.
type Jar struct {
	m       *Manager
	w       http.ResponseWriter
	r       *http.Request
	pending map[string]*http.Cookie
}

// Get returns the raw value of the cookie called name.
func (j *Jar) Get(name string) (string, error) {
	if c, ok := j.pending[name]; ok {
		if c.MaxAge < 0 {
			return "", ErrCookieNotFound
		}
		return c.Value, nil
	}
	return j.m.Get(j.r, name)
}

// GetPrivate returns the decrypted value of the private cookie called name.
func (j *Jar) GetPrivate(name string) (string, error) {
	sealed, err := j.Get(name)
	if err != nil {
		return "", err
	}
	return j.m.open(name, sealed)
}

// Add writes a plain cookie to the response and records it in the jar.
func (j *Jar) Add(name, value string, opts ...Option) error {
	if !validName(name) {
		return ErrInvalidName
	}

	c := applyOptions(j.m.defaults, opts).cookie(name, value)
	http.SetCookie(j.w, c)
	j.pending[name] = c
	return nil
}

// AddPrivate encrypts value, writes it to the response and records it in the jar.
func (j *Jar) AddPrivate(name, value string, opts ...Option) error {
	if !validName(name) {
		return ErrInvalidName
	}

	sealed, err := j.m.seal(name, value)
	if err != nil {
		return err
	}
	return j.Add(name, sealed, opts...)
}

// Remove expires the cookie called name.
func (j *Jar) Remove(name string) {
	c := j.m.expired(name)
	http.SetCookie(j.w, c)
	j.pending[name] = c
}

// Added returns the cookies written during this exchange, keyed by name.
// Removed cookies are included with a negative MaxAge.
func (j *Jar) Added() map[string]*http.Cookie {
	out := make(map[string]*http.Cookie, len(j.pending))
	for k, v := range j.pending {
		c := *v
		out[k] = &c
	}
	return out
}
