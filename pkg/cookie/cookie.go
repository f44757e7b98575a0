package cookie

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"net/http"
	"slices"
	"time"

	"golang.org/x/crypto/hkdf"
)

const (
	minSecretLength = 32
	privateKeyInfo  = "dscv-cookie-private-v1"
)

// Manager reads and writes plain and private cookies.
// The first secret encrypts, every secret is tried on decrypt so keys can be
// rotated without logging everyone out.
type Manager struct {
	aeads    []cipher.AEAD
	defaults Options
}

func New(secrets []string, opts ...Option) (*Manager, error) {
	secrets = slices.DeleteFunc(slices.Clone(secrets), func(s string) bool { return s == "" })
	if len(secrets) == 0 {
		return nil, ErrNoSecret
	}

	aeads := make([]cipher.AEAD, 0, len(secrets))
	for i, s := range secrets {
		if len(s) < minSecretLength {
			return nil, fmt.Errorf("%w: secret %d has %d chars, need at least %d", ErrSecretTooShort, i, len(s), minSecretLength)
		}

		aead, err := newAEAD(s)
		if err != nil {
			return nil, err
		}
		aeads = append(aeads, aead)
	}

	defaults := Options{
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}

	return &Manager{
		aeads:    aeads,
		defaults: applyOptions(defaults, opts),
	}, nil
}

// Defaults returns a copy of the options applied to every cookie.
func (m *Manager) Defaults() Options {
	return m.defaults
}

func (m *Manager) Set(w http.ResponseWriter, name, value string, opts ...Option) error {
	if !validName(name) {
		return ErrInvalidName
	}

	options := applyOptions(m.defaults, opts)
	http.SetCookie(w, options.cookie(name, value))
	return nil
}

func (m *Manager) Get(r *http.Request, name string) (string, error) {
	c, err := r.Cookie(name)
	if err != nil {
		if errors.Is(err, http.ErrNoCookie) {
			return "", ErrCookieNotFound
		}
		return "", err
	}
	return c.Value, nil
}

func (m *Manager) Delete(w http.ResponseWriter, name string) {
	http.SetCookie(w, m.expired(name))
}

// SetPrivate encrypts value and writes it under name.
func (m *Manager) SetPrivate(w http.ResponseWriter, name, value string, opts ...Option) error {
	if !validName(name) {
		return ErrInvalidName
	}

	sealed, err := m.seal(name, value)
	if err != nil {
		return err
	}
	return m.Set(w, name, sealed, opts...)
}

// GetPrivate reads and decrypts the cookie called name.
func (m *Manager) GetPrivate(r *http.Request, name string) (string, error) {
	sealed, err := m.Get(r, name)
	if err != nil {
		return "", err
	}
	return m.open(name, sealed)
}

// Jar returns a per-request view over w and r. See Jar.
func (m *Manager) Jar(w http.ResponseWriter, r *http.Request) *Jar {
	return &Jar{
		m:       m,
		w:       w,
		r:       r,
		pending: make(map[string]*http.Cookie),
	}
}

func (m *Manager) expired(name string) *http.Cookie {
	c := m.defaults.cookie(name, "")
	c.MaxAge = -1
	c.Expires = time.Unix(0, 0)
	return c
}

// seal encrypts value with the first key. The cookie name is bound as
// additional data so a value cannot be moved to another cookie.
func (m *Manager) seal(name, value string) (string, error) {
	aead := m.aeads[0]

	nonce := make([]byte, aead.NonceSize(), aead.NonceSize()+len(value)+aead.Overhead())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", err
	}

	ciphertext := aead.Seal(nonce, nonce, []byte(value), []byte(name))
	return base64.RawURLEncoding.EncodeToString(ciphertext), nil
}

func (m *Manager) open(name, sealed string) (string, error) {
	data, err := base64.RawURLEncoding.DecodeString(sealed)
	if err != nil {
		return "", ErrInvalidFormat
	}

	for _, aead := range m.aeads {
		if len(data) < aead.NonceSize()+aead.Overhead() {
			return "", ErrInvalidFormat
		}

		nonce, ciphertext := data[:aead.NonceSize()], data[aead.NonceSize():]
		plaintext, err := aead.Open(nil, nonce, ciphertext, []byte(name))
		if err == nil {
			return string(plaintext), nil
		}
	}

	return "", ErrDecryptionFailed
}

func newAEAD(secret string) (cipher.AEAD, error) {
	key := make([]byte, 32)
	if _, err := io.ReadFull(hkdf.New(sha256.New, []byte(secret), nil, []byte(privateKeyInfo)), key); err != nil {
		return nil, errors.Join(ErrKeyDerivation, err)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, errors.Join(ErrKeyDerivation, err)
	}

	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, errors.Join(ErrKeyDerivation, err)
	}

	return aead, nil
}

// validName reports whether name is an RFC 6265 token.
func validName(name string) bool {
	if name == "" {
		return false
	}
	for i := range len(name) {
		c := name[i]
		if c <= ' ' || c >= 0x7f {
			return false
		}
		switch c {
		case '(', ')', '<', '>', '@', ',', ';', ':', '\\', '"', '/', '[', ']', '?', '=', '{', '}':
			return false
		}
	}
	return true
}
