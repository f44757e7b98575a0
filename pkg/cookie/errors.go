package cookie

import "errors"

var (
	ErrNoSecret         = errors.New("cookie.no_secret")
	ErrSecretTooShort   = errors.New("cookie.secret_too_short")
	ErrInvalidName      = errors.New("cookie.invalid_name")
	ErrDecryptionFailed = errors.New("cookie.decryption_failed")
	ErrCookieNotFound   = errors.New("cookie.not_found")
	ErrInvalidFormat    = errors.New("cookie.invalid_format")
	ErrKeyDerivation    = errors.New("cookie.key_derivation_failed")
)
