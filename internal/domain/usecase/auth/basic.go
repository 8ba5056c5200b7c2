package auth

import (
	"encoding/base64"
	"strings"

	errs "github.com/amirhossein-jamali/budget-tracker/internal/domain/error"
)

// DecodeBasicCredentials extracts the email/password pair from an
// Authorization header value of the form "Basic base64(email:password)".
// It is a pure function, independent of any HTTP framework type, so the
// parsing rules are testable in isolation.
func DecodeBasicCredentials(header string) (email, password string, err error) {
	const prefix = "Basic "

	if header == "" || !strings.HasPrefix(header, prefix) {
		return "", "", errs.ErrInvalidCredentials
	}

	decoded, decodeErr := base64.StdEncoding.DecodeString(strings.TrimPrefix(header, prefix))
	if decodeErr != nil {
		return "", "", errs.ErrInvalidCredentials
	}

	// Only the first colon separates email from password; passwords may
	// contain colons themselves.
	email, password, found := strings.Cut(string(decoded), ":")
	if !found || email == "" {
		return "", "", errs.ErrInvalidCredentials
	}

	return email, password, nil
}
