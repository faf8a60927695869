// Package auth verifies bearer credentials against Firebase Authentication.
package auth

import (
	"context"
	"strings"

	firebase "firebase.google.com/go/v4"
	fbauth "firebase.google.com/go/v4/auth"

	"koreatrip/domain"
)

// Verifier validates an extracted bearer token and returns the stable
// subject identifier of the caller.
type Verifier interface {
	Verify(ctx context.Context, token string) (string, error)
}

// BearerToken extracts the token from an Authorization header value.
// Anything not of the form "Bearer <token>" fails as unauthenticated.
func BearerToken(header string) (string, error) {
	if header == "" {
		return "", domain.Errorf(domain.KindUnauthenticated, "missing or invalid authorization header")
	}
	if !strings.HasPrefix(header, "Bearer ") {
		return "", domain.Errorf(domain.KindUnauthenticated, "missing or invalid authorization header")
	}
	token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	if token == "" {
		return "", domain.Errorf(domain.KindUnauthenticated, "missing or invalid authorization header")
	}
	return token, nil
}

// FirebaseVerifier verifies Firebase ID tokens.
type FirebaseVerifier struct {
	client *fbauth.Client
}

// NewFirebaseVerifier creates a verifier backed by the Firebase app's auth
// client.
func NewFirebaseVerifier(ctx context.Context, app *firebase.App) (*FirebaseVerifier, error) {
	client, err := app.Auth(ctx)
	if err != nil {
		return nil, err
	}
	return &FirebaseVerifier{client: client}, nil
}

// Verify checks the ID token and returns the subject uid. Every failure,
// including transport errors talking to the identity provider, surfaces as
// the same unauthenticated rejection.
func (v *FirebaseVerifier) Verify(ctx context.Context, token string) (string, error) {
	decoded, err := v.client.VerifyIDToken(ctx, token)
	if err != nil {
		return "", domain.Errorf(domain.KindUnauthenticated, "invalid token")
	}
	return decoded.UID, nil
}
