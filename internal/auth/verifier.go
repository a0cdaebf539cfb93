package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	firebase "firebase.google.com/go/v4"
	fbauth "firebase.google.com/go/v4/auth"
	"github.com/golang-jwt/jwt/v5"
	"google.golang.org/api/option"
)

var (
	// ErrMissingToken and ErrMalformedToken map to Unauthorized: the
	// request never reached the identity provider.
	ErrMissingToken   = errors.New("authorization token is missing")
	ErrMalformedToken = errors.New("authorization token is malformed")

	// ErrTokenRejected maps to Forbidden: the provider refused the
	// credential (expired, revoked, bad signature).
	ErrTokenRejected = errors.New("authorization token was rejected")
)

// Identity is the verified (uid, email, name) tuple trusted for all
// downstream authorization and attribution.
type Identity struct {
	UID   string
	Email string
	Name  string
}

type TokenVerifier interface {
	Verify(ctx context.Context, token string) (*Identity, error)
}

// BearerToken extracts the bearer credential from the Authorization
// header and rejects structurally invalid tokens before any provider
// round trip.
func BearerToken(r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", ErrMissingToken
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return "", ErrMalformedToken
	}

	// Shape check only. Verification is the provider's job.
	if _, _, err := jwt.NewParser().ParseUnverified(parts[1], jwt.MapClaims{}); err != nil {
		return "", ErrMalformedToken
	}

	return parts[1], nil
}

type FirebaseVerifier struct {
	client *fbauth.Client
}

func NewFirebaseVerifier(ctx context.Context, credentialsFile string) (*FirebaseVerifier, error) {
	app, err := firebase.NewApp(ctx, nil, option.WithCredentialsFile(credentialsFile))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize firebase app: %w", err)
	}

	client, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize firebase auth client: %w", err)
	}

	return &FirebaseVerifier{client: client}, nil
}

func (v *FirebaseVerifier) Verify(ctx context.Context, token string) (*Identity, error) {
	decoded, err := v.client.VerifyIDToken(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTokenRejected, err)
	}

	identity := &Identity{UID: decoded.UID}
	if email, ok := decoded.Claims["email"].(string); ok {
		identity.Email = email
	}
	if name, ok := decoded.Claims["name"].(string); ok {
		identity.Name = name
	}

	return identity, nil
}
