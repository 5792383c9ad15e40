package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/pkg/errors"
	"google.golang.org/api/idtoken"
)

// idTokenValidator matches idtoken.Validate.
type idTokenValidator func(ctx context.Context, token, audience string) (*idtoken.Payload, error)

var googleIssuers = map[string]bool{
	"accounts.google.com":         true,
	"https://accounts.google.com": true,
}

// pushAuthenticator checks the OIDC token an authenticated push subscription
// attaches to every delivery. The expected audience is the endpoint URL.
type pushAuthenticator struct {
	validate idTokenValidator
}

func (a *pushAuthenticator) verify(req *http.Request) error {
	token, ok := strings.CutPrefix(req.Header.Get("Authorization"), "Bearer ")
	if !ok || token == "" {
		return errors.New("bearer token required")
	}

	payload, err := a.validate(req.Context(), token, audienceOf(req))
	if err != nil {
		return errors.Wrap(err, "validate push token")
	}
	if !googleIssuers[payload.Issuer] {
		return errors.Errorf("unexpected token issuer %q", payload.Issuer)
	}
	if verified, present := payload.Claims["email_verified"].(bool); present && !verified {
		return errors.New("service account email not verified")
	}

	return nil
}

func audienceOf(req *http.Request) string {
	scheme := "http"
	if req.TLS != nil {
		scheme = "https"
	}

	return scheme + "://" + req.Host + req.URL.Path
}
