package identity

import (
	"context"
	"net"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ContextKey is a type for context keys to avoid collisions.
type ContextKey string

const (
	// Key is the context key for Identity.
	Key ContextKey = "identity"
)

// Claims are the bearer token claims issued by drivectl token issue.
type Claims struct {
	Organization string `json:"org"`
	jwt.RegisteredClaims
}

// Identity represents the authenticated identity for a request.
// It combines token claims with request-specific context.
type Identity struct {
	// Token claims
	RoleID       string
	Organization string
	Login        string
	IssuedAt     time.Time
	ExpiresAt    time.Time

	// Request context
	RemoteIP net.IP // Client IP address

	// The verified claims
	Claims *Claims
}

// FromClaims creates an Identity from verified token claims.
func FromClaims(claims *Claims) *Identity {
	login := claims.Subject
	id := &Identity{
		RoleID:       RoleID(claims.Organization, login),
		Organization: claims.Organization,
		Login:        login,
		Claims:       claims,
	}
	if claims.IssuedAt != nil {
		id.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		id.ExpiresAt = claims.ExpiresAt.Time
	}
	return id
}

// WithRemoteIP sets the remote IP address.
func (i *Identity) WithRemoteIP(ip net.IP) *Identity {
	i.RemoteIP = ip
	return i
}

// CanAccess reports whether the identity belongs to org.
func (i *Identity) CanAccess(org string) bool {
	return i.Organization != "" && i.Organization == org
}

// ClientIP returns the remote IP as a string, or "" when unknown.
func (i *Identity) ClientIP() string {
	if i.RemoteIP == nil {
		return ""
	}
	return i.RemoteIP.String()
}

// RoleID constructs a role ID from organization and login.
// If login contains a slash, it's treated as "kind/id".
// Otherwise, it's treated as a user login.
func RoleID(org string, login string) string {
	tokens := strings.Split(login, "/")
	if len(tokens) == 1 {
		tokens = []string{"user", login}
	}

	return strings.Join(
		[]string{
			org, tokens[0], strings.Join(tokens[1:], "/"),
		},
		":",
	)
}

// Get retrieves Identity from context.
func Get(ctx context.Context) (*Identity, bool) {
	id, ok := ctx.Value(Key).(*Identity)
	return id, ok
}

// Set stores Identity in context.
func Set(ctx context.Context, id *Identity) context.Context {
	return context.WithValue(ctx, Key, id)
}
