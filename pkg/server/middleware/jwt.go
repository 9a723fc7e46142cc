package middleware

import (
	"errors"
	"net"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/doodlesbykumbi/drive-console/pkg/identity"
)

var tokenRegex = regexp.MustCompile(`^Bearer (\S+)$`)

// JWTAuthenticator is middleware that validates HS256 bearer tokens
type JWTAuthenticator struct {
	Secret []byte
	Issuer string
}

// NewJWTAuthenticator creates a new JWT authenticator middleware
func NewJWTAuthenticator(secret []byte, issuer string) *JWTAuthenticator {
	return &JWTAuthenticator{Secret: secret, Issuer: issuer}
}

// IssueToken signs a token for login in org, valid for ttl.
func IssueToken(secret []byte, issuer, login, org string, ttl time.Duration) (string, error) {
	if len(secret) == 0 {
		return "", errors.New("token secret is empty")
	}
	now := time.Now()
	claims := identity.Claims{
		Organization: org,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   login,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

// Parse verifies a signed token and returns its claims.
func (j *JWTAuthenticator) Parse(tokenStr string) (*identity.Claims, error) {
	claims := &identity.Claims{}
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if j.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(j.Issuer))
	}
	_, err := jwt.ParseWithClaims(tokenStr, claims, func(*jwt.Token) (interface{}, error) {
		return j.Secret, nil
	}, opts...)
	if err != nil {
		return nil, err
	}
	if claims.Organization == "" || claims.Subject == "" {
		return nil, errors.New("token is missing org or sub")
	}
	return claims, nil
}

// ClientIP returns the first X-Forwarded-For entry, or the host part of
// RemoteAddr.
func ClientIP(r *http.Request) net.IP {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		first, _, _ := strings.Cut(forwarded, ",")
		return net.ParseIP(strings.TrimSpace(first))
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	return net.ParseIP(host)
}

// Middleware returns an HTTP middleware that validates bearer tokens
func (j *JWTAuthenticator) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")

		if len(authHeader) == 0 {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte("Authorization missing"))
			return
		}

		tokenMatches := tokenRegex.FindStringSubmatch(authHeader)

		if len(tokenMatches) != 2 {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte("Malformed authorization header"))
			return
		}

		claims, err := j.Parse(tokenMatches[1])
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte("Token expired"))
			return
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte("Invalid signature"))
			return
		case err != nil:
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte("Malformed authorization token"))
			return
		}

		id := identity.FromClaims(claims).WithRemoteIP(ClientIP(r))
		r = r.WithContext(identity.Set(r.Context(), id))

		next.ServeHTTP(w, r)
	})
}
