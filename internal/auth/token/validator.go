// internal/auth/token/validator.go
package token

import (
	"fmt"
	"sort"
	"strconv"

	"zumogate/internal/auth"

	"github.com/golang-jwt/jwt/v5"
)

// Validator verifies zumo tokens: HS256 JWTs signed with the shared signing
// key, with issuer and audience pinned to the serving host. It implements
// auth.TokenValidator.
type Validator struct{}

// New creates a new token validator
func New() *Validator {
	return &Validator{}
}

// TryValidate verifies a raw token string. It returns (nil, false) for any
// token that fails signature, issuer, audience or expiry checks. Per the
// collaborator contract it never panics, even against parser misbehavior.
func (v *Validator) TryValidate(tokenStr, signingKey, issuer, audience string) (principal *auth.Principal, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			principal, ok = nil, false
		}
	}()

	if tokenStr == "" || signingKey == "" {
		return nil, false
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(tokenStr, claims, func(_ *jwt.Token) (any, error) {
		return []byte(signingKey), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithAudience(audience),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !parsed.Valid {
		return nil, false
	}

	// A principal without a subject is useless to downstream authorization.
	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return nil, false
	}

	return &auth.Principal{Claims: flatten(claims)}, true
}

// flatten converts raw JWT claims into the ordered string claims carried by a
// principal. Claims are sorted by type so repeated validations of the same
// token produce identical principals.
func flatten(claims jwt.MapClaims) []auth.Claim {
	out := make([]auth.Claim, 0, len(claims))
	for name, value := range claims {
		switch val := value.(type) {
		case string:
			out = append(out, auth.Claim{Type: name, Value: val})
		case []any:
			for _, item := range val {
				out = append(out, auth.Claim{Type: name, Value: fmt.Sprint(item)})
			}
		case float64:
			// Numeric date claims (exp, iat, nbf) arrive as float64.
			out = append(out, auth.Claim{Type: name, Value: strconv.FormatFloat(val, 'f', -1, 64)})
		default:
			out = append(out, auth.Claim{Type: name, Value: fmt.Sprint(val)})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Type != out[j].Type {
			return out[i].Type < out[j].Type
		}
		return out[i].Value < out[j].Value
	})
	return out
}
