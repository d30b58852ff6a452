package middleware

import (
	"net/http"
	"strings"

	"beneficios_inss/internal/infrastructure/auth"
	"beneficios_inss/pkg"

	"github.com/gin-gonic/gin"
)

const (
	ContextKeySubject  = "auth.subject"
	ContextKeyAudience = "auth.audience"
	ContextKeyRoles    = "auth.roles"
)

var (
	errMissingToken = pkg.NewDomainErrorSimple("UNAUTHENTICATED", "Missing bearer token", http.StatusUnauthorized)
	errInvalidToken = pkg.NewDomainErrorSimple("UNAUTHENTICATED", "Invalid or expired token", http.StatusUnauthorized)
	errForbidden    = pkg.NewDomainErrorSimple("FORBIDDEN", "Access restricted", http.StatusForbidden)
)

// TokenParser validates a bearer token and returns its claims.
type TokenParser interface {
	Parse(token string) (*auth.Claims, error)
}

// Auth validates the bearer token and stores subject, audience and roles on the context.
func Auth(parser TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		parts := strings.SplitN(c.GetHeader("Authorization"), " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
			c.AbortWithStatusJSON(errMissingToken.HTTPStatus, errMissingToken.ToHTTPError())
			return
		}

		claims, err := parser.Parse(strings.TrimSpace(parts[1]))
		if err != nil || len(claims.Audience) == 0 {
			c.AbortWithStatusJSON(errInvalidToken.HTTPStatus, errInvalidToken.ToHTTPError())
			return
		}

		c.Set(ContextKeySubject, claims.Subject)
		c.Set(ContextKeyAudience, claims.Audience[0])
		c.Set(ContextKeyRoles, claims.Roles)
		c.Next()
	}
}

// RequireCitizen lets through citizen tokens only. The subject is the CPF.
func RequireCitizen() gin.HandlerFunc {
	return requireAudience(auth.AudienceCitizen, auth.RoleCitizen)
}

// RequireCaseworker lets through caseworker tokens only.
func RequireCaseworker() gin.HandlerFunc {
	return requireAudience(auth.AudienceCaseworker, auth.RoleCaseworker)
}

func requireAudience(audience, role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if Audience(c) != audience || !hasRole(Roles(c), role) {
			c.AbortWithStatusJSON(errForbidden.HTTPStatus, errForbidden.ToHTTPError())
			return
		}
		c.Next()
	}
}

func Subject(c *gin.Context) string {
	return c.GetString(ContextKeySubject)
}

func Audience(c *gin.Context) string {
	return c.GetString(ContextKeyAudience)
}

func Roles(c *gin.Context) []string {
	return c.GetStringSlice(ContextKeyRoles)
}

// IsCaseworker reports whether the authenticated caller holds the caseworker role.
func IsCaseworker(c *gin.Context) bool {
	return Audience(c) == auth.AudienceCaseworker && hasRole(Roles(c), auth.RoleCaseworker)
}

func hasRole(roles []string, want string) bool {
	for _, r := range roles {
		if strings.EqualFold(strings.TrimSpace(r), want) {
			return true
		}
	}
	return false
}
