package middleware

import (
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/BruksfildServices01/studio-scheduler/internal/config"
	"github.com/BruksfildServices01/studio-scheduler/internal/httperr"
)

const (
	ContextUserID     = "userID"
	ContextUserRole   = "userRole"
	ContextLogin      = "userLogin"
	ContextEmployeeID = "employeeID"
)

// TokenTTL: validade do token emitido no login.
const TokenTTL = 24 * time.Hour

// Claims carregadas no token. funcionarioId é nulo para o gestor.
type Claims struct {
	Login      string `json:"login"`
	Role       string `json:"role"`
	EmployeeID *uint  `json:"funcionarioId"`
	jwt.RegisteredClaims
}

// SignToken emite o token HS256 do usuário.
func SignToken(secret string, userID uint, login, role string, employeeID *uint, now time.Time) (string, error) {
	claims := Claims{
		Login:      login,
		Role:       role,
		EmployeeID: employeeID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   uintToString(userID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			httperr.Unauthorized(c, "missing_authorization_header", "Token não informado.")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			httperr.Unauthorized(c, "invalid_authorization_header", "Cabeçalho Authorization inválido.")
			return
		}

		var claims Claims
		token, err := jwt.ParseWithClaims(parts[1], &claims, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrTokenMalformed
			}
			return []byte(cfg.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			httperr.Unauthorized(c, "invalid_token", "Token inválido ou expirado.")
			return
		}

		userID, ok := parseUint(claims.Subject)
		if !ok {
			httperr.Unauthorized(c, "invalid_token_payload", "Token inválido.")
			return
		}

		c.Set(ContextUserID, userID)
		c.Set(ContextUserRole, claims.Role)
		c.Set(ContextLogin, claims.Login)
		if claims.EmployeeID != nil {
			c.Set(ContextEmployeeID, *claims.EmployeeID)
		}

		c.Next()
	}
}

// RequireRole barra com 403 quem não tem um dos tipos informados.
// Deve rodar depois de AuthMiddleware.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString(ContextUserRole)
		for _, r := range roles {
			if role == r {
				c.Next()
				return
			}
		}
		httperr.Forbidden(c, "forbidden", "Acesso restrito ao gestor.")
	}
}

// CurrentUserID devolve o usuário autenticado (nil fora das rotas protegidas).
func CurrentUserID(c *gin.Context) *uint {
	v, ok := c.Get(ContextUserID)
	if !ok {
		return nil
	}
	id, ok := v.(uint)
	if !ok {
		return nil
	}
	return &id
}

func uintToString(v uint) string {
	return strconv.FormatUint(uint64(v), 10)
}

func parseUint(s string) (uint, bool) {
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil || n == 0 {
		return 0, false
	}
	return uint(n), true
}
