package identity

import (
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type JWTResolver struct {
	secret []byte
}

func NewJWTResolver(secret string) *JWTResolver {
	return &JWTResolver{secret: []byte(secret)}
}

func (r *JWTResolver) Resolve(ctx *fiber.Ctx) (uuid.UUID, error) {
	authHeader := ctx.Get("Authorization")
	if len(authHeader) < 7 || authHeader[:7] != "Bearer " {
		return uuid.Nil, ErrNoIdentity
	}
	tokenStr := authHeader[7:]

	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrNoIdentity
		}
		return r.secret, nil
	})
	if err != nil || !token.Valid {
		return uuid.Nil, ErrNoIdentity
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, ErrNoIdentity
	}

	userIdStr, ok := claims["user_id"].(string)
	if !ok {
		return uuid.Nil, ErrNoIdentity
	}

	userId, err := uuid.Parse(userIdStr)
	if err != nil {
		return uuid.Nil, ErrNoIdentity
	}
	return userId, nil
}
