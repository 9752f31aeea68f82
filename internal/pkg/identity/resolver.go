package identity

import (
	"errors"

	"quicknotes-be/internal/pkg/serverutils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// ErrNoIdentity is returned by resolvers when the request carries no usable
// credentials. The middleware maps it to 401 without distinguishing causes.
var ErrNoIdentity = errors.New("no identity")

// Resolver yields the authenticated user's id from an inbound request, or
// ErrNoIdentity. Strategies (bearer token, session cookie) are interchangeable;
// the service layer only ever sees the resolved id.
type Resolver interface {
	Resolve(ctx *fiber.Ctx) (uuid.UUID, error)
}

// Middleware adapts a Resolver into a route guard. On success the user id is
// stored in Locals("user_id") as a string for the controllers.
func Middleware(r Resolver) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		userId, err := r.Resolve(ctx)
		if err != nil {
			return serverutils.NewUnauthorized()
		}
		ctx.Locals("user_id", userId.String())
		return ctx.Next()
	}
}
