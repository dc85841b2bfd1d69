package opcontext

import "github.com/gofiber/fiber/v2"

// ContextKey is the fiber.Locals key the operator context is stored under.
const ContextKey = "OPERATOR_CONTEXT"

// OperatorContext carries the authenticated booth operator for a request.
type OperatorContext struct {
	OperatorID uint   `json:"operator_id"`
	FullName   string `json:"full_name"`
	IsLoggedIn bool   `json:"is_logged_in"`
}

// Get retrieves the operator context from the fiber context, returning an
// anonymous context if none is set.
func Get(c *fiber.Ctx) OperatorContext {
	if ctx := c.Locals(ContextKey); ctx != nil {
		if oc, ok := ctx.(OperatorContext); ok {
			return oc
		}
	}
	return OperatorContext{IsLoggedIn: false}
}

// IsLoggedIn checks whether the current request has an authenticated operator.
func IsLoggedIn(c *fiber.Ctx) bool {
	return Get(c).IsLoggedIn
}

// OperatorID returns the current operator's id, or 0 when not logged in.
func OperatorID(c *fiber.Ctx) uint {
	return Get(c).OperatorID
}
