package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/SJB-Parking/crudpark/app/controllers"
	"github.com/SJB-Parking/crudpark/internal/pkg/opcontext"
	"github.com/SJB-Parking/crudpark/internal/pkg/session"
)

// OperatorContextMiddleware resolves the session into an operator context for
// every request, so controllers never touch the session store directly.
func OperatorContextMiddleware(c *fiber.Ctx) error {
	sess, err := session.GetSessionStore().Get(c)
	if err != nil {
		// Session store trouble degrades to an anonymous request.
		c.Locals(opcontext.ContextKey, opcontext.OperatorContext{IsLoggedIn: false})
		return c.Next()
	}

	operatorID, ok := sess.Get(controllers.OPERATOR_ID).(uint)
	if !ok || operatorID == 0 {
		c.Locals(opcontext.ContextKey, opcontext.OperatorContext{IsLoggedIn: false})
		return c.Next()
	}

	fullName, _ := sess.Get(controllers.OPERATOR_NAME).(string)
	c.Locals(opcontext.ContextKey, opcontext.OperatorContext{
		OperatorID: operatorID,
		FullName:   fullName,
		IsLoggedIn: true,
	})
	return c.Next()
}
