package controllers

import (
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/SJB-Parking/crudpark/app/repository"
	"github.com/SJB-Parking/crudpark/internal/pkg/session"
)

const (
	AUTH_KEY      string = "authenticated"
	OPERATOR_ID   string = "operator_id"
	OPERATOR_NAME string = "operator_name"
)

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// HandleLogin authenticates a booth operator and opens a session.
func HandleLogin(c *fiber.Ctx) error {
	var req loginRequest
	if err := parseBody(c, &req); err != nil {
		return respondParkingError(c, err)
	}

	repo := repository.GetGlobalFactory().GetOperatorRepository()
	operator, err := repo.GetByEmail(req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Same answer for unknown email and wrong password.
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error":   "unauthorized",
				"message": "invalid email or password",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "data_access",
			"message": "failed to load operator",
		})
	}

	if !operator.IsActive() {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error":   "unauthorized",
			"message": "operator account is inactive",
		})
	}

	if !operator.CheckPassword(req.Password) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error":   "unauthorized",
			"message": "invalid email or password",
		})
	}

	sess, err := session.GetSessionStore().Get(c)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "data_access",
			"message": "session store unavailable",
		})
	}
	sess.Set(AUTH_KEY, true)
	sess.Set(OPERATOR_ID, operator.ID)
	sess.Set(OPERATOR_NAME, operator.FullName)
	if err := sess.Save(); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "data_access",
			"message": "failed to save session",
		})
	}

	if err := repo.UpdateLastLogin(operator.ID, time.Now()); err != nil {
		// Login still succeeded; the stamp is best effort.
		log.Printf("failed to update last login for operator %d: %v", operator.ID, err)
	}

	return c.JSON(fiber.Map{
		"operator_id": operator.ID,
		"full_name":   operator.FullName,
		"email":       operator.Email,
	})
}

// HandleLogout destroys the operator session.
func HandleLogout(c *fiber.Ctx) error {
	sess, err := session.GetSessionStore().Get(c)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "data_access",
			"message": "session store unavailable",
		})
	}
	if err := sess.Destroy(); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "data_access",
			"message": "failed to destroy session",
		})
	}
	return c.JSON(fiber.Map{"message": "logged out"})
}
