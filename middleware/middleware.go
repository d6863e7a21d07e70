package middleware

import (
	"fmt"
	"os"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"

	"github.com/Yohhannn/Barangay-Profiling-Statistics-sub000/constants"
	"github.com/Yohhannn/Barangay-Profiling-Statistics-sub000/logger"
)

// OperatorContext extracts the operator id from a Bearer token and stores it
// in c.Locals("operator_id"). A missing or invalid token falls back to the
// seeded System account; this is a deliberate simplification, not a security
// boundary.
func OperatorContext() fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals("operator_id", resolveOperator(c))
		return c.Next()
	}
}

func resolveOperator(c *fiber.Ctx) uint {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return constants.FallbackOperatorID
	}

	tokenParts := strings.Split(authHeader, " ")
	if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
		return constants.FallbackOperatorID
	}

	token, err := jwt.Parse(tokenParts[1], func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method")
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil || !token.Valid {
		logger.Debug("Operator token rejected, using fallback identity")
		return constants.FallbackOperatorID
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return constants.FallbackOperatorID
	}
	id, ok := claims["account_id"].(float64)
	if !ok || id < 1 {
		return constants.FallbackOperatorID
	}
	return uint(id)
}

// OperatorID reads the operator resolved by OperatorContext.
func OperatorID(c *fiber.Ctx) uint {
	if id, ok := c.Locals("operator_id").(uint); ok {
		return id
	}
	return constants.FallbackOperatorID
}
