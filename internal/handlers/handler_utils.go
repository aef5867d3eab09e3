// upkraft-crm/internal/handlers/handler_utils.go
package handlers

import (
	"fmt"
	"time"

	"github.com/Knetic/govaluate"
	"github.com/gin-gonic/gin"
)

const defaultCommissionRate = 0.15

// userCacheKey - ключ кэша данных пользователя; формат должен совпадать
// с middleware аутентификации.
func userCacheKey(userID uint) string {
	return fmt.Sprintf("user:%d:data", userID)
}

// academyID returns the academy the authenticated user belongs to.
// The auth middleware is responsible for putting it into the context.
func academyID(c *gin.Context) uint {
	if v, ok := c.Get("academy_id"); ok {
		if id, ok := v.(uint); ok {
			return id
		}
	}
	return 0
}

// computeCommission evaluates the academy's commission formula for the given
// amount. The formula sees a single variable "amount". A broken formula or a
// non-numeric result falls back to the platform default of 15%.
func computeCommission(formula string, amount float64) float64 {
	if formula == "" {
		return amount * defaultCommissionRate
	}

	expression, err := govaluate.NewEvaluableExpression(formula)
	if err != nil {
		return amount * defaultCommissionRate
	}

	result, err := expression.Evaluate(map[string]interface{}{"amount": amount})
	if err != nil {
		return amount * defaultCommissionRate
	}

	value, ok := result.(float64)
	if !ok {
		return amount * defaultCommissionRate
	}
	return value
}

// formulaIsUsable пробует вычислить формулу на тестовой сумме перед сохранением.
func formulaIsUsable(formula string) bool {
	expression, err := govaluate.NewEvaluableExpression(formula)
	if err != nil {
		return false
	}
	result, err := expression.Evaluate(map[string]interface{}{"amount": 1000.0})
	if err != nil {
		return false
	}
	_, ok := result.(float64)
	return ok
}

// parseDateParam parses a calendar date from a query or JSON field.
// Accepts "2006-01-02" and RFC3339.
func parseDateParam(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}
