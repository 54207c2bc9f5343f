package utils

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/vacay-dev/vacay/internal/types"
)

func GetCurrentUser(ctx *gin.Context) (types.AuthenticatedUser, error) {
	user, exists := ctx.Get(types.ContextUserKey)

	if !exists {
		return types.AuthenticatedUser{}, fmt.Errorf("User not authenticated")
	}

	authenticatedUser, ok := user.(types.AuthenticatedUser)

	if !ok {
		return types.AuthenticatedUser{}, fmt.Errorf("Invalid user type in context")
	}

	return authenticatedUser, nil
}

func GetCurrentUserID(ctx *gin.Context) (uint, error) {
	user, err := GetCurrentUser(ctx)

	if err != nil {
		return 0, err
	}

	return user.ID, nil
}

// GetVacationID returns the id RequireVacation attached to the context.
func GetVacationID(ctx *gin.Context) (uint, error) {
	value, exists := ctx.Get(types.ContextVacationKey)

	if !exists {
		return 0, fmt.Errorf("Vacation ID not found in context")
	}

	vacationID, ok := value.(uint)

	if !ok {
		return 0, fmt.Errorf("Invalid vacation ID type in context")
	}

	return vacationID, nil
}
