package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/barberbook/barbershop-api/internal/middleware"
)

func currentUserID(c *gin.Context) uint {
	return c.MustGet(middleware.ContextUserID).(uint)
}

func currentProfileID(c *gin.Context) uint {
	return c.MustGet(middleware.ContextProfileID).(uint)
}
