package admin

import (
	handlershared "github.com/saralchem/orderdesk/internal/http/handlers/shared"
	"github.com/saralchem/orderdesk/internal/service"

	"github.com/gin-gonic/gin"
)

func getStaffID(c *gin.Context) (uint, bool) {
	return handlershared.GetContextUint(c, "staff_id")
}

// getActor assembles the workflow actor from the auth middleware context.
func getActor(c *gin.Context) (service.Actor, bool) {
	if _, ok := getStaffID(c); !ok {
		return service.Actor{}, false
	}
	actor := service.Actor{
		Name:  c.GetString("staff_username"),
		Role:  c.GetString("staff_role"),
		Super: c.GetBool("staff_is_super"),
	}
	return actor, true
}

func normalizePagination(page, pageSize int) (int, int) {
	return handlershared.NormalizePagination(page, pageSize)
}
