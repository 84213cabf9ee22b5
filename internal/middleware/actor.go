package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	HeaderActor  = "X-Actor"
	ContextActor = "actor"

	maxActorLen = 80
)

// ActorMiddleware records who made the change for the audit log. The name
// is taken as given; there are no accounts to check it against.
func ActorMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := strings.TrimSpace(c.GetHeader(HeaderActor))
		if len(actor) > maxActorLen {
			actor = actor[:maxActorLen]
		}
		if actor == "" {
			actor = "anonymous"
		}
		c.Set(ContextActor, actor)
		c.Next()
	}
}

func Actor(c *gin.Context) string {
	return c.GetString(ContextActor)
}
