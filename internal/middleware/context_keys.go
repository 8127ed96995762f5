package middleware

import "github.com/gin-gonic/gin"

// actorKey is the key used to store the authenticated actor's identity
// (wallet address) in the request context.
const actorKey = contextKey("actor")

// GetActorFromContext retrieves the authenticated actor identity from the Gin
// context. It returns the identity and a boolean indicating if it was found.
func GetActorFromContext(c *gin.Context) (string, bool) {
	if actorVal := c.Request.Context().Value(actorKey); actorVal != nil {
		actor, ok := actorVal.(string)
		return actor, ok
	}
	return "", false
}
