package handler

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"mural-api/internal/app"
	"mural-api/internal/transport/http/response"
)

type UserHandler struct {
	authService *app.AuthService
}

func NewUserHandler(authService *app.AuthService) *UserHandler {
	return &UserHandler{authService: authService}
}

// List returns public account fields only; the hash column never
// leaves the server.
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.authService.ListUsers()
	if err != nil {
		log.Printf("list users failed: %v", err)
		response.Error(c, http.StatusInternalServerError, "could not fetch users")
		return
	}

	out := make([]gin.H, 0, len(users))
	for _, u := range users {
		out = append(out, gin.H{
			"id":        u.ID,
			"name":      u.Name,
			"email":     u.Email,
			"createdAt": u.CreatedAt,
		})
	}
	c.JSON(http.StatusOK, out)
}
