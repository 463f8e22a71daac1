package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type HealthHandler struct {
	appName string
	env     string
	db      *gorm.DB
}

func NewHealthHandler(appName, env string, db *gorm.DB) *HealthHandler {
	return &HealthHandler{appName: appName, env: env, db: db}
}

// Banner answers the root route with a status line, mirroring what the
// frontend polls to confirm the API is up.
func (h *HealthHandler) Banner(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message":   h.appName + " up and running",
		"env":       h.env,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"database":  "mysql",
	})
}

func (h *HealthHandler) Check(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	status := http.StatusOK
	dbOK := true
	if err := h.pingDB(ctx); err != nil {
		status = http.StatusServiceUnavailable
		dbOK = false
	}

	c.JSON(status, gin.H{
		"app": h.appName,
		"env": h.env,
		"dependencies": gin.H{
			"mysql": gin.H{"ok": dbOK},
		},
	})
}

func (h *HealthHandler) pingDB(ctx context.Context) error {
	sqlDB, err := h.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
