// Package middleware provides audit logging utilities.
package middleware

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/velofab/pallet-service/internal/domain/model"
	"github.com/velofab/pallet-service/internal/service"
)

const auditStoreTimeout = 5 * time.Second

// AuditLog records a user action such as a login, an override write or a
// shipment validation. The entry is stored asynchronously so the request
// never waits on the log store.
func AuditLog(loggingService service.LoggingService, c *gin.Context, actionType, message string, fields map[string]interface{}) {
	if loggingService == nil {
		return
	}
	storeAsync(loggingService, auditEntry(c, "info", actionType, message, fields))
}

// AuditLogError records a failed user action together with the error.
func AuditLogError(loggingService service.LoggingService, c *gin.Context, actionType, message string, err error, fields map[string]interface{}) {
	if loggingService == nil {
		return
	}
	entry := auditEntry(c, "error", actionType, message, fields)
	entry.Error = err.Error()
	storeAsync(loggingService, entry)
}

func auditEntry(c *gin.Context, level, actionType, message string, fields map[string]interface{}) *model.LogEntry {
	entry := &model.LogEntry{
		Timestamp:  time.Now(),
		Level:      level,
		Message:    message,
		RequestID:  GetRequestID(c),
		Method:     c.Request.Method,
		Path:       c.Request.URL.Path,
		IP:         c.ClientIP(),
		UserAgent:  c.Request.UserAgent(),
		ActionType: actionType,
		Fields:     fields,
	}

	if userID, exists := c.Get("user_id"); exists {
		if id, ok := userID.(primitive.ObjectID); ok {
			entry.UserID = id.Hex()
		}
	}
	if userEmail, exists := c.Get("user_email"); exists {
		if email, ok := userEmail.(string); ok {
			entry.UserEmail = email
		}
	}
	return entry
}

func storeAsync(loggingService service.LoggingService, entry *model.LogEntry) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), auditStoreTimeout)
		defer cancel()
		_ = loggingService.CreateLog(ctx, entry)
	}()
}
