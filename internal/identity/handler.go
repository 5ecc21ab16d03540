package identity

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"tasktree/internal/metrics"
	"tasktree/internal/model"
	pkgResponse "tasktree/pkg/response"
)

// HandleIdentityWebhook godoc
// @Summary     Process identity provider lifecycle events
// @Description Verifies the delivery signature and provisions or removes
// @Description the user the event names. Processing is synchronous so the
// @Description provider retries on our failures.
// @Tags        Webhooks
// @Accept      json
// @Produce     json
// @Success     200 {object} response.Resp
// @Failure     400 {object} response.Resp "Invalid signature or malformed payload"
// @Failure     429 {object} response.Resp "Rate limit exceeded"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/webhooks/identity [POST]
func (h *Handler) HandleIdentityWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		h.l.Errorf(ctx, "identity.HandleIdentityWebhook.ReadBody: %v", err)
		pkgResponse.BadRequest(c, "unreadable body")
		return
	}

	if err := h.security.CheckRateLimit("identity"); err != nil {
		h.l.Warnf(ctx, "identity.HandleIdentityWebhook.RateLimit: %v", err)
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
		return
	}

	err = h.security.ValidateSignature(
		body,
		c.GetHeader("svix-id"),
		c.GetHeader("svix-timestamp"),
		c.GetHeader("svix-signature"),
	)
	if err != nil {
		h.l.Errorf(ctx, "identity.HandleIdentityWebhook.ValidateSignature: %v", err)
		pkgResponse.BadRequest(c, "invalid signature")
		return
	}

	var event eventPayload
	if err := json.Unmarshal(body, &event); err != nil {
		h.l.Errorf(ctx, "identity.HandleIdentityWebhook.Unmarshal: %v", err)
		pkgResponse.BadRequest(c, "malformed event payload")
		return
	}
	if event.Data.ID == "" {
		pkgResponse.BadRequest(c, "event has no subject id")
		return
	}

	metrics.IdentityEvents.WithLabelValues(event.Type).Inc()

	switch model.UserEventType(event.Type) {
	case model.UserCreated:
		err = h.tasklistUC.Provision(ctx, event.Data.ID)
	case model.UserDeleted:
		err = h.tasklistUC.Deprovision(ctx, event.Data.ID)
	case model.UserUpdated:
		// Profile changes carry nothing the task store needs.
	default:
		h.l.Infof(ctx, "identity.HandleIdentityWebhook: ignoring event type %q", event.Type)
		pkgResponse.Success(c, "Event ignored")
		return
	}

	if err != nil {
		h.l.Errorf(ctx, "identity.HandleIdentityWebhook.%s: %v", event.Type, err)
		pkgResponse.InternalError(c)
		return
	}

	pkgResponse.Success(c, "Webhook processed")
}
