package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"viang-solution-backend/internal/delivery/http/response"
	"viang-solution-backend/internal/domain"
	"viang-solution-backend/pkg/apperror"
)

type ContactHandler struct {
	contactUC domain.ContactUsecase
	siteKey   string
}

// NewContactHandler registers the contact routes (public, no auth required).
// The rate limiter guards only the submission route.
func NewContactHandler(api *gin.RouterGroup, contactUC domain.ContactUsecase, siteKey string, limiter gin.HandlerFunc) {
	handler := &ContactHandler{
		contactUC: contactUC,
		siteKey:   siteKey,
	}

	submitChain := []gin.HandlerFunc{handler.SubmitContact}
	if limiter != nil {
		submitChain = append([]gin.HandlerFunc{limiter}, submitChain...)
	}
	api.POST("/contact", submitChain...)
	api.GET("/config", handler.GetConfig)
}

// SubmitContact relays a contact form submission as email. Accepts JSON or
// form-encoded bodies with name, email, phone, service, message and the
// cf-turnstile-response token.
func (h *ContactHandler) SubmitContact(c *gin.Context) {
	var req domain.ContactRequest
	if err := c.ShouldBind(&req); err != nil {
		c.Error(apperror.BadRequest("Invalid request payload"))
		return
	}

	if err := h.contactUC.Submit(c.Request.Context(), &req); err != nil {
		var vErr *domain.ValidationError
		switch {
		case errors.As(err, &vErr):
			c.Error(apperror.Validation("Invalid input data", vErr.Fields))
		case errors.Is(err, domain.ErrVerificationFailed):
			c.Error(apperror.BadRequest("Security verification failed. Please try again."))
		case errors.Is(err, domain.ErrMailerNotConfigured):
			c.Error(apperror.ServiceUnavailable("Contact service temporarily unavailable", err))
		default:
			c.Error(apperror.Internal("Failed to send the message. Please try again later.", err))
		}
		return
	}

	response.Success(c, http.StatusOK, "Your message has been sent successfully!", nil)
}

// GetConfig exposes the public configuration the contact page needs to
// render the Turnstile widget. Only the site key - the secret key must
// never appear in any response.
func (h *ContactHandler) GetConfig(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"turnstileSiteKey": h.siteKey,
	})
}
