package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"go-contact-relay/internal/delivery/http/response"
	"go-contact-relay/internal/domain"
	"go-contact-relay/pkg/apperror"
)

type ContactHandler struct {
	contactUC domain.ContactUsecase
}

// NewContactHandler registers the contact routes (public, no auth required)
func NewContactHandler(public *gin.RouterGroup, contactUC domain.ContactUsecase) {
	handler := &ContactHandler{
		contactUC: contactUC,
	}

	public.POST("/contact", handler.SubmitContact)
}

// SubmitContact godoc
// @Summary      Submit Contact Form
// @Description  Send a message through the contact form. This is a public endpoint.
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        contact  body      domain.ContactRequest  true  "Contact Form Data"
// @Success      200      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Router       /contact [post]
func (h *ContactHandler) SubmitContact(c *gin.Context) {
	var req domain.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(domain.ErrMissingFields.Error()))
		return
	}

	id, err := h.contactUC.SendContactMessage(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrMissingFields), errors.Is(err, domain.ErrInvalidEmail):
			c.Error(apperror.BadRequest(err.Error()))
		case errors.Is(err, domain.ErrNotConfigured):
			c.Error(apperror.New(http.StatusInternalServerError, "Contact service is not configured", err))
		case errors.Is(err, domain.ErrDeliveryFailed):
			c.Error(apperror.New(http.StatusInternalServerError, "Failed to send message. Please try again later.", err))
		default:
			c.Error(apperror.Internal(err))
		}
		return
	}

	response.Sent(c, http.StatusOK, "Your message has been sent successfully!", id)
}
