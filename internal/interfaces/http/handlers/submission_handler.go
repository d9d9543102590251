package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"crusaiders.backend/internal/domain/entities"
	domainerrors "crusaiders.backend/internal/domain/errors"
	"crusaiders.backend/internal/interfaces/http/response"
	"crusaiders.backend/internal/usecases"
)

type SubmissionHandler struct {
	submissions *usecases.SubmissionUsecase
}

func NewSubmissionHandler(submissions *usecases.SubmissionUsecase) *SubmissionHandler {
	return &SubmissionHandler{submissions: submissions}
}

// SubmitContact handles the contact form.
// POST /api/contact
func (h *SubmissionHandler) SubmitContact(c *gin.Context) {
	var input entities.InsertContactSubmission
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid data"))
		return
	}

	submission, err := h.submissions.SubmitContact(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, storeFault(err, "Failed to submit contact form"))
		return
	}
	response.Success(c, http.StatusCreated, gin.H{
		"message": "Contact submission received",
		"id":      submission.ID,
	})
}

// SubmitIdea handles the idea submission form.
// POST /api/ideas
func (h *SubmissionHandler) SubmitIdea(c *gin.Context) {
	var input entities.InsertIdeaSubmission
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid data"))
		return
	}

	submission, err := h.submissions.SubmitIdea(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, storeFault(err, "Failed to submit idea"))
		return
	}
	response.Success(c, http.StatusCreated, gin.H{
		"message": "Idea submission received",
		"id":      submission.ID,
	})
}

// RegisterWorkshop handles workshop registrations.
// POST /api/workshops/register
func (h *SubmissionHandler) RegisterWorkshop(c *gin.Context) {
	var input entities.InsertWorkshopRegistration
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid data"))
		return
	}

	registration, err := h.submissions.RegisterWorkshop(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, storeFault(err, "Failed to register for workshop"))
		return
	}
	response.Success(c, http.StatusCreated, gin.H{
		"message": "Workshop registration successful",
		"id":      registration.ID,
	})
}

// SubscribeNewsletter adds an email to the newsletter subscriber set.
// POST /api/newsletter/subscribe
func (h *SubmissionHandler) SubscribeNewsletter(c *gin.Context) {
	var input struct {
		Email string `json:"email"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest("Email is required"))
		return
	}

	if err := h.submissions.SubscribeNewsletter(c.Request.Context(), input.Email); err != nil {
		response.Error(c, storeFault(err, "Failed to subscribe to newsletter"))
		return
	}
	response.Success(c, http.StatusCreated, gin.H{
		"message": "Successfully subscribed to newsletter",
	})
}

// storeFault keeps validation and bad-request errors as they are and masks
// everything else behind the endpoint's generic failure message.
func storeFault(err error, message string) error {
	var verr *domainerrors.ValidationError
	if errors.As(err, &verr) {
		return err
	}
	var appErr *domainerrors.AppError
	if errors.As(err, &appErr) && appErr.Status < http.StatusInternalServerError {
		return err
	}
	return domainerrors.Internal(message, err)
}
