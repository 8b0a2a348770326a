package wizard

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/joefazee/prognos/app/api"
	"github.com/joefazee/prognos/models"
)

// Handler handles HTTP requests for the market creation wizard
type Handler struct {
	service   Service
	validator *validator.Validate
}

// NewHandler creates a new wizard handler
func NewHandler(service Service) *Handler {
	return &Handler{
		service:   service,
		validator: api.NewValidator(),
	}
}

// StartSession godoc
// @Summary Start a wizard session
// @Description Open a market creation session with default values, or resume a saved draft
// @Tags wizard
// @Accept json
// @Produce json
// @Param request body StartSessionRequest false "Draft to resume"
// @Param X-Draft-Token header string false "Token returned when the draft was saved"
// @Success 201 {object} api.Response{data=StartSessionResponse}
// @Failure 400 {object} api.Response{error=api.ErrorInfo}
// @Failure 401 {object} api.Response{error=api.ErrorInfo}
// @Failure 403 {object} api.Response{error=api.ErrorInfo}
// @Failure 404 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/wizard/sessions [post]
func (h *Handler) StartSession(c *gin.Context) {
	var req StartSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		api.BadRequestResponse(c, err.Error())
		return
	}

	sess, token, err := h.service.Start(c.Request.Context(), req.DraftID, c.GetHeader(DraftTokenHeader))
	if err != nil {
		h.handleError(c, err)
		return
	}

	api.CreatedResponse(c, "Wizard session started", StartSessionResponse{
		Session: sess.View(),
		Token:   token,
	})
}

// GetSession godoc
// @Summary Get a wizard session
// @Tags wizard
// @Produce json
// @Security SessionToken
// @Param id path string true "Session ID"
// @Success 200 {object} api.Response{data=SessionView}
// @Failure 401 {object} api.Response{error=api.ErrorInfo}
// @Failure 404 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/wizard/sessions/{id} [get]
func (h *Handler) GetSession(c *gin.Context) {
	sess, ok := h.session(c)
	if !ok {
		return
	}
	api.SuccessResponse(c, http.StatusOK, "Session retrieved successfully", sess.View())
}

// EditDraft godoc
// @Summary Edit the draft
// @Description Set draft fields. Each field set clears its error message
// @Tags wizard
// @Accept json
// @Produce json
// @Security SessionToken
// @Param id path string true "Session ID"
// @Param request body DraftPatch true "Fields to set"
// @Success 200 {object} api.Response{data=SessionView}
// @Failure 409 {object} api.Response{error=api.ErrorInfo}
// @Failure 422 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/wizard/sessions/{id}/draft [patch]
func (h *Handler) EditDraft(c *gin.Context) {
	var patch DraftPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		api.BadRequestResponse(c, err.Error())
		return
	}

	if err := h.validator.Struct(&patch); err != nil {
		api.ValidationErrorResponse(c, api.FormatValidationErrors(err))
		return
	}

	h.apply(c, "Draft updated successfully", func(s *Session) error { return s.Edit(&patch) })
}

// AddOption godoc
// @Summary Add an outcome option
// @Tags wizard
// @Produce json
// @Security SessionToken
// @Param id path string true "Session ID"
// @Success 200 {object} api.Response{data=SessionView}
// @Failure 422 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/wizard/sessions/{id}/options [post]
func (h *Handler) AddOption(c *gin.Context) {
	h.apply(c, "Option added", (*Session).AddOption)
}

// RemoveOption godoc
// @Summary Remove an outcome option
// @Description Options after the first two can be removed
// @Tags wizard
// @Produce json
// @Security SessionToken
// @Param id path string true "Session ID"
// @Param index path int true "Option index"
// @Success 200 {object} api.Response{data=SessionView}
// @Failure 422 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/wizard/sessions/{id}/options/{index} [delete]
func (h *Handler) RemoveOption(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		api.BadRequestResponse(c, "Invalid option index")
		return
	}
	h.apply(c, "Option removed", func(s *Session) error { return s.RemoveOption(index) })
}

// Next godoc
// @Summary Advance to the next step
// @Description Validates the current step; on failure the field errors are returned and the step is unchanged
// @Tags wizard
// @Produce json
// @Security SessionToken
// @Param id path string true "Session ID"
// @Success 200 {object} api.Response{data=SessionView}
// @Failure 409 {object} api.Response{error=api.ErrorInfo}
// @Failure 422 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/wizard/sessions/{id}/next [post]
func (h *Handler) Next(c *gin.Context) {
	h.apply(c, "Step completed", (*Session).Next)
}

// Previous godoc
// @Summary Go back one step
// @Tags wizard
// @Produce json
// @Security SessionToken
// @Param id path string true "Session ID"
// @Success 200 {object} api.Response{data=SessionView}
// @Failure 409 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/wizard/sessions/{id}/previous [post]
func (h *Handler) Previous(c *gin.Context) {
	h.apply(c, "Moved to previous step", (*Session).Previous)
}

// SaveDraft godoc
// @Summary Save the draft
// @Description Saves a snapshot of the draft in the background
// @Tags wizard
// @Produce json
// @Security SessionToken
// @Param id path string true "Session ID"
// @Success 202 {object} api.Response{data=SaveDraftResponse}
// @Failure 409 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/wizard/sessions/{id}/draft [post]
func (h *Handler) SaveDraft(c *gin.Context) {
	sess, ok := h.session(c)
	if !ok {
		return
	}

	draftID, err := sess.SaveDraft()
	if err != nil {
		h.handleError(c, err)
		return
	}

	token, err := h.service.DraftToken(draftID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	api.SuccessResponse(c, http.StatusAccepted, "Draft save started", SaveDraftResponse{
		DraftID:    draftID,
		DraftToken: token,
	})
}

// Submit godoc
// @Summary Submit the market
// @Description Validates the draft and submits it. With wait=true the response is sent once the submission completes
// @Tags wizard
// @Produce json
// @Security SessionToken
// @Param id path string true "Session ID"
// @Param wait query bool false "Wait for the submission result"
// @Success 200 {object} api.Response{data=SessionView}
// @Success 202 {object} api.Response{data=SessionView}
// @Failure 409 {object} api.Response{error=api.ErrorInfo}
// @Failure 422 {object} api.Response{error=api.ErrorInfo}
// @Failure 502 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/wizard/sessions/{id}/submit [post]
func (h *Handler) Submit(c *gin.Context) {
	sess, ok := h.session(c)
	if !ok {
		return
	}

	done, err := sess.Submit(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	if wait, _ := strconv.ParseBool(c.Query("wait")); !wait {
		api.SuccessResponse(c, http.StatusAccepted, "Submission started", sess.View())
		return
	}

	select {
	case <-done:
	case <-c.Request.Context().Done():
		return
	}

	view := sess.View()
	if view.SubmitError != "" {
		api.ErrorResponse(c, http.StatusBadGateway, "SUBMISSION_FAILED", view.SubmitError, nil)
		return
	}
	api.SuccessResponse(c, http.StatusOK, "Market submitted successfully", view)
}

// DiscardSession godoc
// @Summary Discard a wizard session
// @Tags wizard
// @Produce json
// @Security SessionToken
// @Param id path string true "Session ID"
// @Success 200 {object} api.Response
// @Failure 409 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/wizard/sessions/{id} [delete]
func (h *Handler) DiscardSession(c *gin.Context) {
	id, ok := h.pathID(c, "session_id", "session")
	if !ok {
		return
	}

	if err := h.service.Discard(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	api.DeletedResponse(c, "Session discarded")
}

// GetDraft godoc
// @Summary Get a saved draft
// @Tags wizard
// @Produce json
// @Security DraftToken
// @Param id path string true "Draft ID"
// @Success 200 {object} api.Response{data=models.MarketDraft}
// @Failure 401 {object} api.Response{error=api.ErrorInfo}
// @Failure 403 {object} api.Response{error=api.ErrorInfo}
// @Failure 404 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/wizard/drafts/{id} [get]
func (h *Handler) GetDraft(c *gin.Context) {
	id, ok := h.pathID(c, "draft_id", "draft")
	if !ok {
		return
	}

	draft, err := h.service.Draft(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	api.SuccessResponse(c, http.StatusOK, "Draft retrieved successfully", draft)
}

// apply runs op against the session in the path and responds with its state.
func (h *Handler) apply(c *gin.Context, message string, op func(*Session) error) {
	sess, ok := h.session(c)
	if !ok {
		return
	}

	if err := op(sess); err != nil {
		h.handleError(c, err)
		return
	}

	api.SuccessResponse(c, http.StatusOK, message, sess.View())
}

// pathID prefers the id the token middleware already verified under key.
func (h *Handler) pathID(c *gin.Context, key, resource string) (uuid.UUID, bool) {
	if v, ok := c.Get(key); ok {
		if id, ok := v.(uuid.UUID); ok {
			return id, true
		}
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		api.BadRequestResponse(c, "Invalid "+resource+" ID format")
		return uuid.Nil, false
	}
	return id, true
}

func (h *Handler) session(c *gin.Context) (*Session, bool) {
	id, ok := h.pathID(c, "session_id", "session")
	if !ok {
		return nil, false
	}

	sess, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return nil, false
	}
	return sess, true
}

func (h *Handler) handleError(c *gin.Context, err error) {
	var validationErr *ValidationError

	switch {
	case errors.As(err, &validationErr):
		api.ValidationErrorResponse(c, validationErr.Fields)
	case errors.Is(err, models.ErrUnauthorized):
		api.UnauthorizedResponse(c)
	case errors.Is(err, models.ErrForbidden):
		api.ForbiddenResponse(c, "Token was not issued for this draft")
	case errors.Is(err, ErrSessionNotFound):
		api.NotFoundResponse(c, "Session")
	case errors.Is(err, ErrDraftNotFound):
		api.NotFoundResponse(c, "Draft")
	case errors.Is(err, ErrSubmissionInProgress), errors.Is(err, ErrAlreadySubmitted):
		api.ConflictResponse(c, err.Error())
	case errors.Is(err, ErrNotOnReviewStep):
		api.ErrorResponse(c, http.StatusConflict, "INVALID_STEP", err.Error(), nil)
	case errors.Is(err, ErrInvalidPatch):
		api.ValidationErrorResponse(c, map[string]string{models.FieldOptions: err.Error()})
	case errors.Is(err, models.ErrTooManyOptions),
		errors.Is(err, models.ErrTooFewOptions),
		errors.Is(err, models.ErrOptionNotRemovable):
		api.ValidationErrorResponse(c, map[string]string{models.FieldOptions: err.Error()})
	default:
		_ = c.Error(err)
		api.InternalErrorResponse(c, "Wizard operation failed")
	}
}
