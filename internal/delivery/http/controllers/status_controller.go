package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"groupevents/internal/delivery/http/helpers"
	"groupevents/internal/domain"
)

// StatusController serves group event status and event bookkeeping endpoints.
type StatusController struct {
	Logger    *slog.Logger
	StatusSvc domain.StatusService
	EventSvc  domain.EventService
}

func NewStatusController(logger *slog.Logger, statusSvc domain.StatusService, eventSvc domain.EventService) *StatusController {
	return &StatusController{
		Logger:    logger,
		StatusSvc: statusSvc,
		EventSvc:  eventSvc,
	}
}

// GroupStatusSuccessResponse is the success response envelope for GET /groups/{groupID}/status (200).
type GroupStatusSuccessResponse struct {
	Data  *domain.GroupStatus `json:"data"`
	Error *helpers.APIError   `json:"error"`
}

// GetGroupStatus godoc
// @Summary Get a group's event lifecycle status
// @Description Returns the lifecycle status (active, in_review, done) of the group's most recent event, together with the event it was derived from. A group with no events is done.
// @Tags status
// @Produce json
// @Security BearerAuth
// @Param groupID path string true "Group ID"
// @Success 200 {object} controllers.GroupStatusSuccessResponse "data contains the group status"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /groups/{groupID}/status [get]
func (c *StatusController) GetGroupStatus(w http.ResponseWriter, r *http.Request) {
	groupID := r.PathValue("groupID")
	if groupID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing groupID")
		return
	}
	status, err := c.StatusSvc.GetGroupStatus(r.Context(), groupID)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, status)
}

// RecordEventRequest is the request body for POST /groups/{groupID}/events.
type RecordEventRequest struct {
	Name                string    `json:"name"`
	EndDate             time.Time `json:"end_date"`
	ReviewDurationHours int       `json:"review_duration_hours"`
}

// Validate implements Validator. Returns error messages for required and range rules.
func (req RecordEventRequest) Validate() []string {
	var errs []string
	if req.Name == "" {
		errs = append(errs, "name is required")
	}
	if req.EndDate.IsZero() {
		errs = append(errs, "end_date is required")
	}
	if req.ReviewDurationHours < 0 {
		errs = append(errs, "review_duration_hours must be non-negative")
	}
	return errs
}

// RecordEventSuccessResponse is the success response envelope for POST /groups/{groupID}/events (201).
type RecordEventSuccessResponse struct {
	Data  *domain.GroupEvent `json:"data"`
	Error *helpers.APIError  `json:"error"`
}

// RecordEvent godoc
// @Summary Record an event for a group
// @Description Records an event with its end date and review window length. The event becomes the group's last event once its end date is the latest.
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param groupID path string true "Group ID"
// @Param event body RecordEventRequest true "Event data"
// @Success 201 {object} controllers.RecordEventSuccessResponse "data contains the recorded event"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /groups/{groupID}/events [post]
func (c *StatusController) RecordEvent(w http.ResponseWriter, r *http.Request) {
	groupID := r.PathValue("groupID")
	if groupID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing groupID")
		return
	}
	var req RecordEventRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	event, err := c.EventSvc.RecordEvent(r.Context(), groupID, req.Name, req.EndDate, req.ReviewDurationHours)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, event)
}

// ListGroupEventsSuccessResponse is the success response envelope for GET /groups/{groupID}/events (200).
type ListGroupEventsSuccessResponse struct {
	Data  []*domain.GroupEvent `json:"data"`
	Error *helpers.APIError    `json:"error"`
}

// ListGroupEvents godoc
// @Summary List a group's events
// @Description Returns all recorded events for the group, most recent end date first.
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param groupID path string true "Group ID"
// @Success 200 {object} controllers.ListGroupEventsSuccessResponse "data contains the group's events"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /groups/{groupID}/events [get]
func (c *StatusController) ListGroupEvents(w http.ResponseWriter, r *http.Request) {
	groupID := r.PathValue("groupID")
	if groupID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing groupID")
		return
	}
	events, err := c.EventSvc.ListGroupEvents(r.Context(), groupID)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, events)
}

// DeleteEvent godoc
// @Summary Delete a recorded event
// @Description Removes a recorded event by ID.
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID"
// @Success 200 {object} helpers.APIResponse "data is null"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID} [delete]
func (c *StatusController) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	if eventID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing eventID")
		return
	}
	if err := c.EventSvc.DeleteEvent(r.Context(), eventID); err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "event not found")
		case errors.Is(err, domain.ErrInvalidInput):
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
		default:
			c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
			helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		}
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, nil)
}
