package handler

import (
	"github.com/labstack/echo/v4"

	"gigmarket/internal/domain/entity"
	"gigmarket/internal/usecase"
	"gigmarket/pkg/response"
	"gigmarket/pkg/utils"
)

type NotificationHandler struct {
	notificationUseCase *usecase.NotificationUseCase
}

func NewNotificationHandler(notificationUseCase *usecase.NotificationUseCase) *NotificationHandler {
	return &NotificationHandler{
		notificationUseCase: notificationUseCase,
	}
}

type decisionRequest struct {
	Decision string `json:"decision" validate:"required,oneof=accepted rejected"`
}

// Decide sends the viewer's decision to the owner of gig :id.
func (h *NotificationHandler) Decide(c echo.Context) error {
	uid, err := currentUID(c)
	if err != nil {
		return fail(c, err)
	}

	var req decisionRequest
	if err := bindAndValidate(c, &req); err != nil {
		return fail(c, err)
	}

	msg, err := h.notificationUseCase.Dispatch(c.Request().Context(), uid, c.Param("id"), entity.Decision(req.Decision))
	if err != nil {
		return fail(c, err)
	}

	return response.Created(c, msg)
}

// List returns the caller's notifications newest first.
func (h *NotificationHandler) List(c echo.Context) error {
	uid, err := currentUID(c)
	if err != nil {
		return fail(c, err)
	}

	messages, err := h.notificationUseCase.ListFor(c.Request().Context(), uid)
	if err != nil {
		return fail(c, err)
	}

	// Without paging params the whole inbox is returned as one page.
	if c.QueryParam("page") == "" && c.QueryParam("limit") == "" {
		return response.Paginated(c, messages, int64(len(messages)), 1, len(messages))
	}

	pagination := utils.GetPaginationParams(c)
	start, end := pagination.Window(len(messages))

	return response.Paginated(c, messages[start:end], int64(len(messages)), pagination.Page, pagination.PageSize)
}
