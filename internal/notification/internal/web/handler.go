// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package web

import (
	"errors"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/eshop/internal/notification/internal/domain"
	"github.com/ecodeclub/eshop/internal/notification/internal/service"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/notification")
	g.POST("/list", ginx.BS[ListNotificationsReq](h.List))
	g.POST("/read", ginx.BS[MarkReadReq](h.MarkRead))
	g.POST("/read-all", ginx.S(h.MarkAllRead))
	g.POST("/unread-count", ginx.S(h.UnreadCount))
}

func (h *Handler) PublicRoutes(_ *gin.Engine) {}

func (h *Handler) List(ctx *ginx.Context, req ListNotificationsReq, sess session.Session) (ginx.Result, error) {
	offset, limit := req.OffsetLimit()
	uns, total, err := h.svc.List(ctx, sess.Claims().Uid, offset, limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: UserNotificationsResp{
		Notifications: slice.Map(uns, func(idx int, src domain.UserNotification) UserNotification {
			return UserNotification{
				ID:      src.ID,
				Title:   src.Notification.Title,
				Type:    src.Notification.Type,
				Message: src.Notification.Message,
				Read:    src.Read,
				ReadAt:  src.ReadAt,
				Ctime:   src.Ctime,
			}
		}),
		Total:       total,
		TotalPages:  totalPages(total, limit),
		CurrentPage: int64(offset/limit) + 1,
	}}, nil
}

func (h *Handler) MarkRead(ctx *ginx.Context, req MarkReadReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.MarkRead(ctx, sess.Claims().Uid, req.ID)
	switch {
	case err == nil:
		return ginx.Result{Msg: "OK"}, nil
	case errors.Is(err, service.ErrNotificationNotFound):
		return notificationNotFoundResult, err
	default:
		return systemErrorResult, err
	}
}

func (h *Handler) MarkAllRead(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	if err := h.svc.MarkAllRead(ctx, sess.Claims().Uid); err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) UnreadCount(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	count, err := h.svc.UnreadCount(ctx, sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: UnreadCountResp{Count: count}}, nil
}
