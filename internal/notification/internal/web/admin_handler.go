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
	"gorm.io/gorm"
)

type AdminHandler struct {
	svc service.AdminService
}

func NewAdminHandler(svc service.AdminService) *AdminHandler {
	return &AdminHandler{svc: svc}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/notification")
	g.POST("/save", ginx.BS[SaveNotificationReq](h.Save))
	g.POST("/list", ginx.B[AdminListNotificationsReq](h.List))
	g.POST("/delete", ginx.B[NotificationIDReq](h.Delete))
}

func (h *AdminHandler) Save(ctx *ginx.Context, req SaveNotificationReq, sess session.Session) (ginx.Result, error) {
	typ := req.Type
	if typ == "" {
		typ = domain.TypeSystem
	}
	id, err := h.svc.Save(ctx, domain.Notification{
		ID:        req.ID,
		Title:     req.Title,
		Type:      typ,
		Message:   req.Message,
		StartAt:   req.StartAt,
		EndAt:     req.EndAt,
		CreatedBy: sess.Claims().Uid,
	}, req.UIDs)
	switch {
	case err == nil:
		return ginx.Result{Data: SaveNotificationResp{ID: id}}, nil
	case errors.Is(err, service.ErrAlreadyPublished):
		return alreadyPublishedResult, err
	case errors.Is(err, gorm.ErrRecordNotFound):
		return notificationNotFoundResult, err
	default:
		return systemErrorResult, err
	}
}

func (h *AdminHandler) List(ctx *ginx.Context, req AdminListNotificationsReq) (ginx.Result, error) {
	offset, limit := req.OffsetLimit()
	ns, total, err := h.svc.List(ctx, offset, limit, req.Type)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: NotificationsResp{
		Notifications: slice.Map(ns, func(idx int, src domain.Notification) Notification {
			return Notification{
				ID:        src.ID,
				Title:     src.Title,
				Type:      src.Type,
				Message:   src.Message,
				StartAt:   src.StartAt,
				EndAt:     src.EndAt,
				Global:    src.Global,
				CreatedBy: src.CreatedBy,
				Ctime:     src.Ctime,
			}
		}),
		Total:       total,
		TotalPages:  totalPages(total, limit),
		CurrentPage: int64(offset/limit) + 1,
	}}, nil
}

func (h *AdminHandler) Delete(ctx *ginx.Context, req NotificationIDReq) (ginx.Result, error) {
	err := h.svc.Delete(ctx, req.ID)
	switch {
	case err == nil:
		return ginx.Result{Msg: "OK"}, nil
	case errors.Is(err, service.ErrAlreadyPublished):
		return alreadyPublishedResult, err
	case errors.Is(err, gorm.ErrRecordNotFound):
		return notificationNotFoundResult, err
	default:
		return systemErrorResult, err
	}
}
