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
	"github.com/ecodeclub/eshop/internal/user/internal/domain"
	"github.com/ecodeclub/eshop/internal/user/internal/service"
	"github.com/ecodeclub/ginx"
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
	g := server.Group("/user")
	g.POST("/list", ginx.B[ListUsersReq](h.List))
	g.POST("/save", ginx.B[SaveUserReq](h.Save))
	g.POST("/toggle-status", ginx.B[ToggleStatusReq](h.ToggleStatus))
}

func (h *AdminHandler) List(ctx *ginx.Context, req ListUsersReq) (ginx.Result, error) {
	offset, limit := req.OffsetLimit()
	users, total, err := h.svc.List(ctx, offset, limit, req.Keyword, req.Role)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: UsersResp{
		Users: slice.Map(users, func(idx int, src domain.User) Profile {
			return toProfileVO(src)
		}),
		Total:       total,
		TotalPages:  totalPages(total, limit),
		CurrentPage: int64(offset/limit) + 1,
	}}, nil
}

func (h *AdminHandler) Save(ctx *ginx.Context, req SaveUserReq) (ginx.Result, error) {
	id, err := h.svc.Save(ctx, domain.User{
		ID:       req.ID,
		Email:    req.Email,
		Phone:    req.Phone,
		Password: req.Password,
		Fullname: req.Fullname,
		Gender:   req.Gender,
		Role:     req.Role,
	})
	switch {
	case err == nil:
		return ginx.Result{Data: SaveUserResp{ID: id}}, nil
	case errors.Is(err, service.ErrUserDuplicate):
		return duplicateUserResult, err
	default:
		return systemErrorResult, err
	}
}

func (h *AdminHandler) ToggleStatus(ctx *ginx.Context, req ToggleStatusReq) (ginx.Result, error) {
	err := h.svc.ToggleStatus(ctx, req.ID, req.Disabled)
	switch {
	case err == nil:
		return ginx.Result{Msg: "OK"}, nil
	case errors.Is(err, service.ErrAdminUntouchable):
		return adminUntouchableResult, err
	case errors.Is(err, gorm.ErrRecordNotFound):
		return userNotFoundResult, err
	default:
		return systemErrorResult, err
	}
}
