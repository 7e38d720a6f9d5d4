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

	"github.com/ecodeclub/eshop/internal/user/internal/domain"
	"github.com/ecodeclub/eshop/internal/user/internal/service"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/user")
	g.POST("/profile", ginx.S(h.Profile))
	g.POST("/profile/update", ginx.BS[UpdateProfileReq](h.UpdateProfile))
	g.POST("/password", ginx.BS[ChangePasswordReq](h.ChangePassword))
}

func (h *Handler) PublicRoutes(_ *gin.Engine) {}

func (h *Handler) Profile(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	u, err := h.svc.Profile(ctx, sess.Claims().Uid)
	switch {
	case err == nil:
		return ginx.Result{Data: toProfileVO(u)}, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return userNotFoundResult, err
	default:
		return systemErrorResult, err
	}
}

func (h *Handler) UpdateProfile(ctx *ginx.Context, req UpdateProfileReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.UpdateProfile(ctx, domain.User{
		ID:       sess.Claims().Uid,
		Fullname: req.Fullname,
		Gender:   req.Gender,
		Phone:    req.Phone,
		Avatar:   req.Avatar,
	})
	switch {
	case err == nil:
		return ginx.Result{Msg: "OK"}, nil
	case errors.Is(err, service.ErrUserDuplicate):
		return duplicateUserResult, err
	default:
		return systemErrorResult, err
	}
}

func (h *Handler) ChangePassword(ctx *ginx.Context, req ChangePasswordReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.ChangePassword(ctx, sess.Claims().Uid, req.CurrentPassword, req.NewPassword)
	switch {
	case err == nil:
		return ginx.Result{Msg: "OK"}, nil
	case errors.Is(err, service.ErrWrongPassword):
		return wrongPasswordResult, err
	case errors.Is(err, gorm.ErrRecordNotFound):
		return userNotFoundResult, err
	default:
		return systemErrorResult, err
	}
}

func toProfileVO(u domain.User) Profile {
	return Profile{
		ID:       u.ID,
		Email:    u.Email,
		Phone:    u.Phone,
		Fullname: u.Fullname,
		Gender:   u.Gender,
		Avatar:   u.Avatar,
		Role:     u.Role,
		Disabled: u.Disabled,
		Ctime:    u.Ctime,
	}
}
