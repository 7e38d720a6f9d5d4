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
	"github.com/ecodeclub/eshop/internal/review/internal/domain"
	"github.com/ecodeclub/eshop/internal/review/internal/service"
	"github.com/ecodeclub/ginx"
	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	svc service.Service
}

func NewAdminHandler(svc service.Service) *AdminHandler {
	return &AdminHandler{svc: svc}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/review")
	g.POST("/list", ginx.B[AdminListReviewsReq](h.List))
	g.POST("/delete", ginx.B[DeleteReviewReq](h.Delete))
}

func (h *AdminHandler) List(ctx *ginx.Context, req AdminListReviewsReq) (ginx.Result, error) {
	offset, limit := req.OffsetLimit()
	reviews, total, err := h.svc.AdminList(ctx, offset, limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: ReviewsResp{
		Reviews: slice.Map(reviews, func(idx int, src domain.Review) Review {
			return toReviewVO(src)
		}),
		Total:       total,
		TotalPages:  totalPages(total, limit),
		CurrentPage: int64(offset/limit) + 1,
	}}, nil
}

func (h *AdminHandler) Delete(ctx *ginx.Context, req DeleteReviewReq) (ginx.Result, error) {
	err := h.svc.AdminDelete(ctx, req.ID)
	switch {
	case err == nil:
		return ginx.Result{Msg: "OK"}, nil
	case errors.Is(err, service.ErrReviewNotFound):
		return reviewNotFoundResult, err
	default:
		return systemErrorResult, err
	}
}
