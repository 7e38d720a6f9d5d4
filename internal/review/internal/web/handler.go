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
	g := server.Group("/review")
	g.POST("/save", ginx.BS[SaveReviewReq](h.Save))
	g.POST("/delete", ginx.BS[DeleteReviewReq](h.Delete))
	g.POST("/list", ginx.B[ListReviewsReq](h.List))
	g.POST("/mine", ginx.BS[MineReviewsReq](h.Mine))
}

func (h *Handler) PublicRoutes(_ *gin.Engine) {}

func (h *Handler) Save(ctx *ginx.Context, req SaveReviewReq, sess session.Session) (ginx.Result, error) {
	id, err := h.svc.Save(ctx, domain.Review{
		UID:     sess.Claims().Uid,
		SPUID:   req.SPUID,
		Rating:  req.Rating,
		Comment: req.Comment,
		Images:  req.Images,
	})
	switch {
	case err == nil:
		return ginx.Result{Data: SaveReviewResp{ID: id}}, nil
	case errors.Is(err, service.ErrInvalidRating):
		return invalidRatingResult, err
	case errors.Is(err, service.ErrProductNotFound):
		return productNotFoundResult, err
	default:
		return systemErrorResult, err
	}
}

func (h *Handler) Delete(ctx *ginx.Context, req DeleteReviewReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.Delete(ctx, sess.Claims().Uid, req.ID)
	switch {
	case err == nil:
		return ginx.Result{Msg: "OK"}, nil
	case errors.Is(err, service.ErrReviewNotFound):
		return reviewNotFoundResult, err
	default:
		return systemErrorResult, err
	}
}

func (h *Handler) List(ctx *ginx.Context, req ListReviewsReq) (ginx.Result, error) {
	offset, limit := req.OffsetLimit()
	reviews, stats, err := h.svc.ListBySPU(ctx, req.SPUID, offset, limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: ReviewsResp{
		Reviews: slice.Map(reviews, func(idx int, src domain.Review) Review {
			return toReviewVO(src)
		}),
		Total:       stats.Total,
		TotalPages:  totalPages(stats.Total, limit),
		CurrentPage: int64(offset/limit) + 1,
		AvgRating:   stats.Average,
	}}, nil
}

func (h *Handler) Mine(ctx *ginx.Context, req MineReviewsReq, sess session.Session) (ginx.Result, error) {
	offset, limit := req.OffsetLimit()
	reviews, total, err := h.svc.Mine(ctx, sess.Claims().Uid, offset, limit)
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

func toReviewVO(re domain.Review) Review {
	return Review{
		ID:           re.ID,
		SPUID:        re.SPUID,
		Rating:       re.Rating,
		Comment:      re.Comment,
		Images:       re.Images,
		Verified:     re.Verified,
		ProductName:  re.Product.Name,
		ProductPrice: re.Product.Price,
		Thumbnail:    re.Product.Thumbnail,
		Ctime:        re.Ctime,
	}
}
