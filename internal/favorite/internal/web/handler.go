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
	"github.com/ecodeclub/eshop/internal/favorite/internal/domain"
	"github.com/ecodeclub/eshop/internal/favorite/internal/service"
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
	g := server.Group("/favorite")
	g.POST("/add", ginx.BS[AddFavoriteReq](h.Add))
	g.POST("/update", ginx.BS[UpdateFavoriteReq](h.Update))
	g.POST("/delete", ginx.BS[FavoriteIDReq](h.Delete))
	g.POST("/check", ginx.BS[FavoriteIDReq](h.Check))
	g.POST("/list", ginx.S(h.List))
}

func (h *Handler) PublicRoutes(_ *gin.Engine) {}

func (h *Handler) Add(ctx *ginx.Context, req AddFavoriteReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.Add(ctx, sess.Claims().Uid, req.SPUID, req.Note)
	switch {
	case err == nil:
		return ginx.Result{Msg: "OK"}, nil
	case errors.Is(err, service.ErrProductNotFound):
		return productNotFoundResult, err
	default:
		return systemErrorResult, err
	}
}

func (h *Handler) Update(ctx *ginx.Context, req UpdateFavoriteReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.UpdateNote(ctx, sess.Claims().Uid, req.SPUID, req.Note)
	switch {
	case err == nil:
		return ginx.Result{Msg: "OK"}, nil
	case errors.Is(err, service.ErrFavoriteNotFound):
		return favoriteNotFoundResult, err
	default:
		return systemErrorResult, err
	}
}

func (h *Handler) Delete(ctx *ginx.Context, req FavoriteIDReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.Remove(ctx, sess.Claims().Uid, req.SPUID)
	switch {
	case err == nil:
		return ginx.Result{Msg: "OK"}, nil
	case errors.Is(err, service.ErrFavoriteNotFound):
		return favoriteNotFoundResult, err
	default:
		return systemErrorResult, err
	}
}

func (h *Handler) Check(ctx *ginx.Context, req FavoriteIDReq, sess session.Session) (ginx.Result, error) {
	ok, err := h.svc.Check(ctx, sess.Claims().Uid, req.SPUID)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: CheckFavoriteResp{Favorited: ok}}, nil
}

func (h *Handler) List(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	fs, err := h.svc.List(ctx, sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: FavoritesResp{
		Favorites: slice.Map(fs, func(idx int, src domain.Favorite) Favorite {
			return Favorite{
				SPUID:     src.SPUID,
				Note:      src.Note,
				Name:      src.Product.Name,
				Category:  src.Product.Category,
				Price:     src.Product.Price,
				Thumbnail: src.Product.Thumbnail,
				Available: src.Product.OnShelf,
				Ctime:     src.Ctime,
			}
		}),
	}}, nil
}
