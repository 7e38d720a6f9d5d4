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

package service

import (
	"context"
	"errors"

	"github.com/ecodeclub/eshop/internal/favorite/internal/domain"
	"github.com/ecodeclub/eshop/internal/favorite/internal/repository"
	"github.com/ecodeclub/eshop/internal/product"
)

var (
	ErrFavoriteNotFound = errors.New("收藏不存在")
	ErrProductNotFound  = errors.New("商品不存在")
)

type Service interface {
	// Add 幂等,重复收藏同一商品只更新备注
	Add(ctx context.Context, uid, spuID int64, note string) error
	UpdateNote(ctx context.Context, uid, spuID int64, note string) error
	Remove(ctx context.Context, uid, spuID int64) error
	Check(ctx context.Context, uid, spuID int64) (bool, error)
	// List 返回聚合了商品快照的收藏列表
	List(ctx context.Context, uid int64) ([]domain.Favorite, error)
}

type service struct {
	repo       repository.FavoriteRepository
	productSvc product.Service
}

func NewService(repo repository.FavoriteRepository, productSvc product.Service) Service {
	return &service{repo: repo, productSvc: productSvc}
}

func (s *service) Add(ctx context.Context, uid, spuID int64, note string) error {
	_, err := s.productSvc.FindSPUByID(ctx, spuID)
	if err != nil {
		if errors.Is(err, product.ErrSPUNotFound) {
			return ErrProductNotFound
		}
		return err
	}
	return s.repo.Save(ctx, domain.Favorite{
		UID:   uid,
		SPUID: spuID,
		Note:  note,
	})
}

func (s *service) UpdateNote(ctx context.Context, uid, spuID int64, note string) error {
	err := s.repo.UpdateNote(ctx, uid, spuID, note)
	if errors.Is(err, repository.ErrFavoriteNotFound) {
		return ErrFavoriteNotFound
	}
	return err
}

func (s *service) Remove(ctx context.Context, uid, spuID int64) error {
	err := s.repo.Delete(ctx, uid, spuID)
	if errors.Is(err, repository.ErrFavoriteNotFound) {
		return ErrFavoriteNotFound
	}
	return err
}

func (s *service) Check(ctx context.Context, uid, spuID int64) (bool, error) {
	_, err := s.repo.Find(ctx, uid, spuID)
	if err != nil {
		if errors.Is(err, repository.ErrFavoriteNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (s *service) List(ctx context.Context, uid int64) ([]domain.Favorite, error) {
	fs, err := s.repo.FindByUID(ctx, uid)
	if err != nil {
		return nil, err
	}
	for i := range fs {
		spu, er := s.productSvc.FindSPUByID(ctx, fs[i].SPUID)
		if er != nil {
			if errors.Is(er, product.ErrSPUNotFound) {
				// 商品已被删除,收藏保留但标记为不可售
				fs[i].Product = domain.Product{OnShelf: false}
				continue
			}
			return nil, er
		}
		fs[i].Product = domain.Product{
			Name:      spu.Name,
			Category:  spu.Category,
			Price:     spu.Price,
			Thumbnail: spu.Thumbnail,
			OnShelf:   spu.Status == product.StatusOnShelf,
		}
	}
	return fs, nil
}
