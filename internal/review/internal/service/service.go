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

	"github.com/ecodeclub/eshop/internal/order"
	"github.com/ecodeclub/eshop/internal/product"
	"github.com/ecodeclub/eshop/internal/review/internal/domain"
	"github.com/ecodeclub/eshop/internal/review/internal/repository"
	"github.com/gotomicro/ego/core/elog"
	"golang.org/x/sync/errgroup"
)

var (
	ErrReviewNotFound  = errors.New("评价不存在")
	ErrProductNotFound = errors.New("商品不存在")
	ErrInvalidRating   = errors.New("评分必须在1到5之间")
)

type Service interface {
	// Save 同一个用户对同一个SPU只有一条评价,重复提交视为修改
	Save(ctx context.Context, review domain.Review) (int64, error)
	Delete(ctx context.Context, uid, id int64) error
	// ListBySPU 返回某商品的评价分页及评分汇总
	ListBySPU(ctx context.Context, spuID int64, offset, limit int) ([]domain.Review, domain.RatingStats, error)
	// Mine 返回聚合了商品快照的个人评价列表
	Mine(ctx context.Context, uid int64, offset, limit int) ([]domain.Review, int64, error)

	AdminList(ctx context.Context, offset, limit int) ([]domain.Review, int64, error)
	AdminDelete(ctx context.Context, id int64) error
}

type service struct {
	repo       repository.ReviewRepository
	productSvc product.Service
	orderSvc   order.Service
	logger     *elog.Component
}

func NewService(repo repository.ReviewRepository, productSvc product.Service, orderSvc order.Service) Service {
	return &service{
		repo:       repo,
		productSvc: productSvc,
		orderSvc:   orderSvc,
		logger:     elog.DefaultLogger,
	}
}

func (s *service) Save(ctx context.Context, review domain.Review) (int64, error) {
	if !review.ValidRating() {
		return 0, ErrInvalidRating
	}
	_, err := s.productSvc.FindSPUByID(ctx, review.SPUID)
	if err != nil {
		if errors.Is(err, product.ErrSPUNotFound) {
			return 0, ErrProductNotFound
		}
		return 0, err
	}
	verified, err := s.orderSvc.HasPurchased(ctx, review.UID, review.SPUID)
	if err != nil {
		// 购买校验失败不阻塞评价,按未核实处理
		s.logger.Warn("校验用户购买记录失败",
			elog.FieldErr(err),
			elog.Int64("uid", review.UID),
			elog.Int64("spuId", review.SPUID))
		verified = false
	}
	review.Verified = verified
	return s.repo.Save(ctx, review)
}

func (s *service) Delete(ctx context.Context, uid, id int64) error {
	err := s.repo.DeleteByUIDAndID(ctx, uid, id)
	if errors.Is(err, repository.ErrReviewNotFound) {
		return ErrReviewNotFound
	}
	return err
}

func (s *service) ListBySPU(ctx context.Context, spuID int64, offset, limit int) ([]domain.Review, domain.RatingStats, error) {
	var eg errgroup.Group
	var reviews []domain.Review
	var stats domain.RatingStats
	eg.Go(func() error {
		var err error
		reviews, err = s.repo.ListBySPUID(ctx, spuID, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		stats, err = s.repo.StatsBySPUID(ctx, spuID)
		return err
	})
	if err := eg.Wait(); err != nil {
		return nil, domain.RatingStats{}, err
	}
	return reviews, stats, nil
}

func (s *service) Mine(ctx context.Context, uid int64, offset, limit int) ([]domain.Review, int64, error) {
	var eg errgroup.Group
	var reviews []domain.Review
	var total int64
	eg.Go(func() error {
		var err error
		reviews, err = s.repo.ListByUID(ctx, uid, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.CountByUID(ctx, uid)
		return err
	})
	if err := eg.Wait(); err != nil {
		return nil, 0, err
	}
	if err := s.attachProducts(ctx, reviews); err != nil {
		return nil, 0, err
	}
	return reviews, total, nil
}

func (s *service) AdminList(ctx context.Context, offset, limit int) ([]domain.Review, int64, error) {
	var eg errgroup.Group
	var reviews []domain.Review
	var total int64
	eg.Go(func() error {
		var err error
		reviews, err = s.repo.List(ctx, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.Count(ctx)
		return err
	})
	if err := eg.Wait(); err != nil {
		return nil, 0, err
	}
	if err := s.attachProducts(ctx, reviews); err != nil {
		return nil, 0, err
	}
	return reviews, total, nil
}

func (s *service) AdminDelete(ctx context.Context, id int64) error {
	err := s.repo.DeleteByID(ctx, id)
	if errors.Is(err, repository.ErrReviewNotFound) {
		return ErrReviewNotFound
	}
	return err
}

func (s *service) attachProducts(ctx context.Context, reviews []domain.Review) error {
	for i := range reviews {
		spu, err := s.productSvc.FindSPUByID(ctx, reviews[i].SPUID)
		if err != nil {
			if errors.Is(err, product.ErrSPUNotFound) {
				// 商品已被删除,评价保留
				continue
			}
			return err
		}
		reviews[i].Product = domain.Product{
			Name:      spu.Name,
			Price:     spu.Price,
			Thumbnail: spu.Thumbnail,
		}
	}
	return nil
}
