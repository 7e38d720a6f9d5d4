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

package repository

import (
	"context"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ecodeclub/eshop/internal/review/internal/domain"
	"github.com/ecodeclub/eshop/internal/review/internal/repository/dao"
)

var ErrReviewNotFound = dao.ErrReviewNotFound

type ReviewRepository interface {
	Save(ctx context.Context, review domain.Review) (int64, error)
	FindByUIDAndSPUID(ctx context.Context, uid, spuID int64) (domain.Review, error)
	DeleteByUIDAndID(ctx context.Context, uid, id int64) error
	DeleteByID(ctx context.Context, id int64) error
	ListBySPUID(ctx context.Context, spuID int64, offset, limit int) ([]domain.Review, error)
	StatsBySPUID(ctx context.Context, spuID int64) (domain.RatingStats, error)
	ListByUID(ctx context.Context, uid int64, offset, limit int) ([]domain.Review, error)
	CountByUID(ctx context.Context, uid int64) (int64, error)
	List(ctx context.Context, offset, limit int) ([]domain.Review, error)
	Count(ctx context.Context) (int64, error)
}

type reviewRepository struct {
	dao dao.ReviewDAO
}

func NewReviewRepository(d dao.ReviewDAO) ReviewRepository {
	return &reviewRepository{dao: d}
}

func (r *reviewRepository) Save(ctx context.Context, review domain.Review) (int64, error) {
	return r.dao.Save(ctx, r.toEntity(review))
}

func (r *reviewRepository) FindByUIDAndSPUID(ctx context.Context, uid, spuID int64) (domain.Review, error) {
	re, err := r.dao.FindByUIDAndSPUID(ctx, uid, spuID)
	if err != nil {
		return domain.Review{}, err
	}
	return r.toDomain(re), nil
}

func (r *reviewRepository) DeleteByUIDAndID(ctx context.Context, uid, id int64) error {
	return r.dao.DeleteByUIDAndID(ctx, uid, id)
}

func (r *reviewRepository) DeleteByID(ctx context.Context, id int64) error {
	return r.dao.DeleteByID(ctx, id)
}

func (r *reviewRepository) ListBySPUID(ctx context.Context, spuID int64, offset, limit int) ([]domain.Review, error) {
	res, err := r.dao.ListBySPUID(ctx, spuID, offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(res, func(idx int, src dao.Review) domain.Review {
		return r.toDomain(src)
	}), nil
}

func (r *reviewRepository) StatsBySPUID(ctx context.Context, spuID int64) (domain.RatingStats, error) {
	stats, err := r.dao.StatsBySPUID(ctx, spuID)
	if err != nil {
		return domain.RatingStats{}, err
	}
	return domain.RatingStats{
		Average: stats.Average,
		Total:   stats.Total,
	}, nil
}

func (r *reviewRepository) ListByUID(ctx context.Context, uid int64, offset, limit int) ([]domain.Review, error) {
	res, err := r.dao.ListByUID(ctx, uid, offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(res, func(idx int, src dao.Review) domain.Review {
		return r.toDomain(src)
	}), nil
}

func (r *reviewRepository) CountByUID(ctx context.Context, uid int64) (int64, error) {
	return r.dao.CountByUID(ctx, uid)
}

func (r *reviewRepository) List(ctx context.Context, offset, limit int) ([]domain.Review, error) {
	res, err := r.dao.List(ctx, offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(res, func(idx int, src dao.Review) domain.Review {
		return r.toDomain(src)
	}), nil
}

func (r *reviewRepository) Count(ctx context.Context) (int64, error) {
	return r.dao.Count(ctx)
}

func (r *reviewRepository) toEntity(re domain.Review) dao.Review {
	return dao.Review{
		Id:      re.ID,
		Uid:     re.UID,
		SPUId:   re.SPUID,
		Rating:  re.Rating,
		Comment: re.Comment,
		Images: sqlx.JsonColumn[[]string]{
			Val:   re.Images,
			Valid: len(re.Images) > 0,
		},
		Verified: re.Verified,
	}
}

func (r *reviewRepository) toDomain(re dao.Review) domain.Review {
	return domain.Review{
		ID:       re.Id,
		UID:      re.Uid,
		SPUID:    re.SPUId,
		Rating:   re.Rating,
		Comment:  re.Comment,
		Images:   re.Images.Val,
		Verified: re.Verified,
		Ctime:    re.Ctime,
		Utime:    re.Utime,
	}
}
