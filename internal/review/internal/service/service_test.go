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
	"testing"

	"github.com/ecodeclub/eshop/internal/order"
	"github.com/ecodeclub/eshop/internal/product"
	"github.com/ecodeclub/eshop/internal/review/internal/domain"
	"github.com/ecodeclub/eshop/internal/review/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeReviewRepository struct {
	repository.ReviewRepository
	saved domain.Review
}

func (f *fakeReviewRepository) Save(ctx context.Context, review domain.Review) (int64, error) {
	f.saved = review
	return 1, nil
}

type fakeProductService struct {
	product.Service
	findErr error
}

func (f *fakeProductService) FindSPUByID(ctx context.Context, id int64) (product.SPU, error) {
	return product.SPU{ID: id}, f.findErr
}

type fakeOrderService struct {
	order.Service
	purchased    bool
	purchasedErr error
}

func (f *fakeOrderService) HasPurchased(ctx context.Context, uid, spuID int64) (bool, error) {
	return f.purchased, f.purchasedErr
}

func TestService_Save(t *testing.T) {
	review := domain.Review{
		UID:     2793,
		SPUID:   11,
		Rating:  5,
		Comment: "质量很好",
	}

	t.Run("买过的用户评价带核实标记", func(t *testing.T) {
		repo := &fakeReviewRepository{}
		svc := NewService(repo, &fakeProductService{}, &fakeOrderService{purchased: true})
		id, err := svc.Save(context.Background(), review)
		require.NoError(t, err)
		assert.Equal(t, int64(1), id)
		assert.True(t, repo.saved.Verified)
	})

	t.Run("没买过的用户也能评价", func(t *testing.T) {
		repo := &fakeReviewRepository{}
		svc := NewService(repo, &fakeProductService{}, &fakeOrderService{purchased: false})
		_, err := svc.Save(context.Background(), review)
		require.NoError(t, err)
		assert.False(t, repo.saved.Verified)
	})

	t.Run("购买校验失败_按未核实处理", func(t *testing.T) {
		repo := &fakeReviewRepository{}
		svc := NewService(repo, &fakeProductService{},
			&fakeOrderService{purchased: true, purchasedErr: errors.New("mock error")})
		_, err := svc.Save(context.Background(), review)
		require.NoError(t, err)
		assert.False(t, repo.saved.Verified)
	})

	t.Run("评分越界", func(t *testing.T) {
		for _, rating := range []uint8{0, 6} {
			bad := review
			bad.Rating = rating
			svc := NewService(&fakeReviewRepository{}, &fakeProductService{}, &fakeOrderService{})
			_, err := svc.Save(context.Background(), bad)
			assert.ErrorIs(t, err, ErrInvalidRating)
		}
	})

	t.Run("商品不存在", func(t *testing.T) {
		svc := NewService(&fakeReviewRepository{},
			&fakeProductService{findErr: product.ErrSPUNotFound}, &fakeOrderService{})
		_, err := svc.Save(context.Background(), review)
		assert.ErrorIs(t, err, ErrProductNotFound)
	})
}

func TestReview_ValidRating(t *testing.T) {
	testCases := []struct {
		rating  uint8
		wantRes bool
	}{
		{rating: 0, wantRes: false},
		{rating: 1, wantRes: true},
		{rating: 3, wantRes: true},
		{rating: 5, wantRes: true},
		{rating: 6, wantRes: false},
	}
	for _, tc := range testCases {
		r := domain.Review{Rating: tc.rating}
		assert.Equal(t, tc.wantRes, r.ValidRating(), "rating=%d", tc.rating)
	}
}
