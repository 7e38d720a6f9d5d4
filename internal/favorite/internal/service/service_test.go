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

	"github.com/ecodeclub/eshop/internal/favorite/internal/domain"
	"github.com/ecodeclub/eshop/internal/favorite/internal/repository"
	"github.com/ecodeclub/eshop/internal/product"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeFavoriteRepository struct {
	repository.FavoriteRepository
	saved     domain.Favorite
	findErr   error
	favorites []domain.Favorite
	noteErr   error
	deleteErr error
}

func (f *fakeFavoriteRepository) Save(ctx context.Context, fav domain.Favorite) error {
	f.saved = fav
	return nil
}

func (f *fakeFavoriteRepository) Find(ctx context.Context, uid, spuID int64) (domain.Favorite, error) {
	return domain.Favorite{UID: uid, SPUID: spuID}, f.findErr
}

func (f *fakeFavoriteRepository) FindByUID(ctx context.Context, uid int64) ([]domain.Favorite, error) {
	return f.favorites, nil
}

func (f *fakeFavoriteRepository) UpdateNote(ctx context.Context, uid, spuID int64, note string) error {
	return f.noteErr
}

func (f *fakeFavoriteRepository) Delete(ctx context.Context, uid, spuID int64) error {
	return f.deleteErr
}

type fakeProductService struct {
	product.Service
	spus map[int64]product.SPU
}

func (f *fakeProductService) FindSPUByID(ctx context.Context, id int64) (product.SPU, error) {
	spu, ok := f.spus[id]
	if !ok {
		return product.SPU{}, product.ErrSPUNotFound
	}
	return spu, nil
}

func TestService_Add(t *testing.T) {
	t.Run("收藏成功", func(t *testing.T) {
		repo := &fakeFavoriteRepository{}
		svc := NewService(repo, &fakeProductService{spus: map[int64]product.SPU{
			10: {ID: 10, Name: "帆布鞋"},
		}})
		err := svc.Add(context.Background(), 2793, 10, "下次买")
		require.NoError(t, err)
		assert.Equal(t, domain.Favorite{
			UID:   2793,
			SPUID: 10,
			Note:  "下次买",
		}, repo.saved)
	})

	t.Run("商品不存在", func(t *testing.T) {
		repo := &fakeFavoriteRepository{}
		svc := NewService(repo, &fakeProductService{})
		err := svc.Add(context.Background(), 2793, 99, "")
		assert.ErrorIs(t, err, ErrProductNotFound)
		assert.Zero(t, repo.saved.SPUID)
	})
}

func TestService_UpdateNote(t *testing.T) {
	t.Run("收藏不存在", func(t *testing.T) {
		repo := &fakeFavoriteRepository{noteErr: repository.ErrFavoriteNotFound}
		svc := NewService(repo, &fakeProductService{})
		err := svc.UpdateNote(context.Background(), 2793, 10, "备注")
		assert.ErrorIs(t, err, ErrFavoriteNotFound)
	})
}

func TestService_Remove(t *testing.T) {
	t.Run("收藏不存在", func(t *testing.T) {
		repo := &fakeFavoriteRepository{deleteErr: repository.ErrFavoriteNotFound}
		svc := NewService(repo, &fakeProductService{})
		err := svc.Remove(context.Background(), 2793, 10)
		assert.ErrorIs(t, err, ErrFavoriteNotFound)
	})
}

func TestService_Check(t *testing.T) {
	t.Run("已收藏", func(t *testing.T) {
		svc := NewService(&fakeFavoriteRepository{}, &fakeProductService{})
		ok, err := svc.Check(context.Background(), 2793, 10)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("未收藏", func(t *testing.T) {
		svc := NewService(&fakeFavoriteRepository{findErr: repository.ErrFavoriteNotFound}, &fakeProductService{})
		ok, err := svc.Check(context.Background(), 2793, 10)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("查询失败", func(t *testing.T) {
		findErr := errors.New("mock db error")
		svc := NewService(&fakeFavoriteRepository{findErr: findErr}, &fakeProductService{})
		_, err := svc.Check(context.Background(), 2793, 10)
		assert.ErrorIs(t, err, findErr)
	})
}

func TestService_List(t *testing.T) {
	repo := &fakeFavoriteRepository{favorites: []domain.Favorite{
		{UID: 2793, SPUID: 10},
		// 商品已被删除,收藏保留但标记为不可售
		{UID: 2793, SPUID: 99},
	}}
	svc := NewService(repo, &fakeProductService{spus: map[int64]product.SPU{
		10: {
			ID:        10,
			Name:      "帆布鞋",
			Category:  "shoes",
			Price:     25900,
			Thumbnail: "https://cdn.example.com/10.png",
			Status:    product.StatusOnShelf,
		},
	}})
	fs, err := svc.List(context.Background(), 2793)
	require.NoError(t, err)
	require.Len(t, fs, 2)
	assert.Equal(t, domain.Product{
		Name:      "帆布鞋",
		Category:  "shoes",
		Price:     25900,
		Thumbnail: "https://cdn.example.com/10.png",
		OnShelf:   true,
	}, fs[0].Product)
	assert.False(t, fs[1].Product.OnShelf)
}
