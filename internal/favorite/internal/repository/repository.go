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
	"github.com/ecodeclub/eshop/internal/favorite/internal/domain"
	"github.com/ecodeclub/eshop/internal/favorite/internal/repository/dao"
)

var ErrFavoriteNotFound = dao.ErrFavoriteNotFound

type FavoriteRepository interface {
	Save(ctx context.Context, f domain.Favorite) error
	UpdateNote(ctx context.Context, uid, spuID int64, note string) error
	Delete(ctx context.Context, uid, spuID int64) error
	Find(ctx context.Context, uid, spuID int64) (domain.Favorite, error)
	FindByUID(ctx context.Context, uid int64) ([]domain.Favorite, error)
}

type favoriteRepository struct {
	dao dao.FavoriteDAO
}

func NewFavoriteRepository(d dao.FavoriteDAO) FavoriteRepository {
	return &favoriteRepository{dao: d}
}

func (r *favoriteRepository) Save(ctx context.Context, f domain.Favorite) error {
	return r.dao.Save(ctx, dao.Favorite{
		Uid:   f.UID,
		SPUId: f.SPUID,
		Note:  f.Note,
	})
}

func (r *favoriteRepository) UpdateNote(ctx context.Context, uid, spuID int64, note string) error {
	return r.dao.UpdateNote(ctx, uid, spuID, note)
}

func (r *favoriteRepository) Delete(ctx context.Context, uid, spuID int64) error {
	return r.dao.Delete(ctx, uid, spuID)
}

func (r *favoriteRepository) Find(ctx context.Context, uid, spuID int64) (domain.Favorite, error) {
	f, err := r.dao.FindByUIDAndSPUID(ctx, uid, spuID)
	if err != nil {
		return domain.Favorite{}, err
	}
	return r.toDomain(f), nil
}

func (r *favoriteRepository) FindByUID(ctx context.Context, uid int64) ([]domain.Favorite, error) {
	fs, err := r.dao.FindByUID(ctx, uid)
	if err != nil {
		return nil, err
	}
	return slice.Map(fs, func(idx int, src dao.Favorite) domain.Favorite {
		return r.toDomain(src)
	}), nil
}

func (r *favoriteRepository) toDomain(f dao.Favorite) domain.Favorite {
	return domain.Favorite{
		ID:    f.Id,
		UID:   f.Uid,
		SPUID: f.SPUId,
		Note:  f.Note,
		Ctime: f.Ctime,
		Utime: f.Utime,
	}
}
