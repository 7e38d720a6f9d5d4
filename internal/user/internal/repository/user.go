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
	"github.com/ecodeclub/eshop/internal/user/internal/domain"
	"github.com/ecodeclub/eshop/internal/user/internal/repository/dao"
)

var (
	ErrUserNotFound  = dao.ErrUserNotFound
	ErrUserDuplicate = dao.ErrUserDuplicate
)

type UserRepository interface {
	Create(ctx context.Context, user domain.User) (int64, error)
	FindByID(ctx context.Context, id int64) (domain.User, error)
	FindByEmail(ctx context.Context, email string) (domain.User, error)
	UpdateNonZeroFields(ctx context.Context, user domain.User) error
	UpdatePassword(ctx context.Context, id int64, password string) error
	UpdateDisabled(ctx context.Context, id int64, disabled bool) error
	List(ctx context.Context, offset, limit int, keyword, role string) ([]domain.User, error)
	Count(ctx context.Context, keyword, role string) (int64, error)
	ActiveIDs(ctx context.Context) ([]int64, error)
}

type userRepository struct {
	dao dao.UserDAO
}

func NewUserRepository(d dao.UserDAO) UserRepository {
	return &userRepository{dao: d}
}

func (r *userRepository) Create(ctx context.Context, user domain.User) (int64, error) {
	return r.dao.Insert(ctx, r.toEntity(user))
}

func (r *userRepository) FindByID(ctx context.Context, id int64) (domain.User, error) {
	u, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.User{}, err
	}
	return r.toDomain(u), nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (domain.User, error) {
	u, err := r.dao.FindByEmail(ctx, email)
	if err != nil {
		return domain.User{}, err
	}
	return r.toDomain(u), nil
}

func (r *userRepository) UpdateNonZeroFields(ctx context.Context, user domain.User) error {
	return r.dao.UpdateNonZeroFields(ctx, r.toEntity(user))
}

func (r *userRepository) UpdatePassword(ctx context.Context, id int64, password string) error {
	return r.dao.UpdatePassword(ctx, id, password)
}

func (r *userRepository) UpdateDisabled(ctx context.Context, id int64, disabled bool) error {
	return r.dao.UpdateDisabled(ctx, id, disabled)
}

func (r *userRepository) List(ctx context.Context, offset, limit int, keyword, role string) ([]domain.User, error) {
	us, err := r.dao.List(ctx, offset, limit, keyword, role)
	if err != nil {
		return nil, err
	}
	return slice.Map(us, func(idx int, src dao.User) domain.User {
		return r.toDomain(src)
	}), nil
}

func (r *userRepository) Count(ctx context.Context, keyword, role string) (int64, error) {
	return r.dao.Count(ctx, keyword, role)
}

func (r *userRepository) ActiveIDs(ctx context.Context) ([]int64, error) {
	return r.dao.ActiveIDs(ctx)
}

func (r *userRepository) toEntity(u domain.User) dao.User {
	return dao.User{
		Id:       u.ID,
		Email:    u.Email,
		Phone:    u.Phone,
		Password: u.Password,
		Fullname: u.Fullname,
		Gender:   u.Gender,
		Avatar:   u.Avatar,
		Role:     u.Role,
		Disabled: u.Disabled,
	}
}

func (r *userRepository) toDomain(u dao.User) domain.User {
	return domain.User{
		ID:       u.Id,
		Email:    u.Email,
		Phone:    u.Phone,
		Password: u.Password,
		Fullname: u.Fullname,
		Gender:   u.Gender,
		Avatar:   u.Avatar,
		Role:     u.Role,
		Disabled: u.Disabled,
		Ctime:    u.Ctime,
		Utime:    u.Utime,
	}
}
