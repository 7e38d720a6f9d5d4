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

	"github.com/ecodeclub/eshop/internal/user/internal/domain"
	"github.com/ecodeclub/eshop/internal/user/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrUserNotFound  = repository.ErrUserNotFound
	ErrUserDuplicate = repository.ErrUserDuplicate
	ErrWrongPassword = errors.New("当前密码不正确")
)

type Service interface {
	Profile(ctx context.Context, uid int64) (domain.User, error)
	// UpdateProfile 只更新传入的非零值字段
	UpdateProfile(ctx context.Context, user domain.User) error
	ChangePassword(ctx context.Context, uid int64, current, updated string) error
	// ActiveIDs 返回所有未被禁用的用户ID,供站内信广播使用
	ActiveIDs(ctx context.Context) ([]int64, error)
}

type service struct {
	repo repository.UserRepository
}

func NewService(repo repository.UserRepository) Service {
	return &service{repo: repo}
}

func (s *service) Profile(ctx context.Context, uid int64) (domain.User, error) {
	u, err := s.repo.FindByID(ctx, uid)
	if err != nil {
		return domain.User{}, err
	}
	u.Password = ""
	return u, nil
}

func (s *service) UpdateProfile(ctx context.Context, user domain.User) error {
	return s.repo.UpdateNonZeroFields(ctx, domain.User{
		ID:       user.ID,
		Fullname: user.Fullname,
		Gender:   user.Gender,
		Phone:    user.Phone,
		Avatar:   user.Avatar,
	})
}

func (s *service) ChangePassword(ctx context.Context, uid int64, current, updated string) error {
	u, err := s.repo.FindByID(ctx, uid)
	if err != nil {
		return err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(current)) != nil {
		return ErrWrongPassword
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(updated), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.repo.UpdatePassword(ctx, uid, string(hash))
}

func (s *service) ActiveIDs(ctx context.Context) ([]int64, error) {
	return s.repo.ActiveIDs(ctx)
}
