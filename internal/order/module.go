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

package order

import (
	"time"

	"github.com/ecodeclub/eshop/internal/order/internal/domain"
	"github.com/ecodeclub/eshop/internal/order/internal/job"
	"github.com/ecodeclub/eshop/internal/order/internal/service"
	"github.com/ecodeclub/eshop/internal/order/internal/web"
)

type Handler = web.Handler
type AdminHandler = web.AdminHandler
type Service = service.Service
type CloseExpiredOrdersJob = job.CloseExpiredOrdersJob

type Order = domain.Order
type Item = domain.Item
type Shipping = domain.Shipping
type Status = domain.Status

const (
	StatusPending   = domain.StatusPending
	StatusConfirmed = domain.StatusConfirmed
	StatusShipped   = domain.StatusShipped
	StatusDelivered = domain.StatusDelivered
	StatusCancelled = domain.StatusCancelled
)

var (
	ErrEmptyCart         = service.ErrEmptyCart
	ErrOrderNotFound     = service.ErrOrderNotFound
	ErrInsufficientStock = service.ErrInsufficientStock
	ErrInvalidCoupon     = service.ErrInvalidCoupon
	ErrInvalidStatus     = service.ErrInvalidStatus
)

type Module struct {
	Svc      Service
	Hdl      *Handler
	AdminHdl *AdminHandler
}

func NewCloseExpiredOrdersJob(svc Service, limit int, minute int64, timeout time.Duration) *CloseExpiredOrdersJob {
	return job.NewCloseExpiredOrdersJob(svc, limit, minute, timeout)
}
