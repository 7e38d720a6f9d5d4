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

package event

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ecodeclub/eshop/internal/notification/internal/domain"
	"github.com/ecodeclub/eshop/internal/notification/internal/service"
	"github.com/ecodeclub/mq-api"
	"github.com/gotomicro/ego/core/elog"
)

// OrderEventConsumer 消费订单事件,为下单和取消生成站内通知
type OrderEventConsumer struct {
	svc      service.Service
	consumer mq.Consumer
	logger   *elog.Component
}

func NewOrderEventConsumer(svc service.Service, q mq.MQ) (*OrderEventConsumer, error) {
	groupID := "notification"
	consumer, err := q.Consumer(orderEvents, groupID)
	if err != nil {
		return nil, err
	}
	return &OrderEventConsumer{
		svc:      svc,
		consumer: consumer,
		logger:   elog.DefaultLogger,
	}, nil
}

// Start 后面要考虑借助 ctx 来优雅退出
func (c *OrderEventConsumer) Start(ctx context.Context) {
	go func() {
		for {
			er := c.Consume(ctx)
			if er != nil {
				c.logger.Error("消费订单事件失败", elog.FieldErr(er))
			}
		}
	}()
}

func (c *OrderEventConsumer) Consume(ctx context.Context) error {
	msg, err := c.consumer.Consume(ctx)
	if err != nil {
		return fmt.Errorf("获取消息失败: %w", err)
	}

	var evt OrderEvent
	err = json.Unmarshal(msg.Value, &evt)
	if err != nil {
		return fmt.Errorf("解析消息失败: %w", err)
	}

	var title, message string
	switch evt.Action {
	case actionCreated:
		title = "订单创建成功"
		message = fmt.Sprintf("您的订单 %s 已创建,应付金额 %.2f 元,请尽快完成支付。",
			evt.SN, float64(evt.PaymentPrice)/100)
	case actionCancelled:
		title = "订单已取消"
		message = fmt.Sprintf("您的订单 %s 已取消,相关库存与优惠券已恢复。", evt.SN)
	default:
		c.logger.Warn("未知的订单事件",
			elog.String("action", evt.Action),
			elog.String("sn", evt.SN))
		return nil
	}

	err = c.svc.SendToUser(ctx, evt.UID, domain.TypeOrder, title, message)
	if err != nil {
		c.logger.Error("生成订单通知失败",
			elog.FieldErr(err),
			elog.Int64("uid", evt.UID),
			elog.String("sn", evt.SN))
	}
	return err
}
