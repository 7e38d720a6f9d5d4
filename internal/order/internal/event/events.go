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

const OrderEventName = "order_events"

const (
	ActionCreated   = "created"
	ActionCancelled = "cancelled"
)

type OrderEvent struct {
	OrderID int64  `json:"orderId"`
	SN      string `json:"sn"`
	UID     int64  `json:"uid"`
	Action  string `json:"action"`
	// PaymentPrice 折后应付金额,单位为分
	PaymentPrice int64 `json:"paymentPrice"`
}
