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

package web

type AddFavoriteReq struct {
	SPUID int64  `json:"spuId"`
	Note  string `json:"note"`
}

type UpdateFavoriteReq struct {
	SPUID int64  `json:"spuId"`
	Note  string `json:"note"`
}

type FavoriteIDReq struct {
	SPUID int64 `json:"spuId"`
}

type CheckFavoriteResp struct {
	Favorited bool `json:"favorited"`
}

type Favorite struct {
	SPUID     int64  `json:"spuId"`
	Note      string `json:"note"`
	Name      string `json:"name"`
	Category  string `json:"category"`
	Price     int64  `json:"price"`
	Thumbnail string `json:"thumbnail"`
	Available bool   `json:"available"`
	Ctime     int64  `json:"ctime"`
}

type FavoritesResp struct {
	Favorites []Favorite `json:"favorites"`
}
