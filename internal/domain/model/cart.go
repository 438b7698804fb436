package model

import "encoding/json"

// Cart はセッションに保持する「商品ID→数量」のマッピング。
// DBには保存しない（セッション切れで消える）。
type Cart map[int64]int64

func NewCart() Cart {
	return Cart{}
}

// 同一商品は数量加算
func (c Cart) Add(productID int64, quantity int64) {
	c[productID] += quantity
}

// Count は商品の種類数（数量の合計ではない）。
func (c Cart) Count() int {
	return len(c)
}

func (c Cart) IsEmpty() bool {
	return len(c) == 0
}

// セッションにはJSON文字列として保存する。
// mapのキーはJSONでは文字列になる（"1": 2 の形）。
func (c Cart) Encode() (string, error) {
	b, err := json.Marshal(c)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// DecodeCart はセッション値からカートを復元する。
// 壊れた値は空カート扱いにする。
func DecodeCart(s string) Cart {
	if s == "" {
		return NewCart()
	}

	var c Cart
	if err := json.Unmarshal([]byte(s), &c); err != nil {
		return NewCart()
	}
	if c == nil {
		return NewCart()
	}
	return c
}
