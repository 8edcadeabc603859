// internal/money/money.go
//
// Package money 定義帳務系統使用的金額型別。
// 金額一律以 int64 的最小貨幣單位（分）儲存，避免浮點誤差；
// 使用者輸入以 shopspring/decimal 做精確的十進位解析，
// 顯示用的千分位格式交由 golang.org/x/text 處理，不影響內部表示。
package money

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Scale 為小數位數（2 = 分）。
const Scale = 2

const unit = 100

// 指數超出此範圍的輸入直接拒絕，避免 decimal 在比較時放大成巨大整數。
const maxExponent = 64

// Amount 代表一筆金額，單位為分。零值即 0.00。
type Amount int64

var (
	// ErrSyntax 代表輸入不是合法的十進位數字。
	ErrSyntax = errors.New("not a decimal number")

	// ErrPrecision 代表小數超過兩位。
	ErrPrecision = errors.New("at most two fraction digits allowed")

	// ErrRange 代表金額超出可表示範圍。
	ErrRange = errors.New("amount out of range")
)

var (
	maxCents = decimal.NewFromInt(math.MaxInt64)
	minCents = decimal.NewFromInt(math.MinInt64)
)

var printer = message.NewPrinter(language.English)

// Parse 將使用者輸入（例如 "100", "150.5", "0.01"）轉為 Amount。
// 前後空白會被忽略；不接受超過兩位小數，也不做四捨五入。
// 錯誤為 ErrSyntax、ErrPrecision 或 ErrRange 之一。
func Parse(s string) (Amount, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return 0, ErrSyntax
	}
	return FromDecimal(d)
}

// MustParse 與 Parse 相同，失敗時 panic。僅供常數與測試使用。
func MustParse(s string) Amount {
	a, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return a
}

// FromDecimal 將 decimal 精確轉換為 Amount。
func FromDecimal(d decimal.Decimal) (Amount, error) {
	if exp := d.Exponent(); exp > maxExponent || exp < -maxExponent {
		return 0, ErrRange
	}
	if !d.Equal(d.Truncate(Scale)) {
		return 0, ErrPrecision
	}
	cents := d.Shift(Scale)
	if cents.GreaterThan(maxCents) || cents.LessThan(minCents) {
		return 0, ErrRange
	}
	return Amount(cents.IntPart()), nil
}

// FromCents 以「分」建立金額。
func FromCents(c int64) Amount { return Amount(c) }

// Cents 回傳以「分」為單位的整數值。
func (a Amount) Cents() int64 { return int64(a) }

// Decimal 回傳對應的 decimal 值（scale 固定為 2）。
func (a Amount) Decimal() decimal.Decimal {
	return decimal.New(int64(a), -Scale)
}

// Add 回傳 a+b；若溢位則 ok 為 false。
func (a Amount) Add(b Amount) (sum Amount, ok bool) {
	sum = a + b
	if (b > 0 && sum < a) || (b < 0 && sum > a) {
		return 0, false
	}
	return sum, true
}

// String 回傳固定兩位小數、無千分位的表示，例如 "1234.50"。
func (a Amount) String() string {
	return a.Decimal().StringFixed(Scale)
}

// Display 回傳顯示用格式：兩位小數並加上千分位，例如 "1,234.50"。
func (a Amount) Display() string {
	c := int64(a)
	whole, frac := c/unit, c%unit
	sign := ""
	if c < 0 {
		sign = "-"
		whole, frac = -whole, -frac
	}
	return sign + printer.Sprintf("%d", whole) + fmt.Sprintf(".%02d", frac)
}
