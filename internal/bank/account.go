// Package bank 定義核心領域模型與業務規則。
// 本檔定義 Account 與帳號型別，不含任何輸入輸出或畫面細節。

package bank

import (
	"strconv"

	"simplebank/internal/money"
)

// AccountNumber 為帳號：正整數，自 1 起依序配發，配發後不變、不重複使用。
type AccountNumber int64

func (n AccountNumber) String() string {
	return strconv.FormatInt(int64(n), 10)
}

// Account represents a bank account.
// Ledger 對外只回傳值拷貝；餘額只能透過 Ledger 的方法變更。
type Account struct {
	Number  AccountNumber
	Name    string
	Balance money.Amount
}
