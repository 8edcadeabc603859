// internal/bank/errors.go
//
// 本檔集中定義「領域錯誤（domain errors）」。
// 每個 Ledger 操作要嘛成功，要嘛回傳其中恰好一種錯誤，且不改變任何狀態。
// 呼叫端以 errors.Is / errors.As 判斷錯誤種類，由上層（REPL）轉為使用者訊息。

package bank

import (
	"errors"
	"fmt"

	"simplebank/internal/money"
)

var (
	// ErrInvalidName 代表戶名去除前後空白後為空。
	ErrInvalidName = errors.New("account holder name cannot be empty")

	// ErrNegativeAmount 代表開戶初始餘額為負。
	ErrNegativeAmount = errors.New("initial balance cannot be negative")

	// ErrInvalidAmount 代表存提款金額 <= 0。
	ErrInvalidAmount = errors.New("amount must be positive")

	// ErrAccountNotFound 代表帳戶不存在。
	ErrAccountNotFound = errors.New("account not found")

	// ErrInsufficientFunds 代表提款金額超過餘額。
	// 實際回傳的是 *InsufficientFundsError，可用 errors.Is 比對本錯誤。
	ErrInsufficientFunds = errors.New("insufficient funds")
)

// InsufficientFundsError 記錄檢查當下的可用餘額。
type InsufficientFundsError struct {
	Account   AccountNumber
	Requested money.Amount
	Available money.Amount
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("account %s: %v: requested %s, available %s",
		e.Account, ErrInsufficientFunds, e.Requested, e.Available)
}

// Is 讓 errors.Is(err, ErrInsufficientFunds) 成立。
func (e *InsufficientFundsError) Is(target error) bool {
	return target == ErrInsufficientFunds
}

// BalanceOverflowError 代表存款後餘額將超出可表示範圍。
// 屬於 ErrInvalidAmount 的一種：errors.Is(err, ErrInvalidAmount) 成立。
type BalanceOverflowError struct {
	Account AccountNumber
	Amount  money.Amount
	Balance money.Amount
}

func (e *BalanceOverflowError) Error() string {
	return fmt.Sprintf("account %s: deposit of %s would exceed the maximum balance (current balance %s)",
		e.Account, e.Amount, e.Balance)
}

// Is 讓 errors.Is(err, ErrInvalidAmount) 成立。
func (e *BalanceOverflowError) Is(target error) bool {
	return target == ErrInvalidAmount
}
