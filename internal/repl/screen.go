// internal/repl/screen.go
//
// 畫面呈現：選單、清除畫面、動作後的暫停，以及將錯誤轉為使用者訊息。
package repl

import (
	"context"
	"errors"
	"strings"
	"time"

	"simplebank/internal/bank"
)

// ANSI：游標移到左上並清除整個畫面。
const clearScreen = "\033[H\033[2J"

var (
	doubleRule = strings.Repeat("=", 40)
	singleRule = strings.Repeat("-", 40)
)

func (r *REPL) showMenu() {
	if r.opts.Clear {
		r.printf("%s", clearScreen)
	}
	r.printf("%s\n          Simple Banking System\n%s\n", doubleRule, doubleRule)
	if a, err := r.currentAccount(); err == nil {
		r.printf("Current account: #%s - %s\n", a.Number, a.Name)
	} else {
		r.printf("Current account: none\n")
	}
	r.printf(`%s
1. Create new account
2. Switch account
3. Deposit money
4. Withdraw money
5. Account details
6. Exit
%s
`, singleRule, singleRule)
}

// pause 於動作後暫停 opts.Pause；等待中被中斷則回傳 errInterrupted。
func (r *REPL) pause(ctx context.Context) error {
	if r.opts.Pause <= 0 {
		return nil
	}
	t := time.NewTimer(r.opts.Pause)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return errInterrupted
	case <-t.C:
		return nil
	}
}

// report 將已知錯誤轉為使用者訊息。回傳 false 表示無法辨識，應由上層處理。
func (r *REPL) report(err error) bool {
	var (
		insufficient *bank.InsufficientFundsError
		overflow     *bank.BalanceOverflowError
		badInput     *InputFormatError
	)
	switch {
	case errors.Is(err, errNoAccount):
		r.printf("\nNo account selected. Create or switch to an account first.\n\n")
	case errors.As(err, &insufficient):
		r.printf("\nError: Insufficient funds. Available balance: %s\n\n", insufficient.Available.Display())
	case errors.As(err, &overflow):
		r.printf("\nError: Deposit of %s would exceed the maximum balance. Current balance: %s\n\n",
			overflow.Amount.Display(), overflow.Balance.Display())
	case errors.As(err, &badInput):
		r.printf("\nError: %v\n\n", badInput)
	case errors.Is(err, bank.ErrInvalidName),
		errors.Is(err, bank.ErrNegativeAmount),
		errors.Is(err, bank.ErrInvalidAmount),
		errors.Is(err, bank.ErrAccountNotFound):
		r.printf("\nError: %v\n\n", err)
	default:
		return false
	}
	r.logger.Debug("request rejected", "error", err)
	return true
}
