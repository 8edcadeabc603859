// internal/repl/cmd_account.go
//
// 帳戶相關選項：開戶、切換目前帳戶、顯示帳戶明細。
package repl

import (
	"context"
	"errors"

	"simplebank/internal/bank"
)

// errNoAccount 代表尚未選取目前帳戶。
var errNoAccount = errors.New("no account selected")

// cmdCreate 開戶，並把新帳戶設為目前帳戶。
func (r *REPL) cmdCreate(ctx context.Context) error {
	name, err := r.readLine(ctx, "Enter account holder's name: ")
	if err != nil {
		return err
	}
	// 先擋下空白戶名，不必再詢問初始餘額
	if name == "" {
		return bank.ErrInvalidName
	}
	initial, err := r.readAmount(ctx, "Enter initial balance: ")
	if err != nil {
		return err
	}

	a, err := r.ledger.Create(name, initial)
	if err != nil {
		return err
	}
	r.current = a.Number

	r.printf("\nSUCCESS: Account created!\n")
	r.printf("  Account Number : %s\n", a.Number)
	r.printf("  Holder         : %s\n", a.Name)
	r.printf("  Initial Balance: %s\n\n", a.Balance.Display())
	return nil
}

// cmdSwitch 列出所有帳戶並切換目前帳戶。
func (r *REPL) cmdSwitch(ctx context.Context) error {
	if r.ledger.Len() == 0 {
		r.printf("\nNo accounts yet. Create an account first.\n\n")
		return nil
	}

	r.printf("\nAccounts:\n")
	for _, a := range r.ledger.List() {
		marker := " "
		if a.Number == r.current {
			marker = "*"
		}
		r.printf(" %s #%-6s %-24s %18s\n", marker, a.Number, a.Name, a.Balance.Display())
	}
	r.printf("\n")

	n, err := r.readAccountNumber(ctx, "Enter account number: ")
	if err != nil {
		return err
	}
	a, err := r.ledger.Get(n)
	if err != nil {
		return err
	}
	r.current = a.Number
	r.printf("\nSwitched to account #%s - %s\n\n", a.Number, a.Name)
	return nil
}

// cmdDetails 顯示目前帳戶的戶名與餘額。
func (r *REPL) cmdDetails() error {
	a, err := r.currentAccount()
	if err != nil {
		return err
	}
	bal, err := r.ledger.Balance(a.Number)
	if err != nil {
		return err
	}
	r.printf("\nAccount: #%s - %s\n", a.Number, a.Name)
	r.printf("Current balance: %s\n\n", bal.Display())
	return nil
}

// currentAccount 回傳目前帳戶的快照；未選取時回傳 errNoAccount。
func (r *REPL) currentAccount() (bank.Account, error) {
	if r.current == 0 {
		return bank.Account{}, errNoAccount
	}
	return r.ledger.Get(r.current)
}
