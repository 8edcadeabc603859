// internal/repl/cmd_money.go
//
// 金額相關選項：對目前帳戶存款與提款，成功後顯示新餘額。
package repl

import "context"

func (r *REPL) cmdDeposit(ctx context.Context) error {
	a, err := r.currentAccount()
	if err != nil {
		return err
	}
	amt, err := r.readAmount(ctx, "Enter deposit amount: ")
	if err != nil {
		return err
	}
	bal, err := r.ledger.Deposit(a.Number, amt)
	if err != nil {
		return err
	}
	r.printf("\nSUCCESS: Deposited %s\n", amt.Display())
	r.printf("  Account: #%s - %s\n", a.Number, a.Name)
	r.printf("  New balance: %s\n\n", bal.Display())
	return nil
}

func (r *REPL) cmdWithdraw(ctx context.Context) error {
	a, err := r.currentAccount()
	if err != nil {
		return err
	}
	amt, err := r.readAmount(ctx, "Enter withdrawal amount: ")
	if err != nil {
		return err
	}
	bal, err := r.ledger.Withdraw(a.Number, amt)
	if err != nil {
		return err
	}
	r.printf("\nSUCCESS: Withdrew %s\n", amt.Display())
	r.printf("  Account: #%s - %s\n", a.Number, a.Name)
	r.printf("  New balance: %s\n\n", bal.Display())
	return nil
}
