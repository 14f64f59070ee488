// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store defines the credit ledger and vote tally interfaces.

Two implementations exist:

  - sqlstore: database/sql, for PostgreSQL and SQLite
  - memstore: in-process maps guarded by a mutex

Redemption debits credit and records votes in one transaction:

	err := st.WithTx(ctx, func(tx store.Tx) error {
		ok, err := tx.TryDebit(ctx, phone, 1)
		if err != nil {
			return err
		}
		if !ok {
			return store.ErrInsufficientCredit
		}
		return tx.Record(ctx, candidate, phone)
	})

Either both the debit and the vote are committed or neither is.
*/
package store
