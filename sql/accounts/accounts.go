package accounts

import (
	"fmt"

	"github.com/spacemeshos/go-pluginaccount/common/types"
	"github.com/spacemeshos/go-pluginaccount/sql"
)

// Has the account in the database.
func Has(db sql.Executor, address types.Address) (bool, error) {
	rows, err := db.Exec("select 1 from accounts where address = ?1;",
		func(stmt *sql.Statement) {
			stmt.BindBytes(1, address.Bytes())
		}, nil,
	)
	if err != nil {
		return false, fmt.Errorf("has address %v: %w", address, err)
	}
	return rows > 0, nil
}

// Get account state for an address. Returns sql.ErrNotFound if account
// was never initialized.
func Get(db sql.Executor, address types.Address) (types.Account, error) {
	account := types.Account{Address: address}
	rows, err := db.Exec("select public_key, nonce, created from accounts where address = ?1;",
		func(stmt *sql.Statement) {
			stmt.BindBytes(1, address.Bytes())
		},
		func(stmt *sql.Statement) bool {
			stmt.ColumnBytes(0, account.PublicKey[:])
			account.Nonce = uint64(stmt.ColumnInt64(1))
			account.Created = stmt.ColumnInt64(2)
			return false
		},
	)
	if err != nil {
		return types.Account{}, fmt.Errorf("load %v: %w", address, err)
	}
	if rows == 0 {
		return types.Account{}, fmt.Errorf("load %v: %w", address, sql.ErrNotFound)
	}
	return account, nil
}

// Create inserts state for a new account. Returns sql.ErrObjectExists
// if the address is already taken.
func Create(db sql.Executor, account *types.Account) error {
	_, err := db.Exec(`insert into accounts (address, public_key, nonce, created)
	values (?1, ?2, ?3, ?4);`, func(stmt *sql.Statement) {
		stmt.BindBytes(1, account.Address.Bytes())
		stmt.BindBytes(2, account.PublicKey.Bytes())
		stmt.BindInt64(3, int64(account.Nonce))
		stmt.BindInt64(4, account.Created)
	}, nil)
	if err != nil {
		return fmt.Errorf("insert account %v: %w", account.Address, err)
	}
	return nil
}

func update(db sql.Executor, address types.Address, query string, enc sql.Encoder) error {
	rows, err := db.Exec(query, enc, nil)
	if err != nil {
		return fmt.Errorf("update %v: %w", address, err)
	}
	if rows == 0 {
		return fmt.Errorf("update %v: %w", address, sql.ErrNotFound)
	}
	return nil
}

// SetPublicKey replaces the signer key of an existing account.
func SetPublicKey(db sql.Executor, address types.Address, key types.Felt) error {
	return update(db, address, "update accounts set public_key = ?2 where address = ?1 returning 1;",
		func(stmt *sql.Statement) {
			stmt.BindBytes(1, address.Bytes())
			stmt.BindBytes(2, key.Bytes())
		},
	)
}

// SetNonce overwrites the nonce of an existing account.
func SetNonce(db sql.Executor, address types.Address, nonce uint64) error {
	return update(db, address, "update accounts set nonce = ?2 where address = ?1 returning 1;",
		func(stmt *sql.Statement) {
			stmt.BindBytes(1, address.Bytes())
			stmt.BindInt64(2, int64(nonce))
		},
	)
}

// All returns state of every account ordered by address.
func All(db sql.Executor) ([]*types.Account, error) {
	var rst []*types.Account
	_, err := db.Exec("select address, public_key, nonce, created from accounts order by address;",
		nil,
		func(stmt *sql.Statement) bool {
			var account types.Account
			stmt.ColumnBytes(0, account.Address[:])
			stmt.ColumnBytes(1, account.PublicKey[:])
			account.Nonce = uint64(stmt.ColumnInt64(2))
			account.Created = stmt.ColumnInt64(3)
			rst = append(rst, &account)
			return true
		},
	)
	if err != nil {
		return nil, fmt.Errorf("load all accounts: %w", err)
	}
	return rst, nil
}
