// Package storage persists felt slots of contracts and plugins.
//
// Slots are scoped by owner (contract address) and namespace. Plugins
// executing in the context of an account use the account as owner and
// their class id as namespace.
package storage

import (
	"fmt"

	"github.com/spacemeshos/go-pluginaccount/common/types"
	"github.com/spacemeshos/go-pluginaccount/sql"
)

// Get value of the slot. Unset slots read as zero.
func Get(db sql.Executor, owner types.Address, namespace, slot types.Felt) (types.Felt, error) {
	var value types.Felt
	if _, err := db.Exec(`select value from storage
		where owner = ?1 and namespace = ?2 and slot = ?3;`,
		func(stmt *sql.Statement) {
			stmt.BindBytes(1, owner.Bytes())
			stmt.BindBytes(2, namespace.Bytes())
			stmt.BindBytes(3, slot.Bytes())
		},
		func(stmt *sql.Statement) bool {
			stmt.ColumnBytes(0, value[:])
			return false
		}); err != nil {
		return types.Felt{}, fmt.Errorf("get %v/%v/%v: %w", owner, namespace, slot, err)
	}
	return value, nil
}

// Set value of the slot. Setting zero deletes the slot.
func Set(db sql.Executor, owner types.Address, namespace, slot, value types.Felt) error {
	if value.IsZero() {
		return Delete(db, owner, namespace, slot)
	}
	if _, err := db.Exec(`insert into storage (owner, namespace, slot, value)
		values (?1, ?2, ?3, ?4)
		on conflict (owner, namespace, slot) do update set value = ?4;`,
		func(stmt *sql.Statement) {
			stmt.BindBytes(1, owner.Bytes())
			stmt.BindBytes(2, namespace.Bytes())
			stmt.BindBytes(3, slot.Bytes())
			stmt.BindBytes(4, value.Bytes())
		}, nil); err != nil {
		return fmt.Errorf("set %v/%v/%v: %w", owner, namespace, slot, err)
	}
	return nil
}

// Delete the slot.
func Delete(db sql.Executor, owner types.Address, namespace, slot types.Felt) error {
	if _, err := db.Exec(`delete from storage
		where owner = ?1 and namespace = ?2 and slot = ?3;`,
		func(stmt *sql.Statement) {
			stmt.BindBytes(1, owner.Bytes())
			stmt.BindBytes(2, namespace.Bytes())
			stmt.BindBytes(3, slot.Bytes())
		}, nil); err != nil {
		return fmt.Errorf("delete %v/%v/%v: %w", owner, namespace, slot, err)
	}
	return nil
}

// Count returns number of set slots in the namespace.
func Count(db sql.Executor, owner types.Address, namespace types.Felt) (int, error) {
	var n int
	if _, err := db.Exec("select count(*) from storage where owner = ?1 and namespace = ?2;",
		func(stmt *sql.Statement) {
			stmt.BindBytes(1, owner.Bytes())
			stmt.BindBytes(2, namespace.Bytes())
		},
		func(stmt *sql.Statement) bool {
			n = stmt.ColumnInt(0)
			return false
		}); err != nil {
		return 0, fmt.Errorf("count %v/%v: %w", owner, namespace, err)
	}
	return n, nil
}
