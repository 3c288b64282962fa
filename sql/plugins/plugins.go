package plugins

import (
	"fmt"

	"github.com/spacemeshos/go-pluginaccount/common/types"
	"github.com/spacemeshos/go-pluginaccount/sql"
)

// Add enables plugin for the account. Adding an enabled plugin is a no-op.
func Add(db sql.Executor, account types.Address, plugin types.Felt) error {
	if _, err := db.Exec(`insert into plugins (account, plugin) values (?1, ?2)
		on conflict do nothing;`,
		func(stmt *sql.Statement) {
			stmt.BindBytes(1, account.Bytes())
			stmt.BindBytes(2, plugin.Bytes())
		}, nil); err != nil {
		return fmt.Errorf("add plugin %v to %v: %w", plugin, account, err)
	}
	return nil
}

// Remove disables plugin for the account. Removing a plugin that is not
// enabled is a no-op.
func Remove(db sql.Executor, account types.Address, plugin types.Felt) error {
	if _, err := db.Exec("delete from plugins where account = ?1 and plugin = ?2;",
		func(stmt *sql.Statement) {
			stmt.BindBytes(1, account.Bytes())
			stmt.BindBytes(2, plugin.Bytes())
		}, nil); err != nil {
		return fmt.Errorf("remove plugin %v from %v: %w", plugin, account, err)
	}
	return nil
}

// Has returns true if plugin is enabled for the account.
func Has(db sql.Executor, account types.Address, plugin types.Felt) (bool, error) {
	rows, err := db.Exec("select 1 from plugins where account = ?1 and plugin = ?2;",
		func(stmt *sql.Statement) {
			stmt.BindBytes(1, account.Bytes())
			stmt.BindBytes(2, plugin.Bytes())
		}, nil)
	if err != nil {
		return false, fmt.Errorf("has plugin %v for %v: %w", plugin, account, err)
	}
	return rows > 0, nil
}

// All returns plugins enabled for the account.
func All(db sql.Executor, account types.Address) ([]types.Felt, error) {
	var rst []types.Felt
	if _, err := db.Exec("select plugin from plugins where account = ?1 order by plugin;",
		func(stmt *sql.Statement) {
			stmt.BindBytes(1, account.Bytes())
		},
		func(stmt *sql.Statement) bool {
			var plugin types.Felt
			stmt.ColumnBytes(0, plugin[:])
			rst = append(rst, plugin)
			return true
		}); err != nil {
		return nil, fmt.Errorf("plugins for %v: %w", account, err)
	}
	return rst, nil
}
