package core

import (
	"github.com/spacemeshos/go-pluginaccount/common/types"
	"github.com/spacemeshos/go-pluginaccount/hash"
)

// SelectorFromName computes selector as blake3 hash of the name
// truncated to 250 bits.
func SelectorFromName(name string) Felt {
	return types.Hash32(hash.Sum([]byte(name))).Felt()
}

var (
	// SelectorUsePlugin is the sentinel selector of the first entry
	// that delegates validation to a plugin.
	SelectorUsePlugin = SelectorFromName("use_plugin")

	SelectorInitialize      = SelectorFromName("initialize")
	SelectorExecuteBatch    = SelectorFromName("execute_batch")
	SelectorSetPublicKey    = SelectorFromName("set_public_key")
	SelectorAddPlugin       = SelectorFromName("add_plugin")
	SelectorRemovePlugin    = SelectorFromName("remove_plugin")
	SelectorExecuteOnPlugin = SelectorFromName("execute_on_plugin")
	SelectorIsPlugin        = SelectorFromName("is_plugin")
	SelectorVerifySignature = SelectorFromName("verify_signature")
	SelectorGetNonce        = SelectorFromName("get_nonce")
	SelectorGetPublicKey    = SelectorFromName("get_public_key")
	SelectorGetVersion      = SelectorFromName("get_version")
)
