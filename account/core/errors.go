package core

import "errors"

var (
	// ErrInternal raised on any unexpected failure of the environment.
	ErrInternal = errors.New("internal")
	// ErrAlreadyInitialized raised if the account constructor runs more than once.
	ErrAlreadyInitialized = errors.New("account: already initialized")
	// ErrNullSigner raised if the signer key is zero.
	ErrNullSigner = errors.New("account: signer cannot be null")
	// ErrNotInitialized raised if a batch is submitted before initialization.
	ErrNotInitialized = errors.New("account: not initialized")
	// ErrNonceMismatch raised if the batch nonce is not the stored one.
	ErrNonceMismatch = errors.New("account: nonce invalid")
	// ErrInvalidSignature raised if the signature doesn't match the signer key.
	ErrInvalidSignature = errors.New("account: invalid signature")
	// ErrReentrantCall raised if the batch entry point is reached from another contract.
	ErrReentrantCall = errors.New("account: no reentrant call")
	// ErrNotSelf raised if a privileged operation is called by anyone but the account.
	ErrNotSelf = errors.New("account: only self")
	// ErrNullPlugin raised if the plugin id is zero.
	ErrNullPlugin = errors.New("account: plugin cannot be null")
	// ErrUnknownPlugin raised if the plugin is not enabled or its code is not registered.
	ErrUnknownPlugin = errors.New("account: unknown plugin")
	// ErrMalformedBatch raised if the batch can't be decoded.
	ErrMalformedBatch = errors.New("account: malformed batch")

	// ErrUnknownSelector raised if the contract doesn't expose the selector.
	ErrUnknownSelector = errors.New("unknown selector")
	// ErrUnknownContract raised if nothing is deployed at the call target.
	ErrUnknownContract = errors.New("unknown contract")
	// ErrReadOnlyStorage raised on writes to storage that is borrowed for validation.
	ErrReadOnlyStorage = errors.New("storage is read-only")
	// ErrArguments raised if call arguments don't match what the selector expects.
	ErrArguments = errors.New("invalid arguments")
)
