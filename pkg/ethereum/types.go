package ethereum

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// Transaction is the part of an on-chain transaction needed to match a payment
type Transaction struct {
	Hash    common.Hash
	From    common.Address
	To      *common.Address // nil for contract creation
	Value   *big.Int
	ChainID *big.Int
	Pending bool
}

// Receipt is the execution outcome of a mined transaction
type Receipt struct {
	TxHash      common.Hash
	Status      uint64
	BlockNumber uint64
	Logs        []*types.Log
}

// Succeeded reports whether the transaction executed without reverting
func (r *Receipt) Succeeded() bool {
	return r.Status == types.ReceiptStatusSuccessful
}

// Confirmations returns how many blocks, inclusive, have been built on top of
// the receipt's block as of head. A head behind the receipt yields zero.
func (r *Receipt) Confirmations(head uint64) int64 {
	if head < r.BlockNumber {
		return 0
	}
	return int64(head-r.BlockNumber) + 1
}
