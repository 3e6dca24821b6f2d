package ethereum

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

const erc20TransferABI = `[{
	"anonymous": false,
	"type": "event",
	"name": "Transfer",
	"inputs": [
		{"indexed": true, "name": "from", "type": "address"},
		{"indexed": true, "name": "to", "type": "address"},
		{"indexed": false, "name": "value", "type": "uint256"}
	]
}]`

var transferEvent = mustParseEvent(erc20TransferABI, "Transfer")

// TransferEventID is topic0 of the ERC-20 Transfer(address,address,uint256) event
var TransferEventID = transferEvent.ID

// TransferLog is a decoded ERC-20 Transfer event
type TransferLog struct {
	Token common.Address
	From  common.Address
	To    common.Address
	Value *big.Int
}

// DecodeTransferLog decodes log as an ERC-20 Transfer event. It returns false
// for logs with a different signature, a different topic layout (ERC-721
// transfers index the token id) or malformed data.
func DecodeTransferLog(log *types.Log) (TransferLog, bool) {
	if log == nil || len(log.Topics) != 3 || log.Topics[0] != transferEvent.ID {
		return TransferLog{}, false
	}

	from, ok := topicAddress(log.Topics[1])
	if !ok {
		return TransferLog{}, false
	}
	to, ok := topicAddress(log.Topics[2])
	if !ok {
		return TransferLog{}, false
	}

	values, err := transferEvent.Inputs.NonIndexed().Unpack(log.Data)
	if err != nil || len(values) != 1 {
		return TransferLog{}, false
	}
	value, ok := values[0].(*big.Int)
	if !ok {
		return TransferLog{}, false
	}

	return TransferLog{
		Token: log.Address,
		From:  from,
		To:    to,
		Value: value,
	}, true
}

// topicAddress rejects topics whose upper 12 bytes are not zero
func topicAddress(topic common.Hash) (common.Address, bool) {
	for _, b := range topic[:common.HashLength-common.AddressLength] {
		if b != 0 {
			return common.Address{}, false
		}
	}
	return common.BytesToAddress(topic[common.HashLength-common.AddressLength:]), true
}

func mustParseEvent(definition, name string) abi.Event {
	parsed, err := abi.JSON(strings.NewReader(definition))
	if err != nil {
		panic(fmt.Sprintf("invalid %s ABI: %v", name, err))
	}
	event, ok := parsed.Events[name]
	if !ok {
		panic(fmt.Sprintf("event %s missing from ABI", name))
	}
	return event
}
