package relayer

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// findBankDeployed extracts token and lending addresses from the factory's BankDeployed event for bank
func findBankDeployed(logs []*types.Log, factory, bank common.Address) (token, lending common.Address, ok bool) {
	event := factoryABI.Events["BankDeployed"]
	for _, l := range logs {
		if l == nil || l.Address != factory || len(l.Topics) < 2 || l.Topics[0] != event.ID {
			continue
		}
		if common.BytesToAddress(l.Topics[1].Bytes()) != bank {
			continue
		}

		values, err := event.Inputs.NonIndexed().Unpack(l.Data)
		if err != nil || len(values) < 2 {
			continue
		}
		token, tokenOK := values[0].(common.Address)
		lending, lendingOK := values[1].(common.Address)
		if !tokenOK || !lendingOK {
			continue
		}
		return token, lending, true
	}
	return common.Address{}, common.Address{}, false
}

// findLoanID extracts the loan ID from the lending pool's LoanCreated event
func findLoanID(logs []*types.Log, lending common.Address) (*string, bool) {
	event := lendingABI.Events["LoanCreated"]
	for _, l := range logs {
		if l == nil || l.Address != lending || len(l.Topics) < 2 || l.Topics[0] != event.ID {
			continue
		}
		id := new(big.Int).SetBytes(l.Topics[1].Bytes()).String()
		return &id, true
	}
	return nil, false
}
