package relayer

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

// Contract interfaces of the pre-compiled factory, token and lending contracts.
// Only the members the relayer calls or decodes are declared.
const (
	factoryABIJSON = `[
		{"type":"function","name":"deployBank","stateMutability":"nonpayable","inputs":[
			{"name":"bankAddress","type":"address"},
			{"name":"bankName","type":"string"},
			{"name":"tokenName","type":"string"},
			{"name":"tokenSymbol","type":"string"},
			{"name":"maxSupply","type":"uint256"},
			{"name":"collateralizationRatio","type":"uint256"}],"outputs":[]},
		{"type":"function","name":"getBankDeployment","stateMutability":"view","inputs":[
			{"name":"bankAddress","type":"address"}],"outputs":[
			{"name":"tokenAddress","type":"address"},
			{"name":"lendingAddress","type":"address"}]},
		{"type":"function","name":"owner","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"address"}]},
		{"type":"function","name":"transferOwnership","stateMutability":"nonpayable","inputs":[
			{"name":"newOwner","type":"address"}],"outputs":[]},
		{"type":"event","name":"BankDeployed","anonymous":false,"inputs":[
			{"name":"bankAddress","type":"address","indexed":true},
			{"name":"tokenAddress","type":"address","indexed":false},
			{"name":"lendingAddress","type":"address","indexed":false},
			{"name":"bankName","type":"string","indexed":false}]}
	]`

	tokenABIJSON = `[
		{"type":"function","name":"mint","stateMutability":"nonpayable","inputs":[
			{"name":"to","type":"address"},
			{"name":"amount","type":"uint256"}],"outputs":[]},
		{"type":"function","name":"batchVerifyAddresses","stateMutability":"nonpayable","inputs":[
			{"name":"accounts","type":"address[]"}],"outputs":[]},
		{"type":"function","name":"addAuthorizedVerifier","stateMutability":"nonpayable","inputs":[
			{"name":"verifier","type":"address"}],"outputs":[]},
		{"type":"function","name":"balanceOf","stateMutability":"view","inputs":[
			{"name":"account","type":"address"}],"outputs":[{"name":"","type":"uint256"}]},
		{"type":"function","name":"decimals","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"uint8"}]},
		{"type":"function","name":"symbol","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"string"}]}
	]`

	lendingABIJSON = `[
		{"type":"function","name":"createLoan","stateMutability":"nonpayable","inputs":[
			{"name":"borrower","type":"address"},
			{"name":"collateralAmount","type":"uint256"},
			{"name":"loanAmount","type":"uint256"},
			{"name":"interestRate","type":"uint256"},
			{"name":"duration","type":"uint256"}],"outputs":[]},
		{"type":"event","name":"LoanCreated","anonymous":false,"inputs":[
			{"name":"loanId","type":"uint256","indexed":true},
			{"name":"borrower","type":"address","indexed":true},
			{"name":"loanAmount","type":"uint256","indexed":false},
			{"name":"collateralAmount","type":"uint256","indexed":false}]}
	]`
)

var (
	factoryABI = mustParseABI("factory", factoryABIJSON)
	tokenABI   = mustParseABI("token", tokenABIJSON)
	lendingABI = mustParseABI("lending", lendingABIJSON)
)

func mustParseABI(name, raw string) abi.ABI {
	parsed, err := abi.JSON(strings.NewReader(raw))
	if err != nil {
		panic(fmt.Sprintf("invalid %s ABI: %v", name, err))
	}
	return parsed
}
