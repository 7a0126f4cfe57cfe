// Package main provides operator commands for the relayer wallet.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"go.uber.org/zap"

	"github.com/finara-labs/finara-backend/internal/adapter"
	"github.com/finara-labs/finara-backend/internal/config"
	"github.com/finara-labs/finara-backend/internal/logger"
	"github.com/finara-labs/finara-backend/internal/relayer"
)

const commandTimeout = 3 * time.Minute

func main() {
	globalFlags := flag.NewFlagSet("relayer-tool", flag.ExitOnError)
	configFile := globalFlags.String("config", "", "Path to configuration file")
	envPath := globalFlags.String("env", "config/", "Path to environment files")

	authorizeCmd := flag.NewFlagSet("authorize", flag.ExitOnError)
	authorizeToken := authorizeCmd.String("token", "", "Bank token address to register the relayer on")

	transferCmd := flag.NewFlagSet("transfer-ownership", flag.ExitOnError)
	ownerKey := transferCmd.String("owner-key", "", "Private key of the current factory owner")

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	if command == "help" {
		printUsage()
		return
	}
	if command == "generate-wallet" {
		handleGenerateWallet()
		return
	}

	args := os.Args[2:]
	switch command {
	case "authorize":
		_ = authorizeCmd.Parse(args)
		args = authorizeCmd.Args()
	case "transfer-ownership":
		_ = transferCmd.Parse(args)
		args = transferCmd.Args()
	}
	_ = globalFlags.Parse(args)

	config.ChdirRepoRoot()
	cfg, err := config.LoadRelayerToolConfig(*configFile, *envPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Initialize(logger.Config{Debug: cfg.Debug}); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Flush(time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	relayerConfig := relayer.Config{
		RPCURL:              cfg.Ethereum.RPCURL,
		ChainID:             cfg.Ethereum.ChainID,
		PrivateKey:          cfg.Ethereum.RelayerPrivateKey,
		FactoryAddress:      cfg.Ethereum.FactoryAddress,
		ConfirmationTimeout: cfg.Ethereum.ConfirmationTimeout,
		SubmitTimeout:       cfg.Ethereum.SubmitTimeout,
		QueueSize:           cfg.Ethereum.QueueSize,
		DialTimeout:         cfg.Ethereum.DialTimeout,
	}

	switch command {
	case "address":
		err = handleAddress(relayerConfig)
	case "network":
		err = handleNetwork(ctx, relayerConfig)
	case "balance":
		err = handleBalance(ctx, relayerConfig)
	case "authorize":
		err = handleAuthorize(ctx, relayerConfig, *authorizeToken)
	case "factory-owner":
		err = handleFactoryOwner(ctx, relayerConfig)
	case "transfer-ownership":
		err = handleTransferOwnership(ctx, relayerConfig, *ownerKey)
	default:
		fmt.Printf("Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		logger.Error(err, zap.String("command", command))
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`Finara Relayer Tool

Usage:
  relayer-tool <command> [options]

Commands:
  generate-wallet   Create a new relayer key pair
  address           Print the configured relayer address
  balance           Print the relayer's native balance
  network           Print chain ID, latest block and fee data
  authorize         Register the relayer as KYC verifier on a bank token
    -token <addr>   Bank token address
  factory-owner     Print the factory owner and whether the relayer holds it
  transfer-ownership
                    Hand the factory to the relayer, signed by the current owner
    -owner-key <hex> Current owner's private key
  help              Show this help message

Options:
  -config <path>    Path to configuration file
  -env <path>       Path to environment files (default: config/)

Examples:
  # Create a key and put it in config/.env.local as FINARA_ETHEREUM_RELAYER_PRIVATE_KEY
  relayer-tool generate-wallet

  # Check the relayer can pay for gas
  relayer-tool balance

  # Let the relayer deploy banks through a factory created by another account
  relayer-tool transfer-ownership -owner-key 0x...`)
}

func handleGenerateWallet() {
	key, err := crypto.GenerateKey()
	if err != nil {
		fmt.Printf("Error: failed to generate key: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("=== New Relayer Wallet ===")
	fmt.Printf("Address:     %s\n", crypto.PubkeyToAddress(key.PublicKey).Hex())
	fmt.Printf("Private key: %s\n", hexutil.Encode(crypto.FromECDSA(key)))
	fmt.Println()
	fmt.Println("Store the private key in a secret store; it cannot be recovered.")
	fmt.Println("Fund the address with Sepolia ETH before starting the API.")
}

func handleAddress(cfg relayer.Config) error {
	if !relayer.HasSigningKey(cfg.PrivateKey) {
		return fmt.Errorf("ethereum.relayer_private_key is not set")
	}

	key, err := relayer.ParsePrivateKey(cfg.PrivateKey)
	if err != nil {
		return err
	}

	fmt.Println(crypto.PubkeyToAddress(key.PublicKey).Hex())
	return nil
}

func handleNetwork(ctx context.Context, cfg relayer.Config) error {
	client, err := adapter.NewEthClientDialer().Dial(ctx, cfg.RPCURL)
	if err != nil {
		return fmt.Errorf("failed to dial %s: %w", cfg.RPCURL, err)
	}
	defer client.Close()

	info, err := relayer.FetchNetworkInfo(ctx, client)
	if err != nil {
		return err
	}

	fmt.Println("=== Network ===")
	fmt.Printf("RPC:          %s\n", cfg.RPCURL)
	fmt.Printf("Chain ID:     %s\n", info.ChainID.String())
	fmt.Printf("Latest block: %d\n", info.BlockNumber)
	if info.BaseFee != nil {
		fmt.Printf("Base fee:     %s wei\n", info.BaseFee.String())
	}
	if info.GasTipCap != nil {
		fmt.Printf("Tip cap:      %s wei\n", info.GasTipCap.String())
	}
	return nil
}

func handleBalance(ctx context.Context, cfg relayer.Config) error {
	r, err := configuredRelayer(ctx, cfg)
	if err != nil {
		return err
	}
	defer r.Close()

	wei, err := r.Balance(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("%s: %s ETH\n", r.Address(), relayer.FormatEther(wei))
	return nil
}

func handleAuthorize(ctx context.Context, cfg relayer.Config, tokenAddress string) error {
	if !common.IsHexAddress(tokenAddress) {
		return fmt.Errorf("-token must be a hex address, got %q", tokenAddress)
	}

	r, err := configuredRelayer(ctx, cfg)
	if err != nil {
		return err
	}
	defer r.Close()

	fmt.Printf("Authorizing %s on %s...\n", r.Address(), tokenAddress)
	result, err := r.AuthorizeRelayer(ctx, tokenAddress)
	if err != nil {
		return err
	}

	fmt.Printf("Confirmed in block %d: %s\n", result.BlockNumber, result.TxHash)
	return nil
}

func handleFactoryOwner(ctx context.Context, cfg relayer.Config) error {
	r, err := configuredRelayer(ctx, cfg)
	if err != nil {
		return err
	}
	defer r.Close()

	owner, err := r.FactoryOwner(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("Factory:       %s\n", cfg.FactoryAddress)
	fmt.Printf("Owner:         %s\n", owner)
	fmt.Printf("Relayer owns:  %t\n", strings.EqualFold(owner, r.Address()))
	return nil
}

// handleTransferOwnership signs with the current owner's key and makes the configured relayer the factory owner
func handleTransferOwnership(ctx context.Context, cfg relayer.Config, ownerKey string) error {
	if !relayer.HasSigningKey(cfg.PrivateKey) {
		return fmt.Errorf("ethereum.relayer_private_key is not set")
	}
	relayerKey, err := relayer.ParsePrivateKey(cfg.PrivateKey)
	if err != nil {
		return err
	}
	if !relayer.HasSigningKey(ownerKey) {
		return fmt.Errorf("-owner-key is required")
	}
	if _, err := relayer.ParsePrivateKey(ownerKey); err != nil {
		return fmt.Errorf("-owner-key: %w", err)
	}
	if !common.IsHexAddress(cfg.FactoryAddress) {
		return fmt.Errorf("ethereum.factory_address is not set")
	}
	target := crypto.PubkeyToAddress(relayerKey.PublicKey).Hex()

	ownerCfg := cfg
	ownerCfg.PrivateKey = ownerKey
	r, err := configuredRelayer(ctx, ownerCfg)
	if err != nil {
		return err
	}
	defer r.Close()

	current, err := r.FactoryOwner(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("Factory:        %s\n", cfg.FactoryAddress)
	fmt.Printf("Current owner:  %s\n", current)
	fmt.Printf("New owner:      %s\n", target)

	if strings.EqualFold(current, target) {
		fmt.Println("Relayer already owns the factory")
		return nil
	}
	if !strings.EqualFold(current, r.Address()) {
		return fmt.Errorf("-owner-key belongs to %s, not the factory owner", r.Address())
	}

	result, err := r.TransferFactoryOwnership(ctx, target)
	if err != nil {
		return err
	}
	fmt.Printf("Confirmed in block %d: %s\n", result.BlockNumber, result.TxHash)

	owner, err := r.FactoryOwner(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("Factory owner:  %s\n", owner)
	return nil
}

// configuredRelayer returns a relayer able to sign, or an error where the API would fall back to demo mode
func configuredRelayer(ctx context.Context, cfg relayer.Config) (relayer.Relayer, error) {
	r, err := relayer.New(ctx, cfg, adapter.NewEthClientDialer(), adapter.NewClock())
	if err != nil {
		return nil, err
	}
	if !r.Configured() {
		r.Close()
		return nil, fmt.Errorf("relayer is not configured: check ethereum.relayer_private_key and ethereum.rpc_url")
	}
	return r, nil
}
