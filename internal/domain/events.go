package domain

import "time"

// EventType represents the type of a domain event published to the message bus
type EventType string

const (
	EventTypeBankDeployed      EventType = "bank.deployed"
	EventTypeCustomersVerified EventType = "customers.verified"
	EventTypeCustomerFrozen    EventType = "customer.frozen"
	EventTypeTokensMinted      EventType = "tokens.minted"
	EventTypeAssetTokenized    EventType = "asset.tokenized"
	EventTypeAssetFailed       EventType = "asset.failed"
	EventTypeLoanCreated       EventType = "loan.created"
)

// Event is the envelope published for every state change
type Event struct {
	ID          string         `json:"id"`
	Type        EventType      `json:"type"`
	BankAddress string         `json:"bank_address"`
	Wallet      string         `json:"wallet,omitempty"`
	TxHash      string         `json:"tx_hash,omitempty"`
	BlockNumber uint64         `json:"block_number,omitempty"`
	Data        map[string]any `json:"data,omitempty"`
	Timestamp   time.Time      `json:"timestamp"`
}

// Subject returns the message subject for the event, e.g. "finara.asset.tokenized"
func (e *Event) Subject() string {
	return "finara." + string(e.Type)
}
