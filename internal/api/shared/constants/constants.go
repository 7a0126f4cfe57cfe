package constants

const (
	SERVICE_NAME = "Finara Backend API"
	API_VERSION  = "1.0.0"

	MAX_CUSTOMERS_PER_UPLOAD = 500
	DEFAULT_MAX_SUPPLY       = 1000000
	// TOKEN_WALLET_INSTRUCTIONS is shown with a tokenization result
	TOKEN_WALLET_INSTRUCTIONS = "Add this token to MetaMask"
)
