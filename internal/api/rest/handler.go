package rest

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finara-labs/finara-backend/internal/adapter"
	"github.com/finara-labs/finara-backend/internal/api/shared/constants"
	"github.com/finara-labs/finara-backend/internal/api/shared/dto"
	"github.com/finara-labs/finara-backend/internal/api/shared/executor"
)

// Handler defines the interface for REST API handlers
// This interface allows for easy mocking and testing
//
//go:generate mockgen -source=handler.go -destination=../../mocks/api_handler.go -package=mocks -mock_names=Handler=MockAPIHandler
type Handler interface {
	// DeployBank deploys a bank's token and lending pool
	// POST /api/deployBank
	DeployBank(c *gin.Context)

	// ListBanks lists every deployed bank
	// GET /api/banks
	ListBanks(c *gin.Context)

	// GetBank retrieves a bank with its customer count
	// GET /api/banks/:bankAddress
	GetBank(c *gin.Context)

	// UploadCustomers registers customers and verifies their wallets on chain
	// POST /api/uploadCustomers
	UploadCustomers(c *gin.Context)

	// ListCustomers lists a bank's customers
	// GET /api/customers/:bankAddress
	ListCustomers(c *gin.Context)

	// FreezeCustomer blocks mints and loans for a customer
	// POST /api/customers/:bankAddress/:walletAddress/freeze
	FreezeCustomer(c *gin.Context)

	// MintToken mints bank tokens to a verified customer
	// POST /api/mintToken
	MintToken(c *gin.Context)

	// GetTokenBalance reads a wallet's bank token balance
	// GET /api/tokenBalance/:bankAddress/:walletAddress
	GetTokenBalance(c *gin.Context)

	// Lend opens a collateralized loan
	// POST /api/lend
	Lend(c *gin.Context)

	// ListLoans lists a bank's loans
	// GET /api/loans/:bankAddress
	ListLoans(c *gin.Context)

	// GetBorrowerLoans lists a borrower's loans at a bank
	// GET /api/loans/:bankAddress/:borrowerAddress
	GetBorrowerLoans(c *gin.Context)

	// Tokenize converts a declared asset into bank tokens
	// POST /api/tokenize
	Tokenize(c *gin.Context)

	// GetCustomerAssets lists a wallet's assets with a summary
	// GET /api/tokenize/customer/:walletAddress
	GetCustomerAssets(c *gin.Context)

	// GetAsset retrieves an asset by ID
	// GET /api/tokenize/asset/:assetId
	GetAsset(c *gin.Context)

	// GetBankAnalytics retrieves a bank dashboard
	// GET /api/analytics/:bankAddress
	GetBankAnalytics(c *gin.Context)

	// GetActivity retrieves a bank's activity feed, newest first
	// GET /api/activity/:bankAddress?limit=<limit>
	GetActivity(c *gin.Context)

	// GetTokenBalanceByToken reads a wallet's balance of any token
	// GET /api/token/:tokenAddress/balance/:walletAddress
	GetTokenBalanceByToken(c *gin.Context)

	// GetCustomerProfile retrieves a customer's profile
	// GET /api/customer/:walletAddress
	GetCustomerProfile(c *gin.Context)

	// GetRelayerStatus describes the relayer wallet
	// GET /api/relayer
	GetRelayerStatus(c *gin.Context)

	// Index lists the main endpoints
	// GET /
	Index(c *gin.Context)

	// HealthCheck returns the health status of the API
	// GET /health
	HealthCheck(c *gin.Context)
}

// handler implements the Handler interface
type handler struct {
	executor executor.Executor
	clock    adapter.Clock
}

// NewHandler creates a new REST API handler using the shared executor
func NewHandler(exec executor.Executor, clock adapter.Clock) Handler {
	return &handler{
		executor: exec,
		clock:    clock,
	}
}

// bindJSON decodes the request body, responding 400 when it is malformed
func bindJSON(c *gin.Context, body any) bool {
	if err := c.ShouldBindJSON(body); err != nil {
		respondBadRequest(c, fmt.Sprintf("Invalid request body: %s", err.Error()))
		return false
	}
	return true
}

func (h *handler) DeployBank(c *gin.Context) {
	var req dto.DeployBankRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.executor.DeployBank(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOKWithMessage(c, resp, "Bank deployed successfully")
}

func (h *handler) ListBanks(c *gin.Context) {
	banks, err := h.executor.ListBanks(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, banks)
}

func (h *handler) GetBank(c *gin.Context) {
	bank, err := h.executor.GetBank(c.Request.Context(), c.Param("bankAddress"))
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, bank)
}

func (h *handler) UploadCustomers(c *gin.Context) {
	var req dto.UploadCustomersRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.executor.UploadCustomers(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	message := fmt.Sprintf("%d customers uploaded", resp.CustomersAdded)
	if resp.VerificationError != "" {
		message += ", on-chain verification failed"
	}
	respondOKWithMessage(c, resp, message)
}

func (h *handler) ListCustomers(c *gin.Context) {
	customers, err := h.executor.ListCustomers(c.Request.Context(), c.Param("bankAddress"))
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, customers)
}

func (h *handler) FreezeCustomer(c *gin.Context) {
	customer, err := h.executor.FreezeCustomer(c.Request.Context(), c.Param("bankAddress"), c.Param("walletAddress"))
	if err != nil {
		respondError(c, err)
		return
	}

	respondOKWithMessage(c, customer, "Customer frozen")
}

func (h *handler) MintToken(c *gin.Context) {
	var req dto.MintTokenRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.executor.MintToken(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOKWithMessage(c, resp, "Tokens minted successfully")
}

func (h *handler) GetTokenBalance(c *gin.Context) {
	balance, err := h.executor.GetTokenBalance(c.Request.Context(), c.Param("bankAddress"), c.Param("walletAddress"))
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, balance)
}

func (h *handler) Lend(c *gin.Context) {
	var req dto.LendRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.executor.Lend(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOKWithMessage(c, resp, "Loan created successfully")
}

func (h *handler) ListLoans(c *gin.Context) {
	loans, err := h.executor.ListLoans(c.Request.Context(), c.Param("bankAddress"))
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, loans)
}

func (h *handler) GetBorrowerLoans(c *gin.Context) {
	loans, err := h.executor.GetBorrowerLoans(c.Request.Context(), c.Param("bankAddress"), c.Param("borrowerAddress"))
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, loans)
}

func (h *handler) Tokenize(c *gin.Context) {
	var req dto.TokenizeRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.executor.Tokenize(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOKWithMessage(c, resp, fmt.Sprintf("Successfully tokenized %s asset", resp.AssetType))
}

func (h *handler) GetCustomerAssets(c *gin.Context) {
	assets, err := h.executor.GetCustomerAssets(c.Request.Context(), c.Param("walletAddress"))
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, assets)
}

func (h *handler) GetAsset(c *gin.Context) {
	asset, err := h.executor.GetAsset(c.Request.Context(), c.Param("assetId"))
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, asset)
}

func (h *handler) GetBankAnalytics(c *gin.Context) {
	analytics, err := h.executor.GetBankAnalytics(c.Request.Context(), c.Param("bankAddress"))
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, analytics)
}

func (h *handler) GetActivity(c *gin.Context) {
	params, err := ParseGetActivityQuery(c)
	if err != nil {
		respondBadRequest(c, fmt.Sprintf("Invalid query parameters: %s", err.Error()))
		return
	}

	activity, err := h.executor.GetActivity(c.Request.Context(), c.Param("bankAddress"), params.Limit)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, activity)
}

func (h *handler) GetTokenBalanceByToken(c *gin.Context) {
	balance, err := h.executor.GetTokenBalanceByToken(c.Request.Context(), c.Param("tokenAddress"), c.Param("walletAddress"))
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, balance)
}

func (h *handler) GetCustomerProfile(c *gin.Context) {
	profile, err := h.executor.GetCustomerProfile(c.Request.Context(), c.Param("walletAddress"))
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, profile)
}

func (h *handler) GetRelayerStatus(c *gin.Context) {
	status, err := h.executor.GetRelayerStatus(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, status)
}

func (h *handler) Index(c *gin.Context) {
	c.JSON(http.StatusOK, dto.IndexResponse{
		Message: constants.SERVICE_NAME,
		Version: constants.API_VERSION,
		Endpoints: map[string]string{
			"health":      "GET /health",
			"metrics":     "GET /metrics",
			"deployBank":  "POST /api/deployBank",
			"banks":       "GET /api/banks",
			"customers":   "POST /api/uploadCustomers",
			"mintToken":   "POST /api/mintToken",
			"lend":        "POST /api/lend",
			"tokenize":    "POST /api/tokenize",
			"analytics":   "GET /api/analytics/:bankAddress",
			"activity":    "GET /api/activity/:bankAddress",
			"profile":     "GET /api/customer/:walletAddress",
			"relayer":     "GET /api/relayer",
			"tokenAssets": "GET /api/tokenize/customer/:walletAddress",
		},
	})
}

// HealthCheck returns the health status of the API
func (h *handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, dto.HealthResponse{
		Status:    "healthy",
		Timestamp: h.clock.Now().UTC(),
		Service:   constants.SERVICE_NAME,
	})
}
