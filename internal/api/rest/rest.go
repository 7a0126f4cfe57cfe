package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/finara-labs/finara-backend/internal/api/middleware"
	"github.com/finara-labs/finara-backend/internal/metrics"
)

// SetupRoutes configures all REST API routes.
// Routes that submit transactions take auth when credentials are configured.
func SetupRoutes(router *gin.Engine, handler Handler, authCfg middleware.AuthConfig, apiMiddleware ...gin.HandlerFunc) {
	// Unversioned service endpoints (no auth, no rate limit)
	router.GET("/health", handler.HealthCheck)
	router.GET("/", handler.Index)
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	auth := middleware.OptionalAuth(authCfg)

	api := router.Group("/api", apiMiddleware...)
	{
		// Banks
		api.POST("/deployBank", auth, handler.DeployBank)
		api.GET("/banks", handler.ListBanks)
		api.GET("/banks/:bankAddress", handler.GetBank)

		// Customers
		api.POST("/uploadCustomers", auth, handler.UploadCustomers)
		api.GET("/customers/:bankAddress", handler.ListCustomers)
		api.POST("/customers/:bankAddress/:walletAddress/freeze", auth, handler.FreezeCustomer)
		api.GET("/customer/:walletAddress", handler.GetCustomerProfile)

		// Tokens
		api.POST("/mintToken", auth, handler.MintToken)
		api.GET("/tokenBalance/:bankAddress/:walletAddress", handler.GetTokenBalance)
		api.GET("/token/:tokenAddress/balance/:walletAddress", handler.GetTokenBalanceByToken)

		// Loans
		api.POST("/lend", auth, handler.Lend)
		api.GET("/loans/:bankAddress", handler.ListLoans)
		api.GET("/loans/:bankAddress/:borrowerAddress", handler.GetBorrowerLoans)

		// Asset tokenization
		api.POST("/tokenize", auth, handler.Tokenize)
		api.GET("/tokenize/customer/:walletAddress", handler.GetCustomerAssets)
		api.GET("/tokenize/asset/:assetId", handler.GetAsset)

		// Analytics
		api.GET("/analytics/:bankAddress", handler.GetBankAnalytics)
		api.GET("/activity/:bankAddress", handler.GetActivity)

		// Relayer
		api.GET("/relayer", handler.GetRelayerStatus)
	}
}
