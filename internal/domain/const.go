package domain

const (
	// Blockchain constants
	ETHEREUM_ZERO_ADDRESS = "0x0000000000000000000000000000000000000000"
	ETHEREUM_ZERO_KEY     = "0x0000000000000000000000000000000000000000000000000000000000000000"

	// TOKEN_DECIMALS is the decimals of every bank token deployed by the factory
	TOKEN_DECIMALS = 18

	// ASSET_ID_PREFIX prefixes generated asset identifiers
	ASSET_ID_PREFIX = "ASSET-"

	// Activity feed limits
	DEFAULT_ACTIVITY_LIMIT = 20
	MAX_ACTIVITY_LIMIT     = 100
	RECENT_ACTIVITY_LIMIT  = 5

	// DEFAULT_COLLATERALIZATION_RATIO is the collateral percentage used when a deploy omits it
	DEFAULT_COLLATERALIZATION_RATIO = 150
)
