package domain

// Feature names known to the gate
const (
	// FeatureWalletConnect gates resolution of pairing URI scans
	FeatureWalletConnect = "wallet_connect"
)
