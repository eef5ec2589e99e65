package access

import "github.com/0xPolygon/flowclient/config/types"

// Config is the configuration of the Access API client
type Config struct {
	// URL of the access node gRPC endpoint. Schemes http and grpc dial without TLS,
	// https uses the system roots. A bare host:port dials without TLS.
	URL string `mapstructure:"URL"`
	// RequestsPerSecond limits the calls issued by the client, 0 disables the limiter
	RequestsPerSecond float64 `mapstructure:"RequestsPerSecond"`
	// Burst is the burst size of the limiter
	Burst int `mapstructure:"Burst"`
	// Timeout applied to each call, 0 means no timeout besides the caller context
	Timeout types.Duration `mapstructure:"Timeout"`
}
