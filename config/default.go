package config

// This values doesnt have a default value because depend on the
// environment / deployment
const DefaultMandatoryVars = `
# AccessNodeURL is the gRPC endpoint of the Flow access node
# (testnet: access.devnet.nodes.onflow.org:9000, emulator: 127.0.0.1:3569)
AccessNodeURL = "127.0.0.1:3569"

# ServiceAccountAddress is the address of the account that pays and signs the transactions
ServiceAccountAddress = "f8d6e0586b0a20c7"
# ServiceAccountPrivateKey is the hex encoded private key of the service account.
# Leave it empty to use ServiceAccount.Keystore instead
ServiceAccountPrivateKey = ""

# PathRWData is the folder where the client keeps its data
PathRWData = "/tmp/flowclient"
`

// This doesn't belong to config, but are the vars used
// to avoid repetition in config-files
const DefaultVars = `
ServiceAccountKeyIndex = 0
`

// DefaultValues is the default configuration
const DefaultValues = `
# This is the default configuration for the flowclient

# Log configuration
[Log]
  # Environment is the environment where the client is running
  Environment = "development" # "production" or "development"
  # Level is the log level
  Level = "info"
  # Outputs are the outputs where the logs will be written
  Outputs = ["stderr"]

# Access API client configuration
[AccessNode]
  # URL of the access node. http:// or grpc:// dial without TLS, https:// or grpcs:// use TLS
  # and a bare host:port dials without TLS
  URL = "{{AccessNodeURL}}"
  # RequestsPerSecond limits the calls to the access node, 0 disables the limit
  RequestsPerSecond = 0
  # Burst is the number of calls allowed above the rate
  Burst = 1
  # Timeout of each call
  Timeout = "30s"

# ServiceAccount is the payer and proposer of the transactions
[ServiceAccount]
  Address = "{{ServiceAccountAddress}}"
  KeyIndex = {{ServiceAccountKeyIndex}}
  PrivateKey = "{{ServiceAccountPrivateKey}}"
  # SigAlgo is ECDSA_P256 or ECDSA_secp256k1
  SigAlgo = "ECDSA_P256"
  # HashAlgo is SHA3_256 or SHA2_256
  HashAlgo = "SHA3_256"
  # Keystore is used when PrivateKey is empty
  [ServiceAccount.Keystore]
    Path = ""
    Password = ""

# Accounts configures the account and contract operations
[Accounts]
  # GasLimit of the transactions
  GasLimit = 1000
  # LegacyTemplates uses the pre Cadence 1.0 transaction templates
  LegacyTemplates = false
  [Accounts.Wait]
    # InitialInterval is the wait before the first poll of a transaction result
    InitialInterval = "50ms"
    # IntervalIncrement is added to the wait after every poll
    IntervalIncrement = "200ms"
    # MaxAttempts is the number of polls before giving up
    MaxAttempts = 50

# Journal of the transactions sent by the client
[Journal]
  Enabled = true
  DBPath = "{{PathRWData}}/journal.sqlite"

# EventWatcher follows the chain and publishes the events of EventTypes
[EventWatcher]
  Name = "eventwatcher"
  EventTypes = ["flow.AccountCreated"]
  # StartHeight is used when there is no checkpoint, 0 means the latest block
  StartHeight = 0
  # ChunkSize is the number of heights requested at once (max 250)
  ChunkSize = 250
  PollInterval = "1s"
  # Sealed follows sealed blocks instead of finalized ones
  Sealed = true

[RPC]
  # Host defines the network adapter that will be used to serve the HTTP requests
  Host = "0.0.0.0"
  # Port defines the port to serve the endpoints via HTTP
  Port = 5576
  # ReadTimeout is the HTTP server read timeout
  # check net/http.server.ReadTimeout and net/http.server.ReadHeaderTimeout
  ReadTimeout = "2s"
  # WriteTimeout is the HTTP server write timeout
  # check net/http.server.WriteTimeout
  WriteTimeout = "2s"
  # MaxRequestsPerIPAndSecond defines how much requests a single IP can
  # send within a single second
  MaxRequestsPerIPAndSecond = 10

# Metrics exposes the prometheus metrics
[Metrics]
  Enabled = false
  Host = "0.0.0.0"
  Port = 9091
`
