package config

import (
	"fmt"
	"sort"
	"strings"
)

// ErrUnknownNetwork is returned for a --network value without predefined access node
var ErrUnknownNetwork = fmt.Errorf("unknown network")

type network string

const (
	mainnet  network = "mainnet"
	testnet  network = "testnet"
	emulator network = "emulator"
)

// accessNodes are the public access nodes of each network
var accessNodes = map[network]string{
	mainnet:  "access.mainnet.nodes.onflow.org:9000",
	testnet:  "access.devnet.nodes.onflow.org:9000",
	emulator: "127.0.0.1:3569",
}

// Networks returns the names accepted by --network
func Networks() []string {
	names := make([]string, 0, len(accessNodes))
	for n := range accessNodes {
		names = append(names, string(n))
	}
	sort.Strings(names)
	return names
}

// networkFileData returns a config fragment with the access node of a network
func networkFileData(name string) (FileData, error) {
	url, ok := accessNodes[network(strings.ToLower(name))]
	if !ok {
		return FileData{}, fmt.Errorf("%w %q, valid values: %v", ErrUnknownNetwork, name, Networks())
	}
	return FileData{
		Name:    "network_" + name,
		Content: fmt.Sprintf("AccessNodeURL = %q\n", url),
	}, nil
}
