package common

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownComponent = errors.New("unknown component")

const (
	// RPC name to identify the rpc component
	RPC = "rpc"
	// EVENT_WATCHER name to identify the event watcher component
	EVENT_WATCHER = "event-watcher" //nolint:stylecheck
	// METRICS name to identify the prometheus endpoint component
	METRICS = "metrics"
)

// Components returns every component that the run command can start
func Components() []string {
	return []string{RPC, EVENT_WATCHER, METRICS}
}

// IsNeeded reports whether any of the actual components is one of casesWhereNeeded
func IsNeeded(casesWhereNeeded, actualCases []string) bool {
	for _, actualCase := range actualCases {
		for _, caseWhereNeeded := range casesWhereNeeded {
			if actualCase == caseWhereNeeded {
				return true
			}
		}
	}
	return false
}

// ParseComponents validates the requested components and drops repeated ones,
// keeping the order of their first appearance. Values are trimmed.
func ParseComponents(requested []string) ([]string, error) {
	res := make([]string, 0, len(requested))
	for _, component := range requested {
		component = strings.TrimSpace(component)
		if !IsNeeded(Components(), []string{component}) {
			return nil, fmt.Errorf("%w %q, expected one of %v", ErrUnknownComponent, component, Components())
		}
		if !IsNeeded(res, []string{component}) {
			res = append(res, component)
		}
	}
	return res, nil
}
