package cli

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

const (
	SwitchKind = "switch"
	StatsKind  = "stats"
)

var (
	pluralKinds = map[string]string{
		SwitchKind: "switches",
		StatsKind:  "stats",
	}
)

func parseAndValidateKindId(arg string) (string, *uuid.UUID, error) {
	kind, idStr, _ := strings.Cut(arg, "/")
	kind = singular(kind)
	if _, ok := pluralKinds[kind]; !ok {
		return "", nil, fmt.Errorf("invalid resource kind: %s", kind)
	}
	if len(idStr) == 0 {
		return kind, nil, nil
	}
	if kind == StatsKind {
		return "", nil, fmt.Errorf("%s does not take an id", kind)
	}
	id, err := uuid.Parse(idStr)
	if err != nil {
		return "", nil, fmt.Errorf("invalid ID: %w", err)
	}
	return kind, &id, nil
}

func singular(kind string) string {
	for singular, plural := range pluralKinds {
		if kind == plural {
			return singular
		}
	}
	return kind
}

func plural(kind string) string {
	return pluralKinds[kind]
}
