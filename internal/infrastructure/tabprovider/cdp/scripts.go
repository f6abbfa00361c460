package cdp

import (
	"encoding/json"
	"fmt"
	"strings"
)

// chromeWindowIDCurrent is chrome.windows.WINDOW_ID_CURRENT.
const chromeWindowIDCurrent = -2

// extensionCall renders an async expression that awaits fn(args...) and
// returns its JSON encoding. Undefined results encode as null.
func extensionCall(fn string, args ...any) (string, error) {
	encoded := make([]string, 0, len(args))
	for _, arg := range args {
		b, err := json.Marshal(arg)
		if err != nil {
			return "", fmt.Errorf("encode %s argument: %w", fn, err)
		}
		encoded = append(encoded, string(b))
	}
	return fmt.Sprintf("(async () => JSON.stringify((await %s(%s)) ?? null))()",
		fn, strings.Join(encoded, ", ")), nil
}

type tabsQueryInfo struct {
	CurrentWindow bool `json:"currentWindow,omitempty"`
	Active        bool `json:"active,omitempty"`
}

type groupsQueryInfo struct {
	WindowID int64 `json:"windowId,omitempty"`
}

type moveProperties struct {
	Index int `json:"index"`
}

type groupOptions struct {
	TabIDs  []int64 `json:"tabIds"`
	GroupID *int64  `json:"groupId,omitempty"`
}

type groupUpdateProperties struct {
	Title     *string `json:"title,omitempty"`
	Color     *string `json:"color,omitempty"`
	Collapsed *bool   `json:"collapsed,omitempty"`
}
