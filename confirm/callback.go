package confirm

import (
	"fmt"
	"strings"
)

type Action string

const (
	ActionConfirm Action = "confirm"
	ActionCancel  Action = "cancel"
	ActionEdit    Action = "edit"
)

const callbackSeparator = "_"

// CallbackData builds the wire payload embedded in a UI button. The
// format "<action>_<id>" is the one contract this package owns.
func CallbackData(action Action, id string) string {
	return string(action) + callbackSeparator + id
}

// ParseCallback splits a callback payload into its action verb and
// pending-action id. The id itself may contain the separator (it embeds
// the kind prefix and a timestamp), so the split happens at the FIRST
// separator only.
func ParseCallback(data string) (Action, string, error) {
	data = strings.TrimSpace(data)
	if data == "" {
		return "", "", fmt.Errorf("empty callback data")
	}
	i := strings.Index(data, callbackSeparator)
	if i < 0 {
		return "", "", fmt.Errorf("invalid callback data format: %q", data)
	}

	action := Action(data[:i])
	id := data[i+1:]

	switch action {
	case ActionConfirm, ActionCancel, ActionEdit:
		return action, id, nil
	default:
		return "", "", fmt.Errorf("unknown callback action: %q", string(action))
	}
}
