package confirm

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// NewID builds a pending-action id of the form
// <kind>_<unix>_<userID>_<suffix>. The kind prefix and user id keep the
// token self-describing at the wire boundary; the uuid-derived suffix
// guarantees uniqueness when one user fires several proposals within a
// second. The result stays well under Telegram's 64-byte callback-data
// limit even with the action verb prepended.
func NewID(kind Kind, userID string) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return fmt.Sprintf("%s_%d_%s_%s", kind, time.Now().Unix(), strings.TrimSpace(userID), suffix)
}
