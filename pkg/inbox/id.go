package inbox

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// newID derives an id from the receipt time and a random suffix.
func newID(receivedAt time.Time) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
	return strconv.FormatInt(receivedAt.UnixMilli(), 10) + "-" + suffix
}
