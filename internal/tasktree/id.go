package tasktree

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// NewID returns an identifier unique within one user's tree: millisecond
// timestamp plus a random suffix. Collision resistance beyond a single
// tree is not required, so no cryptographic guarantees here.
func NewID() string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:9]
	return fmt.Sprintf("%d%s", time.Now().UnixMilli(), suffix)
}
