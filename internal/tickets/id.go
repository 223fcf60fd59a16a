package tickets

import (
	"math/rand/v2"
	"strconv"
	"strings"
	"time"
)

const base36 = "0123456789abcdefghijklmnopqrstuvwxyz"

// newTicketID concatenates a millisecond timestamp with a short random
// base-36 suffix. Collisions are theoretically possible but there is only
// ever a single writer, so they are not defended against.
func newTicketID() string {
	var b strings.Builder
	b.WriteString(strconv.FormatInt(time.Now().UnixMilli(), 10))
	for range 5 {
		b.WriteByte(base36[rand.IntN(len(base36))])
	}
	return b.String()
}
