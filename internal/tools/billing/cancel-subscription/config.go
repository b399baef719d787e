// internal/tools/billing/cancel-subscription/config.go
package cancelsubscription

import "time"

type Config struct {
	Timeout time.Duration
}
