// internal/tools/billing/create-subscription/config.go
package createsubscription

import "time"

type Config struct {
	Timeout time.Duration
}
