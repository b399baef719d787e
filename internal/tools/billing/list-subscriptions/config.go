// internal/tools/billing/list-subscriptions/config.go
package listsubscriptions

import "time"

type Config struct {
	Timeout time.Duration
}
