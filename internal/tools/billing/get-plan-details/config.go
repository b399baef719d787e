// internal/tools/billing/get-plan-details/config.go
package getplandetails

import "time"

type Config struct {
	Timeout time.Duration
}
