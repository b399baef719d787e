// internal/tools/billing/get-customer-info/config.go
package getcustomerinfo

import "time"

type Config struct {
	Timeout time.Duration
}
