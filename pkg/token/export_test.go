package token

import "time"

// SetClock replaces the signer's clock.
func (s *Signer) SetClock(now func() time.Time) { s.now = now }
