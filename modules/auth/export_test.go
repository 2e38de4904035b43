package auth

// RevokedCount exposes the size of the revocation set to tests.
func RevokedCount(s *Service) int { return s.revoked.len() }
