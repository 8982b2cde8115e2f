package authenticator

// TokenEngine generates and verifies signed, time-limited tokens carrying an
// arbitrary object as a claim.
type TokenEngine[T any] interface {
	Generate(sub string, obj T) (string, error)
	Verify(token string) (T, error)
}
