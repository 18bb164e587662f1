// internal/pipeline/cipher.go
package pipeline

// Cipher is the minimal capability the pipeline needs.
// *engine.Engine satisfies it, as can fakes in tests.
type Cipher interface {
	Encrypt(text string) (string, error)
}
