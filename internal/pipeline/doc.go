// Package pipeline encrypts line-oriented input on a pool of workers and
// hands the results back in input order.
//
// The only contract to implement is Cipher (Encrypt). Every line is an
// independent call, so each one starts from the configured initial wheels.
package pipeline
