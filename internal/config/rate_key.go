package config

import "fmt"

type RateKeyStruct struct{}

func NewRateKeyStruct() *RateKeyStruct {
	return &RateKeyStruct{}
}

// LoginAttemptKey returns the redis key counting login attempts for an IP
// within the current rate window.
func (r *RateKeyStruct) LoginAttemptKey(ip string) string {
	return fmt.Sprintf("ratelimit:login:%s", ip)
}

var RateKey = NewRateKeyStruct()
