// Package otp issues and validates time-based one-time passcodes (RFC 6238, HMAC-SHA1).
package otp

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha1"
	"crypto/subtle"
	"encoding/base32"
	"encoding/binary"
	"fmt"
	"io"
	"strings"
	"time"
)

const secretBytes = 20

// Default passcode parameters.
const (
	DefaultPeriod = 600 * time.Second
	DefaultDigits = 6
	DefaultWindow = 2
)

var secretEncoding = base32.StdEncoding.WithPadding(base32.NoPadding)

// Params configures an Engine.
type Params struct {
	Period time.Duration
	Digits int
	Window int
}

// Engine generates per-flow secrets and codes.
type Engine struct {
	params Params
	now    func() time.Time
	rand   io.Reader
}

// New creates an Engine. Zero params fall back to defaults; a nil now defaults to time.Now.
func New(params Params, now func() time.Time) *Engine {
	if params.Period <= 0 {
		params.Period = DefaultPeriod
	}
	if params.Digits <= 0 {
		params.Digits = DefaultDigits
	}
	if params.Window < 0 {
		params.Window = 0
	}
	if now == nil {
		now = time.Now
	}
	return &Engine{params: params, now: now, rand: rand.Reader}
}

// Issue generates a fresh secret and the code for the current time step.
func (e *Engine) Issue() (code, secret string, err error) {
	raw := make([]byte, secretBytes)
	if _, err := io.ReadFull(e.rand, raw); err != nil {
		return "", "", fmt.Errorf("failed to generate otp secret: %w", err)
	}

	secret = secretEncoding.EncodeToString(raw)
	return hotp(raw, e.counter(e.now()), e.params.Digits), secret, nil
}

// CodeAt returns the code for secret at time t.
func (e *Engine) CodeAt(secret string, t time.Time) (string, error) {
	raw, err := decodeSecret(secret)
	if err != nil {
		return "", err
	}
	return hotp(raw, e.counter(t), e.params.Digits), nil
}

// Validate reports whether code matches secret at the current step or within
// Window steps either side.
func (e *Engine) Validate(secret, code string) bool {
	code = strings.TrimSpace(code)
	if len(code) != e.params.Digits || !isNumeric(code) {
		return false
	}

	raw, err := decodeSecret(secret)
	if err != nil || len(raw) == 0 {
		return false
	}

	base := e.counter(e.now())
	matched := 0
	for step := -int64(e.params.Window); step <= int64(e.params.Window); step++ {
		c := base + step
		if c < 0 {
			continue
		}
		matched |= subtle.ConstantTimeCompare([]byte(hotp(raw, c, e.params.Digits)), []byte(code))
	}
	return matched == 1
}

func (e *Engine) counter(t time.Time) int64 {
	return t.Unix() / int64(e.params.Period/time.Second)
}

func decodeSecret(secret string) ([]byte, error) {
	raw, err := secretEncoding.DecodeString(strings.ToUpper(strings.TrimRight(secret, "=")))
	if err != nil {
		return nil, fmt.Errorf("failed to decode otp secret: %w", err)
	}
	return raw, nil
}

func hotp(secret []byte, counter int64, digits int) string {
	var msg [8]byte
	binary.BigEndian.PutUint64(msg[:], uint64(counter))

	mac := hmac.New(sha1.New, secret)
	_, _ = mac.Write(msg[:])
	sum := mac.Sum(nil)

	offset := sum[len(sum)-1] & 0x0f
	bin := (int(sum[offset])&0x7f)<<24 |
		(int(sum[offset+1])&0xff)<<16 |
		(int(sum[offset+2])&0xff)<<8 |
		(int(sum[offset+3]) & 0xff)

	mod := 1
	for i := 0; i < digits; i++ {
		mod *= 10
	}

	return fmt.Sprintf("%0*d", digits, bin%mod)
}

func isNumeric(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
