package otp

import (
	"encoding/base32"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type clock struct{ t time.Time }

func (c *clock) now() time.Time { return c.t }

func TestHOTP_RFC4226Vectors(t *testing.T) {
	secret := []byte("12345678901234567890")
	expected := []string{
		"755224", "287082", "359152", "969429", "338314",
		"254676", "287922", "162583", "399871", "520489",
	}

	for counter, want := range expected {
		assert.Equal(t, want, hotp(secret, int64(counter), 6), "counter %d", counter)
	}
}

func TestEngine_CodeAt_RFC6238(t *testing.T) {
	secret := base32.StdEncoding.WithPadding(base32.NoPadding).EncodeToString([]byte("12345678901234567890"))
	e := New(Params{Period: 30 * time.Second, Digits: 8}, nil)

	code, err := e.CodeAt(secret, time.Unix(59, 0))
	require.NoError(t, err)
	assert.Equal(t, "94287082", code)

	code, err = e.CodeAt(secret, time.Unix(1111111109, 0))
	require.NoError(t, err)
	assert.Equal(t, "07081804", code)
}

func TestEngine_IssueValidate(t *testing.T) {
	c := &clock{t: time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)}
	e := New(Params{Period: DefaultPeriod, Digits: DefaultDigits, Window: DefaultWindow}, c.now)

	code, secret, err := e.Issue()
	require.NoError(t, err)
	assert.Len(t, code, 6)

	raw, err := decodeSecret(secret)
	require.NoError(t, err)
	assert.Len(t, raw, secretBytes)

	assert.True(t, e.Validate(secret, code))
	assert.True(t, e.Validate(secret, " "+code+" "))

	_, other, err := e.Issue()
	require.NoError(t, err)
	assert.NotEqual(t, secret, other)
}

func TestEngine_Window(t *testing.T) {
	// Issued late in its step so that +1300s lands three steps ahead.
	issued := time.Unix(600*2_900_000+599, 0)
	c := &clock{t: issued}
	e := New(Params{Period: 600 * time.Second, Digits: 6, Window: 2}, c.now)

	code, secret, err := e.Issue()
	require.NoError(t, err)

	tests := []struct {
		name   string
		offset time.Duration
		valid  bool
	}{
		{name: "same instant", offset: 0, valid: true},
		{name: "within window", offset: 590 * time.Second, valid: true},
		{name: "two steps later", offset: 1190 * time.Second, valid: true},
		{name: "outside window", offset: 1300 * time.Second, valid: false},
		{name: "two steps earlier", offset: -1799 * time.Second, valid: true},
		{name: "three steps earlier", offset: -1800 * time.Second, valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c.t = issued.Add(tt.offset)
			assert.Equal(t, tt.valid, e.Validate(secret, code))
		})
	}
}

func TestEngine_ValidateMalformed(t *testing.T) {
	c := &clock{t: time.Unix(1_700_000_000, 0)}
	e := New(Params{}, c.now)

	code, secret, err := e.Issue()
	require.NoError(t, err)

	tests := []struct {
		name   string
		secret string
		code   string
	}{
		{name: "short code", secret: secret, code: code[:5]},
		{name: "non numeric", secret: secret, code: "12a456"},
		{name: "empty code", secret: secret, code: ""},
		{name: "bad secret", secret: "!!!!", code: code},
		{name: "empty secret", secret: "", code: code},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.False(t, e.Validate(tt.secret, tt.code))
		})
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("entropy exhausted") }

func TestEngine_IssueEntropyFailure(t *testing.T) {
	e := New(Params{}, nil)
	e.rand = failingReader{}

	_, _, err := e.Issue()
	require.Error(t, err)
}
