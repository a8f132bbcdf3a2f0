package password

import (
	"encoding/base64"
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testIterations = 1000

func TestPBKDF2_HashVerify(t *testing.T) {
	h := NewPBKDF2(testIterations)

	tests := []struct {
		name  string
		plain string
	}{
		{name: "ascii", plain: "correct horse battery staple"},
		{name: "empty", plain: ""},
		{name: "unicode", plain: "пароль-密码-🔑"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			encoded, err := h.Hash(tt.plain)
			require.NoError(t, err)

			raw, err := base64.StdEncoding.DecodeString(encoded)
			require.NoError(t, err)
			assert.Len(t, raw, saltLen+keyLen)

			assert.True(t, h.Verify(tt.plain, encoded))
			assert.False(t, h.Verify(tt.plain+"x", encoded))
		})
	}
}

func TestPBKDF2_SaltsDiffer(t *testing.T) {
	h := NewPBKDF2(testIterations)

	first, err := h.Hash("secret")
	require.NoError(t, err)
	second, err := h.Hash("secret")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, h.Verify("secret", first))
	assert.True(t, h.Verify("secret", second))
}

func TestPBKDF2_VerifyMalformed(t *testing.T) {
	h := NewPBKDF2(testIterations)

	tests := []struct {
		name    string
		encoded string
	}{
		{name: "empty", encoded: ""},
		{name: "not base64", encoded: "%%%not-base64%%%"},
		{name: "too short", encoded: base64.StdEncoding.EncodeToString(make([]byte, 10))},
		{name: "too long", encoded: base64.StdEncoding.EncodeToString(make([]byte, saltLen+keyLen+1))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.False(t, h.Verify("secret", tt.encoded))
		})
	}
}

func TestPBKDF2_IterationsMatter(t *testing.T) {
	encoded, err := NewPBKDF2(testIterations).Hash("secret")
	require.NoError(t, err)

	assert.False(t, NewPBKDF2(testIterations+1).Verify("secret", encoded))
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("entropy exhausted") }

func TestPBKDF2_EntropyFailure(t *testing.T) {
	h := NewPBKDF2(testIterations)
	h.rand = failingReader{}

	_, err := h.Hash("secret")
	require.Error(t, err)
}

func TestPBKDF2_VerifyTimingIndependentOfMismatchPosition(t *testing.T) {
	if testing.Short() {
		t.Skip("timing test")
	}

	h := NewPBKDF2(1)
	encoded, err := h.Hash("secret")
	require.NoError(t, err)
	raw, err := base64.StdEncoding.DecodeString(encoded)
	require.NoError(t, err)

	// Flip a key byte at the first and at the last position; Verify is
	// expected to fail on both in comparable time.
	flip := func(pos int) string {
		b := append([]byte{}, raw...)
		b[saltLen+pos] ^= 0xff
		return base64.StdEncoding.EncodeToString(b)
	}
	early, late := flip(0), flip(keyLen-1)

	measure := func(encoded string) time.Duration {
		const rounds = 2000
		samples := make([]time.Duration, rounds)
		for i := range samples {
			start := time.Now()
			assert.False(t, h.Verify("secret", encoded))
			samples[i] = time.Since(start)
		}
		sort.Slice(samples, func(i, j int) bool { return samples[i] < samples[j] })
		return samples[rounds/2]
	}

	earlyMedian := measure(early)
	lateMedian := measure(late)

	ratio := float64(earlyMedian) / float64(lateMedian)
	assert.InDelta(t, 1.0, ratio, 0.5, "early=%s late=%s", earlyMedian, lateMedian)
}
