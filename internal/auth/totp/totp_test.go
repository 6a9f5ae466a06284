package totp

import (
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// rfcSecret is the RFC 4226 appendix D test secret "12345678901234567890".
const rfcSecret = "GEZDGNBVGY3TQOJQGEZDGNBVGY3TQOJQ"

func TestGenerateCode_RFC4226Vectors(t *testing.T) {
	// Appendix D HOTP values for counters 0..9; each counter corresponds
	// to the 30-second step starting at counter*30 unix seconds.
	want := []string{
		"755224", "287082", "359152", "969429", "338314",
		"254676", "287922", "162583", "399871", "520489",
	}

	for counter, expected := range want {
		at := time.Unix(int64(counter)*30, 0)
		code, err := GenerateCode(rfcSecret, at)
		require.NoError(t, err)
		assert.Equal(t, expected, code, "counter %d", counter)
	}
}

func TestVerifyAt_WindowTolerance(t *testing.T) {
	base := time.Unix(1_700_000_010, 0)
	code, err := GenerateCode(rfcSecret, base)
	require.NoError(t, err)

	// Same step.
	assert.True(t, VerifyAt(rfcSecret, code, base, DefaultWindow, DefaultStep))
	assert.True(t, VerifyAt(rfcSecret, code, base.Add(29*time.Second), DefaultWindow, DefaultStep))

	// One step of skew in either direction is tolerated.
	assert.True(t, VerifyAt(rfcSecret, code, base.Add(30*time.Second), DefaultWindow, DefaultStep))
	assert.True(t, VerifyAt(rfcSecret, code, base.Add(-30*time.Second), DefaultWindow, DefaultStep))

	// More than window steps away is rejected.
	assert.False(t, VerifyAt(rfcSecret, code, base.Add(90*time.Second), DefaultWindow, DefaultStep))
	assert.False(t, VerifyAt(rfcSecret, code, base.Add(10*time.Minute), DefaultWindow, DefaultStep))
}

func TestVerifyAt_PadsShortCodes(t *testing.T) {
	// Find a step whose code has a leading zero, then submit it unpadded.
	for counter := int64(0); counter < 200; counter++ {
		at := time.Unix(counter*30, 0)
		code, err := GenerateCode(rfcSecret, at)
		require.NoError(t, err)
		if code[0] != '0' {
			continue
		}

		unpadded := code[1:]
		assert.True(t, VerifyAt(rfcSecret, unpadded, at, 0, DefaultStep))
		return
	}
	t.Fatal("no code with a leading zero in the scanned range")
}

func TestVerify_BadInputs(t *testing.T) {
	base := time.Unix(1_700_000_010, 0)

	assert.False(t, VerifyAt(rfcSecret, "000000", base, DefaultWindow, DefaultStep))
	assert.False(t, VerifyAt("&&&not-base32&&&", "123456", base, DefaultWindow, DefaultStep))
	assert.False(t, VerifyAt(rfcSecret, "", base, DefaultWindow, DefaultStep))
}

func TestDecodeSecret_Tolerant(t *testing.T) {
	want, err := DecodeSecret(rfcSecret)
	require.NoError(t, err)
	assert.Equal(t, []byte("12345678901234567890"), want)

	lower, err := DecodeSecret("gezdgnbvgy3tqojqgezdgnbvgy3tqojq")
	require.NoError(t, err)
	assert.Equal(t, want, lower)

	padded, err := DecodeSecret(rfcSecret + "====")
	require.NoError(t, err)
	assert.Equal(t, want, padded)
}

func TestGenerateSecret(t *testing.T) {
	secret, err := GenerateSecret(20, "MedPresc (mariana)", "MedPresc")
	require.NoError(t, err)

	raw, err := DecodeSecret(secret.Base32)
	require.NoError(t, err)
	assert.Len(t, raw, 20)
	assert.NotContains(t, secret.Base32, "=")

	assert.Contains(t, secret.ProvisioningURI, "otpauth://totp/"+url.PathEscape("MedPresc (mariana)")+"?")
	assert.Contains(t, secret.ProvisioningURI, "%28mariana%29")
	assert.Contains(t, secret.ProvisioningURI, "secret="+secret.Base32)
	assert.Contains(t, secret.ProvisioningURI, "issuer=MedPresc")

	// Two secrets never collide.
	other, err := GenerateSecret(20, "MedPresc (mariana)", "MedPresc")
	require.NoError(t, err)
	assert.NotEqual(t, secret.Base32, other.Base32)
}
