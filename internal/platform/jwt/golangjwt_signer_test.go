package jwt_test

import (
	"testing"
	"time"

	"github.com/adisatrio/mindskit/internal/config"
	"github.com/adisatrio/mindskit/internal/platform/jwt"
)

func testJWTConfig() *config.JWT {
	return &config.JWT{
		JTILength: 16,
		Issuer:    "mindskit",
	}
}

func TestGolangJWTSigner_SignAndVerify(t *testing.T) {
	t.Parallel()

	const key = "testsecret"
	signer := jwt.NewGolangJWTSigner(testJWTConfig(), key)

	token, err := signer.Sign("svc-client", []string{"mindskit"}, time.Minute)
	if err != nil {
		t.Fatalf("signer.Sign() = %v, want: nil", err)
	}

	claims, err := signer.Verify(token)
	if err != nil {
		t.Fatalf("signer.Verify() = %v, want: nil", err)
	}

	if got, want := claims.ClientID, "svc-client"; got != want {
		t.Errorf("claims.ClientID = %q, want: %q", got, want)
	}
}

func TestGolangJWTSigner_VerifyExpired(t *testing.T) {
	t.Parallel()

	signer := jwt.NewGolangJWTSigner(testJWTConfig(), "testsecret")

	token, err := signer.Sign("svc-client", []string{"mindskit"}, -time.Minute)
	if err != nil {
		t.Fatalf("signer.Sign() = %v, want: nil", err)
	}

	if _, err := signer.Verify(token); err == nil {
		t.Error("signer.Verify() = nil, want: error for expired token")
	}
}

func TestGolangJWTSigner_VerifyWrongKey(t *testing.T) {
	t.Parallel()

	signer := jwt.NewGolangJWTSigner(testJWTConfig(), "testsecret")
	other := jwt.NewGolangJWTSigner(testJWTConfig(), "othersecret")

	token, err := signer.Sign("svc-client", []string{"mindskit"}, time.Minute)
	if err != nil {
		t.Fatalf("signer.Sign() = %v, want: nil", err)
	}

	if _, err := other.Verify(token); err == nil {
		t.Error("other.Verify() = nil, want: error for wrong key")
	}
}
