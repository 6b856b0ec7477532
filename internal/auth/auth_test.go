package auth

import (
	"net/http"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSub = "auth0|64f1c2aa9b"

func TestValidateJWT(t *testing.T) {
	idp := IdentityProvider{Secret: "secret"}
	strict := IdentityProvider{Secret: "secret", Issuer: "https://idp.racefuel.test/", Audience: "racefuel-api"}

	hs256, _ := MakeJWT(testSub, jwt.SigningMethodHS256, idp, time.Hour)
	hs512, _ := MakeJWT(testSub, jwt.SigningMethodHS512, idp, time.Hour)
	expired, _ := MakeJWT(testSub, jwt.SigningMethodHS256, idp, -time.Minute)
	noSubject, _ := MakeJWT("", jwt.SigningMethodHS256, idp, time.Hour)
	strictToken, _ := MakeJWT(testSub, jwt.SigningMethodHS384, strict, time.Hour)
	wrongAudience, _ := MakeJWT(testSub, jwt.SigningMethodHS256, IdentityProvider{
		Secret: "secret", Issuer: strict.Issuer, Audience: "someone-else",
	}, time.Hour)

	tests := []struct {
		name        string
		tokenString string
		idp         IdentityProvider
		wantSub     string
		wantErr     bool
	}{
		{name: "Valid HS256 token", tokenString: hs256, idp: idp, wantSub: testSub},
		{name: "Valid HS512 token", tokenString: hs512, idp: idp, wantSub: testSub},
		{name: "Issuer and audience match", tokenString: strictToken, idp: strict, wantSub: testSub},
		{name: "Invalid token", tokenString: "invalid.token.string", idp: idp, wantErr: true},
		{name: "Wrong secret", tokenString: hs256, idp: IdentityProvider{Secret: "wrong_secret"}, wantErr: true},
		{name: "Expired", tokenString: expired, idp: idp, wantErr: true},
		{name: "Missing subject", tokenString: noSubject, idp: idp, wantErr: true},
		{name: "Missing issuer when required", tokenString: hs256, idp: strict, wantErr: true},
		{name: "Wrong audience", tokenString: wrongAudience, idp: strict, wantErr: true},
		{name: "No secret configured", tokenString: hs256, idp: IdentityProvider{}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotSub, err := ValidateJWT(tt.tokenString, tt.idp)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantSub, gotSub)
		})
	}
}

func TestValidateJWTRejectsNoneAlgorithm(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
		Subject:   testSub,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = ValidateJWT(signed, IdentityProvider{Secret: "secret"})
	assert.Error(t, err)
}

func TestGetBearerToken(t *testing.T) {
	const tokenWant = "thisIsATokenString"

	type testCases struct {
		name          string
		headers       http.Header
		expectedToken string
		expectErr     bool
	}

	cases := []testCases{
		{
			name:          "valid header",
			headers:       http.Header{"Authorization": []string{"Bearer " + tokenWant}},
			expectedToken: tokenWant,
			expectErr:     false,
		},
		{
			name:          "missing header",
			headers:       http.Header{},
			expectedToken: "",
			expectErr:     true,
		},
		{
			name:          "header present but empty",
			headers:       http.Header{"Authorization": []string{}},
			expectedToken: "",
			expectErr:     true,
		},
		{
			name:          "Bearer without token",
			headers:       http.Header{"Authorization": []string{"Bearer "}},
			expectedToken: "",
			expectErr:     true,
		},
		{
			name:          "incorrect scheme",
			headers:       http.Header{"Authorization": []string{"Token " + tokenWant}},
			expectedToken: "",
			expectErr:     true,
		},
		{
			name:          "extra whitespace around token",
			headers:       http.Header{"Authorization": []string{"Bearer   " + tokenWant + " "}},
			expectedToken: tokenWant,
			expectErr:     false,
		},
		{
			name:          "Different case Bearer",
			headers:       http.Header{"Authorization": []string{"bEaReR " + tokenWant}},
			expectedToken: tokenWant,
			expectErr:     false,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			token, err := GetBearerToken(c.headers)
			if (err != nil) != c.expectErr {
				t.Errorf("expected error: %v, got: %v", c.expectErr, err)
			}
			if token != c.expectedToken {
				t.Errorf("expected token: %v, got: %v", c.expectedToken, token)
			}
		})
	}
}
