package echoapi

import (
	"net/http"
	"testing"
	"time"

	"github.com/dgrijalva/jwt-go"
)

func Test_tokenRoundTrip(t *testing.T) {
	conf := newTestConfig()

	now := time.Now()
	claims := GetClaims(conf, "a@x.com", "Ayo")
	token, err := GenerateToken(conf, claims)
	if err != nil {
		t.Fatalf("GenerateToken(): %v", err)
	}

	parsed := new(Claims)
	_, err = jwt.ParseWithClaims(token, parsed, func(*jwt.Token) (interface{}, error) {
		return conf.SecretKey, nil
	})
	if err != nil {
		t.Fatalf("ParseWithClaims(): %v", err)
	}

	if parsed.Email != "a@x.com" {
		t.Errorf("email = %q; want %q", parsed.Email, "a@x.com")
	}
	if parsed.Subject != "a@x.com" {
		t.Errorf("subject = %q; want %q", parsed.Subject, "a@x.com")
	}
	wantExp := now.Add(time.Hour).Unix()
	if parsed.ExpiresAt < wantExp-2 || parsed.ExpiresAt > wantExp+2 {
		t.Errorf("expiresAt = %v; want ~%v", parsed.ExpiresAt, wantExp)
	}
}

// Expired and tampered tokens must be indistinguishable to callers: both 401.
func Test_tokenRejection(t *testing.T) {
	app := setup(t)

	expiredConf := newTestConfig()
	expiredConf.Server.JWTExpirationDelta = -time.Minute
	expiredToken, err := GenerateToken(expiredConf, GetClaims(expiredConf, "a@x.com", ""))
	if err != nil {
		t.Fatalf("GenerateToken(): %v", err)
	}

	forgedConf := newTestConfig()
	forgedConf.SecretKey = []byte("not-the-secret")
	forgedToken, err := GenerateToken(forgedConf, GetClaims(forgedConf, "a@x.com", ""))
	if err != nil {
		t.Fatalf("GenerateToken(): %v", err)
	}

	invalid := marchallObj(t, httpErr{Error: "invalid or expired jwt"})
	tests := []httpTest{
		{name: "No header", path: "/users", wantCode: http.StatusUnauthorized, wantData: marchallObj(t, errMissingToken)},
		{name: "Expired token", path: "/users", token: expiredToken, wantCode: http.StatusUnauthorized, wantData: invalid},
		{name: "Forged token", path: "/users", token: forgedToken, wantCode: http.StatusUnauthorized, wantData: invalid},
		{name: "Valid token", path: "/users", token: app.getToken(t, "a@x.com"), wantCode: http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := newAuthRequest(http.MethodGet, tt.path, tt.token)
			app.server.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)
		})
	}
}
