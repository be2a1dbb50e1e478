package service

import "testing"

func TestJWTRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	InitJWT()

	token, err := GenerateJWT("player-abc")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	playerID, err := ParseJWT(token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if playerID != "player-abc" {
		t.Fatalf("player id = %q; want player-abc", playerID)
	}
}

func TestParseJWTRejectsGarbage(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	InitJWT()

	for _, token := range []string{"", "not.a.token", "aaaa.bbbb.cccc"} {
		if _, err := ParseJWT(token); err == nil {
			t.Fatalf("token %q accepted", token)
		}
	}
}

func TestParseJWTRejectsWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret-one")
	InitJWT()
	token, err := GenerateJWT("player-abc")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	t.Setenv("JWT_SECRET", "secret-two")
	InitJWT()
	if _, err := ParseJWT(token); err == nil {
		t.Fatal("token signed with a different secret accepted")
	}
}
