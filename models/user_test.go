package models

import "testing"

func TestUserLogin(t *testing.T) {
	testInit(t)
	mustUser(t, "leo")

	if _, ok := UserLogin("leo", "secret"); !ok {
		t.Error("login with the right password failed")
	}
	if _, ok := UserLogin("leo", "wrong"); ok {
		t.Error("login with a wrong password succeeded")
	}
	if _, ok := UserLogin("nobody", "secret"); ok {
		t.Error("login for an unknown user succeeded")
	}
}

func TestUserCreateDuplicateUsername(t *testing.T) {
	testInit(t)
	mustUser(t, "leo")
	if _, err := UserCreate("leo", "Leo II", "leo2@example.com", "secret"); err == nil {
		t.Error("duplicate username was accepted")
	}
}
