package model

// CredentialHasher derives and checks stored password credentials.
type CredentialHasher interface {
	Hash(plain string) (string, error)
	Verify(plain, encoded string) bool
}

// PasscodeEngine issues and validates one-time passcodes.
type PasscodeEngine interface {
	Issue() (code, secret string, err error)
	Validate(secret, code string) bool
}
