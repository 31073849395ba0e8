package domain

// Account is a registered user of the network.
//
// ID is the storage-internal identifier and never leaves the service; UID is
// the public identifier other callers use to reference the account. Both are
// assigned at creation and never change. PasswordDigest holds the one-way
// digest of the password — the plaintext is never stored or compared.
type Account struct {
	ID             string `json:"-"`
	Username       string `json:"username"`
	DisplayName    string `json:"display_name"`
	PasswordDigest string `json:"-"`
	Email          string `json:"email,omitempty"`
	Bio            string `json:"bio"`
	Age            int    `json:"age"`
	UID            string `json:"uid"`
}

// Profile is the public projection of an Account, with everything sensitive
// (email, digest, identifiers) stripped away. It is what other users see.
type Profile struct {
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
	Bio         string `json:"bio"`
	Age         int    `json:"age"`
}

// Profile returns the public view of the account.
func (a *Account) Profile() Profile {
	return Profile{
		Username:    a.Username,
		DisplayName: a.DisplayName,
		Bio:         a.Bio,
		Age:         a.Age,
	}
}
