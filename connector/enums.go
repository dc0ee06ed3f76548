package connector

import (
	"errors"
	"fmt"
)

// Level of transaction support declared by outbound adapter.
// ENUM(NoTransaction, LocalTransaction, XATransaction)
type TransactionSupport int

// Kind of parse failure.
// ENUM(unexpected_element, unexpected_end_tag, unexpected_end_of_document, invalid_value, stream)
type ParseErrorKind int

// CredentialInterface is the credential type an authentication mechanism
// requires. Values are fully qualified interface names, so they do not fit
// generated enums.
type CredentialInterface int

const (
	CredentialInterfaceNone CredentialInterface = iota
	CredentialInterfacePassword
	CredentialInterfaceGSS
	CredentialInterfaceGeneric
)

var ErrInvalidCredentialInterface = errors.New("not a valid CredentialInterface")

var credentialInterfaceNames = [...]string{
	"",
	"javax.resource.spi.security.PasswordCredential",
	"org.ietf.jgss.GSSCredential",
	"javax.resource.spi.security.GenericCredential",
}

func (c CredentialInterface) String() string {
	if c >= CredentialInterfaceNone && int(c) < len(credentialInterfaceNames) {
		return credentialInterfaceNames[c]
	}
	return fmt.Sprintf("CredentialInterface(%d)", int(c))
}

// ParseCredentialInterface converts interface name to CredentialInterface.
func ParseCredentialInterface(name string) (CredentialInterface, error) {
	for i := 1; i < len(credentialInterfaceNames); i++ {
		if credentialInterfaceNames[i] == name {
			return CredentialInterface(i), nil
		}
	}
	return CredentialInterfaceNone, fmt.Errorf("%s is %w", name, ErrInvalidCredentialInterface)
}
