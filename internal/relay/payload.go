package relay

import (
	"fmt"
	"strings"
)

// DefaultSubject is used when the submission carries no subject.
const DefaultSubject = "[Nouveau message depuis le portfolio]"

const (
	subjectPrefix      = "[Nouveau message] "
	unspecifiedService = "Non précisé"
)

// Payload is the inbound relay body. The relay trusts its caller: nothing is
// validated here, absent fields simply render blank in the outgoing email.
type Payload struct {
	Name        string  `json:"name"`
	Email       string  `json:"email"`
	Subject     *string `json:"subject"`
	Message     string  `json:"message"`
	ServiceType *string `json:"service_type"`
}

// SubjectLine derives the outgoing subject: a prefixed echo of the
// submission's subject when one was given, the fixed default otherwise.
func (p Payload) SubjectLine() string {
	if p.Subject != nil && strings.TrimSpace(*p.Subject) != "" {
		return subjectPrefix + *p.Subject
	}
	return DefaultSubject
}

// TextBody composes the plain-text email body: name, email, service type,
// then the message.
func (p Payload) TextBody() string {
	service := unspecifiedService
	if p.ServiceType != nil {
		service = *p.ServiceType
	}
	return strings.TrimSpace(fmt.Sprintf(`Nouveau message de votre site :

Nom : %s
Email : %s
Type de service : %s

Message :
%s`, p.Name, p.Email, service, p.Message))
}
