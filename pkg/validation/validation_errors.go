package validation

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// FieldLabels maps struct field names to the labels shown on the site
var FieldLabels = map[string]string{
	"AuthorName": "Nom",
	"AuthorRole": "Rôle",
	"Content":    "Témoignage",
	"Name":       "Nom",
	"Email":      "Email",
	"Subject":    "Sujet",
	"Message":    "Message",
}

// FormatValidationError turns the first failed check into the user-facing
// message for it. Field order in the struct decides which check reports first.
func FormatValidationError(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "Les informations saisies sont invalides."
	}

	fe := verrs[0]
	label := FieldLabels[fe.Field()]
	if label == "" {
		label = fe.Field()
	}

	switch fe.Tag() {
	case "required", "notblank":
		return fmt.Sprintf("Le champ %s est obligatoire.", label)
	case "trimmed_min":
		return fmt.Sprintf("Le champ %s doit contenir au moins %s caractères.", label, fe.Param())
	default:
		return fmt.Sprintf("Le champ %s est invalide.", label)
	}
}
