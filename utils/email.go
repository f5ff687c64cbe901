package utils

import (
	"fmt"
	"net/smtp"
	"os"
)

// SendWelcomeEmail message de bienvenue après la création du profil. Les
// fournisseurs reçoivent en plus les instructions de paiement de
// l'abonnement.
func SendWelcomeEmail(toEmail, fullName, userType string) error {
	from := os.Getenv("EMAIL_FROM")
	pass := os.Getenv("EMAIL_PASS")
	if from == "" || pass == "" {
		// pas de compte SMTP configuré, on n'envoie rien
		return nil
	}

	var msg string
	if userType == "supplier" {
		msg = fmt.Sprintf(`Subject: TradeHub - Compte fournisseur cree

Bonjour %s,

Votre compte fournisseur TradeHub a bien ete cree.

Pour activer la publication de vos produits, veuillez effectuer le
paiement de 5USD au +234979401982 ou +243842578529, ou regler par
carte depuis l'application.

Merci,
L'equipe TradeHub
`, fullName)
	} else {
		msg = fmt.Sprintf(`Subject: TradeHub - Bienvenue

Bonjour %s,

Votre compte TradeHub a bien ete cree. Bonnes affaires !

Merci,
L'equipe TradeHub
`, fullName)
	}

	return smtp.SendMail(
		"smtp.gmail.com:587",
		smtp.PlainAuth("", from, pass, "smtp.gmail.com"),
		from,
		[]string{toEmail},
		[]byte(msg),
	)
}
