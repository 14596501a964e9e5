package utils

import (
	"net/smtp"
	"os"
)

// MailEnabled indique si l'envoi de mails est configuré. Sans mot de passe
// SMTP (environnements de dev et de test), les envois sont ignorés.
func MailEnabled() bool {
	return os.Getenv("SMTP_PASSWORD") != ""
}

func SendMail(email string, message []byte) {
	from := os.Getenv("SMTP_FROM")
	if from == "" {
		from = "ambroise.bosch@gmail.com"
	}
	password := os.Getenv("SMTP_PASSWORD")

	smtpHost := "smtp.gmail.com"
	smtpPort := "587"
	auth := smtp.PlainAuth("", from, password, smtpHost)

	err := smtp.SendMail(smtpHost+":"+smtpPort, auth, from, []string{email}, message)
	if err != nil {
		LogError(err, "Error sending mail")
		return
	}

	LogSuccess("Mail sent to " + email)
}
