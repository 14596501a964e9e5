package mailsmodels

import (
	"fmt"
	"os"

	"portfolio-backend/utils"
)

// ContactEmailData données du formulaire de contact utilisées dans les mails
type ContactEmailData struct {
	Name    string
	Email   string
	Message string
}

// ContactNotification prévient le propriétaire du site qu'un message de
// contact vient d'arriver.
func ContactNotification(contact ContactEmailData) {
	owner := os.Getenv("CONTACT_EMAIL")
	if owner == "" {
		owner = "ambroise.bosch@gmail.com"
	}

	subject := "Subject: Nouveau message depuis le portfolio \r\n"
	mime := "MIME-version: 1.0;\r\nContent-Type: text/html; charset=\"UTF-8\";\r\n\r\n"
	body := fmt.Sprintf(`
	<div style="background-color: #1e3a8a; width: 100%%; min-height: 300px; padding: 30px; box-sizing:border-box">
		<table style="background-color: #ffffff; width: 100%%; min-height: 300px;">
			<tbody>
				<tr>
					<td><h1 style="text-align:center">Nouveau message de contact</h1></td>
				</tr>
				<tr>
					<td style="text-align:center; padding-bottom: 30px;">
						<p>De : %s (%s)</p>
						<blockquote style="background-color: #f5f5f5; padding: 15px; border-left: 5px solid #1e3a8a;">
							%s
						</blockquote>
					</td>
				</tr>
			</tbody>
		</table>
	</div>
`, contact.Name, contact.Email, contact.Message)

	message := []byte(subject + mime + body)
	utils.SendMail(owner, message)
}
