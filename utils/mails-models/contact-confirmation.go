package mailsmodels

import (
	"fmt"

	"portfolio-backend/utils"
)

// ContactConfirmation confirme à l'expéditeur que son message a bien été
// reçu.
func ContactConfirmation(contact ContactEmailData) {
	subject := "Subject: Confirmation de votre message - Portfolio \r\n"
	mime := "MIME-version: 1.0;\r\nContent-Type: text/html; charset=\"UTF-8\";\r\n\r\n"
	body := fmt.Sprintf(`
	<div style="background-color: #1e3a8a; width: 100%%; min-height: 300px; padding: 30px; box-sizing:border-box">
		<table style="background-color: #ffffff; width: 100%%; min-height: 300px;">
			<tbody>
				<tr>
					<td><h1 style="text-align:center">Merci pour votre message !</h1></td>
				</tr>
				<tr>
					<td style="text-align:center; padding-bottom: 30px;">
						<p>Bonjour %s,</p>
						<p>J'ai bien reçu votre message et je vous répondrai dans les plus brefs délais.</p>
						<p>Votre message :</p>
						<blockquote style="background-color: #f5f5f5; padding: 15px; border-left: 5px solid #1e3a8a;">
							%s
						</blockquote>
					</td>
				</tr>
			</tbody>
		</table>
	</div>
`, contact.Name, contact.Message)

	message := []byte(subject + mime + body)
	utils.SendMail(contact.Email, message)
}
