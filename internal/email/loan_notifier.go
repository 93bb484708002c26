package email

import (
	"context"
	"fmt"
	"html"
	"math"

	"github.com/nasch/prestabanco_backend/internal/application"
	"github.com/nasch/prestabanco_backend/internal/domain"
)

// Sender envía un correo ya armado
type Sender interface {
	SendEmail(ctx context.Context, to, subject, htmlBody string) error
}

// LoanNotifier avisa por correo a un buzón de ejecutivos cada vez que
// se crea o actualiza una solicitud de crédito
type LoanNotifier struct {
	sender Sender
	to     string
}

// NewLoanNotifier crea el notificador de solicitudes
func NewLoanNotifier(sender Sender, to string) *LoanNotifier {
	return &LoanNotifier{sender: sender, to: to}
}

// NotifyLoanSaved implementa application.LoanNotifier
func (n *LoanNotifier) NotifyLoanSaved(ctx context.Context, loan *domain.Loan, created bool) error {
	action := "actualizada"
	if created {
		action = "recibida"
	}
	subject := fmt.Sprintf("Solicitud de crédito #%d %s", loan.ID, action)

	return n.sender.SendEmail(ctx, n.to, subject, generarHTMLSolicitud(loan, action))
}

// generarHTMLSolicitud genera el cuerpo del correo de una solicitud
func generarHTMLSolicitud(loan *domain.Loan, action string) string {
	cuota := "-"
	if payment := application.MonthlyPayment(loan.Amount, loan.InterestRate, loan.Term); !math.IsNaN(payment) && !math.IsInf(payment, 0) {
		cuota = fmt.Sprintf("$%.2f", payment)
	}

	documentos := 0
	for _, doc := range loan.Documents() {
		if doc.Valid {
			documentos++
		}
	}

	return fmt.Sprintf(`
<!DOCTYPE html>
<html lang="es">
<head>
	<meta charset="UTF-8">
	<title>Solicitud de crédito</title>
</head>
<body style="margin: 0; padding: 0; font-family: Arial, sans-serif; background-color: #f4f4f4;">
	<table width="600" cellpadding="0" cellspacing="0" style="background-color: #ffffff; margin: 20px auto; border-radius: 8px;">
		<tr>
			<td style="background-color: #1f4e79; padding: 30px 20px; text-align: center;">
				<h1 style="color: #ffffff; margin: 0; font-size: 24px;">Solicitud #%d %s</h1>
			</td>
		</tr>
		<tr>
			<td style="padding: 30px;">
				<table width="100%%" cellpadding="0" cellspacing="0">
					<tr><td style="padding: 6px 0;"><strong>RUT:</strong></td><td style="text-align: right;">%s</td></tr>
					<tr><td style="padding: 6px 0;"><strong>Tipo:</strong></td><td style="text-align: right;">%s</td></tr>
					<tr><td style="padding: 6px 0;"><strong>Monto solicitado:</strong></td><td style="text-align: right;">$%d</td></tr>
					<tr><td style="padding: 6px 0;"><strong>Plazo:</strong></td><td style="text-align: right;">%d año(s)</td></tr>
					<tr><td style="padding: 6px 0;"><strong>Tasa anual:</strong></td><td style="text-align: right;">%.2f%%</td></tr>
					<tr><td style="padding: 6px 0;"><strong>Cuota estimada:</strong></td><td style="text-align: right;">%s</td></tr>
					<tr><td style="padding: 6px 0;"><strong>Estado:</strong></td><td style="text-align: right;">%s</td></tr>
					<tr><td style="padding: 6px 0;"><strong>Documentos adjuntos:</strong></td><td style="text-align: right;">%d de 4</td></tr>
				</table>
			</td>
		</tr>
		<tr>
			<td style="background-color: #f8f9fa; padding: 20px; text-align: center; color: #999; font-size: 12px;">
				Este es un correo automático, por favor no responder directamente
			</td>
		</tr>
	</table>
</body>
</html>
	`,
		loan.ID,
		action,
		html.EscapeString(loan.Rut),
		html.EscapeString(loan.Type),
		loan.Amount,
		loan.Term,
		loan.InterestRate,
		cuota,
		html.EscapeString(loan.State),
		documentos,
	)
}
