package service

import (
	"bytes"
	"fmt"
	"html/template"
	"log"
	"path/filepath"
	"time"

	"stagebook/internal/entities"
)

type SenderService struct {
}

func NewSenderService() *SenderService {
	return &SenderService{}
}

func (s *SenderService) SendBookingEmail(booking entities.BookingResponse, status string) {
	emailData := entities.BookingEmailData{
		UserName:           booking.UserName,
		BookingCode:        booking.Code,
		ArtistName:         booking.ArtistName,
		EventType:          booking.EventType,
		StartTimeFormatted: booking.StartTime.Format("02 Jan 2006 15:04 MST"),
		EndTimeFormatted:   booking.EndTime.Format("02 Jan 2006 15:04 MST"),
		TotalAmount:        booking.TotalAmount,
		TotalHours:         booking.TotalHours,
		Status:             status,
		Language:           booking.Language,
		CurrentYear:        time.Now().UTC().Year(),
	}

	var emailSubject, plainTextBody string
	switch booking.Language {
	case "es":
		emailSubject = fmt.Sprintf("Tu reserva en Stagebook está %s - Código: %s", status, emailData.BookingCode)
		plainTextBody = fmt.Sprintf(
			"Hola %s,\n\nTu reserva en Stagebook está %s.\n\n"+
				"Detalles de la reserva:\n"+
				"Código: %s\n"+
				"Artista: %s\n"+
				"Inicio: %s\n"+
				"Fin: %s\n"+
				"Total: %d EUR (%d horas)\n\n"+
				"Gracias por elegir Stagebook.",
			emailData.UserName, status, emailData.BookingCode, emailData.ArtistName,
			emailData.StartTimeFormatted, emailData.EndTimeFormatted, emailData.TotalAmount, emailData.TotalHours,
		)
	default:
		emailSubject = fmt.Sprintf("Your Stagebook booking is %s - Code: %s", status, emailData.BookingCode)
		plainTextBody = fmt.Sprintf(
			"Hello %s,\n\nYour booking at Stagebook is %s.\n\n"+
				"Booking details:\n"+
				"Code: %s\n"+
				"Artist: %s\n"+
				"Start: %s\n"+
				"End: %s\n"+
				"Total: %d EUR (%d hours)\n\n"+
				"Thank you for choosing Stagebook.",
			emailData.UserName, status, emailData.BookingCode, emailData.ArtistName,
			emailData.StartTimeFormatted, emailData.EndTimeFormatted, emailData.TotalAmount, emailData.TotalHours,
		)
	}

	htmlBody := plainTextBody
	tmplPath := filepath.Join("internal", "templates", "booking_email.html")
	if tmpl, err := template.ParseFiles(tmplPath); err != nil {
		log.Printf("ALERT: could not parse HTML email template (%s): %v", tmplPath, err)
	} else {
		var htmlBodyBuffer bytes.Buffer
		if err := tmpl.Execute(&htmlBodyBuffer, emailData); err != nil {
			log.Printf("ALERT: could not execute HTML email template for booking %s: %v", emailData.BookingCode, err)
		} else {
			htmlBody = htmlBodyBuffer.String()
		}
	}

	go func(toEmail, userName, subject, plainBody, htmlBodyContent string) {
		if err := SendEmailWithSendGrid(toEmail, userName, subject, plainBody, htmlBodyContent); err != nil {
			log.Printf("ALERT (async): email delivery failed for booking %s: %v", emailData.BookingCode, err)
		}
	}(booking.UserEmail, emailData.UserName, emailSubject, plainTextBody, htmlBody)
}

func (s *SenderService) SendBookingSMS(booking entities.BookingResponse, status string) {
	var smsMessage string
	switch booking.Language {
	case "es":
		smsMessage = fmt.Sprintf("Stagebook: ¡Tu reserva %s está %s!\nInicio: %s.\nMás detalles en tu correo.",
			booking.Code, status,
			booking.StartTime.Format("02/01 15:04"),
		)
	default:
		smsMessage = fmt.Sprintf("Stagebook: Booking %s has been %s!\nStart: %s.\nMore details in your email.",
			booking.Code, status,
			booking.StartTime.Format("02/01 15:04"),
		)
	}

	if err := SendSMS(booking.UserPhone, smsMessage); err != nil {
		log.Printf("ALERT: booking %s exists, but the confirmation SMS to %s failed: %v", booking.Code, booking.UserPhone, err)
	}
}
