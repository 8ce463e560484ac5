package models

// EmailMessage is one formatted email ready for delivery.
type EmailMessage struct {
	Subject string
	Body    string
}
