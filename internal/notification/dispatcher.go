package notification

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/elitebarber/barbershop-backend/internal/appointment"
)

const queueSize = 100

type message struct {
	to   string
	body string
}

// Dispatcher implements appointment.Notifier. Messages go through a
// buffered channel to a single worker goroutine so booking requests
// never wait on (or fail because of) the delivery backend.
type Dispatcher struct {
	sender Sender
	queue  chan message
	loc    *time.Location
}

func NewDispatcher(sender Sender, loc *time.Location) *Dispatcher {
	d := &Dispatcher{
		sender: sender,
		queue:  make(chan message, queueSize),
		loc:    loc,
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for m := range d.queue {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		if err := d.sender.Send(ctx, m.to, m.body); err != nil {
			log.Printf("notification delivery to %s failed: %v", m.to, err)
		}
		cancel()
	}
}

func (d *Dispatcher) dispatch(to, body string) {
	select {
	case d.queue <- message{to: to, body: body}:
	default:
		// Full queue: drop the message rather than block a booking.
		log.Println("notification queue full, dropping message")
	}
}

func (d *Dispatcher) BookingConfirmed(a *appointment.Appointment) {
	body := fmt.Sprintf(
		"Olá, %s! Seu agendamento na Elite Barber foi confirmado.\n\n"+
			"Serviço: %s\nBarbeiro: %s\nData e hora: %s\n\n"+
			"Aguardamos por ti!",
		a.CustomerName, a.ServiceName, a.BarberName, d.formatTime(a.StartsAt),
	)
	d.dispatch(WhatsappNumber(a.CustomerPhone), body)
}

func (d *Dispatcher) BookingCancelled(a *appointment.Appointment) {
	body := fmt.Sprintf(
		"Olá, %s. Informamos que o seu agendamento na Elite Barber para %s foi cancelado.\n\n"+
			"Para reagendar, por favor entre em contato conosco. "+
			"Pedimos desculpa por qualquer inconveniente.",
		a.CustomerName, d.formatTime(a.StartsAt),
	)
	d.dispatch(WhatsappNumber(a.CustomerPhone), body)
}

func (d *Dispatcher) formatTime(t time.Time) string {
	return t.In(d.loc).Format("02/01/2006 15:04")
}

// WhatsappNumber normalizes a customer phone into a whatsapp address,
// prefixing the BR country code when it is missing.
func WhatsappNumber(phone string) string {
	digits := strings.Builder{}
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}

	clean := digits.String()
	if strings.HasPrefix(clean, "55") && len(clean) >= 12 {
		return "whatsapp:" + clean
	}
	return "whatsapp:55" + clean
}
