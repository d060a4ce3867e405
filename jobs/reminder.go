package jobs

import (
	"context"
	"fmt"
	"log"
	"time"

	"Prescryber/mailer"
	"Prescryber/models"
	"Prescryber/store"

	"github.com/robfig/cron/v3"
)

// Reminder mails patients about unfilled, verified prescriptions. It runs
// on its own schedule, outside any request context, sharing only the store.
type Reminder struct {
	Prescriptions store.PrescriptionStore
	Mail          mailer.Sender
}

// Interval class to cron schedule: once daily at 07:00, then every 12, 8
// and 6 hours.
var reminderSchedules = map[int]string{
	1: "0 7 * * *",
	2: "0 */12 * * *",
	3: "0 */8 * * *",
	4: "0 */6 * * *",
}

func (r *Reminder) Start() *cron.Cron {
	c := cron.New()
	for interval, schedule := range reminderSchedules {
		interval := interval
		if _, err := c.AddFunc(schedule, func() { r.Remind(interval) }); err != nil {
			log.Println("Error scheduling reminder for interval", interval, ":", err)
		}
	}
	c.Start()
	return c
}

/*
* Select prescriptions still worth reminding about for this interval class
* Mail each patient, failures are logged and the rest still go out
 */
func (r *Reminder) Remind(interval int) {
	since := time.Now().Add(-24 * time.Hour)

	prescriptions, err := r.Prescriptions.FindDue(context.Background(), interval, since)
	if err != nil {
		log.Println("Error fetching due prescriptions:", err)
		return
	}

	for _, prescription := range prescriptions {
		body := reminderBody(prescription)
		if err := r.Mail.Send(prescription.PatientEmail, "Prescription reminder", body); err != nil {
			log.Println("Reminder email failed for", prescription.PatientEmail, ":", err)
		}
	}
}

func reminderBody(p models.Prescription) string {
	body := fmt.Sprintf(`<p>Hi, %s, please remember to take your prescriptions</p>
        <p>Prescription: Take %v %s of %s</p>
        <p>Contact %s on <a href="mailto:%s">email</a> for further assistance</p>`,
		p.PatientName, p.Quantity, p.Unit, p.Prescription, p.PrescriberName, p.PrescriberEmail)

	if p.FurtherAdvice != "" {
		body += fmt.Sprintf("<p>Advice: %s</p>", p.FurtherAdvice)
	}
	return body
}
