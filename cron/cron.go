package cron

import (
	"fmt"
	"log"
	"time"

	"github.com/pet-paradise/backend/db"
	"github.com/pet-paradise/backend/models"
	"github.com/pet-paradise/backend/utils"
	"github.com/robfig/cron/v3"
)

// StartCronJobs initializes and starts the scheduler for appointment
// reminders and auto-completion of past visits
func StartCronJobs() {
	c := cron.New()
	// Run every minute to check for appointments in the next hour
	_, err := c.AddFunc("* * * * *", sendAppointmentReminders)
	if err != nil {
		log.Fatalf("Failed to add reminder cron job: %v", err)
	}
	// Hourly sweep marking past confirmed appointments as completed
	_, err = c.AddFunc("0 * * * *", completePastAppointments)
	if err != nil {
		log.Fatalf("Failed to add completion cron job: %v", err)
	}
	c.Start()
	log.Println("Cron job scheduler started")
}

// sendAppointmentReminders checks for appointments and sends reminders
func sendAppointmentReminders() {
	var appointments []models.Appointment
	now := time.Now()
	// Look for appointments starting in the next hour
	startWindow := now.Add(55 * time.Minute)
	endWindow := now.Add(65 * time.Minute)

	err := db.DB.Preload("Owner").Preload("Pet").Preload("Provider").
		Where("status = ? AND start_time BETWEEN ? AND ?", models.StatusConfirmed, startWindow, endWindow).
		Find(&appointments).Error
	if err != nil {
		log.Printf("Error fetching appointments for reminders: %v", err)
		return
	}

	for _, appointment := range appointments {
		if err := sendReminderEmail(&appointment); err != nil {
			log.Printf("Failed to send reminder for appointment %d: %v", appointment.ID, err)
			continue
		}
		log.Printf("Sent reminder for appointment %d to %s", appointment.ID, appointment.Owner.Email)
	}
}

// sendReminderEmail constructs and sends the reminder email
func sendReminderEmail(appointment *models.Appointment) error {
	subject := fmt.Sprintf("Reminder: Upcoming Appointment - %s", appointment.Service)
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>This is a reminder for your upcoming appointment scheduled in one hour.</p>
		<p><strong>Details:</strong></p>
		<ul>
			<li><strong>Pet:</strong> %s</li>
			<li><strong>Service:</strong> %s</li>
			<li><strong>Provider:</strong> %s</li>
			<li><strong>Start Time:</strong> %s</li>
			<li><strong>End Time:</strong> %s</li>
		</ul>
		<p>Please arrive on time. If you need to reschedule or cancel, contact us as soon as possible.</p>
		<p>Best regards,</p>
		<p>The Pet Paradise Team</p>
	`, appointment.Owner.Name, appointment.Pet.Name, appointment.Service, appointment.Provider.Name,
		appointment.StartTime.Format("2006-01-02 15:04:05"),
		appointment.EndTime.Format("2006-01-02 15:04:05"))

	return utils.SendEmail(appointment.Owner.Email, subject, body)
}

// completePastAppointments marks confirmed appointments whose end time has
// passed as completed
func completePastAppointments() {
	result := db.DB.Model(&models.Appointment{}).
		Where("status = ? AND end_time < ?", models.StatusConfirmed, time.Now()).
		Update("status", models.StatusCompleted)
	if result.Error != nil {
		log.Printf("Error auto-completing appointments: %v", result.Error)
		return
	}
	if result.RowsAffected > 0 {
		log.Printf("Auto-completed %d past appointments", result.RowsAffected)
	}
}
