package jobs

import (
	"fmt"
	"log"
	"time"

	config "github.com/Chell2003/payment-nexus-dashboard/configs"
	"github.com/Chell2003/payment-nexus-dashboard/database"
	"github.com/Chell2003/payment-nexus-dashboard/models"
	"github.com/Chell2003/payment-nexus-dashboard/notifications"
)

const staleRequestAge = 3 * 24 * time.Hour

// NotifyStalePendingRequests emails the admin a digest of update requests
// that have sat in pending longer than staleRequestAge.
func NotifyStalePendingRequests() {
	log.Println("Running job: NotifyStalePendingRequests...")

	cutoff := time.Now().Add(-staleRequestAge)

	var stale []models.StudentUpdateRequest
	err := database.DB.
		Preload("Student").
		Where("status = ? AND created_at < ?", models.RequestStatusPending, cutoff).
		Order("created_at asc").
		Find(&stale).Error
	if err != nil {
		log.Printf("Error checking for stale update requests: %v", err)
		return
	}

	if len(stale) == 0 {
		return
	}

	items := ""
	for _, request := range stale {
		name := "Unknown student"
		if request.Student.Name != nil {
			name = *request.Student.Name
		}
		items += fmt.Sprintf("<li>%s — requested %s</li>", name, request.CreatedAt.Format("January 2, 2006"))
	}

	subject := fmt.Sprintf("%d update request(s) awaiting review", len(stale))
	body := fmt.Sprintf(
		"<h1>Pending Update Requests</h1><p>The following student update requests have been pending for more than three days:</p><ul>%s</ul>",
		items,
	)

	go notifications.SendEmail(config.Config("ADMIN_NAME"), config.Config("ADMIN_EMAIL"), subject, body)
}
