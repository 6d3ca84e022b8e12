package handlers

import (
	"log"

	config "github.com/Chell2003/payment-nexus-dashboard/configs"
	"github.com/Chell2003/payment-nexus-dashboard/models"
	"github.com/Chell2003/payment-nexus-dashboard/websocket"
	websocketcontrib "github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

type ProposedChange struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

type NotificationItem struct {
	models.StudentUpdateRequest
	StatusBadge     string           `json:"status_badge"`
	ProposedChanges []ProposedChange `json:"proposed_changes"`
}

// statusBadge maps a request status to its badge variant: pending renders as
// a warning, approved as success, rejected as destructive.
func statusBadge(status string) string {
	switch status {
	case models.RequestStatusApproved:
		return "success"
	case models.RequestStatusRejected:
		return "destructive"
	default:
		return "warning"
	}
}

// proposedChanges lists only the non-null requested fields. A request with
// all four fields null yields an empty list, not an error.
func proposedChanges(request models.StudentUpdateRequest) []ProposedChange {
	changes := make([]ProposedChange, 0, 4)
	if request.RequestedName != nil {
		changes = append(changes, ProposedChange{Field: "name", Value: *request.RequestedName})
	}
	if request.RequestedEmail != nil {
		changes = append(changes, ProposedChange{Field: "email", Value: *request.RequestedEmail})
	}
	if request.RequestedPhone != nil {
		changes = append(changes, ProposedChange{Field: "phone", Value: *request.RequestedPhone})
	}
	if request.RequestedYearAndSection != nil {
		changes = append(changes, ProposedChange{Field: "yearandsection", Value: *request.RequestedYearAndSection})
	}
	return changes
}

// ListNotifications is the chronological feed of update-request events,
// newest first. It reads the same cache entry as the admin review list.
func ListNotifications(c *fiber.Ctx) error {
	requests, err := cachedUpdateRequests()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch notifications"})
	}

	feed := make([]NotificationItem, 0, len(requests))
	for _, request := range requests {
		feed = append(feed, NotificationItem{
			StudentUpdateRequest: request,
			StatusBadge:          statusBadge(request.Status),
			ProposedChanges:      proposedChanges(request),
		})
	}
	return c.JSON(feed)
}

func parseToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(config.Config("JWT_SECRET")), nil
	})
	if err != nil || !token.Valid {
		return nil, jwt.ErrTokenUnverifiable
	}
	return token.Claims.(jwt.MapClaims), nil
}

// ServeNotificationsWs upgrades the connection and streams new update-request
// events to the client. The first frame must be an auth message carrying a
// valid admin token; unregistration is deferred so teardown always releases
// the client from the hub.
func ServeNotificationsWs(c *websocketcontrib.Conn) {
	type AuthMessage struct {
		Type  string `json:"type"`
		Token string `json:"token"`
	}

	var authMsg AuthMessage
	if err := c.ReadJSON(&authMsg); err != nil || authMsg.Type != "auth" {
		_ = c.WriteJSON(fiber.Map{"error": "Invalid or missing auth message"})
		c.Close()
		return
	}

	if _, err := parseToken(authMsg.Token); err != nil {
		_ = c.WriteJSON(fiber.Map{"error": "Invalid token"})
		c.Close()
		return
	}

	client := &websocket.Client{Conn: c}
	websocket.Register <- client
	defer func() {
		websocket.Unregister <- client
		c.Close()
	}()

	// The feed is push-only; the read loop exists to detect the close.
	for {
		if _, _, err := c.ReadMessage(); err != nil {
			if !websocketcontrib.IsCloseError(err, websocketcontrib.CloseGoingAway, websocketcontrib.CloseNormalClosure) {
				log.Printf("Notification websocket read error: %v", err)
			}
			break
		}
	}
}
