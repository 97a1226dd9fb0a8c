package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/nats-io/nats.go"
	"github.com/sideshow/apns2"
	"github.com/sideshow/apns2/token"

	"github.com/ananas-wonders/da-academy-schedule-sub000/internal/events"
	"github.com/ananas-wonders/da-academy-schedule-sub000/internal/repository"
)

// Worker pushes a notification to every registered device when a session
// changes. Editors on other devices see the grid refresh prompt without
// polling.
type Worker struct {
	natsConn   *nats.Conn
	apnsClient *apns2.Client
	userRepo   repository.UserRepository
}

func (w *Worker) handleSessionChanged(msg *nats.Msg) {
	var event events.ChangeEvent
	if err := json.Unmarshal(msg.Data, &event); err != nil {
		slog.Error("Error unmarshalling change event", slog.String("error", err.Error()))
		return
	}

	slog.Info("Session change received",
		slog.String("action", event.Action),
		slog.String("record_id", event.RecordID.String()),
	)

	tokens, err := w.userRepo.ListDeviceTokens(context.Background())
	if err != nil {
		slog.Error("Failed to list device tokens", slog.String("error", err.Error()))
		return
	}

	if len(tokens) == 0 {
		slog.Info("No device tokens registered, nothing to push")
		return
	}

	payload := fmt.Sprintf(`{"aps":{"alert":"The schedule was %s","sound":"default"}}`, event.Action)

	for _, deviceToken := range tokens {
		notification := &apns2.Notification{
			DeviceToken: deviceToken,
			Topic:       os.Getenv("APNS_TOPIC"),
			Payload:     []byte(payload),
		}

		if w.apnsClient == nil {
			slog.Info("Push sent (mock)", slog.String("device", deviceToken))
			continue
		}

		res, err := w.apnsClient.Push(notification)
		if err != nil {
			slog.Error("Failed to send push", slog.String("error", err.Error()))
		} else if res.Sent() {
			slog.Info("Push sent", slog.String("apns_id", res.ApnsID))
		} else {
			slog.Warn("Push rejected", slog.String("reason", res.Reason))
		}
	}
}

// Start connects to NATS and subscribes to the session change feed. Without
// APNs credentials the worker logs pushes instead of sending them.
func Start(natsURL string, userRepo repository.UserRepository) error {
	authKeyPath := os.Getenv("APNS_AUTH_KEY_PATH")
	keyID := os.Getenv("APNS_KEY_ID")
	teamID := os.Getenv("APNS_TEAM_ID")

	var apnsClient *apns2.Client
	if authKeyPath != "" && keyID != "" && teamID != "" {
		authKey, err := token.AuthKeyFromFile(authKeyPath)
		if err != nil {
			return fmt.Errorf("failed to read APNs auth key: %w", err)
		}

		authToken := &token.Token{
			AuthKey: authKey,
			KeyID:   keyID,
			TeamID:  teamID,
		}

		if os.Getenv("APNS_MODE") == "production" {
			apnsClient = apns2.NewTokenClient(authToken).Production()
		} else {
			apnsClient = apns2.NewTokenClient(authToken).Development()
		}
		slog.Info("APNs client initialized")
	} else {
		slog.Info("APNs credentials not found, worker runs in mock mode")
	}

	nc, err := nats.Connect(natsURL)
	if err != nil {
		return err
	}

	w := &Worker{
		natsConn:   nc,
		apnsClient: apnsClient,
		userRepo:   userRepo,
	}

	_, err = nc.Subscribe(events.ChangeSubject(events.TableSessions), w.handleSessionChanged)
	if err != nil {
		return err
	}

	return nil
}
